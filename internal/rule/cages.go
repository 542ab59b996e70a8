package rule

import (
	"math/rand"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/varkel/sudoku/internal/grid"
)

// cageSpec configures cage derivation from a solved grid.
type cageSpec struct {
	minSize  int
	maxSize  int
	minCages int

	// coverage caps the fraction of the grid claimed by cages, leaving
	// uncaged cells so the puzzle is not wall-to-wall sums.
	coverage float64
}

// deriveCages grows contiguous cell groups over the solution, each group
// holding distinct digits, and records the group's solution sum as its
// target. Seeds are visited in random order; growth walks into random
// unclaimed orthogonal neighbors until the cage reaches a randomly chosen
// size or runs out of room.
func deriveCages(sol *grid.Grid, rng *rand.Rand, spec cageSpec) []Cage {
	size := sol.Size()
	total := size * size
	maxCells := int(float64(total) * spec.coverage)

	used := set.New[Cell]()
	usedCount := 0
	var cages []Cage

	seeds := rng.Perm(total)
	for _, seed := range seeds {
		if usedCount >= maxCells {
			break
		}
		start := Cell{seed / size, seed % size}
		if used.Contains(start) {
			continue
		}

		target := spec.minSize + rng.Intn(spec.maxSize-spec.minSize+1)
		cells := []Cell{start}
		values := set.New[int]()
		values.Add(sol.Value(start.Row, start.Col))

		for len(cells) < target {
			next, ok := pickGrowth(sol, rng, cells, used, values)
			if !ok {
				break
			}
			cells = append(cells, next)
			values.Add(sol.Value(next.Row, next.Col))
		}

		if len(cells) < spec.minSize {
			continue
		}

		sum := 0
		for _, c := range cells {
			sum += sol.Value(c.Row, c.Col)
			used.Add(c)
		}
		usedCount += len(cells)
		cages = append(cages, Cage{Sum: sum, Cells: cells})
	}
	return cages
}

// pickGrowth selects a random unclaimed orthogonal neighbor of the cage
// whose solution value does not repeat a digit already in the cage.
func pickGrowth(sol *grid.Grid, rng *rand.Rand, cells []Cell, used set.Set[Cell], values set.Set[int]) (Cell, bool) {
	size := sol.Size()
	inCage := set.New[Cell]()
	for _, c := range cells {
		inCage.Add(c)
	}

	var candidates []Cell
	for _, c := range cells {
		for _, d := range orthoSteps {
			nb := Cell{c.Row + d.Row, c.Col + d.Col}
			if !inBounds(size, nb.Row, nb.Col) || used.Contains(nb) || inCage.Contains(nb) {
				continue
			}
			if values.Contains(sol.Value(nb.Row, nb.Col)) {
				continue
			}
			candidates = append(candidates, nb)
		}
	}
	if len(candidates) == 0 {
		return Cell{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// cageCells flattens cages into a duplicate-free cell list.
func cageCells(cages []Cage) []Cell {
	var cells []Cell
	for _, cage := range cages {
		cells = append(cells, cage.Cells...)
	}
	return cells
}
