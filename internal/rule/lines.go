package rule

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/varkel/sudoku/internal/grid"
)

// lineSpec configures line derivation from a solved grid.
//
// The derivation shape is shared by every line variant: enumerate candidate
// lines from the solution, filter by length, sort longest-first, randomly
// thin the pool, then greedily select a non-overlapping subset.
type lineSpec struct {
	minLen int
	maxLen int

	// keepProb is the chance each discovered line survives the random
	// thinning pass. Tuning constant, not a contract.
	keepProb float64

	// diagonal allows snake paths to step diagonally.
	diagonal bool

	// step reports whether a line may run from a cell holding a to an
	// adjacent cell holding b, in that order.
	step func(a, b int) bool
}

var orthoSteps = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var allSteps = [8]Cell{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// deriveLines discovers lines satisfied by the solution: maximal straight
// runs in rows, columns and both diagonals, plus snake paths grown
// greedily from every start cell.
func deriveLines(sol *grid.Grid, rng *rand.Rand, spec lineSpec) [][]Cell {
	var found [][]Cell
	seen := set.New[string]()

	add := func(line []Cell) {
		if len(line) < spec.minLen || len(line) > spec.maxLen {
			return
		}
		key := lineKey(line)
		if seen.Contains(key) {
			return
		}
		seen.Add(key)
		found = append(found, line)
	}

	size := sol.Size()

	// Straight runs along the four forward scan directions. Runs that are
	// valid only in the opposite direction are recovered by the snake
	// growth below, which starts from every cell.
	dirs := [4]Cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		for row := range size {
			for col := range size {
				add(straightRun(sol, row, col, d, spec))
			}
		}
	}

	// Snake paths: greedy growth from every start cell, turning freely.
	for row := range size {
		for col := range size {
			add(growSnake(sol, row, col, spec))
		}
	}

	// Prefer longer lines, thin the pool at random, then select a
	// non-overlapping subset greedily.
	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i]) > len(found[j])
	})

	used := set.New[Cell]()
	var selected [][]Cell
	for _, line := range found {
		if spec.keepProb < 1 && rng.Float64() >= spec.keepProb {
			continue
		}
		if overlaps(line, used) {
			continue
		}
		for _, c := range line {
			used.Add(c)
		}
		selected = append(selected, line)
	}
	return selected
}

// straightRun extends a run from (row, col) along direction d for as long
// as consecutive solution values satisfy the step predicate.
func straightRun(sol *grid.Grid, row, col int, d Cell, spec lineSpec) []Cell {
	size := sol.Size()

	// Only start a run at its true beginning, otherwise every suffix of a
	// long run would be reported as its own line.
	pr, pc := row-d.Row, col-d.Col
	if inBounds(size, pr, pc) && spec.step(sol.Value(pr, pc), sol.Value(row, col)) {
		return nil
	}

	line := []Cell{{row, col}}
	r, c := row, col
	for len(line) < spec.maxLen {
		nr, nc := r+d.Row, c+d.Col
		if !inBounds(size, nr, nc) || !spec.step(sol.Value(r, c), sol.Value(nr, nc)) {
			break
		}
		line = append(line, Cell{nr, nc})
		r, c = nr, nc
	}
	return line
}

// growSnake grows a path from (row, col), at each step choosing the
// candidate neighbor with the most onward options. Visited cells are never
// revisited, which keeps the path from touching itself.
func growSnake(sol *grid.Grid, row, col int, spec lineSpec) []Cell {
	size := sol.Size()
	steps := orthoSteps[:]
	if spec.diagonal {
		steps = allSteps[:]
	}

	path := []Cell{{row, col}}
	visited := set.New[Cell]()
	visited.Add(Cell{row, col})
	cur := Cell{row, col}

	for len(path) < spec.maxLen {
		best := Cell{-1, -1}
		bestOptions := -1
		for _, d := range steps {
			next := Cell{cur.Row + d.Row, cur.Col + d.Col}
			if !inBounds(size, next.Row, next.Col) || visited.Contains(next) {
				continue
			}
			if !spec.step(sol.Value(cur.Row, cur.Col), sol.Value(next.Row, next.Col)) {
				continue
			}
			options := 0
			for _, d2 := range steps {
				nn := Cell{next.Row + d2.Row, next.Col + d2.Col}
				if !inBounds(size, nn.Row, nn.Col) || visited.Contains(nn) || nn == cur {
					continue
				}
				if spec.step(sol.Value(next.Row, next.Col), sol.Value(nn.Row, nn.Col)) {
					options++
				}
			}
			if options > bestOptions {
				bestOptions = options
				best = next
			}
		}
		if bestOptions < 0 {
			break
		}
		path = append(path, best)
		visited.Add(best)
		cur = best
	}
	return path
}

// overlaps reports whether any cell of the line is already claimed.
func overlaps(line []Cell, used set.Set[Cell]) bool {
	for _, c := range line {
		if used.Contains(c) {
			return true
		}
	}
	return false
}

// lineKey returns a direction-insensitive identity for a line, so a path
// and its reversal are recognized as the same discovery.
func lineKey(line []Cell) string {
	fwd := encodeLine(line)
	rev := encodeLineReversed(line)
	if rev < fwd {
		return rev
	}
	return fwd
}

func encodeLine(line []Cell) string {
	b := make([]byte, 0, len(line)*6)
	for _, c := range line {
		b = strconv.AppendInt(b, int64(c.Row), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(c.Col), 10)
		b = append(b, ';')
	}
	return string(b)
}

func encodeLineReversed(line []Cell) string {
	b := make([]byte, 0, len(line)*6)
	for i := len(line) - 1; i >= 0; i-- {
		b = strconv.AppendInt(b, int64(line[i].Row), 10)
		b = append(b, ',')
		b = strconv.AppendInt(b, int64(line[i].Col), 10)
		b = append(b, ';')
	}
	return string(b)
}

// lineIndex locates (row, col) in a line, or -1.
func lineIndex(line []Cell, row, col int) int {
	for i, c := range line {
		if c.Row == row && c.Col == col {
			return i
		}
	}
	return -1
}

// lineCells flattens lines into a duplicate-free cell list, preserving
// encounter order.
func lineCells(lines [][]Cell) []Cell {
	seen := set.New[Cell]()
	var cells []Cell
	for _, line := range lines {
		for _, c := range line {
			if seen.Contains(c) {
				continue
			}
			seen.Add(c)
			cells = append(cells, c)
		}
	}
	return cells
}
