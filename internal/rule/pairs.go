package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

// pairClassifier inspects two adjacent solution values (left-to-right or
// top-to-bottom order) and reports the marker kind they qualify for.
type pairClassifier func(a, b int) (PairKind, bool)

// derivePairs classifies every orthogonally adjacent cell pair of the
// solution and keeps each qualifying pair with probability keepProb.
// Keeping every qualifying pair would over-mark the grid; the thinning
// probability is a tuning constant.
func derivePairs(sol *grid.Grid, rng *rand.Rand, keepProb float64, classify pairClassifier) []Pair {
	size := sol.Size()
	var pairs []Pair

	consider := func(a, b Cell) {
		kind, ok := classify(sol.Value(a.Row, a.Col), sol.Value(b.Row, b.Col))
		if !ok || rng.Float64() >= keepProb {
			return
		}
		pairs = append(pairs, Pair{A: a, B: b, Kind: kind})
	}

	for row := range size {
		for col := range size {
			if col+1 < size {
				consider(Cell{row, col}, Cell{row, col + 1})
			}
			if row+1 < size {
				consider(Cell{row, col}, Cell{row + 1, col})
			}
		}
	}
	return pairs
}

// pairCells flattens pairs into a duplicate-free cell list.
func pairCells(pairs []Pair) []Cell {
	seen := map[Cell]bool{}
	var cells []Cell
	for _, p := range pairs {
		for _, c := range []Cell{p.A, p.B} {
			if !seen[c] {
				seen[c] = true
				cells = append(cells, c)
			}
		}
	}
	return cells
}
