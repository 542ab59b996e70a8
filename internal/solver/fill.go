package solver

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
)

// Fill completes the grid in place with a backtracking search, visiting
// empty cells in row-major order and trying candidate values in random
// order. Randomized value order is the only source of variety between
// runs with distinct seeds.
//
// Returns false when the grid admits no completion under the rule, or
// when the clock expires first. On failure the grid is restored to its
// state at the time of the call.
func Fill(g *grid.Grid, r rule.Rule, rng *rand.Rand, clock *Clock) bool {
	if p, ok := r.(rule.Preseeder); ok && g.EmptyCount() == g.CellCount() {
		if err := p.Preseed(g); err != nil {
			logrus.WithFields(logrus.Fields{
				"variant": r.Name(),
				"error":   err,
			}).Warn("preseed failed, continuing without seed cells")
		}
	}
	return fillFrom(g, r, rng, clock, 0)
}

func fillFrom(g *grid.Grid, r rule.Rule, rng *rand.Rand, clock *Clock, from int) bool {
	if clock.Expired() {
		return false
	}

	pos := nextEmpty(g, from)
	if pos == grid.InvalidCell {
		return true
	}
	row, col := g.RowCol(pos)

	values := rng.Perm(g.Size())
	for _, v := range values {
		val := v + 1
		if !g.CanPlace(pos, val) || !r.Validate(g, row, col, val) {
			continue
		}
		g.SetForce(pos, val)
		if fillFrom(g, r, rng, clock, pos+1) {
			return true
		}
		g.ClearPos(pos)
	}

	return false
}

// nextEmpty returns the first empty position at or after from, or
// InvalidCell when none remains. Cells before from are already filled,
// so the scan never rewinds.
func nextEmpty(g *grid.Grid, from int) int {
	for pos := from; pos < g.CellCount(); pos++ {
		if g.Get(pos) == grid.EmptyCell {
			return pos
		}
	}
	return grid.InvalidCell
}
