package solver

import (
	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
)

// Counter counts puzzle solutions, stopping as soon as a second one is
// found. The caller only ever needs to distinguish zero, one, and many.
type Counter struct {
	// Nodes is the number of cell visits made by the last Count call.
	Nodes int
}

// Count returns the number of solutions found before the search stopped:
// 0, 1, or 2 meaning "at least two". The search visits empty cells in
// row-major order and tries values in ascending order, so the count is
// deterministic for a given puzzle.
//
// When the clock expires mid-search the count so far is returned and the
// clock's TimedOut flag is set; such a result is inconclusive and must
// not be treated as proof of uniqueness.
func (c *Counter) Count(g *grid.Grid, r rule.Rule, clock *Clock) int {
	c.Nodes = 0
	work := g.Clone()
	count := 0
	c.countFrom(work, r, clock, 0, &count)
	return count
}

func (c *Counter) countFrom(g *grid.Grid, r rule.Rule, clock *Clock, from int, count *int) {
	if clock.Expired() {
		return
	}
	c.Nodes++

	pos := nextEmpty(g, from)
	if pos == grid.InvalidCell {
		*count++
		return
	}
	row, col := g.RowCol(pos)

	for val := 1; val <= g.Size(); val++ {
		if !g.CanPlace(pos, val) || !r.Validate(g, row, col, val) {
			continue
		}
		g.SetForce(pos, val)
		c.countFrom(g, r, clock, pos+1, count)
		g.ClearPos(pos)
		if *count >= 2 {
			return
		}
	}
}
