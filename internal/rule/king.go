package rule

import "github.com/varkel/sudoku/internal/grid"

// King forbids equal digits in any of the eight surrounding cells.
type King struct {
	base
}

// NewKing returns the king's-move variant.
func NewKing(opts Options) *King {
	opts = opts.withDefaults()
	return &King{base: base{
		name:        "King's Move Sudoku",
		description: "No two touching cells, including diagonally, contain the same digit",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *King) Validate(g *grid.Grid, row, col, val int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if inBounds(r.size, nr, nc) && g.Value(nr, nc) == val {
				return false
			}
		}
	}
	return true
}

func init() {
	Register("king", func(opts Options) Rule { return NewKing(opts) })
}
