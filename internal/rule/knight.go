package rule

import "github.com/varkel/sudoku/internal/grid"

var knightMoves = [8]Cell{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Knight forbids equal digits a chess knight's move apart.
type Knight struct {
	base
}

// NewKnight returns the knight's-move variant.
func NewKnight(opts Options) *Knight {
	opts = opts.withDefaults()
	return &Knight{base: base{
		name:        "Knight's Move Sudoku",
		description: "Cells a knight's move apart cannot contain the same digit",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *Knight) Validate(g *grid.Grid, row, col, val int) bool {
	for _, m := range knightMoves {
		nr, nc := row+m.Row, col+m.Col
		if inBounds(r.size, nr, nc) && g.Value(nr, nc) == val {
			return false
		}
	}
	return true
}

func init() {
	Register("knight", func(opts Options) Rule { return NewKnight(opts) })
}
