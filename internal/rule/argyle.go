package rule

import "github.com/varkel/sudoku/internal/grid"

// Argyle forbids repeated digits on the two diagonals of each box.
type Argyle struct {
	base
}

// NewArgyle returns the argyle variant.
func NewArgyle(opts Options) *Argyle {
	opts = opts.withDefaults()
	return &Argyle{base: base{
		name:        "Argyle Sudoku",
		description: "Diagonals of each box must not contain repeated digits",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *Argyle) Validate(g *grid.Grid, row, col, val int) bool {
	b := r.boxSize
	boxRow, boxCol := (row/b)*b, (col/b)*b
	inRow, inCol := row-boxRow, col-boxCol

	if inRow == inCol {
		for i := range b {
			cr, cc := boxRow+i, boxCol+i
			if (cr != row || cc != col) && g.Value(cr, cc) == val {
				return false
			}
		}
	}
	if inRow+inCol == b-1 {
		for i := range b {
			cr, cc := boxRow+i, boxCol+b-1-i
			if (cr != row || cc != col) && g.Value(cr, cc) == val {
				return false
			}
		}
	}
	return true
}

func init() {
	Register("argyle", func(opts Options) Rule { return NewArgyle(opts) })
}
