package rule

import "github.com/varkel/sudoku/internal/grid"

// Nonconsecutive forbids consecutive digits in orthogonally adjacent cells.
type Nonconsecutive struct {
	base
}

// NewNonconsecutive returns the nonconsecutive variant.
func NewNonconsecutive(opts Options) *Nonconsecutive {
	opts = opts.withDefaults()
	return &Nonconsecutive{base: base{
		name:        "Nonconsecutive Sudoku",
		description: "Orthogonally adjacent cells cannot contain consecutive digits",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *Nonconsecutive) Validate(g *grid.Grid, row, col, val int) bool {
	for _, d := range orthoSteps {
		nr, nc := row+d.Row, col+d.Col
		if !inBounds(r.size, nr, nc) {
			continue
		}
		adj := g.Value(nr, nc)
		if adj != grid.EmptyCell && abs(adj-val) == 1 {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func init() {
	Register("nonconsecutive", func(opts Options) Rule { return NewNonconsecutive(opts) })
}
