package rule

import "github.com/varkel/sudoku/internal/grid"

// asteriskCells form a star centered on (4,4). 9×9 grids only.
var asteriskCells = []Cell{
	{1, 4}, {2, 2}, {2, 6},
	{4, 1}, {4, 4}, {4, 7},
	{6, 2}, {6, 6}, {7, 4},
}

// Asterisk requires the nine star cells to contain the digits 1-9.
type Asterisk struct {
	base
}

// NewAsterisk returns the asterisk variant.
func NewAsterisk(opts Options) *Asterisk {
	opts = opts.withDefaults()
	return &Asterisk{base: base{
		name:        "Asterisk Sudoku",
		description: "Nine cells forming an asterisk must contain the digits 1-9",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *Asterisk) Validate(g *grid.Grid, row, col, val int) bool {
	if lineIndex(asteriskCells, row, col) < 0 {
		return true
	}
	for _, c := range asteriskCells {
		if (c.Row != row || c.Col != col) && g.Value(c.Row, c.Col) == val {
			return false
		}
	}
	return true
}

func (r *Asterisk) Metadata() Metadata {
	m := r.base.Metadata()
	m.Regions = [][]Cell{asteriskCells}
	return m
}

func (r *Asterisk) PriorityCells() []Cell {
	return append([]Cell(nil), asteriskCells...)
}

func init() {
	Register("asterisk", func(opts Options) Rule { return NewAsterisk(opts) })
}
