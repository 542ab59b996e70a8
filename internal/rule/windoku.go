package rule

import "github.com/varkel/sudoku/internal/grid"

// Windoku adds four extra 3×3 regions that must each contain the digits
// 1-9. The windows have their top-left corners at (1,1), (1,5), (5,1)
// and (5,5). 9×9 grids only.
type Windoku struct {
	base
	windows [][]Cell
}

// NewWindoku returns the windoku variant.
func NewWindoku(opts Options) *Windoku {
	opts = opts.withDefaults()
	r := &Windoku{base: base{
		name:        "Windoku",
		description: "Four extra 3x3 windows must contain the digits 1-9",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
	for _, corner := range []Cell{{1, 1}, {1, 5}, {5, 1}, {5, 5}} {
		window := make([]Cell, 0, 9)
		for dr := range 3 {
			for dc := range 3 {
				window = append(window, Cell{corner.Row + dr, corner.Col + dc})
			}
		}
		r.windows = append(r.windows, window)
	}
	return r
}

func (r *Windoku) Validate(g *grid.Grid, row, col, val int) bool {
	for _, window := range r.windows {
		if lineIndex(window, row, col) < 0 {
			continue
		}
		for _, c := range window {
			if (c.Row != row || c.Col != col) && g.Value(c.Row, c.Col) == val {
				return false
			}
		}
		return true // windows are disjoint
	}
	return true
}

func (r *Windoku) Metadata() Metadata {
	m := r.base.Metadata()
	m.Regions = r.windows
	return m
}

func (r *Windoku) PriorityCells() []Cell {
	return lineCells(r.windows)
}

func init() {
	Register("windoku", func(opts Options) Rule { return NewWindoku(opts) })
}
