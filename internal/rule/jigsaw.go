package rule

import (
	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/jigsaw"
)

// Jigsaw replaces the standard boxes with irregular contiguous regions.
// A fresh randomized region map is generated at construction. 9×9 grids
// only.
type Jigsaw struct {
	base
	layout *grid.Layout
}

// NewJigsaw returns the jigsaw variant with a freshly generated region map.
func NewJigsaw(opts Options) *Jigsaw {
	opts = opts.withDefaults()
	layout, err := grid.NewLayout(9, jigsaw.Regions(opts.Rand))
	if err != nil {
		// Regions only returns maps that satisfy layout validation.
		panic("jigsaw: generated region map failed validation: " + err.Error())
	}
	return &Jigsaw{
		base: base{
			name:        "Jigsaw Sudoku",
			description: "Irregular regions replace the standard boxes",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		layout: layout,
	}
}

// UsesStandardBoxes is false: the region check below fully replaces the
// box constraint.
func (r *Jigsaw) UsesStandardBoxes() bool { return false }

func (r *Jigsaw) Validate(g *grid.Grid, row, col, val int) bool {
	pos := row*9 + col
	for _, p := range r.layout.RegionToCells[r.layout.PosToRegion[pos]] {
		if p != pos && g.Get(p) == val {
			return false
		}
	}
	return true
}

func (r *Jigsaw) Metadata() Metadata {
	m := r.base.Metadata()
	m.Regions = make([][]Cell, len(r.layout.RegionToCells))
	for i, cells := range r.layout.RegionToCells {
		region := make([]Cell, len(cells))
		for j, pos := range cells {
			region[j] = Cell{pos / 9, pos % 9}
		}
		m.Regions[i] = region
	}
	return m
}

func init() {
	Register("jigsaw", func(opts Options) Rule { return NewJigsaw(opts) })
}
