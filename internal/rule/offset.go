package rule

import "github.com/varkel/sudoku/internal/grid"

// Offset groups together the cells occupying the same relative position
// within each box (all top-left cells form one group, and so on). Each
// group must contain every digit exactly once.
type Offset struct {
	base
	groups [][]Cell
}

// NewOffset returns the offset-groups variant.
func NewOffset(opts Options) *Offset {
	opts = opts.withDefaults()
	r := &Offset{base: base{
		name:        "Offset Sudoku",
		description: "Cells at the same position within each box must contain every digit once",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
	b := opts.BoxSize
	for offRow := range b {
		for offCol := range b {
			group := make([]Cell, 0, b*b)
			for boxRow := range b {
				for boxCol := range b {
					group = append(group, Cell{boxRow*b + offRow, boxCol*b + offCol})
				}
			}
			r.groups = append(r.groups, group)
		}
	}
	return r
}

func (r *Offset) Validate(g *grid.Grid, row, col, val int) bool {
	b := r.boxSize
	group := r.groups[(row%b)*b+col%b]
	for _, c := range group {
		if (c.Row != row || c.Col != col) && g.Value(c.Row, c.Col) == val {
			return false
		}
	}
	return true
}

func (r *Offset) Metadata() Metadata {
	m := r.base.Metadata()
	m.Regions = r.groups
	return m
}

func init() {
	Register("offset", func(opts Options) Rule { return NewOffset(opts) })
}
