package rule

import "github.com/varkel/sudoku/internal/grid"

// Consecutive marks orthogonal lines whose adjacent cells differ by
// exactly 1. Beyond the line constraint itself, the endpoints of each
// line are flagged as special cells and prioritized during clue removal:
// an endpoint pins down the whole line's direction, so blanking it first
// makes the marking actually matter to the solver.
type Consecutive struct {
	lineRule
	special []Cell
}

// NewConsecutive returns the consecutive-lines variant.
func NewConsecutive(opts Options) *Consecutive {
	opts = opts.withDefaults()
	return &Consecutive{lineRule: lineRule{
		base: base{
			name:        "Consecutive Sudoku",
			description: "Marked lines connect cells with consecutive values",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
		spec: lineSpec{
			minLen:   3,
			maxLen:   6,
			keepProb: 0.6,
			step:     func(a, b int) bool { return abs(a-b) == 1 },
		},
		minLines: 3,
	}}
}

func (r *Consecutive) DeriveConstraints(solution *grid.Grid) bool {
	if !r.lineRule.DeriveConstraints(solution) {
		return false
	}
	r.special = r.special[:0]
	for _, line := range r.lines {
		r.special = append(r.special, line[0])
		if last := line[len(line)-1]; last != line[0] {
			r.special = append(r.special, last)
		}
	}
	return true
}

// SpecialCells returns the line endpoints.
func (r *Consecutive) SpecialCells() []Cell { return r.special }

// PriorityCells lists the endpoints first so they are blanked before the
// line interiors.
func (r *Consecutive) PriorityCells() []Cell {
	cells := append([]Cell(nil), r.special...)
	for _, c := range lineCells(r.lines) {
		if lineIndex(cells, c.Row, c.Col) < 0 {
			cells = append(cells, c)
		}
	}
	return cells
}

func init() {
	Register("consecutive", func(opts Options) Rule { return NewConsecutive(opts) })
}
