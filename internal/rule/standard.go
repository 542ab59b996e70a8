package rule

import "github.com/varkel/sudoku/internal/grid"

// Standard applies no constraints beyond the row, column and box checks
// the engine always enforces.
type Standard struct {
	base
}

// NewStandard returns the standard-rules variant.
func NewStandard(opts Options) *Standard {
	opts = opts.withDefaults()
	return &Standard{base: base{
		name:        "Standard Sudoku",
		description: "Fill the grid so every row, column and box contains each digit exactly once",
		size:        opts.Size,
		boxSize:     opts.BoxSize,
	}}
}

func (r *Standard) Validate(*grid.Grid, int, int, int) bool { return true }

func init() {
	Register("standard", func(opts Options) Rule { return NewStandard(opts) })
}
