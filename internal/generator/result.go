package generator

import (
	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
)

// Result is one generated puzzle together with everything needed to
// render or solve it.
type Result struct {
	Puzzle   *grid.Grid
	Solution *grid.Grid

	// Metadata carries the variant's derived constraints (cages, lines,
	// dots, clues) as they stood when the puzzle was produced.
	Metadata rule.Metadata

	// Clues is the number of filled cells left in Puzzle.
	Clues int

	// TargetMet reports whether the tier's removal target was reached.
	// A false value still pairs with a valid, uniquely solvable puzzle.
	TargetMet bool
}
