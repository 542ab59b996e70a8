package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range")
	ErrIllegalMove     = errors.New("move violates Sudoku constraints")
)

// IsValid reports whether the grid satisfies the standard row, column
// and (when tracked) region constraints. Empty cells are ignored.
func (g *Grid) IsValid() bool {
	rowCheck := make([]uint, g.size)
	colCheck := make([]uint, g.size)
	regionCheck := make([]uint, g.size)

	for pos, val := range g.cells {
		if val == EmptyCell {
			continue
		}

		row, col := pos/g.size, pos%g.size
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 || colCheck[col]&mask != 0 {
			return false
		}
		if g.layout != nil {
			region := g.layout.PosToRegion[pos]
			if regionCheck[region]&mask != 0 {
				return false
			}
			regionCheck[region] |= mask
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
	}

	return true
}

// validatePosition checks if a position is within grid bounds.
func (g *Grid) validatePosition(pos int) error {
	if pos < 0 || pos >= len(g.cells) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, len(g.cells))
	}
	return nil
}

// validateValue checks if a value is valid for this grid.
func (g *Grid) validateValue(val int) error {
	if (val < 1 || val > g.size) && val != EmptyCell {
		return fmt.Errorf("%w: got %d, want 1-%d", ErrInvalidValue, val, g.size)
	}
	return nil
}
