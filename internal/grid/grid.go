package grid

import (
	"fmt"
	"strings"
)

// EmptyCell marks an unfilled cell.
const EmptyCell = 0

// InvalidCell is returned by accessors for out-of-range positions.
const InvalidCell = -1

// Grid is an N×N Sudoku grid. The zero value is not usable; construct
// with New, NewBoxless or NewFromString.
//
// A Grid is owned by exactly one component at a time (filler, remover,
// counter) and is never shared across concurrent operations.
type Grid struct {
	size    int
	boxSize int
	cells   []int

	// layout describes which region each cell belongs to. nil means the
	// grid tracks no region constraint at all (the active rule replaces
	// the box check entirely). Set at construction, never mutated;
	// clones share the pointer.
	layout *Layout

	// Bitmasks track placed digits in each unit. Bit i represents digit
	// i+1. This allows O(1) duplicate checks for the standard constraints.
	rowMasks    []uint
	colMasks    []uint
	regionMasks []uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Only Place, SetForce and Clear may touch it.
	emptyCount int
}

// New creates an empty size×size grid with the given layout.
// If layout is nil, the standard box layout for boxSize is used.
func New(size, boxSize int, layout *Layout) *Grid {
	if layout == nil {
		layout = StandardLayout(size, boxSize)
	}
	g := &Grid{
		size:        size,
		boxSize:     boxSize,
		cells:       make([]int, size*size),
		layout:      layout,
		rowMasks:    make([]uint, size),
		colMasks:    make([]uint, size),
		regionMasks: make([]uint, size),
		emptyCount:  size * size,
	}
	return g
}

// NewBoxless creates a grid that enforces only row and column constraints.
// Used when the active rule replaces the box constraint with its own
// region check (jigsaw-style variants).
func NewBoxless(size int) *Grid {
	return &Grid{
		size:       size,
		cells:      make([]int, size*size),
		rowMasks:   make([]uint, size),
		colMasks:   make([]uint, size),
		emptyCount: size * size,
	}
}

// NewFromString creates a grid from a size*size-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells. The size is
// taken from the layout; a nil layout means a standard 9×9 grid.
func NewFromString(s string, layout *Layout) (*Grid, error) {
	size := 9
	if layout != nil {
		size = layout.Size
	}
	if len(s) != size*size {
		return nil, fmt.Errorf("string must be exactly %d characters, got %d", size*size, len(s))
	}

	boxSize := 0
	for b := 1; b*b <= size; b++ {
		if b*b == size {
			boxSize = b
		}
	}

	g := New(size, boxSize, layout)
	for pos := range size * size {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if err := g.Place(pos, int(ch-'0')); err != nil {
				return nil, fmt.Errorf("invalid grid at position %d: %w", pos, err)
			}
		default:
			return nil, fmt.Errorf("invalid character '%c' at position %d", ch, pos)
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
// The layout pointer is shared; Layout is immutable after construction.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	clone.cells = append([]int(nil), g.cells...)
	clone.rowMasks = append([]uint(nil), g.rowMasks...)
	clone.colMasks = append([]uint(nil), g.colMasks...)
	if g.regionMasks != nil {
		clone.regionMasks = append([]uint(nil), g.regionMasks...)
	}
	return &clone
}

// Size returns the grid dimension.
func (g *Grid) Size() int { return g.size }

// BoxSize returns the box dimension, or 0 for boxless grids.
func (g *Grid) BoxSize() int { return g.boxSize }

// CellCount returns the total number of cells.
func (g *Grid) CellCount() int { return g.size * g.size }

// Layout returns the grid's Layout, or nil for boxless grids.
func (g *Grid) Layout() *Layout { return g.layout }

// Pos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are out of range.
func (g *Grid) Pos(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return InvalidCell
	}
	return row*g.size + col
}

// RowCol is the inverse of Pos.
func (g *Grid) RowCol(pos int) (row, col int) {
	return pos / g.size, pos % g.size
}

// Place attempts to place a value at the given position.
// Returns an error if the placement violates the standard row, column or
// region constraints, or if parameters are invalid.
func (g *Grid) Place(pos, val int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}
	if err := g.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return g.ClearPos(pos)
	}
	if g.cells[pos] != EmptyCell {
		g.ClearPos(pos)
	}

	row, col := pos/g.size, pos%g.size
	mask := uint(1 << (val - 1))

	if g.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if g.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if g.layout != nil {
		region := g.layout.PosToRegion[pos]
		if g.regionMasks[region]&mask != 0 {
			return fmt.Errorf("%w: value %d already in region %d", ErrIllegalMove, val, region)
		}
	}

	// Modify the grid only once we know it's legal to do so
	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	if g.layout != nil {
		g.regionMasks[g.layout.PosToRegion[pos]] |= mask
	}
	g.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (g *Grid) SetForce(pos, val int) {
	row, col := pos/g.size, pos%g.size
	mask := uint(1 << (val - 1))

	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	if g.layout != nil {
		g.regionMasks[g.layout.PosToRegion[pos]] |= mask
	}
	g.emptyCount--
}

// ClearPos removes the value at the given position.
// No harm is done calling ClearPos on an already empty cell.
func (g *Grid) ClearPos(pos int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}

	val := g.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col := pos/g.size, pos%g.size
	mask := uint(1 << (val - 1))

	g.cells[pos] = EmptyCell
	g.rowMasks[row] &^= mask
	g.colMasks[col] &^= mask
	if g.layout != nil {
		g.regionMasks[g.layout.PosToRegion[pos]] &^= mask
	}
	g.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (g *Grid) Get(pos int) int {
	if pos < 0 || pos >= len(g.cells) {
		return InvalidCell
	}
	return g.cells[pos]
}

// Value returns the value at (row, col).
// Returns InvalidCell for out-of-range coordinates.
func (g *Grid) Value(row, col int) int {
	return g.Get(g.Pos(row, col))
}

// CanPlace reports whether val at pos satisfies the standard row, column
// and (when tracked) region constraints. It does not consult any variant
// rule.
func (g *Grid) CanPlace(pos, val int) bool {
	row, col := pos/g.size, pos%g.size
	mask := uint(1 << (val - 1))
	if g.rowMasks[row]&mask != 0 || g.colMasks[col]&mask != 0 {
		return false
	}
	if g.layout != nil && g.regionMasks[g.layout.PosToRegion[pos]]&mask != 0 {
		return false
	}
	return true
}

// FirstEmpty returns the first empty position in row-major order,
// or InvalidCell if the grid is full.
func (g *Grid) FirstEmpty() int {
	for pos, v := range g.cells {
		if v == EmptyCell {
			return pos
		}
	}
	return InvalidCell
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Grid) EmptyCount() int { return g.emptyCount }

// ClueCount returns the number of filled cells on the grid.
func (g *Grid) ClueCount() int { return len(g.cells) - g.emptyCount }

// String returns the grid as a size*size-character string.
// Empty cells are represented as '.', filled cells as digits.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells))

	for _, cell := range g.cells {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box lines.
// Boxless grids are rendered without internal separators.
func (g *Grid) Format() string {
	var sb strings.Builder
	box := g.boxSize
	if box == 0 {
		box = g.size
	}

	var line string
	for range g.size / box {
		line += "+" + strings.Repeat("-", 2*box+1)
	}
	line += "+\n"
	sb.WriteString(line)

	for row := range g.size {
		sb.WriteString("| ")
		for col := range g.size {
			val := g.Value(row, col)
			if val == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%box == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%box == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
