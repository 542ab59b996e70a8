package rule

import (
	"fmt"
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

// loShu is the canonical 3×3 magic square; every magic square of 1-9 is
// one of its eight rotations and reflections.
var loShu = [3][3]int{
	{2, 7, 6},
	{9, 5, 1},
	{4, 3, 8},
}

// MagicSquare requires the center box to form a magic square: every row,
// column and diagonal of the box sums to 15. The box is preseeded with a
// random orientation of the square before the fill. 9×9 grids only.
type MagicSquare struct {
	base
	rng *rand.Rand
}

// NewMagicSquare returns the magic-square variant.
func NewMagicSquare(opts Options) *MagicSquare {
	opts = opts.withDefaults()
	return &MagicSquare{
		base: base{
			name:        "Magic Square Sudoku",
			description: "The center box forms a magic square: rows, columns and diagonals sum to 15",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

// Preseed writes a random orientation of the magic square into the
// center box.
func (r *MagicSquare) Preseed(g *grid.Grid) error {
	sq := loShu
	if r.rng.Intn(2) == 1 {
		sq = transpose(sq)
	}
	for range r.rng.Intn(4) {
		sq = rotate(sq)
	}
	for i := range 3 {
		for j := range 3 {
			pos := g.Pos(3+i, 3+j)
			if err := g.Place(pos, sq[i][j]); err != nil {
				return fmt.Errorf("magic square preseed at (%d,%d): %w", 3+i, 3+j, err)
			}
		}
	}
	return nil
}

func (r *MagicSquare) Validate(g *grid.Grid, row, col, val int) bool {
	if row < 3 || row > 5 || col < 3 || col > 5 {
		return true
	}
	if row == 4 && col == 4 && val != 5 {
		return false
	}

	// Each line of the box must be completable to exactly 15. An empty
	// cell contributes at least 1, so a partial sum may not exceed
	// 15 minus the number of open cells.
	check := func(cells [3]Cell) bool {
		sum, open := 0, 0
		for _, c := range cells {
			v := g.Value(c.Row, c.Col)
			if c.Row == row && c.Col == col {
				v = val
			}
			if v == grid.EmptyCell {
				open++
			} else {
				sum += v
			}
		}
		if open == 0 {
			return sum == 15
		}
		return sum+open <= 15
	}

	inRow, inCol := row-3, col-3
	if !check([3]Cell{{row, 3}, {row, 4}, {row, 5}}) {
		return false
	}
	if !check([3]Cell{{3, col}, {4, col}, {5, col}}) {
		return false
	}
	if inRow == inCol && !check([3]Cell{{3, 3}, {4, 4}, {5, 5}}) {
		return false
	}
	if inRow+inCol == 2 && !check([3]Cell{{3, 5}, {4, 4}, {5, 3}}) {
		return false
	}
	return true
}

func (r *MagicSquare) Metadata() Metadata {
	m := r.base.Metadata()
	box := make([]Cell, 0, 9)
	for i := range 3 {
		for j := range 3 {
			box = append(box, Cell{3 + i, 3 + j})
		}
	}
	m.Regions = [][]Cell{box}
	return m
}

func rotate(sq [3][3]int) [3][3]int {
	var out [3][3]int
	for i := range 3 {
		for j := range 3 {
			out[j][2-i] = sq[i][j]
		}
	}
	return out
}

func transpose(sq [3][3]int) [3][3]int {
	var out [3][3]int
	for i := range 3 {
		for j := range 3 {
			out[j][i] = sq[i][j]
		}
	}
	return out
}

func init() {
	Register("magicsquare", func(opts Options) Rule { return NewMagicSquare(opts) })
}
