package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

const (
	sandwichKeepProb = 0.5
	sandwichMinClues = 4
)

// Sandwich clues give, for a row or column, the sum of the digits strictly
// between the 1 and the highest digit. Clues are read off the solution.
// A line is only checked once it is completely filled; partial lines are
// unconstrained.
type Sandwich struct {
	base
	rng      *rand.Rand
	rowClues map[int]int
	colClues map[int]int
}

// NewSandwich returns the sandwich-sum variant.
func NewSandwich(opts Options) *Sandwich {
	opts = opts.withDefaults()
	return &Sandwich{
		base: base{
			name:        "Sandwich Sudoku",
			description: "Clues give the sum of digits between the 1 and the 9 in a row or column",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

func (r *Sandwich) SupportsReverseGeneration() bool { return true }

// DeriveConstraints computes every row and column sandwich sum from the
// solution and keeps a random subset as clues.
func (r *Sandwich) DeriveConstraints(solution *grid.Grid) bool {
	r.rowClues = map[int]int{}
	r.colClues = map[int]int{}

	for i := range r.size {
		if r.rng.Float64() < sandwichKeepProb {
			r.rowClues[i] = sandwichSum(solution, r.size, i, true)
		}
		if r.rng.Float64() < sandwichKeepProb {
			r.colClues[i] = sandwichSum(solution, r.size, i, false)
		}
	}
	return len(r.rowClues)+len(r.colClues) >= sandwichMinClues
}

// SetClues fixes the clue sets directly, bypassing derivation.
func (r *Sandwich) SetClues(rows, cols map[int]int) {
	r.rowClues, r.colClues = rows, cols
}

func (r *Sandwich) Validate(g *grid.Grid, row, col, val int) bool {
	if clue, ok := r.rowClues[row]; ok {
		if done, sum := lineSandwich(g, r.size, row, true, row, col, val); done && sum != clue {
			return false
		}
	}
	if clue, ok := r.colClues[col]; ok {
		if done, sum := lineSandwich(g, r.size, col, false, row, col, val); done && sum != clue {
			return false
		}
	}
	return true
}

// sandwichSum computes the sum between the 1 and the highest digit on a
// complete solution line.
func sandwichSum(sol *grid.Grid, size, index int, isRow bool) int {
	lo, hi := -1, -1
	for i := range size {
		v := lineValue(sol, index, i, isRow)
		if v == 1 {
			lo = i
		}
		if v == size {
			hi = i
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	sum := 0
	for i := lo + 1; i < hi; i++ {
		sum += lineValue(sol, index, i, isRow)
	}
	return sum
}

// lineSandwich evaluates a line as it would look after the placement.
// done is false while any cell is still empty.
func lineSandwich(g *grid.Grid, size, index int, isRow bool, pr, pc, val int) (done bool, sum int) {
	values := make([]int, size)
	lo, hi := -1, -1
	for i := range size {
		cr, cc := index, i
		if !isRow {
			cr, cc = i, index
		}
		v := g.Value(cr, cc)
		if cr == pr && cc == pc {
			v = val
		}
		if v == grid.EmptyCell {
			return false, 0
		}
		values[i] = v
		if v == 1 {
			lo = i
		}
		if v == size {
			hi = i
		}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	for i := lo + 1; i < hi; i++ {
		sum += values[i]
	}
	return true, sum
}

func lineValue(g *grid.Grid, index, i int, isRow bool) int {
	if isRow {
		return g.Value(index, i)
	}
	return g.Value(i, index)
}

func (r *Sandwich) Metadata() Metadata {
	m := r.base.Metadata()
	m.RowClues = r.rowClues
	m.ColClues = r.colClues
	if len(r.rowClues)+len(r.colClues) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func init() {
	Register("sandwich", func(opts Options) Rule { return NewSandwich(opts) })
}
