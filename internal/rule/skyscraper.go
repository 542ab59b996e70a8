package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

const (
	skyscraperKeepProb = 0.4
	skyscraperMinClues = 4
)

// Skyscraper clues give how many digits are visible looking into a row or
// column, treating digits as building heights: a building is visible when
// it is taller than everything before it. Clues are read off the
// solution, and a line is only checked once completely filled.
type Skyscraper struct {
	base
	rng *rand.Rand

	// Clues by line index; separate maps per viewing direction.
	left   map[int]int
	right  map[int]int
	top    map[int]int
	bottom map[int]int
}

// NewSkyscraper returns the skyscraper variant.
func NewSkyscraper(opts Options) *Skyscraper {
	opts = opts.withDefaults()
	return &Skyscraper{
		base: base{
			name:        "Skyscraper Sudoku",
			description: "Edge clues count the digits visible when looking into the row or column",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

func (r *Skyscraper) SupportsReverseGeneration() bool { return true }

// DeriveConstraints computes visibility counts for every edge of the
// solution and keeps a random subset as clues.
func (r *Skyscraper) DeriveConstraints(solution *grid.Grid) bool {
	r.left = map[int]int{}
	r.right = map[int]int{}
	r.top = map[int]int{}
	r.bottom = map[int]int{}

	for i := range r.size {
		if r.rng.Float64() < skyscraperKeepProb {
			r.left[i] = visible(lineValues(solution, r.size, i, true, false))
		}
		if r.rng.Float64() < skyscraperKeepProb {
			r.right[i] = visible(lineValues(solution, r.size, i, true, true))
		}
		if r.rng.Float64() < skyscraperKeepProb {
			r.top[i] = visible(lineValues(solution, r.size, i, false, false))
		}
		if r.rng.Float64() < skyscraperKeepProb {
			r.bottom[i] = visible(lineValues(solution, r.size, i, false, true))
		}
	}
	return len(r.left)+len(r.right)+len(r.top)+len(r.bottom) >= skyscraperMinClues
}

// SetClues fixes the clue sets directly, bypassing derivation.
// Maps are keyed by line index; nil maps mean no clues for that edge.
func (r *Skyscraper) SetClues(left, right, top, bottom map[int]int) {
	if left == nil {
		left = map[int]int{}
	}
	if right == nil {
		right = map[int]int{}
	}
	if top == nil {
		top = map[int]int{}
	}
	if bottom == nil {
		bottom = map[int]int{}
	}
	r.left, r.right, r.top, r.bottom = left, right, top, bottom
}

func (r *Skyscraper) Validate(g *grid.Grid, row, col, val int) bool {
	check := func(clues map[int]int, index int, isRow, reversed bool) bool {
		clue, ok := clues[index]
		if !ok {
			return true
		}
		values := lineValuesAfter(g, r.size, index, isRow, reversed, row, col, val)
		if values == nil {
			return true // line still has empty cells
		}
		return visible(values) == clue
	}

	return check(r.left, row, true, false) &&
		check(r.right, row, true, true) &&
		check(r.top, col, false, false) &&
		check(r.bottom, col, false, true)
}

// visible counts values taller than every value before them.
func visible(values []int) int {
	count, tallest := 0, 0
	for _, v := range values {
		if v > tallest {
			count++
			tallest = v
		}
	}
	return count
}

// lineValues reads a complete solution line in viewing order.
func lineValues(sol *grid.Grid, size, index int, isRow, reversed bool) []int {
	values := make([]int, size)
	for i := range size {
		j := i
		if reversed {
			j = size - 1 - i
		}
		if isRow {
			values[i] = sol.Value(index, j)
		} else {
			values[i] = sol.Value(j, index)
		}
	}
	return values
}

// lineValuesAfter reads a grid line as it would look after the placement,
// or nil while any cell is still empty.
func lineValuesAfter(g *grid.Grid, size, index int, isRow, reversed bool, pr, pc, val int) []int {
	values := make([]int, size)
	for i := range size {
		j := i
		if reversed {
			j = size - 1 - i
		}
		cr, cc := index, j
		if !isRow {
			cr, cc = j, index
		}
		v := g.Value(cr, cc)
		if cr == pr && cc == pc {
			v = val
		}
		if v == grid.EmptyCell {
			return nil
		}
		values[i] = v
	}
	return values
}

func (r *Skyscraper) Metadata() Metadata {
	m := r.base.Metadata()
	m.RowClues = r.left
	m.RowCluesRev = r.right
	m.ColClues = r.top
	m.ColCluesRev = r.bottom
	if len(r.left)+len(r.right)+len(r.top)+len(r.bottom) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func init() {
	Register("skyscraper", func(opts Options) Rule { return NewSkyscraper(opts) })
}
