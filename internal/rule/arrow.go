package rule

import (
	"math/rand"
	"sort"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/varkel/sudoku/internal/grid"
)

const (
	arrowMinShaft = 2
	arrowMaxShaft = 3
	arrowMin      = 3
	arrowMax      = 6
)

// Arrow requires the digit in each circle to equal the sum of the digits
// along its shaft. Arrows are derived from the solution.
type ArrowRule struct {
	base
	rng    *rand.Rand
	arrows []Arrow
}

// NewArrow returns the arrow variant.
func NewArrow(opts Options) *ArrowRule {
	opts = opts.withDefaults()
	return &ArrowRule{
		base: base{
			name:        "Arrow Sudoku",
			description: "The circled digit equals the sum of the digits along its arrow",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

func (r *ArrowRule) SupportsReverseGeneration() bool { return true }

// DeriveConstraints searches the solution for circle cells whose value
// equals the sum of an adjacent path of 2-3 cells, preferring longer
// shafts, and installs a non-overlapping randomized subset.
func (r *ArrowRule) DeriveConstraints(solution *grid.Grid) bool {
	size := solution.Size()
	var found []Arrow

	for row := range size {
		for col := range size {
			circle := Cell{row, col}
			target := solution.Value(row, col)
			if target < arrowMinShaft+1 {
				continue // a 2-cell shaft sums to at least 3
			}
			found = append(found, shaftsFrom(solution, circle, target)...)
		}
	}

	// Shuffle before the stable sort so equal-length arrows end up in
	// random relative order.
	r.rng.Shuffle(len(found), func(i, j int) {
		found[i], found[j] = found[j], found[i]
	})
	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].Shaft) > len(found[j].Shaft)
	})

	used := set.New[Cell]()
	r.arrows = r.arrows[:0]
	for _, a := range found {
		if len(r.arrows) >= arrowMax {
			break
		}
		cells := append([]Cell{a.Circle}, a.Shaft...)
		if overlaps(cells, used) {
			continue
		}
		for _, c := range cells {
			used.Add(c)
		}
		r.arrows = append(r.arrows, a)
	}
	return len(r.arrows) >= arrowMin
}

// shaftsFrom enumerates shafts starting adjacent to the circle whose
// solution values sum to the target.
func shaftsFrom(sol *grid.Grid, circle Cell, target int) []Arrow {
	size := sol.Size()
	var out []Arrow

	var grow func(path []Cell, sum int)
	grow = func(path []Cell, sum int) {
		if len(path) >= arrowMinShaft && sum == target {
			out = append(out, Arrow{Circle: circle, Shaft: append([]Cell(nil), path...)})
			return
		}
		if len(path) >= arrowMaxShaft || sum >= target {
			return
		}
		tail := path[len(path)-1]
		for _, d := range orthoSteps {
			next := Cell{tail.Row + d.Row, tail.Col + d.Col}
			if !inBounds(size, next.Row, next.Col) || next == circle {
				continue
			}
			if lineIndex(path, next.Row, next.Col) >= 0 {
				continue
			}
			grow(append(path, next), sum+sol.Value(next.Row, next.Col))
		}
	}

	for _, d := range orthoSteps {
		start := Cell{circle.Row + d.Row, circle.Col + d.Col}
		if !inBounds(size, start.Row, start.Col) {
			continue
		}
		grow([]Cell{start}, sol.Value(start.Row, start.Col))
	}
	return out
}

// SetArrows fixes the arrow set directly, bypassing derivation.
func (r *ArrowRule) SetArrows(arrows []Arrow) { r.arrows = arrows }

func (r *ArrowRule) Validate(g *grid.Grid, row, col, val int) bool {
	for _, a := range r.arrows {
		onCircle := a.Circle.Row == row && a.Circle.Col == col
		onShaft := lineIndex(a.Shaft, row, col) >= 0
		if !onCircle && !onShaft {
			continue
		}

		circle := g.Value(a.Circle.Row, a.Circle.Col)
		if onCircle {
			circle = val
		}

		sum, open := 0, 0
		for _, c := range a.Shaft {
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

		if circle != grid.EmptyCell {
			if open == 0 {
				if sum != circle {
					return false
				}
			} else if sum+open > circle {
				// Every open shaft cell needs at least 1.
				return false
			}
		}
	}
	return true
}

func (r *ArrowRule) Metadata() Metadata {
	m := r.base.Metadata()
	m.Arrows = r.arrows
	if len(r.arrows) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func (r *ArrowRule) PriorityCells() []Cell {
	var cells []Cell
	for _, a := range r.arrows {
		cells = append(cells, a.Circle)
		cells = append(cells, a.Shaft...)
	}
	return cells
}

func init() {
	Register("arrow", func(opts Options) Rule { return NewArrow(opts) })
}
