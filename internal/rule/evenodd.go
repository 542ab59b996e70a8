package rule

import (
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/varkel/sudoku/internal/grid"
)

// parityPattern fixes the parity of marked cells.
type parityPattern struct {
	name string
	even []Cell
	odd  []Cell
}

// evenOddPatterns are the named layouts an EvenOdd puzzle can use.
// Marked sets are kept sparse; only four even digits exist per unit, so a
// pattern may never demand five even cells in one row, column or box.
var evenOddPatterns = map[string]parityPattern{
	"checkerboard": {
		name: "Checkerboard",
		odd:  []Cell{{3, 3}, {3, 5}, {4, 4}, {5, 3}, {5, 5}},
		even: []Cell{{3, 4}, {4, 3}, {4, 5}, {5, 4}},
	},
	"diamond": {
		name: "Diamond",
		even: []Cell{{2, 4}, {3, 3}, {3, 5}, {4, 2}, {4, 6}, {5, 3}, {5, 5}, {6, 4}},
	},
	"cross": {
		name: "Cross",
		even: []Cell{{4, 1}, {4, 3}, {4, 5}, {4, 7}},
		odd:  []Cell{{1, 4}, {3, 4}, {5, 4}, {7, 4}},
	},
	"corners": {
		name: "Corners",
		even: []Cell{{0, 0}, {0, 8}, {8, 0}, {8, 8}},
	},
	"stripes": {
		name: "Stripes",
		odd:  []Cell{{0, 0}, {0, 2}, {0, 4}, {0, 6}, {0, 8}, {8, 0}, {8, 2}, {8, 4}, {8, 6}, {8, 8}},
	},
	"spiral": {
		name: "Spiral",
		even: []Cell{{1, 1}, {1, 7}, {7, 7}, {7, 1}},
		odd:  []Cell{{1, 4}, {4, 7}, {7, 4}, {4, 1}},
	},
}

// EvenOdd fixes the parity of the cells marked by a named pattern.
// 9×9 grids only.
type EvenOdd struct {
	base
	pattern parityPattern
}

// NewEvenOdd returns the even-odd variant. An empty pattern name selects
// one of the named patterns at random.
func NewEvenOdd(opts Options) *EvenOdd {
	opts = opts.withDefaults()
	pattern, ok := evenOddPatterns[opts.Pattern]
	if !ok {
		if opts.Pattern != "" {
			log.WithField("pattern", opts.Pattern).Warn("unknown even-odd pattern, choosing at random")
		}
		pattern = randomPattern(opts.Rand)
	}
	return &EvenOdd{
		base: base{
			name:        "Even-Odd Sudoku (" + pattern.name + ")",
			description: "Marked cells must contain a digit of the indicated parity",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		pattern: pattern,
	}
}

func randomPattern(rng *rand.Rand) parityPattern {
	names := make([]string, 0, len(evenOddPatterns))
	for name := range evenOddPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return evenOddPatterns[names[rng.Intn(len(names))]]
}

func (r *EvenOdd) Validate(g *grid.Grid, row, col, val int) bool {
	if lineIndex(r.pattern.even, row, col) >= 0 && val%2 != 0 {
		return false
	}
	if lineIndex(r.pattern.odd, row, col) >= 0 && val%2 != 1 {
		return false
	}
	return true
}

func (r *EvenOdd) Metadata() Metadata {
	m := r.base.Metadata()
	m.EvenCells = r.pattern.even
	m.OddCells = r.pattern.odd
	return m
}

func (r *EvenOdd) PriorityCells() []Cell {
	cells := append([]Cell(nil), r.pattern.even...)
	return append(cells, r.pattern.odd...)
}

func init() {
	Register("evenodd", func(opts Options) Rule { return NewEvenOdd(opts) })
}
