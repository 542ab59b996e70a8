package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

const (
	killerMinCageSize = 2
	killerMaxCageSize = 4
	killerMinCages    = 6
	killerCoverage    = 0.6
)

// Killer requires each cage to sum to its target with no repeated digit.
// Cages are derived from a completed solution rather than fixed up front.
type Killer struct {
	base
	rng   *rand.Rand
	cages []Cage
}

// NewKiller returns the killer variant with no cages yet; call
// DeriveConstraints with a solution to populate them.
func NewKiller(opts Options) *Killer {
	opts = opts.withDefaults()
	return &Killer{
		base: base{
			name:        "Killer Sudoku",
			description: "Cages must sum to their targets with no repeated digits",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

// NewKillerWithCages returns a killer rule with a fixed cage set.
func NewKillerWithCages(opts Options, cages []Cage) *Killer {
	r := NewKiller(opts)
	r.cages = cages
	return r
}

func (r *Killer) SupportsReverseGeneration() bool { return true }

// DeriveConstraints grows cages over the solution. Returns false when
// fewer than the minimum number of cages could be placed.
func (r *Killer) DeriveConstraints(solution *grid.Grid) bool {
	r.cages = deriveCages(solution, r.rng, cageSpec{
		minSize:  killerMinCageSize,
		maxSize:  killerMaxCageSize,
		minCages: killerMinCages,
		coverage: killerCoverage,
	})
	return len(r.cages) >= killerMinCages
}

func (r *Killer) Validate(g *grid.Grid, row, col, val int) bool {
	for _, cage := range r.cages {
		if lineIndex(cage.Cells, row, col) < 0 {
			continue
		}

		sum, open := val, 0
		for _, c := range cage.Cells {
			if c.Row == row && c.Col == col {
				continue
			}
			v := g.Value(c.Row, c.Col)
			if v == grid.EmptyCell {
				open++
				continue
			}
			if v == val {
				return false // repeated digit in cage
			}
			sum += v
		}

		if open == 0 {
			if sum != cage.Sum {
				return false
			}
		} else if sum+open > cage.Sum {
			// Every open cell needs at least 1.
			return false
		}
		return true // cages never overlap
	}
	return true
}

func (r *Killer) Metadata() Metadata {
	m := r.base.Metadata()
	m.Cages = r.cages
	if len(r.cages) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func (r *Killer) PriorityCells() []Cell {
	return cageCells(r.cages)
}

func init() {
	Register("killer", func(opts Options) Rule { return NewKiller(opts) })
}
