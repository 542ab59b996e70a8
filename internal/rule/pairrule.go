package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

// pairRule is the shared machinery of the marked-pair variants (kropki,
// xv, futoshiki): a set of derived adjacent-cell relationships enforced
// whenever both members are filled.
type pairRule struct {
	base
	rng      *rand.Rand
	keepProb float64
	minPairs int
	classify pairClassifier
	pairs    []Pair
}

func (r *pairRule) SupportsReverseGeneration() bool { return true }

func (r *pairRule) DeriveConstraints(solution *grid.Grid) bool {
	r.pairs = derivePairs(solution, r.rng, r.keepProb, r.classify)
	return len(r.pairs) >= r.minPairs
}

// SetPairs fixes the pair set directly, bypassing derivation.
func (r *pairRule) SetPairs(pairs []Pair) { r.pairs = pairs }

// Pairs returns the derived pair set.
func (r *pairRule) Pairs() []Pair { return r.pairs }

// Validate enforces every marked relationship touching (row, col) whose
// other member is already filled.
func (r *pairRule) Validate(g *grid.Grid, row, col, val int) bool {
	for _, p := range r.pairs {
		var other Cell
		first := false
		switch {
		case p.A.Row == row && p.A.Col == col:
			other, first = p.B, true
		case p.B.Row == row && p.B.Col == col:
			other, first = p.A, false
		default:
			continue
		}

		v := g.Value(other.Row, other.Col)
		if v == grid.EmptyCell {
			continue
		}

		a, b := val, v
		if !first {
			a, b = v, val
		}
		if !pairHolds(p.Kind, a, b) {
			return false
		}
	}
	return true
}

// pairHolds reports whether values a then b satisfy the marker.
func pairHolds(kind PairKind, a, b int) bool {
	switch kind {
	case WhiteDot:
		return abs(a-b) == 1
	case BlackDot:
		return a == 2*b || b == 2*a
	case XMark:
		return a+b == 10
	case VMark:
		return a+b == 5
	case LessThan:
		return a < b
	default:
		return true
	}
}

func (r *pairRule) Metadata() Metadata {
	m := r.base.Metadata()
	m.Pairs = r.pairs
	if len(r.pairs) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func (r *pairRule) PriorityCells() []Cell {
	return pairCells(r.pairs)
}
