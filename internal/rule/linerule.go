package rule

import (
	"math/rand"

	"github.com/varkel/sudoku/internal/grid"
)

// lineRule is the shared machinery of the line variants (thermo, whisper,
// chain, consecutive): a set of derived cell lines whose adjacent members
// are constrained by the variant's step predicate.
type lineRule struct {
	base
	rng      *rand.Rand
	spec     lineSpec
	minLines int
	lines    [][]Cell
}

func (r *lineRule) SupportsReverseGeneration() bool { return true }

// DeriveConstraints discovers lines in the solution. Returns false when
// fewer than the variant's minimum were found, which tells the caller to
// discard the solution.
func (r *lineRule) DeriveConstraints(solution *grid.Grid) bool {
	r.lines = deriveLines(solution, r.rng, r.spec)
	return len(r.lines) >= r.minLines
}

// SetLines fixes the line set directly, bypassing derivation.
func (r *lineRule) SetLines(lines [][]Cell) { r.lines = lines }

// Lines returns the derived line set.
func (r *lineRule) Lines() [][]Cell { return r.lines }

// Validate enforces the step predicate between the placed value and its
// filled line neighbors. Empty neighbors are unknown and never reject.
func (r *lineRule) Validate(g *grid.Grid, row, col, val int) bool {
	for _, line := range r.lines {
		idx := lineIndex(line, row, col)
		if idx < 0 {
			continue
		}

		if idx > 0 {
			prev := g.Value(line[idx-1].Row, line[idx-1].Col)
			if prev != grid.EmptyCell && !r.spec.step(prev, val) {
				return false
			}
		}
		if idx < len(line)-1 {
			next := g.Value(line[idx+1].Row, line[idx+1].Col)
			if next != grid.EmptyCell && !r.spec.step(val, next) {
				return false
			}
		}
		return true // lines never overlap
	}
	return true
}

func (r *lineRule) Metadata() Metadata {
	m := r.base.Metadata()
	m.Lines = r.lines
	if len(r.lines) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func (r *lineRule) PriorityCells() []Cell {
	return lineCells(r.lines)
}
