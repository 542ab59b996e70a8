package rule

import (
	"math/rand"
	"sort"

	"github.com/spjmurray/go-util/pkg/set"
	"github.com/varkel/sudoku/internal/grid"
)

const (
	renbanMinLen   = 3
	renbanMaxLen   = 5
	renbanMinLines = 3
	renbanKeepProb = 0.5
)

// Renban requires each marked line to contain a set of consecutive
// digits, in any order. Lines are derived from the solution by scanning
// straight segments whose value set is a consecutive run.
type Renban struct {
	base
	rng   *rand.Rand
	lines [][]Cell
}

// NewRenban returns the renban-line variant.
func NewRenban(opts Options) *Renban {
	opts = opts.withDefaults()
	return &Renban{
		base: base{
			name:        "Renban Sudoku",
			description: "Marked lines contain consecutive digits in any order",
			size:        opts.Size,
			boxSize:     opts.BoxSize,
		},
		rng: opts.Rand,
	}
}

func (r *Renban) SupportsReverseGeneration() bool { return true }

// DeriveConstraints scans row, column and diagonal segments of the
// solution for value sets forming a consecutive run, then selects a
// non-overlapping longest-first subset.
func (r *Renban) DeriveConstraints(solution *grid.Grid) bool {
	size := solution.Size()
	var found [][]Cell

	dirs := [4]Cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range dirs {
		for row := range size {
			for col := range size {
				for length := renbanMaxLen; length >= renbanMinLen; length-- {
					seg := segment(size, row, col, d, length)
					if seg == nil {
						continue
					}
					if isConsecutiveSet(solution, seg) {
						found = append(found, seg)
						break // shorter prefixes are subsets, skip them
					}
				}
			}
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i]) > len(found[j])
	})

	used := set.New[Cell]()
	r.lines = r.lines[:0]
	for _, line := range found {
		if r.rng.Float64() >= renbanKeepProb {
			continue
		}
		if overlaps(line, used) {
			continue
		}
		for _, c := range line {
			used.Add(c)
		}
		r.lines = append(r.lines, line)
	}
	return len(r.lines) >= renbanMinLines
}

// SetLines fixes the line set directly, bypassing derivation.
func (r *Renban) SetLines(lines [][]Cell) { r.lines = lines }

// Validate checks that the line containing (row, col) can still hold a
// consecutive set: no duplicates, and no two values further apart than
// the line is long. Distinct values bounded that tightly are exactly a
// consecutive run once the line is complete.
func (r *Renban) Validate(g *grid.Grid, row, col, val int) bool {
	for _, line := range r.lines {
		if lineIndex(line, row, col) < 0 {
			continue
		}

		lo, hi := val, val
		for _, c := range line {
			if c.Row == row && c.Col == col {
				continue
			}
			v := g.Value(c.Row, c.Col)
			if v == grid.EmptyCell {
				continue
			}
			if v == val {
				return false
			}
			lo, hi = min(lo, v), max(hi, v)
		}
		if hi-lo > len(line)-1 {
			return false
		}
		return true // lines never overlap
	}
	return true
}

func (r *Renban) Metadata() Metadata {
	m := r.base.Metadata()
	m.Lines = r.lines
	if len(r.lines) > 0 {
		m.Mode = "reverse"
	}
	return m
}

func (r *Renban) PriorityCells() []Cell {
	return lineCells(r.lines)
}

// segment returns the straight run of the given length from (row, col)
// along d, or nil if it leaves the grid.
func segment(size, row, col int, d Cell, length int) []Cell {
	seg := make([]Cell, length)
	for i := range length {
		nr, nc := row+i*d.Row, col+i*d.Col
		if !inBounds(size, nr, nc) {
			return nil
		}
		seg[i] = Cell{nr, nc}
	}
	return seg
}

// isConsecutiveSet reports whether the solution values on the segment are
// distinct and form a consecutive run.
func isConsecutiveSet(sol *grid.Grid, seg []Cell) bool {
	seen := set.New[int]()
	lo, hi := sol.Size()+1, 0
	for _, c := range seg {
		v := sol.Value(c.Row, c.Col)
		if seen.Contains(v) {
			return false
		}
		seen.Add(v)
		lo, hi = min(lo, v), max(hi, v)
	}
	return hi-lo == len(seg)-1
}

func init() {
	Register("renban", func(opts Options) Rule { return NewRenban(opts) })
}
