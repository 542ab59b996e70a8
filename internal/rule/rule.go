// Package rule defines the constraint-variant contract and the built-in
// variants. A Rule is a predicate consulted by the search at every
// placement, plus optional capabilities: deriving constraint geometry from
// a finished solution (reverse generation) and flagging cells to blank
// preferentially during puzzle creation.
package rule

import (
	"math/rand"
	"time"

	"github.com/varkel/sudoku/internal/grid"
)

// Cell identifies a grid cell by coordinates.
type Cell struct {
	Row int
	Col int
}

// Cage is a group of cells that must sum to a target with no repeated digit.
type Cage struct {
	Sum   int
	Cells []Cell
}

// PairKind classifies a marked adjacent-cell pair.
type PairKind int

const (
	WhiteDot PairKind = iota // values differ by exactly 1
	BlackDot                 // one value is double the other
	XMark                    // values sum to 10
	VMark                    // values sum to 5
	LessThan                 // first value is less than second
)

// Pair is a marked relationship between two adjacent cells.
type Pair struct {
	A    Cell
	B    Cell
	Kind PairKind
}

// Arrow is a circle cell whose value equals the sum of its shaft cells.
type Arrow struct {
	Circle Cell
	Shaft  []Cell
}

// Metadata describes a rule and its derived constraint geometry for the
// persistence layer. Only the fields relevant to the variant are populated.
type Metadata struct {
	Name        string
	Description string
	Size        int
	BoxSize     int

	// Mode records how the puzzle was produced: "forward" when the
	// solution was searched under the constraints, "reverse" when the
	// constraints were derived from an unconstrained solution.
	Mode string

	Cages        []Cage
	Lines        [][]Cell
	Pairs        []Pair
	Arrows       []Arrow
	EvenCells    []Cell
	OddCells     []Cell
	Regions      [][]Cell
	RowClues     map[int]int
	ColClues     map[int]int
	RowCluesRev  map[int]int
	ColCluesRev  map[int]int
}

// Rule is the contract every constraint variant implements.
//
// Validate must return false if placing val at (row, col) breaks the
// variant's constraint given the grid's current, possibly partial, state.
// Empty participating cells are "unknown": sum, order and parity
// constraints are enforced exactly only once every participant is filled,
// with partial placements rejected only when no completion could satisfy
// the constraint. Validate must be side-effect-free.
type Rule interface {
	Name() string
	Description() string

	Validate(g *grid.Grid, row, col, val int) bool

	// UsesStandardBoxes reports whether the standard box constraint
	// applies. When false the rule supplies its own box-equivalent check
	// inside Validate (jigsaw-style irregular regions).
	UsesStandardBoxes() bool

	// SupportsReverseGeneration reports whether DeriveConstraints can
	// populate this rule's constraint state from a completed solution.
	SupportsReverseGeneration() bool

	// DeriveConstraints populates internal constraint state from a
	// completed solution grid. It returns false if too few valid
	// constraint instances were found, in which case the caller must
	// discard the solution and generate a fresh one.
	DeriveConstraints(solution *grid.Grid) bool

	Metadata() Metadata

	// PriorityCells returns cells touched by derived constraints, used to
	// bias clue removal toward constraint cells first. An empty slice
	// means no bias.
	PriorityCells() []Cell
}

// Preseeder is an optional capability: fix specific cells before the
// general fill begins. Preseed failure is logged but non-fatal; the fill
// proceeds and simply fails more often downstream.
type Preseeder interface {
	Preseed(g *grid.Grid) error
}

// Options parameterizes rule construction.
type Options struct {
	Size    int
	BoxSize int

	// Pattern names a variant-specific seed, e.g. an even-odd layout.
	// Empty means the variant chooses (usually randomly).
	Pattern string

	// Rand drives constraint derivation and pattern selection.
	// nil means a time-seeded source.
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = 9
	}
	if o.BoxSize == 0 {
		o.BoxSize = 3
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// base carries the fields and default behavior shared by all variants.
type base struct {
	name        string
	description string
	size        int
	boxSize     int
}

func (b base) Name() string        { return b.name }
func (b base) Description() string { return b.description }

func (base) UsesStandardBoxes() bool         { return true }
func (base) SupportsReverseGeneration() bool { return false }

func (base) DeriveConstraints(*grid.Grid) bool { return true }

func (b base) Metadata() Metadata {
	return Metadata{
		Name:        b.name,
		Description: b.description,
		Size:        b.size,
		BoxSize:     b.boxSize,
		Mode:        "forward",
	}
}

func (base) PriorityCells() []Cell { return nil }

// inBounds reports whether (row, col) is on a size×size grid.
func inBounds(size, row, col int) bool {
	return row >= 0 && row < size && col >= 0 && col < size
}
