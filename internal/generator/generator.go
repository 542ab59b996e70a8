package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
	"github.com/varkel/sudoku/internal/solver"
)

var (
	// ErrUnsatisfiable means no complete solution was found within the
	// attempt budget. Seen with over-constrained variants on small grids.
	ErrUnsatisfiable = errors.New("no complete solution found")

	// ErrDerivationFailed means every generated solution yielded too few
	// constraint instances for the variant.
	ErrDerivationFailed = errors.New("constraint derivation failed")
)

// Generator produces puzzles for one variant rule under one config.
// Generators are not safe for concurrent use; run one per goroutine.
type Generator struct {
	cfg  Config
	rule rule.Rule
	rng  *rand.Rand
}

// New creates a generator. A zero cfg.Seed gives time-seeded randomness.
func New(cfg Config, r rule.Rule) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		cfg:  cfg,
		rule: r,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Generate runs the full pipeline: fill a solution, derive constraints
// for reverse-generation variants, then run removal attempts and keep
// the sparsest puzzle. The Hard tier reruns the whole pipeline until the
// clue target is met or the retry budget runs out, keeping the best seen.
//
// Every returned puzzle has exactly one solution under the rule.
func (gen *Generator) Generate() (*Result, error) {
	retries := 1
	if gen.cfg.Difficulty == Hard && gen.cfg.OuterRetries > 0 {
		retries = gen.cfg.OuterRetries
	}

	var best *Result
	for attempt := 1; attempt <= retries; attempt++ {
		res, err := gen.runPipeline()
		if err != nil {
			return nil, err
		}
		if best == nil || res.Clues < best.Clues {
			best = res
		}
		if best.TargetMet {
			break
		}
		logrus.WithFields(logrus.Fields{
			"variant": gen.rule.Name(),
			"attempt": attempt,
			"clues":   best.Clues,
			"target":  gen.cfg.TargetClues,
		}).Debug("clue target missed, retrying pipeline")
	}
	return best, nil
}

// runPipeline generates one solution, derives constraints, and digs.
func (gen *Generator) runPipeline() (*Result, error) {
	solution, err := gen.solve()
	if err != nil {
		return nil, err
	}

	clock := solver.NewClock(gen.cfg.AttemptTimeout)
	remover := NewRemover(gen.cfg, gen.rng)

	var puzzle *grid.Grid
	start := time.Now()
	for i := 0; i < gen.cfg.Attempts; i++ {
		candidate := solution.Clone()
		clock.Reset()
		remover.Remove(candidate, gen.rule, clock)
		if puzzle == nil || candidate.EmptyCount() > puzzle.EmptyCount() {
			puzzle = candidate
		}
	}

	clues := puzzle.ClueCount()
	logrus.WithFields(logrus.Fields{
		"variant": gen.rule.Name(),
		"clues":   clues,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("generated puzzle")

	return &Result{
		Puzzle:    puzzle,
		Solution:  solution,
		Metadata:  gen.rule.Metadata(),
		Clues:     clues,
		TargetMet: gen.targetMet(clues, puzzle.EmptyCount()),
	}, nil
}

func (gen *Generator) targetMet(clues, empty int) bool {
	if gen.cfg.Difficulty == Hard {
		return clues <= gen.cfg.TargetClues
	}
	return empty >= gen.cfg.TargetEmpty
}

// solve produces a completed solution grid with derived constraints in
// place for reverse-generation variants. Derivation failure discards the
// solution and fills a fresh one.
func (gen *Generator) solve() (*grid.Grid, error) {
	tries := gen.cfg.DeriveRetries
	if tries < 1 {
		tries = 1
	}

	clock := solver.NewClock(gen.cfg.AttemptTimeout)
	solved := false
	for i := 0; i < tries; i++ {
		g := gen.newGrid()
		clock.Reset()
		if !solver.Fill(g, gen.rule, gen.rng, clock) {
			continue
		}
		solved = true

		if !gen.rule.SupportsReverseGeneration() {
			return g, nil
		}
		if gen.rule.DeriveConstraints(g) {
			return g, nil
		}
		logrus.WithFields(logrus.Fields{
			"variant": gen.rule.Name(),
			"attempt": i + 1,
		}).Debug("too few derived constraints, regenerating solution")
	}

	if !solved {
		return nil, ErrUnsatisfiable
	}
	return nil, ErrDerivationFailed
}

// newGrid builds an empty grid matching the rule's geometry. Rules that
// replace the box constraint get a boxless grid and enforce their own
// regions inside Validate.
func (gen *Generator) newGrid() *grid.Grid {
	meta := gen.rule.Metadata()
	if !gen.rule.UsesStandardBoxes() {
		return grid.NewBoxless(meta.Size)
	}
	return grid.New(meta.Size, meta.BoxSize, grid.StandardLayout(meta.Size, meta.BoxSize))
}
