package generator

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/varkel/sudoku/internal/grid"
	"github.com/varkel/sudoku/internal/rule"
	"github.com/varkel/sudoku/internal/solver"
)

func mustRule(t *testing.T, id string, opts rule.Options) rule.Rule {
	t.Helper()
	r, err := rule.New(id, opts)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// assertUnique fails unless the puzzle has exactly one solution.
func assertUnique(t *testing.T, puzzle *grid.Grid, r rule.Rule) {
	t.Helper()
	var c solver.Counter
	if n := c.Count(puzzle, r, solver.NewClock(0)); n != 1 {
		t.Errorf("puzzle has %d solutions, want exactly 1", n)
	}
}

// assertConsistent fails if any puzzle clue disagrees with the solution.
func assertConsistent(t *testing.T, puzzle, solution *grid.Grid) {
	t.Helper()
	for pos := 0; pos < puzzle.CellCount(); pos++ {
		v := puzzle.Get(pos)
		if v != grid.EmptyCell && v != solution.Get(pos) {
			t.Fatalf("puzzle clue at %d is %d, solution has %d", pos, v, solution.Get(pos))
		}
	}
}

func TestGenerateStandardEasy(t *testing.T) {
	cfg := DefaultConfig(Easy)
	cfg.Seed = 1
	cfg.AttemptTimeout = 30 * time.Second
	r := mustRule(t, "standard", rule.Options{})

	res, err := New(cfg, r).Generate()
	if err != nil {
		t.Fatal(err)
	}

	if res.Solution.EmptyCount() != 0 {
		t.Fatal("solution is not complete")
	}
	if !res.Solution.IsValid() {
		t.Fatal("solution violates standard constraints")
	}
	if res.Puzzle.EmptyCount() > cfg.TargetEmpty {
		t.Errorf("puzzle has %d empty cells, target was %d", res.Puzzle.EmptyCount(), cfg.TargetEmpty)
	}
	if res.Clues != res.Puzzle.ClueCount() {
		t.Errorf("result reports %d clues, puzzle has %d", res.Clues, res.Puzzle.ClueCount())
	}

	assertConsistent(t, res.Puzzle, res.Solution)
	assertUnique(t, res.Puzzle, r)
}

func TestGenerateReproducibleWithSeed(t *testing.T) {
	cfg := DefaultConfig(Easy)
	cfg.Seed = 42

	a, err := New(cfg, mustRule(t, "standard", rule.Options{})).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(cfg, mustRule(t, "standard", rule.Options{})).Generate()
	if err != nil {
		t.Fatal(err)
	}

	if a.Puzzle.String() != b.Puzzle.String() {
		t.Error("same seed produced different puzzles")
	}
	if a.Solution.String() != b.Solution.String() {
		t.Error("same seed produced different solutions")
	}
}

func TestRemoverKeepsUniqueness(t *testing.T) {
	r := mustRule(t, "standard", rule.Options{})
	rng := rand.New(rand.NewSource(2))
	solution := grid.New(9, 3, grid.StandardLayout(9, 3))
	if !solver.Fill(solution, r, rng, solver.NewClock(10*time.Second)) {
		t.Fatal("fill failed")
	}

	cfg := DefaultConfig(Easy)
	puzzle := solution.Clone()
	NewRemover(cfg, rng).Remove(puzzle, r, solver.NewClock(30*time.Second))

	if puzzle.EmptyCount() == 0 {
		t.Fatal("remover blanked nothing")
	}
	if puzzle.ClueCount() > solution.ClueCount() {
		t.Error("remover added clues")
	}
	assertConsistent(t, puzzle, solution)
	assertUnique(t, puzzle, r)
}

func TestRemoverExpiredClockRemovesNothing(t *testing.T) {
	r := mustRule(t, "standard", rule.Options{})
	rng := rand.New(rand.NewSource(3))
	solution := grid.New(9, 3, grid.StandardLayout(9, 3))
	if !solver.Fill(solution, r, rng, solver.NewClock(10*time.Second)) {
		t.Fatal("fill failed")
	}

	// An expired clock stops the pass before any clue is dug.
	cfg := DefaultConfig(Easy)
	puzzle := solution.Clone()
	clock := solver.NewClock(1 * time.Nanosecond)
	time.Sleep(time.Millisecond)
	NewRemover(cfg, rng).Remove(puzzle, r, clock)

	if puzzle.EmptyCount() != 0 {
		t.Errorf("expired clock should prevent all removals, %d cells blanked", puzzle.EmptyCount())
	}
}

func TestBuildQueuePriorityFirst(t *testing.T) {
	cage := rule.Cage{Sum: 8, Cells: []rule.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
	r := rule.NewKillerWithCages(rule.Options{}, []rule.Cage{cage})

	cfg := DefaultConfig(Easy)
	cfg.PriorityDropProb = 0 // keep every priority cell
	rm := NewRemover(cfg, rand.New(rand.NewSource(4)))

	puzzle := grid.New(9, 3, grid.StandardLayout(9, 3))
	queue := rm.buildQueue(puzzle, r)

	if len(queue) != puzzle.CellCount() {
		t.Fatalf("queue has %d positions, want %d", len(queue), puzzle.CellCount())
	}
	want := map[int]bool{puzzle.Pos(0, 0): true, puzzle.Pos(0, 1): true}
	for _, pos := range queue[:2] {
		if !want[pos] {
			t.Errorf("queue head %d is not a priority cell", pos)
		}
	}
}

func TestBuildQueueDropProbability(t *testing.T) {
	cage := rule.Cage{Sum: 8, Cells: []rule.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}}
	r := rule.NewKillerWithCages(rule.Options{}, []rule.Cage{cage})

	cfg := DefaultConfig(Easy)
	cfg.PriorityDropProb = 1 // drop every priority cell
	rm := NewRemover(cfg, rand.New(rand.NewSource(4)))

	puzzle := grid.New(9, 3, grid.StandardLayout(9, 3))
	queue := rm.buildQueue(puzzle, r)

	// Dropped cells still appear later via the uniform phase.
	if len(queue) != puzzle.CellCount() {
		t.Fatalf("queue has %d positions, want %d", len(queue), puzzle.CellCount())
	}
}

func TestGenerateUnsatisfiable(t *testing.T) {
	cfg := DefaultConfig(Easy)
	cfg.Seed = 1
	cfg.AttemptTimeout = time.Second
	cfg.DeriveRetries = 2

	_, err := New(cfg, rejectAll{}).Generate()
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Errorf("expected ErrUnsatisfiable, got %v", err)
	}
}

func TestGenerateDerivationFailed(t *testing.T) {
	// Whisper lines need a digit gap of 5, impossible on a 4×4 grid, so
	// derivation fails for every solution.
	cfg := DefaultConfig(Easy)
	cfg.Seed = 1
	cfg.DeriveRetries = 3
	r := mustRule(t, "whisper", rule.Options{Size: 4, BoxSize: 2})

	_, err := New(cfg, r).Generate()
	if !errors.Is(err, ErrDerivationFailed) {
		t.Errorf("expected ErrDerivationFailed, got %v", err)
	}
}

func TestGenerateKillerUnique(t *testing.T) {
	cfg := DefaultConfig(Easy)
	cfg.Seed = 5
	cfg.AttemptTimeout = 30 * time.Second
	r := mustRule(t, "killer", rule.Options{Rand: rand.New(rand.NewSource(5))})

	res, err := New(cfg, r).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Metadata.Cages) == 0 {
		t.Error("killer result should carry derived cages")
	}
	assertConsistent(t, res.Puzzle, res.Solution)
	assertUnique(t, res.Puzzle, r)
}

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want string
	}{
		{Easy, "easy"},
		{Medium, "medium"},
		{Hard, "hard"},
		{Difficulty(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", tc.d, got, tc.want)
		}
	}

	for _, name := range []string{"easy", "medium", "hard"} {
		d, ok := ParseDifficulty(name)
		if !ok || d.String() != name {
			t.Errorf("ParseDifficulty(%q) = %v,%v", name, d, ok)
		}
	}
	if _, ok := ParseDifficulty("brutal"); ok {
		t.Error("expected failure for unknown tier name")
	}
}

func TestDefaultConfigTiers(t *testing.T) {
	easy := DefaultConfig(Easy)
	if easy.TargetEmpty != 30 || easy.Attempts != 5 || easy.AttemptTimeout != 5*time.Second {
		t.Errorf("unexpected easy tuning: %+v", easy)
	}
	medium := DefaultConfig(Medium)
	if medium.TargetEmpty != 45 || medium.AttemptTimeout != 10*time.Second {
		t.Errorf("unexpected medium tuning: %+v", medium)
	}
	hard := DefaultConfig(Hard)
	if hard.TargetClues != 12 || hard.AttemptTimeout != 30*time.Second ||
		hard.OuterRetries != 5 || hard.Attempts != 3 {
		t.Errorf("unexpected hard tuning: %+v", hard)
	}
	if hard.PriorityDropProb != 0.2 || hard.FailureLimit != 5 {
		t.Errorf("unexpected hard removal tuning: %+v", hard)
	}
}

// rejectAll is a rule that forbids every placement.
type rejectAll struct{}

func (rejectAll) Name() string { return "reject-all" }

func (rejectAll) Description() string { return "rejects everything" }

func (rejectAll) Validate(*grid.Grid, int, int, int) bool { return false }

func (rejectAll) UsesStandardBoxes() bool { return true }

func (rejectAll) SupportsReverseGeneration() bool { return false }

func (rejectAll) DeriveConstraints(*grid.Grid) bool { return false }

func (rejectAll) Metadata() rule.Metadata { return rule.Metadata{Size: 9, BoxSize: 3} }

func (rejectAll) PriorityCells() []rule.Cell { return nil }
