package generator

import "time"

// Difficulty selects a removal tier. Tiers differ in how many cells the
// remover aims to blank and how much time each attempt gets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a tier name to its Difficulty value.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return Easy, false
}

// Config configures puzzle generation behavior. All knobs live here; a
// Generator never reads package-level state, so concurrent generators
// with different configs do not interfere.
type Config struct {
	Difficulty Difficulty

	// Attempts is how many removal passes run from each solution. The
	// sparsest result wins.
	Attempts int

	// AttemptTimeout bounds each removal pass. Zero means no limit.
	AttemptTimeout time.Duration

	// TargetEmpty stops a removal pass once this many cells are blank.
	// Ignored for Hard, which digs until it runs out of time or failures.
	TargetEmpty int

	// TargetClues is the clue ceiling a Hard puzzle aims for. A result
	// above the ceiling is still returned, with TargetMet false, once
	// OuterRetries is exhausted.
	TargetClues int

	// OuterRetries is how many times the whole pipeline reruns from a
	// fresh solution when a Hard attempt misses TargetClues.
	OuterRetries int

	// FailureLimit stops a removal pass after this many consecutive
	// removals that broke uniqueness and had to be restored.
	FailureLimit int

	// PriorityDropProb is the chance a rule-priority cell is skipped
	// during the priority phase, so repeated runs do not always dig the
	// same cells first.
	PriorityDropProb float64

	// Seed makes generation reproducible. Zero means time-seeded.
	Seed int64

	// DeriveRetries bounds how many fresh solutions are tried when
	// constraint derivation fails on a reverse-generation variant.
	DeriveRetries int
}

// DefaultConfig returns the standard tuning for a tier.
func DefaultConfig(d Difficulty) Config {
	cfg := Config{
		Difficulty:       d,
		Attempts:         5,
		FailureLimit:     5,
		PriorityDropProb: 0.2,
		DeriveRetries:    10,
	}
	switch d {
	case Medium:
		cfg.AttemptTimeout = 10 * time.Second
		cfg.TargetEmpty = 45
	case Hard:
		cfg.Attempts = 3
		cfg.AttemptTimeout = 30 * time.Second
		cfg.TargetClues = 12
		cfg.OuterRetries = 5
	default:
		cfg.AttemptTimeout = 5 * time.Second
		cfg.TargetEmpty = 30
	}
	return cfg
}
