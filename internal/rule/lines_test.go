package rule

import (
	"math/rand"
	"testing"

	"github.com/varkel/sudoku/internal/grid"
)

func TestDeriveLinesProperties(t *testing.T) {
	sol := solvedGrid(t)
	rng := rand.New(rand.NewSource(11))

	spec := lineSpec{
		minLen:   3,
		maxLen:   5,
		keepProb: 1,
		diagonal: true,
		step:     func(a, b int) bool { return b > a },
	}
	lines := deriveLines(sol, rng, spec)
	if len(lines) < 3 {
		t.Fatalf("derived %d lines, expected several on a full solution", len(lines))
	}

	seen := map[Cell]bool{}
	for _, line := range lines {
		if len(line) < spec.minLen || len(line) > spec.maxLen {
			t.Errorf("line length %d outside [%d,%d]", len(line), spec.minLen, spec.maxLen)
		}
		for i := 1; i < len(line); i++ {
			a := sol.Value(line[i-1].Row, line[i-1].Col)
			b := sol.Value(line[i].Row, line[i].Col)
			if b <= a {
				t.Errorf("line step %d -> %d violates the predicate", a, b)
			}

			dr := abs(line[i].Row - line[i-1].Row)
			dc := abs(line[i].Col - line[i-1].Col)
			if dr > 1 || dc > 1 || (dr == 0 && dc == 0) {
				t.Errorf("line cells (%v, %v) are not adjacent", line[i-1], line[i])
			}
		}
		for _, c := range line {
			if seen[c] {
				t.Errorf("cell (%d,%d) shared between lines", c.Row, c.Col)
			}
			seen[c] = true
		}
	}
}

func TestLineKeyIgnoresDirection(t *testing.T) {
	line := []Cell{{0, 0}, {0, 1}, {0, 2}}
	reversed := []Cell{{0, 2}, {0, 1}, {0, 0}}
	if lineKey(line) != lineKey(reversed) {
		t.Error("a line and its reversal should share a key")
	}
	other := []Cell{{1, 0}, {1, 1}, {1, 2}}
	if lineKey(line) == lineKey(other) {
		t.Error("distinct lines should have distinct keys")
	}
}

func TestWhisperDerivationFailsOnSmallGrid(t *testing.T) {
	// On a 4×4 grid no two digits differ by 5 or more, so no whisper line
	// can ever be found.
	g, err := grid.NewFromString("1234341221434321", grid.StandardLayout(4, 2))
	if err != nil {
		t.Fatal(err)
	}

	r := NewWhisper(Options{Size: 4, BoxSize: 2, Rand: rand.New(rand.NewSource(1))})
	if r.DeriveConstraints(g) {
		t.Error("whisper derivation should fail with no qualifying lines")
	}
	if len(r.Lines()) != 0 {
		t.Errorf("expected no lines, got %d", len(r.Lines()))
	}
}

func TestThermoValidate(t *testing.T) {
	r := NewThermo(Options{})
	r.SetLines([][]Cell{{{0, 0}, {0, 1}, {0, 2}}})
	g := grid.New(9, 3, grid.StandardLayout(9, 3))
	g.SetForce(g.Pos(0, 1), 5)

	// Bulb must stay below the next cell, tip above the previous one.
	if r.Validate(g, 0, 0, 7) {
		t.Error("expected rejection: bulb larger than its neighbor")
	}
	if !r.Validate(g, 0, 0, 2) {
		t.Error("expected acceptance: increasing toward the neighbor")
	}
	if r.Validate(g, 0, 2, 4) {
		t.Error("expected rejection: tip smaller than its neighbor")
	}
	if !r.Validate(g, 0, 2, 8) {
		t.Error("expected acceptance: increasing from the neighbor")
	}

	// Cells off the line carry no constraint.
	if !r.Validate(g, 5, 5, 1) {
		t.Error("off-line cell should be unconstrained")
	}
}

func TestThermoDerivesFromSolution(t *testing.T) {
	sol := solvedGrid(t)
	r := NewThermo(Options{Rand: rand.New(rand.NewSource(5))})
	if !r.DeriveConstraints(sol) {
		t.Fatal("thermo derivation failed on a full solution")
	}
	if len(r.Lines()) < 3 {
		t.Errorf("derived %d thermometers, want at least 3", len(r.Lines()))
	}
	if len(r.PriorityCells()) == 0 {
		t.Error("derived lines should yield priority cells")
	}
	if r.Metadata().Mode != "reverse" {
		t.Errorf("metadata mode %q, want reverse", r.Metadata().Mode)
	}
}
