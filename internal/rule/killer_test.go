package rule

import (
	"math/rand"
	"testing"

	"github.com/varkel/sudoku/internal/grid"
)

func TestKillerCageValidation(t *testing.T) {
	cage := Cage{Sum: 8, Cells: []Cell{{0, 0}, {0, 1}}}
	r := NewKillerWithCages(Options{}, []Cage{cage})
	g := grid.New(9, 3, grid.StandardLayout(9, 3))

	// Partial placement that keeps the sum reachable.
	if !r.Validate(g, 0, 0, 3) {
		t.Error("expected acceptance: 3 with one open cell in an 8-cage")
	}
	g.SetForce(g.Pos(0, 0), 3)

	// Closing placements: only 5 completes the sum.
	if r.Validate(g, 0, 1, 6) {
		t.Error("expected rejection: 3+6 exceeds the cage sum")
	}
	if r.Validate(g, 0, 1, 4) {
		t.Error("expected rejection: 3+4 falls short of the cage sum")
	}
	if !r.Validate(g, 0, 1, 5) {
		t.Error("expected acceptance: 3+5 completes the cage")
	}
}

func TestKillerCageRepeatedDigit(t *testing.T) {
	cage := Cage{Sum: 8, Cells: []Cell{{0, 0}, {0, 1}}}
	r := NewKillerWithCages(Options{}, []Cage{cage})
	g := grid.New(9, 3, grid.StandardLayout(9, 3))
	g.SetForce(g.Pos(0, 0), 4)

	// 4+4 hits the sum but repeats a digit.
	if r.Validate(g, 0, 1, 4) {
		t.Error("expected rejection: repeated digit inside a cage")
	}
}

func TestKillerCagePartialExceeds(t *testing.T) {
	cage := Cage{Sum: 8, Cells: []Cell{{0, 0}, {0, 1}, {0, 2}}}
	r := NewKillerWithCages(Options{}, []Cage{cage})
	g := grid.New(9, 3, grid.StandardLayout(9, 3))
	g.SetForce(g.Pos(0, 0), 7)

	// 7+1 leaves an open cell but no digit small enough to finish on 8.
	if r.Validate(g, 0, 1, 1) {
		t.Error("expected rejection: open cells cannot fit under the cage sum")
	}
	if r.Validate(g, 0, 1, 5) {
		t.Error("expected rejection: partial sum already spent the budget")
	}
}

func TestKillerUncagedCellsUnconstrained(t *testing.T) {
	cage := Cage{Sum: 8, Cells: []Cell{{0, 0}, {0, 1}}}
	r := NewKillerWithCages(Options{}, []Cage{cage})
	g := grid.New(9, 3, grid.StandardLayout(9, 3))

	if !r.Validate(g, 5, 5, 9) {
		t.Error("cells outside every cage must be unconstrained")
	}
}

func TestDeriveCages(t *testing.T) {
	sol := solvedGrid(t)
	rng := rand.New(rand.NewSource(7))

	r := NewKiller(Options{Rand: rng})
	if !r.DeriveConstraints(sol) {
		t.Fatal("derivation failed on a full solution")
	}

	cages := r.Metadata().Cages
	if len(cages) < killerMinCages {
		t.Fatalf("derived %d cages, want at least %d", len(cages), killerMinCages)
	}

	seen := map[Cell]bool{}
	for _, cage := range cages {
		if len(cage.Cells) < killerMinCageSize || len(cage.Cells) > killerMaxCageSize {
			t.Errorf("cage size %d outside [%d,%d]", len(cage.Cells), killerMinCageSize, killerMaxCageSize)
		}

		sum := 0
		values := map[int]bool{}
		for _, c := range cage.Cells {
			v := sol.Value(c.Row, c.Col)
			sum += v
			if values[v] {
				t.Errorf("cage repeats digit %d", v)
			}
			values[v] = true
			if seen[c] {
				t.Errorf("cell (%d,%d) claimed by two cages", c.Row, c.Col)
			}
			seen[c] = true
		}
		if sum != cage.Sum {
			t.Errorf("cage sum %d does not match solution sum %d", cage.Sum, sum)
		}

		if !cageIsContiguous(cage.Cells) {
			t.Errorf("cage %v is not contiguous", cage.Cells)
		}
	}
}

func cageIsContiguous(cells []Cell) bool {
	if len(cells) == 0 {
		return false
	}
	in := map[Cell]bool{}
	for _, c := range cells {
		in[c] = true
	}
	visited := map[Cell]bool{cells[0]: true}
	queue := []Cell{cells[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range orthoSteps {
			nb := Cell{c.Row + d.Row, c.Col + d.Col}
			if in[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(cells)
}
