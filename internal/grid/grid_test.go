package grid

import (
	"errors"
	"strings"
	"testing"
)

const solved = "534678912" +
	"672195348" +
	"198342567" +
	"859761423" +
	"426853791" +
	"713924856" +
	"961537284" +
	"287419635" +
	"345286179"

func standard9() *Grid {
	return New(9, 3, StandardLayout(9, 3))
}

func TestPlaceConflicts(t *testing.T) {
	g := standard9()
	if err := g.Place(g.Pos(0, 0), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same row
	if err := g.Place(g.Pos(0, 8), 5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove for row conflict, got %v", err)
	}
	// Same column
	if err := g.Place(g.Pos(8, 0), 5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove for column conflict, got %v", err)
	}
	// Same box
	if err := g.Place(g.Pos(2, 2), 5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove for box conflict, got %v", err)
	}
	// Clean placement elsewhere
	if err := g.Place(g.Pos(4, 4), 5); err != nil {
		t.Errorf("expected valid placement, got %v", err)
	}
}

func TestPlaceRejectsBadArguments(t *testing.T) {
	g := standard9()
	if err := g.Place(-1, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
	if err := g.Place(81, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, got %v", err)
	}
	if err := g.Place(0, 10); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestClearPosRestoresCandidates(t *testing.T) {
	g := standard9()
	pos := g.Pos(3, 3)
	if err := g.Place(pos, 7); err != nil {
		t.Fatal(err)
	}
	if g.CanPlace(g.Pos(3, 8), 7) {
		t.Error("7 should be blocked in row 3")
	}
	if err := g.ClearPos(pos); err != nil {
		t.Fatal(err)
	}
	if !g.CanPlace(g.Pos(3, 8), 7) {
		t.Error("7 should be available again after clear")
	}
	if g.EmptyCount() != g.CellCount() {
		t.Errorf("expected %d empty cells, got %d", g.CellCount(), g.EmptyCount())
	}
}

func TestCloneIndependence(t *testing.T) {
	g := standard9()
	g.SetForce(g.Pos(0, 0), 1)

	c := g.Clone()
	c.SetForce(c.Pos(0, 1), 2)

	if g.Value(0, 1) != EmptyCell {
		t.Error("mutation of clone leaked into original")
	}
	if c.Value(0, 0) != 1 {
		t.Error("clone lost original cell")
	}
	if g.CanPlace(g.Pos(5, 1), 2) != true {
		t.Error("original masks affected by clone mutation")
	}
}

func TestNewFromString(t *testing.T) {
	g, err := NewFromString(solved, StandardLayout(9, 3))
	if err != nil {
		t.Fatal(err)
	}
	if g.EmptyCount() != 0 {
		t.Errorf("expected full grid, got %d empty", g.EmptyCount())
	}
	if got := g.String(); got != solved {
		t.Errorf("round trip mismatch:\n%s\n%s", solved, got)
	}

	if _, err := NewFromString("123", StandardLayout(9, 3)); err == nil {
		t.Error("expected error for short input")
	}
}

func TestFirstEmpty(t *testing.T) {
	g, err := NewFromString(solved, StandardLayout(9, 3))
	if err != nil {
		t.Fatal(err)
	}
	if pos := g.FirstEmpty(); pos != InvalidCell {
		t.Errorf("full grid should have no empty cell, got %d", pos)
	}

	g.ClearPos(g.Pos(2, 7))
	if pos := g.FirstEmpty(); pos != g.Pos(2, 7) {
		t.Errorf("expected first empty at %d, got %d", g.Pos(2, 7), pos)
	}
}

func TestBoxlessSkipsRegionCheck(t *testing.T) {
	g := NewBoxless(9)
	g.SetForce(g.Pos(0, 0), 5)

	// Same 3×3 box but different row and column: legal without regions.
	if !g.CanPlace(g.Pos(1, 1), 5) {
		t.Error("boxless grid should not enforce box constraint")
	}
	if g.CanPlace(g.Pos(0, 5), 5) {
		t.Error("row constraint should still hold")
	}
}

func TestClueCount(t *testing.T) {
	g := standard9()
	if g.ClueCount() != 0 {
		t.Errorf("expected 0 clues, got %d", g.ClueCount())
	}
	g.SetForce(0, 1)
	g.SetForce(1, 2)
	if g.ClueCount() != 2 {
		t.Errorf("expected 2 clues, got %d", g.ClueCount())
	}
}

func TestIsValid(t *testing.T) {
	g, err := NewFromString(solved, StandardLayout(9, 3))
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsValid() {
		t.Error("solved grid should be valid")
	}
}

func TestFormatShowsEmpties(t *testing.T) {
	g := standard9()
	g.SetForce(g.Pos(0, 0), 5)
	out := g.Format()
	if !strings.Contains(out, "5") {
		t.Error("formatted grid missing placed value")
	}
}
