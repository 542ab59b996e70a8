package jigsaw

import (
	"math/rand"
	"testing"
)

func TestRegionsBalancedAndContiguous(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		regions := Regions(rng)

		if len(regions) != totalCells {
			t.Fatalf("seed %d: region map has %d cells, want %d", seed, len(regions), totalCells)
		}

		sizes := make([]int, gridSize)
		for pos, r := range regions {
			if r < 0 || r >= gridSize {
				t.Fatalf("seed %d: cell %d has out-of-range region %d", seed, pos, r)
			}
			sizes[r]++
		}
		for r, s := range sizes {
			if s != regionSize {
				t.Errorf("seed %d: region %d has %d cells, want %d", seed, r, s, regionSize)
			}
		}

		for r := range gridSize {
			if !regionContiguous(regions, r) {
				t.Errorf("seed %d: region %d is not contiguous", seed, r)
			}
		}
	}
}

func regionContiguous(regions []int, r int) bool {
	start := -1
	n := 0
	for pos, rr := range regions {
		if rr == r {
			n++
			if start == -1 {
				start = pos
			}
		}
	}
	if n == 0 {
		return false
	}

	visited := make([]bool, totalCells)
	visited[start] = true
	queue := []int{start}
	count := 1
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors(p) {
			if regions[nb] == r && !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == n
}

func TestRegionsVaryWithSeed(t *testing.T) {
	a := Regions(rand.New(rand.NewSource(1)))
	b := Regions(rand.New(rand.NewSource(2)))

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical region maps")
	}
}

func TestNeighbors(t *testing.T) {
	if n := len(neighbors(0)); n != 2 {
		t.Errorf("corner has %d neighbors, want 2", n)
	}
	if n := len(neighbors(4)); n != 3 {
		t.Errorf("edge has %d neighbors, want 3", n)
	}
	if n := len(neighbors(40)); n != 4 {
		t.Errorf("center has %d neighbors, want 4", n)
	}
}
