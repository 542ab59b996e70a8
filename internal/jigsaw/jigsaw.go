// Package jigsaw produces randomized region maps for irregular 9×9
// Sudoku boards. It is independent of the grid package so it can be used
// during layout construction without an import cycle.
package jigsaw

import "math/rand"

const (
	gridSize   = 9
	regionSize = 9
	totalCells = 81
	maxRetries = 200
)

// Regions produces a valid jigsaw region map using a two-phase approach:
// uncapped Voronoi assignment followed by boundary-swap balancing.
//
// The returned slice assigns each cell position (row*9 + col) to a region
// index in [0, 8]. Every region is exactly 9 cells and orthogonally
// contiguous.
//
// Panics only if the internal retry budget is exhausted, which should not
// happen in practice.
func Regions(rng *rand.Rand) []int {
	for range maxRetries {
		result, ok := tryGenerate(rng)
		if ok {
			return result
		}
	}
	panic("jigsaw: Regions exceeded max retries")
}

// tryGenerate runs one generation attempt.
//
// Phase 1 places one seed per 3×3 macro-box and runs a multi-source BFS;
// each cell joins the first region whose wavefront reaches it. With no
// size cap every cell is reachable, and regions are contiguous by
// construction.
//
// Phase 2 repeatedly moves a boundary cell from an over-sized region to an
// adjacent under-sized one, but only when the move keeps both regions
// contiguous, until every region holds exactly 9 cells. If no valid move
// exists the attempt is abandoned (rare, caused by a degenerate seed
// layout).
func tryGenerate(rng *rand.Rand) ([]int, bool) {
	assigned := make([]int, totalCells)
	for i := range assigned {
		assigned[i] = -1
	}

	type qentry struct{ pos, region int }
	queue := make([]qentry, 0, totalCells)

	for r, pos := range seedCells(rng) {
		assigned[pos] = r
		queue = append(queue, qentry{pos, r})
	}

	// Multi-source BFS. Each frontier level is shuffled before expansion
	// so region shapes vary beyond plain level order.
	head := 0
	for head < len(queue) {
		levelEnd := len(queue)
		for i := levelEnd - 1; i > head; i-- {
			j := head + rng.Intn(i-head+1)
			queue[i], queue[j] = queue[j], queue[i]
		}

		for head < levelEnd {
			e := queue[head]
			head++
			for _, nb := range neighbors(e.pos) {
				if assigned[nb] == -1 {
					assigned[nb] = e.region
					queue = append(queue, qentry{nb, e.region})
				}
			}
		}
	}

	sizes := make([]int, gridSize)
	for _, r := range assigned {
		sizes[r]++
	}

	return balance(assigned, sizes, rng)
}

// balance adjusts assigned in place until every region has exactly
// regionSize cells, or reports failure when stuck.
func balance(assigned, sizes []int, rng *rand.Rand) ([]int, bool) {
	const maxIter = totalCells * 10

	for range maxIter {
		done := true
		for _, s := range sizes {
			if s != regionSize {
				done = false
				break
			}
		}
		if done {
			return assigned, true
		}

		// Boundary cells of over-sized regions that touch an under-sized
		// region, in random order.
		type candidate struct{ pos, from, to int }
		var candidates []candidate
		for pos := range totalCells {
			r := assigned[pos]
			if sizes[r] <= regionSize {
				continue
			}
			for _, nb := range neighbors(pos) {
				nr := assigned[nb]
				if nr != r && sizes[nr] < regionSize {
					candidates = append(candidates, candidate{pos, r, nr})
				}
			}
		}
		if len(candidates) == 0 {
			return nil, false
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		moved := false
		for _, c := range candidates {
			if contiguousWithout(assigned, c.pos, c.from) {
				assigned[c.pos] = c.to
				sizes[c.from]--
				sizes[c.to]++
				moved = true
				break
			}
		}
		if !moved {
			return nil, false
		}
	}

	return nil, false
}

// contiguousWithout reports whether region r stays orthogonally connected
// after removing pos.
func contiguousWithout(assigned []int, pos, r int) bool {
	inRegion := make([]bool, totalCells)
	n := 0
	start := -1
	for p := range totalCells {
		if assigned[p] == r && p != pos {
			inRegion[p] = true
			n++
			if start == -1 {
				start = p
			}
		}
	}
	if n == 0 {
		return true
	}

	visited := make([]bool, totalCells)
	queue := []int{start}
	visited[start] = true
	count := 1

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, nb := range neighbors(p) {
			if inRegion[nb] && !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == n
}

// seedCells returns one random seed position inside each 3×3 macro-box.
func seedCells(rng *rand.Rand) []int {
	seeds := make([]int, 0, gridSize)
	for boxRow := range 3 {
		for boxCol := range 3 {
			r := boxRow*3 + rng.Intn(3)
			c := boxCol*3 + rng.Intn(3)
			seeds = append(seeds, r*gridSize+c)
		}
	}
	return seeds
}

// neighbors returns the in-bounds orthogonal neighbors of pos.
func neighbors(pos int) []int {
	row, col := pos/gridSize, pos%gridSize
	var buf [4]int
	n := 0
	if row > 0 {
		buf[n] = pos - gridSize
		n++
	}
	if row < gridSize-1 {
		buf[n] = pos + gridSize
		n++
	}
	if col > 0 {
		buf[n] = pos - 1
		n++
	}
	if col < gridSize-1 {
		buf[n] = pos + 1
		n++
	}
	return buf[:n]
}
