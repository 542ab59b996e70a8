package grid

import "fmt"

// Layout describes the region structure of a Sudoku grid.
// In standard Sudoku all regions are boxSize×boxSize boxes; jigsaw layouts
// use irregular, contiguous regions of any shape.
//
// Layout is immutable after construction, so the same pointer can be
// shared across Grid clones.
type Layout struct {
	// Type is a human-readable identifier: "standard" or "jigsaw".
	Type string

	// Size is the grid dimension; each region holds Size cells.
	Size int

	// PosToRegion maps a cell position to its region index in [0, Size).
	PosToRegion []int

	// RegionToCells is the inverse: given a region index the slice contains
	// the Size cell positions that belong to it, in ascending order.
	RegionToCells [][]int
}

// StandardLayout returns the Layout for a classic boxed Sudoku of the
// given dimensions. size must be boxSize squared.
func StandardLayout(size, boxSize int) *Layout {
	rm := make([]int, size*size)
	for pos := range rm {
		row, col := pos/size, pos%size
		rm[pos] = (row/boxSize)*boxSize + col/boxSize
	}
	l, err := NewLayout(size, rm)
	if err != nil {
		// Standard layouts are formulaic and always valid; panic on bugs.
		panic("standard layout failed validation: " + err.Error())
	}
	l.Type = "standard"
	return l
}

// NewLayout builds a Layout from an arbitrary region map and validates it.
// regionMap[pos] must be in [0, size) for every pos.
func NewLayout(size int, regionMap []int) (*Layout, error) {
	if len(regionMap) != size*size {
		return nil, fmt.Errorf("layout: region map has %d cells, expected %d", len(regionMap), size*size)
	}
	l := &Layout{
		Type:        "jigsaw",
		Size:        size,
		PosToRegion: regionMap,
	}
	if err := l.buildRegionToCells(); err != nil {
		return nil, err
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// buildRegionToCells fills the RegionToCells inverse table and checks that
// each region receives exactly Size cells.
func (l *Layout) buildRegionToCells() error {
	l.RegionToCells = make([][]int, l.Size)

	for pos, r := range l.PosToRegion {
		if r < 0 || r >= l.Size {
			return fmt.Errorf("layout: cell %d has out-of-range region %d", pos, r)
		}
		if len(l.RegionToCells[r]) >= l.Size {
			return fmt.Errorf("layout: region %d has more than %d cells", r, l.Size)
		}
		l.RegionToCells[r] = append(l.RegionToCells[r], pos)
	}

	for r := range l.Size {
		if len(l.RegionToCells[r]) != l.Size {
			return fmt.Errorf("layout: region %d has %d cells, expected %d", r, len(l.RegionToCells[r]), l.Size)
		}
	}
	return nil
}

// validate checks that all regions are orthogonally contiguous.
// buildRegionToCells must have been called first.
func (l *Layout) validate() error {
	for r := range l.Size {
		if err := l.validateContiguous(r); err != nil {
			return err
		}
	}
	return nil
}

// validateContiguous performs a BFS flood fill to verify that all cells of
// region r are reachable from each other via orthogonal adjacency.
func (l *Layout) validateContiguous(region int) error {
	cells := l.RegionToCells[region]
	total := l.Size * l.Size

	inRegion := make([]bool, total)
	for _, pos := range cells {
		inRegion[pos] = true
	}

	visited := make([]bool, total)
	queue := make([]int, 0, l.Size)
	queue = append(queue, cells[0])
	visited[cells[0]] = true
	count := 1

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		row, col := pos/l.Size, pos%l.Size
		neighbors := [4]int{pos - l.Size, pos + l.Size, pos - 1, pos + 1}
		valid := [4]bool{row > 0, row < l.Size-1, col > 0, col < l.Size-1}

		for i, nb := range neighbors {
			if valid[i] && inRegion[nb] && !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}

	if count != l.Size {
		return fmt.Errorf("layout: region %d is not contiguous (%d of %d cells reachable from cell %d)",
			region, count, l.Size, cells[0])
	}
	return nil
}
