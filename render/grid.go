package render

// Marker is a visual state of a cell. A cell holds any combination of
// markers; they are toggled independently.
type Marker uint8

const (
	// MarkerBody marks a cell covered by the snake.
	MarkerBody Marker = 1 << iota
	// MarkerHead marks the cell of the snake head.
	MarkerHead
	// MarkerFood marks the food cell.
	MarkerFood
)

// Grid is the visual board, width x height cells addressed by (x, y).
type Grid struct {
	width  int
	height int
	cells  []Marker
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Marker, width*height),
	}
}

// Width of the grid in cells.
func (g *Grid) Width() int { return g.width }

// Height of the grid in cells.
func (g *Grid) Height() int { return g.height }

// Contains reports whether (x, y) is a visible cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Add sets m on the cell, it returns false for cells outside the grid.
func (g *Grid) Add(x, y int, m Marker) bool {
	if !g.Contains(x, y) {
		return false
	}
	g.cells[y*g.width+x] |= m
	return true
}

// Remove clears m from the cell.
func (g *Grid) Remove(x, y int, m Marker) {
	if !g.Contains(x, y) {
		return
	}
	g.cells[y*g.width+x] &^= m
}

// Has reports whether every marker in m is set on the cell.
func (g *Grid) Has(x, y int, m Marker) bool {
	return g.Markers(x, y)&m == m
}

// Markers returns all markers of the cell.
func (g *Grid) Markers(x, y int) Marker {
	if !g.Contains(x, y) {
		return 0
	}
	return g.cells[y*g.width+x]
}

// Count returns the number of cells carrying m.
func (g *Grid) Count(m Marker) int {
	n := 0
	for _, c := range g.cells {
		if c&m == m {
			n++
		}
	}
	return n
}
