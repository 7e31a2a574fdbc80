package rules

import "fmt"

// Point is a cell coordinate on the board. Points have no identity beyond
// their value.
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Equals checks if 2 points are the same x,y coordinate
func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Clone returns a copy of the point.
func (p *Point) Clone() *Point {
	return &Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// wrap folds p back onto a width x height torus. Only a single step off the
// edge is corrected, which is all a one cell move can produce.
func (p *Point) wrap(width, height int32) {
	if p.X > width-1 {
		p.X = 0
	} else if p.X < 0 {
		p.X = width - 1
	}

	if p.Y > height-1 {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = height - 1
	}
}
