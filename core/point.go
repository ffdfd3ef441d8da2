package core

import "fmt"

// Point represents a 2D grid coordinate
// X grows to the right, Y grows downward
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the neighbouring point one cell in direction d
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ContainsPoint reports whether p occurs anywhere in points
func ContainsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
