package core

// Grid is the fixed playfield, legal cells are [0,Width-1] x [0,Height-1]
type Grid struct {
	Width, Height int
}

// NewSquareGrid returns an n x n grid
func NewSquareGrid(n int) Grid {
	return Grid{Width: n, Height: n}
}

// Contains reports whether p lies inside the inclusive bounds
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}
