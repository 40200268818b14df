package types

import "time"

// Point is a position on the game grid, in cells.
type Point struct {
	X, Y int
}

// Add returns p shifted by the given vector.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Window and grid constants
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	CellSize     = 20 // Pixel size of one grid cell
)

// Movement timing constants
const (
	InitialMoveDelay = 200 * time.Millisecond
	MoveDelayStep    = 5 * time.Millisecond
	MinMoveDelay     = 50 * time.Millisecond
)
