package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell coordinate. It doubles as a per-axis velocity.
type Point struct {
	X, Y int
}

// Game constants
const (
	DefaultWidth       = 80  // VGA text buffer columns
	DefaultHeight      = 25  // VGA text buffer rows
	DefaultMaxSegments = 100 // Body slot capacity
)

// Center returns the middle cell of the grid
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Heading is the direction the head was last steered in
type Heading int

const (
	None Heading = iota
	Up
	Down
	Left
	Right
)

// ToPoint converts a heading into a unit velocity
func (h Heading) ToPoint() Point {
	switch h {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Horizontal reports whether the heading moves along the X axis
func (h Heading) Horizontal() bool {
	return h == Left || h == Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
