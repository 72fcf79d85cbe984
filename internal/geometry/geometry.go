// Package geometry holds the axis-aligned primitives shared by the
// screen graph, the client model and the tiling formulas: boxes,
// points and the small enums used to address them.
package geometry

// Dimension2D is an (x, y) pair in display coordinates. It is used both
// for window locations and for raw pointer positions.
type Dimension2D struct {
	X, Y int
}

// Box is an axis-aligned rectangle in display coordinates.
type Box struct {
	X, Y          int
	Width, Height int
}

// Right returns the x coordinate just past the box's right edge.
func (b Box) Right() int { return b.X + b.Width }

// Bottom returns the y coordinate just past the box's bottom edge.
func (b Box) Bottom() int { return b.Y + b.Height }

// Contains reports whether point p falls within the box.
func (b Box) Contains(p Dimension2D) bool {
	return p.X >= b.X && p.X < b.Right() && p.Y >= b.Y && p.Y < b.Bottom()
}

// Intersects reports whether b and other share any area.
func (b Box) Intersects(other Box) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// Center returns the midpoint of the box.
func (b Box) Center() Dimension2D {
	return Dimension2D{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Direction is a cardinal compass direction used to query screen
// adjacency and to relocate a client to a neighboring monitor.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Corner is one of the four pack-anchor corners of the root screen.
type Corner int

const (
	CornerNW Corner = iota
	CornerNE
	CornerSW
	CornerSE
)
