// Package screen builds and queries the planar adjacency graph over the
// monitor boxes reported by RandR, grounded on the original's
// CrtManager (model/screen.h) and generalizing the teacher's
// x11.Monitor/GetMonitors shape (internal/x11/monitors.go) into a pure,
// X-independent data structure.
package screen

import "github.com/ashwm/ashwm/internal/geometry"

// Graph is a planar adjacency graph over a fixed set of monitor boxes.
// It is rebuilt wholesale whenever the display server reports a
// monitor reconfiguration; queries never mutate it.
type Graph struct {
	boxes []geometry.Box
}

// New builds a Graph from the given monitor boxes.
func New(boxes []geometry.Box) *Graph {
	g := &Graph{}
	g.Rebuild(boxes)
	return g
}

// Rebuild replaces the graph's monitor set.
func (g *Graph) Rebuild(boxes []geometry.Box) {
	cp := make([]geometry.Box, len(boxes))
	copy(cp, boxes)
	g.boxes = cp
}

// Boxes returns the current monitor boxes in server-reported order.
func (g *Graph) Boxes() []geometry.Box {
	cp := make([]geometry.Box, len(g.boxes))
	copy(cp, g.boxes)
	return cp
}

// RootScreen returns the monitor anchored at (0, 0), the container for
// the icon row and the origin for pack-corner layout. If no monitor
// starts at the origin it returns the first monitor; it returns false
// only when the graph has no monitors.
func (g *Graph) RootScreen() (geometry.Box, bool) {
	for _, b := range g.boxes {
		if b.X == 0 && b.Y == 0 {
			return b, true
		}
	}
	if len(g.boxes) > 0 {
		return g.boxes[0], true
	}
	return geometry.Box{}, false
}

// Containing returns the monitor box containing point p, if any.
func (g *Graph) Containing(p geometry.Dimension2D) (geometry.Box, bool) {
	for _, b := range g.boxes {
		if b.Contains(p) {
			return b, true
		}
	}
	return geometry.Box{}, false
}

// verticalOverlap reports whether two boxes' vertical intervals overlap,
// used by the left/right adjacency test.
func verticalOverlap(a, b geometry.Box) bool {
	return a.Y < b.Bottom() && b.Y < a.Bottom()
}

// horizontalOverlap reports whether two boxes' horizontal intervals
// overlap, used by the up/down adjacency test.
func horizontalOverlap(a, b geometry.Box) bool {
	return a.X < b.Right() && b.X < a.Right()
}

// Neighbor returns the monitor box adjacent to box in direction dir, or
// false if none is edge-adjacent. Two boxes are RIGHT-neighbors if
// box's right edge equals the candidate's left edge and their vertical
// intervals overlap; the other three directions are analogous.
func (g *Graph) Neighbor(box geometry.Box, dir geometry.Direction) (geometry.Box, bool) {
	for _, cand := range g.boxes {
		if cand == box {
			continue
		}
		switch dir {
		case geometry.DirRight:
			if box.Right() == cand.X && verticalOverlap(box, cand) {
				return cand, true
			}
		case geometry.DirLeft:
			if cand.Right() == box.X && verticalOverlap(box, cand) {
				return cand, true
			}
		case geometry.DirDown:
			if box.Bottom() == cand.Y && horizontalOverlap(box, cand) {
				return cand, true
			}
		case geometry.DirUp:
			if cand.Bottom() == box.Y && horizontalOverlap(box, cand) {
				return cand, true
			}
		}
	}
	return geometry.Box{}, false
}

// Closest returns the monitor box whose center is nearest box's center,
// used to re-home clients whose bounding box no longer intersects any
// monitor after update_screens. Returns false if the graph has no
// monitors.
func (g *Graph) Closest(box geometry.Box) (geometry.Box, bool) {
	if len(g.boxes) == 0 {
		return geometry.Box{}, false
	}
	center := box.Center()
	best := g.boxes[0]
	bestDist := sqDist(center, best.Center())
	for _, cand := range g.boxes[1:] {
		d := sqDist(center, cand.Center())
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, true
}

func sqDist(a, b geometry.Dimension2D) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
