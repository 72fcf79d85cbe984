package screen

import (
	"testing"

	"github.com/ashwm/ashwm/internal/geometry"
)

func twoSideBySide() *Graph {
	return New([]geometry.Box{
		{X: 0, Y: 0, Width: 1920, Height: 1080},
		{X: 1920, Y: 0, Width: 1920, Height: 1080},
	})
}

func TestNeighborRightLeft(t *testing.T) {
	g := twoSideBySide()
	left := g.Boxes()[0]
	right := g.Boxes()[1]

	got, ok := g.Neighbor(left, geometry.DirRight)
	if !ok || got != right {
		t.Fatalf("expected right neighbor %+v, got %+v ok=%v", right, got, ok)
	}
	got, ok = g.Neighbor(right, geometry.DirLeft)
	if !ok || got != left {
		t.Fatalf("expected left neighbor %+v, got %+v ok=%v", left, got, ok)
	}
	if _, ok := g.Neighbor(left, geometry.DirUp); ok {
		t.Fatalf("expected no up neighbor for a side-by-side pair")
	}
}

func TestRootScreenPrefersOrigin(t *testing.T) {
	g := New([]geometry.Box{
		{X: 1920, Y: 0, Width: 1920, Height: 1080},
		{X: 0, Y: 0, Width: 1920, Height: 1080},
	})
	root, ok := g.RootScreen()
	if !ok || root.X != 0 || root.Y != 0 {
		t.Fatalf("expected origin-anchored root screen, got %+v ok=%v", root, ok)
	}
}

func TestClosestPicksNearestCenter(t *testing.T) {
	g := twoSideBySide()
	box := geometry.Box{X: 1800, Y: 0, Width: 100, Height: 100}
	closest, ok := g.Closest(box)
	if !ok || closest.X != 1920 {
		t.Fatalf("expected the second monitor as closest, got %+v ok=%v", closest, ok)
	}
}

func TestContaining(t *testing.T) {
	g := twoSideBySide()
	box, ok := g.Containing(geometry.Dimension2D{X: 2000, Y: 10})
	if !ok || box.X != 1920 {
		t.Fatalf("expected point to fall in the second monitor, got %+v ok=%v", box, ok)
	}
	if _, ok := g.Containing(geometry.Dimension2D{X: -10, Y: -10}); ok {
		t.Fatalf("expected no monitor to contain a negative point")
	}
}

func TestRebuildReplacesBoxes(t *testing.T) {
	g := twoSideBySide()
	g.Rebuild([]geometry.Box{{X: 0, Y: 0, Width: 800, Height: 600}})
	if len(g.Boxes()) != 1 {
		t.Fatalf("expected rebuild to replace the monitor set, got %d boxes", len(g.Boxes()))
	}
}
