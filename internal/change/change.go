// Package change defines the tagged family of model-change events
// appended by the Client Model and drained by the Change Dispatcher,
// grounded on the original's Change class hierarchy
// (model/changes.hpp) — here collapsed into a single sum type per
// design note §9 ("downcast-driven event dispatch ... replaced by a
// single sum type for Change with one constructor per kind").
package change

import (
	"fmt"

	"github.com/ashwm/ashwm/internal/desktop"
)

// Kind discriminates the Change variants carried in a Change value.
type Kind int

const (
	KindClientDesktop Kind = iota
	KindCurrentDesktop
	KindLayer
	KindFocus
	KindLocation
	KindSize
	KindScreen
	KindCPSMode
	KindChildAdd
	KindChildRemove
	KindUnmap
	KindDestroy
)

// Window is the opaque handle identifying a managed top-level window,
// unique across the process lifetime.
type Window uint32

// CPSMode is the client position/scale discipline. It is defined in
// this leaf package, not in model, so change has no dependency on the
// model package it feeds; model and dispatcher use this type directly.
type CPSMode int

const (
	Floating CPSMode = iota
	SplitLeft
	SplitRight
	SplitTop
	SplitBottom
	Max
)

// Box is a plain rectangle, duplicated from geometry to keep this leaf
// package dependency-free except for desktop.
type Box struct {
	X, Y          int
	Width, Height int
}

// Change is a single tagged event. Only the fields relevant to Kind are
// populated; the zero value of irrelevant fields is never inspected.
type Change struct {
	Kind Kind

	Window Window

	// ClientDesktopChange / present on KindClientDesktop
	PrevDesktop desktop.Desktop
	NextDesktop desktop.Desktop

	// CurrentDesktopChange / present on KindCurrentDesktop
	PrevCurrent int
	NextCurrent int

	// LayerChange
	Layer int

	// FocusChange — either may be the zero Window (0), meaning "none"
	PrevFocus Window
	NextFocus Window
	HasPrevFocus bool
	HasNextFocus bool

	// LocationChange
	X, Y int

	// SizeChange
	W, H int

	// ScreenChange
	Bounds Box

	// CPSModeChange
	Mode CPSMode

	// ChildAddChange / ChildRemoveChange
	Parent Window
	Child  Window

	// DestroyChange
	LastDesktop desktop.Desktop
	LastLayer   int
}

func ClientDesktopChange(w Window, prev, next desktop.Desktop) Change {
	return Change{Kind: KindClientDesktop, Window: w, PrevDesktop: prev, NextDesktop: next}
}

func CurrentDesktopChange(prev, next int) Change {
	return Change{Kind: KindCurrentDesktop, PrevCurrent: prev, NextCurrent: next}
}

func LayerChange(w Window, layer int) Change {
	return Change{Kind: KindLayer, Window: w, Layer: layer}
}

// FocusChangeEvent builds a focus transition. A zero Window value combined
// with has=false represents "no window" (the root parks focus there).
func FocusChangeEvent(prev Window, hasPrev bool, next Window, hasNext bool) Change {
	return Change{Kind: KindFocus, PrevFocus: prev, HasPrevFocus: hasPrev, NextFocus: next, HasNextFocus: hasNext}
}

func LocationChange(w Window, x, y int) Change {
	return Change{Kind: KindLocation, Window: w, X: x, Y: y}
}

func SizeChange(w Window, width, height int) Change {
	return Change{Kind: KindSize, Window: w, W: width, H: height}
}

func ScreenChange(w Window, bounds Box) Change {
	return Change{Kind: KindScreen, Window: w, Bounds: bounds}
}

func CPSModeChange(w Window, mode CPSMode) Change {
	return Change{Kind: KindCPSMode, Window: w, Mode: mode}
}

func ChildAddChange(parent, child Window) Change {
	return Change{Kind: KindChildAdd, Parent: parent, Child: child}
}

func ChildRemoveChange(parent, child Window) Change {
	return Change{Kind: KindChildRemove, Parent: parent, Child: child}
}

func UnmapChange(w Window) Change {
	return Change{Kind: KindUnmap, Window: w}
}

func DestroyChange(w Window, lastDesktop desktop.Desktop, lastLayer int) Change {
	return Change{Kind: KindDestroy, Window: w, LastDesktop: lastDesktop, LastLayer: lastLayer}
}

func (c Change) String() string {
	switch c.Kind {
	case KindClientDesktop:
		return fmt.Sprintf("ClientDesktopChange(%d, %s->%s)", c.Window, c.PrevDesktop, c.NextDesktop)
	case KindCurrentDesktop:
		return fmt.Sprintf("CurrentDesktopChange(%d->%d)", c.PrevCurrent, c.NextCurrent)
	case KindLayer:
		return fmt.Sprintf("LayerChange(%d, %d)", c.Window, c.Layer)
	case KindFocus:
		return fmt.Sprintf("FocusChange(%v->%v)", focusStr(c.PrevFocus, c.HasPrevFocus), focusStr(c.NextFocus, c.HasNextFocus))
	case KindLocation:
		return fmt.Sprintf("LocationChange(%d, %d,%d)", c.Window, c.X, c.Y)
	case KindSize:
		return fmt.Sprintf("SizeChange(%d, %dx%d)", c.Window, c.W, c.H)
	case KindScreen:
		return fmt.Sprintf("ScreenChange(%d, %+v)", c.Window, c.Bounds)
	case KindCPSMode:
		return fmt.Sprintf("CPSModeChange(%d, %d)", c.Window, c.Mode)
	case KindChildAdd:
		return fmt.Sprintf("ChildAddChange(%d, %d)", c.Parent, c.Child)
	case KindChildRemove:
		return fmt.Sprintf("ChildRemoveChange(%d, %d)", c.Parent, c.Child)
	case KindUnmap:
		return fmt.Sprintf("UnmapChange(%d)", c.Window)
	case KindDestroy:
		return fmt.Sprintf("DestroyChange(%d, %s, %d)", c.Window, c.LastDesktop, c.LastLayer)
	default:
		return "Change(?)"
	}
}

func focusStr(w Window, has bool) string {
	if !has {
		return "none"
	}
	return fmt.Sprintf("%d", w)
}
