package dispatcher

import (
	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
)

// tileGeometry computes a client's position and size within screen
// per the formulas in spec §4.5. root reports whether screen is the
// root screen (the one carrying the icon row).
func tileGeometry(mode change.CPSMode, screen geometry.Box, root bool, border, iconRowHeight int) (geometry.Box, bool) {
	sx, sy, sw, sh := screen.X, screen.Y, screen.Width, screen.Height
	t := sy
	if root {
		t = sy + iconRowHeight
	}
	mx := sx + sw/2
	my := t + (sh-(t-sy))/2
	b2 := 2 * border

	switch mode {
	case change.Max:
		return geometry.Box{X: sx, Y: t, Width: sw - b2, Height: sy + sh - t - b2}, true
	case change.SplitLeft:
		return geometry.Box{X: sx, Y: t, Width: mx - sx - b2, Height: sy + sh - t - b2}, true
	case change.SplitRight:
		return geometry.Box{X: mx, Y: t, Width: sx + sw - mx - b2, Height: sy + sh - t - b2}, true
	case change.SplitTop:
		return geometry.Box{X: sx, Y: t, Width: sw - b2, Height: my - t - b2}, true
	case change.SplitBottom:
		return geometry.Box{X: sx, Y: my, Width: sw - b2, Height: sy + sh - my - b2}, true
	default:
		return geometry.Box{}, false
	}
}

// retile recomputes and applies w's tiled geometry within box, if its
// current mode is anything other than Floating.
func (d *Dispatcher) retile(w change.Window, box geometry.Box) {
	mode, ok := d.clientMode(w)
	if !ok || mode == change.Floating {
		return
	}
	root, _ := d.mdl.RootScreen()
	isRoot := box == root
	tiled, ok := tileGeometry(mode, box, isRoot, d.cfg.BorderWidth, d.cfg.IconRowHeight)
	if !ok {
		return
	}
	if err := d.adapter.MoveResizeWindow(w, tiled); err != nil {
		d.log.Warn("retile failed", "window", w, "err", err)
	}
}

// clientMode reads back w's current CPS mode via the model's public
// query surface (added alongside RootScreen — see query.go).
func (d *Dispatcher) clientMode(w change.Window) (change.CPSMode, bool) {
	return d.mdl.FindMode(w)
}

// restack computes the layer-ordered stacking list (parent then its
// children, families in ascending layer), splices the focused family to
// the top of its own layer band — just below the first family of a
// strictly higher layer, per the original's do_relayer
// (clientmodel-events.cpp) — raises icons above all of that, and the
// move/resize placeholder above everything, per the end-of-tick rule
// in spec §4.4.
func (d *Dispatcher) restack() {
	ordered := d.mdl.GetVisibleInLayerOrder()

	focused, hasFocused := d.mdl.GetFocused()
	var focusedParent change.Window
	var focusedLayer int
	if hasFocused {
		if p, isChild := d.mdl.ParentOf(focused); isChild {
			focusedParent = p
		} else {
			focusedParent = focused
		}
		focusedLayer, _ = d.mdl.FindLayer(focusedParent)
	}

	families := make([]change.Window, 0, len(ordered)*2)
	var focusedFamily []change.Window
	inserted := false
	for _, w := range ordered {
		if hasFocused && w == focusedParent {
			focusedFamily = append([]change.Window{w}, d.mdl.ChildrenOf(w)...)
			continue
		}
		if hasFocused && !inserted {
			if layer, _ := d.mdl.FindLayer(w); layer > focusedLayer {
				families = append(families, focusedFamily...)
				inserted = true
			}
		}
		families = append(families, w)
		families = append(families, d.mdl.ChildrenOf(w)...)
	}
	if hasFocused && !inserted {
		families = append(families, focusedFamily...)
	}

	for _, icon := range d.aux.Icons() {
		families = append(families, icon.IconWindow)
	}
	if mr, ok := d.aux.Current(); ok {
		families = append(families, mr.Placeholder)
	}

	if err := d.adapter.RestackWindows(families); err != nil {
		d.log.Warn("restack failed", "err", err)
	}
}

// reflowIcons lays out every registered icon left-to-right, top-to-bottom
// anchored at the root screen origin, wrapping at the root screen
// width, per the end-of-tick rule in spec §4.4.
func (d *Dispatcher) reflowIcons() {
	root, ok := d.mdl.RootScreen()
	if !ok {
		return
	}
	x, y := root.X, root.Y
	rowHeight := d.cfg.IconHeight
	for _, icon := range d.aux.Icons() {
		if x+d.cfg.IconWidth > root.Right() && x != root.X {
			x = root.X
			y += rowHeight
		}
		box := geometry.Box{X: x, Y: y, Width: d.cfg.IconWidth, Height: d.cfg.IconHeight}
		if err := d.adapter.MoveResizeWindow(icon.IconWindow, box); err != nil {
			d.log.Warn("icon reflow move failed", "icon", icon.IconWindow, "err", err)
		}
		x += d.cfg.IconWidth
	}
}
