package model

import (
	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
)

// IsClient reports whether w is a currently managed top-level client
// (not a child, not an icon, not a destroyed window).
func (m *Model) IsClient(w change.Window) bool {
	_, ok := m.clients[w]
	return ok
}

// IsVisible reports whether w is a client currently on a visible
// desktop (User(current) or AllDesktops) and mapped.
func (m *Model) IsVisible(w change.Window) bool {
	c, ok := m.clients[w]
	return ok && c.Mapped && m.isVisibleDesktop(c.Desktop)
}

// FindDesktop returns w's current desktop.
func (m *Model) FindDesktop(w change.Window) (desktop.Desktop, bool) {
	c, ok := m.clients[w]
	if !ok {
		return desktop.Zero, false
	}
	return c.Desktop, true
}

// FindLayer returns w's current layer.
func (m *Model) FindLayer(w change.Window) (int, bool) {
	c, ok := m.clients[w]
	if !ok {
		return 0, false
	}
	return c.Layer, true
}

// GetAllClients returns every managed client regardless of desktop,
// mapped state, or visibility — iconified and off-desktop clients
// included — in insertion order. Used by state dumps, which report on
// every client the model knows about, not only the currently visible
// ones.
func (m *Model) GetAllClients() []change.Window {
	out := make([]change.Window, len(m.order))
	copy(out, m.order)
	return out
}

// GetClientsOf returns every client currently on d, in insertion order.
func (m *Model) GetClientsOf(d desktop.Desktop) []change.Window {
	var out []change.Window
	for _, w := range m.order {
		if m.clients[w].Desktop == d {
			out = append(out, w)
		}
	}
	return out
}

// GetVisibleClients returns every mapped client on a visible desktop,
// in insertion order.
func (m *Model) GetVisibleClients() []change.Window {
	var out []change.Window
	for _, w := range m.order {
		c := m.clients[w]
		if c.Mapped && m.isVisibleDesktop(c.Desktop) {
			out = append(out, w)
		}
	}
	return out
}

// GetVisibleInLayerOrder returns every mapped, visible client ordered
// by ascending layer (ties broken by insertion order) — the order the
// dispatcher restacks in.
func (m *Model) GetVisibleInLayerOrder() []change.Window {
	vis := m.GetVisibleClients()
	clients := make([]*Client, len(vis))
	for i, w := range vis {
		clients[i] = m.clients[w]
	}
	sortByLayer(clients)
	out := make([]change.Window, len(clients))
	for i, c := range clients {
		out[i] = c.Window
	}
	return out
}

// CurrentDesktop returns the index of the current user desktop.
func (m *Model) CurrentDesktop() int { return m.currentDesktop }

// NumDesktops returns the fixed number of user desktops.
func (m *Model) NumDesktops() int { return m.numDesktops }

// FindMode returns w's current CPS mode.
func (m *Model) FindMode(w change.Window) (change.CPSMode, bool) {
	c, ok := m.clients[w]
	if !ok {
		return change.Floating, false
	}
	return c.Mode, true
}

// ChildrenOf returns w's children, in insertion order.
func (m *Model) ChildrenOf(w change.Window) []change.Window {
	c, ok := m.clients[w]
	if !ok {
		return nil
	}
	out := make([]change.Window, len(c.Children))
	copy(out, c.Children)
	return out
}

// RootScreen returns the monitor box anchored at the origin (or the
// first known monitor if none is), matching screen.Graph.RootScreen.
func (m *Model) RootScreen() (geometry.Box, bool) {
	if m.screens == nil {
		return geometry.Box{}, false
	}
	return m.screens.RootScreen()
}
