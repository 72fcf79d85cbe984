package model

import "github.com/ashwm/ashwm/internal/change"

// UnmapClient marks w unmapped, removing it (and its children) from
// the focus cycle. Emits focus loss first if w or a child held focus,
// then UnmapChange. No-op if w is unknown or already unmapped.
func (m *Model) UnmapClient(w change.Window) {
	c, ok := m.clients[w]
	if !ok || !c.Mapped {
		return
	}
	m.loseFocusIfHeld(w)
	c.Mapped = false
	m.emit(change.UnmapChange(w))
}

// RemapClient marks w mapped again, re-inserting it in the focus cycle
// (a derived view of Mapped+visible clients, so nothing further is
// needed there), then emits FocusChange(prev, w) if w is autofocus and
// now visible, and finally LayerChange at w's stored layer. No-op if w
// is unknown or already mapped.
func (m *Model) RemapClient(w change.Window) {
	c, ok := m.clients[w]
	if !ok || c.Mapped {
		return
	}
	c.Mapped = true
	if c.Autofocus && m.IsVisible(w) {
		m.setFocus(w, true)
	}
	m.emit(change.LayerChange(w, c.Layer))
}
