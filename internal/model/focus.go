package model

import "github.com/ashwm/ashwm/internal/change"

// setFocus transitions focus to next (or to "none" if hasNext is
// false), emitting exactly one FocusChange when the transition is
// observable. It also records next as the last-focused client on the
// current desktop, for next_desktop/prev_desktop restoration.
func (m *Model) setFocus(next change.Window, hasNext bool) {
	prev, hasPrev := m.focused, m.hasFocused
	if hasPrev == hasNext && prev == next {
		return
	}
	m.emit(change.FocusChangeEvent(prev, hasPrev, next, hasNext))
	m.focused, m.hasFocused = next, hasNext
	if hasNext {
		m.lastFocus[m.currentDesktop] = next
		m.hasLastFocus[m.currentDesktop] = true
	}
}

// clearFocus drops focus to "none", if anything was focused.
func (m *Model) clearFocus() {
	m.setFocus(0, false)
}

// Focus gives w input focus directly. w may be a client or one of its
// children. No-op if w is neither, or its owning client is not
// currently mapped and visible.
func (m *Model) Focus(w change.Window) {
	c, ok := m.clients[w]
	if !ok {
		if ch, isChild := m.children[w]; isChild {
			c, ok = m.clients[ch.Parent]
		}
		if !ok {
			return
		}
	}
	if !c.Mapped || !m.isVisibleDesktop(c.Desktop) {
		return
	}
	m.setFocus(w, true)
}

// GetFocused returns the currently focused client's window, if any.
func (m *Model) GetFocused() (change.Window, bool) {
	return m.focused, m.hasFocused
}

// focusable returns every mapped, visible client eligible for the
// focus cycle, in stable insertion order, interleaving each client's
// children immediately after it. The focus cycle is a derived view,
// not a separately maintained cursor: this slice, plus the index of
// m.focused within it, is the entire cycle state.
func (m *Model) focusable() []change.Window {
	out := make([]change.Window, 0, len(m.order))
	for _, w := range m.order {
		c := m.clients[w]
		if c.Mapped && m.isVisibleDesktop(c.Desktop) {
			out = append(out, w)
			out = append(out, c.Children...)
		}
	}
	return out
}

// CycleFocusForward moves focus to the next focusable client after the
// currently focused one, wrapping around. If nothing is focused, it
// focuses the first focusable client. No-op if no client is focusable.
func (m *Model) CycleFocusForward() {
	m.cycleFocus(1)
}

// CycleFocusBackward is the mirror of CycleFocusForward.
func (m *Model) CycleFocusBackward() {
	m.cycleFocus(-1)
}

func (m *Model) cycleFocus(step int) {
	cyc := m.focusable()
	if len(cyc) == 0 {
		m.clearFocus()
		return
	}
	if !m.hasFocused {
		m.setFocus(cyc[0], true)
		return
	}
	idx := -1
	for i, w := range cyc {
		if w == m.focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		m.setFocus(cyc[0], true)
		return
	}
	next := cyc[(idx+step+len(cyc))%len(cyc)]
	m.setFocus(next, true)
}
