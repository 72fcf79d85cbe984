package model

import (
	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
)

// anyMoveResizeActive reports whether some client is currently in the
// Moving or Resizing transient desktop. At most one can be, per
// invariant 2; this is how desktop-level operations enforce that
// invariant without reaching into internal/xaux.
func (m *Model) anyMoveResizeActive() bool {
	for _, c := range m.clients {
		if c.Desktop.IsMoving() || c.Desktop.IsResizing() {
			return true
		}
	}
	return false
}

// loseFocusIfHeld clears focus if w (or one of its children) currently
// holds it. Used by every operation that may move a client somewhere
// invisible.
func (m *Model) loseFocusIfHeld(w change.Window) {
	if m.focusedIsOrBelongsTo(w) {
		m.clearFocus()
	}
}

// Iconify moves w to the Icon pseudo-desktop. No-op unless w's current
// desktop is User(i) or AllDesktops.
func (m *Model) Iconify(w change.Window) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsUserOrAll() {
		return
	}
	m.loseFocusIfHeld(w)
	m.setClientDesktop(c, desktop.IconDesktop)
}

// Deiconify restores w from Icon back to User(current), or to
// AllDesktops if it was sticky when iconified. Focuses w afterward if
// w.Autofocus. No-op unless w is currently Icon.
func (m *Model) Deiconify(w change.Window) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsIcon() {
		return
	}
	target := m.restoreDesktop(c)
	m.setClientDesktop(c, target)
	if c.Autofocus {
		m.Focus(w)
	}
}

// StartMoving begins an interactive move of w. No-op if any client is
// already moving or resizing, or w is iconified, moving, or resizing.
func (m *Model) StartMoving(w change.Window) {
	m.startTransient(w, desktop.MovingDesktop)
}

// StartResizing begins an interactive resize of w. Same preconditions
// as StartMoving.
func (m *Model) StartResizing(w change.Window) {
	m.startTransient(w, desktop.ResizingDesktop)
}

func (m *Model) startTransient(w change.Window, target desktop.Desktop) {
	c, ok := m.clients[w]
	if !ok {
		return
	}
	if m.anyMoveResizeActive() || c.Desktop.IsIcon() || c.Desktop.IsMoving() || c.Desktop.IsResizing() {
		return
	}
	m.loseFocusIfHeld(w)
	m.setClientDesktop(c, target)
}

// StopMoving ends an interactive move, relocating w to newX, newY and
// restoring its prior desktop and focus. No-op unless w is currently
// Moving.
func (m *Model) StopMoving(w change.Window, newX, newY int) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsMoving() {
		return
	}
	m.finishTransient(c)
	c.X, c.Y = newX, newY
	m.emit(change.LocationChange(w, newX, newY))
}

// StopResizing ends an interactive resize, restoring w's prior desktop
// and focus. If newWidth and newHeight are both positive, resizes w and
// emits SizeChange; otherwise the size is left unchanged and no
// SizeChange is emitted, though the desktop/focus restoration still
// happens.
func (m *Model) StopResizing(w change.Window, newWidth, newHeight int) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsResizing() {
		return
	}
	m.finishTransient(c)
	if newWidth > 0 && newHeight > 0 {
		c.W, c.H = newWidth, newHeight
		m.emit(change.SizeChange(w, newWidth, newHeight))
	}
}

func (m *Model) finishTransient(c *Client) {
	target := m.restoreDesktop(c)
	m.setClientDesktop(c, target)
	if c.Autofocus {
		m.Focus(c.Window)
	}
}

// ToggleStick swaps w between User(current) and AllDesktops. No-op
// unless w's source desktop is User or AllDesktops. Never touches
// focus.
func (m *Model) ToggleStick(w change.Window) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsUserOrAll() {
		return
	}
	if c.Desktop.IsAll() {
		m.setClientDesktop(c, m.currentUserDesktop())
		return
	}
	m.setClientDesktop(c, desktop.AllDesktops)
}

// ClientNextDesktop, ClientPrevDesktop move w to the next/previous
// user desktop, wrapping modulo N. No-op unless w's source desktop is
// User or AllDesktops.
func (m *Model) ClientNextDesktop(w change.Window) { m.clientShiftDesktop(w, 1) }
func (m *Model) ClientPrevDesktop(w change.Window) { m.clientShiftDesktop(w, -1) }

func (m *Model) clientShiftDesktop(w change.Window, step int) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsUserOrAll() {
		return
	}
	base := m.currentDesktop
	if c.Desktop.IsUser() {
		base = c.Desktop.Index()
	}
	next := m.wrap(base + step)
	m.loseFocusIfHeld(w)
	m.setClientDesktop(c, desktop.NewUser(next, m.numDesktops))
}

// ClientResetDesktop moves w back onto User(current). No-op if it is
// already there, or if its source desktop is neither User nor
// AllDesktops.
func (m *Model) ClientResetDesktop(w change.Window) {
	c, ok := m.clients[w]
	if !ok || !c.Desktop.IsUserOrAll() {
		return
	}
	target := m.currentUserDesktop()
	if c.Desktop == target {
		return
	}
	m.loseFocusIfHeld(w)
	m.setClientDesktop(c, target)
}

// NextDesktop, PrevDesktop change the viewed desktop, wrapping modulo
// N. No-op if a move or resize is in progress. Drops focus first if
// the focused client becomes invisible, then restores whichever client
// last held focus on the destination desktop, if any.
func (m *Model) NextDesktop() { m.shiftCurrentDesktop(1) }
func (m *Model) PrevDesktop() { m.shiftCurrentDesktop(-1) }

func (m *Model) shiftCurrentDesktop(step int) {
	if m.anyMoveResizeActive() {
		return
	}
	prev := m.currentDesktop
	next := m.wrap(prev + step)
	if next == prev {
		return
	}

	if m.hasFocused {
		if c, ok := m.clients[m.focused]; ok && !m.willBeVisibleOnDesktop(c, next) {
			m.clearFocus()
		}
	}

	m.currentDesktop = next
	m.emit(change.CurrentDesktopChange(prev, next))

	if last, ok := m.lastFocus[next]; ok && m.hasLastFocus[next] {
		if c, exists := m.clients[last]; exists && c.Mapped && m.isVisibleDesktop(c.Desktop) {
			m.setFocus(last, true)
		}
	}
}

// willBeVisibleOnDesktop reports whether c would remain visible after
// the current desktop becomes next.
func (m *Model) willBeVisibleOnDesktop(c *Client, next int) bool {
	if c.Desktop.IsAll() {
		return true
	}
	return c.Desktop.IsUser() && c.Desktop.Index() == next
}
