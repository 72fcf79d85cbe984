package model

import "github.com/ashwm/ashwm/internal/change"

// AddChild binds child to parent. No-op if parent does not exist or
// child already has a parent. Emits ChildAddChange; if parent is
// currently focusable and marked Autofocus, also focuses child.
func (m *Model) AddChild(parent, child change.Window) {
	p, ok := m.clients[parent]
	if !ok {
		return
	}
	if _, already := m.children[child]; already {
		return
	}
	p.Children = append(p.Children, child)
	m.children[child] = &Child{Window: child, Parent: parent}
	m.emit(change.ChildAddChange(parent, child))

	if p.Autofocus && p.Mapped && m.isVisibleDesktop(p.Desktop) {
		m.setFocus(child, true)
	}
}

// RemoveChild unbinds child from its parent. If refocusParent is true
// and child currently holds focus, focus moves to the parent instead
// of dropping to none. No-op if child has no parent.
func (m *Model) RemoveChild(child change.Window, refocusParent bool) {
	ch, ok := m.children[child]
	if !ok {
		return
	}
	if m.hasFocused && m.focused == child {
		if refocusParent {
			m.setFocus(ch.Parent, true)
		} else {
			m.clearFocus()
		}
	}
	delete(m.children, child)
	if p, ok := m.clients[ch.Parent]; ok {
		p.Children = removeWindow(p.Children, child)
	}
	m.emit(change.ChildRemoveChange(ch.Parent, child))
}

// ParentOf returns the live parent client window of child, if child is
// a registered child.
func (m *Model) ParentOf(child change.Window) (change.Window, bool) {
	ch, ok := m.children[child]
	if !ok {
		return 0, false
	}
	return ch.Parent, true
}
