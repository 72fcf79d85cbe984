// Package xaux is the auxiliary X-side model: the handle-keyed maps
// between clients and their icon surrogate windows, the single
// process-wide MoveResize record, and the per-window "expect this
// event" effect flags used to suppress reaction to self-caused server
// events.
//
// Grounded directly on the original's XModel (model/x-model.hpp/.cpp):
// register_icon/unregister_icon/find_icon_from_*, enter_move/
// enter_resize/exit_move_resize, has_effect/set_effect/clear_effect.
// Per spec §9 open questions (a) and (b): clear_effect here is a
// proper AND-NOT (the source's OR was a bug) and has_effect is
// `(bits & effect) != 0`, not the source's ambiguous-precedence form.
package xaux

import "github.com/ashwm/ashwm/internal/change"

// Icon is the surrogate miniature window representing an iconified
// client. DrawContext is an opaque handle to whatever the adapter uses
// to paint it (an X graphics context in the reference adapter); the
// model layer never interprets it.
type Icon struct {
	Client      change.Window
	IconWindow  change.Window
	DrawContext uintptr
}

// Kind discriminates a MoveResize gesture.
type Kind int

const (
	KindMove Kind = iota
	KindResize
)

// MoveResize records the single process-wide interactive move-or-resize
// in progress, if any.
type MoveResize struct {
	Client      change.Window
	Placeholder change.Window
	Kind        Kind
	PointerX    int
	PointerY    int
}

// Effect is a bitset of short-lived expectations set by the dispatcher
// before issuing a server call that would otherwise produce an event
// the adapter must ignore.
type Effect uint8

const (
	ExpectMap Effect = 1 << iota
	ExpectUnmap
)

// Model is the auxiliary X-side store. It holds no reference to the
// Client Model; all cross-referencing is by Window handle.
type Model struct {
	clientToIcon map[change.Window]*Icon
	iconWinToIcon map[change.Window]*Icon

	moveResize *MoveResize

	effects map[change.Window]Effect
}

// New returns an empty auxiliary model.
func New() *Model {
	return &Model{
		clientToIcon:  make(map[change.Window]*Icon),
		iconWinToIcon: make(map[change.Window]*Icon),
		effects:       make(map[change.Window]Effect),
	}
}

// RegisterIcon records a new icon for a client. The Model takes
// ownership of icon's bookkeeping; it must not already have an icon
// for icon.Client (at most one icon per client, per spec §3).
func (m *Model) RegisterIcon(icon *Icon) {
	m.clientToIcon[icon.Client] = icon
	m.iconWinToIcon[icon.IconWindow] = icon
}

// UnregisterIcon removes the bookkeeping for an icon. The caller is
// responsible for destroying the underlying icon window.
func (m *Model) UnregisterIcon(icon *Icon) {
	delete(m.clientToIcon, icon.Client)
	delete(m.iconWinToIcon, icon.IconWindow)
}

// FindIconFromClient returns the icon standing in for client, if any.
func (m *Model) FindIconFromClient(client change.Window) (*Icon, bool) {
	icon, ok := m.clientToIcon[client]
	return icon, ok
}

// FindIconFromIconWindow returns the icon whose surrogate window is
// iconWin, if any.
func (m *Model) FindIconFromIconWindow(iconWin change.Window) (*Icon, bool) {
	icon, ok := m.iconWinToIcon[iconWin]
	return icon, ok
}

// Icons returns every currently registered icon, in no particular
// order — callers that need row layout order sort by client window or
// by whatever order the dispatcher tracks separately.
func (m *Model) Icons() []*Icon {
	out := make([]*Icon, 0, len(m.clientToIcon))
	for _, icon := range m.clientToIcon {
		out = append(out, icon)
	}
	return out
}

// EnterMove records that client is now being moved via placeholder,
// anchored at the given pointer position. No-op if a move or resize is
// already in progress (at most one MoveResize process-wide, per
// invariant 2).
func (m *Model) EnterMove(client, placeholder change.Window, pointerX, pointerY int) {
	if m.moveResize != nil {
		return
	}
	m.moveResize = &MoveResize{Client: client, Placeholder: placeholder, Kind: KindMove, PointerX: pointerX, PointerY: pointerY}
}

// EnterResize records that client is now being resized via
// placeholder. Same no-op rule as EnterMove.
func (m *Model) EnterResize(client, placeholder change.Window, pointerX, pointerY int) {
	if m.moveResize != nil {
		return
	}
	m.moveResize = &MoveResize{Client: client, Placeholder: placeholder, Kind: KindResize, PointerX: pointerX, PointerY: pointerY}
}

// UpdatePointer records a new pointer position and returns the delta
// from the previous position. Returns (0, 0) if no move/resize is in
// progress.
func (m *Model) UpdatePointer(x, y int) (dx, dy int) {
	if m.moveResize == nil {
		return 0, 0
	}
	dx = x - m.moveResize.PointerX
	dy = y - m.moveResize.PointerY
	m.moveResize.PointerX = x
	m.moveResize.PointerY = y
	return dx, dy
}

// Current returns the in-progress MoveResize record, if any.
func (m *Model) Current() (MoveResize, bool) {
	if m.moveResize == nil {
		return MoveResize{}, false
	}
	return *m.moveResize, true
}

// ExitMoveResize clears the in-progress record. No-op if none.
func (m *Model) ExitMoveResize() {
	m.moveResize = nil
}

// HasEffect reports whether window carries effect. `(bits & effect) !=
// 0` per spec §9(b) — the source's ambiguous-precedence expression is
// explicitly not replicated.
func (m *Model) HasEffect(w change.Window, effect Effect) bool {
	return (m.effects[w] & effect) != 0
}

// SetEffect ORs effect into window's bitset.
func (m *Model) SetEffect(w change.Window, effect Effect) {
	m.effects[w] |= effect
}

// ClearEffect ANDs-NOT effect out of window's bitset, per spec §9(a)
// (the source's `clear_effect` used OR, which never clears anything;
// this is specified as the fix, not the bug).
func (m *Model) ClearEffect(w change.Window, effect Effect) {
	m.effects[w] &^= effect
}

// RemoveAllEffects clears every effect flag recorded for window.
func (m *Model) RemoveAllEffects(w change.Window) {
	delete(m.effects, w)
}
