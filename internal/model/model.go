// Package model implements the Client Model: the authoritative,
// in-memory representation of every managed client and the operation
// surface that mutates it, publishing a totally ordered stream of
// change.Change events for the dispatcher to consume.
//
// Grounded on the original's ClientModel (exercised end-to-end by
// original_source/test/client-model.cpp) and structured in the
// teacher's idiom:
// a single struct owning plain Go maps and slices, no inheritance, no
// interfaces for the data itself — only the adapter boundary
// (internal/x11.Adapter) is an interface, matching
// internal/platform.Backend in 1broseidon/termtile.
package model

import (
	"log/slog"
	"sort"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
	"github.com/ashwm/ashwm/internal/screen"
)

// Visibility hints passed to AddClient.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// Model is the Client Model. It is not safe for concurrent use; see
// spec §5 — the core is single-threaded and cooperatively serialized.
type Model struct {
	numDesktops    int
	currentDesktop int

	clients map[change.Window]*Client
	order   []change.Window // insertion order, for stable iteration

	children map[change.Window]*Child // keyed by the child's own window

	focused    change.Window
	hasFocused bool

	// lastFocus remembers, per user-desktop index, the last client that
	// held focus before the view switched away from it, so
	// next_desktop/prev_desktop can restore it (§4.3).
	lastFocus    map[int]change.Window
	hasLastFocus map[int]bool

	screens *screen.Graph

	queue change.Queue

	log *slog.Logger
}

// New constructs an empty Model with numDesktops user desktops. Panics
// if numDesktops < 1 (an unconditional construction-time requirement,
// not a runtime no-op — there is no sensible degraded behavior for a
// window manager with zero desktops).
func New(numDesktops int, screens *screen.Graph, log *slog.Logger) *Model {
	if numDesktops < 1 {
		panic("model: numDesktops must be >= 1")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Model{
		numDesktops:  numDesktops,
		clients:      make(map[change.Window]*Client),
		children:     make(map[change.Window]*Child),
		lastFocus:    make(map[int]change.Window),
		hasLastFocus: make(map[int]bool),
		screens:      screens,
		log:          log,
	}
}

// emit appends c to the change queue, in call order.
func (m *Model) emit(c change.Change) {
	m.queue.Push(c)
}

// Changes drains every pending change event, in order, leaving the
// queue empty. This is the sole interface the Change Dispatcher uses
// to consume the model's output.
func (m *Model) Changes() []change.Change {
	return m.queue.Drain()
}

func (m *Model) currentUserDesktop() desktop.Desktop {
	return desktop.NewUser(m.currentDesktop, m.numDesktops)
}

func (m *Model) wrap(i int) int {
	i %= m.numDesktops
	if i < 0 {
		i += m.numDesktops
	}
	return i
}

// setClientDesktop moves client to next, recording the prior desktop
// as PrevDesktop and emitting ClientDesktopChange. It does not itself
// decide whether the move is legal — callers enforce each operation's
// precondition before calling this.
func (m *Model) setClientDesktop(c *Client, next desktop.Desktop) {
	prev := c.Desktop
	c.PrevDesktop = prev
	c.Desktop = next
	m.emit(change.ClientDesktopChange(c.Window, prev, next))
}

// restoreDesktop computes the target desktop for a client returning
// from Icon/Moving/Resizing: AllDesktops if it was sticky before
// entering the transient state, User(current) otherwise. Per invariant
// 3 and the "stickiness is retained across the round trip" rule.
func (m *Model) restoreDesktop(c *Client) desktop.Desktop {
	if c.PrevDesktop.IsAll() {
		return desktop.AllDesktops
	}
	return m.currentUserDesktop()
}

// isVisibleDesktop reports whether d is one of the visible pair
// {User(current), AllDesktops}.
func (m *Model) isVisibleDesktop(d desktop.Desktop) bool {
	if d.IsAll() {
		return true
	}
	return d.IsUser() && d.Index() == m.currentDesktop

}

// AddClient inserts w on User(current) at DefLayer, mapped. Emits
// ClientDesktopChange(null->User(current)), LayerChange(DefLayer), and
// — if autofocus — FocusChange(prev, w) after updating the focus
// state. If hint is Hidden, the client is created on User(current) but
// is left unmapped for the dispatcher to map later once made visible.
func (m *Model) AddClient(w change.Window, hint Visibility, loc geometry.Dimension2D, size geometry.Dimension2D, autofocus bool) {
	if _, exists := m.clients[w]; exists {
		return
	}

	c := &Client{
		Window:      w,
		Desktop:     m.currentUserDesktop(),
		PrevDesktop: desktop.Zero,
		Layer:       DefLayer,
		X:           loc.X,
		Y:           loc.Y,
		W:           size.X,
		H:           size.Y,
		Mode:        change.Floating,
		Autofocus:   autofocus,
		Mapped:      hint == Visible,
	}
	m.clients[w] = c
	m.order = append(m.order, w)

	m.emit(change.ClientDesktopChange(w, desktop.Zero, c.Desktop))
	m.emit(change.LayerChange(w, c.Layer))

	if autofocus && c.Mapped {
		m.setFocus(w, true)
	}
}

// RemoveClient tears w down. If w or any of its children holds focus,
// emits FocusChange(focused, none) first. Then, for each child of w in
// insertion order, emits ChildRemoveChange. Finally emits
// DestroyChange(w, last desktop, last layer) and removes w from every
// internal index.
func (m *Model) RemoveClient(w change.Window) {
	c, ok := m.clients[w]
	if !ok {
		return
	}

	if m.focusedIsOrBelongsTo(w) {
		m.clearFocus()
	}

	for _, childWin := range append([]change.Window(nil), c.Children...) {
		delete(m.children, childWin)
		m.emit(change.ChildRemoveChange(w, childWin))
	}

	m.emit(change.DestroyChange(w, c.Desktop, c.Layer))

	delete(m.clients, w)
	m.order = removeWindow(m.order, w)
	for idx, last := range m.lastFocus {
		if last == w {
			delete(m.lastFocus, idx)
			delete(m.hasLastFocus, idx)
		}
	}
}

func removeWindow(list []change.Window, w change.Window) []change.Window {
	out := list[:0]
	for _, x := range list {
		if x != w {
			out = append(out, x)
		}
	}
	return out
}

// focusedIsOrBelongsTo reports whether the currently focused window is
// w itself or a child of w.
func (m *Model) focusedIsOrBelongsTo(w change.Window) bool {
	if !m.hasFocused {
		return false
	}
	if m.focused == w {
		return true
	}
	if ch, ok := m.children[m.focused]; ok {
		return ch.Parent == w
	}
	return false
}

func sortByLayer(clients []*Client) {
	sort.SliceStable(clients, func(i, j int) bool { return clients[i].Layer < clients[j].Layer })
}
