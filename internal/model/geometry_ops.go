package model

import (
	"sort"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
)

// ChangeMode sets w's CPS (client position/scale) mode. No-op if mode
// already equals the current mode.
func (m *Model) ChangeMode(w change.Window, mode change.CPSMode) {
	c, ok := m.clients[w]
	if !ok || c.Mode == mode {
		return
	}
	c.Mode = mode
	m.emit(change.CPSModeChange(w, mode))
}

// ChangeLocation relocates w. If the move crosses w onto a different
// screen, emits ScreenChange after LocationChange.
func (m *Model) ChangeLocation(w change.Window, x, y int) {
	c, ok := m.clients[w]
	if !ok {
		return
	}
	c.X, c.Y = x, y
	m.emit(change.LocationChange(w, x, y))
	m.rehome(c)
}

// ChangeSize resizes w. Validates width, height >= 1; rejected calls
// are silent no-ops. If the resize crosses w onto a different screen,
// emits ScreenChange after SizeChange.
func (m *Model) ChangeSize(w change.Window, width, height int) {
	c, ok := m.clients[w]
	if !ok || width < 1 || height < 1 {
		return
	}
	c.W, c.H = width, height
	m.emit(change.SizeChange(w, width, height))
	m.rehome(c)
}

func (c *Client) box() geometry.Box {
	return geometry.Box{X: c.X, Y: c.Y, Width: c.W, Height: c.H}
}

// rehome emits ScreenChange if c's bounding box now falls on a
// different monitor than its last recorded one. Off-screen-sentinel
// clients are left alone per the (-1,-1) invariant.
func (m *Model) rehome(c *Client) {
	if m.screens == nil || c.X == OffScreenSentinel && c.Y == OffScreenSentinel {
		return
	}
	box, ok := m.screens.Containing(c.box().Center())
	if !ok {
		return
	}
	if c.HasScreen && c.Screen == box {
		return
	}
	c.Screen, c.HasScreen = box, true
	m.emit(change.ScreenChange(c.Window, toChangeBox(box)))
}

func toChangeBox(b geometry.Box) change.Box {
	return change.Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// ToRelativeScreen moves w's screen home to the monitor adjacent to
// its current one in direction dir. No-op if there is no such
// neighbor, or it is identical to the current screen.
func (m *Model) ToRelativeScreen(w change.Window, dir geometry.Direction) {
	c, ok := m.clients[w]
	if !ok || !c.HasScreen || m.screens == nil {
		return
	}
	next, ok := m.screens.Neighbor(c.Screen, dir)
	if !ok || next == c.Screen {
		return
	}
	c.Screen = next
	m.emit(change.ScreenChange(w, toChangeBox(next)))
}

// ToScreenBox moves w's screen home directly to box. No-op if box is
// not one of the known monitor boxes, or identical to the current one.
func (m *Model) ToScreenBox(w change.Window, box geometry.Box) {
	c, ok := m.clients[w]
	if !ok || m.screens == nil {
		return
	}
	found := false
	for _, b := range m.screens.Boxes() {
		if b == box {
			found = true
			break
		}
	}
	if !found || (c.HasScreen && c.Screen == box) {
		return
	}
	c.Screen, c.HasScreen = box, true
	m.emit(change.ScreenChange(w, toChangeBox(box)))
}

// UpdateScreens rebuilds the screen graph from boxes. Every client
// whose bounding box no longer intersects any monitor is re-homed to
// the closest monitor, emitting ScreenChange. Clients parked at the
// (-1,-1) off-screen sentinel are left untouched.
func (m *Model) UpdateScreens(boxes []geometry.Box) {
	if m.screens == nil {
		return
	}
	m.screens.Rebuild(boxes)
	for _, w := range m.order {
		c := m.clients[w]
		if c.X == OffScreenSentinel && c.Y == OffScreenSentinel {
			continue
		}
		cb := c.box()
		intersectsAny := false
		for _, b := range boxes {
			if cb.Intersects(b) {
				intersectsAny = true
				break
			}
		}
		if intersectsAny {
			continue
		}
		closest, ok := m.screens.Closest(cb)
		if !ok {
			continue
		}
		if c.HasScreen && c.Screen == closest {
			continue
		}
		c.Screen, c.HasScreen = closest, true
		m.emit(change.ScreenChange(w, toChangeBox(closest)))
	}
}

// PackClient marks w packed into corner at the given priority. Takes
// effect the next time RepackCorner(corner) is called.
func (m *Model) PackClient(w change.Window, corner geometry.Corner, priority int) {
	c, ok := m.clients[w]
	if !ok {
		return
	}
	c.Packed = &PackInfo{Corner: corner, Priority: priority}
}

// RepackCorner lays out every client packed into corner, in ascending
// priority order, stacking them edge-to-edge starting from that corner
// of the root screen — the monitor at (0,0), which is also the anchor
// for the icon row. Emits one LocationChange per packed client, in
// layout order, even when a client's position does not change, so that
// the relative order of a corner's clients is always observable.
func (m *Model) RepackCorner(corner geometry.Corner) {
	root, ok := m.screens.RootScreen()
	if !ok {
		return
	}

	var packed []*Client
	for _, w := range m.order {
		c := m.clients[w]
		if c.Packed != nil && c.Packed.Corner == corner {
			packed = append(packed, c)
		}
	}
	sort.SliceStable(packed, func(i, j int) bool { return packed[i].Packed.Priority < packed[j].Packed.Priority })

	cursor := 0
	for _, c := range packed {
		var x, y int
		switch corner {
		case geometry.CornerNW:
			x, y = root.X+cursor, root.Y
			cursor += c.W
		case geometry.CornerNE:
			x, y = root.Right()-cursor-c.W, root.Y
			cursor += c.W
		case geometry.CornerSW:
			x, y = root.X+cursor, root.Bottom()-c.H
			cursor += c.W
		case geometry.CornerSE:
			x, y = root.Right()-cursor-c.W, root.Bottom()-c.H
			cursor += c.W
		}
		c.X, c.Y = x, y
		m.emit(change.LocationChange(c.Window, x, y))
	}
}
