package model

import (
	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
)

// Layer bounds. DefLayer sits in the middle of [MinLayer, MaxLayer].
const (
	MinLayer = 0
	MaxLayer = 8
	DefLayer = 4
)

// OffScreenSentinel is the location invariant client.go at (-1,-1):
// update_screens treats a client parked there as "not on any screen"
// and never reassigns it. Per spec §9(c).
const OffScreenSentinel = -1

// PackInfo records a packed client's corner anchor and stacking
// priority within that corner.
type PackInfo struct {
	Corner   geometry.Corner
	Priority int
}

// Client is the authoritative in-memory record for one managed
// top-level window. Only the Client Model mutates it; external readers
// get copies through the query methods.
type Client struct {
	Window change.Window

	Desktop     desktop.Desktop
	PrevDesktop desktop.Desktop

	Layer int

	X, Y int
	W, H int

	Mode   change.CPSMode
	Packed *PackInfo

	// Screen is the monitor box this client is currently homed to, as
	// last reported via ScreenChange. HasScreen is false until a
	// change_location/change_size, update_screens or to_screen_box call
	// homes it, and for a client parked at the (-1,-1) off-screen
	// sentinel.
	Screen    geometry.Box
	HasScreen bool

	Autofocus bool
	Mapped    bool

	// Children, in insertion order. Children carry no desktop, layer or
	// size of their own; they are tracked here only so add_child can
	// reject duplicates and remove_client can tear them down first.
	Children []change.Window
}

// Sticky reports whether the client is currently on the AllDesktops
// pseudo-desktop. This is a derived field, not separately stored.
func (c *Client) Sticky() bool { return c.Desktop.IsAll() }

// Child is a transient subordinate window bound to exactly one parent
// client for its entire lifetime.
type Child struct {
	Window change.Window
	Parent change.Window
}
