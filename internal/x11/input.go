package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
)

func (c *Connection) SetInputFocus(w change.Window) error {
	return xproto.SetInputFocusChecked(
		c.xu.Conn(), xproto.InputFocusPointerRoot, xproto.Window(w), xproto.TimeCurrentTime,
	).Check()
}

func (c *Connection) ClearInputFocus() error {
	return xproto.SetInputFocusChecked(
		c.xu.Conn(), xproto.InputFocusPointerRoot, c.root, xproto.TimeCurrentTime,
	).Check()
}

func (c *Connection) GrabPointerButton(w change.Window, button MouseButton, mods ModMask) error {
	return xproto.GrabButtonChecked(
		c.xu.Conn(), false, xproto.Window(w),
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		0, 0,
		byte(button), uint16(mods),
	).Check()
}

func (c *Connection) UngrabPointerButton(w change.Window, button MouseButton, mods ModMask) error {
	return xproto.UngrabButtonChecked(c.xu.Conn(), byte(button), xproto.Window(w), uint16(mods)).Check()
}

// ConfinePointer grabs the pointer and restricts it to w's window for
// the duration of an interactive move/resize, per spec §6.
func (c *Connection) ConfinePointer(w change.Window) error {
	_, err := xproto.GrabPointer(
		c.xu.Conn(), false, c.root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease|xproto.EventMaskPointerMotion,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.Window(w), 0, xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("x11: confine pointer: %w", err)
	}
	return nil
}

func (c *Connection) ReleasePointer() error {
	return xproto.UngrabPointerChecked(c.xu.Conn(), xproto.TimeCurrentTime).Check()
}

func (c *Connection) QueryPointer() (geometry.Dimension2D, error) {
	reply, err := xproto.QueryPointer(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return geometry.Dimension2D{}, fmt.Errorf("x11: query pointer: %w", err)
	}
	return geometry.Dimension2D{X: int(reply.RootX), Y: int(reply.RootY)}, nil
}
