package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
)

// CreateUnmanagedWindow creates an override-redirect window at box —
// used for icon surrogates and move/resize placeholders, neither of
// which should ever be redirected back through the WM itself.
func (c *Connection) CreateUnmanagedWindow(box geometry.Box) (change.Window, error) {
	wid, err := xproto.NewWindowId(c.xu.Conn())
	if err != nil {
		return 0, fmt.Errorf("x11: alloc window id: %w", err)
	}
	screen := xproto.Setup(c.xu.Conn()).DefaultScreen(c.xu.Conn())
	err = xproto.CreateWindowChecked(
		c.xu.Conn(),
		screen.RootDepth,
		wid,
		c.root,
		int16(box.X), int16(box.Y), uint16(max1(box.Width)), uint16(max1(box.Height)),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwOverrideRedirect|xproto.CwEventMask,
		[]uint32{1, xproto.EventMaskExposure},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("x11: create window: %w", err)
	}
	c.windowBoxes[change.Window(wid)] = box
	return change.Window(wid), nil
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func (c *Connection) DestroyWindow(w change.Window) error {
	delete(c.windowBoxes, w)
	return xproto.DestroyWindowChecked(c.xu.Conn(), xproto.Window(w)).Check()
}

func (c *Connection) MapWindow(w change.Window) error {
	return xproto.MapWindowChecked(c.xu.Conn(), xproto.Window(w)).Check()
}

func (c *Connection) UnmapWindow(w change.Window) error {
	return xproto.UnmapWindowChecked(c.xu.Conn(), xproto.Window(w)).Check()
}

func (c *Connection) MoveResizeWindow(w change.Window, box geometry.Box) error {
	c.windowBoxes[w] = box
	return xproto.ConfigureWindowChecked(
		c.xu.Conn(),
		xproto.Window(w),
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int32(box.X)), uint32(int32(box.Y)), uint32(max1(box.Width)), uint32(max1(box.Height))},
	).Check()
}

func (c *Connection) RaiseWindow(w change.Window) error {
	return xproto.ConfigureWindowChecked(
		c.xu.Conn(),
		xproto.Window(w),
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	).Check()
}

// RestackWindows raises each window in order, bottom to top, so the
// last entry ends up topmost — the order the dispatcher's restack
// pass computes (families in ascending layer, icons, placeholder).
func (c *Connection) RestackWindows(order []change.Window) error {
	for _, w := range order {
		if err := c.RaiseWindow(w); err != nil {
			return err
		}
	}
	return nil
}

func (c *Connection) QueryWindowAttributes(w change.Window) (geometry.Box, error) {
	geom, err := xproto.GetGeometry(c.xu.Conn(), xproto.Drawable(w)).Reply()
	if err != nil {
		return geometry.Box{}, fmt.Errorf("x11: get geometry: %w", err)
	}
	return geometry.Box{X: int(geom.X), Y: int(geom.Y), Width: int(geom.Width), Height: int(geom.Height)}, nil
}

func (c *Connection) SetBorder(w change.Window, colorRGB uint32, width int) error {
	if err := xproto.ConfigureWindowChecked(
		c.xu.Conn(), xproto.Window(w), xproto.ConfigWindowBorderWidth, []uint32{uint32(width)},
	).Check(); err != nil {
		return err
	}
	return xproto.ChangeWindowAttributesChecked(
		c.xu.Conn(), xproto.Window(w), xproto.CwBorderPixel, []uint32{colorRGB},
	).Check()
}

func (c *Connection) CreateGC(w change.Window) (uintptr, error) {
	gid, err := xproto.NewGcontextId(c.xu.Conn())
	if err != nil {
		return 0, fmt.Errorf("x11: alloc gc id: %w", err)
	}
	if err := xproto.CreateGCChecked(c.xu.Conn(), gid, xproto.Drawable(w), 0, nil).Check(); err != nil {
		return 0, fmt.Errorf("x11: create gc: %w", err)
	}
	return uintptr(gid), nil
}

func (c *Connection) FreeGC(gc uintptr) error {
	return xproto.FreeGCChecked(c.xu.Conn(), xproto.Gcontext(gc)).Check()
}

func (c *Connection) RootChildren() ([]change.Window, error) {
	tree, err := xproto.QueryTree(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: query tree: %w", err)
	}
	out := make([]change.Window, len(tree.Children))
	for i, w := range tree.Children {
		out[i] = change.Window(w)
	}
	return out, nil
}
