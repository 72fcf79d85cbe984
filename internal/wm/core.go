// Package wm wires the Client Model, Change Dispatcher, auxiliary
// X-side model, and the x11 adapter into a single running process: the
// Core value constructed at startup and torn down at shutdown,
// grounded on 1broseidon/termtile's cmd/termtile/main.go wiring and
// internal/daemon/reconciler.go's signal/context shutdown shape.
package wm

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/ashwm/ashwm/internal/config"
	"github.com/ashwm/ashwm/internal/dispatcher"
	"github.com/ashwm/ashwm/internal/dump"
	"github.com/ashwm/ashwm/internal/geometry"
	"github.com/ashwm/ashwm/internal/model"
	"github.com/ashwm/ashwm/internal/screen"
	"github.com/ashwm/ashwm/internal/x11"
	"github.com/ashwm/ashwm/internal/xaux"
)

// Core owns every long-lived component of a running ashwm process.
type Core struct {
	cfg     config.Config
	adapter x11.Adapter
	screens *screen.Graph
	model   *model.Model
	aux     *xaux.Model
	disp    *dispatcher.Dispatcher
	log     *slog.Logger

	dumpRequested atomic.Bool

	hotkeys      map[hotkey]string
	moveMods     x11.ModMask
	moveButton   x11.MouseButton
	resizeMods   x11.ModMask
	resizeButton x11.MouseButton
}

// hotkey is a resolved (modifiers, keysym) pair, the lookup key a
// NotifyKeyPress notification is matched against.
type hotkey struct {
	mods x11.ModMask
	key  x11.KeySym
}

// New builds a Core from a live adapter and effective config. It
// enumerates the initial monitor set and existing root children before
// returning, matching the adapter contract's startup requirements.
func New(adapter x11.Adapter, cfg config.Config, log *slog.Logger) (*Core, error) {
	boxes, err := adapter.QueryMonitors()
	if err != nil {
		log.Warn("querying monitors failed, falling back to a single unit box", "err", err)
		boxes = []geometry.Box{{Width: 1, Height: 1}}
	}
	graph := screen.New(boxes)

	mdl := model.New(cfg.NumDesktops, graph, log)
	aux := xaux.New()
	disp := dispatcher.New(adapter, mdl, aux, dispatcher.Config{
		BorderWidth:   cfg.BorderWidth,
		IconWidth:     cfg.IconWidth,
		IconHeight:    cfg.IconHeight,
		IconRowHeight: cfg.IconHeight,
	}, log)

	c := &Core{cfg: cfg, adapter: adapter, screens: graph, model: mdl, aux: aux, disp: disp, log: log}
	c.grabHotkeys()
	c.grabMoveResizeButtons()

	children, err := adapter.RootChildren()
	if err != nil {
		return nil, err
	}
	for _, w := range children {
		box, err := adapter.QueryWindowAttributes(w)
		if err != nil {
			continue
		}
		mdl.AddClient(w, model.Visible, geometry.Dimension2D{X: box.X, Y: box.Y}, geometry.Dimension2D{X: box.Width, Y: box.Height}, false)
	}
	disp.Dispatch(mdl.Changes())

	return c, nil
}

// RequestDump marks a dump as pending; it is written out at the start
// of the next event-loop iteration. Safe to call from a signal
// handler.
func (c *Core) RequestDump() {
	c.dumpRequested.Store(true)
}

// Run blocks, translating adapter notifications into model operations
// until ctx is cancelled or the adapter returns an error.
func (c *Core) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if c.dumpRequested.CompareAndSwap(true, false) {
			c.writeDump()
		}

		n, err := c.adapter.NextEvent()
		if err != nil {
			return err
		}
		c.handle(n)
		c.disp.Dispatch(c.model.Changes())
	}
}

func (c *Core) handle(n x11.Notification) {
	switch n.Kind {
	case x11.NotifyMapRequest:
		if c.model.IsClient(n.Window) {
			// Already managed: this is a previously-unmapped client being
			// shown again (e.g. after a withdraw/iconify-adjacent client
			// request), not a new top-level window.
			c.model.RemapClient(n.Window)
			return
		}
		box, err := c.adapter.QueryWindowAttributes(n.Window)
		if err != nil {
			box = geometry.Box{Width: 1, Height: 1}
		}
		c.model.AddClient(n.Window, model.Visible, geometry.Dimension2D{X: box.X, Y: box.Y}, geometry.Dimension2D{X: box.Width, Y: box.Height}, true)
	case x11.NotifyDestroy:
		c.model.RemoveClient(n.Window)
	case x11.NotifyUnmap:
		if c.aux.HasEffect(n.Window, xaux.ExpectUnmap) {
			c.aux.ClearEffect(n.Window, xaux.ExpectUnmap)
			return
		}
		c.model.UnmapClient(n.Window)
	case x11.NotifyConfigureRequest:
		c.model.ChangeLocation(n.Window, n.X, n.Y)
		c.model.ChangeSize(n.Window, n.Width, n.Height)
	case x11.NotifyButtonPress:
		switch {
		case n.Button == c.moveButton && n.Mods == c.moveMods:
			c.model.Focus(n.Window)
			c.model.StartMoving(n.Window)
		case n.Button == c.resizeButton && n.Mods == c.resizeMods:
			c.model.Focus(n.Window)
			c.model.StartResizing(n.Window)
		default:
			c.model.Focus(n.Window)
		}
	case x11.NotifyButtonRelease:
		mr, ok := c.aux.Current()
		if !ok {
			return
		}
		box, err := c.adapter.QueryWindowAttributes(mr.Placeholder)
		if err != nil {
			return
		}
		if mr.Kind == xaux.KindMove {
			c.model.StopMoving(mr.Client, box.X, box.Y)
		} else {
			c.model.StopResizing(mr.Client, box.Width, box.Height)
		}
	case x11.NotifyMonitorsChanged:
		boxes, err := c.adapter.QueryMonitors()
		if err == nil {
			c.model.UpdateScreens(boxes)
		}
	case x11.NotifyKeyPress:
		c.handleHotkey(n)
	case x11.NotifyMotion:
		c.handleMotion(n)
	}
}

// grabHotkeys resolves every configured binding to a (mods, keysym)
// pair, installs the grab, and records the pair so handleHotkey can
// tell bindings apart on the way back in. A binding that fails to
// resolve or grab is logged and skipped rather than aborting startup.
func (c *Core) grabHotkeys() {
	c.hotkeys = make(map[hotkey]string, len(c.cfg.Bindings))
	for name, b := range c.cfg.Bindings {
		mods, key, err := c.adapter.ResolveKeybinding(b.Mods, b.Key)
		if err != nil {
			c.log.Warn("skipping unresolvable keybinding", "name", name, "mods", b.Mods, "key", b.Key, "err", err)
			continue
		}
		if err := c.adapter.GrabHotkey(mods, key); err != nil {
			c.log.Warn("skipping ungrabbable keybinding", "name", name, "err", err)
			continue
		}
		c.hotkeys[hotkey{mods: mods, key: key}] = name
	}
}

// grabMoveResizeButtons resolves and installs the global pointer-button
// grabs that drive the interactive move/resize gesture, per spec §6's
// "mouse buttons for move/resize" config surface. A binding that fails
// to resolve or grab is logged and skipped, same as grabHotkeys.
func (c *Core) grabMoveResizeButtons() {
	if mods, err := x11.ParseMods(c.cfg.MoveButton.Mods); err != nil {
		c.log.Warn("skipping unresolvable move button binding", "err", err)
	} else {
		c.moveMods = mods
		c.moveButton = x11.MouseButton(c.cfg.MoveButton.Button)
		if err := c.adapter.GrabMouseButton(c.moveButton, c.moveMods); err != nil {
			c.log.Warn("skipping ungrabbable move button binding", "err", err)
		}
	}

	if mods, err := x11.ParseMods(c.cfg.ResizeButton.Mods); err != nil {
		c.log.Warn("skipping unresolvable resize button binding", "err", err)
	} else {
		c.resizeMods = mods
		c.resizeButton = x11.MouseButton(c.cfg.ResizeButton.Button)
		if err := c.adapter.GrabMouseButton(c.resizeButton, c.resizeMods); err != nil {
			c.log.Warn("skipping ungrabbable resize button binding", "err", err)
		}
	}
}

func (c *Core) handleHotkey(n x11.Notification) {
	name, ok := c.hotkeys[hotkey{mods: n.Mods, key: n.Key}]
	if !ok {
		return
	}

	focused, hasFocused := c.model.GetFocused()
	switch name {
	case "next_desktop":
		c.model.NextDesktop()
	case "prev_desktop":
		c.model.PrevDesktop()
	case "cycle_focus":
		c.model.CycleFocusForward()
	case "iconify":
		if hasFocused {
			c.model.Iconify(focused)
		}
	case "toggle_stick":
		if hasFocused {
			c.model.ToggleStick(focused)
		}
	case "close_window":
		if hasFocused {
			_ = c.adapter.SendDeleteWindow(focused)
		}
	}
}

func (c *Core) handleMotion(n x11.Notification) {
	mr, ok := c.aux.Current()
	if !ok {
		return
	}
	dx, dy := c.aux.UpdatePointer(n.X, n.Y)
	box, err := c.adapter.QueryWindowAttributes(mr.Placeholder)
	if err != nil {
		return
	}
	if mr.Kind == xaux.KindMove {
		box.X += dx
		box.Y += dy
	} else {
		box.Width += dx
		box.Height += dy
	}
	_ = c.adapter.MoveResizeWindow(mr.Placeholder, box)
}

func (c *Core) writeDump() {
	screens := c.screens.Boxes()
	var rows []dump.ClientRow
	for _, w := range c.model.GetAllClients() {
		d, _ := c.model.FindDesktop(w)
		layer, _ := c.model.FindLayer(w)
		mode, _ := c.model.FindMode(w)
		box, _ := c.adapter.QueryWindowAttributes(w)
		rows = append(rows, dump.ClientRow{
			Window: w, Desktop: d, Layer: layer, Mode: mode,
			X: box.X, Y: box.Y, W: box.Width, H: box.Height,
		})
	}
	body := dump.Render(screens, rows)
	path := dump.Path(c.cfg.DumpFile)
	if err := dump.WriteTo(path, body); err != nil {
		c.log.Warn("dump write failed", "path", path, "err", err)
	}
}
