// Package dispatcher implements the Change Dispatcher: the consumer
// side of the Client Model's event queue, translating each Change into
// adapter calls and deferred end-of-tick reconciliation (restacking,
// icon reflow), per spec §4.4.
//
// Grounded on 1broseidon/termtile's internal/daemon/reconciler.go for
// the deferred-pass shape (a sticky flag set during the tick, acted on
// once at the end) and internal/daemon/sync.go for per-event dispatch
// over a typed event stream.
package dispatcher

import (
	"log/slog"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
	"github.com/ashwm/ashwm/internal/model"
	"github.com/ashwm/ashwm/internal/x11"
	"github.com/ashwm/ashwm/internal/xaux"
)

// Config carries the dispatcher's static layout parameters, sourced
// from internal/config.
type Config struct {
	BorderWidth    int
	IconWidth      int
	IconHeight     int
	IconRowHeight  int
}

// Dispatcher drains change.Change events emitted by a model.Model and
// realizes them against an x11.Adapter.
type Dispatcher struct {
	adapter x11.Adapter
	mdl     *model.Model
	aux     *xaux.Model
	cfg     Config
	log     *slog.Logger

	relayer     bool
	iconReflow  bool
}

// New builds a Dispatcher wired to adapter, the core model it reads
// back from for layer-ordered restacking, and the auxiliary X-side
// model it updates for icons and move/resize placeholders.
func New(adapter x11.Adapter, mdl *model.Model, aux *xaux.Model, cfg Config, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{adapter: adapter, mdl: mdl, aux: aux, cfg: cfg, log: log}
}

// Dispatch drains every change in order, applies it, and then — if the
// tick set the relayer or icon-reflow flags — performs the deferred
// reconciliation pass described at the end of spec §4.4.
func (d *Dispatcher) Dispatch(changes []change.Change) {
	d.relayer = false
	d.iconReflow = false

	for _, c := range changes {
		d.apply(c)
	}

	if d.relayer {
		d.restack()
	}
	if d.iconReflow {
		d.reflowIcons()
	}
}

func (d *Dispatcher) apply(c change.Change) {
	switch c.Kind {
	case change.KindFocus:
		d.applyFocus(c)
	case change.KindClientDesktop:
		d.applyClientDesktop(c)
	case change.KindCurrentDesktop:
		d.applyCurrentDesktop(c)
	case change.KindLayer:
		d.relayer = true
	case change.KindLocation:
		box, err := d.adapter.QueryWindowAttributes(c.Window)
		if err != nil {
			box = geometry.Box{}
		}
		box.X, box.Y = c.X, c.Y
		if err := d.adapter.MoveResizeWindow(c.Window, box); err != nil {
			d.log.Warn("move window failed", "window", c.Window, "err", err)
		}
	case change.KindSize:
		if box, err := d.adapter.QueryWindowAttributes(c.Window); err == nil {
			box.Width, box.Height = c.W, c.H
			if err := d.adapter.MoveResizeWindow(c.Window, box); err != nil {
				d.log.Warn("resize window failed", "window", c.Window, "err", err)
			}
		}
	case change.KindScreen:
		d.applyScreen(c)
	case change.KindCPSMode:
		d.applyCPSMode(c)
	case change.KindChildAdd, change.KindChildRemove:
		d.relayer = true
	case change.KindUnmap:
		d.applyUnmap(c)
	case change.KindDestroy:
		d.applyDestroy(c)
	}
}

func (d *Dispatcher) applyFocus(c change.Change) {
	if c.HasPrevFocus {
		_ = d.adapter.SetBorder(c.PrevFocus, 0, d.cfg.BorderWidth)
	}
	if c.HasNextFocus {
		if err := d.adapter.SetInputFocus(c.NextFocus); err != nil {
			d.mdl.CycleFocusForward()
			if w, ok := d.mdl.GetFocused(); ok {
				_ = d.adapter.SetInputFocus(w)
			}
		}
	} else {
		_ = d.adapter.ClearInputFocus()
	}
	d.relayer = true
}

func kindOf(dk desktop.Desktop) desktop.Kind {
	if dk == desktop.Zero {
		return desktopZeroKind
	}
	return dk.Kind()
}

func (d *Dispatcher) applyClientDesktop(c change.Change) {
	act := Classify(kindOf(c.PrevDesktop), kindOf(c.NextDesktop))
	switch act {
	case actionMapIfVisibleSetRelayer:
		if d.mdl.IsVisible(c.Window) {
			d.expectMapAndMap(c.Window)
		}
		d.relayer = true
	case actionCreateIcon:
		d.createIcon(c.Window)
	case actionMapUnmapByVisibility:
		if d.mdl.IsVisible(c.Window) {
			d.expectMapAndMap(c.Window)
		} else {
			d.expectUnmapAndUnmap(c.Window)
		}
		d.relayer = true
	case actionMapIfNotVisible:
		if d.mdl.IsVisible(c.Window) {
			d.expectMapAndMap(c.Window)
		}
	case actionCreateIconUnmapIfVisible:
		// The model has already moved the client onto Icon, so visibility
		// is judged from the desktop it left.
		prev := c.PrevDesktop
		wasVisible := prev.IsAll() || (prev.IsUser() && prev.Index() == d.mdl.CurrentDesktop())
		d.createIcon(c.Window)
		if wasVisible {
			d.expectUnmapAndUnmap(c.Window)
		}
	case actionEnterMoveResize:
		d.enterMoveResize(c)
	case actionDestroyIconMapIfVisibleReflow:
		d.destroyIcon(c.Window)
		if d.mdl.IsVisible(c.Window) {
			d.expectMapAndMap(c.Window)
		}
		d.iconReflow = true
		d.relayer = true
	case actionExitMoveResize:
		d.exitMoveResize(c)
	default:
		d.log.Info("unhandled desktop transition", "window", c.Window, "prev", c.PrevDesktop, "next", c.NextDesktop)
	}
}

func (d *Dispatcher) expectMapAndMap(w change.Window) {
	d.aux.SetEffect(w, xaux.ExpectMap)
	if err := d.adapter.MapWindow(w); err != nil {
		d.log.Warn("map failed", "window", w, "err", err)
	}
}

func (d *Dispatcher) expectUnmapAndUnmap(w change.Window) {
	d.aux.SetEffect(w, xaux.ExpectUnmap)
	if err := d.adapter.UnmapWindow(w); err != nil {
		d.log.Warn("unmap failed", "window", w, "err", err)
	}
}

func (d *Dispatcher) createIcon(client change.Window) {
	box := geometry.Box{Width: d.cfg.IconWidth, Height: d.cfg.IconHeight}
	iconWin, err := d.adapter.CreateUnmanagedWindow(box)
	if err != nil {
		d.log.Warn("create icon window failed", "client", client, "err", err)
		return
	}
	gc, err := d.adapter.CreateGC(iconWin)
	if err != nil {
		d.log.Warn("create icon gc failed", "client", client, "err", err)
	}
	d.aux.RegisterIcon(&xaux.Icon{Client: client, IconWindow: iconWin, DrawContext: gc})
	d.expectMapAndMap(iconWin)
	d.iconReflow = true
}

func (d *Dispatcher) destroyIcon(client change.Window) {
	icon, ok := d.aux.FindIconFromClient(client)
	if !ok {
		return
	}
	if icon.DrawContext != 0 {
		_ = d.adapter.FreeGC(icon.DrawContext)
	}
	_ = d.adapter.DestroyWindow(icon.IconWindow)
	d.aux.UnregisterIcon(icon)
}

func (d *Dispatcher) enterMoveResize(c change.Change) {
	box, err := d.adapter.QueryWindowAttributes(c.Window)
	if err != nil {
		return
	}
	placeholder, err := d.adapter.CreateUnmanagedWindow(box)
	if err != nil {
		d.log.Warn("create placeholder failed", "window", c.Window, "err", err)
		return
	}
	ptr, err := d.adapter.QueryPointer()
	if err != nil {
		ptr = geometry.Dimension2D{}
	}
	if c.NextDesktop.IsMoving() {
		d.aux.EnterMove(c.Window, placeholder, ptr.X, ptr.Y)
	} else {
		d.aux.EnterResize(c.Window, placeholder, ptr.X, ptr.Y)
	}
	_ = d.adapter.ConfinePointer(c.Window)
	d.expectUnmapAndUnmap(c.Window)
	_ = d.adapter.MapWindow(placeholder)
}

func (d *Dispatcher) exitMoveResize(c change.Change) {
	mr, ok := d.aux.Current()
	if !ok || mr.Client != c.Window {
		return
	}
	box, err := d.adapter.QueryWindowAttributes(mr.Placeholder)
	if err == nil {
		_ = d.adapter.MoveResizeWindow(c.Window, box)
	}
	_ = d.adapter.DestroyWindow(mr.Placeholder)
	_ = d.adapter.ReleasePointer()
	d.aux.ExitMoveResize()
	if d.mdl.IsVisible(c.Window) {
		d.expectMapAndMap(c.Window)
	}
	d.relayer = true
}

func (d *Dispatcher) applyCurrentDesktop(c change.Change) {
	prev := desktop.NewUser(c.PrevCurrent, d.mdl.NumDesktops())
	next := desktop.NewUser(c.NextCurrent, d.mdl.NumDesktops())

	before := windowSet(d.mdl.GetClientsOf(prev))
	after := windowSet(d.mdl.GetClientsOf(next))

	for w := range before {
		if !after[w] {
			d.expectUnmapAndUnmap(w)
			for _, child := range d.mdl.ChildrenOf(w) {
				d.expectUnmapAndUnmap(child)
			}
		}
	}
	for w := range after {
		if !before[w] {
			d.expectMapAndMap(w)
			for _, child := range d.mdl.ChildrenOf(w) {
				d.expectMapAndMap(child)
			}
		}
	}
	d.relayer = true
}

func windowSet(ws []change.Window) map[change.Window]bool {
	out := make(map[change.Window]bool, len(ws))
	for _, w := range ws {
		out[w] = true
	}
	return out
}

func (d *Dispatcher) applyScreen(c change.Change) {
	box := geometry.Box{X: c.Bounds.X, Y: c.Bounds.Y, Width: c.Bounds.Width, Height: c.Bounds.Height}
	d.retile(c.Window, box)
}

func (d *Dispatcher) applyCPSMode(c change.Change) {
	if c.Mode == change.Floating {
		return
	}
	box, err := d.adapter.QueryWindowAttributes(c.Window)
	if err != nil {
		return
	}
	d.retile(c.Window, box)
}

func (d *Dispatcher) applyUnmap(c change.Change) {
	_ = d.adapter.ClearInputFocus()
	for _, child := range d.mdl.ChildrenOf(c.Window) {
		d.expectUnmapAndUnmap(child)
	}
}

func (d *Dispatcher) applyDestroy(c change.Change) {
	switch {
	case c.LastDesktop.IsIcon():
		d.destroyIcon(c.Window)
		d.iconReflow = true
	case c.LastDesktop.IsMoving(), c.LastDesktop.IsResizing():
		if mr, ok := d.aux.Current(); ok && mr.Client == c.Window {
			_ = d.adapter.DestroyWindow(mr.Placeholder)
			_ = d.adapter.ReleasePointer()
			d.aux.ExitMoveResize()
		}
	}
	d.aux.RemoveAllEffects(c.Window)
}
