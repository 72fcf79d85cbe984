package dispatcher

import (
	"log/slog"
	"testing"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
	"github.com/ashwm/ashwm/internal/model"
	"github.com/ashwm/ashwm/internal/screen"
	"github.com/ashwm/ashwm/internal/x11"
	"github.com/ashwm/ashwm/internal/xaux"
)

// fakeAdapter is a minimal in-memory x11.Adapter, grounded on the
// teacher's test doubles for internal/platform.Backend.
type fakeAdapter struct {
	mapped   map[change.Window]bool
	boxes    map[change.Window]geometry.Box
	focused  change.Window
	hasFocus bool
	nextWin  change.Window
	restacks [][]change.Window
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		mapped:  make(map[change.Window]bool),
		boxes:   make(map[change.Window]geometry.Box),
		nextWin: 1000,
	}
}

func (f *fakeAdapter) CreateUnmanagedWindow(box geometry.Box) (change.Window, error) {
	f.nextWin++
	f.boxes[f.nextWin] = box
	return f.nextWin, nil
}
func (f *fakeAdapter) DestroyWindow(w change.Window) error { delete(f.boxes, w); return nil }
func (f *fakeAdapter) MapWindow(w change.Window) error      { f.mapped[w] = true; return nil }
func (f *fakeAdapter) UnmapWindow(w change.Window) error    { f.mapped[w] = false; return nil }
func (f *fakeAdapter) MoveResizeWindow(w change.Window, box geometry.Box) error {
	f.boxes[w] = box
	return nil
}
func (f *fakeAdapter) RaiseWindow(w change.Window) error { return nil }
func (f *fakeAdapter) RestackWindows(order []change.Window) error {
	f.restacks = append(f.restacks, order)
	return nil
}
func (f *fakeAdapter) SendDeleteWindow(w change.Window) error { return nil }
func (f *fakeAdapter) SetInputFocus(w change.Window) error {
	f.focused, f.hasFocus = w, true
	return nil
}
func (f *fakeAdapter) ClearInputFocus() error { f.hasFocus = false; return nil }
func (f *fakeAdapter) GrabPointerButton(w change.Window, b x11.MouseButton, m x11.ModMask) error {
	return nil
}
func (f *fakeAdapter) UngrabPointerButton(w change.Window, b x11.MouseButton, m x11.ModMask) error {
	return nil
}
func (f *fakeAdapter) ConfinePointer(w change.Window) error { return nil }
func (f *fakeAdapter) ReleasePointer() error                { return nil }
func (f *fakeAdapter) QueryPointer() (geometry.Dimension2D, error) {
	return geometry.Dimension2D{}, nil
}
func (f *fakeAdapter) QueryWindowAttributes(w change.Window) (geometry.Box, error) {
	return f.boxes[w], nil
}
func (f *fakeAdapter) SetBorder(w change.Window, colorRGB uint32, width int) error { return nil }
func (f *fakeAdapter) CreateGC(w change.Window) (uintptr, error)                   { return 1, nil }
func (f *fakeAdapter) FreeGC(gc uintptr) error                                     { return nil }
func (f *fakeAdapter) QueryMonitors() ([]geometry.Box, error)                      { return nil, nil }
func (f *fakeAdapter) ResolveKeybinding(mods, key string) (x11.ModMask, x11.KeySym, error) {
	return 0, 0, nil
}
func (f *fakeAdapter) GrabHotkey(m x11.ModMask, k x11.KeySym) error                { return nil }
func (f *fakeAdapter) GrabMouseButton(b x11.MouseButton, m x11.ModMask) error      { return nil }
func (f *fakeAdapter) RootChildren() ([]change.Window, error)                      { return nil, nil }
func (f *fakeAdapter) NextEvent() (x11.Notification, error)                        { return x11.Notification{}, nil }

var _ x11.Adapter = (*fakeAdapter)(nil)

func newTestDispatcher() (*Dispatcher, *model.Model, *fakeAdapter) {
	graph := screen.New([]geometry.Box{{X: 0, Y: 0, Width: 1920, Height: 1080}})
	mdl := model.New(5, graph, slog.Default())
	aux := xaux.New()
	adapter := newFakeAdapter()
	cfg := Config{BorderWidth: 2, IconWidth: 64, IconHeight: 64, IconRowHeight: 64}
	return New(adapter, mdl, aux, cfg, slog.Default()), mdl, adapter
}

func TestAddClientMapsAndFocuses(t *testing.T) {
	d, mdl, adapter := newTestDispatcher()
	adapter.boxes[1] = geometry.Box{X: 1, Y: 1, Width: 1, Height: 1}

	mdl.AddClient(1, model.Visible, geometry.Dimension2D{X: 1, Y: 1}, geometry.Dimension2D{X: 1, Y: 1}, true)
	d.Dispatch(mdl.Changes())

	if !adapter.mapped[1] {
		t.Fatalf("expected window 1 to be mapped")
	}
	if !adapter.hasFocus || adapter.focused != 1 {
		t.Fatalf("expected window 1 to hold input focus, got %v (has=%v)", adapter.focused, adapter.hasFocus)
	}
	if len(adapter.restacks) == 0 {
		t.Fatalf("expected at least one restack after focus change")
	}
}

func TestIconifyCreatesIconWindow(t *testing.T) {
	d, mdl, adapter := newTestDispatcher()
	adapter.boxes[1] = geometry.Box{X: 1, Y: 1, Width: 1, Height: 1}
	mdl.AddClient(1, model.Visible, geometry.Dimension2D{X: 1, Y: 1}, geometry.Dimension2D{X: 1, Y: 1}, true)
	d.Dispatch(mdl.Changes())

	mdl.Iconify(1)
	d.Dispatch(mdl.Changes())

	if adapter.mapped[1] {
		t.Fatalf("expected client window to be unmapped by iconify (only the icon surrogate stays mapped)")
	}
	foundIcon := false
	for w, m := range adapter.mapped {
		if w > 1000 && m {
			foundIcon = true
		}
	}
	if !foundIcon {
		t.Fatalf("expected an icon surrogate window to be mapped")
	}
}

func TestCurrentDesktopSwitchHidesAndShows(t *testing.T) {
	d, mdl, adapter := newTestDispatcher()
	adapter.boxes[1] = geometry.Box{X: 1, Y: 1, Width: 1, Height: 1}
	mdl.AddClient(1, model.Visible, geometry.Dimension2D{X: 1, Y: 1}, geometry.Dimension2D{X: 1, Y: 1}, true)
	d.Dispatch(mdl.Changes())

	mdl.NextDesktop()
	d.Dispatch(mdl.Changes())

	if adapter.mapped[1] {
		t.Fatalf("expected window 1 to be unmapped after switching away from its desktop")
	}

	mdl.PrevDesktop()
	d.Dispatch(mdl.Changes())

	if !adapter.mapped[1] {
		t.Fatalf("expected window 1 to be remapped after switching back")
	}
}
