package model

import (
	"log/slog"
	"testing"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
	"github.com/ashwm/ashwm/internal/screen"
)

func newTestModel(numDesktops int) *Model {
	graph := screen.New([]geometry.Box{{X: 0, Y: 0, Width: 1000, Height: 1000}})
	return New(numDesktops, graph, slog.Default())
}

func kinds(cs []change.Change) []change.Kind {
	out := make([]change.Kind, len(cs))
	for i, c := range cs {
		out[i] = c.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []change.Change, want ...change.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("event count mismatch: got %v, want kinds %v", got, want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("event[%d]: got %v, want kind %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

// S1 — Creation order.
func TestScenarioS1Creation(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{X: 1, Y: 1}, geometry.Dimension2D{X: 1, Y: 1}, true)

	evs := m.Changes()
	assertKinds(t, evs, change.KindClientDesktop, change.KindLayer, change.KindFocus)

	if evs[0].PrevDesktop != desktop.Zero || evs[0].NextDesktop != desktop.NewUser(0, 5) {
		t.Fatalf("unexpected desktop transition: %v", evs[0])
	}
	if evs[2].HasPrevFocus || !evs[2].HasNextFocus || evs[2].NextFocus != 1 {
		t.Fatalf("unexpected focus event: %v", evs[2])
	}
	if w, ok := m.GetFocused(); !ok || w != 1 {
		t.Fatalf("get_focused: got %v, %v, want 1, true", w, ok)
	}
}

// S2 — Desktop cycle with focus drop.
func TestScenarioS2ClientNextDesktop(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, true)
	m.Changes()

	m.ClientNextDesktop(1)
	evs := m.Changes()
	assertKinds(t, evs, change.KindFocus, change.KindClientDesktop)

	if !evs[0].HasPrevFocus || evs[0].HasNextFocus || evs[0].PrevFocus != 1 {
		t.Fatalf("unexpected focus-loss event: %v", evs[0])
	}
	if evs[1].PrevDesktop != desktop.NewUser(0, 5) || evs[1].NextDesktop != desktop.NewUser(1, 5) {
		t.Fatalf("unexpected desktop transition: %v", evs[1])
	}
	if _, ok := m.GetFocused(); ok {
		t.Fatalf("expected get_focused to be none")
	}
}

// S3 — Desktop switch restores last focus.
func TestScenarioS3DesktopSwitchRestoresFocus(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, true)
	m.Changes()

	m.NextDesktop()
	evs := m.Changes()
	assertKinds(t, evs, change.KindFocus, change.KindCurrentDesktop)
	if evs[1].PrevCurrent != 0 || evs[1].NextCurrent != 1 {
		t.Fatalf("unexpected current-desktop transition: %v", evs[1])
	}

	m.PrevDesktop()
	evs = m.Changes()
	assertKinds(t, evs, change.KindCurrentDesktop, change.KindFocus)
	if evs[0].PrevCurrent != 1 || evs[0].NextCurrent != 0 {
		t.Fatalf("unexpected current-desktop transition: %v", evs[0])
	}
	if evs[1].HasPrevFocus || !evs[1].HasNextFocus || evs[1].NextFocus != 1 {
		t.Fatalf("expected focus restored to window 1: %v", evs[1])
	}
}

// S4 — Iconify/deiconify round trip.
func TestScenarioS4IconifyDeiconifyRoundTrip(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, true)
	m.Changes()

	m.Iconify(1)
	m.NextDesktop()
	m.Deiconify(1)
	evs := m.Changes()

	assertKinds(t, evs,
		change.KindFocus,
		change.KindClientDesktop,
		change.KindCurrentDesktop,
		change.KindClientDesktop,
		change.KindFocus,
	)
	if evs[1].NextDesktop != desktop.IconDesktop {
		t.Fatalf("expected transition into Icon: %v", evs[1])
	}
	if evs[3].PrevDesktop != desktop.IconDesktop || evs[3].NextDesktop != desktop.NewUser(1, 5) {
		t.Fatalf("expected deiconify onto User(1): %v", evs[3])
	}
	if !evs[4].HasNextFocus || evs[4].NextFocus != 1 {
		t.Fatalf("expected restored focus: %v", evs[4])
	}
}

// S5 — Resize cancels via invalid stop.
func TestScenarioS5InvalidResizeStillRestores(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, true)
	m.Changes()

	m.StartResizing(1)
	m.StopResizing(1, 0, 0)
	evs := m.Changes()

	assertKinds(t, evs, change.KindFocus, change.KindClientDesktop, change.KindClientDesktop, change.KindFocus)
	if evs[1].NextDesktop != desktop.ResizingDesktop {
		t.Fatalf("expected transition into Resizing: %v", evs[1])
	}
	if evs[2].PrevDesktop != desktop.ResizingDesktop || evs[2].NextDesktop != desktop.NewUser(0, 5) {
		t.Fatalf("expected restore to User(0): %v", evs[2])
	}
	if !evs[3].HasNextFocus || evs[3].NextFocus != 1 {
		t.Fatalf("expected focus restored: %v", evs[3])
	}
}

// S6 — Pack two NW clients.
func TestScenarioS6PackNWCorner(t *testing.T) {
	m := newTestModel(5)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 10, Y: 10}, false)
	m.AddClient(2, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 30, Y: 10}, false)
	m.Changes()

	m.PackClient(1, geometry.CornerNW, 1)
	m.PackClient(2, geometry.CornerNW, 2)
	m.RepackCorner(geometry.CornerNW)
	evs := m.Changes()

	assertKinds(t, evs, change.KindLocation, change.KindLocation)
	if evs[0].Window != 1 || evs[0].X != 0 || evs[0].Y != 0 {
		t.Fatalf("unexpected location for a: %v", evs[0])
	}
	if evs[1].Window != 2 || evs[1].X != 10 || evs[1].Y != 0 {
		t.Fatalf("unexpected location for b: %v", evs[1])
	}
}

func TestToggleStickIsInvolution(t *testing.T) {
	m := newTestModel(3)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, false)
	m.Changes()

	m.ToggleStick(1)
	first := m.Changes()
	assertKinds(t, first, change.KindClientDesktop)
	if first[0].NextDesktop != desktop.AllDesktops {
		t.Fatalf("expected stick to AllDesktops: %v", first[0])
	}

	m.ToggleStick(1)
	second := m.Changes()
	assertKinds(t, second, change.KindClientDesktop)
	if second[0].NextDesktop != desktop.NewUser(0, 3) {
		t.Fatalf("expected unstick back to User(0): %v", second[0])
	}
}

func TestRemoveClientTearsDownChildrenFirst(t *testing.T) {
	m := newTestModel(3)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, true)
	m.Changes()
	m.AddChild(1, 100)
	m.Changes()

	m.RemoveClient(1)
	evs := m.Changes()
	assertKinds(t, evs, change.KindFocus, change.KindChildRemove, change.KindDestroy)
	if evs[1].Parent != 1 || evs[1].Child != 100 {
		t.Fatalf("unexpected child-remove event: %v", evs[1])
	}
	if m.IsClient(1) {
		t.Fatalf("expected client 1 to be fully removed")
	}
}

func TestOffScreenSentinelNeverReassigned(t *testing.T) {
	m := newTestModel(2)
	m.AddClient(1, Visible, geometry.Dimension2D{}, geometry.Dimension2D{X: 1, Y: 1}, false)
	m.Changes()
	if c := m.clients[1]; c != nil {
		c.X, c.Y = OffScreenSentinel, OffScreenSentinel
	}

	m.UpdateScreens([]geometry.Box{{X: 0, Y: 0, Width: 1000, Height: 1000}})
	evs := m.Changes()
	if len(evs) != 0 {
		t.Fatalf("expected no ScreenChange for the off-screen sentinel, got %v", evs)
	}
}
