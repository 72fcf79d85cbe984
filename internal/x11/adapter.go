// Package x11 is the external-event adapter boundary: the one place
// the core's pure model and dispatcher packages meet the real X
// Window System, via github.com/BurntSushi/xgb/xgb,
// github.com/BurntSushi/xgb/xproto, github.com/BurntSushi/xgb/randr
// and github.com/BurntSushi/xgbutil's xevent/keybind/xprop helpers.
//
// The split mirrors 1broseidon/termtile's internal/platform.Backend:
// a narrow interface (Adapter) the dispatcher programs against, and a
// concrete Connection implementing it against a live display. Tests
// substitute a fake Adapter instead of opening a display.
package x11

import (
	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/geometry"
)

// KeySym and ModMask identify a hotkey binding the way xgbutil/keybind
// does: a modifier mask plus an X keysym.
type KeySym uint32
type ModMask uint16

// MouseButton identifies a pointer button grab.
type MouseButton uint8

// Notification is the tagged union of events the adapter delivers back
// to the core's event loop. Exactly one field set is meaningful,
// selected by Kind.
type Notification struct {
	Kind NotificationKind

	Window change.Window
	Above  change.Window // for configure-request restack hints

	X, Y          int
	Width, Height int

	Button    MouseButton
	Mods      ModMask
	Key       KeySym

	Monitors []geometry.Box
}

type NotificationKind int

const (
	NotifyKeyPress NotificationKind = iota
	NotifyButtonPress
	NotifyButtonRelease
	NotifyMotion
	NotifyMapRequest
	NotifyConfigureRequest
	NotifyDestroy
	NotifyUnmap
	NotifyExpose
	NotifyMonitorsChanged
)

// Adapter is the complete windowing-server capability set the core
// requires, per spec §6. Connection is the only production
// implementation; tests implement a fake.
type Adapter interface {
	// Window lifecycle.
	CreateUnmanagedWindow(box geometry.Box) (change.Window, error)
	DestroyWindow(w change.Window) error
	MapWindow(w change.Window) error
	UnmapWindow(w change.Window) error
	MoveResizeWindow(w change.Window, box geometry.Box) error
	RaiseWindow(w change.Window) error
	RestackWindows(order []change.Window) error
	SendDeleteWindow(w change.Window) error

	// Focus and input.
	SetInputFocus(w change.Window) error
	ClearInputFocus() error
	GrabPointerButton(w change.Window, button MouseButton, mods ModMask) error
	UngrabPointerButton(w change.Window, button MouseButton, mods ModMask) error
	ConfinePointer(w change.Window) error
	ReleasePointer() error
	QueryPointer() (geometry.Dimension2D, error)
	QueryWindowAttributes(w change.Window) (geometry.Box, error)

	// Decoration.
	SetBorder(w change.Window, colorRGB uint32, width int) error

	// Graphics contexts, for icon surrogate rendering.
	CreateGC(w change.Window) (uintptr, error)
	FreeGC(gc uintptr) error

	// Monitors and hotkeys.
	QueryMonitors() ([]geometry.Box, error)
	ResolveKeybinding(mods, key string) (ModMask, KeySym, error)
	GrabHotkey(mods ModMask, key KeySym) error
	GrabMouseButton(button MouseButton, mods ModMask) error

	// Startup and event delivery.
	RootChildren() ([]change.Window, error)
	NextEvent() (Notification, error)
}
