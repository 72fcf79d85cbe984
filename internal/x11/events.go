// NextEvent blocks for the next server event and translates it into
// the adapter's Notification shape, the pull-style mirror of
// 1broseidon/termtile's xevent.Main callback loop — ashwm's own
// internal/wm event loop owns the blocking read instead of handing
// control to xgbutil's dispatcher, since the core itself decides what
// each notification means for the Client Model.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/ashwm/ashwm/internal/change"
)

func (c *Connection) NextEvent() (Notification, error) {
	for {
		ev, err := c.xu.Conn().WaitForEvent()
		if err != nil {
			return Notification{}, fmt.Errorf("x11: wait for event: %w", err)
		}
		if n, ok := translate(ev); ok {
			if n.Kind == NotifyKeyPress {
				// translate carries the raw keycode; hotkeys are keyed by keysym.
				n.Key = KeySym(keybind.KeysymGet(c.xu, xproto.Keycode(n.Key), 0))
			}
			return n, nil
		}
		// Events we don't model (e.g. GraphicsExpose) are silently
		// skipped; the loop keeps waiting for the next one.
	}
}

func translate(ev interface{}) (Notification, bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return Notification{Kind: NotifyKeyPress, Key: KeySym(e.Detail), Mods: ModMask(e.State)}, true
	case xproto.ButtonPressEvent:
		return Notification{Kind: NotifyButtonPress, Window: change.Window(e.Event), Button: MouseButton(e.Detail), Mods: ModMask(e.State), X: int(e.RootX), Y: int(e.RootY)}, true
	case xproto.ButtonReleaseEvent:
		return Notification{Kind: NotifyButtonRelease, Window: change.Window(e.Event), Button: MouseButton(e.Detail), Mods: ModMask(e.State), X: int(e.RootX), Y: int(e.RootY)}, true
	case xproto.MotionNotifyEvent:
		return Notification{Kind: NotifyMotion, Window: change.Window(e.Event), X: int(e.RootX), Y: int(e.RootY)}, true
	case xproto.MapRequestEvent:
		return Notification{Kind: NotifyMapRequest, Window: change.Window(e.Window)}, true
	case xproto.ConfigureRequestEvent:
		return Notification{
			Kind: NotifyConfigureRequest, Window: change.Window(e.Window), Above: change.Window(e.Sibling),
			X: int(e.X), Y: int(e.Y), Width: int(e.Width), Height: int(e.Height),
		}, true
	case xproto.DestroyNotifyEvent:
		return Notification{Kind: NotifyDestroy, Window: change.Window(e.Window)}, true
	case xproto.UnmapNotifyEvent:
		return Notification{Kind: NotifyUnmap, Window: change.Window(e.Window)}, true
	case xproto.ExposeEvent:
		return Notification{Kind: NotifyExpose, Window: change.Window(e.Window)}, true
	case randr.NotifyEvent:
		return Notification{Kind: NotifyMonitorsChanged}, true
	default:
		return Notification{}, false
	}
}
