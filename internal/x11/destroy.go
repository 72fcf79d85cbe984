// SendDeleteWindow asks a client to close itself via the WM_DELETE_WINDOW
// ICCCM client message, grounded on
// other_examples/kalkin-wingo__client.go's Close method.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/ashwm/ashwm/internal/change"
)

func (c *Connection) SendDeleteWindow(w change.Window) error {
	wmProtocols, err := xprop.Atm(c.xu, "WM_PROTOCOLS")
	if err != nil {
		return fmt.Errorf("x11: intern WM_PROTOCOLS: %w", err)
	}
	wmDeleteWindow, err := xprop.Atm(c.xu, "WM_DELETE_WINDOW")
	if err != nil {
		return fmt.Errorf("x11: intern WM_DELETE_WINDOW: %w", err)
	}

	msg, err := xevent.NewClientMessage(32, xproto.Window(w), wmProtocols, int(wmDeleteWindow))
	if err != nil {
		return fmt.Errorf("x11: build client message: %w", err)
	}

	return xproto.SendEventChecked(c.xu.Conn(), false, xproto.Window(w), 0, string(msg.Bytes())).Check()
}
