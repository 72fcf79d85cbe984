// QueryMonitors enumerates RandR CRTC boxes, generalizing
// 1broseidon/termtile's internal/x11/monitors.go (Monitor/GetMonitors)
// into the geometry.Box shape the screen graph consumes directly.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/ashwm/ashwm/internal/geometry"
)

func (c *Connection) QueryMonitors() ([]geometry.Box, error) {
	resources, err := randr.GetScreenResources(c.xu.Conn(), c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: get screen resources: %w", err)
	}

	var boxes []geometry.Box
	for _, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(c.xu.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}
		boxes = append(boxes, geometry.Box{
			X: int(info.X), Y: int(info.Y), Width: int(info.Width), Height: int(info.Height),
		})
	}
	if len(boxes) == 0 {
		return nil, fmt.Errorf("x11: no active monitors reported by randr")
	}
	return boxes, nil
}
