// Hotkey and mouse-button grab installation, grounded on
// 1broseidon/termtile's internal/hotkeys/handler.go, which drives the
// same github.com/BurntSushi/xgbutil/keybind package to install global
// key grabs on the root window.
package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// modNames maps config.Keybinding.Mods tokens (joined with "+", as in
// "Mod4+Shift") to the X modifier masks keybind already knows about.
var modNames = map[string]uint16{
	"Shift":   xproto.ModMaskShift,
	"Lock":    xproto.ModMaskLock,
	"Control": xproto.ModMaskControl,
	"Mod1":    xproto.ModMask1,
	"Mod2":    xproto.ModMask2,
	"Mod3":    xproto.ModMask3,
	"Mod4":    xproto.ModMask4,
	"Mod5":    xproto.ModMask5,
}

// ParseMods resolves a config-file "Mod4+Shift"-style modifier token
// list into the ModMask a grab speaks. Pure string lookup against
// modNames — no connection required, so both key and mouse-button
// bindings share it.
func ParseMods(mods string) (ModMask, error) {
	var mask uint16
	if mods != "" {
		for _, tok := range strings.Split(mods, "+") {
			m, ok := modNames[tok]
			if !ok {
				return 0, fmt.Errorf("x11: unknown modifier %q", tok)
			}
			mask |= m
		}
	}
	return ModMask(mask), nil
}

// ResolveKeybinding turns a config-file "Mod4+Shift"/"q" pair into the
// ModMask/KeySym a grab and an incoming KeyPress both speak, using
// keybind's keysym table the same way termtile's configureIgnoreMods
// resolves Num_Lock/Scroll_Lock by name.
func (c *Connection) ResolveKeybinding(mods, key string) (ModMask, KeySym, error) {
	mask, err := ParseMods(mods)
	if err != nil {
		return 0, 0, err
	}

	keycodes := keybind.StrToKeycodes(c.xu, key)
	if len(keycodes) == 0 {
		return 0, 0, fmt.Errorf("x11: unknown key %q", key)
	}
	keysym := keybind.KeysymGet(c.xu, keycodes[0], 0)
	if keysym == 0 {
		return 0, 0, fmt.Errorf("x11: no keysym for key %q", key)
	}
	return ModMask(mask), KeySym(keysym), nil
}

func (c *Connection) GrabHotkey(mods ModMask, key KeySym) error {
	keycodes := keybind.KeysymToKeycodes(c.xu, xproto.Keysym(key))
	if len(keycodes) == 0 {
		return fmt.Errorf("x11: no keycode for keysym %#x", key)
	}
	for _, kc := range keycodes {
		if err := xproto.GrabKeyChecked(
			c.xu.Conn(), false, c.root, uint16(mods), kc,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
		).Check(); err != nil {
			return fmt.Errorf("x11: grab key %#x: %w", key, err)
		}
	}
	return nil
}

func (c *Connection) GrabMouseButton(button MouseButton, mods ModMask) error {
	return xproto.GrabButtonChecked(
		c.xu.Conn(), false, c.root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		0, 0,
		byte(button), uint16(mods),
	).Check()
}
