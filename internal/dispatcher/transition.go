package dispatcher

import "github.com/ashwm/ashwm/internal/desktop"

// action names one cell of the ClientDesktopChange transition table in
// spec §4.4. Cells marked "—" in the table are Ignore: the dispatcher
// logs and does nothing further (the state transition itself was
// already applied by the model; only the side effect is skipped).
type action int

const (
	actionIgnore action = iota
	actionMapIfVisibleSetRelayer
	actionCreateIcon
	actionMapUnmapByVisibility
	actionMapIfNotVisible
	actionCreateIconUnmapIfVisible
	actionEnterMoveResize
	actionDestroyIconMapIfVisibleReflow
	actionExitMoveResize
)

// desktopZeroKind is the Kind carried by desktop.Zero, the "null"
// prior-desktop sentinel used only on a client's very first
// ClientDesktopChange.
const desktopZeroKind desktop.Kind = -1

// Classify returns the action for the (prev, next) desktop-kind cell,
// per the transition table in spec §4.4. Unlisted cells return
// actionIgnore; the caller logs those at INFO.
func Classify(prev, next desktop.Kind) action {
	switch prev {
	case desktopZeroKind:
		switch next {
		case desktop.User:
			return actionMapIfVisibleSetRelayer
		case desktop.Icon:
			return actionCreateIcon
		default:
			return actionIgnore
		}
	case desktop.User:
		switch next {
		case desktop.User:
			return actionMapUnmapByVisibility
		case desktop.All:
			return actionMapIfNotVisible
		case desktop.Icon:
			return actionCreateIconUnmapIfVisible
		case desktop.Moving, desktop.Resizing:
			return actionEnterMoveResize
		default:
			return actionIgnore
		}
	case desktop.All:
		switch next {
		case desktop.User:
			return actionMapUnmapByVisibility
		case desktop.Icon:
			return actionCreateIconUnmapIfVisible
		case desktop.Moving, desktop.Resizing:
			return actionEnterMoveResize
		default:
			return actionIgnore
		}
	case desktop.Icon:
		switch next {
		case desktop.User, desktop.All:
			return actionDestroyIconMapIfVisibleReflow
		default:
			return actionIgnore
		}
	case desktop.Moving, desktop.Resizing:
		switch next {
		case desktop.User, desktop.All:
			return actionExitMoveResize
		default:
			return actionIgnore
		}
	default:
		return actionIgnore
	}
}
