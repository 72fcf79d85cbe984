// Package dump writes the on-demand textual model dump triggered by
// the process's user-defined signal: screens then clients, bracketed
// by #BEGIN DUMP / #END DUMP lines, append-only.
//
// Grounded on 1broseidon/termtile's internal/workspace/state.go for
// the XDG_RUNTIME_DIR-resolved, 0600-permissioned file-write idiom;
// the bracketed textual format itself is dictated by spec §7's dump
// format, not by termtile (which persists JSON).
package dump

import (
	"fmt"
	"os"
	"strings"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
)

// ClientRow is one line of the client section: a flattened snapshot of
// a Client, independent of the model package so this writer has no
// dependency on it beyond the types it already shares (change,
// desktop, geometry).
type ClientRow struct {
	Window  change.Window
	Desktop desktop.Desktop
	Layer   int
	X, Y    int
	W, H    int
	Mode    change.CPSMode
}

// Render produces the bracketed textual dump for screens and clients,
// in that order, per spec §7.
func Render(screens []geometry.Box, clients []ClientRow) string {
	var b strings.Builder
	b.WriteString("#BEGIN DUMP\n")
	for _, s := range screens {
		fmt.Fprintf(&b, "box %d %d %d %d\n", s.X, s.Y, s.Width, s.Height)
	}
	for _, c := range clients {
		fmt.Fprintf(&b, "client %d %s %d %d %d %d %d %d\n",
			c.Window, desktopToken(c.Desktop), c.Layer, c.X, c.Y, c.W, c.H, c.Mode)
	}
	b.WriteString("#END DUMP\n")
	return b.String()
}

func desktopToken(d desktop.Desktop) string {
	if d.IsUser() {
		return fmt.Sprintf("%d", d.Index())
	}
	return d.String()
}

// Path resolves the dump file location: the configured dump_file, or
// XDG_RUNTIME_DIR/ashwm-dump.txt, with /tmp/ashwm-runtime-<uid> used as
// the directory when XDG_RUNTIME_DIR is unset — matching the teacher's statePath
// fallback chain exactly.
func Path(configured string) string {
	if configured != "" {
		return configured
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = fmt.Sprintf("/tmp/ashwm-runtime-%d", os.Getuid())
	}
	return runtimeDir + "/ashwm-dump.txt"
}

// WriteTo appends body to the dump file at path, creating the parent
// directory (0700) and the file (0600) if needed.
func WriteTo(path, body string) error {
	dir := path[:strings.LastIndex(path, "/")]
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("dump: create runtime dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("dump: open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(body); err != nil {
		return fmt.Errorf("dump: write %s: %w", path, err)
	}
	return nil
}
