package dump

import (
	"strings"
	"testing"

	"github.com/ashwm/ashwm/internal/change"
	"github.com/ashwm/ashwm/internal/desktop"
	"github.com/ashwm/ashwm/internal/geometry"
)

func TestRenderOrdersScreensBeforeClients(t *testing.T) {
	out := Render(
		[]geometry.Box{{X: 0, Y: 0, Width: 1920, Height: 1080}},
		[]ClientRow{{Window: 1, Desktop: desktop.NewUser(0, 5), Layer: 4, X: 1, Y: 1, W: 100, H: 100, Mode: change.Floating}},
	)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "#BEGIN DUMP" || lines[len(lines)-1] != "#END DUMP" {
		t.Fatalf("expected dump brackets, got: %q", out)
	}
	if !strings.HasPrefix(lines[1], "box ") {
		t.Fatalf("expected screen line before client line, got: %v", lines)
	}
	if !strings.HasPrefix(lines[2], "client 1 0 4 1 1 100 100 0") {
		t.Fatalf("unexpected client line: %q", lines[2])
	}
}
