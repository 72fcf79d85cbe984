package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPathMissingFileYieldsDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.NumDesktops != Defaults.NumDesktops {
		t.Fatalf("got %d desktops, want default %d", res.Config.NumDesktops, Defaults.NumDesktops)
	}
	if res.Sources["num_desktops"].Kind != SourceDefault {
		t.Fatalf("expected num_desktops source to be default, got %v", res.Sources["num_desktops"])
	}
}

func TestLoadFromPathOverridesNumDesktops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("num_desktops: 9\nborder_width: 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Config.NumDesktops != 9 {
		t.Fatalf("got %d desktops, want 9", res.Config.NumDesktops)
	}
	if res.Config.BorderWidth != 4 {
		t.Fatalf("got border width %d, want 4", res.Config.BorderWidth)
	}
	if res.Sources["num_desktops"].Kind != SourceFile {
		t.Fatalf("expected num_desktops source to be file, got %v", res.Sources["num_desktops"])
	}
	if res.Config.IconWidth != Defaults.IconWidth {
		t.Fatalf("expected icon_width to fall back to default")
	}
}
