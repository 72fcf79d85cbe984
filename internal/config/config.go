// Package config is ashwm's YAML configuration layer: a raw on-disk
// shape decoded with gopkg.in/yaml.v3, an effective shape with every
// default applied, and a source-tracking loader so `ashwm config
// explain` can report which file set which value.
//
// Grounded on 1broseidon/termtile's internal/config package: the
// raw.go/config.go/loader.go/explain.go split and the
// SourceKind/Source/LoadResult shapes are carried over verbatim in
// idiom, generalized from termtile's layout/agent/terminal domain to
// ashwm's desktop/layer/hotkey domain.
package config

import "fmt"

// Keybinding names one hotkey: a modifier set plus a key symbol name
// resolvable by the adapter (e.g. "Mod4+Return").
type Keybinding struct {
	Mods string `yaml:"mods"`
	Key  string `yaml:"key"`
}

// MouseBinding names one global pointer-button grab: a modifier set
// plus an X button number (1=left, 2=middle, 3=right), used for the
// move/resize drag gestures.
type MouseBinding struct {
	Mods   string `yaml:"mods"`
	Button int    `yaml:"button"`
}

// Raw is the on-disk shape, decoded directly from YAML. Every field is
// a pointer or has its YAML-absent zero value treated as "unset" by
// Effective — this is what lets the loader report provenance per
// field.
type Raw struct {
	NumDesktops *int `yaml:"num_desktops,omitempty"`
	BorderWidth *int `yaml:"border_width,omitempty"`
	BorderColor string `yaml:"border_color,omitempty"`

	IconWidth  *int `yaml:"icon_width,omitempty"`
	IconHeight *int `yaml:"icon_height,omitempty"`

	LogFile string `yaml:"log_file,omitempty"`
	LogMask string `yaml:"log_mask,omitempty"`

	DumpFile string `yaml:"dump_file,omitempty"`

	Bindings map[string]Keybinding `yaml:"bindings,omitempty"`

	MoveButton   *MouseBinding `yaml:"move_button,omitempty"`
	ResizeButton *MouseBinding `yaml:"resize_button,omitempty"`
}

// Config is the effective configuration: every field resolved, ready
// for internal/wm to consume.
type Config struct {
	NumDesktops int    `yaml:"num_desktops"`
	BorderWidth int    `yaml:"border_width"`
	BorderColor string `yaml:"border_color"`

	IconWidth  int `yaml:"icon_width"`
	IconHeight int `yaml:"icon_height"`

	LogFile string `yaml:"log_file"`
	LogMask string `yaml:"log_mask"`

	DumpFile string `yaml:"dump_file"`

	Bindings map[string]Keybinding `yaml:"bindings"`

	MoveButton   MouseBinding `yaml:"move_button"`
	ResizeButton MouseBinding `yaml:"resize_button"`
}

// Defaults mirrors termtile's builtin.go: the zero-config fallback
// values applied wherever Raw leaves a field unset.
var Defaults = Config{
	NumDesktops: 5,
	BorderWidth: 2,
	BorderColor: "#444444",
	IconWidth:   96,
	IconHeight:  64,
	LogFile:     "",
	LogMask:     "info",
	DumpFile:    "",
	Bindings: map[string]Keybinding{
		"next_desktop":   {Mods: "Mod4", Key: "Right"},
		"prev_desktop":   {Mods: "Mod4", Key: "Left"},
		"cycle_focus":    {Mods: "Mod4", Key: "Tab"},
		"iconify":        {Mods: "Mod4", Key: "m"},
		"toggle_stick":   {Mods: "Mod4+Shift", Key: "s"},
		"close_window":   {Mods: "Mod4+Shift", Key: "q"},
	},
	MoveButton:   MouseBinding{Mods: "Mod4", Button: 1},
	ResizeButton: MouseBinding{Mods: "Mod4", Button: 3},
}

// Effective merges raw over Defaults, field by field.
func Effective(raw Raw) Config {
	cfg := Defaults
	if raw.NumDesktops != nil {
		cfg.NumDesktops = *raw.NumDesktops
	}
	if raw.BorderWidth != nil {
		cfg.BorderWidth = *raw.BorderWidth
	}
	if raw.BorderColor != "" {
		cfg.BorderColor = raw.BorderColor
	}
	if raw.IconWidth != nil {
		cfg.IconWidth = *raw.IconWidth
	}
	if raw.IconHeight != nil {
		cfg.IconHeight = *raw.IconHeight
	}
	if raw.LogFile != "" {
		cfg.LogFile = raw.LogFile
	}
	if raw.LogMask != "" {
		cfg.LogMask = raw.LogMask
	}
	if raw.DumpFile != "" {
		cfg.DumpFile = raw.DumpFile
	}
	if raw.Bindings != nil {
		merged := make(map[string]Keybinding, len(Defaults.Bindings))
		for k, v := range Defaults.Bindings {
			merged[k] = v
		}
		for k, v := range raw.Bindings {
			merged[k] = v
		}
		cfg.Bindings = merged
	}
	if raw.MoveButton != nil {
		cfg.MoveButton = *raw.MoveButton
	}
	if raw.ResizeButton != nil {
		cfg.ResizeButton = *raw.ResizeButton
	}
	return cfg
}

// Validate enforces the range constraints on an effective Config:
// num_desktops must be at least 1 (desktop.NewUser panics otherwise),
// border_width must not be negative, and icon_width/icon_height must
// be positive (a zero or negative icon box is not drawable).
func Validate(cfg Config) error {
	if cfg.NumDesktops < 1 {
		return fmt.Errorf("config: num_desktops must be at least 1, got %d", cfg.NumDesktops)
	}
	if cfg.BorderWidth < 0 {
		return fmt.Errorf("config: border_width must not be negative, got %d", cfg.BorderWidth)
	}
	if cfg.IconWidth <= 0 {
		return fmt.Errorf("config: icon_width must be positive, got %d", cfg.IconWidth)
	}
	if cfg.IconHeight <= 0 {
		return fmt.Errorf("config: icon_height must be positive, got %d", cfg.IconHeight)
	}
	return nil
}
