package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceKind names where an effective field's value came from.
type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source records the provenance of one effective field.
type Source struct {
	Kind SourceKind
	File string
}

// LoadResult bundles the effective config with per-field provenance,
// for `ashwm config explain`.
type LoadResult struct {
	Config  Config
	Sources map[string]Source // field name -> source
	File    string
}

// DefaultConfigPath returns ~/.config/ashwm/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "ashwm", "config.yaml"), nil
}

// Load reads the config at the default path, or pure defaults if no
// file exists there.
func Load() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and decodes the YAML file at path. A missing file
// is not an error: it yields pure Defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	raw := Raw{}
	sources := fieldSources(raw, "")

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return &LoadResult{Config: Defaults, Sources: sources}, nil
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &LoadResult{
		Config:  Effective(raw),
		Sources: fieldSources(raw, path),
		File:    path,
	}, nil
}

// fieldSources reports, for each top-level field, whether raw set it
// (SourceFile) or left it at Defaults (SourceDefault).
func fieldSources(raw Raw, file string) map[string]Source {
	set := func(isSet bool) Source {
		if isSet {
			return Source{Kind: SourceFile, File: file}
		}
		return Source{Kind: SourceDefault}
	}
	return map[string]Source{
		"num_desktops": set(raw.NumDesktops != nil),
		"border_width": set(raw.BorderWidth != nil),
		"border_color": set(raw.BorderColor != ""),
		"icon_width":   set(raw.IconWidth != nil),
		"icon_height":  set(raw.IconHeight != nil),
		"log_file":     set(raw.LogFile != ""),
		"log_mask":     set(raw.LogMask != ""),
		"dump_file":     set(raw.DumpFile != ""),
		"bindings":      set(raw.Bindings != nil),
		"move_button":   set(raw.MoveButton != nil),
		"resize_button": set(raw.ResizeButton != nil),
	}
}
