package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/audiolayout/internal/icons"
	"github.com/llehouerou/audiolayout/internal/media"
)

const appName = "audiolayout"

type Config struct {
	Icons       string            `koanf:"icons"`        // "nerd", "unicode", or "none"
	CustomIcons bool              `koanf:"custom_icons"` // use icon_slots instead of the icons style
	IconSlots   map[string]string `koanf:"icon_slots"`   // slot name -> glyph
	SmallWidth  int               `koanf:"small_width"`  // columns below which the small layout is used
	Load        string            `koanf:"load"`         // media load mode
	ViewType    string            `koanf:"view_type"`    // "audio", "video" or "unknown"

	Log LogConfig `koanf:"log"`

	// Track shown by the demo player
	Demo DemoConfig `koanf:"demo"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // log file path (default: xdg state dir)
}

// DemoConfig describes the track loaded into the demo player.
type DemoConfig struct {
	Title           string `koanf:"title"`
	Artist          string `koanf:"artist"`
	DurationSeconds int    `koanf:"duration_seconds"`
}

// Load reads the config files in priority order and validates the result.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order (last wins), skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Icons:    string(icons.StyleNone),
		Load:     string(media.LoadVisible),
		ViewType: string(media.ViewAudio),
		Log:      LogConfig{Level: "info"},
		Demo: DemoConfig{
			Title:           "Untitled",
			Artist:          "Unknown Artist",
			DurationSeconds: 240,
		},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := icons.Lookup(icons.Style(c.Icons)); err != nil {
		return fmt.Errorf("icons: %w", err)
	}
	if _, err := media.ParseLoadMode(c.Load); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if _, err := media.ParseViewType(c.ViewType); err != nil {
		return fmt.Errorf("view_type: %w", err)
	}
	if c.SmallWidth < 0 {
		return fmt.Errorf("small_width: must not be negative, got %d", c.SmallWidth)
	}
	return nil
}

// LoadMode returns the parsed load mode. Call after Validate.
func (c *Config) LoadMode() media.LoadMode {
	m, _ := media.ParseLoadMode(c.Load)
	return m
}

// View returns the parsed view type. Call after Validate.
func (c *Config) View() media.ViewType {
	v, _ := media.ParseViewType(c.ViewType)
	return v
}

// LogFilePath returns the configured log file, or one in the xdg state dir.
func (c *Config) LogFilePath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/audiolayout/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
