package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/go-theft-auto/pixgui"
)

// demoConfig is the top-level TOML structure.
type demoConfig struct {
	Window   windowConfig `toml:"window"`
	Theme    themeConfig  `toml:"theme"`
	Font     fontConfig   `toml:"font"`
	ClipMode string       `toml:"clip_mode"` // "border" or "scissor"
	Rows     int          `toml:"rows"`      // rows in the scrolling list
	Verbose  bool         `toml:"verbose"`
}

type windowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type themeConfig struct {
	Light         bool `toml:"light"`
	ScrollSpeed   int  `toml:"scroll_speed"`
	ScrollbarSize int  `toml:"scrollbar_size"`
	ThumbMin      int  `toml:"thumb_min"`
}

type fontConfig struct {
	Path string  `toml:"path"` // TrueType/OpenType file; empty uses the bitmap face
	Size float64 `toml:"size"`
}

const defaultConfigTOML = `# pixdemo configuration

clip_mode = "border"
rows = 1000
verbose = false

[window]
title = "pixgui demo"
width = 800
height = 600
vsync = true

[theme]
light = false
scroll_speed = 3
scrollbar_size = 12
thumb_min = 10

[font]
path = ""
size = 14.0
`

func defaultConfig() demoConfig {
	cfg, err := parseConfig([]byte(defaultConfigTOML))
	if err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// loadConfig reads the config file at path. An empty path returns the
// defaults.
func loadConfig(path string) (demoConfig, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig(), fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

// parseConfig decodes TOML over the built-in defaults, so missing keys keep
// their default values.
func parseConfig(data []byte) (demoConfig, error) {
	var cfg demoConfig
	if _, err := toml.Decode(defaultConfigTOML, &cfg); err != nil {
		return demoConfig{}, fmt.Errorf("parse defaults: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return demoConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return demoConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.validate(); err != nil {
		return demoConfig{}, err
	}
	return cfg, nil
}

func (c demoConfig) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Rows < 0 {
		return fmt.Errorf("rows: %d must not be negative", c.Rows)
	}
	if c.Theme.ScrollSpeed <= 0 {
		return fmt.Errorf("theme: scroll_speed %d must be positive", c.Theme.ScrollSpeed)
	}
	if c.Theme.ScrollbarSize <= 0 {
		return fmt.Errorf("theme: scrollbar_size %d must be positive", c.Theme.ScrollbarSize)
	}
	if c.Theme.ThumbMin < 0 {
		return fmt.Errorf("theme: thumb_min %d must not be negative", c.Theme.ThumbMin)
	}
	if c.Font.Path != "" && c.Font.Size <= 0 {
		return fmt.Errorf("font: size %v must be positive", c.Font.Size)
	}
	if _, err := c.clipMode(); err != nil {
		return err
	}
	return nil
}

// clipMode returns the configured scroll area clip mode.
func (c demoConfig) clipMode() (pixgui.ClipMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.ClipMode)) {
	case "", "border":
		return pixgui.ClipBorderFill, nil
	case "scissor":
		return pixgui.ClipScissor, nil
	}
	return 0, fmt.Errorf("clip_mode: unknown mode %q", c.ClipMode)
}

// theme returns the configured widget theme.
func (c demoConfig) theme() pixgui.Theme {
	t := pixgui.DefaultTheme()
	if c.Theme.Light {
		t = pixgui.LightTheme()
	}
	t.ScrollSpeed = c.Theme.ScrollSpeed
	t.ScrollbarSize = c.Theme.ScrollbarSize
	t.ThumbMin = c.Theme.ThumbMin
	return t
}

// guiOptions returns the GUI options for the config.
func (c demoConfig) guiOptions() []pixgui.GUIOption {
	mode, _ := c.clipMode()
	return []pixgui.GUIOption{pixgui.WithTheme(c.theme()), pixgui.WithClipMode(mode)}
}
