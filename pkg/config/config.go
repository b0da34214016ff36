// Package config loads zraster settings from an optional JSON file and merges
// them with command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/zraster/pkg/render"
)

// Config holds render and output settings.
type Config struct {
	// Background is "R,G,B" or "R,G,B,A" for pixels no triangle covers.
	Background string `json:"background"`
	// FlipY puts window +y at the top of the image. Nil means the default (true).
	FlipY *bool `json:"flip_y,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
	// Preview shows the result in the terminal after saving.
	Preview bool `json:"preview"`
	// Mode is "depth" or "wireframe". The command-line wireframe token wins.
	Mode render.Mode `json:"mode"`
}

// Defaults applied by Resolve.
const (
	DefaultBackground = "0,0,0,0"
	DefaultLogLevel   = "warn"
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given".
type Flags struct {
	Background string
	NoFlip     bool
	Verbose    bool
	Preview    bool
	Wireframe  bool
}

// Resolve applies flag overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Background != "" {
		c.Background = flags.Background
	}
	if flags.NoFlip {
		c.FlipY = boolPtr(false)
	}
	if flags.Verbose {
		c.LogLevel = "debug"
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.Wireframe {
		c.Mode = render.ModeWireframe
	}

	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.FlipY == nil {
		c.FlipY = boolPtr(true)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks fields that Resolve cannot default.
func (c *Config) Validate() error {
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Flip reports the resolved FlipY setting.
func (c *Config) Flip() bool {
	return c.FlipY == nil || *c.FlipY
}

func boolPtr(b bool) *bool { return &b }

// ParseColor parses "R,G,B" or "R,G,B,A" with 0-255 components. Alpha
// defaults to 255.
func ParseColor(s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("config: colour %q: want R,G,B or R,G,B,A", s)
	}

	vals := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("config: colour %q: component %d: %w", s, i+1, err)
		}
		vals[i] = uint8(v)
	}

	// image.RGBA stores premultiplied colour
	a := uint32(vals[3])
	premul := func(v uint8) uint8 { return uint8(uint32(v) * a / 255) }
	return color.RGBA{R: premul(vals[0]), G: premul(vals[1]), B: premul(vals[2]), A: vals[3]}, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return l, nil
}
