package cursor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config holds the router settings read from a TOML file.
type Config struct {
	ScreenWidth   float64   `toml:"screen_width"`
	ScreenHeight  float64   `toml:"screen_height"`
	DefaultCursor string    `toml:"default_cursor"`
	Debug         bool      `toml:"debug"`
	Pan           PanConfig `toml:"pan"`
}

// PanConfig configures camera panning with a held mouse button. The view
// rectangle bounds the camera centre.
type PanConfig struct {
	ViewX      float64 `toml:"view_x"`
	ViewY      float64 `toml:"view_y"`
	ViewWidth  float64 `toml:"view_width"`
	ViewHeight float64 `toml:"view_height"`
	Speed      float64 `toml:"speed"`
	Button     string  `toml:"button"`
}

// View returns the pan bounds as a Rect.
func (c PanConfig) View() Rect {
	return Rect{X: c.ViewX, Y: c.ViewY, Width: c.ViewWidth, Height: c.ViewHeight}
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:   640,
		ScreenHeight:  480,
		DefaultCursor: "default",
		Pan: PanConfig{
			ViewX:      -1000,
			ViewY:      -1000,
			ViewWidth:  2000,
			ViewHeight: 2000,
			Speed:      1,
			Button:     "right",
		},
	}
}

// LoadConfig reads a TOML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks the names and sizes in c.
func (c Config) Validate() error {
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return errors.New("negative screen size")
	}
	if _, err := ParseCursorShape(c.DefaultCursor); err != nil {
		return err
	}
	if _, err := ParseMouseButton(c.Pan.Button); err != nil {
		return err
	}
	if c.Pan.ViewWidth < 0 || c.Pan.ViewHeight < 0 {
		return errors.New("negative pan view size")
	}
	return nil
}

// WriteConfig encodes c as TOML to path.
func WriteConfig(path string, c Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

var cursorShapes = map[string]ebiten.CursorShapeType{
	"default":     ebiten.CursorShapeDefault,
	"text":        ebiten.CursorShapeText,
	"crosshair":   ebiten.CursorShapeCrosshair,
	"pointer":     ebiten.CursorShapePointer,
	"ew-resize":   ebiten.CursorShapeEWResize,
	"ns-resize":   ebiten.CursorShapeNSResize,
	"nesw-resize": ebiten.CursorShapeNESWResize,
	"nwse-resize": ebiten.CursorShapeNWSEResize,
	"move":        ebiten.CursorShapeMove,
	"not-allowed": ebiten.CursorShapeNotAllowed,
}

// ParseCursorShape maps a shape name such as "pointer" or "ns-resize" to an
// ebiten cursor shape. The empty name means "default".
func ParseCursorShape(name string) (ebiten.CursorShapeType, error) {
	if name == "" {
		return ebiten.CursorShapeDefault, nil
	}
	shape, ok := cursorShapes[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown cursor shape %q", name)
	}
	return shape, nil
}

// ParseMouseButton maps "left", "right" or "middle" to a MouseButton.
func ParseMouseButton(name string) (MouseButton, error) {
	switch strings.ToLower(name) {
	case "left":
		return MouseButtonLeft, nil
	case "", "right":
		return MouseButtonRight, nil
	case "middle":
		return MouseButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}
