package cursor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
screen_width = 1024
default_cursor = "crosshair"
debug = true

[pan]
speed = 2.5
button = "middle"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.ScreenWidth != 1024 || cfg.ScreenHeight != 480 {
		t.Errorf("screen = %vx%v, want 1024x480", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	if cfg.DefaultCursor != "crosshair" || !cfg.Debug {
		t.Errorf("cursor/debug = %q/%v", cfg.DefaultCursor, cfg.Debug)
	}
	if cfg.Pan.Speed != 2.5 || cfg.Pan.Button != "middle" {
		t.Errorf("pan = %+v", cfg.Pan)
	}
	if cfg.Pan.ViewWidth != 2000 {
		t.Errorf("unset pan view should keep its default, got %v", cfg.Pan.ViewWidth)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `screen_width = `},
		{"negative size", `screen_height = -1`},
		{"unknown cursor", `default_cursor = "hand-wave"`},
		{"unknown button", "[pan]\nbutton = \"thumb\""},
		{"negative view", "[pan]\nview_width = -5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cursor.toml")
	want := DefaultConfig()
	want.ScreenWidth = 1280
	want.DefaultCursor = "pointer"
	want.Pan.Button = "left"

	if err := WriteConfig(path, want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestParseCursorShape(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.CursorShapeType
	}{
		{"", ebiten.CursorShapeDefault},
		{"default", ebiten.CursorShapeDefault},
		{"Pointer", ebiten.CursorShapePointer},
		{"ns-resize", ebiten.CursorShapeNSResize},
		{"not-allowed", ebiten.CursorShapeNotAllowed},
	}
	for _, tt := range tests {
		got, err := ParseCursorShape(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseCursorShape(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseCursorShape("spinner"); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestParseMouseButton(t *testing.T) {
	tests := []struct {
		name string
		want MouseButton
	}{
		{"left", MouseButtonLeft},
		{"", MouseButtonRight},
		{"RIGHT", MouseButtonRight},
		{"middle", MouseButtonMiddle},
	}
	for _, tt := range tests {
		got, err := ParseMouseButton(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseMouseButton(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseMouseButton("back"); err == nil {
		t.Error("expected error for unknown button")
	}
}
