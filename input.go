package cursor

import "github.com/hajimehoshi/ebiten/v2"

// Sample is one raw reading of the pointer device.
type Sample struct {
	X, Y float64
	// Buttons holds one analog reading per MouseButton; positive means
	// pressed.
	Buttons   [numMouseButtons]float64
	Modifiers KeyModifiers
}

// Pressed reports whether b reads as pressed.
func (s Sample) Pressed(b MouseButton) bool {
	return int(b) < numMouseButtons && s.Buttons[b] > 0
}

// InputSource supplies the Router with one sample per tick.
type InputSource interface {
	Sample() Sample
}

// EbitenSource reads the mouse and keyboard through ebiten. It must be
// sampled from the game's Update.
type EbitenSource struct{}

var ebitenButtons = [numMouseButtons]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// Sample implements InputSource.
func (EbitenSource) Sample() Sample {
	mx, my := ebiten.CursorPosition()
	s := Sample{X: float64(mx), Y: float64(my), Modifiers: readModifiers()}
	for i, b := range ebitenButtons {
		if ebiten.IsMouseButtonPressed(b) {
			s.Buttons[i] = 1
		}
	}
	return s
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}
