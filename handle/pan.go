package handle

import (
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/cursor"
)

// CameraPan moves a camera with the raw mouse movement while a button is
// held. The pointer position is frozen for the duration of the pan so the
// world point under it does not slide.
type CameraPan struct {
	router *cursor.Router
	cam    *cursor.Camera
	button cursor.MouseButton
	speed  float64
	home   cursor.Vec2

	panning bool
	enabled bool
}

// NewCameraPan creates an enabled camera pan from cfg. The camera is clamped
// so its visible area stays inside cfg.View() when the view is non-empty.
// The camera position at creation is the home position for ReturnHome.
func NewCameraPan(r *cursor.Router, cam *cursor.Camera, cfg cursor.PanConfig) (*CameraPan, error) {
	b, err := cursor.ParseMouseButton(cfg.Button)
	if err != nil {
		return nil, fmt.Errorf("new camera pan: %w", err)
	}
	if cam == nil {
		return nil, fmt.Errorf("new camera pan: %w", cursor.ErrNoCamera)
	}
	if view := cfg.View(); view.Width > 0 && view.Height > 0 {
		cam.SetBounds(view)
	}
	p := &CameraPan{
		router: r,
		cam:    cam,
		button: b,
		speed:  cfg.Speed,
		home:   cursor.Vec2{X: cam.X, Y: cam.Y},
	}
	p.Enable()
	return p, nil
}

// Enable registers the pan with the router.
func (p *CameraPan) Enable() {
	if p.enabled {
		return
	}
	p.enabled = true
	p.router.Register(p)
}

// Disable unregisters the pan and stops a pan in progress.
func (p *CameraPan) Disable() {
	if !p.enabled {
		return
	}
	p.enabled = false
	p.router.Unregister(p)
	p.setPanning(false)
}

// Panning reports whether a pan is in progress.
func (p *CameraPan) Panning() bool {
	return p.panning
}

// HandleCursorEvent implements cursor.Listener.
func (p *CameraPan) HandleCursorEvent(e cursor.Event) {
	if e.Kind == cursor.EventButtonDown && e.Button == p.button {
		p.setPanning(true)
	}
}

// Update pans by this tick's raw movement scaled by the speed. The pan ends
// once the button is no longer held.
func (p *CameraPan) Update() {
	if p.panning {
		d := p.router.RawDelta()
		if d.X != 0 || d.Y != 0 {
			p.cam.Pan(d.X*p.speed, d.Y*p.speed)
		}
	}
	if !p.router.IsButtonPressed(p.button) {
		p.setPanning(false)
	}
}

// ReturnHome eases the camera back to its home position over duration
// seconds. Starting a new pan cancels the return.
func (p *CameraPan) ReturnHome(duration float32) {
	p.setPanning(false)
	p.cam.ScrollTo(p.home.X, p.home.Y, duration, ease.OutCubic)
}

func (p *CameraPan) setPanning(on bool) {
	if p.panning == on {
		return
	}
	p.panning = on
	p.router.SetPositionFrozen(on)
}
