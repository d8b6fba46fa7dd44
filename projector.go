package cursor

import "math"

// Projector converts raw device samples into clamped screen coordinates and
// world coordinates through the active camera.
//
// While frozen, raw samples are still recorded but the screen and world
// positions hold their last value and report a zero delta.
type Projector struct {
	cam           *Camera
	width, height float64
	follower      Follower

	raw, prevRaw       Vec2
	screen, prevScreen Vec2
	world, prevWorld   Vec2
	frozen             bool
	sampled            bool // raw and screen have a previous value
	projected          bool // world has a previous value
}

// SetCamera sets the camera used for the screen-to-world mapping.
func (p *Projector) SetCamera(cam *Camera) {
	p.cam = cam
}

// Camera returns the active camera, or nil.
func (p *Projector) Camera() *Camera {
	return p.cam
}

// SetScreenSize sets the clamping bounds [0,w]×[0,h]. When unset, the
// camera viewport size is used.
func (p *Projector) SetScreenSize(w, h float64) {
	p.width = w
	p.height = h
}

// SetFollower sets the visual that tracks the projected world point.
func (p *Projector) SetFollower(f Follower) {
	p.follower = f
}

// SetFrozen freezes or unfreezes screen/world projection.
func (p *Projector) SetFrozen(frozen bool) {
	p.frozen = frozen
}

// Frozen reports whether projection is frozen.
func (p *Projector) Frozen() bool {
	return p.frozen
}

// bounds returns the clamping size.
func (p *Projector) bounds() (w, h float64) {
	if p.width > 0 || p.height > 0 {
		return p.width, p.height
	}
	if p.cam != nil {
		return p.cam.Viewport.Width, p.cam.Viewport.Height
	}
	return math.Inf(1), math.Inf(1)
}

// Update records a raw device sample and recomputes the projected positions.
// It returns ErrNoCamera when no camera is set; the world position then
// keeps its last value.
func (p *Projector) Update(rawX, rawY float64) error {
	p.prevRaw = p.raw
	p.prevScreen = p.screen
	p.prevWorld = p.world
	p.raw = Vec2{rawX, rawY}
	if !p.sampled {
		// No delta on the very first sample.
		p.prevRaw = p.raw
	}

	if p.frozen {
		return nil
	}

	w, h := p.bounds()
	p.screen = Vec2{clamp(rawX, 0, w), clamp(rawY, 0, h)}
	if !p.sampled {
		p.prevScreen = p.screen
	}

	if p.cam == nil {
		p.sampled = true
		return ErrNoCamera
	}
	wx, wy := p.cam.ScreenToWorld(p.screen.X, p.screen.Y)
	p.world = Vec2{wx, wy}
	if !p.projected {
		// No world delta on the first projection, even if earlier
		// samples arrived without a camera.
		p.prevWorld = p.world
	}
	p.sampled = true
	p.projected = true

	if p.follower != nil {
		p.follower.SetPosition(p.world.X, p.world.Y)
	}
	return nil
}

// Raw returns the latest raw device position.
func (p *Projector) Raw() Vec2 { return p.raw }

// RawDelta returns the raw movement of the latest sample.
func (p *Projector) RawDelta() Vec2 { return p.raw.Sub(p.prevRaw) }

// Screen returns the clamped screen position.
func (p *Projector) Screen() Vec2 { return p.screen }

// ScreenDelta returns the clamped screen movement of the latest sample.
func (p *Projector) ScreenDelta() Vec2 { return p.screen.Sub(p.prevScreen) }

// World returns the world-space position.
func (p *Projector) World() Vec2 { return p.world }

// WorldDelta returns the world-space movement of the latest sample.
func (p *Projector) WorldDelta() Vec2 { return p.world.Sub(p.prevWorld) }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
