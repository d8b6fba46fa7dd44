package cursor

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera maps between screen space and world space. X and Y are the world
// point shown at the centre of Viewport.
type Camera struct {
	X, Y     float64
	Zoom     float64
	Rotation float64 // radians, clockwise
	Viewport Rect

	// Bounds limits the camera centre so the visible area stays inside it
	// while BoundsEnabled is set.
	Bounds        Rect
	BoundsEnabled bool

	scroll *cameraScroll

	view, inv [6]float64
	dirty     bool
}

type cameraScroll struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

// NewCamera creates a camera centred on the world origin.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport, dirty: true}
}

// SetBounds enables clamping to bounds.
func (c *Camera) SetBounds(bounds Rect) {
	c.Bounds = bounds
	c.BoundsEnabled = true
	c.dirty = true
}

// ClearBounds disables clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Pan moves the camera by (dx, dy) world units. A running ScrollTo is
// cancelled.
func (c *Camera) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	c.scroll = nil
	c.X += dx
	c.Y += dy
	c.clamp()
	c.dirty = true
}

// ScrollTo eases the camera centre to (x, y) over duration seconds. The
// scroll advances in Update.
func (c *Camera) ScrollTo(x, y float64, duration float32, fn ease.TweenFunc) {
	c.scroll = &cameraScroll{
		x: gween.New(float32(c.X), float32(x), duration, fn),
		y: gween.New(float32(c.Y), float32(y), duration, fn),
	}
}

// Scrolling reports whether a ScrollTo is in progress.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// Update advances a running scroll by dt seconds and applies the bounds.
// Hosts call it once per tick before Router.Update.
func (c *Camera) Update(dt float32) {
	x, y := c.X, c.Y
	if s := c.scroll; s != nil {
		if !s.doneX {
			v, done := s.x.Update(dt)
			c.X, s.doneX = float64(v), done
		}
		if !s.doneY {
			v, done := s.y.Update(dt)
			c.Y, s.doneY = float64(v), done
		}
		if s.doneX && s.doneY {
			c.scroll = nil
		}
	}
	c.clamp()
	if c.X != x || c.Y != y {
		c.dirty = true
	}
}

// MarkDirty must be called after writing Zoom, Rotation or Viewport directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.refresh()
	return transformPoint(c.view, wx, wy)
}

// ScreenToWorld converts a screen point to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.refresh()
	return transformPoint(c.inv, sx, sy)
}

// clamp keeps the visible area inside Bounds. A bounds rectangle smaller
// than the view centres the camera on it.
func (c *Camera) clamp() {
	if !c.BoundsEnabled {
		return
	}
	c.X = clampAxis(c.X, c.Bounds.X, c.Bounds.Width, c.Viewport.Width/(2*c.Zoom))
	c.Y = clampAxis(c.Y, c.Bounds.Y, c.Bounds.Height, c.Viewport.Height/(2*c.Zoom))
}

func clampAxis(v, lo, size, half float64) float64 {
	if size < 2*half {
		return lo + size/2
	}
	return math.Max(lo+half, math.Min(v, lo+size-half))
}

// refresh rebuilds the view matrix
//
//	Translate(viewport centre) * Scale(Zoom) * Rotate(-Rotation) * Translate(-X, -Y)
//
// and its inverse when dirty.
func (c *Camera) refresh() {
	if !c.dirty {
		return
	}
	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom
	centre := [6]float64{
		z * cos, z * sin, -z * sin, z * cos,
		c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2,
	}
	c.view = multiplyAffine(centre, [6]float64{1, 0, 0, 1, -c.X, -c.Y})
	c.inv = invertAffine(c.view)
	c.dirty = false
}
