package handle

import "github.com/phanxgames/cursor"

// Drag moves a target node while the left button is held after pressing on
// the handle. While hovered or dragging it pushes its cursor visual.
type Drag struct {
	router   *cursor.Router
	target   *cursor.Node
	override cursor.Override

	hovered  bool
	dragging bool
	pushed   bool
	enabled  bool

	// claimTick is the tick the drag started on. Movement sampled on that
	// tick happened before the press and is not applied.
	claimTick uint64

	// OnDragStart and OnDragEnd are optional.
	OnDragStart func()
	OnDragEnd   func()
}

// NewDrag creates an enabled drag handle. The handle must be declared as a
// listener on the surfaces that grab it, for example
// cursor.NewRectSurface("title", w, h, drag).
// visual may be nil for no visual change.
func NewDrag(r *cursor.Router, target *cursor.Node, visual *cursor.Visual, priority int) *Drag {
	d := &Drag{
		router:   r,
		target:   target,
		override: cursor.Override{Visual: visual, Priority: priority},
	}
	d.Enable()
	return d
}

// Enable registers the handle with the router.
func (d *Drag) Enable() {
	if d.enabled {
		return
	}
	d.enabled = true
	d.router.Register(d)
}

// Disable unregisters the handle. It behaves as if the pointer left: a drag
// in progress ends and the visual is removed.
func (d *Drag) Disable() {
	if !d.enabled {
		return
	}
	d.enabled = false
	d.router.Unregister(d)
	d.hovered = false
	if d.dragging {
		d.endDrag()
	}
	d.popVisual()
}

// IsDragging implements cursor.Dragger.
func (d *Drag) IsDragging() bool {
	return d.dragging
}

// IsHovered reports whether the pointer is over the handle.
func (d *Drag) IsHovered() bool {
	return d.hovered
}

// HandleCursorEvent implements cursor.Listener.
func (d *Drag) HandleCursorEvent(e cursor.Event) {
	switch e.Kind {
	case cursor.EventEnter:
		d.hovered = true
		d.pushVisual()
	case cursor.EventExit:
		d.hovered = false
		if !d.dragging {
			d.popVisual()
		}
	case cursor.EventButtonDown:
		if e.Button != cursor.MouseButtonLeft || d.dragging || !d.hovered {
			return
		}
		if d.router.TryClaimDrag(d) {
			d.dragging = true
			d.claimTick = e.Tick
			if d.OnDragStart != nil {
				d.OnDragStart()
			}
		}
	case cursor.EventButtonUp:
		if e.Button == cursor.MouseButtonLeft && d.dragging {
			d.endDrag()
		}
	}
}

// Update moves the target by this tick's pointer delta while dragging. The
// delta is taken in screen space for ScreenSpace targets and in world space
// otherwise, then converted into the target parent's local space.
func (d *Drag) Update() {
	if !d.dragging || d.target == nil || d.router.Tick() == d.claimTick {
		return
	}
	delta, pos := d.router.WorldDelta(), d.router.WorldPosition()
	if d.target.ScreenSpace {
		delta, pos = d.router.ScreenDelta(), d.router.ScreenPosition()
	}
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	if p := d.target.Parent; p != nil {
		x1, y1 := p.WorldToLocal(pos.X, pos.Y)
		x0, y0 := p.WorldToLocal(pos.X-delta.X, pos.Y-delta.Y)
		delta = cursor.Vec2{X: x1 - x0, Y: y1 - y0}
	}
	d.target.SetPosition(d.target.X+delta.X, d.target.Y+delta.Y)
}

func (d *Drag) endDrag() {
	d.dragging = false
	d.router.ReleaseDrag(d)
	if d.OnDragEnd != nil {
		d.OnDragEnd()
	}
	if !d.hovered {
		d.popVisual()
	}
}

func (d *Drag) pushVisual() {
	if d.pushed || d.override.Visual == nil {
		return
	}
	if d.router.AddOverride(d.override) == nil {
		d.pushed = true
	}
}

func (d *Drag) popVisual() {
	if !d.pushed {
		return
	}
	_ = d.router.RemoveOverride(d.override)
	d.pushed = false
}
