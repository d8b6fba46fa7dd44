package cursor

import (
	"fmt"
	"io"
	"log"
)

// EntityStore is an optional interface for forwarding routed events into an
// ECS world. See the ecs subpackage for a Donburi adapter.
type EntityStore interface {
	EmitEvent(event Event)
}

// Router turns raw pointer samples into interaction events. Call Update once
// per tick before any feature logic and LateUpdate once after it.
//
// A Router is not safe for concurrent use; it belongs to the game loop.
type Router struct {
	scene  HitTester
	source InputSource
	proj   Projector

	buttons [numMouseButtons]ButtonDetector
	edges   [numMouseButtons]Edge
	held    ButtonMask
	mods    KeyModifiers

	reg       listenerRegistry
	hover     hoverTracker
	drag      DragArbiter
	overrides OverrideStack

	store  EntityStore
	runner *TestRunner

	tick     uint64
	events   []Event
	hitBuf   []Listener
	bcastBuf []Listener

	logger     *log.Logger
	loggedErrs map[error]struct{}
	debug      bool
}

// NewRouter creates a router that samples source each tick and asks scene
// what lies under the pointer. cfg sets the screen bounds, the default
// visual and debug mode.
func NewRouter(cfg Config, scene HitTester, source InputSource) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("new router: %w", ErrNoSource)
	}
	shape, _ := ParseCursorShape(cfg.DefaultCursor)
	r := &Router{
		scene:      scene,
		source:     source,
		logger:     newLogger(nil),
		loggedErrs: make(map[error]struct{}),
	}
	r.proj.SetScreenSize(cfg.ScreenWidth, cfg.ScreenHeight)
	r.overrides.SetDefault(&Visual{Name: cfg.DefaultCursor, Shape: shape})
	r.SetDebugMode(cfg.Debug)
	return r, nil
}

// Update runs the active phase of a tick: sample, project, hit-test, hover
// diff, button edges and broadcast.
func (r *Router) Update() {
	r.tick++
	if r.runner != nil {
		r.runner.step(r)
	}

	smp := r.source.Sample()
	r.mods = smp.Modifiers
	if err := r.proj.Update(smp.X, smp.Y); err != nil {
		r.logError("project pointer", err, true)
	}

	r.held = 0
	for b := range r.buttons {
		r.edges[b] = r.buttons[b].Sample(smp.Buttons[b])
		if r.buttons[b].Pressed() {
			r.held |= 1 << b
		}
	}

	var stats tickStats
	screen, world := r.proj.Screen(), r.proj.World()
	r.hitBuf = r.hitBuf[:0]
	if r.scene != nil {
		r.hitBuf = r.scene.HitTest(screen, world, r.hitBuf)
	}
	stats.hits = len(r.hitBuf)

	for _, tr := range r.hover.diff(r.hitBuf, &r.reg) {
		if tr.kind == EventEnter {
			stats.enters++
		} else {
			stats.exits++
		}
		e := r.newEvent(tr.kind)
		e.Target = tr.listener
		r.unicast(tr.listener, e)
	}
	stats.distinct = len(r.hover.hits)

	if raw := r.proj.RawDelta(); raw.X != 0 || raw.Y != 0 {
		r.broadcast(r.newEvent(EventMove))
	}
	for b, edge := range r.edges {
		var kind EventKind
		switch edge {
		case EdgeDown:
			kind = EventButtonDown
		case EdgeUp:
			kind = EventButtonUp
		default:
			continue
		}
		e := r.newEvent(kind)
		e.Button = MouseButton(b)
		r.broadcast(e)
	}

	stats.hovered = len(r.hover.hovered)
	stats.events = len(r.events)
	r.debugLog(stats)
}

// LateUpdate runs the settle phase: the drag claim is cleared when its owner
// stopped dragging or unregistered, and the tick's event list is reset.
func (r *Router) LateUpdate() {
	prev := r.drag.Claimant()
	if r.drag.sweep(r.reg.contains) && r.debug {
		r.logger.Printf("tick %d | drag claim of %v released", r.tick, prev)
	}
	clear(r.events)
	r.events = r.events[:0]
}

func (r *Router) newEvent(kind EventKind) Event {
	return Event{
		Kind:      kind,
		Screen:    r.proj.Screen(),
		World:     r.proj.World(),
		Delta:     r.proj.WorldDelta(),
		Held:      r.held,
		Modifiers: r.mods,
		Tick:      r.tick,
	}
}

// unicast delivers e to l if l is still registered.
func (r *Router) unicast(l Listener, e Event) {
	if !r.reg.contains(l) {
		return
	}
	r.record(e)
	l.HandleCursorEvent(e)
}

// broadcast delivers e to a snapshot of the registry in registration order.
// Listeners unregistered by an earlier callback are skipped; listeners
// registered during the broadcast are not reached until the next event.
func (r *Router) broadcast(e Event) {
	r.record(e)
	r.bcastBuf = r.reg.snapshot(r.bcastBuf)
	for _, l := range r.bcastBuf {
		if r.reg.contains(l) {
			l.HandleCursorEvent(e)
		}
	}
	clear(r.bcastBuf)
}

func (r *Router) record(e Event) {
	r.events = append(r.events, e)
	if r.store != nil {
		r.store.EmitEvent(e)
	}
}

// --- Registry ---

// Register subscribes l. Registering twice has no effect.
func (r *Router) Register(l Listener) {
	if l == nil {
		return
	}
	r.reg.add(l)
}

// Unregister removes l. No Exit is delivered even if l was hovered; the
// listener leaves the hovered set at once, so registering it again gets a
// fresh Enter while it is hit. Unregistering an unknown listener has no
// effect.
func (r *Router) Unregister(l Listener) {
	if l == nil {
		return
	}
	if r.reg.remove(l) {
		r.hover.remove(l)
	}
}

// IsRegistered reports whether l is subscribed.
func (r *Router) IsRegistered(l Listener) bool {
	return r.reg.contains(l)
}

// IsHovered reports whether l is registered and currently hovered.
func (r *Router) IsHovered(l Listener) bool {
	return r.reg.contains(l) && r.hover.contains(l)
}

// Hovered returns the hovered listeners in the order they were entered.
func (r *Router) Hovered() []Listener {
	out := make([]Listener, 0, len(r.hover.hovered))
	for _, l := range r.hover.hovered {
		if r.reg.contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// HitListeners returns this tick's raw hit-test result, duplicates included.
// The slice is reused by the next Update.
func (r *Router) HitListeners() []Listener {
	return r.hitBuf
}

// --- Pointer state ---

// RawPosition returns the unclamped device position.
func (r *Router) RawPosition() Vec2 { return r.proj.Raw() }

// RawDelta returns the device movement of this tick. It keeps reporting
// movement while the position is frozen.
func (r *Router) RawDelta() Vec2 { return r.proj.RawDelta() }

// ScreenPosition returns the clamped screen position.
func (r *Router) ScreenPosition() Vec2 { return r.proj.Screen() }

// ScreenDelta returns the screen movement of this tick.
func (r *Router) ScreenDelta() Vec2 { return r.proj.ScreenDelta() }

// WorldPosition returns the world-space pointer position.
func (r *Router) WorldPosition() Vec2 { return r.proj.World() }

// WorldDelta returns the world-space movement of this tick.
func (r *Router) WorldDelta() Vec2 { return r.proj.WorldDelta() }

// IsButtonPressed reports whether b is held.
func (r *Router) IsButtonPressed(b MouseButton) bool {
	if int(b) >= numMouseButtons {
		return false
	}
	return r.buttons[b].Pressed()
}

// Held returns the held buttons as a mask.
func (r *Router) Held() ButtonMask { return r.held }

// Modifiers returns the keyboard modifiers of this tick.
func (r *Router) Modifiers() KeyModifiers { return r.mods }

// Tick returns the number of Update calls so far.
func (r *Router) Tick() uint64 { return r.tick }

// SetPositionFrozen freezes or unfreezes the screen and world positions.
// Raw samples keep being recorded while frozen.
func (r *Router) SetPositionFrozen(frozen bool) {
	r.proj.SetFrozen(frozen)
}

// IsPositionFrozen reports whether the position is frozen.
func (r *Router) IsPositionFrozen() bool {
	return r.proj.Frozen()
}

// --- Events of the current tick ---

// Events returns the events delivered during the current tick. The slice is
// reset by LateUpdate.
func (r *Router) Events() []Event {
	return r.events
}

// HadEvent reports whether an event of kind was delivered this tick.
func (r *Router) HadEvent(kind EventKind) bool {
	for i := range r.events {
		if r.events[i].Kind == kind {
			return true
		}
	}
	return false
}

// --- Drag arbitration ---

// TryClaimDrag gives d the exclusive drag slot. It succeeds only when the
// slot is free and d is hovered.
func (r *Router) TryClaimDrag(d Dragger) bool {
	if d == nil {
		return false
	}
	return r.drag.TryClaim(d, r.IsHovered(d))
}

// ReleaseDrag frees the drag slot if l holds it.
func (r *Router) ReleaseDrag(l Listener) {
	r.drag.Release(l)
}

// CurrentDragClaimant returns the drag slot owner, or nil.
func (r *Router) CurrentDragClaimant() Listener {
	if c := r.drag.Claimant(); c != nil {
		return c
	}
	return nil
}

// --- Visual overrides ---

// AddOverride pushes a visual override. A nil visual is reported and
// skipped.
func (r *Router) AddOverride(o Override) error {
	if err := r.overrides.Add(o); err != nil {
		r.logError("add override", err, false)
		return err
	}
	return nil
}

// RemoveOverride removes the first override equal to o.
func (r *Router) RemoveOverride(o Override) error {
	if err := r.overrides.Remove(o); err != nil {
		r.logError("remove override", err, false)
		return err
	}
	return nil
}

// EffectiveVisual returns the visual currently in effect.
func (r *Router) EffectiveVisual() (*Visual, error) {
	return r.overrides.Effective()
}

// SetDefaultVisual replaces the visual used when no override is present.
func (r *Router) SetDefaultVisual(v *Visual) {
	r.overrides.SetDefault(v)
}

// SetVisualSink sets where visual changes are applied, typically
// EbitenVisualSink{}.
func (r *Router) SetVisualSink(sink VisualSink) {
	r.overrides.SetSink(sink)
}

// --- Wiring ---

// SetCamera sets the camera used for world projection.
func (r *Router) SetCamera(cam *Camera) {
	r.proj.SetCamera(cam)
	if cam != nil {
		r.forgetError(ErrNoCamera)
	}
}

// Camera returns the projection camera, or nil.
func (r *Router) Camera() *Camera {
	return r.proj.Camera()
}

// SetScreenSize sets the clamping bounds of the screen position.
func (r *Router) SetScreenSize(w, h float64) {
	r.proj.SetScreenSize(w, h)
}

// SetFollower sets the visual that tracks the world position.
func (r *Router) SetFollower(f Follower) {
	r.proj.SetFollower(f)
}

// SetScene replaces the hit tester.
func (r *Router) SetScene(scene HitTester) {
	r.scene = scene
}

// SetEntityStore sets the optional ECS bridge. Pass nil to disable.
func (r *Router) SetEntityStore(store EntityStore) {
	r.store = store
}

// SetDebugMode enables per-tick diagnostics and node tree checks.
func (r *Router) SetDebugMode(enabled bool) {
	r.debug = enabled
	globalDebug = enabled
}

// SetLogOutput redirects the router's log output.
func (r *Router) SetLogOutput(w io.Writer) {
	r.logger.SetOutput(w)
}

// SetTestRunner attaches a scripted runner. The router's source must be an
// *InjectedSource.
func (r *Router) SetTestRunner(runner *TestRunner) error {
	if runner == nil {
		r.runner = nil
		return nil
	}
	src, ok := r.source.(*InjectedSource)
	if !ok {
		return fmt.Errorf("set test runner: source is %T, want *InjectedSource", r.source)
	}
	runner.src = src
	r.runner = runner
	return nil
}
