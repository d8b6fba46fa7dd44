package cursor

import (
	"io"
	"testing"
)

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersects ---

func TestRectIntersects(t *testing.T) {
	base := Rect{10, 10, 100, 100}
	tests := []struct {
		name   string
		other  Rect
		expect bool
	}{
		{"overlapping", Rect{50, 50, 100, 100}, true},
		{"adjacent right", Rect{110, 10, 50, 50}, true},
		{"disjoint right", Rect{111, 10, 50, 50}, false},
		{"disjoint above", Rect{10, -100, 50, 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := base.Intersects(tt.other)
			if got != tt.expect {
				t.Errorf("Rect%v.Intersects(Rect%v) = %v, want %v", base, tt.other, got, tt.expect)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{1.5, 2}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestEnumStrings(t *testing.T) {
	kinds := map[EventKind]string{
		EventMove:       "Move",
		EventEnter:      "Enter",
		EventExit:       "Exit",
		EventButtonDown: "ButtonDown",
		EventButtonUp:   "ButtonUp",
		EventKind(99):   "Unknown",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", k, got, want)
		}
	}
	buttons := map[MouseButton]string{
		MouseButtonLeft:   "Left",
		MouseButtonRight:  "Right",
		MouseButtonMiddle: "Middle",
		MouseButton(7):    "None",
	}
	for b, want := range buttons {
		if got := b.String(); got != want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", b, got, want)
		}
	}
}

func TestButtonMaskHas(t *testing.T) {
	m := ButtonMask(1<<MouseButtonLeft | 1<<MouseButtonMiddle)
	if !m.Has(MouseButtonLeft) || !m.Has(MouseButtonMiddle) {
		t.Error("mask should have left and middle")
	}
	if m.Has(MouseButtonRight) {
		t.Error("mask should not have right")
	}
}

// --- Shared test helpers ---

// recorder is a Listener that records every event it receives. An optional
// hook runs after recording.
type recorder struct {
	name   string
	events []Event
	log    *[]string
	hook   func(e Event)
}

func (r *recorder) HandleCursorEvent(e Event) {
	r.events = append(r.events, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name+":"+e.Kind.String())
	}
	if r.hook != nil {
		r.hook(e)
	}
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

// dragger is a recorder that can own the drag slot.
type dragger struct {
	recorder
	dragging bool
}

func (d *dragger) IsDragging() bool { return d.dragging }

// stubHitTester returns a fixed hit list regardless of position.
type stubHitTester struct {
	hits []Listener
}

func (s *stubHitTester) HitTest(screen, world Vec2, buf []Listener) []Listener {
	return append(buf, s.hits...)
}

// newTestRouter creates a router over a 800x600 screen with a camera whose
// world coordinates equal screen coordinates. Log output is discarded.
func newTestRouter(t *testing.T, scene HitTester) (*Router, *InjectedSource) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ScreenWidth, cfg.ScreenHeight = 800, 600
	src := NewInjectedSource(0, 0)
	r, err := NewRouter(cfg, scene, src)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	r.SetLogOutput(io.Discard)
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 400, 300
	r.SetCamera(cam)
	return r, src
}

// tick runs one full router tick.
func tick(r *Router) {
	r.Update()
	r.LateUpdate()
}

func equalKinds(a, b []EventKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
