package cursor

import (
	"math"
	"testing"
)

func TestInjectedSourceRepeatsLast(t *testing.T) {
	s := NewInjectedSource(5, 7)
	if got := s.Sample(); got.X != 5 || got.Y != 7 {
		t.Fatalf("initial sample = %+v, want (5,7)", got)
	}
	s.InjectPress(10, 10, MouseButtonLeft)
	s.Sample()
	for i := 0; i < 3; i++ {
		got := s.Sample()
		if got.X != 10 || !got.Pressed(MouseButtonLeft) {
			t.Errorf("repeat %d = %+v, want held at (10,10)", i, got)
		}
	}
}

func TestInjectClick(t *testing.T) {
	s := NewInjectedSource(0, 0)
	s.InjectClick(50, 60, MouseButtonRight)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued samples, got %d", s.Pending())
	}
	press := s.Sample()
	if !press.Pressed(MouseButtonRight) || press.X != 50 || press.Y != 60 {
		t.Errorf("press = %+v", press)
	}
	release := s.Sample()
	if release.Pressed(MouseButtonRight) {
		t.Error("second sample should release")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", s.Pending())
	}
}

func TestInjectDrag(t *testing.T) {
	s := NewInjectedSource(0, 0)
	// press, 3 interpolated moves, release
	s.InjectDrag(10, 10, 90, 50, 5, MouseButtonLeft)
	if s.Pending() != 5 {
		t.Fatalf("expected 5 queued samples, got %d", s.Pending())
	}
	wantX := []float64{10, 30, 50, 70, 90}
	for i, wx := range wantX {
		smp := s.Sample()
		if math.Abs(smp.X-wx) > 1e-9 {
			t.Errorf("sample %d X = %v, want %v", i, smp.X, wx)
		}
		held := i < len(wantX)-1
		if smp.Pressed(MouseButtonLeft) != held {
			t.Errorf("sample %d pressed = %v, want %v", i, smp.Pressed(MouseButtonLeft), held)
		}
	}
}

func TestInjectDragMinFrames(t *testing.T) {
	s := NewInjectedSource(0, 0)
	s.InjectDrag(0, 0, 10, 10, 0, MouseButtonLeft)
	if s.Pending() != 2 {
		t.Errorf("expected press+release, got %d samples", s.Pending())
	}
}

func TestInjectKeepsState(t *testing.T) {
	s := NewInjectedSource(0, 0)
	s.InjectModifiers(ModShift | ModCtrl)
	s.InjectPress(1, 1, MouseButtonMiddle)
	s.InjectMove(2, 2)

	s.Sample()
	s.Sample()
	move := s.Sample()
	if !move.Pressed(MouseButtonMiddle) {
		t.Error("move should keep the held button")
	}
	if move.Modifiers != ModShift|ModCtrl {
		t.Errorf("Modifiers = %v, want shift|ctrl", move.Modifiers)
	}
}

func TestInjectedSourceDrivesRouter(t *testing.T) {
	r, src := newTestRouter(t, nil)
	l := &recorder{}
	r.Register(l)
	tick(r) // first sample has no delta

	src.InjectClick(100, 100, MouseButtonLeft)
	tick(r)
	tick(r)

	want := []EventKind{EventMove, EventButtonDown, EventButtonUp}
	if !equalKinds(l.kinds(), want) {
		t.Errorf("events = %v, want %v", l.kinds(), want)
	}
	if r.WorldPosition() != (Vec2{100, 100}) {
		t.Errorf("WorldPosition = %v", r.WorldPosition())
	}
}
