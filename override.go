package cursor

import "github.com/hajimehoshi/ebiten/v2"

// Visual describes a pointer appearance. Shape selects a system cursor; a
// non-nil Glyph replaces the system cursor with an image drawn by the host
// at the pointer position, offset by the hotspot.
type Visual struct {
	Name     string
	Shape    ebiten.CursorShapeType
	Glyph    *ebiten.Image
	HotspotX float64
	HotspotY float64
}

// String returns the visual's name.
func (v *Visual) String() string {
	if v == nil {
		return "<nil>"
	}
	return v.Name
}

// Override requests a pointer visual. Two overrides are equal when they name
// the same Visual pointer with the same priority.
type Override struct {
	Visual   *Visual
	Priority int
}

// VisualSink applies the effective visual to the platform.
type VisualSink interface {
	ApplyVisual(v *Visual)
}

// OverrideStack resolves competing visual requests. The highest priority
// entry wins; ties go to the most recently added entry. With no entries the
// default visual is in effect.
type OverrideStack struct {
	entries []Override
	def     *Visual
	sink    VisualSink
	applied *Visual
}

// SetSink sets where effective visual changes are applied and applies the
// current one.
func (s *OverrideStack) SetSink(sink VisualSink) {
	s.sink = sink
	s.applied = nil
	s.apply()
}

// SetDefault sets the visual used when no override is present.
func (s *OverrideStack) SetDefault(v *Visual) {
	s.def = v
	s.apply()
}

// Default returns the default visual, or nil.
func (s *OverrideStack) Default() *Visual {
	return s.def
}

// Add pushes o. Adding an entry equal to one already present does nothing.
func (s *OverrideStack) Add(o Override) error {
	if o.Visual == nil {
		return ErrNilVisual
	}
	if s.index(o) >= 0 {
		return nil
	}
	s.entries = append(s.entries, o)
	s.apply()
	return nil
}

// Remove deletes the first entry equal to o. Removing an absent entry does
// nothing.
func (s *OverrideStack) Remove(o Override) error {
	if o.Visual == nil {
		return ErrNilVisual
	}
	i := s.index(o)
	if i < 0 {
		return nil
	}
	copy(s.entries[i:], s.entries[i+1:])
	s.entries[len(s.entries)-1] = Override{}
	s.entries = s.entries[:len(s.entries)-1]
	s.apply()
	return nil
}

// Len returns the number of stacked overrides.
func (s *OverrideStack) Len() int {
	return len(s.entries)
}

// Effective returns the visual currently in effect.
func (s *OverrideStack) Effective() (*Visual, error) {
	if len(s.entries) == 0 {
		if s.def == nil {
			return nil, ErrNoDefaultVisual
		}
		return s.def, nil
	}
	best := 0
	for i := 1; i < len(s.entries); i++ {
		// >= so later entries win ties.
		if s.entries[i].Priority >= s.entries[best].Priority {
			best = i
		}
	}
	return s.entries[best].Visual, nil
}

func (s *OverrideStack) index(o Override) int {
	for i, e := range s.entries {
		if e == o {
			return i
		}
	}
	return -1
}

// apply pushes the effective visual to the sink when it changed.
func (s *OverrideStack) apply() {
	v, err := s.Effective()
	if err != nil || v == s.applied {
		return
	}
	s.applied = v
	if s.sink != nil {
		s.sink.ApplyVisual(v)
	}
}

// EbitenVisualSink applies visuals to the ebiten window cursor.
type EbitenVisualSink struct{}

// ApplyVisual implements VisualSink.
func (EbitenVisualSink) ApplyVisual(v *Visual) {
	if v.Glyph != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetCursorShape(v.Shape)
}
