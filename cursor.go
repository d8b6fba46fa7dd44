package cursor

// Vec2 is a 2D vector used for positions, deltas and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// EventKind identifies the variant carried by an Event.
type EventKind uint8

const (
	EventMove       EventKind = iota // raw pointer position changed this tick
	EventEnter                       // pointer started hovering the target listener
	EventExit                        // pointer stopped hovering the target listener
	EventButtonDown                  // a button went from released to pressed
	EventButtonUp                    // a button went from pressed to released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "Move"
	case EventEnter:
		return "Enter"
	case EventExit:
		return "Exit"
	case EventButtonDown:
		return "ButtonDown"
	case EventButtonUp:
		return "ButtonUp"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)

	numMouseButtons = 3
)

// String returns a human-readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return "None"
	}
}

// ButtonMask is a bitmask of held mouse buttons, one bit per MouseButton.
type ButtonMask uint8

// Has reports whether b is set in the mask.
func (m ButtonMask) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Event is a single interaction event. It only lives for the tick that
// produced it.
type Event struct {
	Kind EventKind
	// Button is valid for EventButtonDown and EventButtonUp.
	Button MouseButton
	// Target is the listener an Enter or Exit was addressed to. Nil for
	// broadcast events.
	Target Listener

	Screen    Vec2
	World     Vec2
	Delta     Vec2 // world-space delta of this tick
	Held      ButtonMask
	Modifiers KeyModifiers
	Tick      uint64
}

// Listener receives interaction events from a Router. Implementations must
// be comparable (typically a pointer) because the router keys its sets by
// listener identity.
type Listener interface {
	HandleCursorEvent(e Event)
}

// Dragger is a Listener that can own the drag slot. IsDragging reports the
// owner's local dragging state; the router releases a claim whose owner no
// longer drags at the end of the tick.
type Dragger interface {
	Listener
	IsDragging() bool
}

// Follower is moved to the projected world point every unfrozen tick
// (for example a cursor glyph node).
type Follower interface {
	SetPosition(x, y float64)
}
