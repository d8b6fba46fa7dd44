package cursor

// Edge is the result of sampling a ButtonDetector.
type Edge uint8

const (
	EdgeNone Edge = iota // no state change
	EdgeDown             // released -> pressed
	EdgeUp               // pressed -> released
)

// ButtonDetector turns raw per-tick samples of one button into press and
// release edges. Holding a button produces no events; the held state is
// available from Pressed.
type ButtonDetector struct {
	pressed bool
}

// Sample feeds one raw sample. Positive values mean pressed.
func (d *ButtonDetector) Sample(v float64) Edge {
	if v > 0 {
		if !d.pressed {
			d.pressed = true
			return EdgeDown
		}
		return EdgeNone
	}
	if d.pressed {
		d.pressed = false
		return EdgeUp
	}
	return EdgeNone
}

// Pressed reports whether the button is currently held.
func (d *ButtonDetector) Pressed() bool {
	return d.pressed
}
