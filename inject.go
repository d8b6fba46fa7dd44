package cursor

// InjectedSource is a scripted InputSource. Each tick consumes one queued
// sample; when the queue is empty the last sample repeats, so a held button
// stays held and the pointer stays put.
type InjectedSource struct {
	queue []Sample
	last  Sample
}

// NewInjectedSource creates a source whose pointer rests at (x, y) with no
// buttons held.
func NewInjectedSource(x, y float64) *InjectedSource {
	return &InjectedSource{last: Sample{X: x, Y: y}}
}

// Sample implements InputSource.
func (s *InjectedSource) Sample() Sample {
	if len(s.queue) == 0 {
		return s.last
	}
	evt := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue = s.queue[:len(s.queue)-1]
	s.last = evt
	return evt
}

// Pending returns the number of queued samples.
func (s *InjectedSource) Pending() int {
	return len(s.queue)
}

// tail returns the sample the queue ends on.
func (s *InjectedSource) tail() Sample {
	if len(s.queue) > 0 {
		return s.queue[len(s.queue)-1]
	}
	return s.last
}

// Inject queues a raw sample as is.
func (s *InjectedSource) Inject(smp Sample) {
	s.queue = append(s.queue, smp)
}

// InjectMove queues a move to (x, y), keeping the held buttons and modifiers.
func (s *InjectedSource) InjectMove(x, y float64) {
	smp := s.tail()
	smp.X, smp.Y = x, y
	s.queue = append(s.queue, smp)
}

// InjectPress queues a press of b at (x, y).
func (s *InjectedSource) InjectPress(x, y float64, b MouseButton) {
	smp := s.tail()
	smp.X, smp.Y = x, y
	smp.Buttons[b] = 1
	s.queue = append(s.queue, smp)
}

// InjectRelease queues a release of b at (x, y).
func (s *InjectedSource) InjectRelease(x, y float64, b MouseButton) {
	smp := s.tail()
	smp.X, smp.Y = x, y
	smp.Buttons[b] = 0
	s.queue = append(s.queue, smp)
}

// InjectModifiers queues a sample that only changes the modifier state.
func (s *InjectedSource) InjectModifiers(mods KeyModifiers) {
	smp := s.tail()
	smp.Modifiers = mods
	s.queue = append(s.queue, smp)
}

// InjectClick queues a press followed by a release of b at the same
// position. Consumes two ticks.
func (s *InjectedSource) InjectClick(x, y float64, b MouseButton) {
	s.InjectPress(x, y, b)
	s.InjectRelease(x, y, b)
}

// InjectDrag queues a full drag with button b: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and release
// at (toX, toY). Minimum frames is 2 (press + release).
func (s *InjectedSource) InjectDrag(fromX, fromY, toX, toY float64, frames int, b MouseButton) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY, b)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY, b)
}
