package cursor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation) and call Update(dt) each frame, or hand it to Tasks. The
// group auto-applies values and marks the node dirty. If the target node is
// disposed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// Step implements Task.
func (g *TweenGroup) Step(dt float32) bool {
	g.Update(dt)
	return g.Done
}

// TweenPosition creates a TweenGroup that animates node.X and node.Y to the
// given target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(toY), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	return g
}

// TweenScale creates a TweenGroup that animates node.ScaleX and node.ScaleY to
// the given target values over the specified duration using the easing function.
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(node.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &node.ScaleX
	g.fields[1] = &node.ScaleY
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Rotation
	return g
}

// Task is a unit of per-frame work. Step returns true once finished.
type Task interface {
	Step(dt float32) bool
}

// TaskFunc adapts a function to Task.
type TaskFunc func(dt float32) bool

// Step implements Task.
func (f TaskFunc) Step(dt float32) bool { return f(dt) }

type taskEntry struct {
	id   uint32
	task Task
}

// Tasks runs independent animations and delayed actions. Each started task
// can be cancelled through its handle without affecting the others.
// There is no global scheduler; the host calls Update each frame.
type Tasks struct {
	entries []taskEntry
	ids     []uint32
	nextID  uint32
}

// TaskHandle cancels a started task.
type TaskHandle struct {
	tasks *Tasks
	id    uint32
}

// Start schedules t. It first runs on the next Update.
func (s *Tasks) Start(t Task) TaskHandle {
	s.nextID++
	s.entries = append(s.entries, taskEntry{id: s.nextID, task: t})
	return TaskHandle{tasks: s, id: s.nextID}
}

// After runs fn once after delay seconds.
func (s *Tasks) After(delay float32, fn func()) TaskHandle {
	var elapsed float32
	return s.Start(TaskFunc(func(dt float32) bool {
		elapsed += dt
		if elapsed < delay {
			return false
		}
		fn()
		return true
	}))
}

// Update steps every task once and drops finished ones. Tasks started from
// within a step run from the next Update; tasks cancelled from within a step
// are not stepped.
func (s *Tasks) Update(dt float32) {
	s.ids = s.ids[:0]
	for _, e := range s.entries {
		s.ids = append(s.ids, e.id)
	}
	for _, id := range s.ids {
		t := s.find(id)
		if t == nil {
			continue
		}
		if t.Step(dt) {
			s.remove(id)
		}
	}
}

func (s *Tasks) find(id uint32) Task {
	for _, e := range s.entries {
		if e.id == id {
			return e.task
		}
	}
	return nil
}

// Len returns the number of running tasks.
func (s *Tasks) Len() int {
	return len(s.entries)
}

// CancelAll stops every running task.
func (s *Tasks) CancelAll() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

func (s *Tasks) remove(id uint32) bool {
	for i := range s.entries {
		if s.entries[i].id == id {
			copy(s.entries[i:], s.entries[i+1:])
			s.entries[len(s.entries)-1] = taskEntry{}
			s.entries = s.entries[:len(s.entries)-1]
			return true
		}
	}
	return false
}

// Cancel stops the task. Cancelling a finished task has no effect.
func (h TaskHandle) Cancel() {
	if h.tasks != nil {
		h.tasks.remove(h.id)
	}
}

// Running reports whether the task is still scheduled.
func (h TaskHandle) Running() bool {
	return h.tasks != nil && h.tasks.find(h.id) != nil
}
