package cursor

// Scene owns the interactive node tree and implements HitTester over it.
type Scene struct {
	root       *Node
	surfaceBuf []*Node
	hitNodeBuf []*Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// HitNodes appends the surfaces under the pointer to buf, topmost first.
// World-space surfaces are tested against world, ScreenSpace ones against
// screen. World transforms are refreshed before testing.
func (s *Scene) HitNodes(screen, world Vec2, buf []*Node) []*Node {
	updateWorldTransform(s.root, identityTransform, false)
	s.surfaceBuf = collectInteractable(s.root, s.surfaceBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.surfaceBuf) - 1; i >= 0; i-- {
		n := s.surfaceBuf[i]
		p := world
		if n.ScreenSpace {
			p = screen
		}
		lx, ly := n.WorldToLocal(p.X, p.Y)
		if nodeContainsLocal(n, lx, ly) {
			buf = append(buf, n)
		}
	}
	return buf
}

// HitTest implements HitTester.
func (s *Scene) HitTest(screen, world Vec2, buf []Listener) []Listener {
	s.hitNodeBuf = s.HitNodes(screen, world, s.hitNodeBuf[:0])
	for _, n := range s.hitNodeBuf {
		buf = appendReachable(n, buf)
	}
	return buf
}

// Topmost returns the topmost surface under the pointer, or nil.
func (s *Scene) Topmost(screen, world Vec2) *Node {
	s.hitNodeBuf = s.HitNodes(screen, world, s.hitNodeBuf[:0])
	if len(s.hitNodeBuf) == 0 {
		return nil
	}
	return s.hitNodeBuf[0]
}
