package cursor

// HitShape is a custom hit region in a node's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitTester is the hit-test engine queried once per tick by the Router.
// HitTest appends to buf every listener reachable from every surface under
// the pointer, nearest-drawn surface first. For each surface its own
// listeners come first, followed by those of its ancestors, innermost first.
// A listener reachable from several surfaces appears several times.
// A miss returns buf unchanged; it is not an error.
type HitTester interface {
	HitTest(screen, world Vec2, buf []Listener) []Listener
}

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Scene graph hit testing ---

// isSurface reports whether n has a hit area of its own.
func isSurface(n *Node) bool {
	return n.HitShape != nil || n.Width != 0 || n.Height != 0
}

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise the (0,0)-(Width,Height) box.
// Nodes without either are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit surfaces to buf. Skips Visible=false or Interactable=false
// subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if isSurface(n) {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// appendReachable appends the listeners declared on n and its ancestors.
func appendReachable(n *Node, buf []Listener) []Listener {
	for p := n; p != nil; p = p.Parent {
		buf = append(buf, p.listeners...)
	}
	return buf
}

// dedupListeners returns the distinct listeners of hits in first-seen order,
// reusing out's backing array.
func dedupListeners(hits []Listener, out []Listener) []Listener {
	out = out[:0]
	for _, l := range hits {
		if _, found := searchListener(out, l); !found {
			out = append(out, l)
		}
	}
	return out
}

// searchListener returns the index of l in ls.
func searchListener(ls []Listener, l Listener) (int, bool) {
	for i, x := range ls {
		if x == l {
			return i, true
		}
	}
	return 0, false
}
