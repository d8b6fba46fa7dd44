package cursor

import "math"

// Affine matrices are stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform returns
// Translate(X, Y) * Rotate(Rotation) * Scale(ScaleX, ScaleY) * Translate(-PivotX, -PivotY).
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	a, b := cos*n.ScaleX, sin*n.ScaleX
	c, d := -sin*n.ScaleY, cos*n.ScaleY
	return [6]float64{
		a, b, c, d,
		n.X - a*n.PivotX - c*n.PivotY,
		n.Y - b*n.PivotX - d*n.PivotY,
	}
}

// multiplyAffine returns p * q.
func multiplyAffine(p, q [6]float64) [6]float64 {
	return [6]float64{
		p[0]*q[0] + p[2]*q[1],
		p[1]*q[0] + p[3]*q[1],
		p[0]*q[2] + p[2]*q[3],
		p[1]*q[2] + p[3]*q[3],
		p[0]*q[4] + p[2]*q[5] + p[4],
		p[1]*q[4] + p[3]*q[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or the identity when m collapses
// space (zero scale) and has no inverse.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	return [6]float64{a, b, c, d, -a*m[4] - c*m[5], -b*m[4] - d*m[5]}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform refreshes the world transforms of n's subtree. Clean
// nodes keep their cached transform unless an ancestor changed.
func updateWorldTransform(n *Node, parent [6]float64, parentChanged bool) {
	changed := n.transformDirty || parentChanged
	if changed {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, changed)
	}
}

// SetPosition moves the node within its parent. It also makes *Node a
// Follower for cursor glyphs.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale scales the node's hit area and its children.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetRotation rotates the node about its pivot, in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// MarkDirty must be called after writing transform fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// WorldToLocal converts a world point into n's local space as of the last
// hit test.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(n.worldTransform), wx, wy)
}
