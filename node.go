package cursor

import "fmt"

// nodeIDCounter is a plain counter (the router is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the interactive scene graph. A node is a hit surface
// when it has a HitShape or a non-zero Width/Height; otherwise it only groups
// children. Every node declares the listeners reachable from it; a hit on a
// surface reaches the listeners of the surface and of all its ancestors.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Width and Height give the default local hit area (0,0)-(Width,Height)
	// used when HitShape is nil.
	Width, Height float64

	// Computed
	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	// ScreenSpace makes the node hit-test against the clamped screen position
	// instead of the world position (overlays that ignore the camera).
	ScreenSpace bool

	// Ordering
	ZIndex int

	// Metadata
	UserData any
	EntityID uint32

	// Hit testing
	HitShape HitShape

	listeners []Listener

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a grouping node with no hit area of its own. Listeners
// declared here are reached by hits on any descendant surface.
func NewContainer(name string, listeners ...Listener) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	for _, l := range listeners {
		n.AddListener(l)
	}
	return n
}

// NewSurface creates a hit surface with the given shape and the listeners
// reachable from it.
func NewSurface(name string, shape HitShape, listeners ...Listener) *Node {
	n := &Node{Name: name, HitShape: shape}
	nodeDefaults(n)
	for _, l := range listeners {
		n.AddListener(l)
	}
	return n
}

// NewRectSurface creates a surface whose hit area is (0,0)-(w,h) in local space.
func NewRectSurface(name string, w, h float64, listeners ...Listener) *Node {
	n := NewSurface(name, nil, listeners...)
	n.Width = w
	n.Height = h
	return n
}

// String returns the node name and ID for diagnostics.
func (n *Node) String() string {
	return fmt.Sprintf("%s#%d", n.Name, n.ID)
}

// --- Listener capability set ---

// AddListener declares l as reachable from this node. Adding a listener that
// is already declared is a no-op.
func (n *Node) AddListener(l Listener) {
	if l == nil {
		return
	}
	for _, existing := range n.listeners {
		if existing == l {
			return
		}
	}
	n.listeners = append(n.listeners, l)
}

// RemoveListener removes l from this node's declared listeners.
func (n *Node) RemoveListener(l Listener) {
	for i, existing := range n.listeners {
		if existing == l {
			copy(n.listeners[i:], n.listeners[i+1:])
			n.listeners[len(n.listeners)-1] = nil
			n.listeners = n.listeners[:len(n.listeners)-1]
			return
		}
	}
}

// Listeners returns the listeners declared on this node. The returned slice
// MUST NOT be mutated by the caller.
func (n *Node) Listeners() []Listener {
	return n.listeners
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("cursor: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("cursor: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("cursor: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("cursor: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("cursor: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("cursor: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
// Higher ZIndex draws later and therefore wins hit tests.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Declared listeners are dropped;
// they stay registered with the router until their owner unregisters them.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.listeners = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			n.childrenSorted = false
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// sortedChildrenOf returns n's children in ZIndex order, stable with respect
// to insertion order.
func sortedChildrenOf(n *Node) []*Node {
	if n.childrenSorted {
		if n.sortedChildren != nil {
			return n.sortedChildren
		}
		return n.children
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}
