package strokedtext

// Node is a scene graph element. One flat struct serves every node type so
// traversal never goes through interface dispatch.
type Node struct {
	// Identity
	ID   NodeID
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Z orders drawing across the whole scene: world Z is
	// the sum of Z along the path from the root.
	X, Y, Z  float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	Visible bool

	// Stroked holds the declaration of a NodeTypeStrokedText node. Mutate it
	// through Scene.MutateStrokedText so the change is detected.
	Stroked *StrokedText

	// Text holds the render record of a NodeTypeText node.
	Text *TextChild

	// Computed
	worldTransform [6]float64
	worldZ         float64
	transformDirty bool

	// Cached layout of Text
	layout      textLayout
	layoutDirty bool
	layoutGen   uint64 // FontRegistry generation the layout was built with

	disposed bool
}

func nodeDefaults(n *Node, id NodeID) {
	n.ID = id
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("strokedtext: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("strokedtext: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("strokedtext: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
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

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetPosition sets the node's local translation and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.X = x
	n.Y = y
	n.Z = z
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// MarkDirty forces the transform and text layout to be recomputed on the
// next frame. Useful after setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
	n.layoutDirty = true
}

// --- Disposal ---

// dispose marks this node and its descendants disposed. The caller detaches
// it from its parent and removes IDs from the scene index.
func (n *Node) dispose(visit func(*Node)) {
	if visit != nil {
		visit(n)
	}
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose(visit)
	}
	n.children = nil
	n.Parent = nil
	n.Stroked = nil
	n.Text = nil
	n.layout = textLayout{}
}

// IsDisposed reports whether this node has been despawned.
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
