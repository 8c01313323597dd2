package hud

// Node is a tree element representing one widget instance. A single flat
// struct is used for all control kinds; kind-specific behavior lives in the
// registered Handler and kind-specific state lives in the prop store.
//
// A node exclusively owns its children: removing a node removes its whole
// subtree. Children are only ever appended, never shared, so the tree is
// acyclic by construction. Child order is significant — it is both paint
// order and hit-test z-order (last-appended paints last and is hit first).
type Node struct {
	UID  UID
	Kind string

	// Per-axis alignment within the parent rectangle.
	AlignH, AlignV Alignment

	// Rect is the node's resolved overlay rectangle. Only valid once HasRect
	// is true, i.e. after at least one layout pass since the node's creation
	// or its parent's last layout.
	Rect    Rect
	HasRect bool

	// UserData is an opaque slot for the caller. The engine never touches it.
	UserData any

	Parent   *Node
	children []*Node

	disposed bool
}

// NodeSpec describes a node to be created by AddChild.
type NodeSpec struct {
	UID            UID
	Kind           string
	AlignH, AlignV Alignment
	UserData       any
}

// Children returns the child list in creation order. The returned slice MUST
// NOT be mutated by the caller.
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

// IsDisposed reports whether the node has been removed from the tree.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// childIndex returns the index of child among n's children, or -1.
func (n *Node) childIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children. Uses copy+nil to avoid
// retaining a dangling pointer in the backing array.
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

// --- Tree store operations ---

// AddChild creates a node from spec and appends it to the children of the
// node identified by parentUID, preserving call order. On success it delivers
// MsgCreate to the new node and enqueues the parent's subtree for layout.
//
// Structural errors are recovered locally: a missing parent, a reused UID, or
// the RootUID sentinel are logged and leave the tree unchanged, returning
// nil. The frame loop is never crashed by a bad AddChild.
func (e *Engine) AddChild(parentUID UID, spec NodeSpec) *Node {
	parent, ok := e.Find(parentUID)
	if !ok {
		e.logf("add child %d (%s): parent %d not found", spec.UID, spec.Kind, parentUID)
		return nil
	}
	if spec.UID == RootUID {
		e.logf("add child: uid %d is reserved for the root", RootUID)
		return nil
	}
	if _, taken := e.index[spec.UID]; taken {
		e.logf("add child: uid %d already in use", spec.UID)
		return nil
	}

	n := &Node{
		UID:      spec.UID,
		Kind:     spec.Kind,
		AlignH:   spec.AlignH,
		AlignV:   spec.AlignV,
		UserData: spec.UserData,
		Parent:   parent,
	}
	parent.children = append(parent.children, n)
	e.index[n.UID] = n

	e.Dispatch(n, Message{Kind: MsgCreate})
	e.Invalidate(parentUID)
	return n
}

// Remove detaches the node identified by uid from the tree, destroying its
// whole subtree. MsgDestroy is delivered to each node in the subtree before
// detachment (node first, then descendants), and all prop store entries for
// the subtree are purged. The root cannot be removed.
func (e *Engine) Remove(uid UID) bool {
	if uid == RootUID {
		e.logf("remove: the root cannot be removed")
		return false
	}
	n, ok := e.Find(uid)
	if !ok {
		e.logf("remove: node %d not found", uid)
		return false
	}
	parent := n.Parent
	e.destroySubtree(n)
	parent.removeChildByPtr(n)
	n.Parent = nil
	e.Invalidate(parent.UID)
	return true
}

// destroySubtree delivers MsgDestroy and purges engine-side state for n and
// all descendants. Child links are left intact until the top-level detach so
// handlers still see a consistent subtree while MsgDestroy runs.
func (e *Engine) destroySubtree(n *Node) {
	e.Dispatch(n, Message{Kind: MsgDestroy})
	for _, child := range n.children {
		e.destroySubtree(child)
	}
	delete(e.index, n.UID)
	delete(e.props, n.UID)
	delete(e.activated, n.UID)
	if e.hoverNode == n {
		e.hoverNode = nil
	}
	if e.pressNode == n {
		e.pressNode = nil
	}
	n.disposed = true
	n.HasRect = false
	n.UserData = nil
}

// Find returns the node created with the given uid, or ok=false if no such
// node exists. Lookup is O(1) via an index maintained on every structural
// mutation. Safe to call on a just-initialized engine.
func (e *Engine) Find(uid UID) (*Node, bool) {
	n, ok := e.index[uid]
	return n, ok
}

// UserDataFor returns the opaque user-data slot of the node identified by
// uid. The second result is false when the uid does not resolve.
func (e *Engine) UserDataFor(uid UID) (any, bool) {
	n, ok := e.Find(uid)
	if !ok {
		return nil, false
	}
	return n.UserData, true
}

// SetUserData replaces the opaque user-data slot of the node identified by
// uid. Returns false (after logging) when the uid does not resolve.
func (e *Engine) SetUserData(uid UID, value any) bool {
	n, ok := e.Find(uid)
	if !ok {
		e.logf("set user data: node %d not found", uid)
		return false
	}
	n.UserData = value
	return true
}

// NumNodes returns the number of live nodes, including the root.
func (e *Engine) NumNodes() int {
	return len(e.index)
}
