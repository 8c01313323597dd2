package hud

// Two-pass layout. Measure asks a node for its desired size via MsgMeasure;
// position derives the node's rectangle from that size, the parent rectangle,
// and the node's per-axis alignment, then recurses into the children. After a
// node's own rectangle is set, the node may override the rectangles handed to
// its children by answering MsgPositionChildren (docking/stacking layouts).
//
// Layout is pure given the tree shape, the per-node alignments, and the
// handlers' measure responses: re-running it without a shape change
// reproduces identical rectangles. The invalidation queue relies on this.

// measure dispatches MsgMeasure. A node whose handler does not answer (zero
// Response) measures as zero size; measure never consults the node's own
// rectangle, which may not exist yet.
func (e *Engine) measure(n *Node) Size {
	resp := e.Dispatch(n, Message{Kind: MsgMeasure})
	if !resp.HasSize {
		return Size{}
	}
	return resp.Size
}

// MeasureFirstChild is the default sizing convention for pass-through
// containers: the first child's measured size, or zero size if the node has
// no children. Control kinds with different sizing policies (fixed size,
// content-based, stretch) implement their own measure instead.
func (e *Engine) MeasureFirstChild(n *Node) Size {
	if len(n.children) == 0 {
		return Size{}
	}
	return e.measure(n.children[0])
}

// layoutNode positions n inside parentRect and recursively lays out its
// subtree. parentRect is in absolute overlay coordinates.
func (e *Engine) layoutNode(n *Node, parentRect Rect) {
	sz := e.measure(n)
	offX, w := alignAxis(parentRect.Width, sz.Width, n.AlignH)
	offY, h := alignAxis(parentRect.Height, sz.Height, n.AlignV)
	n.Rect = Rect{X: parentRect.X + offX, Y: parentRect.Y + offY, Width: w, Height: h}
	n.HasRect = true
	e.layoutChildren(n)
}

// layoutChildren lays out all of n's children against n's rectangle,
// honoring MsgPositionChildren overrides.
func (e *Engine) layoutChildren(n *Node) {
	if len(n.children) == 0 {
		return
	}
	overrides := e.childOverrides(n)
	for i, child := range n.children {
		e.layoutNode(child, e.childBaseRect(n, overrides, i))
	}
}

// childOverrides asks n whether it wants to reposition its children. A nil
// result means "no repositioning, use default layout for each child".
func (e *Engine) childOverrides(n *Node) []Rect {
	resp := e.Dispatch(n, Message{Kind: MsgPositionChildren})
	return resp.Rects
}

// childBaseRect resolves the rectangle the i-th child is laid out against:
// the override translated from n's local space into absolute coordinates, or
// n's own rectangle when no override covers that child.
func (e *Engine) childBaseRect(n *Node, overrides []Rect, i int) Rect {
	if i >= len(overrides) {
		return n.Rect
	}
	ov := overrides[i]
	return Rect{
		X:      n.Rect.X + ov.X,
		Y:      n.Rect.Y + ov.Y,
		Width:  ov.Width,
		Height: ov.Height,
	}
}

// relayoutChild re-runs layout for a single child of parent, recomputing the
// same base rectangle a full parent layout would hand it. Used by the
// invalidation flush so a coalesced queue converges to the same rectangles
// as one full pass.
func (e *Engine) relayoutChild(parent, child *Node) {
	i := parent.childIndex(child)
	if i < 0 {
		return
	}
	e.layoutNode(child, e.childBaseRect(parent, e.childOverrides(parent), i))
}
