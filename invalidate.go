package hud

// Invalidate records that the subtree rooted at uid needs re-layout before
// the next paint. The pending list is a multiset: duplicate entries are
// tolerated and each triggers one more layout pass, which is harmless
// because layout is idempotent for an unchanged tree shape. The list is
// drained once per frame by Update.
//
// Invalidations recorded while the flush itself is running (e.g. from a
// prop-changed handler reacting to a measure) are carried over to the next
// frame rather than processed immediately.
func (e *Engine) Invalidate(uid UID) {
	e.pending = append(e.pending, uid)
}

// PendingInvalidations returns the number of queued entries. Mostly useful
// in tests and diagnostics.
func (e *Engine) PendingInvalidations() int {
	return len(e.pending)
}

// flushLayout drains the pending list and re-runs layout for each entry.
//
// The parent rectangle for an invalidated node is re-derived from the node's
// actual parent, not from the root: flushing walks up past ancestors that
// have never been laid out, then relays the highest such node against its
// parent's current rectangle (or the overlay viewport for the root). For
// direct children of the root this matches laying out against the root
// rectangle, and for deeper nodes it produces the rectangles a full root
// relayout would produce.
func (e *Engine) flushLayout() {
	if len(e.pending) == 0 {
		return
	}
	pending := e.pending
	e.pending = nil
	for _, uid := range pending {
		n, ok := e.Find(uid)
		if !ok {
			e.logf("layout: dropping invalidation for missing node %d", uid)
			continue
		}
		// Climb until the parent has a valid rectangle to lay out against.
		for n.Parent != nil && !n.Parent.HasRect {
			n = n.Parent
		}
		if n.Parent == nil {
			e.layoutRoot()
			continue
		}
		e.relayoutChild(n.Parent, n)
	}
}

// layoutRoot seeds the root rectangle from the overlay viewport and lays out
// every child. The root always exists, is never destroyed, and always fills
// the overlay region, so its own rectangle never depends on a measure.
func (e *Engine) layoutRoot() {
	e.root.Rect = e.viewport
	e.root.HasRect = true
	e.layoutChildren(e.root)
}
