package hud

// The prop store holds named per-node state that outlives individual frames,
// keyed by (uid, property name). Entries persist until the owning node is
// removed, at which point they are purged together with the subtree.

// SetProp stores a prop value for the node identified by uid. Before the new
// value is committed, MsgPropChanged is delivered to the owning node with the
// incoming value, so the handler can react (request relayout, reset derived
// state) while the store still holds the previous value. Returns false, after
// logging, when the uid does not resolve.
func (e *Engine) SetProp(uid UID, name string, value any) bool {
	n, ok := e.Find(uid)
	if !ok {
		e.logf("set prop %q: node %d not found", name, uid)
		return false
	}
	e.Dispatch(n, Message{Kind: MsgPropChanged, Prop: name, Value: value})
	m := e.props[uid]
	if m == nil {
		m = make(map[string]any)
		e.props[uid] = m
	}
	m[name] = value
	return true
}

// Prop returns the stored value for (uid, name). The second result is false
// when the node does not exist or the prop was never set.
func (e *Engine) Prop(uid UID, name string) (any, bool) {
	m, ok := e.props[uid]
	if !ok {
		return nil, false
	}
	v, ok := m[name]
	return v, ok
}

// Typed accessors with defaults. A missing prop or a value of the wrong type
// yields the fallback.

func (e *Engine) propString(uid UID, name, fallback string) string {
	if v, ok := e.Prop(uid, name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

func (e *Engine) propFloat(uid UID, name string, fallback float64) float64 {
	if v, ok := e.Prop(uid, name); ok {
		switch t := v.(type) {
		case float64:
			return t
		case int:
			return float64(t)
		}
	}
	return fallback
}

func (e *Engine) propInt(uid UID, name string, fallback int) int {
	if v, ok := e.Prop(uid, name); ok {
		switch t := v.(type) {
		case int:
			return t
		case float64:
			return int(t)
		}
	}
	return fallback
}

func (e *Engine) propBool(uid UID, name string, fallback bool) bool {
	if v, ok := e.Prop(uid, name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

func (e *Engine) propRect(uid UID, name string) (Rect, bool) {
	if v, ok := e.Prop(uid, name); ok {
		if r, ok := v.(Rect); ok {
			return r, true
		}
	}
	return Rect{}, false
}

func (e *Engine) propStrings(uid UID, name string) []string {
	if v, ok := e.Prop(uid, name); ok {
		if items, ok := v.([]string); ok {
			return items
		}
	}
	return nil
}
