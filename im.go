package hud

import "slices"

// WidgetConfig is the per-frame configuration record for the immediate-mode
// widget calls. UID keys the underlying retained node; Rect is in
// overlay-local coordinates. Only the fields a particular widget recognizes
// are consulted — see each call.
//
// Config fields are authoritative input: every call overwrites the retained
// props with the values given here, so the caller owns the widget's logical
// value and feeds the returned value back in on the next frame.
type WidgetConfig struct {
	UID      UID
	Disabled bool
	Rect     Rect

	// Button, and the spinner's derived step buttons.
	Text string

	// Combo box / carousel.
	Items    []string
	Selected int

	// Spinner.
	Value float64
	Min   float64
	Max   float64
	Step  float64
}

// BeginFrame opens one frame of immediate-mode calls: it binds the renderer
// and styler for this session (nil keeps the current binding) and runs the
// engine's frame orchestration against the input snapshot. Widget calls made
// between BeginFrame and EndFrame observe the interaction results of this
// frame.
func (e *Engine) BeginFrame(r Renderer, st *Styler, in InputState) {
	if r != nil {
		e.renderer = r
	}
	if st != nil {
		e.styler = st
	}
	e.inFrame = true
	e.Update(in)
}

// EndFrame closes the frame opened by BeginFrame.
func (e *Engine) EndFrame() {
	e.inFrame = false
}

// imNode resolves the retained node for an immediate-mode call, creating it
// under the root on first sight of the identifier. Returns nil (after the
// tree store has logged) when creation fails or the uid is already used by a
// node of a different kind. A call outside a BeginFrame/EndFrame bracket is
// logged but still serviced: the widget syncs, it just observes the previous
// frame's interaction results.
func (e *Engine) imNode(uid UID, kind string) *Node {
	if !e.inFrame {
		e.logf("widget %d: call outside BeginFrame/EndFrame", uid)
	}
	n, ok := e.Find(uid)
	if !ok {
		return e.AddChild(RootUID, NodeSpec{UID: uid, Kind: kind, AlignH: AlignFill, AlignV: AlignFill})
	}
	if n.Kind != kind {
		e.logf("widget %d: uid already used by kind %q, want %q", uid, n.Kind, kind)
		return nil
	}
	return n
}

// syncProp writes a comparable prop value only when it changed, so handlers
// are not flooded with no-op MsgPropChanged messages every frame.
func (e *Engine) syncProp(uid UID, name string, value any) {
	if cur, ok := e.Prop(uid, name); ok && cur == value {
		return
	}
	e.SetProp(uid, name, value)
}

// syncItems is syncProp for the non-comparable item list.
func (e *Engine) syncItems(uid UID, items []string) {
	if cur, ok := e.Prop(uid, PropItems); ok {
		if s, ok := cur.([]string); ok && slices.Equal(s, items) {
			return
		}
	}
	e.SetProp(uid, PropItems, slices.Clone(items))
}

// Button declares a push button for this frame and reports whether it was
// activated (pressed and released in place) since the last frame.
func (e *Engine) Button(cfg WidgetConfig) bool {
	n := e.imNode(cfg.UID, kindButton)
	if n == nil {
		return false
	}
	e.syncProp(cfg.UID, PropRect, cfg.Rect)
	e.syncProp(cfg.UID, PropText, cfg.Text)
	e.syncProp(cfg.UID, PropEnabled, !cfg.Disabled)
	return e.Activated(cfg.UID)
}

// Spinner declares a numeric spinner: a readout flanked by "-" and "+"
// buttons docked inside cfg.Rect. The step buttons are retained nodes with
// identifiers derived from the caller's: cfg.UID+1 decrements, cfg.UID+2
// increments. Avoiding collisions between independently chosen base
// identifiers and these derived ones is the caller's responsibility.
//
// Returns cfg.Value adjusted by this frame's activations, clamped to
// [cfg.Min, cfg.Max] when cfg.Max > cfg.Min. A zero cfg.Step means 1.
func (e *Engine) Spinner(cfg WidgetConfig) float64 {
	n := e.imNode(cfg.UID, kindSpinner)
	if n == nil {
		return cfg.Value
	}
	e.syncProp(cfg.UID, PropRect, cfg.Rect)
	e.syncProp(cfg.UID, PropEnabled, !cfg.Disabled)

	downUID, upUID := cfg.UID+1, cfg.UID+2
	if n.NumChildren() == 0 {
		e.AddChild(cfg.UID, NodeSpec{UID: downUID, Kind: kindButton, AlignH: AlignFill, AlignV: AlignFill})
		e.AddChild(cfg.UID, NodeSpec{UID: upUID, Kind: kindButton, AlignH: AlignFill, AlignV: AlignFill})
		e.SetProp(downUID, PropText, "-")
		e.SetProp(upUID, PropText, "+")
	}
	e.syncProp(downUID, PropEnabled, !cfg.Disabled)
	e.syncProp(upUID, PropEnabled, !cfg.Disabled)

	step := cfg.Step
	if step == 0 {
		step = 1
	}
	v := cfg.Value
	if e.Activated(downUID) {
		v -= step
	}
	if e.Activated(upUID) {
		v += step
	}
	if cfg.Max > cfg.Min {
		if v < cfg.Min {
			v = cfg.Min
		}
		if v > cfg.Max {
			v = cfg.Max
		}
	}
	e.syncProp(cfg.UID, PropValue, v)
	return v
}

// ComboBox declares a combo box showing cfg.Items[cfg.Selected]. Activation
// cycles the selection forward with wrap-around. Returns the resulting index.
func (e *Engine) ComboBox(cfg WidgetConfig) int {
	return e.cyclingWidget(cfg, kindComboBox)
}

// CarouselButton declares a carousel: a button showing the current item,
// advancing (with wrap-around) on every activation. Returns the resulting
// index.
func (e *Engine) CarouselButton(cfg WidgetConfig) int {
	return e.cyclingWidget(cfg, kindCarousel)
}

func (e *Engine) cyclingWidget(cfg WidgetConfig, kind string) int {
	n := e.imNode(cfg.UID, kind)
	if n == nil {
		return cfg.Selected
	}
	e.syncProp(cfg.UID, PropRect, cfg.Rect)
	e.syncProp(cfg.UID, PropEnabled, !cfg.Disabled)
	e.syncItems(cfg.UID, cfg.Items)

	sel := cfg.Selected
	if e.Activated(cfg.UID) && len(cfg.Items) > 0 {
		sel = (sel + 1) % len(cfg.Items)
	}
	e.syncProp(cfg.UID, PropSelected, sel)
	return sel
}
