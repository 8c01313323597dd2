package hud

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Built-in control kind names.
const (
	kindPanel    = "panel"
	kindLabel    = "label"
	kindButton   = "button"
	kindSpinner  = "spinner"
	kindComboBox = "combo_box"
	kindCarousel = "carousel_button"
)

// Well-known prop names used by the built-in kinds and the immediate-mode
// facade. Custom control kinds are free to define their own.
const (
	PropEnabled  = "enabled"  // bool, default true; a disabled node's whole subtree is hit-transparent
	PropRect     = "rect"     // Rect in overlay-local coordinates, consumed by the root's child positioning
	PropText     = "text"     // string label
	PropState    = "state"    // interaction state (StateNormal, StateHover, ...)
	PropItems    = "items"    // []string
	PropSelected = "selected" // int index into PropItems
	PropValue    = "value"    // float64
)

const (
	defaultButtonW = 120
	defaultButtonH = 24

	hoverFadeDuration = 0.12 // seconds

	// Approximate glyph metrics of the bundled fixed-width face, used by
	// measure handlers (which run without a renderer).
	approxGlyphW = 7
	approxLineH  = 13
)

// registerBuiltins installs the stock control kinds. All of them are written
// against the public control contract only.
func registerBuiltins(e *Engine) {
	e.Register(kindRoot, rootHandler)
	e.Register(kindPanel, panelHandler)
	e.Register(kindLabel, labelHandler)
	e.Register(kindButton, newButtonHandler())
	e.Register(kindSpinner, spinnerHandler)
	e.Register(kindComboBox, newSelectorHandler(kindComboBox, paintComboBox))
	e.Register(kindCarousel, newSelectorHandler(kindCarousel, paintCarousel))
	e.Register(kindDiagnostics, diagnosticsHandler)
}

// --- root ---

// rootHandler positions each child at its PropRect (overlay-local), falling
// back to the full overlay for children without one, and paints the overlay
// backdrop.
func rootHandler(e *Engine, n *Node, msg Message) Response {
	switch msg.Kind {
	case MsgPositionChildren:
		rects := make([]Rect, len(n.Children()))
		for i, child := range n.Children() {
			if r, ok := e.propRect(child.UID, PropRect); ok {
				rects[i] = r
			} else {
				rects[i] = Rect{Width: n.Rect.Width, Height: n.Rect.Height}
			}
		}
		return RespondRects(rects)
	case MsgPaint:
		st := e.styler.Style(kindRoot, StateNormal)
		msg.Renderer.FillRect(msg.Rect, st.Fill)
		if st.StrokeWidth > 0 {
			msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
		}
	}
	return Response{}
}

// --- panel ---

// panelHandler is a pass-through container: it sizes to its first child and
// paints a backdrop.
func panelHandler(e *Engine, n *Node, msg Message) Response {
	switch msg.Kind {
	case MsgMeasure:
		if r, ok := e.propRect(n.UID, PropRect); ok {
			return RespondSize(r.Width, r.Height)
		}
		sz := e.MeasureFirstChild(n)
		return RespondSize(sz.Width, sz.Height)
	case MsgPropChanged:
		if msg.Prop == PropRect {
			e.Invalidate(n.UID)
		}
	case MsgPaint:
		st := e.styler.Style(kindPanel, StateNormal)
		msg.Renderer.FillRect(msg.Rect, st.Fill)
		if st.StrokeWidth > 0 {
			msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
		}
	}
	return Response{}
}

// --- label ---

func labelHandler(e *Engine, n *Node, msg Message) Response {
	switch msg.Kind {
	case MsgMeasure:
		if r, ok := e.propRect(n.UID, PropRect); ok {
			return RespondSize(r.Width, r.Height)
		}
		st := e.styler.Style(kindLabel, StateNormal)
		text := e.propString(n.UID, PropText, "")
		return RespondSize(float64(len(text))*approxGlyphW+2*st.Padding, approxLineH+2*st.Padding)
	case MsgPropChanged:
		if msg.Prop == PropRect || msg.Prop == PropText {
			e.Invalidate(n.UID)
		}
	case MsgPaint:
		st := e.styler.Style(kindLabel, StateNormal)
		text := e.propString(n.UID, PropText, "")
		msg.Renderer.Text(msg.Rect.X+st.Padding, msg.Rect.Y+st.Padding, text, st.Text)
	}
	return Response{}
}

// --- button ---

// hoverFade tracks the animated hover highlight for one button node.
type hoverFade struct {
	tween *gween.Tween
	level float64
}

// newButtonHandler returns the button kind. Hover level is animated with a
// short tween advanced by MsgUpdate; the fade state is handler-private and
// cleaned up on destroy.
func newButtonHandler() Handler {
	fades := make(map[UID]*hoverFade)
	return func(e *Engine, n *Node, msg Message) Response {
		switch msg.Kind {
		case MsgCreate:
			fades[n.UID] = &hoverFade{}
			e.SetProp(n.UID, PropState, StateNormal)
		case MsgDestroy:
			delete(fades, n.UID)
		case MsgMeasure:
			if r, ok := e.propRect(n.UID, PropRect); ok {
				return RespondSize(r.Width, r.Height)
			}
			return RespondSize(defaultButtonW, defaultButtonH)
		case MsgMouseEnter:
			e.SetProp(n.UID, PropState, StateHover)
			if f := fades[n.UID]; f != nil {
				f.tween = gween.New(float32(f.level), 1, hoverFadeDuration, ease.OutQuad)
			}
		case MsgMouseLeave:
			e.SetProp(n.UID, PropState, StateNormal)
			if f := fades[n.UID]; f != nil {
				f.tween = gween.New(float32(f.level), 0, hoverFadeDuration, ease.OutQuad)
			}
		case MsgMousePress:
			e.SetProp(n.UID, PropState, StatePressed)
		case MsgMouseRelease:
			if e.propString(n.UID, PropState, StateNormal) == StatePressed {
				e.SetProp(n.UID, PropState, StateHover)
			}
		case MsgUpdate:
			if f := fades[n.UID]; f != nil && f.tween != nil {
				v, done := f.tween.Update(float32(msg.Dt))
				f.level = float64(v)
				if done {
					f.tween = nil
				}
			}
		case MsgPropChanged:
			if msg.Prop == PropRect {
				e.Invalidate(n.UID)
			}
		case MsgPaint:
			paintButton(e, n, msg, fades[n.UID])
		}
		return Response{}
	}
}

func paintButton(e *Engine, n *Node, msg Message, fade *hoverFade) {
	state := e.propString(n.UID, PropState, StateNormal)
	if !e.propBool(n.UID, PropEnabled, true) {
		state = StateDisabled
	}
	st := e.styler.Style(kindButton, state)

	fill := st.Fill
	if fade != nil && (state == StateNormal || state == StateHover) {
		normal := e.styler.Style(kindButton, StateNormal)
		hover := e.styler.Style(kindButton, StateHover)
		fill = lerpColor(normal.Fill, hover.Fill, fade.level)
	}
	msg.Renderer.FillRect(msg.Rect, fill)
	if st.StrokeWidth > 0 {
		msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
	}
	text := e.propString(n.UID, PropText, "")
	if text != "" {
		tw, th := msg.Renderer.TextSize(text)
		msg.Renderer.Text(
			msg.Rect.X+(msg.Rect.Width-tw)/2,
			msg.Rect.Y+(msg.Rect.Height-th)/2,
			text, st.Text)
	}
}

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// --- spinner ---

// spinnerHandler is the spinner's readout-and-frame node. Its two step
// buttons are ordinary button children docked to the ends of its rectangle
// via MsgPositionChildren; the middle shows the current value.
func spinnerHandler(e *Engine, n *Node, msg Message) Response {
	switch msg.Kind {
	case MsgCreate:
		e.SetProp(n.UID, PropState, StateNormal)
	case MsgMeasure:
		if r, ok := e.propRect(n.UID, PropRect); ok {
			return RespondSize(r.Width, r.Height)
		}
		return RespondSize(defaultButtonW, defaultButtonH)
	case MsgPositionChildren:
		// Square step buttons docked left and right.
		btn := n.Rect.Height
		rects := make([]Rect, len(n.Children()))
		for i := range rects {
			switch i {
			case 0:
				rects[i] = Rect{X: 0, Y: 0, Width: btn, Height: n.Rect.Height}
			case 1:
				rects[i] = Rect{X: n.Rect.Width - btn, Y: 0, Width: btn, Height: n.Rect.Height}
			default:
				rects[i] = Rect{Width: n.Rect.Width, Height: n.Rect.Height}
			}
		}
		return RespondRects(rects)
	case MsgPropChanged:
		if msg.Prop == PropRect {
			e.Invalidate(n.UID)
		}
	case MsgPaint:
		st := e.styler.Style(kindSpinner, StateNormal)
		msg.Renderer.FillRect(msg.Rect, st.Fill)
		if st.StrokeWidth > 0 {
			msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
		}
		value := e.propFloat(n.UID, PropValue, 0)
		text := strconv.FormatFloat(value, 'g', -1, 64)
		tw, th := msg.Renderer.TextSize(text)
		msg.Renderer.Text(
			msg.Rect.X+(msg.Rect.Width-tw)/2,
			msg.Rect.Y+(msg.Rect.Height-th)/2,
			text, st.Text)
	}
	return Response{}
}

// --- combo box & carousel ---

// newSelectorHandler builds the shared behavior of the item-cycling kinds;
// only the paint differs.
func newSelectorHandler(kind string, paint func(e *Engine, n *Node, msg Message, st Style)) Handler {
	return func(e *Engine, n *Node, msg Message) Response {
		switch msg.Kind {
		case MsgCreate:
			e.SetProp(n.UID, PropState, StateNormal)
		case MsgMeasure:
			if r, ok := e.propRect(n.UID, PropRect); ok {
				return RespondSize(r.Width, r.Height)
			}
			return RespondSize(defaultButtonW, defaultButtonH)
		case MsgMouseEnter:
			e.SetProp(n.UID, PropState, StateHover)
		case MsgMouseLeave:
			e.SetProp(n.UID, PropState, StateNormal)
		case MsgPropChanged:
			if msg.Prop == PropRect {
				e.Invalidate(n.UID)
			}
		case MsgPaint:
			state := e.propString(n.UID, PropState, StateNormal)
			if !e.propBool(n.UID, PropEnabled, true) {
				state = StateDisabled
			}
			paint(e, n, msg, e.styler.Style(kind, state))
		}
		return Response{}
	}
}

// selectedItem returns the item text under the node's selected index, or "".
func selectedItem(e *Engine, uid UID) string {
	items := e.propStrings(uid, PropItems)
	sel := e.propInt(uid, PropSelected, 0)
	if sel < 0 || sel >= len(items) {
		return ""
	}
	return items[sel]
}

func paintComboBox(e *Engine, n *Node, msg Message, st Style) {
	msg.Renderer.FillRect(msg.Rect, st.Fill)
	if st.StrokeWidth > 0 {
		msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
	}
	item := selectedItem(e, n.UID)
	mw, mh := msg.Renderer.TextSize("v")
	msg.Renderer.Text(msg.Rect.X+st.Padding, msg.Rect.Y+(msg.Rect.Height-mh)/2, item, st.Text)
	// Drop-down marker at the right edge.
	msg.Renderer.Text(
		msg.Rect.X+msg.Rect.Width-mw-st.Padding,
		msg.Rect.Y+(msg.Rect.Height-mh)/2,
		"v", st.Text)
}

func paintCarousel(e *Engine, n *Node, msg Message, st Style) {
	msg.Renderer.FillRect(msg.Rect, st.Fill)
	if st.StrokeWidth > 0 {
		msg.Renderer.StrokeRect(msg.Rect, st.Stroke, st.StrokeWidth)
	}
	item := selectedItem(e, n.UID)
	tw, th := msg.Renderer.TextSize(item)
	msg.Renderer.Text(
		msg.Rect.X+(msg.Rect.Width-tw)/2,
		msg.Rect.Y+(msg.Rect.Height-th)/2,
		item, st.Text)
	aw, ah := msg.Renderer.TextSize("<")
	msg.Renderer.Text(msg.Rect.X+st.Padding, msg.Rect.Y+(msg.Rect.Height-ah)/2, "<", st.Text)
	msg.Renderer.Text(
		msg.Rect.X+msg.Rect.Width-aw-st.Padding,
		msg.Rect.Y+(msg.Rect.Height-ah)/2,
		">", st.Text)
}
