package hud

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStylerFallbackChain(t *testing.T) {
	s := NewStyler()
	s.Set("default", StateNormal, Style{Padding: 1})
	s.Set("default", StateHover, Style{Padding: 2})
	s.Set("button", StateNormal, Style{Padding: 3})
	s.Set("button", StatePressed, Style{Padding: 4})

	tests := []struct {
		kind, state string
		wantPadding float64
	}{
		{"button", StatePressed, 4}, // exact pair
		{"button", StateNormal, 3},
		{"button", StateHover, 3},    // kind's normal
		{"spinner", StateHover, 2},   // default's matching state
		{"spinner", StateNormal, 1},  // default's normal
		{"spinner", StateDisabled, 1},
	}
	for _, tt := range tests {
		if got := s.Style(tt.kind, tt.state).Padding; got != tt.wantPadding {
			t.Errorf("Style(%q, %q).Padding = %v, want %v", tt.kind, tt.state, got, tt.wantPadding)
		}
	}
}

func TestStylerEmptyYieldsZeroStyle(t *testing.T) {
	s := NewStyler()
	if got := s.Style("button", StateNormal); got != (Style{}) {
		t.Errorf("empty styler returned %+v", got)
	}
}

func TestDefaultStylerCoversBuiltins(t *testing.T) {
	s := DefaultStyler()
	for _, kind := range []string{kindRoot, kindPanel, kindLabel, kindButton, kindSpinner, kindComboBox, kindCarousel} {
		st := s.Style(kind, StateNormal)
		if st == (Style{}) {
			t.Errorf("no default style for %q", kind)
		}
	}
	// Hover must differ from normal for the animated blend to be visible.
	if s.Style(kindButton, StateNormal).Fill == s.Style(kindButton, StateHover).Fill {
		t.Error("button hover fill equals normal fill")
	}
}

func TestLoadStylerYAML(t *testing.T) {
	doc := `
styles:
  default:
    normal: {fill: "#101418", text: 0.9, padding: 4}
  button:
    normal: {fill: "#2b2f36", stroke: "#737373", text: "#ebebeb", stroke_width: 1, padding: 6}
    hover:  {fill: "#3d4450cc", text: "#ffffff", padding: 6}
`
	s, err := LoadStylerYAML([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}

	st := s.Style("button", StateNormal)
	if st.Fill != ColorHex(0x2b2f36) {
		t.Errorf("fill = %v", st.Fill)
	}
	if st.StrokeWidth != 1 || st.Padding != 6 {
		t.Errorf("stroke_width/padding = %v/%v", st.StrokeWidth, st.Padding)
	}

	hover := s.Style("button", StateHover)
	if hover.Fill != ColorHexA(0x3d4450cc) {
		t.Errorf("hover fill = %v, want the 8-digit hex with alpha", hover.Fill)
	}

	def := s.Style("spinner", StateNormal) // falls through to default
	if def.Text != ColorGray(0.9) {
		t.Errorf("gray-level text color = %v", def.Text)
	}
}

func TestLoadStylerYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\nnot yaml ["},
		{"no styles", "styles: {}"},
		{"bad hex", `styles: {button: {normal: {fill: "#xyz"}}}`},
		{"short hex", `styles: {button: {normal: {fill: "#fff"}}}`},
		{"gray out of range", `styles: {button: {normal: {fill: 1.5}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadStylerYAML([]byte(tt.doc)); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestColorYAMLRoundTrip(t *testing.T) {
	tests := []Color{
		ColorHex(0x2b2f36),
		ColorHexA(0x3d4450cc),
		ColorGray(0.5),
		ColorWhite,
	}
	for _, c := range tests {
		data, err := yaml.Marshal(c)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(strings.TrimSpace(string(data)), "'#") &&
			!strings.HasPrefix(strings.TrimSpace(string(data)), "\"#") &&
			!strings.HasPrefix(strings.TrimSpace(string(data)), "#") {
			t.Errorf("marshal %v = %q, want a hex string", c, data)
		}
		var back Color
		if err := yaml.Unmarshal(data, &back); err != nil {
			t.Fatal(err)
		}
		ra, rb := c.toRGBA(), back.toRGBA()
		if ra != rb {
			t.Errorf("round trip %v -> %v (%v vs %v)", c, back, ra, rb)
		}
	}
}

func TestEngineUsesBoundStyler(t *testing.T) {
	e := layoutEngine(t, Rect{Width: 200, Height: 100})
	custom := NewStyler()
	custom.Set("default", StateNormal, Style{Text: ColorWhite, Padding: 0})
	custom.Set(kindLabel, StateNormal, Style{Text: ColorWhite, Padding: 0})
	e.Start(Config{Viewport: Rect{Width: 200, Height: 100}, Styler: custom})

	e.AddChild(RootUID, NodeSpec{UID: 1, Kind: kindLabel})
	e.SetProp(1, PropText, "hi")
	e.Update(InputState{})

	if e.Styler() != custom {
		t.Fatal("styler not bound")
	}
	r := &recordRenderer{}
	e.Draw(r)
	found := false
	for _, s := range r.texts {
		if s == "hi" {
			found = true
		}
	}
	if !found {
		t.Error("label not painted with the custom theme")
	}
}
