package hud

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Interaction states used by the built-in control kinds and default theme.
const (
	StateNormal   = "normal"
	StateHover    = "hover"
	StatePressed  = "pressed"
	StateDisabled = "disabled"
)

// styleFallback is the catch-all kind consulted when a theme has no entry
// for a specific control kind.
const styleFallback = "default"

// Style is the visual attribute set for one (control kind, state) pair.
type Style struct {
	Fill        Color   `yaml:"fill"`
	Stroke      Color   `yaml:"stroke"`
	Text        Color   `yaml:"text"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Padding     float64 `yaml:"padding"`
}

// Styler maps (control kind, interaction state) to a Style. Paint handlers
// consult the engine's bound styler; the engine core never interprets the
// attributes itself.
type Styler struct {
	styles map[string]map[string]Style
}

// stylerFile is the YAML document layout for LoadStylerYAML.
type stylerFile struct {
	Styles map[string]map[string]Style `yaml:"styles"`
}

// NewStyler creates an empty styler. Mostly useful as a base for Set calls;
// themes normally come from DefaultStyler or LoadStylerYAML.
func NewStyler() *Styler {
	return &Styler{styles: make(map[string]map[string]Style)}
}

// Set installs the style for a (kind, state) pair, replacing any previous
// entry.
func (s *Styler) Set(kind, state string, style Style) {
	m := s.styles[kind]
	if m == nil {
		m = make(map[string]Style)
		s.styles[kind] = m
	}
	m[state] = style
}

// Style resolves the style for a (kind, state) pair. Resolution falls back
// from the exact pair to the kind's normal state, then to the "default" kind,
// so a sparse theme still paints every control.
func (s *Styler) Style(kind, state string) Style {
	if m, ok := s.styles[kind]; ok {
		if st, ok := m[state]; ok {
			return st
		}
		if st, ok := m[StateNormal]; ok {
			return st
		}
	}
	if m, ok := s.styles[styleFallback]; ok {
		if st, ok := m[state]; ok {
			return st
		}
		if st, ok := m[StateNormal]; ok {
			return st
		}
	}
	return Style{}
}

// DefaultStyler returns the built-in dark theme.
func DefaultStyler() *Styler {
	s := NewStyler()
	s.Set(styleFallback, StateNormal, Style{
		Fill: ColorGray(0.16), Stroke: ColorGray(0.42), Text: ColorGray(0.92),
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindRoot, StateNormal, Style{
		Fill: ColorHexA(0x101418e6), Stroke: ColorGray(0.3), StrokeWidth: 1,
	})
	s.Set(kindButton, StateNormal, Style{
		Fill: ColorHex(0x2b2f36), Stroke: ColorGray(0.45), Text: ColorGray(0.92),
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindButton, StateHover, Style{
		Fill: ColorHex(0x3d4450), Stroke: ColorGray(0.6), Text: ColorWhite,
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindButton, StatePressed, Style{
		Fill: ColorHex(0x1d2026), Stroke: ColorGray(0.7), Text: ColorWhite,
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindButton, StateDisabled, Style{
		Fill: ColorGray(0.14), Stroke: ColorGray(0.25), Text: ColorGray(0.4),
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindLabel, StateNormal, Style{Text: ColorGray(0.92), Padding: 2})
	s.Set(kindPanel, StateNormal, Style{
		Fill: ColorHexA(0x1a1e2480), Stroke: ColorGray(0.3), StrokeWidth: 1, Padding: 4,
	})
	s.Set(kindSpinner, StateNormal, Style{
		Fill: ColorHex(0x23262c), Stroke: ColorGray(0.45), Text: ColorGray(0.92),
		StrokeWidth: 1, Padding: 4,
	})
	s.Set(kindComboBox, StateNormal, Style{
		Fill: ColorHex(0x23262c), Stroke: ColorGray(0.45), Text: ColorGray(0.92),
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindComboBox, StateHover, Style{
		Fill: ColorHex(0x343a44), Stroke: ColorGray(0.6), Text: ColorWhite,
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindCarousel, StateNormal, Style{
		Fill: ColorHex(0x23262c), Stroke: ColorGray(0.45), Text: ColorGray(0.92),
		StrokeWidth: 1, Padding: 6,
	})
	s.Set(kindCarousel, StateHover, Style{
		Fill: ColorHex(0x343a44), Stroke: ColorGray(0.6), Text: ColorWhite,
		StrokeWidth: 1, Padding: 6,
	})
	return s
}

// LoadStylerYAML parses a YAML theme document:
//
//	styles:
//	  button:
//	    normal:  {fill: "#2b2f36", stroke: 0.45, text: "#ebebeb", stroke_width: 1, padding: 6}
//	    hover:   {fill: "#3d4450", stroke: 0.6,  text: "#ffffff", stroke_width: 1, padding: 6}
//
// Colors are "#rrggbb" or "#rrggbbaa" hex strings, or a bare number in
// [0, 1] meaning an opaque gray level.
func LoadStylerYAML(data []byte) (*Styler, error) {
	var file stylerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	if len(file.Styles) == 0 {
		return nil, fmt.Errorf("parse theme: no styles")
	}
	s := NewStyler()
	for kind, states := range file.Styles {
		for state, style := range states {
			s.Set(kind, state, style)
		}
	}
	return s, nil
}

// UnmarshalYAML decodes a color from a hex string or a gray level.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		switch len(hex) {
		case 6:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return fmt.Errorf("color %q: %w", raw, err)
			}
			*c = ColorHex(uint32(v))
			return nil
		case 8:
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return fmt.Errorf("color %q: %w", raw, err)
			}
			*c = ColorHexA(uint32(v))
			return nil
		default:
			return fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", raw)
		}
	}
	gray, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("color %q: want hex string or gray level", raw)
	}
	if gray < 0 || gray > 1 {
		return fmt.Errorf("color %q: gray level out of [0, 1]", raw)
	}
	*c = ColorGray(gray)
	return nil
}

// MarshalYAML encodes a color as "#rrggbb", or "#rrggbbaa" when the alpha is
// not fully opaque.
func (c Color) MarshalYAML() (any, error) {
	rgba := c.toRGBA()
	if rgba.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), nil
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A), nil
}
