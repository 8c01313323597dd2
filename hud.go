package hud

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// UID identifies a node in the tree. UIDs are caller-assigned and must be
// unique across the whole tree while the node exists. The root uses the
// sentinel RootUID; callers must pick non-zero values.
type UID int

// RootUID is the sentinel identifier of the always-present root container.
const RootUID UID = 0

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorHex builds an opaque color from a 0xRRGGBB value.
func ColorHex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// ColorHexA builds a color from a 0xRRGGBBAA value.
func ColorHexA(rgba uint32) Color {
	c := ColorHex(rgba >> 8)
	c.A = float64(rgba&0xff) / 255
	return c
}

// ColorGray builds an opaque gray from a single level in [0, 1].
func ColorGray(v float64) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// toRGBA converts to the standard library color type, clamping to [0, 1].
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Size is a measured width/height pair returned by measure handlers.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Alignment is the per-axis policy used to place a node inside its parent's
// rectangle. Horizontal and vertical alignment are resolved independently.
type Alignment uint8

const (
	AlignStart  Alignment = iota // offset 0, keep measured size
	AlignCenter                  // centered, keep measured size
	AlignEnd                     // flush to the far edge, keep measured size
	AlignFill                    // offset 0, take the parent's size on this axis
)

// alignAxis resolves one axis: given the parent's size and the node's
// measured size, it returns the node's offset and final size on that axis.
func alignAxis(parentSize, measured float64, a Alignment) (offset, size float64) {
	switch a {
	case AlignCenter:
		return (parentSize - measured) / 2, measured
	case AlignEnd:
		return parentSize - measured, measured
	case AlignFill:
		return 0, parentSize
	default:
		return 0, measured
	}
}
