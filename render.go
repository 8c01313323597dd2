package hud

import (
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Renderer is the drawing capability handed to paint handlers. The engine
// never draws directly; control kinds emit primitive calls through this
// interface, which keeps the core testable with a recording stub and the
// host renderer swappable.
type Renderer interface {
	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// StrokeRect outlines r with c at the given thickness. The stroke is
	// drawn inside the rectangle.
	StrokeRect(r Rect, c Color, thickness float64)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
	// TextSize reports the drawn dimensions of s.
	TextSize(s string) (w, h float64)
}

// WindowHost is the host's window-sizing capability: queried and resized
// once at Start to carve out overlay space, and restored once at Shutdown.
type WindowHost interface {
	Size() (w, h int)
	SetSize(w, h int)
}

// EbitenWindowHost adapts the ebiten window to WindowHost.
type EbitenWindowHost struct{}

func (EbitenWindowHost) Size() (int, int) { return ebiten.WindowSize() }

func (EbitenWindowHost) SetSize(w, h int) { ebiten.SetWindowSize(w, h) }

// textLineSpacing is the line spacing used for overlay labels.
const textLineSpacing = 16

// EbitenRenderer draws overlay primitives onto an ebiten image. Solid
// rectangles are scaled WhitePixel quads; text uses the bundled fixed-width
// face, which needs no external assets.
type EbitenRenderer struct {
	target *ebiten.Image
	face   text.Face
}

// NewEbitenRenderer creates a renderer with no target bound. Bind the frame's
// screen image with SetTarget (or use Engine.DrawTo, which does it for you).
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget binds the image subsequent draw calls render onto.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// FillRect fills rect by scaling the 1x1 WhitePixel and tinting it.
// Color components are premultiplied at submission.
func (r *EbitenRenderer) FillRect(rect Rect, c Color) {
	if r.target == nil || rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	r.target.DrawImage(WhitePixel, op)
}

// StrokeRect draws the four edges as thin fills inside the rectangle.
func (r *EbitenRenderer) StrokeRect(rect Rect, c Color, thickness float64) {
	if thickness <= 0 {
		return
	}
	t := thickness
	r.FillRect(Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: t}, c)
	r.FillRect(Rect{X: rect.X, Y: rect.Y + rect.Height - t, Width: rect.Width, Height: t}, c)
	r.FillRect(Rect{X: rect.X, Y: rect.Y + t, Width: t, Height: rect.Height - 2*t}, c)
	r.FillRect(Rect{X: rect.X + rect.Width - t, Y: rect.Y + t, Width: t, Height: rect.Height - 2*t}, c)
}

// Text draws s with its top-left corner at (x, y).
func (r *EbitenRenderer) Text(x, y float64, s string, c Color) {
	if r.target == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	text.Draw(r.target, s, r.face, op)
}

// TextSize reports the drawn dimensions of s.
func (r *EbitenRenderer) TextSize(s string) (float64, float64) {
	return text.Measure(s, r.face, textLineSpacing)
}

// DrawTo binds screen as the ebiten renderer's target and paints the tree.
// Convenience for hosts using the stock EbitenRenderer; other renderers
// should call Draw directly.
func (e *Engine) DrawTo(screen *ebiten.Image) {
	if er, ok := e.renderer.(*EbitenRenderer); ok {
		er.SetTarget(screen)
	}
	e.Draw(e.renderer)
}
