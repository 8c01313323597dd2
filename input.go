package hud

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame's input snapshot: pointer position in screen
// coordinates (the overlay shares the host's coordinate space), the primary
// button state, and the held keys. The engine keeps the previous frame's
// snapshot alongside the current one to detect edges.
type InputState struct {
	MouseX, MouseY float64
	MouseDown      bool
	Keys           []ebiten.Key
}

// KeyHeld reports whether key is in the held-key snapshot.
func (in InputState) KeyHeld(key ebiten.Key) bool {
	for _, k := range in.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// CaptureInput reads the host's current pointer and keyboard state into a
// snapshot. Call once per frame from the host's update callback and pass the
// result to BeginFrame or Update.
func CaptureInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:    float64(mx),
		MouseY:    float64(my),
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Keys:      inpututil.AppendPressedKeys(nil),
	}
}
