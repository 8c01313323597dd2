// Package hud is a retained-mode widget overlay engine for [Ebitengine].
//
// Hud draws stateful UI controls (buttons, spinners, combo boxes, carousels)
// on top of a host game's rendered output, updating once per host-driven
// frame callback. Controls live in a node tree rooted at an always-present
// container that fills the overlay region; each control kind implements a
// small message contract (create, destroy, measure, paint, child positioning,
// property changes, pointer enter/leave) registered with the [Engine].
//
// # Quick start
//
// Create an [Engine], start it against the host window, and drive it from
// your [ebiten.Game]:
//
//	engine := hud.NewEngine()
//	engine.Start(hud.Config{
//		OverlayWidth: 240,
//		Host:         hud.EbitenWindowHost{},
//		Renderer:     hud.NewEbitenRenderer(),
//	})
//
//	type Game struct{ engine *hud.Engine }
//
//	func (g *Game) Update() error {
//		g.engine.BeginFrame(nil, nil, hud.CaptureInput())
//		if g.engine.Button(hud.WidgetConfig{UID: 1, Rect: hud.Rect{X: 8, Y: 8, Width: 120, Height: 24}, Text: "Spawn"}) {
//			// clicked this frame
//		}
//		g.engine.EndFrame()
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.engine.DrawTo(screen)
//	}
//
// # Retained and immediate modes
//
// The retained tree is the engine's core: nodes are created with
// [Engine.AddChild], keep per-node state in the prop store across frames, and
// are laid out by a two-pass (measure, then position) algorithm whenever
// their subtree is invalidated. The immediate-mode calls ([Engine.Button],
// [Engine.Spinner], [Engine.ComboBox], [Engine.CarouselButton]) are a facade
// over that tree: each call creates or updates a retained node keyed by the
// caller-assigned identifier and returns the widget's current logical value.
//
// # Control kinds
//
// New widget behavior is added by registering a [Handler] for a kind name
// with [Engine.Register]. A handler must respond to create, measure, and
// paint; everything else is optional. See widgets.go for the built-in kinds,
// which are implemented purely against this public contract.
//
// All engine state is session-scoped and single-threaded: the engine must
// only be touched from the host's frame callback, and [Engine.Shutdown]
// discards everything.
//
// [Ebitengine]: https://ebitengine.org
package hud
