package hud

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// frameStats holds per-frame timing metrics. Only populated when the
// engine's debug mode is enabled.
type frameStats struct {
	flushTime   time.Duration
	pointerTime time.Duration
	tickTime    time.Duration
	nodeCount   int
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are written to the engine's log sink.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// debugLog writes update-phase timings through the log sink.
func (e *Engine) debugLog(stats frameStats) {
	total := stats.flushTime + stats.pointerTime + stats.tickTime
	e.logf("layout: %v | pointer: %v | tick: %v | total: %v | nodes: %d",
		stats.flushTime, stats.pointerTime, stats.tickTime, total, stats.nodeCount)
}

// debugLogPaint writes the paint-phase timing through the log sink.
func (e *Engine) debugLogPaint(d time.Duration) {
	e.logf("paint: %v", d)
}

// --- Diagnostics readout ---

// kindDiagnostics renders a small FPS/TPS/node-count readout. Add one to any
// corner of the overlay while tuning a scene:
//
//	e.AddChild(hud.RootUID, hud.NodeSpec{UID: 999, Kind: hud.KindDiagnostics})
//	e.SetProp(999, hud.PropRect, hud.Rect{X: 4, Y: 4, Width: 130, Height: 36})
const kindDiagnostics = "diagnostics"

// KindDiagnostics is the registered kind name of the diagnostics readout.
const KindDiagnostics = kindDiagnostics

func diagnosticsHandler(e *Engine, n *Node, msg Message) Response {
	switch msg.Kind {
	case MsgMeasure:
		if r, ok := e.propRect(n.UID, PropRect); ok {
			return RespondSize(r.Width, r.Height)
		}
		return RespondSize(130, 36)
	case MsgPropChanged:
		if msg.Prop == PropRect {
			e.Invalidate(n.UID)
		}
	case MsgPaint:
		st := e.styler.Style(kindPanel, StateNormal)
		msg.Renderer.FillRect(msg.Rect, Color{A: 0.5})
		msg.Renderer.Text(msg.Rect.X+st.Padding, msg.Rect.Y+st.Padding,
			fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), st.Text)
		msg.Renderer.Text(msg.Rect.X+st.Padding, msg.Rect.Y+st.Padding+approxLineH+2,
			fmt.Sprintf("nodes: %d", e.NumNodes()), st.Text)
	}
	return Response{}
}
