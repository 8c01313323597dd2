package hud

import (
	"fmt"
	"os"
	"time"
)

// kindRoot is the control kind of the always-present root container.
const kindRoot = "root"

// defaultFrameDt is the per-frame delta handed to MsgUpdate when the host
// runs at the standard 60 ticks per second.
const defaultFrameDt = 1.0 / 60

// Config carries the options for Engine.Start.
type Config struct {
	// OverlayWidth is the width in pixels of the overlay column carved out of
	// the host window when Host is set.
	OverlayWidth float64

	// Host, when non-nil, is resized at Start to make room for the overlay
	// and restored at Shutdown.
	Host WindowHost

	// Viewport is the overlay rectangle used when Host is nil.
	Viewport Rect

	// Renderer paints the tree. May be nil if a renderer is bound later via
	// BeginFrame or passed to Draw directly.
	Renderer Renderer

	// Styler maps (control kind, state) to visual attributes. Nil selects
	// DefaultStyler.
	Styler *Styler

	// Log receives engine diagnostics and recovered structural errors.
	// Nil logs to stderr with a "[hud]" prefix.
	Log func(format string, args ...any)
}

// Engine owns the node tree, the control-kind registry, the prop store, the
// invalidation queue, and the per-frame input snapshots. There is no ambient
// module state: everything a session needs lives here and is discarded by
// Shutdown.
//
// The engine is single-threaded and re-entrant-unsafe: all methods must be
// called from the host's frame callback, and a handler must not trigger
// another Update/Draw pass while one is in progress.
type Engine struct {
	root  *Node
	kinds map[string]Handler
	index map[UID]*Node
	props map[UID]map[string]any

	pending  []UID
	viewport Rect

	input     InputState
	prevInput InputState
	hoverNode *Node
	pressNode *Node
	activated map[UID]bool

	renderer Renderer
	styler   *Styler
	host     WindowHost
	hostW    int
	hostH    int
	started  bool
	inFrame  bool

	injectQueue []syntheticPointerEvent
	script      *ScriptRunner

	// FrameDt is the delta passed to MsgUpdate each frame. Defaults to 1/60.
	FrameDt float64

	debug bool
	logf  func(format string, args ...any)
}

// NewEngine creates an engine with a fresh tree, the built-in control kinds
// registered, and the root container in place. The root has no rectangle
// until a viewport is seeded via Start or SetViewport.
func NewEngine() *Engine {
	e := &Engine{
		kinds:     make(map[string]Handler),
		index:     make(map[UID]*Node),
		props:     make(map[UID]map[string]any),
		activated: make(map[UID]bool),
		styler:    DefaultStyler(),
		FrameDt:   defaultFrameDt,
	}
	e.logf = func(format string, args ...any) {
		_, _ = fmt.Fprintf(os.Stderr, "[hud] "+format+"\n", args...)
	}
	registerBuiltins(e)
	e.root = &Node{UID: RootUID, Kind: kindRoot, AlignH: AlignFill, AlignV: AlignFill}
	e.index[RootUID] = e.root
	e.Dispatch(e.root, Message{Kind: MsgCreate})
	return e
}

// Root returns the root container node.
func (e *Engine) Root() *Node {
	return e.root
}

// Renderer returns the currently bound renderer, if any.
func (e *Engine) Renderer() Renderer {
	return e.renderer
}

// Styler returns the currently bound styler. Never nil.
func (e *Engine) Styler() *Styler {
	return e.styler
}

// Viewport returns the overlay rectangle the root fills.
func (e *Engine) Viewport() Rect {
	return e.viewport
}

// Start performs one-time session setup: it binds the renderer, styler, and
// log sink, carves overlay space out of the host window (when a host is
// configured), and seeds the root rectangle. Call before installing the
// per-frame callback. Starting an already-started engine is a logged no-op;
// call Shutdown first to reconfigure.
func (e *Engine) Start(cfg Config) {
	if e.started {
		e.logf("start: engine already started")
		return
	}
	if cfg.Renderer != nil {
		e.renderer = cfg.Renderer
	}
	if cfg.Styler != nil {
		e.styler = cfg.Styler
	}
	if cfg.Log != nil {
		e.logf = cfg.Log
	}
	if cfg.Host != nil {
		e.host = cfg.Host
		e.hostW, e.hostH = e.host.Size()
		e.host.SetSize(e.hostW+int(cfg.OverlayWidth), e.hostH)
		e.SetViewport(Rect{X: float64(e.hostW), Y: 0, Width: cfg.OverlayWidth, Height: float64(e.hostH)})
	} else {
		e.SetViewport(cfg.Viewport)
	}
	e.started = true
}

// Shutdown tears the session down: the host window dimensions are restored,
// every node except the root is destroyed, and all retained state (props,
// invalidations, input snapshots) is discarded. The engine can be started
// again afterwards.
func (e *Engine) Shutdown() {
	if e.host != nil {
		e.host.SetSize(e.hostW, e.hostH)
		e.host = nil
	}
	for len(e.root.children) > 0 {
		e.Remove(e.root.children[len(e.root.children)-1].UID)
	}
	e.pending = nil
	e.injectQueue = nil
	e.script = nil
	e.props = make(map[UID]map[string]any)
	e.activated = make(map[UID]bool)
	e.input = InputState{}
	e.prevInput = InputState{}
	e.hoverNode = nil
	e.pressNode = nil
	e.root.HasRect = false
	e.started = false
}

// SetViewport seeds the overlay rectangle the root fills and enqueues a full
// relayout. Hosts that manage their own window (tests, custom embeddings)
// call this instead of Start with a WindowHost.
func (e *Engine) SetViewport(r Rect) {
	e.viewport = r
	e.Invalidate(RootUID)
}

// SetLog replaces the engine's logging sink.
func (e *Engine) SetLog(fn func(format string, args ...any)) {
	if fn != nil {
		e.logf = fn
	}
}

// --- Frame orchestration ---

// Update runs one frame of the engine, in strict order: capture the input
// snapshot (previous snapshot retained for edge detection), flush the
// invalidation queue, hit-test and deliver pointer state transitions, then
// tick every node with MsgUpdate. Painting happens separately in Draw,
// matching the host's update/draw callback split.
func (e *Engine) Update(in InputState) {
	if e.script != nil {
		e.script.step(e)
		if e.script.Done() {
			e.script = nil
		}
	}
	if len(e.injectQueue) > 0 {
		ev := e.injectQueue[0]
		e.injectQueue = e.injectQueue[1:]
		in = InputState{MouseX: ev.x, MouseY: ev.y, MouseDown: ev.pressed, Keys: in.Keys}
	}
	e.prevInput = e.input
	e.input = in
	clear(e.activated)

	var stats frameStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	e.flushLayout()

	if e.debug {
		stats.flushTime = time.Since(t0)
		t0 = time.Now()
	}

	e.processPointer()

	if e.debug {
		stats.pointerTime = time.Since(t0)
		t0 = time.Now()
	}

	e.tick(e.root, e.FrameDt)

	if e.debug {
		stats.tickTime = time.Since(t0)
		stats.nodeCount = len(e.index)
		e.debugLog(stats)
	}
}

// processPointer compares the current pointer snapshot against the previous
// frame's and delivers enter/leave, press/release, and activation messages.
// Activation fires when the press and the release landed on the same node.
func (e *Engine) processPointer() {
	in := e.input
	target := e.hitTest(in.MouseX, in.MouseY)

	if target != e.hoverNode {
		if e.hoverNode != nil && !e.hoverNode.disposed {
			e.Dispatch(e.hoverNode, Message{Kind: MsgMouseLeave, X: in.MouseX, Y: in.MouseY})
		}
		if target != nil {
			e.Dispatch(target, Message{Kind: MsgMouseEnter, X: in.MouseX, Y: in.MouseY})
		}
		e.hoverNode = target
	}

	pressed := in.MouseDown && !e.prevInput.MouseDown
	released := !in.MouseDown && e.prevInput.MouseDown

	if pressed {
		e.pressNode = target
		if target != nil {
			e.Dispatch(target, Message{Kind: MsgMousePress, X: in.MouseX, Y: in.MouseY})
		}
	}
	if released {
		if target != nil {
			e.Dispatch(target, Message{Kind: MsgMouseRelease, X: in.MouseX, Y: in.MouseY})
		}
		if e.pressNode != nil && e.pressNode == target {
			e.Dispatch(target, Message{Kind: MsgActivate, X: in.MouseX, Y: in.MouseY})
			e.activated[target.UID] = true
		}
		e.pressNode = nil
	}
}

// hitTest finds the topmost enabled node whose rectangle contains (x, y).
// Children are scanned in reverse order (last-appended = topmost), matching
// paint order. The root itself is hit-transparent. A disabled node is
// transparent together with its whole subtree: the scan skips the branch and
// continues with the siblings underneath.
func (e *Engine) hitTest(x, y float64) *Node {
	return e.hitNode(e.root, x, y)
}

func (e *Engine) hitNode(n *Node, x, y float64) *Node {
	if n != e.root && !e.propBool(n.UID, PropEnabled, true) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := e.hitNode(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n == e.root || !n.HasRect {
		return nil
	}
	if n.Rect.Contains(x, y) {
		return n
	}
	return nil
}

// tick delivers MsgUpdate depth-first in creation order.
func (e *Engine) tick(n *Node, dt float64) {
	e.Dispatch(n, Message{Kind: MsgUpdate, Dt: dt})
	for _, child := range n.children {
		e.tick(child, dt)
	}
}

// Activated reports whether the node identified by uid received an
// activation during the most recent Update. The latch is cleared at the
// start of the next Update.
func (e *Engine) Activated(uid UID) bool {
	return e.activated[uid]
}

// Draw paints the tree in creation order, delivering MsgPaint with each
// node's current rectangle and the renderer. Nodes that have not been laid
// out yet are skipped (their subtrees too — children cannot have valid
// rectangles before their parent does). Passing nil uses the bound renderer.
func (e *Engine) Draw(r Renderer) {
	if r == nil {
		r = e.renderer
	}
	if r == nil {
		return
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}
	e.paint(e.root, r)
	if e.debug {
		e.debugLogPaint(time.Since(t0))
	}
}

func (e *Engine) paint(n *Node, r Renderer) {
	if !n.HasRect {
		return
	}
	e.Dispatch(n, Message{Kind: MsgPaint, Rect: n.Rect, Renderer: r})
	for _, child := range n.children {
		e.paint(child, r)
	}
}
