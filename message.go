package hud

// MessageKind identifies a kind of message delivered to a control handler.
type MessageKind uint8

const (
	MsgCreate           MessageKind = iota // fires once when the node is appended to the tree
	MsgDestroy                             // fires before the node is detached
	MsgPaint                               // carries the node's resolved rectangle and a renderer
	MsgMeasure                             // expects a size back (RespondSize)
	MsgPositionChildren                    // expects child rectangle overrides back, or nothing
	MsgPropChanged                         // fires before a prop's new value is committed
	MsgMouseEnter                          // pointer entered the node's bounds
	MsgMouseLeave                          // pointer left the node's bounds
	MsgMousePress                          // primary button pressed over the node
	MsgMouseRelease                        // primary button released over the node
	MsgActivate                            // press and release landed on the same node
	MsgUpdate                              // per-frame tick with the frame delta
)

// Message is a discriminated event/request delivered to a node's handler.
// Kind selects which payload fields are meaningful.
type Message struct {
	Kind MessageKind

	// MsgPaint
	Rect     Rect
	Renderer Renderer

	// MsgPropChanged. Value is the incoming value; the prop store still holds
	// the previous value while the handler runs.
	Prop  string
	Value any

	// MsgUpdate
	Dt float64

	// Pointer kinds: overlay-space pointer position.
	X, Y float64
}

// Response is a handler's reply to a message. The zero value means "no
// response": the layout engine treats it as a zero size for MsgMeasure and as
// "no repositioning, use default layout for each child" for
// MsgPositionChildren. Fire-and-forget messages ignore the response entirely.
type Response struct {
	Size    Size
	HasSize bool
	Rects   []Rect
}

// RespondSize builds a measure response.
func RespondSize(width, height float64) Response {
	return Response{Size: Size{Width: width, Height: height}, HasSize: true}
}

// RespondRects builds a child-positioning response. Rectangles are expressed
// in the responding node's local space, one per child in child order.
func RespondRects(rects []Rect) Response {
	return Response{Rects: rects}
}

// Handler implements a control kind's behavior. It is invoked synchronously
// for every message delivered to a node of that kind and is expected to
// switch on msg.Kind, returning a non-zero Response only for kinds that
// define one.
//
// Handlers may call back into the prop store and the invalidation queue, but
// must not mutate the tree structure (add or remove nodes) from inside a
// dispatch; structural mutation must be deferred to the caller's frame code.
type Handler func(e *Engine, n *Node, msg Message) Response

// Register installs the handler for a control kind. Re-registering the same
// kind overwrites the previous handler (last write wins).
func (e *Engine) Register(kind string, h Handler) {
	e.kinds[kind] = h
}

// Dispatch routes a message to the handler registered for the node's kind.
// Nodes with an unregistered kind absorb all messages and respond with the
// zero Response.
func (e *Engine) Dispatch(n *Node, msg Message) Response {
	h, ok := e.kinds[n.Kind]
	if !ok {
		return Response{}
	}
	return h(e, n, msg)
}
