package hud

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, identical to what CaptureInput would report.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a primary-button press at the given screen coordinates.
// One queued event is consumed per Update call, overriding that frame's real
// input snapshot.
func (e *Engine) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag across the overlay.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectHover queues a pointer move with the button up.
func (e *Engine) InjectHover(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectRelease queues a primary-button release at the given coordinates.
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}
