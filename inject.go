package folio

// syntheticKind identifies an injected input event.
type syntheticKind uint8

const (
	synthWheel syntheticKind = iota
	synthMove
	synthClick
	synthTab
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used (matching what is visible in screenshots) and go
// through the same tab hit test and pointer normalization as real input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	deltaY           float64
	tab              int
}

// InjectWheel queues a wheel event with the given browser-style deltaY
// (positive scrolls down the page). The event is consumed on the next
// frame's input pass.
func (s *Scene) InjectWheel(deltaY float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthWheel, deltaY: deltaY})
}

// InjectMove queues a pointer move to the given screen coordinates.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthMove, screenX: x, screenY: y})
}

// InjectClick queues a click at the given screen coordinates. A click on a
// tab requests that tab's section.
func (s *Scene) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthClick, screenX: x, screenY: y})
}

// InjectTab queues a direct request for section index, bypassing the tab
// bar's layout.
func (s *Scene) InjectTab(index int) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synthTab, tab: index})
}

// InjectScroll queues n wheel events in the same direction, one per frame,
// the way a physical wheel produces a burst of notches.
func (s *Scene) InjectScroll(deltaY float64, n int) {
	for i := 0; i < n; i++ {
		s.InjectWheel(deltaY)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input is skipped that frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case synthWheel:
		s.state.Wheel(evt.deltaY)
	case synthMove:
		s.state.MovePointer(PointerFromScreen(evt.screenX, evt.screenY, s.viewport.Width, s.viewport.Height))
	case synthClick:
		s.clickAt(evt.screenX, evt.screenY)
	case synthTab:
		s.state.ClickTab(evt.tab)
	}
	return true
}
