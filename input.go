package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSignal is the pointer position in normalized device coordinates:
// X and Y in [-1, 1], +Y up. The zero value is the neutral rest position
// used before the pointer first moves.
type PointerSignal struct {
	X, Y float64
}

// PointerFromScreen converts a screen position inside a w*h viewport into
// NDC. Positions outside the viewport are clamped to the edge. A degenerate
// viewport yields the neutral signal.
func PointerFromScreen(sx, sy, w, h float64) PointerSignal {
	if w <= 0 || h <= 0 {
		return PointerSignal{}
	}
	return PointerSignal{
		X: clamp01(sx/w)*2 - 1,
		Y: -(clamp01(sy/h)*2 - 1),
	}
}

// PendingSectionChange is a section request waiting for the next frame.
// The zero value requests nothing.
type PendingSectionChange struct {
	Index int
	Set   bool
}

// InputSignals is the input captured between frames. Input handlers only
// write here; the frame step consumes it.
type InputSignals struct {
	// Pointer is read every frame and never consumed.
	Pointer PointerSignal
	// Section is consumed by the next step. A later request overwrites an
	// earlier one.
	Section PendingSectionChange
}

// request records a section request.
func (in *InputSignals) request(index int) {
	in.Section = PendingSectionChange{Index: index, Set: true}
}

// takeSection returns and clears the pending section request.
func (in *InputSignals) takeSection() (int, bool) {
	p := in.Section
	in.Section = PendingSectionChange{}
	return p.Index, p.Set
}

// --- Ebitengine input ---

// processDeviceInput feeds one frame of mouse and keyboard input into the
// state.
func (s *Scene) processDeviceInput() {
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		// Ebitengine reports wheel-up as positive; the page scrolls the other way.
		s.state.Wheel(-yoff)
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	if sx != s.lastCursorX || sy != s.lastCursorY {
		s.lastCursorX, s.lastCursorY = sx, sy
		s.state.MovePointer(PointerFromScreen(sx, sy, s.viewport.Width, s.viewport.Height))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.clickAt(sx, sy)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		s.state.ClickTab(s.state.Nav.Current() + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.state.ClickTab(s.state.Nav.Current() - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.state.ClickTab(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.state.ClickTab(s.state.Nav.Len() - 1)
	}
}

// clickAt routes a press at screen position (x, y) to the tab under it.
func (s *Scene) clickAt(x, y float64) {
	if i, ok := s.tabs.HitTest(x, y); ok {
		s.state.ClickTab(i)
	}
}
