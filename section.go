package folio

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNoSections is returned when a page is configured without sections.
	ErrNoSections = errors.New("folio: no sections")
	// ErrBadSpacing is returned when the section spacing is not positive.
	ErrBadSpacing = errors.New("folio: section spacing must be positive")
)

// Section is one scroll page of content. Index is its position in the page
// and never changes after construction.
type Section struct {
	Index int
	ID    string
	Title string
	Body  string
}

// Offset returns the camera height associated with the section.
func (s Section) Offset(spacing float64) float64 {
	return -float64(s.Index) * spacing
}

// Scroller brings a section's content into view. The default implementation
// is the content overlay, which tweens its scroll offset.
type Scroller interface {
	ScrollIntoView(sec Section)
}

// SectionChange describes a committed move from one section to another.
type SectionChange struct {
	From, To      int
	Section       Section
	TargetCameraY float64
	ScrollOffset  float64
}

type changeHandler struct {
	id uint32
	fn func(SectionChange)
}

// Navigator holds the current section and the targets derived from it. It is
// the single source of truth read by the camera and the background scroll
// uniform; neither writes back.
type Navigator struct {
	sections []Section
	spacing  float64
	scroller Scroller

	current      int
	targetY      float64
	scrollOffset float64

	handlers []changeHandler
	nextID   uint32
}

// NewNavigator creates a Navigator positioned on the first section. Section
// indices are rewritten to match their slice position. scroller may be nil.
func NewNavigator(sections []Section, spacing float64, scroller Scroller) (*Navigator, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadSpacing, spacing)
	}
	secs := make([]Section, len(sections))
	for i, s := range sections {
		s.Index = i
		secs[i] = s
	}
	n := &Navigator{
		sections: secs,
		spacing:  spacing,
		scroller: scroller,
	}
	n.recompute()
	return n, nil
}

// SetScroller replaces the scroll-into-view collaborator.
func (n *Navigator) SetScroller(s Scroller) {
	n.scroller = s
}

// GoTo makes index the current section. Out-of-range indices are clamped to
// [0, Len()-1]. The targets are recomputed from the clamped index and the
// scroller is asked to bring the section into view. Change handlers fire only
// when the current section actually changes.
func (n *Navigator) GoTo(index int) {
	prev := n.current
	n.current = clampInt(index, 0, len(n.sections)-1)
	n.recompute()

	sec := n.sections[n.current]
	if n.scroller != nil {
		n.scroller.ScrollIntoView(sec)
	}
	if n.current == prev {
		return
	}
	change := SectionChange{
		From:          prev,
		To:            n.current,
		Section:       sec,
		TargetCameraY: n.targetY,
		ScrollOffset:  n.scrollOffset,
	}
	logger().Debug("section change", "from", prev, "to", n.current, "id", sec.ID)
	// Handlers may remove themselves or others while being called.
	for _, h := range slices.Clone(n.handlers) {
		h.fn(change)
	}
}

// Next moves one section down the page.
func (n *Navigator) Next() { n.GoTo(n.current + 1) }

// Prev moves one section up the page.
func (n *Navigator) Prev() { n.GoTo(n.current - 1) }

func (n *Navigator) recompute() {
	n.targetY = -float64(n.current) * n.spacing
	n.scrollOffset = float64(n.current) / float64(len(n.sections))
}

// Current returns the index of the current section.
func (n *Navigator) Current() int { return n.current }

// TargetCameraY returns -Current()*Spacing().
func (n *Navigator) TargetCameraY() float64 { return n.targetY }

// ScrollOffset returns Current()/Len(), the fraction fed to the background.
func (n *Navigator) ScrollOffset() float64 { return n.scrollOffset }

// Spacing returns the vertical world distance between sections.
func (n *Navigator) Spacing() float64 { return n.spacing }

// Len returns the number of sections.
func (n *Navigator) Len() int { return len(n.sections) }

// Section returns the section at index i, clamped to the valid range.
func (n *Navigator) Section(i int) Section {
	return n.sections[clampInt(i, 0, len(n.sections)-1)]
}

// Sections returns the page's sections. The returned slice MUST NOT be mutated.
func (n *Navigator) Sections() []Section {
	return n.sections
}

// OnChange registers a callback fired after each committed section change.
func (n *Navigator) OnChange(fn func(SectionChange)) ChangeHandle {
	n.nextID++
	id := n.nextID
	n.handlers = append(n.handlers, changeHandler{id: id, fn: fn})
	return ChangeHandle{id: id, nav: n}
}

// ChangeHandle allows removing a registered change callback.
type ChangeHandle struct {
	id  uint32
	nav *Navigator
}

// Remove unregisters the callback so it no longer fires.
func (h ChangeHandle) Remove() {
	if h.nav == nil {
		return
	}
	s := h.nav.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			h.nav.handlers = s[:len(s)-1]
			return
		}
	}
}

// SetText replaces the title and body of section i, keeping its identity
// and position. It reports false when i is out of range.
func (n *Navigator) SetText(i int, title, body string) bool {
	if i < 0 || i >= len(n.sections) {
		return false
	}
	n.sections[i].Title = title
	n.sections[i].Body = body
	return true
}
