package folio

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, page events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event PageEvent)
}

// PageEventType identifies a kind of page event.
type PageEventType uint8

const (
	EventSectionChange PageEventType = iota // the current section changed
	EventSectionReveal                      // a section's content was revealed
)

func (t PageEventType) String() string {
	switch t {
	case EventSectionChange:
		return "section-change"
	case EventSectionReveal:
		return "section-reveal"
	default:
		return "unknown"
	}
}

// PageEvent carries page data for the ECS bridge.
type PageEvent struct {
	Type    PageEventType
	Section Section
	// Change is valid for EventSectionChange.
	Change SectionChange
}

// SetEntityStore sets the optional ECS bridge, replacing any previous one.
// Passing nil detaches it.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.storeHandle.Remove()
	s.storeHandle = ChangeHandle{}
	s.store = store
	if store == nil {
		return
	}
	s.storeHandle = s.state.Nav.OnChange(func(c SectionChange) {
		store.EmitEvent(PageEvent{Type: EventSectionChange, Section: c.Section, Change: c})
	})
	if !s.revealHooked {
		s.revealHooked = true
		s.overlay.OnReveal(func(sec Section) {
			if s.store != nil {
				s.store.EmitEvent(PageEvent{Type: EventSectionReveal, Section: sec})
			}
		})
	}
}
