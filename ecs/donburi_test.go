package ecs

import (
	"testing"

	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []folio.PageEvent
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		received = append(received, e)
	})

	store.EmitEvent(folio.PageEvent{
		Type:    folio.EventSectionChange,
		Section: folio.Section{Index: 2, ID: "work"},
		Change:  folio.SectionChange{From: 0, To: 2, TargetCameraY: -24, ScrollOffset: 0.5},
	})
	store.EmitEvent(folio.PageEvent{
		Type:    folio.EventSectionReveal,
		Section: folio.Section{Index: 2, ID: "work"},
	})

	// Events are queued; process them.
	PageEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != folio.EventSectionChange || e0.Change.To != 2 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Change.TargetCameraY != -24 || e0.Change.ScrollOffset != 0.5 {
		t.Errorf("event 0 targets: (%v,%v)", e0.Change.TargetCameraY, e0.Change.ScrollOffset)
	}

	e1 := received[1]
	if e1.Type != folio.EventSectionReveal || e1.Section.ID != "work" {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store folio.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		count1++
	})
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		count2++
	})

	store.EmitEvent(folio.PageEvent{Type: folio.EventSectionChange})
	PageEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d count2=%d, want 1 and 1", count1, count2)
	}
}

func TestDonburiStore_NavigatorBridge(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	nav, err := folio.NewNavigator([]folio.Section{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 12, nil)
	if err != nil {
		t.Fatal(err)
	}
	nav.OnChange(func(c folio.SectionChange) {
		store.EmitEvent(folio.PageEvent{Type: folio.EventSectionChange, Section: c.Section, Change: c})
	})

	var got []int
	PageEventType.Subscribe(world, func(w donburi.World, e folio.PageEvent) {
		got = append(got, e.Change.To)
	})

	nav.GoTo(2)
	nav.GoTo(2) // no change, no event
	nav.GoTo(-1)
	PageEventType.ProcessEvents(world)

	if len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Errorf("got %v, want [2 0]", got)
	}
}
