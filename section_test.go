package folio

import (
	"errors"
	"testing"
)

type recordingScroller struct {
	calls []int
}

func (r *recordingScroller) ScrollIntoView(sec Section) {
	r.calls = append(r.calls, sec.Index)
}

func testSections(n int) []Section {
	secs := make([]Section, n)
	for i := range secs {
		secs[i] = Section{ID: string(rune('a' + i)), Title: string(rune('A' + i))}
	}
	return secs
}

func newTestNavigator(t *testing.T, n int, spacing float64) (*Navigator, *recordingScroller) {
	t.Helper()
	sc := &recordingScroller{}
	nav, err := NewNavigator(testSections(n), spacing, sc)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return nav, sc
}

func TestNewNavigatorErrors(t *testing.T) {
	if _, err := NewNavigator(nil, 12, nil); !errors.Is(err, ErrNoSections) {
		t.Errorf("empty sections: err = %v, want ErrNoSections", err)
	}
	for _, spacing := range []float64{0, -1} {
		if _, err := NewNavigator(testSections(2), spacing, nil); !errors.Is(err, ErrBadSpacing) {
			t.Errorf("spacing %v: err = %v, want ErrBadSpacing", spacing, err)
		}
	}
}

func TestNavigatorStartsAtFirstSection(t *testing.T) {
	nav, _ := newTestNavigator(t, 4, 12)
	if nav.Current() != 0 || nav.TargetCameraY() != 0 || nav.ScrollOffset() != 0 {
		t.Errorf("start = (%d, %v, %v), want (0, 0, 0)", nav.Current(), nav.TargetCameraY(), nav.ScrollOffset())
	}
}

func TestNavigatorRewritesIndices(t *testing.T) {
	secs := testSections(3)
	for i := range secs {
		secs[i].Index = 99
	}
	nav, err := NewNavigator(secs, 12, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range nav.Sections() {
		if s.Index != i {
			t.Errorf("section %d has Index %d", i, s.Index)
		}
	}
	if secs[1].Index != 99 {
		t.Error("caller's slice was modified")
	}
}

func TestNavigatorGoToTargets(t *testing.T) {
	nav, sc := newTestNavigator(t, 4, 12)
	nav.GoTo(2)
	if nav.Current() != 2 {
		t.Errorf("Current = %d, want 2", nav.Current())
	}
	if nav.TargetCameraY() != -24 {
		t.Errorf("TargetCameraY = %v, want -24", nav.TargetCameraY())
	}
	if nav.ScrollOffset() != 0.5 {
		t.Errorf("ScrollOffset = %v, want 0.5", nav.ScrollOffset())
	}
	if len(sc.calls) != 1 || sc.calls[0] != 2 {
		t.Errorf("scroller calls = %v, want [2]", sc.calls)
	}
}

func TestNavigatorGoToClamps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{-1, 0},
		{0, 0},
		{3, 3},
		{4, 3},
		{100, 3},
	}
	for _, tt := range tests {
		nav, sc := newTestNavigator(t, 4, 12)
		nav.GoTo(tt.in)
		if got := nav.Current(); got != tt.want {
			t.Errorf("GoTo(%d): Current = %d, want %d", tt.in, got, tt.want)
		}
		if want := -float64(tt.want) * 12; nav.TargetCameraY() != want {
			t.Errorf("GoTo(%d): TargetCameraY = %v, want %v", tt.in, nav.TargetCameraY(), want)
		}
		if len(sc.calls) != 1 || sc.calls[0] != tt.want {
			t.Errorf("GoTo(%d): scroller got %v, want [%d]", tt.in, sc.calls, tt.want)
		}
	}
}

func TestNavigatorGoToIdempotent(t *testing.T) {
	nav, sc := newTestNavigator(t, 4, 12)
	nav.GoTo(1)
	y, off := nav.TargetCameraY(), nav.ScrollOffset()

	var changes int
	nav.OnChange(func(SectionChange) { changes++ })
	nav.GoTo(1)
	nav.GoTo(1)

	if nav.TargetCameraY() != y || nav.ScrollOffset() != off {
		t.Errorf("targets changed: (%v, %v) -> (%v, %v)", y, off, nav.TargetCameraY(), nav.ScrollOffset())
	}
	if changes != 0 {
		t.Errorf("change handlers fired %d times, want 0", changes)
	}
	if len(sc.calls) != 3 {
		t.Errorf("scroller calls = %d, want 3", len(sc.calls))
	}
}

func TestNavigatorNextPrev(t *testing.T) {
	nav, _ := newTestNavigator(t, 3, 12)
	nav.Prev()
	if nav.Current() != 0 {
		t.Errorf("Prev at top: Current = %d", nav.Current())
	}
	nav.Next()
	nav.Next()
	nav.Next()
	if nav.Current() != 2 {
		t.Errorf("Next past bottom: Current = %d, want 2", nav.Current())
	}
	nav.Prev()
	if nav.Current() != 1 {
		t.Errorf("Prev: Current = %d, want 1", nav.Current())
	}
}

func TestNavigatorOnChange(t *testing.T) {
	nav, _ := newTestNavigator(t, 4, 12)
	var got []SectionChange
	h := nav.OnChange(func(c SectionChange) { got = append(got, c) })

	nav.GoTo(3)
	if len(got) != 1 {
		t.Fatalf("got %d changes, want 1", len(got))
	}
	c := got[0]
	if c.From != 0 || c.To != 3 || c.Section.Index != 3 || c.TargetCameraY != -36 || c.ScrollOffset != 0.75 {
		t.Errorf("change = %+v", c)
	}

	h.Remove()
	nav.GoTo(0)
	if len(got) != 1 {
		t.Errorf("handler fired after Remove")
	}
}

func TestNavigatorRemoveOneOfMany(t *testing.T) {
	nav, _ := newTestNavigator(t, 4, 12)
	var a, b, c int
	nav.OnChange(func(SectionChange) { a++ })
	hb := nav.OnChange(func(SectionChange) { b++ })
	nav.OnChange(func(SectionChange) { c++ })
	hb.Remove()
	hb.Remove()
	nav.GoTo(1)
	if a != 1 || b != 0 || c != 1 {
		t.Errorf("counts = (%d, %d, %d), want (1, 0, 1)", a, b, c)
	}
	ChangeHandle{}.Remove()
}

func TestNavigatorRemoveDuringDispatch(t *testing.T) {
	nav, _ := newTestNavigator(t, 4, 12)
	var once, b, c int
	var h ChangeHandle
	h = nav.OnChange(func(SectionChange) {
		once++
		h.Remove()
	})
	nav.OnChange(func(SectionChange) { b++ })
	nav.OnChange(func(SectionChange) { c++ })

	nav.GoTo(1)
	nav.GoTo(2)
	if once != 1 || b != 2 || c != 2 {
		t.Errorf("counts = (%d, %d, %d), want (1, 2, 2)", once, b, c)
	}
}

func TestNavigatorSectionClamps(t *testing.T) {
	nav, _ := newTestNavigator(t, 3, 12)
	if nav.Section(-1).Index != 0 || nav.Section(7).Index != 2 {
		t.Error("Section should clamp its index")
	}
	if nav.Section(1).Offset(nav.Spacing()) != -12 {
		t.Errorf("Offset = %v, want -12", nav.Section(1).Offset(nav.Spacing()))
	}
}

func TestNavigatorSetText(t *testing.T) {
	nav, _ := newTestNavigator(t, 2, 12)
	if !nav.SetText(1, "New", "body") {
		t.Fatal("SetText(1) = false")
	}
	if s := nav.Section(1); s.Title != "New" || s.Body != "body" || s.Index != 1 {
		t.Errorf("section = %+v", s)
	}
	if nav.SetText(2, "x", "y") || nav.SetText(-1, "x", "y") {
		t.Error("SetText out of range should report false")
	}
}

func TestNavigatorNilScroller(t *testing.T) {
	nav, err := NewNavigator(testSections(2), 12, nil)
	if err != nil {
		t.Fatal(err)
	}
	nav.GoTo(1)
	sc := &recordingScroller{}
	nav.SetScroller(sc)
	nav.GoTo(0)
	if len(sc.calls) != 1 || sc.calls[0] != 0 {
		t.Errorf("scroller calls = %v, want [0]", sc.calls)
	}
}
