package folio

import "github.com/hajimehoshi/ebiten/v2"

const (
	tabRightMargin = 40.0
	tabGap         = 20.0
	tabPad         = 4.0
)

var (
	tabColor       = ColorFromHex(0x6f83ff)
	tabActiveColor = ColorFromHex(0xd6e2ff)
)

// TabBar is the column of section buttons pinned to the right edge and
// centered vertically. It only lays out, hit-tests and draws; clicks are
// turned into section requests by the caller.
type TabBar struct {
	labels []string
	font   Font
	rects  []Rect
	active int
}

// NewTabBar creates a button per section, labelled with its title. font may
// be nil, in which case every button is a fixed 80x16 box.
func NewTabBar(sections []Section, font Font) *TabBar {
	t := &TabBar{
		labels: make([]string, len(sections)),
		font:   font,
		rects:  make([]Rect, len(sections)),
	}
	for i, s := range sections {
		t.labels[i] = s.Title
	}
	return t
}

func (t *TabBar) measure(s string) (w, h float64) {
	if t.font == nil {
		return 80, 16
	}
	return t.font.MeasureString(s)
}

// Layout positions the buttons for a w*h viewport.
func (t *TabBar) Layout(w, h float64) {
	var colW, colH float64
	for i, l := range t.labels {
		bw, bh := t.measure(l)
		t.rects[i] = Rect{Width: bw + 2*tabPad, Height: bh + 2*tabPad}
		colW = max(colW, t.rects[i].Width)
		colH += t.rects[i].Height
	}
	if n := len(t.labels); n > 1 {
		colH += tabGap * float64(n-1)
	}
	x := w - tabRightMargin - colW
	y := h/2 - colH/2
	for i := range t.rects {
		t.rects[i].X = x
		t.rects[i].Y = y
		t.rects[i].Width = colW
		y += t.rects[i].Height + tabGap
	}
}

// SetActive highlights the button for section i.
func (t *TabBar) SetActive(i int) {
	t.active = i
}

// Rect returns the screen rectangle of button i.
func (t *TabBar) Rect(i int) Rect {
	return t.rects[clampInt(i, 0, len(t.rects)-1)]
}

// HitTest returns the index of the button containing (x, y).
func (t *TabBar) HitTest(x, y float64) (int, bool) {
	for i, r := range t.rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Draw renders the labels centered in their buttons.
func (t *TabBar) Draw(dst *ebiten.Image) {
	if t.font == nil {
		return
	}
	for i, r := range t.rects {
		lw, lh := t.measure(t.labels[i])
		c := tabColor
		if i == t.active {
			c = tabActiveColor
		}
		drawText(dst, t.labels[i], t.font, r.X+(r.Width-lw)/2, r.Y+(r.Height-lh)/2, c)
	}
}

// SetLabel replaces the label of button i. Call Layout afterwards.
func (t *TabBar) SetLabel(i int, label string) {
	if i >= 0 && i < len(t.labels) {
		t.labels[i] = label
	}
}
