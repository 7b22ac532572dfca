package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// RevealConfig tunes the content overlay's transitions.
type RevealConfig struct {
	// Threshold is the fraction of the viewport height a section's top must
	// rise above before it is revealed.
	Threshold float64
	// Shift is the initial downward offset of a hidden panel in pixels.
	Shift float64
	// Duration is the reveal fade/slide time in seconds.
	Duration float32
	// ScrollDuration is the scroll-into-view time in seconds.
	ScrollDuration float32
}

// DefaultRevealConfig mirrors the page's CSS: reveal at 60% of the viewport,
// 40px slide, 0.8s transitions.
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		Threshold:      0.6,
		Shift:          40,
		Duration:       0.8,
		ScrollDuration: 0.8,
	}
}

// Overlay text colors.
var (
	titleColor = ColorFromHex(0xffffff)
	bodyColor  = ColorFromHex(0x9fb4ff)
)

const (
	panelLeft     = 0.15 // fraction of viewport width
	panelMaxWidth = 800.0
	panelGap      = 16.0 // between title and body
	bodySpacing   = 1.6  // body line height multiplier
)

// Panel is one section's content block. Alpha and Shift are driven by the
// reveal tween.
type Panel struct {
	Section Section
	Alpha   float64
	Shift   float64

	revealed bool
	tween    *TweenGroup

	lines    []string
	wrappedW float64
}

// Overlay lays the sections out as a vertical stack of viewport-tall pages
// and scrolls through them. It is the default Scroller: ScrollIntoView
// tweens the content offset so the requested section fills the viewport.
// Panels fade in the first time their top rises above the reveal threshold
// and never fade out again.
type Overlay struct {
	panels []Panel
	cfg    RevealConfig
	fonts  *Fonts

	viewW, viewH float64
	// ScrollY is the content offset in pixels; section i's top sits at
	// i*viewH - ScrollY.
	ScrollY     float64
	scrollTween *TweenGroup
	target      int

	onReveal []func(Section)
}

// NewOverlay creates a hidden panel per section. fonts may be nil, in which
// case the overlay tracks layout and reveal state but draws nothing.
func NewOverlay(sections []Section, cfg RevealConfig, fonts *Fonts) *Overlay {
	o := &Overlay{
		panels: make([]Panel, len(sections)),
		cfg:    cfg,
		fonts:  fonts,
	}
	for i, sec := range sections {
		o.panels[i] = Panel{Section: sec, Shift: cfg.Shift}
	}
	return o
}

// SetViewport updates the page size. The content offset snaps to the
// section being scrolled to so a resize never leaves the page between
// sections.
func (o *Overlay) SetViewport(w, h float64) {
	if w == o.viewW && h == o.viewH {
		return
	}
	o.viewW, o.viewH = w, h
	if o.scrollTween != nil {
		o.scrollTween.Done = true
	}
	o.ScrollY = float64(o.target) * h
	for i := range o.panels {
		o.panels[i].wrappedW = 0
	}
}

// ScrollIntoView starts a smooth scroll to sec. A new request replaces one
// in flight, starting from the current offset.
func (o *Overlay) ScrollIntoView(sec Section) {
	o.target = sec.Index
	to := float64(sec.Index) * o.viewH
	if o.cfg.ScrollDuration <= 0 {
		o.ScrollY = to
		o.scrollTween = nil
		return
	}
	o.scrollTween = TweenValue(&o.ScrollY, to, o.cfg.ScrollDuration, ease.InOutQuad)
}

// Scrolling reports whether a scroll-into-view is in flight.
func (o *Overlay) Scrolling() bool {
	return o.scrollTween != nil && !o.scrollTween.Done
}

// OnReveal registers a callback fired once per section when it is revealed.
func (o *Overlay) OnReveal(fn func(Section)) {
	o.onReveal = append(o.onReveal, fn)
}

// SectionTop returns the screen-space top of section i.
func (o *Overlay) SectionTop(i int) float64 {
	return float64(i)*o.viewH - o.ScrollY
}

// Revealed reports whether section i has been revealed.
func (o *Overlay) Revealed(i int) bool {
	if i < 0 || i >= len(o.panels) {
		return false
	}
	return o.panels[i].revealed
}

// Panel returns the panel for section i, or nil.
func (o *Overlay) Panel(i int) *Panel {
	if i < 0 || i >= len(o.panels) {
		return nil
	}
	return &o.panels[i]
}

// Update advances the scroll and reveal tweens by dt seconds and reveals
// every panel whose top has crossed the threshold.
func (o *Overlay) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	if o.scrollTween != nil {
		o.scrollTween.Update(float32(dt))
	}
	if o.viewH <= 0 {
		return
	}
	limit := o.viewH * o.cfg.Threshold
	for i := range o.panels {
		p := &o.panels[i]
		if !p.revealed && o.SectionTop(i) < limit {
			o.reveal(p)
		}
		if p.tween != nil {
			p.tween.Update(float32(dt))
		}
	}
}

func (o *Overlay) reveal(p *Panel) {
	p.revealed = true
	if o.cfg.Duration <= 0 {
		p.Alpha, p.Shift = 1, 0
	} else {
		p.tween = TweenReveal(p, o.cfg.Duration, ease.InOutQuad)
	}
	logger().Debug("section revealed", "id", p.Section.ID)
	for _, fn := range o.onReveal {
		fn(p.Section)
	}
}

// layout rewraps a panel's body when the viewport width changed.
func (o *Overlay) layout(p *Panel) {
	width := min(o.viewW*(1-panelLeft)-o.viewW*0.05, panelMaxWidth)
	if p.wrappedW == width && p.lines != nil {
		return
	}
	p.wrappedW = width
	var body Font
	if o.fonts != nil {
		body = o.fonts.Body
	}
	p.lines = wrapText(p.Section.Body, body, width)
}

// Draw renders every visible panel into dst.
func (o *Overlay) Draw(dst *ebiten.Image) {
	if o.fonts == nil || o.viewH <= 0 {
		return
	}
	titleLH := o.fonts.Title.LineHeight()
	bodyLH := o.fonts.Body.LineHeight() * bodySpacing
	x := o.viewW * panelLeft

	for i := range o.panels {
		p := &o.panels[i]
		top := o.SectionTop(i)
		if p.Alpha <= 0 || top >= o.viewH || top+o.viewH <= 0 {
			continue
		}
		o.layout(p)
		blockH := titleLH + panelGap + float64(len(p.lines))*bodyLH
		y := top + (o.viewH-blockH)/2 + p.Shift

		tc := titleColor
		tc.A = p.Alpha
		drawText(dst, p.Section.Title, o.fonts.Title, x, y, tc)
		y += titleLH + panelGap

		bc := bodyColor
		bc.A = p.Alpha
		for _, line := range p.lines {
			drawText(dst, line, o.fonts.Body, x, y+(bodyLH-o.fonts.Body.LineHeight())/2, bc)
			y += bodyLH
		}
	}
}

// SetText replaces the content of panel i and forces a rewrap.
func (o *Overlay) SetText(i int, title, body string) {
	p := o.Panel(i)
	if p == nil {
		return
	}
	p.Section.Title = title
	p.Section.Body = body
	p.lines = nil
}
