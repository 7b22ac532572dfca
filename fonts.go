package folio

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is the interface for text measurement and layout.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("folio: parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	// Compute line height from metrics
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Fonts holds the faces used by the content overlay and the tab bar.
type Fonts struct {
	Title Font
	Body  Font
	Tab   Font
}

// Default font sizes in pixels.
const (
	DefaultTitleSize = 48
	DefaultBodySize  = 19
	DefaultTabSize   = 14
)

// DefaultFonts loads the Go fonts bundled with golang.org/x/image: bold for
// titles, regular for body copy and tabs.
func DefaultFonts() (*Fonts, error) {
	title, err := LoadTTFFont(gobold.TTF, DefaultTitleSize)
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	body, err := LoadTTFFont(goregular.TTF, DefaultBodySize)
	if err != nil {
		return nil, fmt.Errorf("load body font: %w", err)
	}
	tab, err := LoadTTFFont(goregular.TTF, DefaultTabSize)
	if err != nil {
		return nil, fmt.Errorf("load tab font: %w", err)
	}
	return &Fonts{Title: title, Body: body, Tab: tab}, nil
}

// wrapText breaks s into lines no wider than width, splitting on spaces.
// A single word wider than width gets a line of its own. Explicit newlines
// are kept.
func wrapText(s string, f Font, width float64) []string {
	if f == nil || width <= 0 {
		return strings.Split(s, "\n")
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if cw, _ := f.MeasureString(candidate); cw > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// drawText draws s with its top-left corner at (x, y). Only TTF fonts can
// draw; other Font implementations measure but render nothing.
func drawText(dst *ebiten.Image, s string, f Font, x, y float64, c Color) {
	ttf, ok := f.(*TTFFont)
	if !ok || c.A <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(c.R*c.A),
		float32(c.G*c.A),
		float32(c.B*c.A),
		float32(c.A),
	)
	op.LineSpacing = ttf.lh
	text.Draw(dst, s, ttf.face, op)
}
