package folio

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// shotRequest is a queued capture. The section is recorded when the capture
// is requested, not when the frame is drawn.
type shotRequest struct {
	label   string
	section Section
}

// fileName builds "<stamp>_s<index>-<section id>[_<label>].png".
func (r shotRequest) fileName(stamp string) string {
	var b strings.Builder
	b.WriteString(stamp)
	fmt.Fprintf(&b, "_s%d", r.section.Index)
	if id := sanitizeLabel(r.section.ID); id != "" {
		b.WriteString("-")
		b.WriteString(id)
	}
	if label := sanitizeLabel(r.label); label != "" {
		b.WriteString("_")
		b.WriteString(label)
	}
	b.WriteString(".png")
	return b.String()
}

// Screenshot queues a PNG capture of the frame drawn at the end of this
// Update. The file lands in ScreenshotDir, named after the current section
// and the optional label.
func (s *Scene) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, shotRequest{
		label:   label,
		section: s.state.Nav.Section(s.state.Nav.Current()),
	})
}

// flushScreenshots writes every queued capture of screen. Called at the end
// of Scene.Draw.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	queue := s.screenshotQueue
	s.screenshotQueue = s.screenshotQueue[:0]

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		logger().Warn("screenshot: mkdir", "dir", s.ScreenshotDir, "err", err)
		return
	}
	img := readNRGBA(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, req := range queue {
		path := filepath.Join(s.ScreenshotDir, req.fileName(stamp))
		if err := writePNG(path, img); err != nil {
			logger().Warn("screenshot", "err", err)
			continue
		}
		logger().Info("screenshot saved", "path", path, "section", req.section.Index)
	}
}

// readNRGBA copies the screen's premultiplied pixels into a straight-alpha
// image.
func readNRGBA(screen *ebiten.Image) *image.NRGBA {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	return unpremultiply(pixels, w, h)
}

func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	n := min(len(pixels), len(img.Pix))
	for i := 0; i+3 < n; i += 4 {
		px := img.Pix[i : i+4 : i+4]
		copy(px, pixels[i:i+4])
		if a := int(px[3]); a > 0 && a < 255 {
			for c := 0; c < 3; c++ {
				px[c] = uint8(min(int(px[c])*255/a, 255))
			}
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces anything
// else with '_'. Blank input gives "".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
