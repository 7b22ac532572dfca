package folio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidget displays the current FPS and TPS in the top-left corner.
// The text is refreshed every ~0.5 seconds into a small cached image
// rendered with ebitenutil.DebugPrint.
type FPSWidget struct {
	img        *ebiten.Image
	lastUpdate float64
	op         ebiten.DrawImageOptions
}

// NewFPSWidget creates the widget's backing image.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSWidget{img: ebiten.NewImage(100, 32), lastUpdate: 0.5}
}

// Update refreshes the readout when half a second has passed.
func (w *FPSWidget) Update(dt float64) {
	w.lastUpdate += dt
	if w.lastUpdate < 0.5 {
		return
	}
	w.lastUpdate = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw copies the readout to the top-left corner of dst.
func (w *FPSWidget) Draw(dst *ebiten.Image) {
	w.op.GeoM.Reset()
	w.op.GeoM.Translate(8, 8)
	dst.DrawImage(w.img, &w.op)
}
