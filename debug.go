package folio

import (
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime     time.Duration
	backdropTime time.Duration
	meshTime     time.Duration
	overlayTime  time.Duration
	faceCount    int
	objectCount  int
	recycled     int
}

// debugLogInterval is the number of frames between stat lines.
const debugLogInterval = 60

// debugLog emits timing and draw stats at Debug level every
// debugLogInterval frames.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || s.state.Frames()%debugLogInterval != 0 {
		return
	}
	total := stats.stepTime + stats.backdropTime + stats.meshTime + stats.overlayTime
	logger().Debug("frame",
		"step", stats.stepTime,
		"backdrop", stats.backdropTime,
		"meshes", stats.meshTime,
		"overlay", stats.overlayTime,
		"total", total,
		"faces", stats.faceCount,
		"objects", stats.objectCount,
		"recycled", stats.recycled,
		"section", s.state.Nav.Current(),
		"camera_y", s.state.Camera.Position.Y,
		"scroll", s.state.Scroll.Value,
	)
}

// debugCheckPoolWindow warns when an object sits outside the pool's window
// after an update, which means the recycling invariant was broken.
func debugCheckPoolWindow(p *Pool, cameraY float64) {
	lo, hi := p.Window(cameraY)
	for i, o := range p.Objects() {
		if o.Position.Y < lo || o.Position.Y > hi {
			logger().Warn("pool object outside window",
				"slot", i, "y", o.Position.Y, "lo", lo, "hi", hi)
		}
	}
}
