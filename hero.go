package folio

import "github.com/golang/geo/r3"

// Hero defaults.
const (
	DefaultHeroRadius = 1.6
	DefaultHeroDetail = 1
	DefaultHeroSpinX  = 0.4 // radians per second
	DefaultHeroSpinY  = 0.6
)

// Hero is the centerpiece mesh at the origin. Its rotation is a pure
// function of elapsed time, so it never drifts regardless of frame timing.
type Hero struct {
	Position r3.Vector
	Rotation r3.Vector
	SpinX    float64
	SpinY    float64
	Material Material
}

// NewHero returns the default hero at the origin.
func NewHero() *Hero {
	return &Hero{
		SpinX:    DefaultHeroSpinX,
		SpinY:    DefaultHeroSpinY,
		Material: HeroMaterial(),
	}
}

// Update sets the rotation for the given elapsed time in seconds.
func (h *Hero) Update(elapsed float64) {
	h.Rotation.X = elapsed * h.SpinX
	h.Rotation.Y = elapsed * h.SpinY
}
