package folio

import (
	"math"
	"math/rand/v2"

	"github.com/golang/geo/r3"
)

// Shape selects the mesh used to draw a decorative object.
type Shape uint8

const (
	ShapeBox       Shape = iota // unit cube
	ShapeTorus                  // ring, radius 0.8, tube 0.25
	ShapeCone                   // radius 0.8, height 1.6
	ShapeIcosphere              // subdivided icosahedron (hero)
)

// decorShapes is the cycle used when scattering the pool.
var decorShapes = [...]Shape{ShapeBox, ShapeTorus, ShapeCone}

// DefaultPalette is the blue/purple palette decorative objects cycle through.
var DefaultPalette = []Color{
	ColorFromHex(0x3f51b5),
	ColorFromHex(0x5c6bc0),
	ColorFromHex(0x3949ab),
	ColorFromHex(0x6a1b9a),
	ColorFromHex(0x283593),
}

// DecorObject is one drifting mesh in the pool. Speed is fixed at
// construction from the object's pool slot and scales both its spin and its
// fall rate.
type DecorObject struct {
	Position r3.Vector
	Rotation r3.Vector // Euler angles in radians; only X and Y advance
	Speed    float64
	Shape    Shape
	Color    Color
}

// PoolConfig controls how the decorative field is scattered and animated.
type PoolConfig struct {
	// Sections and PerSection size the pool: Sections*PerSection objects.
	Sections   int
	PerSection int
	// Spacing is the vertical world distance between sections.
	Spacing float64

	// ScatterX is the base horizontal spread; ScatterXGrow widens it per section.
	ScatterX     float64
	ScatterXGrow float64
	// ScatterY is the vertical spread above each section's offset.
	ScatterY float64
	// ScatterZ is the depth spread, centered on DepthOffset.
	ScatterZ    float64
	DepthOffset float64

	// FallSpeed is world units per second at speed multiplier 1.
	FallSpeed float64
	// RotX and RotY are radians per second at speed multiplier 1.
	RotX, RotY float64

	// RecycleBelow is how many spacings below the camera an object may fall
	// before it is recycled; RespawnAbove is how many spacings above the
	// camera it reappears, plus RespawnJitter.
	RecycleBelow  float64
	RespawnAbove  float64
	RespawnJitter Range

	// Palette colors are assigned by (slot + section) modulo its length.
	Palette []Color
}

// DefaultPoolConfig returns the page's stock field: four sections of six
// objects, twelve units apart.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Sections:      4,
		PerSection:    6,
		Spacing:       12,
		ScatterX:      10,
		ScatterXGrow:  4,
		ScatterY:      6,
		ScatterZ:      14,
		DepthOffset:   -5,
		FallSpeed:     0.05,
		RotX:          0.1,
		RotY:          0.15,
		RecycleBelow:  1.2,
		RespawnAbove:  2,
		RespawnJitter: Range{Min: 0, Max: 5},
		Palette:       DefaultPalette,
	}
}

// Pool is a fixed set of decorative objects that flow downward through a
// window anchored to the camera. Objects are never created or destroyed
// after NewPool; leaving the window just moves them, so the field looks
// endless at any scroll depth with a constant object count.
type Pool struct {
	config   PoolConfig
	objects  []DecorObject
	rng      *rand.Rand
	recycled int
}

// NewPool scatters Sections*PerSection objects around their section offsets.
// A nil rng uses the top-level math/rand/v2 source.
func NewPool(cfg PoolConfig, rng *rand.Rand) *Pool {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	p := &Pool{
		config:  cfg,
		objects: make([]DecorObject, 0, max(cfg.Sections*cfg.PerSection, 0)),
		rng:     rng,
	}
	for s := 0; s < cfg.Sections; s++ {
		for i := 0; i < cfg.PerSection; i++ {
			slot := len(p.objects)
			width := cfg.ScatterX + float64(s)*cfg.ScatterXGrow
			p.objects = append(p.objects, DecorObject{
				Position: r3.Vector{
					X: (Range{Min: 0, Max: 1}.Random(rng) - 0.5) * width,
					Y: -float64(s)*cfg.Spacing + Range{Min: 0, Max: cfg.ScatterY}.Random(rng),
					Z: (Range{Min: 0, Max: 1}.Random(rng)-0.5)*cfg.ScatterZ + cfg.DepthOffset,
				},
				Speed: float64(slot + 1),
				Shape: decorShapes[i%len(decorShapes)],
				Color: cfg.Palette[(i+s)%len(cfg.Palette)],
			})
		}
	}
	return p
}

// Config returns a pointer to the pool's config for live tuning.
func (p *Pool) Config() *PoolConfig {
	return &p.config
}

// Objects returns the pool's objects. The returned slice MUST NOT be resized.
func (p *Pool) Objects() []DecorObject {
	return p.objects
}

// Len returns the number of objects in the pool.
func (p *Pool) Len() int {
	return len(p.objects)
}

// Recycled returns how many times objects have been respawned above the camera.
func (p *Pool) Recycled() int {
	return p.recycled
}

// Window returns the band [lo, hi] every object occupies after an Update
// with the given camera height.
func (p *Pool) Window(cameraY float64) (lo, hi float64) {
	c := &p.config
	lo = cameraY - c.Spacing*c.RecycleBelow
	hi = cameraY + c.Spacing*c.RespawnAbove + c.RespawnJitter.Max
	return lo, hi
}

// Update spins and drops every object by dt seconds scaled by its speed,
// then recycles any object that fell below the window back above the camera.
// Objects left above the window by a descending camera wrap down by the
// window height so the band stays populated in both directions.
func (p *Pool) Update(dt, cameraY float64) {
	if dt < 0 {
		dt = 0
	}
	c := &p.config
	lo, hi := p.Window(cameraY)
	span := hi - lo

	for i := range p.objects {
		o := &p.objects[i]
		m := o.Speed
		o.Rotation.X += c.RotX * dt * m
		o.Rotation.Y += c.RotY * dt * m
		o.Position.Y -= c.FallSpeed * dt * m

		if o.Position.Y < lo {
			o.Position.Y = cameraY + c.Spacing*c.RespawnAbove + c.RespawnJitter.Random(p.rng)
			p.recycled++
			continue
		}
		if o.Position.Y > hi && span > 0 {
			o.Position.Y -= math.Ceil((o.Position.Y-hi)/span) * span
		}
	}
}
