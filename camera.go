package folio

import (
	"math"

	"github.com/golang/geo/r3"
)

// Camera defaults.
const (
	DefaultDamping    = 5.0  // exponential decay rate per second
	DefaultFOV        = 60.0 // vertical field of view in degrees
	DefaultNear       = 0.1
	DefaultFar        = 200.0
	DefaultCameraZ    = 8.0
	pointerYInfluence = 0.5
)

// Camera is a perspective camera that glides toward the current section's
// height, offset by the pointer. It always looks at a point at its own
// height on the Z axis, so the horizon stays level at any vertical offset.
type Camera struct {
	// Position is the eye position in world space. Set it directly only for
	// initial placement; Update owns it afterwards.
	Position r3.Vector
	// Damping is the decay rate k in 1 - e^(-k*dt). Higher is snappier.
	Damping float64
	// PointerX scales the horizontal pointer offset (NDC) into world units.
	PointerX float64
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far are the clip distances along the view direction.
	Near, Far float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	lookAt  r3.Vector
	right   r3.Vector
	up      r3.Vector
	forward r3.Vector
	focal   float64
	dirty   bool
}

// NewCamera creates a camera at (0, 0, z) with default optics.
func NewCamera(viewport Rect, z float64) *Camera {
	c := &Camera{
		Position: r3.Vector{X: 0, Y: 0, Z: z},
		Damping:  DefaultDamping,
		PointerX: 1,
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
		Viewport: viewport,
	}
	c.aim()
	return c
}

// Update moves the camera toward (pointer.X*PointerX, pointer.Y*0.5+targetY)
// with exponential smoothing over dt seconds, then re-aims it. The blend
// factor depends only on elapsed time, so many small steps and a few large
// ones covering the same span land in the same place. dt <= 0 is a no-op.
func (c *Camera) Update(dt float64, pointer PointerSignal, targetY float64) {
	if dt <= 0 {
		return
	}
	a := dampFactor(c.Damping, dt)
	goalX := pointer.X * c.PointerX
	goalY := pointer.Y*pointerYInfluence + targetY
	c.Position.X += (goalX - c.Position.X) * a
	c.Position.Y += (goalY - c.Position.Y) * a
	c.aim()
}

// dampFactor returns 1 - e^(-k*dt), the fraction of the remaining distance
// covered in dt seconds.
func dampFactor(k, dt float64) float64 {
	if k <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-k*dt)
}

// Snap places the camera at p immediately, bypassing smoothing.
func (c *Camera) Snap(p r3.Vector) {
	c.Position = p
	c.aim()
}

// SetViewport updates the render rectangle, and with it the aspect ratio.
func (c *Camera) SetViewport(r Rect) {
	if r != c.Viewport {
		c.Viewport = r
		c.dirty = true
	}
}

// Aspect returns the viewport width over height, or 1 for a degenerate viewport.
func (c *Camera) Aspect() float64 {
	if c.Viewport.Height <= 0 || c.Viewport.Width <= 0 {
		return 1
	}
	return c.Viewport.Width / c.Viewport.Height
}

// LookAt returns the point the camera is aimed at.
func (c *Camera) LookAt() r3.Vector {
	return c.lookAt
}

// aim points the camera at (0, y, 0).
func (c *Camera) aim() {
	c.lookAt = r3.Vector{X: 0, Y: c.Position.Y, Z: 0}
	c.dirty = true
}

// computeBasis recomputes the cached view basis if dirty.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	worldUp := r3.Vector{X: 0, Y: 1, Z: 0}
	f := c.lookAt.Sub(c.Position)
	if f.Norm2() == 0 {
		f = r3.Vector{X: 0, Y: 0, Z: -1}
	}
	c.forward = f.Normalize()
	c.right = c.forward.Cross(worldUp).Normalize()
	c.up = c.right.Cross(c.forward)
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
}

// ToView transforms a world point into camera space: x right, y up, and z
// the distance along the view direction.
func (c *Camera) ToView(p r3.Vector) r3.Vector {
	c.computeBasis()
	d := p.Sub(c.Position)
	return r3.Vector{X: d.Dot(c.right), Y: d.Dot(c.up), Z: d.Dot(c.forward)}
}

// ViewDir returns the unit view direction.
func (c *Camera) ViewDir() r3.Vector {
	c.computeBasis()
	return c.forward
}

// Project maps a world point to screen coordinates. ok is false when the
// point lies outside the near/far range.
func (c *Camera) Project(p r3.Vector) (sx, sy, depth float64, ok bool) {
	v := c.ToView(p)
	return c.projectView(v)
}

// projectView maps a camera-space point to screen coordinates.
func (c *Camera) projectView(v r3.Vector) (sx, sy, depth float64, ok bool) {
	if v.Z < c.Near || v.Z > c.Far {
		return 0, 0, v.Z, false
	}
	ndcX := c.focal / c.Aspect() * v.X / v.Z
	ndcY := c.focal * v.Y / v.Z
	sx = c.Viewport.X + (ndcX+1)/2*c.Viewport.Width
	sy = c.Viewport.Y + (1-ndcY)/2*c.Viewport.Height
	return sx, sy, v.Z, true
}
