package folio

import (
	"math"

	"github.com/golang/geo/r3"
)

// Triangle is one face in local space, wound counter-clockwise when seen
// from outside the solid.
type Triangle struct {
	A, B, C r3.Vector
}

// Normal returns the unit face normal.
func (t Triangle) Normal() r3.Vector {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	if n.Norm2() == 0 {
		return r3.Vector{}
	}
	return n.Normalize()
}

// Centroid returns the average of the three corners.
func (t Triangle) Centroid() r3.Vector {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3)
}

// Geometry is an immutable closed triangle mesh shared by every object of
// the same Shape.
type Geometry struct {
	Tris []Triangle
}

// quad appends two triangles for the quad a-b-c-d (counter-clockwise).
func (g *Geometry) quad(a, b, c, d r3.Vector) {
	g.Tris = append(g.Tris, Triangle{a, b, c}, Triangle{a, c, d})
}

// NewBoxGeometry builds an axis-aligned cube of the given edge length
// centered on the origin.
func NewBoxGeometry(size float64) *Geometry {
	h := size / 2
	v := func(x, y, z float64) r3.Vector { return r3.Vector{X: x * h, Y: y * h, Z: z * h} }
	g := &Geometry{Tris: make([]Triangle, 0, 12)}
	g.quad(v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1))     // +z
	g.quad(v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)) // -z
	g.quad(v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1))     // +x
	g.quad(v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)) // -x
	g.quad(v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1))     // +y
	g.quad(v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)) // -y
	return g
}

// NewTorusGeometry builds a torus in the XY plane with the given ring radius
// and tube radius.
func NewTorusGeometry(radius, tube float64, radialSegs, tubularSegs int) *Geometry {
	radialSegs = max(radialSegs, 3)
	tubularSegs = max(tubularSegs, 3)
	point := func(i, j int) r3.Vector {
		u := float64(j) / float64(tubularSegs) * 2 * math.Pi
		v := float64(i) / float64(radialSegs) * 2 * math.Pi
		r := radius + tube*math.Cos(v)
		return r3.Vector{X: r * math.Cos(u), Y: r * math.Sin(u), Z: tube * math.Sin(v)}
	}
	g := &Geometry{Tris: make([]Triangle, 0, radialSegs*tubularSegs*2)}
	for i := 0; i < radialSegs; i++ {
		for j := 0; j < tubularSegs; j++ {
			g.quad(point(i, j), point(i, j+1), point(i+1, j+1), point(i+1, j))
		}
	}
	return g
}

// NewConeGeometry builds a capped cone with its axis on Y, centered on the
// origin.
func NewConeGeometry(radius, height float64, segments int) *Geometry {
	segments = max(segments, 3)
	apex := r3.Vector{Y: height / 2}
	base := r3.Vector{Y: -height / 2}
	rim := func(k int) r3.Vector {
		a := float64(k) / float64(segments) * 2 * math.Pi
		return r3.Vector{X: radius * math.Sin(a), Y: -height / 2, Z: radius * math.Cos(a)}
	}
	g := &Geometry{Tris: make([]Triangle, 0, segments*2)}
	for k := 0; k < segments; k++ {
		p0, p1 := rim(k), rim(k+1)
		g.Tris = append(g.Tris, Triangle{p0, p1, apex}, Triangle{p1, p0, base})
	}
	return g
}

// NewIcosphereGeometry builds an icosahedron of the given radius whose faces
// are split detail times, each split pushing new midpoints onto the sphere.
func NewIcosphereGeometry(radius float64, detail int) *Geometry {
	t := (1 + math.Sqrt(5)) / 2
	v := []r3.Vector{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	faces := [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	onSphere := func(p r3.Vector) r3.Vector { return p.Normalize().Mul(radius) }

	tris := make([]Triangle, 0, 20)
	for _, f := range faces {
		tris = append(tris, Triangle{onSphere(v[f[0]]), onSphere(v[f[1]]), onSphere(v[f[2]])})
	}
	for d := 0; d < detail; d++ {
		next := make([]Triangle, 0, len(tris)*4)
		for _, tr := range tris {
			ab := onSphere(tr.A.Add(tr.B).Mul(0.5))
			bc := onSphere(tr.B.Add(tr.C).Mul(0.5))
			ca := onSphere(tr.C.Add(tr.A).Mul(0.5))
			next = append(next,
				Triangle{tr.A, ab, ca},
				Triangle{tr.B, bc, ab},
				Triangle{tr.C, ca, bc},
				Triangle{ab, bc, ca},
			)
		}
		tris = next
	}
	return &Geometry{Tris: tris}
}

// defaultGeometries returns the stock mesh for each Shape.
func defaultGeometries(heroRadius float64, heroDetail int) map[Shape]*Geometry {
	return map[Shape]*Geometry{
		ShapeBox:       NewBoxGeometry(1),
		ShapeTorus:     NewTorusGeometry(0.8, 0.25, 12, 24),
		ShapeCone:      NewConeGeometry(0.8, 1.6, 24),
		ShapeIcosphere: NewIcosphereGeometry(heroRadius, heroDetail),
	}
}

// rotateXY applies Euler rotation in XYZ order with a zero Z angle: the
// point is turned about Y first, then about X.
func rotateXY(p r3.Vector, rx, ry float64) r3.Vector {
	sy, cy := math.Sincos(ry)
	x := p.X*cy + p.Z*sy
	z := -p.X*sy + p.Z*cy
	sx, cx := math.Sincos(rx)
	y := p.Y*cx - z*sx
	z = p.Y*sx + z*cx
	return r3.Vector{X: x, Y: y, Z: z}
}
