package folio

import (
	"math"

	"github.com/golang/geo/r3"
)

// Material describes how a surface responds to light.
type Material struct {
	Color             Color
	Emissive          Color
	EmissiveIntensity float64
	// Metalness in [0, 1] trades diffuse response for specular highlights.
	Metalness float64
	// Roughness in (0, 1] widens and dims the highlight.
	Roughness float64
}

// DecorMaterial returns the glossy, faintly self-lit material used by the
// decorative pool for a palette color.
func DecorMaterial(c Color) Material {
	return Material{
		Color:             c,
		Emissive:          c,
		EmissiveIntensity: 0.12,
		Metalness:         0.85,
		Roughness:         0.25,
	}
}

// HeroMaterial returns the dark metallic material of the hero mesh.
func HeroMaterial() Material {
	return Material{
		Color:             ColorFromHex(0x1e2240),
		Emissive:          ColorFromHex(0x3a4bff),
		EmissiveIntensity: 0.25,
		Metalness:         0.9,
		Roughness:         0.25,
	}
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Position  r3.Vector
	Color     Color
	Intensity float64
}

// Lighting is the scene's light rig: a flat ambient term plus directional lights.
type Lighting struct {
	Ambient          Color
	AmbientIntensity float64
	Lights           []DirectionalLight
}

// DefaultLighting returns the cool ambient fill with a white key light and a
// blue rim light behind the field.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:          ColorFromHex(0x1c2545),
		AmbientIntensity: 0.7,
		Lights: []DirectionalLight{
			{Position: r3.Vector{X: 5, Y: 5, Z: 5}, Color: ColorFromHex(0xffffff), Intensity: 1.1},
			{Position: r3.Vector{X: -5, Y: -2, Z: -5}, Color: ColorFromHex(0x445bff), Intensity: 1.0},
		},
	}
}

// Shade returns the lit color of a flat face with unit normal n, seen along
// the unit direction toEye from the face to the camera.
func (l *Lighting) Shade(n, toEye r3.Vector, m Material) Color {
	diffuseWeight := 1 - 0.5*m.Metalness
	rough := m.Roughness
	if rough <= 0 {
		rough = 0.05
	}
	shininess := 2/(rough*rough) - 2
	if shininess < 1 {
		shininess = 1
	}
	specWeight := 0.04 + 0.96*m.Metalness

	out := m.Color.Mul(l.Ambient).Scale(l.AmbientIntensity)
	for _, light := range l.Lights {
		if light.Position.Norm2() == 0 {
			continue
		}
		dir := light.Position.Normalize()
		ndl := n.Dot(dir)
		if ndl <= 0 {
			continue
		}
		lc := light.Color.Scale(light.Intensity)
		out = out.Add(m.Color.Mul(lc).Scale(ndl * diffuseWeight))

		half := dir.Add(toEye)
		if half.Norm2() > 0 {
			ndh := math.Max(n.Dot(half.Normalize()), 0)
			spec := math.Pow(ndh, shininess) * specWeight
			out = out.Add(lc.Scale(spec))
		}
	}
	out = out.Add(m.Emissive.Scale(m.EmissiveIntensity))
	out.A = 1
	return out
}
