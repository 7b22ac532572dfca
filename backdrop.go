package folio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// backdropShaderSrc is the default full-screen background: two interfering
// sine fields tinted by a slowly cycling palette, shifted vertically by
// Scroll and darkened toward the edges.
const backdropShaderSrc = `//kage:unit pixels
package main

var Time float
var Scroll float
var Resolution vec2

func noise(p vec2) float {
	return sin(p.x) * sin(p.y)
}

func palette(t float) vec3 {
	a := vec3(0.03, 0.04, 0.08)
	b := vec3(0.08, 0.05, 0.18)
	c := vec3(0.15, 0.08, 0.28)
	d := vec3(0.05, 0.18, 0.35)
	return mix(mix(a, b, sin(t)*0.5+0.5), mix(c, d, cos(t*0.7)*0.5+0.5), 0.5)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := vec2(dstPos.x/Resolution.x, 1.0-dstPos.y/Resolution.y)*2.0 - 1.0
	t := Time * 0.15
	p := uv + vec2(0.0, Scroll*4.0)

	n := noise(p*4.0+t) + noise(p*6.0-t*1.3)
	n *= 0.5

	vignette := 1.0 - smoothstep(0.2, 1.2, length(uv))
	col := palette(n+t+Scroll*2.0) * vignette
	return vec4(col, 1.0)
}
`

// Backdrop draws a full-screen Kage shader and carries its uniforms. It only
// transports Time, Scroll and Resolution; the look lives in the shader.
type Backdrop struct {
	shader   *ebiten.Shader
	uniforms map[string]any
	resF32   [2]float32 // persistent buffer
	resSlice []float32  // persistent slice header pointing into resF32
	shaderOp ebiten.DrawRectShaderOptions
}

// NewBackdrop compiles the default background shader.
func NewBackdrop() (*Backdrop, error) {
	return NewBackdropFromSource([]byte(backdropShaderSrc))
}

// NewBackdropFromSource compiles a custom Kage background. The shader may
// declare any of the float uniforms Time and Scroll and the vec2 Resolution.
func NewBackdropFromSource(src []byte) (*Backdrop, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile backdrop shader: %w", err)
	}
	b := &Backdrop{
		shader:   s,
		uniforms: make(map[string]any, 3),
	}
	b.resSlice = b.resF32[:]
	b.uniforms["Resolution"] = b.resSlice
	b.uniforms["Time"] = float32(0)
	b.uniforms["Scroll"] = float32(0)
	return b, nil
}

// SetUniforms stores the elapsed time and the smoothed scroll value for the
// next Draw.
func (b *Backdrop) SetUniforms(elapsed, scroll float64) {
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	b.uniforms["Time"] = float32(elapsed)
	b.uniforms["Scroll"] = float32(scroll)
}

// Uniform returns the current value of a named uniform, or nil.
func (b *Backdrop) Uniform(name string) any {
	return b.uniforms[name]
}

// Draw fills dst with the shader output. Resolution follows dst's size, so
// viewport changes need no extra bookkeeping.
func (b *Backdrop) Draw(dst *ebiten.Image) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}
	b.resF32[0] = float32(w)
	b.resF32[1] = float32(h)
	b.shaderOp.Uniforms = b.uniforms
	dst.DrawRectShader(w, h, b.shader, &b.shaderOp)
}

// Dispose releases the compiled shader.
func (b *Backdrop) Dispose() {
	if b.shader != nil {
		b.shader.Deallocate()
		b.shader = nil
	}
}
