package folio

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenValue, TweenReveal) and call Update(dt)
// each frame. The group writes values straight into the target fields.
//
// There is no global animation manager; owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// add registers one more field, animating from its current value to `to`.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	if g == nil || g.Done {
		return
	}
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(1 << 20)
		*g.fields[i] = float64(val)
	}
	g.Done = true
}

// TweenValue creates a TweenGroup that animates *field to the target value
// over the specified duration using the easing function.
func TweenValue(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(field, to, duration, fn)
	return g
}

// TweenReveal creates a TweenGroup that fades a panel in (Alpha to 1) while
// sliding it up into place (Shift to 0).
func TweenReveal(p *Panel, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&p.Alpha, 1, duration, fn)
	g.add(&p.Shift, 0, duration, fn)
	return g
}
