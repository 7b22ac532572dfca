package folio

import (
	"math/rand/v2"
	"testing"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestNewPoolSize(t *testing.T) {
	p := NewPool(DefaultPoolConfig(), seededRand())
	if p.Len() != 24 {
		t.Fatalf("Len = %d, want 24", p.Len())
	}
	for i, o := range p.Objects() {
		if o.Speed != float64(i+1) {
			t.Errorf("object %d: Speed = %v, want %d", i, o.Speed, i+1)
		}
	}
}

func TestNewPoolScatter(t *testing.T) {
	cfg := DefaultPoolConfig()
	p := NewPool(cfg, seededRand())
	for i, o := range p.Objects() {
		s := i / cfg.PerSection
		slot := i % cfg.PerSection
		halfW := (cfg.ScatterX + float64(s)*cfg.ScatterXGrow) / 2
		if o.Position.X < -halfW || o.Position.X >= halfW {
			t.Errorf("object %d: x = %v outside ±%v", i, o.Position.X, halfW)
		}
		base := -float64(s) * cfg.Spacing
		if o.Position.Y < base || o.Position.Y >= base+cfg.ScatterY {
			t.Errorf("object %d: y = %v outside [%v, %v)", i, o.Position.Y, base, base+cfg.ScatterY)
		}
		zLo := cfg.DepthOffset - cfg.ScatterZ/2
		if o.Position.Z < zLo || o.Position.Z >= zLo+cfg.ScatterZ {
			t.Errorf("object %d: z = %v outside [%v, %v)", i, o.Position.Z, zLo, zLo+cfg.ScatterZ)
		}
		if want := decorShapes[slot%3]; o.Shape != want {
			t.Errorf("object %d: Shape = %d, want %d", i, o.Shape, want)
		}
		if want := cfg.Palette[(slot+s)%len(cfg.Palette)]; o.Color != want {
			t.Errorf("object %d: Color = %v, want %v", i, o.Color, want)
		}
	}
}

func TestNewPoolDeterministic(t *testing.T) {
	a := NewPool(DefaultPoolConfig(), seededRand())
	b := NewPool(DefaultPoolConfig(), seededRand())
	for i := range a.Objects() {
		if a.Objects()[i] != b.Objects()[i] {
			t.Fatalf("object %d differs: %+v vs %+v", i, a.Objects()[i], b.Objects()[i])
		}
	}
}

func TestPoolUpdateMotion(t *testing.T) {
	cfg := DefaultPoolConfig()
	p := NewPool(cfg, seededRand())
	before := append([]DecorObject(nil), p.Objects()...)
	// Camera low enough that nothing leaves the window this frame.
	p.Update(0.1, -12)
	for i, o := range p.Objects() {
		m := float64(i + 1)
		if !approxEqual(o.Rotation.X, cfg.RotX*0.1*m, epsilon) {
			t.Errorf("object %d: rot.x = %v", i, o.Rotation.X)
		}
		if !approxEqual(o.Rotation.Y, cfg.RotY*0.1*m, epsilon) {
			t.Errorf("object %d: rot.y = %v", i, o.Rotation.Y)
		}
		lo, hi := p.Window(-12)
		want := before[i].Position.Y - cfg.FallSpeed*0.1*m
		if want >= lo && want <= hi && !approxEqual(o.Position.Y, want, epsilon) {
			t.Errorf("object %d: y = %v, want %v", i, o.Position.Y, want)
		}
	}
}

func TestPoolRecycle(t *testing.T) {
	cfg := DefaultPoolConfig()
	cfg.Sections, cfg.PerSection = 1, 1
	cfg.ScatterY = 0
	cfg.FallSpeed = 10
	cfg.RespawnJitter = Range{}
	p := NewPool(cfg, seededRand())

	p.Update(2, 0)
	o := p.Objects()[0]
	if want := cfg.Spacing * cfg.RespawnAbove; o.Position.Y != want {
		t.Errorf("respawn y = %v, want %v", o.Position.Y, want)
	}
	if p.Recycled() != 1 {
		t.Errorf("Recycled = %d, want 1", p.Recycled())
	}
	if p.Len() != 1 {
		t.Errorf("Len = %d after recycle", p.Len())
	}
}

func TestPoolWindowInvariant(t *testing.T) {
	cfg := DefaultPoolConfig()
	p := NewPool(cfg, seededRand())
	cam := NewCamera(Rect{Width: 800, Height: 600}, DefaultCameraZ)

	check := func(phase string, frame int) {
		lo, hi := p.Window(cam.Position.Y)
		for i, o := range p.Objects() {
			if o.Position.Y < lo || o.Position.Y > hi {
				t.Fatalf("%s frame %d: object %d at y=%v outside [%v, %v]", phase, frame, i, o.Position.Y, lo, hi)
			}
		}
	}

	// Descend to the last section, then climb back to the first.
	for f := 0; f < 600; f++ {
		cam.Update(1.0/60, PointerSignal{}, -36)
		p.Update(1.0/60, cam.Position.Y)
		check("down", f)
	}
	for f := 0; f < 600; f++ {
		cam.Update(1.0/60, PointerSignal{}, 0)
		p.Update(1.0/60, cam.Position.Y)
		check("up", f)
	}
	if p.Len() != 24 {
		t.Errorf("Len = %d, want 24", p.Len())
	}
}

func TestPoolWindowAfterJump(t *testing.T) {
	p := NewPool(DefaultPoolConfig(), seededRand())
	for _, camY := range []float64{-100, 50, -3} {
		p.Update(1.0/60, camY)
		lo, hi := p.Window(camY)
		for i, o := range p.Objects() {
			if o.Position.Y < lo || o.Position.Y > hi {
				t.Errorf("camera %v: object %d at %v outside [%v, %v]", camY, i, o.Position.Y, lo, hi)
			}
		}
	}
}

func TestPoolNegativeDt(t *testing.T) {
	cfg := DefaultPoolConfig()
	p := NewPool(cfg, seededRand())
	p.Update(-1, -12)
	for i, o := range p.Objects() {
		if o.Rotation.X != 0 || o.Rotation.Y != 0 {
			t.Errorf("object %d rotated with negative dt", i)
		}
	}
}

func TestPoolEmptyPaletteUsesDefault(t *testing.T) {
	cfg := DefaultPoolConfig()
	cfg.Palette = nil
	p := NewPool(cfg, seededRand())
	if len(p.Config().Palette) != len(DefaultPalette) {
		t.Errorf("palette len = %d", len(p.Config().Palette))
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: 2, Max: 5}
	rng := seededRand()
	for i := 0; i < 100; i++ {
		v := r.Random(rng)
		if v < 2 || v >= 5 {
			t.Fatalf("Random = %v outside [2, 5)", v)
		}
	}
	if got := (Range{Min: 3, Max: 3}).Random(nil); got != 3 {
		t.Errorf("degenerate Random = %v, want 3", got)
	}
	if r.Span() != 3 {
		t.Errorf("Span = %v, want 3", r.Span())
	}
}
