package folio

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func BenchmarkStateStep(b *testing.B) {
	s, clock := newTestScene(b, SceneOptions{})
	st := s.State()
	st.ClickTab(3)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		clock.Advance(frameDT)
		st.Step(clock.Elapsed().Seconds(), frameDT.Seconds())
	}
}

func BenchmarkSceneDraw(b *testing.B) {
	s, clock := newTestScene(b, SceneOptions{})
	screen := ebiten.NewImage(1280, 720)
	s.SetViewport(1280, 720)
	runFrames(s, clock, 1)
	s.Draw(screen) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		runFrames(s, clock, 1)
		s.Draw(screen)
	}
}

func BenchmarkMeshRendererHero(b *testing.B) {
	r := NewMeshRenderer(defaultGeometries(DefaultHeroRadius, 3), DefaultLighting())
	cam := NewCamera(Rect{Width: 1280, Height: 720}, DefaultCameraZ)
	hero := NewHero()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hero.Update(float64(i) / 60)
		r.Begin()
		r.Add(cam, ShapeIcosphere, hero.Position, hero.Rotation, hero.Material)
	}
}
