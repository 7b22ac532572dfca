package folio

import (
	"math/rand/v2"
)

// State is everything the frame step mutates, with no rendering resources:
// navigation, camera, background scroll, hero, decorative pool and the
// input captured since the last frame. Scene wraps it for Ebitengine; tests
// drive it directly with a VirtualClock.
type State struct {
	Nav    *Navigator
	Camera *Camera
	Scroll *ScrollUniform
	Pool   *Pool
	Hero   *Hero
	Input  InputSignals

	wheel   *WheelDebouncer
	elapsed float64
	frames  uint64
}

// NewState builds the page state from cfg. clock drives the wheel debounce.
// A nil rng seeds one from cfg.Seed, or uses the global source when Seed is
// 0. scroller may be nil.
func NewState(cfg Config, clock Clock, rng *rand.Rand, scroller Scroller) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	nav, err := NewNavigator(cfg.PageSections(), cfg.SectionSpacing, scroller)
	if err != nil {
		return nil, err
	}
	if rng == nil && cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	cam := NewCamera(Rect{}, cfg.Camera.Z)
	cam.Damping = cfg.Camera.Damping
	cam.PointerX = cfg.Camera.PointerX
	cam.FOV = cfg.Camera.FOV

	scroll := NewScrollUniform()
	scroll.Rate = cfg.Background.ScrollRate

	hero := NewHero()
	hero.SpinX = cfg.Hero.SpinX
	hero.SpinY = cfg.Hero.SpinY

	return &State{
		Nav:    nav,
		Camera: cam,
		Scroll: scroll,
		Pool:   NewPool(cfg.PoolConfig(), rng),
		Hero:   hero,
		wheel:  NewWheelDebouncer(clock, cfg.Input.WheelQuiet),
	}, nil
}

// Wheel records a wheel event. The section step is committed by a later
// Step once the wheel has been quiet for the debounce period.
func (s *State) Wheel(deltaY float64) {
	s.wheel.Wheel(deltaY)
}

// WheelPending reports whether a wheel step is waiting to commit.
func (s *State) WheelPending() bool {
	return s.wheel.Pending()
}

// ClickTab requests section index for the next Step.
func (s *State) ClickTab(index int) {
	s.Input.request(index)
}

// MovePointer replaces the pointer signal.
func (s *State) MovePointer(p PointerSignal) {
	s.Input.Pointer = p
}

// Step advances the page by one frame: pending section requests are applied
// first, then the camera, background scroll, hero and pool are updated in
// that order. elapsed is the total running time in seconds and dt the time
// since the previous frame.
func (s *State) Step(elapsed, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if i, ok := s.Input.takeSection(); ok {
		s.Nav.GoTo(i)
	}
	if dir := s.wheel.Poll(); dir != 0 {
		s.Nav.GoTo(s.Nav.Current() + dir)
	}

	s.Camera.Update(dt, s.Input.Pointer, s.Nav.TargetCameraY())
	s.Scroll.Update(dt, s.Nav.ScrollOffset())
	s.Hero.Update(elapsed)
	s.Pool.Update(dt, s.Camera.Position.Y)

	s.elapsed = elapsed
	s.frames++
}

// Elapsed returns the elapsed time passed to the last Step.
func (s *State) Elapsed() float64 { return s.elapsed }

// Frames returns the number of steps taken.
func (s *State) Frames() uint64 { return s.frames }

// ApplyTuning copies cfg's tuning constants onto the live state. Section
// layout, pool size and scatter are fixed at construction and unaffected.
func (s *State) ApplyTuning(cfg Config) {
	s.Camera.Damping = cfg.Camera.Damping
	s.Camera.PointerX = cfg.Camera.PointerX
	if cfg.Camera.FOV != s.Camera.FOV {
		s.Camera.FOV = cfg.Camera.FOV
		s.Camera.dirty = true
	}
	s.Scroll.Rate = cfg.Background.ScrollRate
	s.Hero.SpinX = cfg.Hero.SpinX
	s.Hero.SpinY = cfg.Hero.SpinY
	s.wheel.SetQuiet(cfg.Input.WheelQuiet)

	pc := s.Pool.Config()
	pc.FallSpeed = cfg.Pool.FallSpeed
	pc.RotX = cfg.Pool.RotX
	pc.RotY = cfg.Pool.RotY
	pc.RecycleBelow = cfg.Pool.RecycleBelow
	pc.RespawnAbove = cfg.Pool.RespawnAbove
	pc.RespawnJitter = Range{Min: 0, Max: cfg.Pool.RespawnJitter}
}
