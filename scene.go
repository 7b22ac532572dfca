package folio

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneOptions supplies the collaborators a Scene would otherwise create
// itself. The zero value is ready for a real window.
type SceneOptions struct {
	// Clock drives frame timing and the wheel debounce. Nil uses a
	// SystemClock started at construction.
	Clock Clock
	// Rand scatters the decorative pool. Nil seeds from Config.Seed.
	Rand *rand.Rand
	// BackdropSource replaces the built-in Kage background. It takes
	// precedence over Config.Background.Shader.
	BackdropSource []byte
	// Fonts for the overlay and tab bar. Nil loads DefaultFonts.
	Fonts *Fonts
	// Lighting replaces DefaultLighting.
	Lighting *Lighting
	// Reload delivers replacement configs, typically from WatchConfig.
	Reload <-chan Config
}

// clearColor is painted under the backdrop in case the shader leaves gaps.
var clearColor = color.RGBA{R: 0x05, G: 0x07, B: 0x10, A: 0xff}

// Scene is the frame orchestrator and an ebiten.Game. Each Update samples
// the clock once, applies captured input and steps the State; each Draw
// submits the backdrop, the meshes, then the overlay and tab bar.
type Scene struct {
	cfg   Config
	state *State
	timer frameTimer

	backdrop *Backdrop
	meshes   *MeshRenderer
	overlay  *Overlay
	tabs     *TabBar
	fps      *FPSWidget

	viewport                 Rect
	lastCursorX, lastCursorY float64

	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []shotRequest
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	store        EntityStore
	storeHandle  ChangeHandle
	revealHooked bool

	reload <-chan Config
	debug  bool
	stats  debugStats
}

// NewScene builds the page described by cfg. A background shader that
// cannot be read or compiled, or fonts that fail to load, are fatal:
// NewScene returns the error and no Scene.
func NewScene(cfg Config, opts SceneOptions) (*Scene, error) {
	clock := opts.Clock
	if clock == nil {
		clock = NewSystemClock()
	}

	var (
		backdrop *Backdrop
		err      error
	)
	src := opts.BackdropSource
	if src == nil && cfg.Background.Shader != "" {
		if src, err = os.ReadFile(cfg.Background.Shader); err != nil {
			return nil, fmt.Errorf("new scene: read background shader: %w", err)
		}
	}
	if src != nil {
		backdrop, err = NewBackdropFromSource(src)
	} else {
		backdrop, err = NewBackdrop()
	}
	if err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}

	fonts := opts.Fonts
	if fonts == nil {
		if fonts, err = DefaultFonts(); err != nil {
			backdrop.Dispose()
			return nil, fmt.Errorf("new scene: %w", err)
		}
	}

	sections := cfg.PageSections()
	overlay := NewOverlay(sections, cfg.RevealConfig(), fonts)
	state, err := NewState(cfg, clock, opts.Rand, overlay)
	if err != nil {
		backdrop.Dispose()
		return nil, fmt.Errorf("new scene: %w", err)
	}

	lighting := DefaultLighting()
	if opts.Lighting != nil {
		lighting = *opts.Lighting
	}

	s := &Scene{
		cfg:           cfg,
		state:         state,
		timer:         frameTimer{clock: clock},
		backdrop:      backdrop,
		meshes:        NewMeshRenderer(defaultGeometries(cfg.Hero.Radius, cfg.Hero.Detail), lighting),
		overlay:       overlay,
		tabs:          NewTabBar(sections, fonts.Tab),
		ScreenshotDir: "screenshots",
		reload:        opts.Reload,
	}
	return s, nil
}

// State returns the scene's frame state.
func (s *Scene) State() *State { return s.state }

// Overlay returns the section content overlay.
func (s *Scene) Overlay() *Overlay { return s.overlay }

// Tabs returns the tab bar.
func (s *Scene) Tabs() *TabBar { return s.tabs }

// Backdrop returns the background shader driver.
func (s *Scene) Backdrop() *Backdrop { return s.backdrop }

// Meshes returns the mesh renderer, whose Lighting may be tuned live.
func (s *Scene) Meshes() *MeshRenderer { return s.meshes }

// Config returns the config currently in effect.
func (s *Scene) Config() Config { return s.cfg }

// Update implements ebiten.Game.
func (s *Scene) Update() error {
	s.update(true)
	return nil
}

// update runs one frame. An injected event, when queued, replaces device
// input for the frame; devices are not read at all when readDevices is
// false.
func (s *Scene) update(readDevices bool) {
	elapsed, dt := s.timer.tick()
	s.drainReload()
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() && readDevices {
		s.processDeviceInput()
	}
	s.step(elapsed, dt)
	if s.fps != nil {
		s.fps.Update(dt)
	}
}

// Step advances the scene by dt seconds without touching devices or the
// clock. Input must already be captured in the State.
func (s *Scene) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.step(s.state.Elapsed()+dt, dt)
}

func (s *Scene) step(elapsed, dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.state.Step(elapsed, dt)
	s.overlay.Update(dt)
	s.tabs.SetActive(s.state.Nav.Current())
	s.backdrop.SetUniforms(elapsed, s.state.Scroll.Value)

	if s.debug {
		s.stats.stepTime = time.Since(t0)
		s.stats.objectCount = s.state.Pool.Len()
		s.stats.recycled = s.state.Pool.Recycled()
		debugCheckPoolWindow(s.state.Pool, s.state.Camera.Position.Y)
	}
}

// Draw implements ebiten.Game.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	screen.Fill(clearColor)
	s.backdrop.Draw(screen)
	if s.debug {
		s.stats.backdropTime = time.Since(t0)
		t0 = time.Now()
	}

	s.drawMeshes(screen)
	if s.debug {
		s.stats.meshTime = time.Since(t0)
		s.stats.faceCount = s.meshes.FaceCount
		t0 = time.Now()
	}

	s.overlay.Draw(screen)
	s.tabs.Draw(screen)
	if s.fps != nil {
		s.fps.Draw(screen)
	}
	if s.debug {
		s.stats.overlayTime = time.Since(t0)
		s.debugLog(s.stats)
	}

	s.flushScreenshots(screen)
}

// drawMeshes queues the hero and every pool object and flushes them back
// to front.
func (s *Scene) drawMeshes(screen *ebiten.Image) {
	cam := s.state.Camera
	hero := s.state.Hero
	s.meshes.Begin()
	s.meshes.Add(cam, ShapeIcosphere, hero.Position, hero.Rotation, hero.Material)
	for _, o := range s.state.Pool.Objects() {
		s.meshes.Add(cam, o.Shape, o.Position, o.Rotation, DecorMaterial(o.Color))
	}
	s.meshes.Flush(screen)
}

// Layout implements ebiten.Game. A size change updates the camera aspect,
// the overlay page height and the tab positions; the backdrop reads its
// Resolution from the screen at draw time.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// SetViewport resizes every viewport-dependent part of the scene.
func (s *Scene) SetViewport(w, h float64) {
	r := Rect{Width: w, Height: h}
	if r == s.viewport {
		return
	}
	s.viewport = r
	s.state.Camera.SetViewport(r)
	s.overlay.SetViewport(w, h)
	s.tabs.Layout(w, h)
}

// Viewport returns the current screen rectangle.
func (s *Scene) Viewport() Rect { return s.viewport }

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are logged at Debug level, the pool window invariant is
// checked every frame and the FPS readout is drawn.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled && s.fps == nil {
		s.fps = NewFPSWidget()
	} else if !enabled {
		s.fps = nil
	}
}

// drainReload applies the newest pending config, if any.
func (s *Scene) drainReload() {
	if s.reload == nil {
		return
	}
	var (
		cfg Config
		got bool
	)
drain:
	for {
		select {
		case c, ok := <-s.reload:
			if !ok {
				s.reload = nil
				break drain
			}
			cfg, got = c, true
		default:
			break drain
		}
	}
	if got {
		s.ApplyConfig(cfg)
	}
}

// ApplyConfig applies a replacement config to the running scene. Tuning
// always takes effect. Section text is replaced when the section count is
// unchanged; a different count needs a restart and is only logged.
func (s *Scene) ApplyConfig(cfg Config) {
	s.state.ApplyTuning(cfg)
	s.overlay.cfg = cfg.RevealConfig()

	if len(cfg.Sections) != s.state.Nav.Len() {
		logger().Warn("section count changed; restart to apply",
			"have", s.state.Nav.Len(), "want", len(cfg.Sections))
	} else {
		for i, sec := range cfg.Sections {
			s.state.Nav.SetText(i, sec.Title, sec.Body)
			s.overlay.SetText(i, sec.Title, sec.Body)
			s.tabs.SetLabel(i, sec.Title)
		}
		s.tabs.Layout(s.viewport.Width, s.viewport.Height)
	}
	s.cfg = cfg
}

// Dispose releases GPU resources held by the scene.
func (s *Scene) Dispose() {
	s.backdrop.Dispose()
}

// RunConfig holds optional configuration for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	Debug  bool
}

// Run opens a resizable window and runs the scene until it is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = scene.cfg.Title
	}
	scene.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(scene); err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	return nil
}
