package folio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SectionConfig is one page section as written in the config file.
type SectionConfig struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// CameraConfig tunes the camera damping, pointer offset and projection.
type CameraConfig struct {
	Damping  float64 `yaml:"damping"`   // decay rate per second
	PointerX float64 `yaml:"pointer_x"` // world units per NDC unit
	FOV      float64 `yaml:"fov"`       // vertical, degrees
	Z        float64 `yaml:"z"`
}

// BackgroundConfig tunes the background scroll uniform and shader.
type BackgroundConfig struct {
	ScrollRate float64 `yaml:"scroll_rate"`
	// Shader is an optional path to a Kage source replacing the built-in
	// background. LoadConfig resolves a relative path against the config
	// file's directory.
	Shader string `yaml:"shader,omitempty"`
}

// PoolSettings sizes the decorative pool and controls its scatter and recycling.
type PoolSettings struct {
	PerSection    int      `yaml:"per_section"`
	ScatterX      float64  `yaml:"scatter_x"`
	ScatterXGrow  float64  `yaml:"scatter_x_grow"`
	ScatterY      float64  `yaml:"scatter_y"`
	ScatterZ      float64  `yaml:"scatter_z"`
	DepthOffset   float64  `yaml:"depth_offset"`
	FallSpeed     float64  `yaml:"fall_speed"`
	RotX          float64  `yaml:"rot_x"`
	RotY          float64  `yaml:"rot_y"`
	RecycleBelow  float64  `yaml:"recycle_below"`
	RespawnAbove  float64  `yaml:"respawn_above"`
	RespawnJitter float64  `yaml:"respawn_jitter"`
	Palette       []uint32 `yaml:"palette,omitempty"`
}

// HeroConfig shapes the hero mesh and its spin.
type HeroConfig struct {
	Radius float64 `yaml:"radius"`
	Detail int     `yaml:"detail"`
	SpinX  float64 `yaml:"spin_x"` // radians per second
	SpinY  float64 `yaml:"spin_y"`
}

// InputConfig holds input timing.
type InputConfig struct {
	WheelQuiet time.Duration `yaml:"wheel_quiet"`
}

// RevealSettings controls when section content reveals and how it animates.
type RevealSettings struct {
	Threshold      float64 `yaml:"threshold"`
	Shift          float64 `yaml:"shift"`
	Duration       float64 `yaml:"duration"`
	ScrollDuration float64 `yaml:"scroll_duration"`
}

// Config is the page description and every tuning constant of the scene.
type Config struct {
	Title          string          `yaml:"title"`
	Sections       []SectionConfig `yaml:"sections"`
	SectionSpacing float64         `yaml:"section_spacing"`
	// Seed fixes the pool scatter. 0 picks a random seed.
	Seed uint64 `yaml:"seed"`

	Camera     CameraConfig     `yaml:"camera"`
	Background BackgroundConfig `yaml:"background"`
	Pool       PoolSettings     `yaml:"pool"`
	Hero       HeroConfig       `yaml:"hero"`
	Input      InputConfig      `yaml:"input"`
	Reveal     RevealSettings   `yaml:"reveal"`
}

// DefaultConfig returns the stock portfolio page: four sections twelve
// units apart with the default tuning.
func DefaultConfig() Config {
	pool := DefaultPoolConfig()
	reveal := DefaultRevealConfig()
	return Config{
		Title: "Noitanonbotti",
		Sections: []SectionConfig{
			{ID: "home", Title: "Noitanonbotti", Body: "A Truly non vibe coding developer that creates this website for literally compliance"},
			{ID: "about", Title: "About", Body: "I do not have any experience in anything what so ever."},
			{ID: "work", Title: "Work", Body: "Selected projects, experiments and the occasional shader."},
			{ID: "contact", Title: "Contact", Body: "Say hello. Replies are slow but sincere."},
		},
		SectionSpacing: pool.Spacing,
		Camera: CameraConfig{
			Damping:  DefaultDamping,
			PointerX: 1,
			FOV:      DefaultFOV,
			Z:        DefaultCameraZ,
		},
		Background: BackgroundConfig{ScrollRate: DefaultScrollRate},
		Pool: PoolSettings{
			PerSection:    pool.PerSection,
			ScatterX:      pool.ScatterX,
			ScatterXGrow:  pool.ScatterXGrow,
			ScatterY:      pool.ScatterY,
			ScatterZ:      pool.ScatterZ,
			DepthOffset:   pool.DepthOffset,
			FallSpeed:     pool.FallSpeed,
			RotX:          pool.RotX,
			RotY:          pool.RotY,
			RecycleBelow:  pool.RecycleBelow,
			RespawnAbove:  pool.RespawnAbove,
			RespawnJitter: pool.RespawnJitter.Max,
		},
		Hero: HeroConfig{
			Radius: DefaultHeroRadius,
			Detail: DefaultHeroDetail,
			SpinX:  DefaultHeroSpinX,
			SpinY:  DefaultHeroSpinY,
		},
		Input: InputConfig{WheelQuiet: DefaultWheelQuiet},
		Reveal: RevealSettings{
			Threshold:      reveal.Threshold,
			Shift:          reveal.Shift,
			Duration:       float64(reveal.Duration),
			ScrollDuration: float64(reveal.ScrollDuration),
		},
	}
}

// LoadConfig reads a YAML config file. Fields the file omits keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	c, err := ParseConfig(b)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if sh := c.Background.Shader; sh != "" && !filepath.IsAbs(sh) {
		c.Background.Shader = filepath.Join(filepath.Dir(path), sh)
	}
	return c, nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SaveConfig writes c to path as YAML.
func SaveConfig(path string, c Config) error {
	b, err := yaml.Marshal(&c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// Validate reports every problem with c. Section and spacing errors wrap
// ErrNoSections and ErrBadSpacing.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Sections) == 0 {
		errs = append(errs, ErrNoSections)
	}
	if !(c.SectionSpacing > 0) {
		errs = append(errs, fmt.Errorf("%w: got %v", ErrBadSpacing, c.SectionSpacing))
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("section %d: missing id", i))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("section %d: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
	}
	if c.Pool.PerSection < 0 {
		errs = append(errs, fmt.Errorf("pool.per_section must not be negative: got %d", c.Pool.PerSection))
	}
	if c.Pool.RespawnJitter < 0 {
		errs = append(errs, fmt.Errorf("pool.respawn_jitter must not be negative: got %v", c.Pool.RespawnJitter))
	}
	if c.Camera.Damping < 0 {
		errs = append(errs, fmt.Errorf("camera.damping must not be negative: got %v", c.Camera.Damping))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180): got %v", c.Camera.FOV))
	}
	if c.Background.ScrollRate < 0 {
		errs = append(errs, fmt.Errorf("background.scroll_rate must not be negative: got %v", c.Background.ScrollRate))
	}
	if c.Hero.Detail < 0 || c.Hero.Detail > 5 {
		errs = append(errs, fmt.Errorf("hero.detail must be in [0, 5]: got %d", c.Hero.Detail))
	}
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		errs = append(errs, fmt.Errorf("reveal.threshold must be in [0, 1]: got %v", c.Reveal.Threshold))
	}
	return errors.Join(errs...)
}

// PageSections converts the configured sections into indexed Sections.
func (c *Config) PageSections() []Section {
	out := make([]Section, len(c.Sections))
	for i, s := range c.Sections {
		out[i] = Section{Index: i, ID: s.ID, Title: s.Title, Body: s.Body}
	}
	return out
}

// PoolConfig builds the pool settings for the configured page.
func (c *Config) PoolConfig() PoolConfig {
	p := c.Pool
	cfg := PoolConfig{
		Sections:      len(c.Sections),
		PerSection:    p.PerSection,
		Spacing:       c.SectionSpacing,
		ScatterX:      p.ScatterX,
		ScatterXGrow:  p.ScatterXGrow,
		ScatterY:      p.ScatterY,
		ScatterZ:      p.ScatterZ,
		DepthOffset:   p.DepthOffset,
		FallSpeed:     p.FallSpeed,
		RotX:          p.RotX,
		RotY:          p.RotY,
		RecycleBelow:  p.RecycleBelow,
		RespawnAbove:  p.RespawnAbove,
		RespawnJitter: Range{Min: 0, Max: p.RespawnJitter},
	}
	for _, hex := range p.Palette {
		cfg.Palette = append(cfg.Palette, ColorFromHex(hex))
	}
	return cfg
}

// RevealConfig builds the overlay transition settings.
func (c *Config) RevealConfig() RevealConfig {
	return RevealConfig{
		Threshold:      c.Reveal.Threshold,
		Shift:          c.Reveal.Shift,
		Duration:       float32(c.Reveal.Duration),
		ScrollDuration: float32(c.Reveal.ScrollDuration),
	}
}
