package config

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sparkburst/parameter"
)

// Config holds runtime settings of the simulation and its terminal host
type Config struct {
	// Seed initializes the spawn random source, 0 derives one from the clock
	Seed uint64 `toml:"seed"`

	FrameRate int  `toml:"frame_rate"`
	Audio     bool `toml:"audio"`
	Debug     bool `toml:"debug"`

	Particle ParticleConfig `toml:"particle"`
	View     ViewConfig     `toml:"view"`
}

// ParticleConfig holds spawn and lifecycle tunables
// Integer ranges are inclusive
type ParticleConfig struct {
	BurstCount   int `toml:"burst_count"`
	BurstSizeMin int `toml:"burst_size_min"`
	BurstSizeMax int `toml:"burst_size_max"`

	StreamCount      int `toml:"stream_count"`
	StreamSizeMin    int `toml:"stream_size_min"`
	StreamSizeMax    int `toml:"stream_size_max"`
	StreamLanes      int `toml:"stream_lanes"`
	StreamLaneStep   int `toml:"stream_lane_step"`
	StreamLaneSpread int `toml:"stream_lane_spread"`
	StreamHueFactor  int `toml:"stream_hue_factor"`

	SpeedMin int     `toml:"speed_min"`
	SpeedMax int     `toml:"speed_max"`
	HueRate  float64 `toml:"hue_rate"`

	ShrinkRate float32 `toml:"shrink_rate"`
	MinSize    float32 `toml:"min_size"`
}

// ViewConfig holds terminal rendering geometry
type ViewConfig struct {
	// CellWidth and CellHeight are world units covered by one terminal cell
	CellWidth  float32 `toml:"cell_width"`
	CellHeight float32 `toml:"cell_height"`
	// Background is the clear color as hex, particles blend over it
	Background string `toml:"background"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FrameRate: parameter.FrameRate,
		Audio:     true,
		Particle: ParticleConfig{
			BurstCount:   parameter.BurstCount,
			BurstSizeMin: parameter.BurstSizeMin,
			BurstSizeMax: parameter.BurstSizeMax,

			StreamCount:      parameter.StreamCount,
			StreamSizeMin:    parameter.StreamSizeMin,
			StreamSizeMax:    parameter.StreamSizeMax,
			StreamLanes:      parameter.StreamLanes,
			StreamLaneStep:   parameter.StreamLaneStep,
			StreamLaneSpread: parameter.StreamLaneSpread,
			StreamHueFactor:  parameter.StreamHueFactor,

			SpeedMin: parameter.SpeedMin,
			SpeedMax: parameter.SpeedMax,
			HueRate:  parameter.HueRate,

			ShrinkRate: parameter.ShrinkRate,
			MinSize:    parameter.MinSize,
		},
		View: ViewConfig{
			CellWidth:  parameter.CellWidth,
			CellHeight: parameter.CellHeight,
			Background: parameter.BackgroundColor,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.FrameRate <= 0 {
		return errors.Errorf("frame_rate must be positive, got %d", c.FrameRate)
	}

	p := &c.Particle
	if p.BurstCount < 0 || p.StreamCount < 0 {
		return errors.New("particle counts must not be negative")
	}
	if err := checkRange("burst_size", p.BurstSizeMin, p.BurstSizeMax); err != nil {
		return err
	}
	if err := checkRange("stream_size", p.StreamSizeMin, p.StreamSizeMax); err != nil {
		return err
	}
	if err := checkRange("speed", p.SpeedMin, p.SpeedMax); err != nil {
		return err
	}
	if p.StreamLanes <= 0 {
		return errors.Errorf("stream_lanes must be positive, got %d", p.StreamLanes)
	}
	if p.StreamLaneSpread <= 0 {
		return errors.Errorf("stream_lane_spread must be positive, got %d", p.StreamLaneSpread)
	}
	if p.ShrinkRate <= 0 {
		return errors.Errorf("shrink_rate must be positive, got %g", p.ShrinkRate)
	}
	if p.MinSize < 0 {
		return errors.Errorf("min_size must not be negative, got %g", p.MinSize)
	}

	v := &c.View
	if v.CellWidth <= 0 || v.CellHeight <= 0 {
		return errors.Errorf("cell size must be positive, got %gx%g", v.CellWidth, v.CellHeight)
	}
	if _, err := colorful.Hex(v.Background); err != nil {
		return errors.Wrapf(err, "background %q", v.Background)
	}
	return nil
}

func checkRange(name string, lo, hi int) error {
	if lo < 0 {
		return errors.Errorf("%s_min must not be negative, got %d", name, lo)
	}
	if hi < lo {
		return errors.Errorf("%s range inverted: [%d, %d]", name, lo, hi)
	}
	return nil
}
