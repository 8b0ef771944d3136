package walkthrough

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid config")

// LayoutConfig holds the room sizing and placement constants, all in meters.
type LayoutConfig struct {
	PerItemSpacing float64 `toml:"per_item_spacing"`
	FixedSlack     float64 `toml:"fixed_slack"`
	WidthFraction  float64 `toml:"width_fraction"`
	LengthFraction float64 `toml:"length_fraction"`
	MinWidth       float64 `toml:"min_width"`
	MinLength      float64 `toml:"min_length"`
	WallHeight     float64 `toml:"wall_height"`

	// WallOffset pulls exhibits off the wall surface so frames don't z-fight.
	WallOffset      float64 `toml:"wall_offset"`
	CornerPadding   float64 `toml:"corner_padding"`
	EyeHeight       float64 `toml:"eye_height"`
	ViewingDistance float64 `toml:"viewing_distance"`
	IntroDistance   float64 `toml:"intro_distance"`
	AlcoveDepth     float64 `toml:"alcove_depth"`
}

type SmoothingConfig struct {
	Factor            float64 `toml:"factor"`
	DistanceTolerance float64 `toml:"distance_tolerance"`
	AngleTolerance    float64 `toml:"angle_tolerance"`

	// ReferenceRate is the frame rate (Hz) at which Factor is applied as-is.
	ReferenceRate float64 `toml:"reference_rate"`
}

type Config struct {
	Layout    LayoutConfig    `toml:"layout"`
	Smoothing SmoothingConfig `toml:"smoothing"`
}

func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			PerItemSpacing:  8.0,
			FixedSlack:      20,
			WidthFraction:   0.5,
			LengthFraction:  0.6,
			MinWidth:        30,
			MinLength:       24,
			WallHeight:      5.2,
			WallOffset:      0.2,
			CornerPadding:   2.0,
			EyeHeight:       2.2,
			ViewingDistance: 2.5,
			IntroDistance:   3.5,
			AlcoveDepth:     0.4,
		},
		Smoothing: SmoothingConfig{
			Factor:            0.05,
			DistanceTolerance: 0.05,
			AngleTolerance:    0.01,
			ReferenceRate:     60,
		},
	}
}

// LoadConfig decodes a TOML file on top of DefaultConfig, so a file only
// needs the keys it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	l := c.Layout
	positive := []struct {
		name  string
		value float64
	}{
		{"layout.per_item_spacing", l.PerItemSpacing},
		{"layout.width_fraction", l.WidthFraction},
		{"layout.length_fraction", l.LengthFraction},
		{"layout.min_width", l.MinWidth},
		{"layout.min_length", l.MinLength},
		{"layout.wall_height", l.WallHeight},
		{"layout.eye_height", l.EyeHeight},
		{"layout.viewing_distance", l.ViewingDistance},
		{"layout.intro_distance", l.IntroDistance},
		{"smoothing.distance_tolerance", c.Smoothing.DistanceTolerance},
		{"smoothing.angle_tolerance", c.Smoothing.AngleTolerance},
		{"smoothing.reference_rate", c.Smoothing.ReferenceRate},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"layout.fixed_slack", l.FixedSlack},
		{"layout.wall_offset", l.WallOffset},
		{"layout.corner_padding", l.CornerPadding},
		{"layout.alcove_depth", l.AlcoveDepth},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfig, p.name, p.value)
		}
	}

	if k := c.Smoothing.Factor; k <= 0 || k >= 1 {
		return fmt.Errorf("%w: smoothing.factor must be in (0,1), got %g", ErrInvalidConfig, k)
	}
	if l.EyeHeight >= l.WallHeight {
		return fmt.Errorf("%w: layout.eye_height %g must be below layout.wall_height %g", ErrInvalidConfig, l.EyeHeight, l.WallHeight)
	}
	return nil
}

// sanitized returns c with invalid values replaced by their defaults.
func (c Config) sanitized() Config {
	d := DefaultConfig()
	s := &c.Smoothing
	if s.Factor <= 0 || s.Factor >= 1 {
		s.Factor = d.Smoothing.Factor
	}
	if s.DistanceTolerance <= 0 {
		s.DistanceTolerance = d.Smoothing.DistanceTolerance
	}
	if s.AngleTolerance <= 0 {
		s.AngleTolerance = d.Smoothing.AngleTolerance
	}
	if s.ReferenceRate <= 0 {
		s.ReferenceRate = d.Smoothing.ReferenceRate
	}
	l := &c.Layout
	if l.PerItemSpacing <= 0 {
		l.PerItemSpacing = d.Layout.PerItemSpacing
	}
	if l.MinWidth <= 0 {
		l.MinWidth = d.Layout.MinWidth
	}
	if l.MinLength <= 0 {
		l.MinLength = d.Layout.MinLength
	}
	if l.CornerPadding < 0 {
		l.CornerPadding = 0
	}
	return c
}
