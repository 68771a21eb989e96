package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// referenceRows mirrors model.Rows; utils stays free of model imports
const referenceRows = 24

// Config holds the configuration for the game
type Config struct {
	Generations int           `json:"generations" env:"GOL_GENERATIONS"`
	FrameDelay  time.Duration `json:"frame_delay" env:"GOL_FRAME_DELAY"`
	AliveGlyph  string        `json:"alive_glyph" env:"GOL_ALIVE_GLYPH"`
	DeadGlyph   string        `json:"dead_glyph" env:"GOL_DEAD_GLYPH"`
	Margin      int           `json:"margin" env:"GOL_MARGIN"`
	ClearScreen bool          `json:"clear_screen" env:"GOL_CLEAR_SCREEN"`
	Language    string        `json:"language" env:"GOL_LANG"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Generations: 100,
		FrameDelay:  150 * time.Millisecond,
		AliveGlyph:  "x",
		DeadGlyph:   "-",
		Margin:      2, // border band hidden from the display
		ClearScreen: true,
		Language:    "en",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides fields from GOL_* environment variables. Unset
// variables keep the current value.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate checks the configuration before a run
func (c Config) Validate() error {
	switch {
	case c.Generations <= 0:
		return errors.Wrapf(ErrInvalidConfig, "generations must be positive, got %d", c.Generations)
	case c.FrameDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame delay must not be negative, got %s", c.FrameDelay)
	case c.AliveGlyph == "" || c.DeadGlyph == "":
		return errors.Wrap(ErrInvalidConfig, "glyphs must not be empty")
	case c.Margin < 0 || 2*c.Margin >= referenceRows:
		return errors.Wrapf(ErrInvalidConfig, "margin %d leaves nothing to display", c.Margin)
	}
	return nil
}
