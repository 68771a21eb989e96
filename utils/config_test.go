package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.Generations != 100 || config.Margin != 2 || config.AliveGlyph != "x" || config.DeadGlyph != "-" {
		t.Fatalf("unexpected defaults %+v", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"generations": 5, "alive_glyph": "#", "frame_delay": 1000000}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if config.Generations != 5 || config.AliveGlyph != "#" || config.FrameDelay != time.Millisecond {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.DeadGlyph != "-" || !config.ClearScreen {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	if _, err = LoadConfig(writeConfig(t, `{"generations": "many"`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

// unsetEnv clears every GOL_* variable for the duration of the test
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		if name, _, _ := strings.Cut(kv, "="); strings.HasPrefix(name, "GOL_") {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	unsetEnv(t)
	t.Setenv("GOL_GENERATIONS", "7")
	t.Setenv("GOL_FRAME_DELAY", "20ms")
	t.Setenv("GOL_CLEAR_SCREEN", "false")
	t.Setenv("GOL_LANG", "pt-BR")

	config := DefaultConfig()
	config.AliveGlyph = "@"
	if err := config.ApplyEnv(); err != nil {
		t.Fatalf("apply env: %v", err)
	}
	if config.Generations != 7 || config.FrameDelay != 20*time.Millisecond {
		t.Fatalf("env values not applied: %+v", config)
	}
	if config.ClearScreen || config.Language != "pt-BR" {
		t.Fatalf("env values not applied: %+v", config)
	}
	if config.AliveGlyph != "@" {
		t.Fatalf("unset variable overwrote field: %q", config.AliveGlyph)
	}
}

func TestApplyEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("GOL_GENERATIONS", "lots")
	config := DefaultConfig()
	if err := config.ApplyEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero generations", func(c *Config) { c.Generations = 0 }},
		{"negative delay", func(c *Config) { c.FrameDelay = -time.Second }},
		{"empty alive glyph", func(c *Config) { c.AliveGlyph = "" }},
		{"empty dead glyph", func(c *Config) { c.DeadGlyph = "" }},
		{"negative margin", func(c *Config) { c.Margin = -1 }},
		{"margin hides board", func(c *Config) { c.Margin = 12 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)
			if err := config.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
