package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/spaaace/internal/asset"
	loopconfig "github.com/tomz197/spaaace/internal/loop/config"
)

// Settings is the optional YAML settings file. Zero fields keep their defaults.
type Settings struct {
	Arena          ArenaSettings         `yaml:"arena"`
	TickRate       int                   `yaml:"tick_rate"`
	SpawnInterval  float64               `yaml:"spawn_interval"`
	OffscreenSpace float64               `yaml:"offscreen_space"`
	LogLevel       string                `yaml:"log_level"`
	Sprites        map[string]asset.Size `yaml:"sprites"`
}

// ArenaSettings sets the logical arena size. When the terminal aspect
// differs, the width is kept and the height follows the terminal.
type ArenaSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Arena: ArenaSettings{
			Width:  loopconfig.ArenaWidth,
			Height: loopconfig.ArenaHeight,
		},
		TickRate:       loopconfig.TickRate,
		SpawnInterval:  loopconfig.EnemySpawnInterval,
		OffscreenSpace: loopconfig.OffscreenSpace,
		LogLevel:       "info",
	}
}

// Load decodes YAML settings from r on top of the defaults.
// An empty document yields the defaults.
func Load(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadFile loads settings from path. An empty path yields the defaults.
func LoadFile(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that every value is usable by the simulation.
func (s Settings) Validate() error {
	switch {
	case s.Arena.Width <= 0 || s.Arena.Height <= 0:
		return fmt.Errorf("arena %gx%g must be positive", s.Arena.Width, s.Arena.Height)
	case s.TickRate <= 0:
		return fmt.Errorf("tick_rate %d must be positive", s.TickRate)
	case s.SpawnInterval < 0:
		return fmt.Errorf("spawn_interval %g must not be negative", s.SpawnInterval)
	case s.OffscreenSpace < 0:
		return fmt.Errorf("offscreen_space %g must not be negative", s.OffscreenSpace)
	}
	if _, err := asset.NewSheet(s.Sprites); err != nil {
		return fmt.Errorf("sprites: %w", err)
	}
	return nil
}

// TickTime returns the minimum wall-clock time between two ticks.
func (s Settings) TickTime() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// Sheet builds the sprite sheet with the configured size overrides.
func (s Settings) Sheet() (*asset.Sheet, error) {
	return asset.NewSheet(s.Sprites)
}
