// Package config loads arena scenes from TOML
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
)

//go:embed default.toml
var defaultScene []byte

// Environment overrides
const (
	EnvAudio  = "ARENA_AUDIO"
	EnvTickMS = "ARENA_TICK_MS"
)

var (
	ErrUnknownTag  = errors.New("unknown tag")
	ErrUnknownKey  = errors.New("unknown configuration key")
	ErrInvalidSize = errors.New("arena size must be positive")
	ErrNegMargin   = errors.New("collision margin must not be negative")
)

// Scene is the full decoded configuration
type Scene struct {
	TickMS    int             `toml:"tick_ms"`
	Arena     ArenaConfig     `toml:"arena"`
	Collision CollisionConfig `toml:"collision"`
	Audio     AudioConfig     `toml:"audio"`
	Entities  []EntitySpec    `toml:"entity"`
}

type ArenaConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type CollisionConfig struct {
	Margin float64 `toml:"margin"`
}

// AudioConfig controls the bounce blip
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

// EntitySpec describes one entity created at startup
// Scale defaults to (1,1) when omitted or zero
type EntitySpec struct {
	Name        string     `toml:"name"`
	Tags        []string   `toml:"tags"`
	Location    [2]float64 `toml:"location"`
	Rotation    float64    `toml:"rotation"`
	Scale       [2]float64 `toml:"scale"`
	Speed       float64    `toml:"speed"`
	HalfExtents [2]float64 `toml:"half_extents"`
	Color       [3]float64 `toml:"color"`
	Hitbox      bool       `toml:"hitbox"`
}

// Default returns the embedded scene
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		// Embedded file is part of the build
		panic(fmt.Sprintf("embedded scene: %v", err))
	}
	return s
}

// Load decodes a scene file; an empty path yields the embedded default
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes TOML scene data and validates its structure
func Parse(data []byte) (*Scene, error) {
	s := &Scene{
		TickMS:    16,
		Collision: CollisionConfig{Margin: 1.0},
		Audio:     AudioConfig{Enabled: true, Volume: 0.6},
	}
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	for i := range s.Entities {
		if s.Entities[i].Scale == [2]float64{} {
			s.Entities[i].Scale = [2]float64{1, 1}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks structure only; simulation numbers are taken as given
func (s *Scene) Validate() error {
	if s.Arena.Width <= 0 || s.Arena.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, s.Arena.Width, s.Arena.Height)
	}
	if s.Collision.Margin < 0 {
		return fmt.Errorf("%w: %v", ErrNegMargin, s.Collision.Margin)
	}
	for i, e := range s.Entities {
		if _, err := e.ParseTags(); err != nil {
			return fmt.Errorf("entity %d (%s): %w", i, e.Name, err)
		}
	}
	return nil
}

// ApplyEnv overlays ARENA_* environment overrides; malformed values are ignored
func (s *Scene) ApplyEnv() {
	if v := os.Getenv(EnvAudio); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			s.Audio.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvTickMS); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			s.TickMS = ms
		}
	}
}

// Tick returns the tick interval
func (s *Scene) Tick() time.Duration {
	if s.TickMS <= 0 {
		return 16 * time.Millisecond
	}
	return time.Duration(s.TickMS) * time.Millisecond
}

// ParseTags folds tag names into a bitmask
func (e EntitySpec) ParseTags() (component.Tags, error) {
	tags := component.TagNone
	for _, name := range e.Tags {
		t, ok := component.ParseTag(name)
		if !ok {
			return component.TagNone, fmt.Errorf("%w: %q", ErrUnknownTag, name)
		}
		tags = tags.With(t)
	}
	return tags, nil
}

func (e EntitySpec) LocationVec() mgl64.Vec2 { return mgl64.Vec2(e.Location) }

func (e EntitySpec) ScaleVec() mgl64.Vec2 { return mgl64.Vec2(e.Scale) }

func (e EntitySpec) HalfExtentsVec() mgl64.Vec2 { return mgl64.Vec2(e.HalfExtents) }

// RGB converts the unit color triple
func (e EntitySpec) RGB() core.RGB {
	return core.RGBFromUnit(e.Color[0], e.Color[1], e.Color[2])
}
