// Package config holds the construction-time records for a planetary system
// Records are decoded once and never mutated by the simulation
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Simulation modes
const (
	ModePrescribed = "prescribed"
	ModeGravity    = "gravity"
)

// Fixed body names; planets and comets may not reuse them
const (
	StarName = "Sun"
	BeltName = "Asteroid Belt"
)

// Vec3 is a TOML-friendly [x, y, z] triple
type Vec3 [3]float64

// Vec converts to the simulation vector type
func (v Vec3) Vec() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// Duration decodes from strings like "16ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// StarConfig describes the central star and its light
type StarConfig struct {
	Mass          float64 `toml:"mass"`
	Radius        float64 `toml:"radius"`
	Position      Vec3    `toml:"position"`
	Velocity      Vec3    `toml:"velocity"`
	Color         Color   `toml:"color"`
	Texture       string  `toml:"texture"`
	Intensity     float64 `toml:"intensity"`
	LightDistance float64 `toml:"light_distance"`
	LightDecay    float64 `toml:"light_decay"`
}

// PlanetConfig describes one planet before placement
// Velocity is the scalar orbital speed; placement divides it by ten
type PlanetConfig struct {
	Name     string  `toml:"name"`
	Mass     float64 `toml:"mass"`
	Radius   float64 `toml:"radius"`
	Distance float64 `toml:"distance"`
	Velocity float64 `toml:"velocity"`
	Color    Color   `toml:"color"`
	Texture  string  `toml:"texture"`
}

// BeltConfig describes the asteroid annulus
type BeltConfig struct {
	InnerRadius float64 `toml:"inner_radius"`
	OuterRadius float64 `toml:"outer_radius"`
	Count       int     `toml:"count"`
	MinSize     float64 `toml:"min_size"`
	MaxSize     float64 `toml:"max_size"`
	Color       Color   `toml:"color"`
}

// CometConfig describes an optional comet with a trailing tail
type CometConfig struct {
	Name      string  `toml:"name"`
	Mass      float64 `toml:"mass"`
	Radius    float64 `toml:"radius"`
	Position  Vec3    `toml:"position"`
	Velocity  Vec3    `toml:"velocity"`
	Color     Color   `toml:"color"`
	TailColor Color   `toml:"tail_color"`
}

// StarfieldConfig describes the background sphere of stars
type StarfieldConfig struct {
	Count          int     `toml:"count"`
	Radius         float64 `toml:"radius"`
	MinSize        float64 `toml:"min_size"`
	MaxSize        float64 `toml:"max_size"`
	FlickerPercent float64 `toml:"flicker_percent"`
	FlickerSpeed   float64 `toml:"flicker_speed"`
	FlickerMin     float64 `toml:"flicker_min"`
	FlickerMax     float64 `toml:"flicker_max"`
	WhitePercent   float64 `toml:"white_percent"`
	BluePercent    float64 `toml:"blue_percent"`
	RedPercent     float64 `toml:"red_percent"`
	YellowPercent  float64 `toml:"yellow_percent"`
}

// CameraConfig describes the initial view and controller limits
type CameraConfig struct {
	Position    Vec3    `toml:"position"`
	Target      Vec3    `toml:"target"`
	FOV         float64 `toml:"fov"`
	Near        float64 `toml:"near"`
	Far         float64 `toml:"far"`
	Damping     float64 `toml:"damping"`
	MinDistance float64 `toml:"min_distance"`
	MaxDistance float64 `toml:"max_distance"`
	TrackOffset Vec3    `toml:"track_offset"`
}

// PhysicsConfig selects the stepping mode and constants
type PhysicsConfig struct {
	Mode                  string  `toml:"mode"`
	GravitationalConstant float64 `toml:"gravitational_constant"`
	Seed                  uint64  `toml:"seed"` // 0 seeds from the clock
}

// EngineConfig holds the scheduler and initial control state
type EngineConfig struct {
	TickInterval    Duration `toml:"tick_interval"`
	FrameInterval   Duration `toml:"frame_interval"`
	SimulationSpeed float64  `toml:"simulation_speed"`
	StarSize        float64  `toml:"star_size"`
	OrbitsVisible   bool     `toml:"orbits_visible"`
	LabelsVisible   bool     `toml:"labels_visible"`
}

// ServerConfig holds the websocket/metrics endpoint settings
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	SnapshotRate   float64  `toml:"snapshot_rate"` // Hz
	CommandRate    float64  `toml:"command_rate"`  // commands per second per client
	CommandBurst   int      `toml:"command_burst"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// AudioConfig toggles orbit chimes
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config is the full system description
type Config struct {
	AssetsDir string          `toml:"assets_dir"`
	Star      StarConfig      `toml:"star"`
	Planets   []PlanetConfig  `toml:"planets"`
	Belt      BeltConfig      `toml:"belt"`
	Comets    []CometConfig   `toml:"comets"`
	Starfield StarfieldConfig `toml:"starfield"`
	Camera    CameraConfig    `toml:"camera"`
	Physics   PhysicsConfig   `toml:"physics"`
	Engine    EngineConfig    `toml:"engine"`
	Server    ServerConfig    `toml:"server"`
	Audio     AudioConfig     `toml:"audio"`
}

// Load reads path over the defaults and validates the result
// Empty path returns the defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	cfg := decodeBase()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return finish(cfg, md)
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (*Config, error) {
	cfg := decodeBase()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return finish(cfg, md)
}

// decodeBase returns defaults with the planet list cleared
// The decoder reuses slice storage by index, which would merge file entries into default ones
func decodeBase() *Config {
	cfg := Default()
	cfg.Planets = nil
	return cfg
}

func finish(cfg *Config, md toml.MetaData) (*Config, error) {
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %q ignored", key.String())
	}

	if len(cfg.Planets) == 0 {
		cfg.Planets = DefaultPlanets()
	}
	for i := range cfg.Planets {
		if cfg.Planets[i].Color == (Color{}) {
			cfg.Planets[i].Color = MustColor(fallbackPlanetColor)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Planet returns the planet record named name
func (c *Config) Planet(name string) (PlanetConfig, bool) {
	for _, p := range c.Planets {
		if p.Name == name {
			return p, true
		}
	}
	return PlanetConfig{}, false
}
