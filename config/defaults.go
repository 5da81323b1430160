package config

import "time"

const fallbackPlanetColor = "#aaaaaa"

// Default returns the built-in system
func Default() *Config {
	return &Config{
		AssetsDir: "assets/textures",
		Star: StarConfig{
			Mass:          1000,
			Radius:        5,
			Color:         MustColor("#ffdd00"),
			Texture:       "sun.png",
			Intensity:     10,
			LightDistance: 5000,
			LightDecay:    0,
		},
		Planets: DefaultPlanets(),
		Belt: BeltConfig{
			InnerRadius: 68,
			OuterRadius: 76,
			Count:       300,
			MinSize:     0.1,
			MaxSize:     0.4,
			Color:       MustColor("#888888"),
		},
		Starfield: StarfieldConfig{
			Count:          5000,
			Radius:         4000,
			MinSize:        0.1,
			MaxSize:        10,
			FlickerPercent: 0.8,
			FlickerSpeed:   0.1,
			FlickerMin:     0.1,
			FlickerMax:     1.0,
			WhitePercent:   0.7,
			BluePercent:    0.1,
			RedPercent:     0.1,
			YellowPercent:  0.1,
		},
		Camera: CameraConfig{
			Position:    Vec3{0, 50, 100},
			FOV:         70,
			Near:        0.1,
			Far:         10000,
			Damping:     0.05,
			MinDistance: 5,
			MaxDistance: 500,
			TrackOffset: Vec3{0, 10, 30},
		},
		Physics: PhysicsConfig{
			Mode: ModePrescribed,
		},
		Engine: EngineConfig{
			TickInterval:    Duration{16 * time.Millisecond},
			FrameInterval:   Duration{16 * time.Millisecond},
			SimulationSpeed: 1.0,
			StarSize:        1.0,
			OrbitsVisible:   true,
			LabelsVisible:   true,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			SnapshotRate: 30,
			CommandRate:  10,
			CommandBurst: 20,
		},
		Audio: AudioConfig{
			Volume: 0.3,
		},
	}
}

// DefaultPlanets returns the eight built-in planets, innermost first
func DefaultPlanets() []PlanetConfig {
	return []PlanetConfig{
		{Name: "Tatooine", Mass: 1.5, Radius: 1.6, Distance: 12, Velocity: 1.8, Color: MustColor("#d6c292"), Texture: "tatooine.png"},
		{Name: "Coruscant", Mass: 3, Radius: 2.2, Distance: 18, Velocity: 1.6, Color: MustColor("#4e7fbb"), Texture: "coruscant.png"},
		{Name: "Naboo", Mass: 2.2, Radius: 1.9, Distance: 24, Velocity: 1.4, Color: MustColor("#3d995e"), Texture: "naboo.png"},
		{Name: "Hoth", Mass: 1.8, Radius: 1.5, Distance: 30, Velocity: 1.2, Color: MustColor("#eeeeff"), Texture: "hoth.png"},
		{Name: "Dagobah", Mass: 1.3, Radius: 1.4, Distance: 36, Velocity: 1.1, Color: MustColor("#4a633d"), Texture: "dagobah.png"},
		{Name: "Mustafar", Mass: 2.8, Radius: 1.8, Distance: 44, Velocity: 0.9, Color: MustColor("#c13e0e"), Texture: "mustafar.png"},
		{Name: "Kashyyyk", Mass: 2.5, Radius: 2.0, Distance: 52, Velocity: 0.8, Color: MustColor("#2d7d46"), Texture: "kashyyyk.png"},
		{Name: "Kamino", Mass: 2.0, Radius: 1.7, Distance: 60, Velocity: 0.7, Color: MustColor("#1a3a59"), Texture: "kamino.png"},
	}
}
