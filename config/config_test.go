package config

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Planets) != 8 {
		t.Errorf("expected 8 default planets, got %d", len(cfg.Planets))
	}
	if cfg.Star.Mass != 1000 || cfg.Star.Radius != 5 {
		t.Errorf("unexpected star defaults: %+v", cfg.Star)
	}
	if cfg.Belt.Count != 300 || cfg.Belt.InnerRadius != 68 || cfg.Belt.OuterRadius != 76 {
		t.Errorf("unexpected belt defaults: %+v", cfg.Belt)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Engine.SimulationSpeed != 1.0 {
		t.Errorf("speed = %v, want 1.0", cfg.Engine.SimulationSpeed)
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "system.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Star.Mass != 2000 || cfg.Star.Radius != 6 {
		t.Errorf("star not decoded: %+v", cfg.Star)
	}
	if got := cfg.Star.Color.Hex(); got != "#ffaa00" {
		t.Errorf("star color = %s, want #ffaa00", got)
	}
	// Unset keys keep their defaults
	if cfg.Star.Intensity != 10 {
		t.Errorf("star intensity = %v, want default 10", cfg.Star.Intensity)
	}

	if len(cfg.Planets) != 2 {
		t.Fatalf("expected 2 planets, got %d", len(cfg.Planets))
	}
	if cfg.Planets[0].Color.Hex() != "#ff0000" {
		t.Errorf("inner color = %s", cfg.Planets[0].Color.Hex())
	}
	if cfg.Planets[1].Color.Hex() != fallbackPlanetColor {
		t.Errorf("outer color = %s, want fallback %s", cfg.Planets[1].Color.Hex(), fallbackPlanetColor)
	}
	if cfg.Planets[1].Texture != "" {
		t.Errorf("outer texture leaked from defaults: %q", cfg.Planets[1].Texture)
	}

	if len(cfg.Comets) != 1 || cfg.Comets[0].Name != "Halley" {
		t.Fatalf("comet not decoded: %+v", cfg.Comets)
	}
	if v := cfg.Comets[0].Velocity.Vec(); v.Z != -1.5 {
		t.Errorf("comet velocity = %v", v)
	}

	if cfg.Physics.Mode != ModeGravity || cfg.Physics.Seed != 42 {
		t.Errorf("physics not decoded: %+v", cfg.Physics)
	}
	if cfg.Engine.TickInterval.Duration != 10*time.Millisecond {
		t.Errorf("tick interval = %v", cfg.Engine.TickInterval)
	}
	if cfg.Engine.SimulationSpeed != 2.5 {
		t.Errorf("speed = %v", cfg.Engine.SimulationSpeed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"negative radius", "[star]\nradius = -1", "star radius"},
		{"inverted belt", "[belt]\ninner_radius = 80\nouter_radius = 70", "belt radii"},
		{"unknown mode", "[physics]\nmode = \"chaos\"", "physics mode"},
		{"duplicate planet", "[[planets]]\nname = \"A\"\nradius = 1\ndistance = 5\n[[planets]]\nname = \"A\"\nradius = 1\ndistance = 6", "duplicate"},
		{"comet reuses planet name", "[[planets]]\nname = \"A\"\nradius = 1\ndistance = 5\n[[comets]]\nname = \"A\"\nradius = 0.5", "duplicate body name"},
		{"planet named like star", "[[planets]]\nname = \"Sun\"\nradius = 1\ndistance = 5", "duplicate body name"},
		{"comet named like belt", "[[comets]]\nname = \"Asteroid Belt\"\nradius = 0.5", "duplicate body name"},
		{"zero planet distance", "[[planets]]\nname = \"A\"\nradius = 1", "distance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse("[star\nmass = ")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("syntax error should not be reported as validation failure")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ffdd00", "#ffdd00", false},
		{"ffdd00", "#ffdd00", false},
		{"#fff", "#ffffff", false},
		{"not-a-color", "", true},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && c.Hex() != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, c.Hex(), tt.want)
		}
	}
}

func TestGeneratePlanets(t *testing.T) {
	planets := DefaultPlanets()
	placed := GeneratePlanets(planets, rand.New(rand.NewSource(7)))

	if len(placed) != len(planets) {
		t.Fatalf("placed %d planets, want %d", len(placed), len(planets))
	}
	for i, p := range placed {
		r := math.Hypot(p.InitialPosition.X, p.InitialPosition.Z)
		if math.Abs(r-planets[i].Distance) > 1e-9 {
			t.Errorf("%s: radius %v, want %v", p.Name, r, planets[i].Distance)
		}
		if p.InitialPosition.Y != 0 {
			t.Errorf("%s: off-plane position %v", p.Name, p.InitialPosition)
		}
		if want := planets[i].Velocity / 10; math.Abs(p.InitialVelocity.Z-want) > 1e-12 || p.InitialVelocity.X != 0 {
			t.Errorf("%s: velocity %v, want (0,0,%v)", p.Name, p.InitialVelocity, want)
		}
	}
}

func TestGeneratePlanetsDeterministic(t *testing.T) {
	a := GeneratePlanets(DefaultPlanets(), rand.New(rand.NewSource(99)))
	b := GeneratePlanets(DefaultPlanets(), rand.New(rand.NewSource(99)))
	for i := range a {
		if a[i].InitialPosition != b[i].InitialPosition {
			t.Errorf("planet %d placed differently under same seed", i)
		}
	}
}

func TestPlanetLookup(t *testing.T) {
	cfg := Default()
	if p, ok := cfg.Planet("Hoth"); !ok || p.Distance != 30 {
		t.Errorf("Planet(Hoth) = %+v, %v", p, ok)
	}
	if _, ok := cfg.Planet("Alderaan"); ok {
		t.Error("unexpected planet found")
	}
}
