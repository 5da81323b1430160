package asset

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/config"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestMeanColorSolid(t *testing.T) {
	want := colorful.Color{R: 1, G: 0.5, B: 0}
	img := solid(8, 8, want)
	got, err := MeanColor(img)
	if err != nil {
		t.Fatalf("MeanColor: %v", err)
	}
	if d := got.DistanceRgb(want); d > 0.01 {
		t.Errorf("MeanColor = %s, want %s", got.Hex(), want.Hex())
	}
}

func TestMeanColorLinearBlend(t *testing.T) {
	// half black, half white averages to linear mid-grey, which is brighter than sRGB 0.5
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.Black)
	img.Set(1, 0, color.White)

	got, err := MeanColor(img)
	if err != nil {
		t.Fatalf("MeanColor: %v", err)
	}
	want := colorful.LinearRgb(0.5, 0.5, 0.5)
	if math.Abs(got.R-want.R) > 0.01 {
		t.Errorf("R = %v, want %v", got.R, want.R)
	}
	if got.R <= 0.5 {
		t.Errorf("R = %v, want above sRGB midpoint", got.R)
	}
}

func TestMeanColorIgnoresTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 0})

	got, err := MeanColor(img)
	if err != nil {
		t.Fatalf("MeanColor: %v", err)
	}
	if got.Hex() != "#ff0000" {
		t.Errorf("MeanColor = %s, want #ff0000", got.Hex())
	}
}

func TestMeanColorEmpty(t *testing.T) {
	if _, err := MeanColor(image.NewRGBA(image.Rect(0, 0, 0, 0))); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("empty image error = %v, want ErrEmptyImage", err)
	}
	blank := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if _, err := MeanColor(blank); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("transparent image error = %v, want ErrEmptyImage", err)
	}
}

func TestMeanColorSamplesLargeImages(t *testing.T) {
	img := solid(600, 400, color.RGBA{G: 200, A: 255})
	got, err := MeanColor(img)
	if err != nil {
		t.Fatalf("MeanColor: %v", err)
	}
	want, _ := colorful.MakeColor(color.RGBA{G: 200, A: 255})
	if got.DistanceRgb(want) > 0.01 {
		t.Errorf("MeanColor = %s, want %s", got.Hex(), want.Hex())
	}
}

// collect gathers onReady results across goroutines
type collect struct {
	mu     sync.Mutex
	colors map[string]colorful.Color
	errs   map[string]error
}

func newCollect() *collect {
	return &collect{colors: make(map[string]colorful.Color), errs: make(map[string]error)}
}

func (c *collect) ready(ref string) func(colorful.Color) {
	return func(col colorful.Color) {
		c.mu.Lock()
		c.colors[ref] = col
		c.mu.Unlock()
	}
}

func (c *collect) onError(ref string, err error) {
	c.mu.Lock()
	c.errs[ref] = err
	c.mu.Unlock()
}

func TestLoaderFormats(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "red.png", solid(4, 4, color.RGBA{R: 255, A: 255}))

	f, err := os.Create(filepath.Join(dir, "blue.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, solid(16, 16, color.RGBA{B: 255, A: 255}), &jpeg.Options{Quality: 95}); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got := newCollect()
	l := NewLoader(dir, got.onError)
	l.Load("red.png", got.ready("red.png"))
	l.Load("blue.jpg", got.ready("blue.jpg"))
	l.Load("missing.png", got.ready("missing.png"))
	l.Wait()

	if c := got.colors["red.png"]; c.Hex() != "#ff0000" {
		t.Errorf("red.png = %s", c.Hex())
	}
	if c := got.colors["blue.jpg"]; c.B < 0.9 || c.R > 0.1 {
		t.Errorf("blue.jpg = %s", c.Hex())
	}
	if _, ok := got.colors["missing.png"]; ok {
		t.Error("onReady called for a missing texture")
	}
	if !errors.Is(got.errs["missing.png"], os.ErrNotExist) {
		t.Errorf("missing.png error = %v", got.errs["missing.png"])
	}

	loaded, failed := l.Stats()
	if loaded != 2 || failed != 1 {
		t.Errorf("Stats = %d, %d; want 2, 1", loaded, failed)
	}
}

func TestLoaderCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := newCollect()
	l := NewLoader(dir, got.onError)
	l.Load("bad.png", got.ready("bad.png"))
	l.Wait()

	if !errors.Is(got.errs["bad.png"], image.ErrFormat) {
		t.Errorf("bad.png error = %v, want image.ErrFormat", got.errs["bad.png"])
	}
}

func TestLoaderCachesDecodedColors(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "grey.png", solid(2, 2, color.Gray{Y: 128}))

	l := NewLoader(dir, nil)
	first := newCollect()
	l.Load("grey.png", first.ready("grey.png"))
	l.Wait()

	// remove the file; a cached ref must still resolve, synchronously
	if err := os.Remove(filepath.Join(dir, "grey.png")); err != nil {
		t.Fatal(err)
	}
	called := false
	l.Load("grey.png", func(c colorful.Color) {
		called = true
		if c != first.colors["grey.png"] {
			t.Errorf("cached color %s differs from first load %s", c.Hex(), first.colors["grey.png"].Hex())
		}
	})
	if !called {
		t.Error("cached load did not call onReady synchronously")
	}
}

func TestLoaderIgnoresEmptyRef(t *testing.T) {
	l := NewLoader(t.TempDir(), func(string, error) { t.Error("onError called for empty ref") })
	l.Load("", func(colorful.Color) { t.Error("onReady called for empty ref") })

	done := make(chan struct{})
	go func() {
		l.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked with nothing pending")
	}
}

func TestDefaultSystemConfigMatchesDefaults(t *testing.T) {
	cfg, err := config.Parse(DefaultSystemConfig)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := config.Default()

	if len(cfg.Planets) != len(def.Planets) {
		t.Fatalf("planets = %d, want %d", len(cfg.Planets), len(def.Planets))
	}
	for i, p := range cfg.Planets {
		if p != def.Planets[i] {
			t.Errorf("planet %d = %+v, want %+v", i, p, def.Planets[i])
		}
	}
	if cfg.Star != def.Star {
		t.Errorf("star = %+v, want %+v", cfg.Star, def.Star)
	}
	if cfg.Belt != def.Belt || cfg.Starfield != def.Starfield {
		t.Error("belt or starfield differs from defaults")
	}
	if cfg.Engine != def.Engine {
		t.Errorf("engine = %+v, want %+v", cfg.Engine, def.Engine)
	}
}
