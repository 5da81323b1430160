// Package asset resolves texture references into surface colors
package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/core"
)

// ErrEmptyImage is returned for images with no pixels
var ErrEmptyImage = errors.New("empty image")

// maxSamples bounds the pixels averaged per texture
const maxSamples = 64 * 1024

// Loader decodes textures in background goroutines
// Each decoded image is reduced to its mean color
type Loader struct {
	dir     string
	onError func(ref string, err error)

	mu     sync.Mutex
	cache  map[string]colorful.Color
	wg     sync.WaitGroup
	loaded int
	failed int
}

// NewLoader reads textures relative to dir; onError may be nil
func NewLoader(dir string, onError func(ref string, err error)) *Loader {
	return &Loader{
		dir:     dir,
		onError: onError,
		cache:   make(map[string]colorful.Color),
	}
}

// Load decodes ref asynchronously and calls onReady with its mean color
// Failures never call onReady; the body keeps its placeholder color
func (l *Loader) Load(ref string, onReady func(colorful.Color)) {
	if ref == "" || onReady == nil {
		return
	}

	l.mu.Lock()
	if c, ok := l.cache[ref]; ok {
		l.mu.Unlock()
		onReady(c)
		return
	}
	l.mu.Unlock()

	l.wg.Add(1)
	core.Go(func() {
		defer l.wg.Done()

		c, err := MeanColorFile(l.path(ref))
		if err != nil {
			l.mu.Lock()
			l.failed++
			l.mu.Unlock()
			log.Printf("asset: texture %s: %v", ref, err)
			if l.onError != nil {
				l.onError(ref, err)
			}
			return
		}

		l.mu.Lock()
		l.cache[ref] = c
		l.loaded++
		l.mu.Unlock()
		onReady(c)
	})
}

// Wait blocks until every pending load has finished
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Stats returns the number of successful and failed loads
func (l *Loader) Stats() (loaded, failed int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded, l.failed
}

func (l *Loader) path(ref string) string {
	if filepath.IsAbs(ref) || l.dir == "" {
		return ref
	}
	return filepath.Join(l.dir, ref)
}

// MeanColorFile decodes a PNG or JPEG file and returns its mean color
func MeanColorFile(path string) (colorful.Color, error) {
	f, err := os.Open(path)
	if err != nil {
		return colorful.Color{}, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("decode: %w", err)
	}
	c, err := MeanColor(img)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%s: %w", format, err)
	}
	return c, nil
}

// MeanColor averages img in linear RGB, weighting each pixel by alpha
// Large images are sampled on a stride grid
func MeanColor(img image.Image) (colorful.Color, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return colorful.Color{}, ErrEmptyImage
	}

	stride := 1
	for (w/stride)*(h/stride) > maxSamples {
		stride++
	}

	var r, g, bl, weight float64
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			c, a := colorful.MakeColor(img.At(x, y))
			if !a {
				continue
			}
			_, _, _, alpha := img.At(x, y).RGBA()
			wt := float64(alpha) / 0xffff
			lr, lg, lb := c.LinearRgb()
			r += lr * wt
			g += lg * wt
			bl += lb * wt
			weight += wt
		}
	}
	if weight == 0 {
		return colorful.Color{}, ErrEmptyImage
	}
	return colorful.LinearRgb(r/weight, g/weight, bl/weight).Clamped(), nil
}
