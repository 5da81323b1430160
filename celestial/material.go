package celestial

import (
	"sync/atomic"

	"github.com/lucasb-eyer/go-colorful"
)

// TextureLoader resolves a texture reference asynchronously
// onReady may be called from any goroutine, at most once
type TextureLoader interface {
	Load(ref string, onReady func(colorful.Color))
}

// Material is a body surface: a placeholder color until its texture resolves
// Color patches arrive from loader goroutines, so state is atomic
type Material struct {
	placeholder colorful.Color
	texture     string

	patched  atomic.Pointer[colorful.Color]
	released atomic.Bool
}

// NewMaterial creates a material with a placeholder color and optional texture ref
func NewMaterial(placeholder colorful.Color, texture string) *Material {
	return &Material{placeholder: placeholder, texture: texture}
}

// Color returns the texture color once loaded, otherwise the placeholder
func (m *Material) Color() colorful.Color {
	if c := m.patched.Load(); c != nil {
		return *c
	}
	return m.placeholder
}

// Texture returns the texture reference, empty when none
func (m *Material) Texture() string {
	return m.texture
}

// Loaded reports whether the texture color has been applied
func (m *Material) Loaded() bool {
	return m.patched.Load() != nil
}

// ApplyTexture patches the material color; ignored after Release
func (m *Material) ApplyTexture(c colorful.Color) {
	if m.released.Load() {
		return
	}
	m.patched.Store(&c)
}

// Bind requests the texture from loader, no-op without a texture ref
func (m *Material) Bind(loader TextureLoader) {
	if loader == nil || m.texture == "" || m.released.Load() {
		return
	}
	loader.Load(m.texture, m.ApplyTexture)
}

// Release drops the texture; returns false if already released
func (m *Material) Release() bool {
	if !m.released.CompareAndSwap(false, true) {
		return false
	}
	m.patched.Store(nil)
	return true
}

// Released reports whether Release has been called
func (m *Material) Released() bool {
	return m.released.Load()
}
