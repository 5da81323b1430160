// Package camera implements a damped orbit camera with an optional tracking target
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/vmath"
)

// maxElevation keeps the orbit camera off the poles where LookAt degenerates
const maxElevation = math.Pi/2 - 0.01

// Locator resolves a tracked body's position by name
type Locator func(name string) (r3.Vec, bool)

// Camera orbits a look-at target; user input sets goals and Update eases toward them
type Camera struct {
	fov     float64 // degrees
	near    float64
	far     float64
	damping float64
	minDist float64
	maxDist float64

	target r3.Vec
	eye    r3.Vec

	distance  float64
	azimuth   float64
	elevation float64

	goalDistance  float64
	goalAzimuth   float64
	goalElevation float64

	tracking    string
	trackOffset r3.Vec
}

// New creates a camera at cfg.Position looking at cfg.Target
func New(cfg config.CameraConfig) *Camera {
	c := &Camera{
		fov:         cfg.FOV,
		near:        cfg.Near,
		far:         cfg.Far,
		damping:     cfg.Damping,
		minDist:     cfg.MinDistance,
		maxDist:     cfg.MaxDistance,
		target:      cfg.Target.Vec(),
		eye:         cfg.Position.Vec(),
		trackOffset: cfg.TrackOffset.Vec(),
	}

	rel := r3.Sub(c.eye, c.target)
	c.distance = vmath.Clamp(r3.Norm(rel), c.minDist, c.maxDist)
	c.azimuth = math.Atan2(rel.X, rel.Z)
	if c.distance > 0 {
		c.elevation = vmath.Clamp(math.Asin(vmath.Clamp(rel.Y/r3.Norm(rel), -1, 1)), -maxElevation, maxElevation)
	}
	c.goalDistance, c.goalAzimuth, c.goalElevation = c.distance, c.azimuth, c.elevation
	c.eye = c.orbitEye()
	return c
}

// Orbit rotates the goal orientation by the given angles in radians
func (c *Camera) Orbit(dAzimuth, dElevation float64) {
	c.goalAzimuth += dAzimuth
	c.goalElevation = vmath.Clamp(c.goalElevation+dElevation, -maxElevation, maxElevation)
}

// Zoom scales the goal distance by factor, clamped to the configured limits
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.goalDistance = vmath.Clamp(c.goalDistance*factor, c.minDist, c.maxDist)
}

// Track follows the named body; empty name returns to orbit mode
func (c *Camera) Track(name string) {
	c.tracking = name
}

// Tracking returns the tracked body name, empty in orbit mode
func (c *Camera) Tracking() string {
	return c.tracking
}

// Update moves the camera one tick
// Tracking places the eye at target + offset; otherwise current orbit eases toward goal by the damping factor
func (c *Camera) Update(locate Locator) {
	if c.tracking != "" && locate != nil {
		if pos, ok := locate(c.tracking); ok {
			c.eye = r3.Add(pos, c.trackOffset)
			c.target = pos
			return
		}
	}

	c.distance = vmath.Lerp(c.distance, c.goalDistance, c.damping)
	c.azimuth = vmath.Lerp(c.azimuth, c.goalAzimuth, c.damping)
	c.elevation = vmath.Lerp(c.elevation, c.goalElevation, c.damping)
	if c.tracking == "" {
		c.target = r3.Vec{}
	}
	c.eye = c.orbitEye()
}

func (c *Camera) orbitEye() r3.Vec {
	sinEl, cosEl := math.Sincos(c.elevation)
	sinAz, cosAz := math.Sincos(c.azimuth)
	return r3.Add(c.target, r3.Vec{
		X: c.distance * cosEl * sinAz,
		Y: c.distance * sinEl,
		Z: c.distance * cosEl * cosAz,
	})
}

// Eye returns the camera position
func (c *Camera) Eye() r3.Vec { return c.eye }

// Target returns the look-at point
func (c *Camera) Target() r3.Vec { return c.target }

// Distance returns the current orbit distance
func (c *Camera) Distance() float64 { return c.distance }

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float64 { return c.fov }

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(vmath.ToGL(c.eye), vmath.ToGL(c.target), mgl64.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for aspect (width/height)
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.fov), aspect, c.near, c.far)
}

// State is the wire form of the camera
type State struct {
	Eye      [3]float64 `json:"eye"`
	Target   [3]float64 `json:"target"`
	FOV      float64    `json:"fov"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
	Tracking string     `json:"tracking,omitempty"`
}

// State returns a copy of the camera for snapshots
func (c *Camera) State() State {
	return State{
		Eye:      [3]float64{c.eye.X, c.eye.Y, c.eye.Z},
		Target:   [3]float64{c.target.X, c.target.Y, c.target.Z},
		FOV:      c.fov,
		Near:     c.near,
		Far:      c.far,
		Tracking: c.tracking,
	}
}
