package celestial

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lucasb-eyer/go-colorful"
)

// Object is the state shared by every body variant
// Variants embed it and override Update
type Object struct {
	name string
	kind Kind

	mass   float64
	radius float64

	position     r3.Vec
	velocity     r3.Vec
	acceleration r3.Vec

	transform Transform
	material  *Material
	disposed  bool
}

func newObject(kind Kind, name string, mass, radius float64, pos, vel r3.Vec, mat *Material) Object {
	if mat == nil {
		mat = NewMaterial(colorful.Color{R: 1, G: 1, B: 1}, "")
	}
	return Object{
		name:      name,
		kind:      kind,
		mass:      mass,
		radius:    radius,
		position:  pos,
		velocity:  vel,
		transform: newTransform(pos),
		material:  mat,
	}
}

func (o *Object) Name() string { return o.name }
func (o *Object) Kind() Kind { return o.kind }
func (o *Object) Mass() float64 { return o.mass }
func (o *Object) Radius() float64 { return o.radius }
func (o *Object) Position() r3.Vec { return o.position }
func (o *Object) Velocity() r3.Vec { return o.velocity }
func (o *Object) Acceleration() r3.Vec { return o.acceleration }
func (o *Object) Transform() Transform { return o.transform }
func (o *Object) Material() *Material { return o.material }
func (o *Object) Disposed() bool { return o.disposed }
func (o *Object) SetVelocity(v r3.Vec) { o.velocity = v }
func (o *Object) rotate(delta r3.Vec) { o.transform.Rotation = r3.Add(o.transform.Rotation, delta) }
func (o *Object) setRadius(r float64) { o.radius = r }
func (o *Object) setScale(scale float64) { o.transform.Scale = scale }

// SetPosition moves the body and its visual together
func (o *Object) SetPosition(p r3.Vec) {
	o.position = p
	o.sync()
}

// Update advances position by velocity·dt
// Accumulated acceleration is left untouched; only Integrate consumes it
func (o *Object) Update(dt float64, _ []Body) {
	o.position = r3.Add(o.position, r3.Scale(dt, o.velocity))
	o.sync()
}

// ApplyForce adds F/m to acceleration; massless bodies ignore force
func (o *Object) ApplyForce(f r3.Vec) {
	if o.mass <= 0 {
		return
	}
	o.acceleration = r3.Add(o.acceleration, r3.Vec{X: f.X / o.mass, Y: f.Y / o.mass, Z: f.Z / o.mass})
}

// Integrate performs one semi-implicit Euler step and clears acceleration
func (o *Object) Integrate(dt float64) {
	o.velocity = r3.Add(o.velocity, r3.Scale(dt, o.acceleration))
	o.position = r3.Add(o.position, r3.Scale(dt, o.velocity))
	o.acceleration = r3.Vec{}
	o.sync()
}

// Dispose releases the material and hides the visual; idempotent
func (o *Object) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.material.Release()
	o.transform.Visible = false
}

// sync copies simulated position into the visual transform
func (o *Object) sync() {
	o.transform.Position = o.position
}

// baseSnapshot fills the fields common to every variant
func (o *Object) baseSnapshot() Snapshot {
	return Snapshot{
		Name:     o.name,
		Kind:     o.kind,
		Mass:     o.mass,
		Radius:   o.radius,
		Position: vec(o.position),
		Velocity: vec(o.velocity),
		Rotation: vec(o.transform.Rotation),
		Scale:    o.transform.Scale,
		Color:    o.material.Color().Hex(),
		Visible:  o.transform.Visible,
	}
}

// Snapshot returns a read-only copy of the body state
func (o *Object) Snapshot() Snapshot {
	return o.baseSnapshot()
}
