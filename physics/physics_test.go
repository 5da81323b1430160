package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lixenwraith/orrery/vmath"
)

// testBody is a minimal Actor for exercising the calculator
type testBody struct {
	mass   float64
	radius float64
	pos    r3.Vec
	force  r3.Vec
}

func (b *testBody) Mass() float64       { return b.mass }
func (b *testBody) Radius() float64     { return b.radius }
func (b *testBody) Position() r3.Vec    { return b.pos }
func (b *testBody) ApplyForce(f r3.Vec) { b.force = r3.Add(b.force, f) }

func TestGravitationalForceAntisymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b *testBody
	}{
		{"star and planet", &testBody{mass: 1000, pos: r3.Vec{}}, &testBody{mass: 1.5, pos: r3.Vec{X: 12}}},
		{"off plane", &testBody{mass: 3, pos: r3.Vec{X: 1, Y: 2, Z: 3}}, &testBody{mass: 7, pos: r3.Vec{X: -4, Y: 0.5, Z: 9}}},
		{"at floor", &testBody{mass: 2, pos: r3.Vec{}}, &testBody{mass: 2, pos: r3.Vec{Z: MinForceDistance}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fab := GravitationalForce(tt.a, tt.b)
			fba := GravitationalForce(tt.b, tt.a)
			if !vmath.ApproxEqual(fab, r3.Scale(-1, fba), 1e-15) {
				t.Errorf("F(a,b)=%v, F(b,a)=%v, not antisymmetric", fab, fba)
			}
		})
	}
}

func TestGravitationalForceMagnitudeAndDirection(t *testing.T) {
	a := &testBody{mass: 1000}
	b := &testBody{mass: 2, pos: r3.Vec{X: 10}}

	f := GravitationalForce(a, b)
	want := G * 1000 * 2 / 100
	if math.Abs(r3.Norm(f)-want) > 1e-18 {
		t.Errorf("magnitude = %v, want %v", r3.Norm(f), want)
	}
	if f.X <= 0 || f.Y != 0 || f.Z != 0 {
		t.Errorf("force on a should point toward b along +X, got %v", f)
	}
}

func TestGravitationalForceBelowFloorIsZero(t *testing.T) {
	a := &testBody{mass: 1000}
	b := &testBody{mass: 1000, pos: r3.Vec{X: 0.05}}

	if f := GravitationalForce(a, b); f != (r3.Vec{}) {
		t.Errorf("expected zero force at 0.05 separation, got %v", f)
	}
	if f := GravitationalForce(a, a); f != (r3.Vec{}) {
		t.Errorf("expected zero self force, got %v", f)
	}
}

func TestCircularOrbitVelocity(t *testing.T) {
	star := &testBody{mass: 1000}
	tests := []struct {
		name string
		pos  r3.Vec
	}{
		{"on x axis", r3.Vec{X: 12}},
		{"on z axis", r3.Vec{Z: -30}},
		{"diagonal", r3.Vec{X: 20, Z: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &testBody{mass: 1, pos: tt.pos}
			r := vmath.Distance(p.pos, star.pos)
			v := CircularOrbitVelocity(p, star, r)

			want := math.Sqrt(G * star.mass / r)
			if math.Abs(r3.Norm(v)-want) > 1e-12 {
				t.Errorf("speed = %v, want %v", r3.Norm(v), want)
			}
			if d := r3.Dot(v, r3.Sub(p.pos, star.pos)); math.Abs(d) > 1e-9 {
				t.Errorf("velocity not perpendicular to radius, dot = %v", d)
			}
			if v.Y != 0 {
				t.Errorf("velocity left the orbital plane: %v", v)
			}
		})
	}
}

func TestCircularOrbitVelocityNonPositiveRadius(t *testing.T) {
	star := &testBody{mass: 1000}
	p := &testBody{pos: r3.Vec{X: 1}}
	for _, r := range []float64{0, -5} {
		if v := CircularOrbitVelocity(p, star, r); v != (r3.Vec{}) {
			t.Errorf("r=%v: expected zero velocity, got %v", r, v)
		}
	}
}

func TestNewCalculatorFallback(t *testing.T) {
	if c := NewCalculator(0); c.G != G {
		t.Errorf("NewCalculator(0).G = %v, want %v", c.G, G)
	}
	if c := NewCalculator(2); c.G != 2 {
		t.Errorf("NewCalculator(2).G = %v, want 2", c.G)
	}
}

func TestCheckCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b *testBody
		want bool
	}{
		{"overlapping", &testBody{radius: 5}, &testBody{radius: 1.6, pos: r3.Vec{X: 6}}, true},
		{"touching", &testBody{radius: 1}, &testBody{radius: 1, pos: r3.Vec{X: 2}}, false},
		{"apart", &testBody{radius: 5}, &testBody{radius: 1.6, pos: r3.Vec{X: 12}}, false},
		{"coincident", &testBody{radius: 0.1}, &testBody{radius: 0.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCollision(tt.a, tt.b); got != tt.want {
				t.Errorf("CheckCollision(a,b) = %v, want %v", got, tt.want)
			}
			if CheckCollision(tt.a, tt.b) != CheckCollision(tt.b, tt.a) {
				t.Error("CheckCollision is not symmetric")
			}
		})
	}
}

func TestCollisionsPairs(t *testing.T) {
	bodies := []*testBody{
		{radius: 5},
		{radius: 1, pos: r3.Vec{X: 5.5}},
		{radius: 1, pos: r3.Vec{X: 40}},
	}
	pairs := Collisions(bodies)
	if len(pairs) != 1 || pairs[0] != [2]int{0, 1} {
		t.Errorf("Collisions = %v, want [[0 1]]", pairs)
	}
}

func TestFieldPairwiseConservesMomentum(t *testing.T) {
	bodies := []Actor{
		&testBody{mass: 1000},
		&testBody{mass: 2, pos: r3.Vec{X: 12}},
		&testBody{mass: 3, pos: r3.Vec{Z: -18}},
		&testBody{mass: 0, pos: r3.Vec{X: 70}},
	}

	field := NewField(Default)
	if err := field.Accumulate(bodies); err != nil {
		t.Fatalf("Accumulate: %v", err)
	}

	var net r3.Vec
	for _, b := range bodies {
		net = r3.Add(net, b.(*testBody).force)
	}
	if r3.Norm(net) > 1e-15 {
		t.Errorf("net force %v, want ~0", net)
	}
	if f := bodies[3].(*testBody).force; f != (r3.Vec{}) {
		t.Errorf("massless body received force %v", f)
	}
}

func TestFieldOctreeMatchesPairwise(t *testing.T) {
	build := func() []Actor {
		var out []Actor
		for i := 0; i < 20; i++ {
			angle := float64(i) * 0.7
			out = append(out, &testBody{
				mass: 1 + float64(i%3),
				pos:  r3.Vec{X: 10 * math.Cos(angle) * float64(1+i%4), Z: 10 * math.Sin(angle) * float64(1+i%4), Y: float64(i%2) * 0.5},
			})
		}
		return out
	}

	exact := build()
	NewField(Default).Accumulate(exact)

	approx := build()
	field := NewField(Default)
	// theta 0 walks every particle, so the octree path must agree with the pairwise sum
	field.SetApproximation(0, 0)
	if err := field.Accumulate(approx); err != nil {
		t.Fatalf("Accumulate: %v", err)
	}

	for i := range exact {
		e := exact[i].(*testBody).force
		a := approx[i].(*testBody).force
		if !vmath.ApproxEqual(e, a, 1e-15) {
			t.Errorf("body %d: octree %v, pairwise %v", i, a, e)
		}
	}
}

func TestFieldOctreeFailureFallsBackToPairwise(t *testing.T) {
	build := func() []Actor {
		return []Actor{
			&testBody{mass: 1, pos: r3.Vec{X: 1}},
			&testBody{mass: 1, pos: r3.Vec{X: 1}},
			&testBody{mass: 1, pos: r3.Vec{X: 5}},
		}
	}

	exact := build()
	NewField(Default).Accumulate(exact)

	bodies := build()
	field := NewField(Default)
	field.SetApproximation(0.5, 0)
	if err := field.Accumulate(bodies); err == nil {
		t.Fatal("Accumulate with coincident bodies returned nil error")
	}

	for i := range bodies {
		got := bodies[i].(*testBody).force
		want := exact[i].(*testBody).force
		if got != want {
			t.Errorf("body %d: force %v, want %v", i, got, want)
		}
	}
	if f := bodies[2].(*testBody).force; f == (r3.Vec{}) {
		t.Error("outer body received no force")
	}
}
