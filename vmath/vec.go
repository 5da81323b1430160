package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tau is a full revolution in radians
const Tau = 2 * math.Pi

// Epsilon is the default tolerance for float comparisons
const Epsilon = 1e-9

// Normalize returns the unit vector of v
// Zero input returns the zero vector; r3.Unit yields NaN there
func Normalize(v r3.Vec) r3.Vec {
	mag := r3.Norm(v)
	if mag == 0 {
		return r3.Vec{}
	}
	inv := 1.0 / mag
	return r3.Vec{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// HorizontalDistance returns the length of v projected on the XZ plane
func HorizontalDistance(v r3.Vec) float64 {
	return math.Hypot(v.X, v.Z)
}

// RotateY rotates v by theta radians about the Y axis
// x' = x·cosθ − z·sinθ, z' = x·sinθ + z·cosθ; Y is preserved
func RotateY(v r3.Vec, theta float64) r3.Vec {
	sin, cos := math.Sincos(theta)
	return r3.Vec{
		X: v.X*cos - v.Z*sin,
		Y: v.Y,
		Z: v.X*sin + v.Z*cos,
	}
}

// HorizontalTangent rotates v by 90° within the XZ plane, dropping Y
func HorizontalTangent(v r3.Vec) r3.Vec {
	return r3.Vec{X: -v.Z, Y: 0, Z: v.X}
}

// NormalizeAngle wraps a into [0, 2π)
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	return a
}

// ApproxEqual reports whether every component of a and b differ by at most eps
func ApproxEqual(a, b r3.Vec, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// IsFinite reports whether no component of v is NaN or infinite
func IsFinite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// ToGL converts an r3 vector into the mathgl representation
func ToGL(v r3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
