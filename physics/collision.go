package physics

import (
	"github.com/lixenwraith/orrery/vmath"
)

// CheckCollision reports whether the bounding spheres of a and b overlap
// Touching spheres (distance equal to the radius sum) do not collide
func CheckCollision(a, b Body) bool {
	return vmath.Distance(a.Position(), b.Position()) < a.Radius()+b.Radius()
}

// Collisions returns index pairs of overlapping bodies, i < j
func Collisions[T Body](bodies []T) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if CheckCollision(bodies[i], bodies[j]) {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}
