package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Shape is a world-space collision volume.
type Shape interface {
	Bounds() AABB
}

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func (s Sphere) Bounds() AABB {
	d := s.Radius * 2
	return NewAABBFromCenter(s.Center, rl.Vector3{X: d, Y: d, Z: d})
}

func (s Sphere) Intersects(o Sphere) bool {
	r := s.Radius + o.Radius
	return rl.Vector3LengthSqr(rl.Vector3Subtract(s.Center, o.Center)) <= r*r
}

func (s Sphere) IntersectsAABB(b AABB) bool {
	closest := b.ClosestPoint(s.Center)
	return rl.Vector3LengthSqr(rl.Vector3Subtract(closest, s.Center)) <= s.Radius*s.Radius
}

// Overlap tests two shapes. Unknown shape types fall back to their bounds.
func Overlap(a, b Shape) bool {
	switch sa := a.(type) {
	case Sphere:
		switch sb := b.(type) {
		case Sphere:
			return sa.Intersects(sb)
		case AABB:
			return sa.IntersectsAABB(sb)
		}
	case AABB:
		switch sb := b.(type) {
		case Sphere:
			return sb.IntersectsAABB(sa)
		case AABB:
			return sa.Intersects(sb)
		}
	}
	return a.Bounds().Intersects(b.Bounds())
}
