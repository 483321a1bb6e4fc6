package physics

import (
	"math"

	"cubejam/internal/components"
	"cubejam/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const rayEpsilon = 1e-6

// Raycast returns the closest collider hit along direction within
// maxDistance. Colliders that contain the origin are not reported, so a ray
// cast from inside or on the surface of the caster's own body skips it.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) < rayEpsilon || maxDistance <= 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	consider := func(obj *engine.GameObject, h engine.RaycastResult, ok bool) {
		if ok && h.Distance <= closest.Distance {
			closest = h
			closest.GameObject = obj
			hit = true
		}
	}

	for _, obj := range p.AllObjects() {
		if !obj.Active {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			lo, hi := box.Bounds()
			h, ok := raycastBox(origin, direction, AABB{Min: lo, Max: hi}, maxDistance)
			consider(obj, h, ok)
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			h, ok := raycastSphere(origin, direction, sphere.GetCenter(), sphere.WorldRadius(), maxDistance)
			consider(obj, h, ok)
		}
		if capsule := engine.GetComponent[*components.CapsuleCollider](obj); capsule != nil {
			a, b := capsule.Segment()
			h, ok := raycastCapsule(origin, direction, a, b, capsule.WorldRadius(), maxDistance)
			consider(obj, h, ok)
		}
	}

	return closest, hit
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (engine.RaycastResult, bool) {
	if box.Contains(origin) {
		return engine.RaycastResult{}, false
	}

	tmin := float32(-math.MaxFloat32)
	tmax := float32(math.MaxFloat32)
	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		return tmin <= tmax
	}
	if !slab(origin.X, direction.X, box.Min.X, box.Max.X) ||
		!slab(origin.Y, direction.Y, box.Min.Y, box.Max.Y) ||
		!slab(origin.Z, direction.Z, box.Min.Z, box.Max.Z) {
		return engine.RaycastResult{}, false
	}

	t := tmin
	if t < 0 || t > maxDistance {
		return engine.RaycastResult{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

// raySphereDistance returns the entry distance of a ray into a sphere.
// direction must be normalized. An origin inside the sphere is a miss.
func raySphereDistance(origin, direction, center rl.Vector3, radius float32) (float32, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius
	if c <= 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		return 0, false
	}
	return t, true
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	t, ok := raySphereDistance(origin, direction, center, radius)
	if !ok || t > maxDistance {
		return engine.RaycastResult{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return engine.RaycastResult{Point: point, Normal: normal, Distance: t}, true
}

// raycastCapsule intersects the ray with both end spheres and the
// cylindrical body between them and keeps the nearest entry.
func raycastCapsule(origin, direction, a, b rl.Vector3, radius, maxDistance float32) (engine.RaycastResult, bool) {
	if rl.Vector3Distance(origin, closestOnSegment(origin, a, b)) <= radius {
		return engine.RaycastResult{}, false
	}

	best := float32(math.MaxFloat32)
	for _, c := range [2]rl.Vector3{a, b} {
		if t, ok := raySphereDistance(origin, direction, c, radius); ok && t < best {
			best = t
		}
	}

	ba := rl.Vector3Subtract(b, a)
	length := rl.Vector3Length(ba)
	if length > rayEpsilon {
		axis := rl.Vector3Scale(ba, 1/length)
		oa := rl.Vector3Subtract(origin, a)
		dPerp := rl.Vector3Subtract(direction, rl.Vector3Scale(axis, rl.Vector3DotProduct(direction, axis)))
		oPerp := rl.Vector3Subtract(oa, rl.Vector3Scale(axis, rl.Vector3DotProduct(oa, axis)))
		qa := rl.Vector3DotProduct(dPerp, dPerp)
		qb := 2 * rl.Vector3DotProduct(dPerp, oPerp)
		qc := rl.Vector3DotProduct(oPerp, oPerp) - radius*radius
		if qa > rayEpsilon {
			if disc := qb*qb - 4*qa*qc; disc >= 0 {
				t := (-qb - float32(math.Sqrt(float64(disc)))) / (2 * qa)
				along := rl.Vector3DotProduct(rl.Vector3Add(oa, rl.Vector3Scale(direction, t)), axis)
				if t >= 0 && along >= 0 && along <= length && t < best {
					best = t
				}
			}
		}
	}

	if best > maxDistance {
		return engine.RaycastResult{}, false
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, best))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, closestOnSegment(point, a, b)))
	return engine.RaycastResult{Point: point, Normal: normal, Distance: best}, true
}

func closestOnSegment(p, a, b rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	lenSq := rl.Vector3DotProduct(ab, ab)
	if lenSq < rayEpsilon {
		return a
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab) / lenSq
	t = rl.Clamp(t, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
