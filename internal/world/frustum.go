package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	clipNear float32 = 0.1
	clipFar  float32 = 1000.0
)

// Frustum is the six clip planes of a camera: left, right, bottom, top,
// near, far. Plane normals point inward.
type Frustum struct {
	planes [6]Plane
}

// Plane is n·p + d = 0.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the planes from the camera's view-projection matrix
// (Gribb/Hartmann). aspect is width over height.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, clipNear, clipFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, clipNear, clipFar)
	}
	vp := rl.MatrixMultiply(view, proj)

	// Row i of vp is (M[i], M[i+4], M[i+8], M[i+12]).
	row := func(i int) [4]float32 {
		switch i {
		case 0:
			return [4]float32{vp.M0, vp.M4, vp.M8, vp.M12}
		case 1:
			return [4]float32{vp.M1, vp.M5, vp.M9, vp.M13}
		case 2:
			return [4]float32{vp.M2, vp.M6, vp.M10, vp.M14}
		}
		return [4]float32{vp.M3, vp.M7, vp.M11, vp.M15}
	}
	w := row(3)

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		r := row(axis)
		f.planes[axis*2] = planeFrom(w, r, 1)
		f.planes[axis*2+1] = planeFrom(w, r, -1)
	}
	return f
}

func planeFrom(w, r [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w[0] + sign*r[0],
			Y: w[1] + sign*r[1],
			Z: w[2] + sign*r[2],
		},
		distance: w[3] + sign*r[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere is true when the sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}

// ContainsBounds tests the sphere around an axis-aligned box.
func (f *Frustum) ContainsBounds(lo, hi rl.Vector3) bool {
	center := rl.Vector3Scale(rl.Vector3Add(lo, hi), 0.5)
	radius := rl.Vector3Distance(center, hi)
	return f.ContainsSphere(center, radius)
}
