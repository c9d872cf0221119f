package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearPlane float32 = 0.1
	farPlane  float32 = 500.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the camera's frustum planes from its view and
// projection matrices (Gribb/Hartmann). It needs no window, only the
// viewport aspect ratio.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}

	vp := rl.MatrixMultiply(view, proj)

	// Rows of the combined matrix; each plane is row4 ± rowN.
	row := func(i int) (x, y, z, w float32) {
		switch i {
		case 0:
			return vp.M0, vp.M4, vp.M8, vp.M12
		case 1:
			return vp.M1, vp.M5, vp.M9, vp.M13
		case 2:
			return vp.M2, vp.M6, vp.M10, vp.M14
		}
		return vp.M3, vp.M7, vp.M11, vp.M15
	}
	wx, wy, wz, ww := row(3)

	var f Frustum
	for i := 0; i < 3; i++ {
		x, y, z, d := row(i)
		f.planes[i*2] = normalizePlane(Plane{
			normal:   rl.Vector3{X: wx + x, Y: wy + y, Z: wz + z},
			distance: ww + d,
		})
		f.planes[i*2+1] = normalizePlane(Plane{
			normal:   rl.Vector3{X: wx - x, Y: wy - y, Z: wz - z},
			distance: ww - d,
		})
	}
	return f
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

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}
