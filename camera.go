package shade

import "github.com/go-gl/mathgl/mgl32"

// Camera mirrors the per-draw camera uniform block: the world-space view
// position and the combined view-projection matrix. It is bound once per
// draw and treated as immutable for the duration of that draw.
//
// ViewPosition carries a free W component; the baseline evaluators only
// read XYZ, but shader-specific extensions may pack data into W.
type Camera struct {
	ViewPosition   mgl32.Vec4
	ViewProjection mgl32.Mat4
}

// NewCamera creates a camera from a world-space eye position and a
// precomposed view-projection matrix. W of the stored view position is 1.
func NewCamera(eye mgl32.Vec3, viewProjection mgl32.Mat4) Camera {
	return Camera{
		ViewPosition:   mgl32.Vec4{eye.X(), eye.Y(), eye.Z(), 1},
		ViewProjection: viewProjection,
	}
}

// PerspectiveCamera composes a right-handed look-at view with a perspective
// projection. fovy is the vertical field of view in radians.
func PerspectiveCamera(eye, center, up mgl32.Vec3, fovy, aspect, near, far float32) Camera {
	view := mgl32.LookAtV(eye, center, up)
	proj := mgl32.Perspective(fovy, aspect, near, far)
	return NewCamera(eye, proj.Mul4(view))
}

// OrthoCamera composes a look-at view with an orthographic projection,
// typically used for UI shape passes.
func OrthoCamera(eye, center, up mgl32.Vec3, left, right, bottom, top, near, far float32) Camera {
	view := mgl32.LookAtV(eye, center, up)
	proj := mgl32.Ortho(left, right, bottom, top, near, far)
	return NewCamera(eye, proj.Mul4(view))
}

// Eye returns the world-space camera position.
func (c Camera) Eye() mgl32.Vec3 {
	return c.ViewPosition.Vec3()
}
