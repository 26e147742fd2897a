package shade

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the fixed per-vertex input contract consumed by every shading
// program: position, texture coordinate, and normal.
type Vertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
	Normal   mgl32.Vec3
}

// Varyings are the per-vertex outputs interpolated across a triangle and
// handed to the fragment stage.
type Varyings struct {
	// ClipPosition is the clip-space vertex position.
	ClipPosition mgl32.Vec4

	// TexCoord is passed through unchanged. For UI shapes it doubles as
	// the normalized surface coordinate fed to the SDF renderer.
	TexCoord mgl32.Vec2

	// WorldPosition and WorldNormal feed the illumination accumulator.
	// WorldNormal is not normalized here; fragment evaluation
	// re-normalizes after interpolation.
	WorldPosition mgl32.Vec3
	WorldNormal   mgl32.Vec3
}

// TransformVertex runs the shared vertex stage: reconstruct the instance
// matrices from their packed rows, transform position to world and clip
// space, apply the normal matrix, and pass the texture coordinate through.
//
// The transformer performs no validation: degenerate or non-invertible
// matrices are the producer's responsibility.
func TransformVertex(cam Camera, inst Instance, v Vertex) Varyings {
	model := inst.ModelMatrix()
	world := model.Mul4x1(v.Position.Vec4(1))
	return Varyings{
		ClipPosition:  cam.ViewProjection.Mul4x1(world),
		TexCoord:      v.TexCoord,
		WorldPosition: world.Vec3(),
		WorldNormal:   inst.NormalMatrix().Mul3x1(v.Normal),
	}
}
