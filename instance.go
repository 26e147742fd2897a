package shade

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/f32"
)

// Wire sizes of the per-instance vertex-buffer payload, in vec4 rows.
const (
	// SurfaceInstanceRows is the packed size of a lit-geometry instance:
	// 4 model rows followed by 3 normal-matrix rows.
	SurfaceInstanceRows = 7

	// ShapeInstanceRows is the packed size of a UI-shape instance:
	// 4 model rows, fill color, border color, corner radii, border
	// widths, and a flags row.
	ShapeInstanceRows = 9

	// legacyShapeInstanceRows is the packed size of the scalar shape
	// layout used by older producers: 4 model rows, fill color, border
	// color, and a (round, border, textured, 0) params row. Uniform
	// radii and border widths are expanded from the two scalars.
	legacyShapeInstanceRows = 7
)

// Instance is one drawable occurrence of a shared mesh or shape,
// parameterized by its own transform and visual attributes. Instances are
// immutable for the duration of a draw call; the external instance-buffer
// manager re-uploads them per frame.
//
// Model and Normal hold the packed row vectors exactly as they cross the
// wire boundary. Normal rows are meaningful only for lit geometry; the
// shape pipeline ignores them.
type Instance struct {
	Model  [4]f32.Vec4
	Normal [3]f32.Vec4

	// Shape payload. Color doubles as the tint for lit geometry.
	Color       RGBA
	BorderColor RGBA
	Radii       CornerRadii
	Borders     BorderWidths
	Textured    bool
}

// SetModelMatrix packs a model matrix into the instance's four row vectors.
func (in *Instance) SetModelMatrix(m mgl32.Mat4) {
	for i := 0; i < 4; i++ {
		in.Model[i] = f32.Vec4(m.Row(i))
	}
}

// ModelMatrix reconstructs the model matrix by stacking the four packed
// rows. No validation is performed; malformed matrices are the producer's
// responsibility.
func (in *Instance) ModelMatrix() mgl32.Mat4 {
	return mgl32.Mat4FromRows(
		mgl32.Vec4(in.Model[0]),
		mgl32.Vec4(in.Model[1]),
		mgl32.Vec4(in.Model[2]),
		mgl32.Vec4(in.Model[3]),
	)
}

// SetNormalMatrix packs a normal matrix into the instance's three row
// vectors. The W component of each row is zero on the wire.
func (in *Instance) SetNormalMatrix(m mgl32.Mat3) {
	for i := 0; i < 3; i++ {
		r := m.Row(i)
		in.Normal[i] = f32.Vec4{r.X(), r.Y(), r.Z(), 0}
	}
}

// NormalMatrix reconstructs the 3x3 normal matrix from the packed rows.
func (in *Instance) NormalMatrix() mgl32.Mat3 {
	return mgl32.Mat3FromRows(
		mgl32.Vec3{in.Normal[0][0], in.Normal[0][1], in.Normal[0][2]},
		mgl32.Vec3{in.Normal[1][0], in.Normal[1][1], in.Normal[1][2]},
		mgl32.Vec3{in.Normal[2][0], in.Normal[2][1], in.Normal[2][2]},
	)
}

// NormalMatrixOf derives the normal matrix for a model matrix: the inverse
// transpose of its upper-left 3x3, so normals transform correctly under
// non-uniform scale. Producers call this once per instance per frame.
func NormalMatrixOf(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// EncodeSurface packs a lit-geometry instance into its wire rows.
func (in *Instance) EncodeSurface() []f32.Vec4 {
	rows := make([]f32.Vec4, 0, SurfaceInstanceRows)
	rows = append(rows, in.Model[0], in.Model[1], in.Model[2], in.Model[3])
	rows = append(rows, in.Normal[0], in.Normal[1], in.Normal[2])
	return rows
}

// EncodeShape packs a UI-shape instance into its wire rows.
func (in *Instance) EncodeShape() []f32.Vec4 {
	textured := float32(0)
	if in.Textured {
		textured = 1
	}
	rows := make([]f32.Vec4, 0, ShapeInstanceRows)
	rows = append(rows, in.Model[0], in.Model[1], in.Model[2], in.Model[3])
	rows = append(rows,
		f32.Vec4{in.Color.R, in.Color.G, in.Color.B, in.Color.A},
		f32.Vec4{in.BorderColor.R, in.BorderColor.G, in.BorderColor.B, in.BorderColor.A},
		f32.Vec4{in.Radii.TopRight, in.Radii.TopLeft, in.Radii.BottomLeft, in.Radii.BottomRight},
		f32.Vec4{in.Borders.Top, in.Borders.Bottom, in.Borders.Right, in.Borders.Left},
		f32.Vec4{textured, 0, 0, 0},
	)
	return rows
}

// DecodeSurfaceInstance unpacks a lit-geometry instance from its wire rows.
func DecodeSurfaceInstance(rows []f32.Vec4) (Instance, error) {
	if len(rows) != SurfaceInstanceRows {
		return Instance{}, fmt.Errorf("shade: surface instance needs %d rows, got %d", SurfaceInstanceRows, len(rows))
	}
	var in Instance
	copy(in.Model[:], rows[:4])
	copy(in.Normal[:], rows[4:7])
	in.Color = White
	return in, nil
}

// DecodeShapeInstance unpacks a UI-shape instance from its wire rows.
// Both the full per-corner/per-edge layout and the legacy scalar layout
// are accepted; the legacy (round, border, textured, 0) params row expands
// into uniform radii and border widths.
func DecodeShapeInstance(rows []f32.Vec4) (Instance, error) {
	switch len(rows) {
	case ShapeInstanceRows:
		var in Instance
		copy(in.Model[:], rows[:4])
		in.Color = NewRGBA(rows[4][0], rows[4][1], rows[4][2], rows[4][3])
		in.BorderColor = NewRGBA(rows[5][0], rows[5][1], rows[5][2], rows[5][3])
		in.Radii = CornerRadii{
			TopRight:    rows[6][0],
			TopLeft:     rows[6][1],
			BottomLeft:  rows[6][2],
			BottomRight: rows[6][3],
		}
		in.Borders = BorderWidths{
			Top:    rows[7][0],
			Bottom: rows[7][1],
			Right:  rows[7][2],
			Left:   rows[7][3],
		}
		in.Textured = rows[8][0] != 0
		return in, nil
	case legacyShapeInstanceRows:
		var in Instance
		copy(in.Model[:], rows[:4])
		in.Color = NewRGBA(rows[4][0], rows[4][1], rows[4][2], rows[4][3])
		in.BorderColor = NewRGBA(rows[5][0], rows[5][1], rows[5][2], rows[5][3])
		in.Radii = UniformRadii(rows[6][0])
		in.Borders = UniformBorders(rows[6][1])
		in.Textured = rows[6][2] != 0
		return in, nil
	default:
		return Instance{}, fmt.Errorf("shade: shape instance needs %d or %d rows, got %d", ShapeInstanceRows, legacyShapeInstanceRows, len(rows))
	}
}
