package shade

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// FragmentFunc shades one fragment at a normalized surface coordinate.
// The returned bool reports discard: a discarded fragment leaves the
// target pixel untouched, including its depth contribution.
type FragmentFunc func(u, v float32) (RGBA, bool)

// RenderFragments evaluates a fragment function at every pixel center of
// the target, mapping the pixel grid onto the unit square. It is the
// reference rasterizer: each invocation is independent, matching the
// data-parallel execution model of the GPU path.
func RenderFragments(t RenderTarget, fn FragmentFunc) {
	w, h := t.Width(), t.Height()
	if w <= 0 || h <= 0 {
		return
	}
	Logger().Debug("shade: software pass", slog.Int("width", w), slog.Int("height", h))

	pm := t.Pixmap()
	for y := 0; y < h; y++ {
		v := (float32(y) + 0.5) / float32(h)
		for x := 0; x < w; x++ {
			u := (float32(x) + 0.5) / float32(w)
			if c, discard := fn(u, v); !discard {
				pm.SetPixel(x, y, c)
			}
		}
	}
}

// Rasterize evaluates the shape program for one instance across the whole
// target, treating the target as the instance's unit quad.
func (p *ShapeProgram) Rasterize(t RenderTarget, inst Instance) {
	RenderFragments(t, func(u, v float32) (RGBA, bool) {
		return p.FragmentStage(inst, Varyings{TexCoord: mgl32.Vec2{u, v}})
	})
}

// RasterizePatch shades a world-space parallelogram with the surface
// program: the patch spans origin plus u*du + v*dv, with a constant normal
// du x dv. It is the material-preview pass used to exercise the full lit
// pipeline without a mesh.
func (p *SurfaceProgram) RasterizePatch(t RenderTarget, inst Instance, origin, du, dv mgl32.Vec3) {
	normal := du.Cross(dv)
	RenderFragments(t, func(u, v float32) (RGBA, bool) {
		vary := Varyings{
			TexCoord:      mgl32.Vec2{u, v},
			WorldPosition: origin.Add(du.Mul(u)).Add(dv.Mul(v)),
			WorldNormal:   normal,
		}
		return p.FragmentStage(inst, vary)
	})
}
