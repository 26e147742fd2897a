package shade

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// TextureSet is the per-material texture bindings, modeled as explicit
// samplers instead of ambient GPU state. A nil slot is an unbound texture
// and samples as opaque white, the multiplicative identity.
//
// Roughness, Normal, and Occlusion are staged inputs for a future
// micro-facet extension: they ride along in the binding contract but do
// not affect color in the baseline evaluator.
type TextureSet struct {
	Diffuse   Sampler
	Roughness Sampler
	Emissive  Sampler
	Normal    Sampler
	Occlusion Sampler
}

// SurfaceProgram is the lit-geometry shading pipeline: geometry transform,
// multi-light illumination, and material evaluation.
//
// Camera and lights are bound once per draw and must not change while a
// draw is evaluating. The per-fragment methods are pure over the bound
// state and safe to call concurrently.
type SurfaceProgram struct {
	camera     Camera
	lights     []Light
	lightCount int
	ambient    mgl32.Vec3

	material Material
	textures TextureSet
	opts     programOptions
}

// NewSurfaceProgram creates a lit-surface program for a material and its
// texture bindings.
func NewSurfaceProgram(material Material, textures TextureSet, opts ...Option) *SurfaceProgram {
	o := defaultProgramOptions()
	for _, opt := range opts {
		opt(&o)
	}
	Logger().Debug("shade: surface program",
		slog.String("alphaMode", material.AlphaMode.String()),
		slog.Bool("specular", o.specular))
	return &SurfaceProgram{material: material, textures: textures, opts: o}
}

// BindCamera binds the per-draw camera block.
func (p *SurfaceProgram) BindCamera(cam Camera) {
	p.camera = cam
}

// BindLights binds the per-draw light list, its count scalar, and the
// ambient term. The slice is read, never mutated; entries at index >=
// count are never touched.
func (p *SurfaceProgram) BindLights(lights []Light, count int, ambient mgl32.Vec3) {
	p.lights = lights
	p.lightCount = count
	p.ambient = ambient
}

// VertexStage runs the shared geometry transformer for one vertex.
func (p *SurfaceProgram) VertexStage(inst Instance, v Vertex) Varyings {
	return TransformVertex(p.camera, inst, v)
}

// FragmentStage shades one fragment. The returned bool reports discard.
func (p *SurfaceProgram) FragmentStage(inst Instance, vary Varyings) (RGBA, bool) {
	u, v := vary.TexCoord.X(), vary.TexCoord.Y()

	diffuse := boundOrWhite(p.textures.Diffuse).Sample(u, v)
	emissive := boundOrWhite(p.textures.Emissive).Sample(u, v)

	illum := Illuminate(p.camera.ViewPosition, vary.WorldPosition, vary.WorldNormal,
		p.lights, p.lightCount, p.ambient)

	if p.opts.specular && vary.WorldNormal.Len() > 0 {
		normal := vary.WorldNormal.Normalize()
		n := min(p.lightCount, len(p.lights))
		for i := 0; i < n; i++ {
			illum = illum.Add(BlinnSpecular(p.lights[i], p.camera.ViewPosition,
				vary.WorldPosition, normal, p.opts.shininess, p.opts.specStrength))
		}
	}

	return p.material.Shade(diffuse, illum, emissive)
}

// ShapeProgram is the UI-shape pipeline: geometry transform followed by
// the rounded-rect/border renderer. The consumption mode is fixed at
// construction; per-instance radii, border widths, and colors arrive with
// each instance.
type ShapeProgram struct {
	camera  Camera
	mode    CoverageMode
	texture Sampler
	dim     mgl32.Vec2
}

// NewShapeProgram creates a shape program with the given coverage mode.
func NewShapeProgram(mode CoverageMode, opts ...Option) *ShapeProgram {
	o := defaultProgramOptions()
	for _, opt := range opts {
		opt(&o)
	}
	Logger().Debug("shade: shape program", slog.String("mode", mode.String()))
	return &ShapeProgram{mode: mode, dim: o.shapeDim}
}

// BindCamera binds the per-draw camera block.
func (p *ShapeProgram) BindCamera(cam Camera) {
	p.camera = cam
}

// BindTexture binds the shape texture sampled when an instance's Textured
// flag is set. Nil is the blank white texture.
func (p *ShapeProgram) BindTexture(s Sampler) {
	p.texture = s
}

// VertexStage runs the shared geometry transformer for one vertex.
func (p *ShapeProgram) VertexStage(inst Instance, v Vertex) Varyings {
	return TransformVertex(p.camera, inst, v)
}

// FragmentStage shades one shape fragment at the interpolated surface
// coordinate. The returned bool reports discard.
func (p *ShapeProgram) FragmentStage(inst Instance, vary Varyings) (RGBA, bool) {
	u, v := vary.TexCoord.X(), vary.TexCoord.Y()

	fill := inst.Color
	if inst.Textured {
		fill = boundOrWhite(p.texture).Sample(u, v).Modulate(fill)
	}

	rr := RRect{Dim: p.dim, Radii: inst.Radii, Borders: inst.Borders}
	return rr.Shade(u, v, fill, inst.BorderColor, p.mode)
}
