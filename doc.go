// Package shade is the procedural shading core of the GoGPU rasterization
// stack: the per-vertex and per-fragment math that turns scene data
// (lights, materials, instance transforms) into final pixel color.
//
// # Overview
//
// shade is the CPU-side reference implementation of the engine's shader
// programs. Every evaluator is a pure function over explicit inputs, so the
// same math that runs in WGSL on the GPU can be called, inspected, and
// tested from plain Go without a graphics context.
//
// Two pipelines are provided:
//
//	SurfaceProgram: vertex transform -> multi-light illumination -> material
//	ShapeProgram:   vertex transform -> rounded-rect/border SDF evaluation
//
// They share the geometry transformer and the per-vertex contract; nothing
// else.
//
// # Quick Start
//
//	import "github.com/gogpu/shade"
//
//	prog := shade.NewShapeProgram(shade.ModeBorderBlend)
//	inst := shade.Instance{
//		Color:       shade.RGB(0.2, 0.4, 0.9),
//		BorderColor: shade.White,
//		Radii:       shade.UniformRadii(0.2),
//		Borders:     shade.UniformBorders(0.05),
//	}
//
//	target := shade.NewPixmapTarget(256, 256)
//	prog.Rasterize(target, inst)
//	target.Pixmap().SavePNG("rrect.png")
//
// # External Collaborators
//
// Buffer upload, texture binding, window and pipeline bootstrap, and draw
// scheduling are owned by the surrounding engine. shade consumes a fixed
// per-draw uniform contract (Camera, Light list, Material bindings,
// per-instance packed rows) and produces one RGBA color per fragment, one
// clip-space position per vertex, and an explicit discard signal.
//
// # Coordinate System
//
// Shape-space surface coordinates follow standard computer graphics
// conventions: origin (0,0) at top-left, u increases right, v increases
// down. World space is right-handed with Y up.
package shade

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
