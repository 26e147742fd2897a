package shade

import "github.com/go-gl/mathgl/mgl32"

// Option configures a program during creation.
// Use functional options to customize program behavior.
//
// Example:
//
//	// Baseline Lambertian surface shading
//	prog := shade.NewSurfaceProgram(material, textures)
//
//	// With the optional Blinn specular extension
//	prog := shade.NewSurfaceProgram(material, textures,
//		shade.WithSpecular(32, 0.5))
type Option func(*programOptions)

// programOptions holds optional configuration shared by program creation.
type programOptions struct {
	specular     bool
	shininess    float32
	specStrength float32
	shapeDim     mgl32.Vec2
}

// defaultProgramOptions returns the default program options.
func defaultProgramOptions() programOptions {
	return programOptions{
		shapeDim: mgl32.Vec2{1, 1},
	}
}

// WithSpecular enables the view-dependent Blinn specular extension on a
// SurfaceProgram. shininess is the specular exponent; strength scales the
// reflection. The extension is off by default: the baseline accumulator is
// Lambertian plus ambient only.
func WithSpecular(shininess, strength float32) Option {
	return func(o *programOptions) {
		o.specular = true
		o.shininess = shininess
		o.specStrength = strength
	}
}

// WithShapeDims sets the shape-space dimension vector a ShapeProgram hands
// to the rounded-rect renderer. The default is the unit square, which is
// the only dimension the engine's UI pass uses.
func WithShapeDims(dim mgl32.Vec2) Option {
	return func(o *programOptions) {
		o.shapeDim = dim
	}
}
