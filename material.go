package shade

import "github.com/go-gl/mathgl/mgl32"

// AlphaMode selects how a material resolves transparency.
type AlphaMode uint32

const (
	// AlphaOpaque forces output alpha to 1.
	AlphaOpaque AlphaMode = iota

	// AlphaMask discards fragments whose base alpha falls below the
	// material's cutoff, and forces alpha to 1 otherwise.
	AlphaMask

	// AlphaBlend passes base alpha through for downstream compositing.
	AlphaBlend
)

// String returns a human-readable name for the alpha mode.
func (m AlphaMode) String() string {
	switch m {
	case AlphaOpaque:
		return "Opaque"
	case AlphaMask:
		return "Mask"
	case AlphaBlend:
		return "Blend"
	default:
		return "Unknown"
	}
}

// Material holds the per-material tint constants and metadata quadruple
// from the material uniform block.
//
// MetallicFactor and RoughnessFactor are staged inputs for a future
// micro-facet extension; the baseline evaluator carries them through the
// uniform contract but they do not affect color.
type Material struct {
	DiffuseColor  RGBA
	EmissiveColor RGBA

	MetallicFactor  float32
	RoughnessFactor float32
	AlphaMode       AlphaMode
	AlphaCutoff     float32
}

// DefaultMaterial returns an opaque white material with no emission.
func DefaultMaterial() Material {
	return Material{
		DiffuseColor:  White,
		EmissiveColor: NewRGBA(0, 0, 0, 0),
		AlphaMode:     AlphaOpaque,
		AlphaCutoff:   0.5,
	}
}

// Shade combines a sampled diffuse texel with the illumination result and
// the emissive contribution, then resolves the alpha mode.
//
// The returned bool reports discard: true means the fragment produces no
// color and no depth write. Discard can only come from AlphaMask; fragments
// with base alpha exactly at the cutoff are kept.
//
// Unrecognized alpha modes behave as AlphaOpaque, so a corrupt mode
// selector can never introduce unintended transparency.
func (m Material) Shade(diffuseTexel RGBA, illumination mgl32.Vec3, emissiveTexel RGBA) (RGBA, bool) {
	base := diffuseTexel.Modulate(m.DiffuseColor)
	out := base.ScaleRGB(illumination)

	// Emission is additive and unlit.
	out = out.AddRGB(
		emissiveTexel.R*m.EmissiveColor.R,
		emissiveTexel.G*m.EmissiveColor.G,
		emissiveTexel.B*m.EmissiveColor.B,
	)

	switch m.AlphaMode {
	case AlphaMask:
		if base.A < m.AlphaCutoff {
			return Transparent, true
		}
		out.A = 1
	case AlphaBlend:
		out.A = base.A
	default:
		out.A = 1
	}
	return out, false
}
