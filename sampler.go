package shade

import (
	"image"

	"github.com/chewxy/math32"
)

// Sampler produces a texel for a normalized texture coordinate. Bound
// texture/sampler pairs are modeled as explicit Sampler values passed into
// the evaluators, so shading stays testable without a graphics context.
//
// Samplers must be safe for concurrent Sample calls: fragments evaluate in
// parallel with no ordering guarantees.
type Sampler interface {
	Sample(u, v float32) RGBA
}

// SolidSampler returns the same color for every coordinate. The zero-value
// semantics for an unbound texture slot is SolidSampler{White}: a
// multiplicative identity that leaves the tint untouched.
type SolidSampler struct {
	C RGBA
}

// Sample returns the solid color.
func (s SolidSampler) Sample(u, v float32) RGBA {
	return s.C
}

// boundOrWhite substitutes the white identity sampler for unbound slots.
func boundOrWhite(s Sampler) Sampler {
	if s == nil {
		return SolidSampler{C: White}
	}
	return s
}

// WrapMode controls how texture coordinates outside [0, 1] are resolved.
type WrapMode uint8

const (
	// WrapClamp clamps coordinates to the edge texel.
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat
)

// FilterMode controls texel reconstruction.
type FilterMode uint8

const (
	// FilterNearest picks the closest texel.
	FilterNearest FilterMode = iota

	// FilterBilinear blends the four closest texels.
	FilterBilinear
)

// ImageSampler samples an image.Image as a texture. The image is read-only
// for the sampler's lifetime, matching the per-draw immutability of bound
// textures.
type ImageSampler struct {
	img    image.Image
	wrap   WrapMode
	filter FilterMode
}

// NewImageSampler wraps an image as a texture sampler.
func NewImageSampler(img image.Image, wrap WrapMode, filter FilterMode) *ImageSampler {
	return &ImageSampler{img: img, wrap: wrap, filter: filter}
}

// Sample returns the texel at the normalized coordinate (u, v), with v
// increasing downward to match the surface-coordinate convention.
func (s *ImageSampler) Sample(u, v float32) RGBA {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return White
	}

	x := u*float32(w) - 0.5
	y := v*float32(h) - 0.5

	if s.filter == FilterNearest {
		return s.texel(int(math32.Round(x)), int(math32.Round(y)))
	}

	x0 := int(math32.Floor(x))
	y0 := int(math32.Floor(y))
	fx := x - float32(x0)
	fy := y - float32(y0)

	c00 := s.texel(x0, y0)
	c10 := s.texel(x0+1, y0)
	c01 := s.texel(x0, y0+1)
	c11 := s.texel(x0+1, y0+1)

	top := c00.Lerp(c10, fx)
	bottom := c01.Lerp(c11, fx)
	return top.Lerp(bottom, fy)
}

// texel fetches one pixel, resolving the wrap mode.
func (s *ImageSampler) texel(x, y int) RGBA {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	switch s.wrap {
	case WrapRepeat:
		x = ((x % w) + w) % w
		y = ((y % h) + h) % h
	default:
		x = clampInt(x, 0, w-1)
		y = clampInt(y, 0, h-1)
	}
	return FromColor(s.img.At(b.Min.X+x, b.Min.Y+y))
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
