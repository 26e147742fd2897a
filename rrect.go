package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// shapeAABand is the width of the anti-aliased transition band at the
// outer shape edge, in normalized edge-signal units.
const shapeAABand = 0.1

// maxBorderRatio caps the border band so a sliver of fill always remains.
const maxBorderRatio = 0.99

// CornerRadii holds one independent radius per rectangle corner, in the
// same normalized unit as surface coordinates.
//
// The corner indexing convention is fixed: TopRight, TopLeft, BottomLeft,
// BottomRight, with the top edge at v=0 and the left edge at u=0. Every
// consumer of the renderer uses this ordering; a radius always pairs with
// the geometric corner it names.
type CornerRadii struct {
	TopRight    float32
	TopLeft     float32
	BottomLeft  float32
	BottomRight float32
}

// UniformRadii gives all four corners the same radius.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{TopRight: r, TopLeft: r, BottomLeft: r, BottomRight: r}
}

// BorderWidths holds one independent border width per rectangle edge, in
// the same normalized unit as surface coordinates.
type BorderWidths struct {
	Top    float32
	Bottom float32
	Right  float32
	Left   float32
}

// UniformBorders gives all four edges the same border width.
func UniformBorders(w float32) BorderWidths {
	return BorderWidths{Top: w, Bottom: w, Right: w, Left: w}
}

// CoverageMode selects how a shape fragment consumes the edge signal.
type CoverageMode uint8

const (
	// ModeDiscard discards fragments at or outside the boundary and
	// fills the rest with the opaque fill color. Hard edge, no
	// anti-aliasing.
	ModeDiscard CoverageMode = iota

	// ModeBorderBlend anti-aliases the outer edge, draws a border band,
	// and blends into the fill color at the border ratio.
	ModeBorderBlend

	// ModeMask outputs the raw edge signal (clamped at zero) as a
	// grayscale mask for external compositing such as shadows or glows.
	ModeMask
)

// String returns a human-readable name for the coverage mode.
func (m CoverageMode) String() string {
	switch m {
	case ModeDiscard:
		return "Discard"
	case ModeBorderBlend:
		return "BorderBlend"
	case ModeMask:
		return "Mask"
	default:
		return "Unknown"
	}
}

// RRect is the analytic rounded-rectangle/border renderer. It computes a
// signed edge signal over normalized surface coordinates and derives a
// discard mask, a blended fill/border color, or a raw distance value.
//
// Dim is the shape-space dimension vector; the zero value (and any
// non-positive axis) falls back to the unit square, which is the only
// dimension observed in practice. Radii and Borders are expressed in the
// same unit as the surface coordinate.
type RRect struct {
	Dim     mgl32.Vec2
	Radii   CornerRadii
	Borders BorderWidths
}

// dims returns the shape dimensions with non-positive axes replaced by 1,
// so degenerate inputs stay defined instead of producing NaN.
func (s RRect) dims() (float32, float32) {
	dx, dy := s.Dim.X(), s.Dim.Y()
	if dx <= 0 {
		dx = 1
	}
	if dy <= 0 {
		dy = 1
	}
	return dx, dy
}

// clampedRadii restricts every radius to half the shorter shape dimension.
// Radii that would overlap an axis degrade gracefully to the stadium case
// rather than producing undefined geometry.
func (s RRect) clampedRadii(dx, dy float32) CornerRadii {
	limit := math32.Min(dx, dy) / 2
	clampR := func(r float32) float32 {
		if r < 0 {
			return 0
		}
		return math32.Min(r, limit)
	}
	return CornerRadii{
		TopRight:    clampR(s.Radii.TopRight),
		TopLeft:     clampR(s.Radii.TopLeft),
		BottomLeft:  clampR(s.Radii.BottomLeft),
		BottomRight: clampR(s.Radii.BottomRight),
	}
}

// EdgeSignal returns the signed rounding distance at the surface
// coordinate (u, v): a value in (-inf, 1], positive inside the shape and
// at or below zero on and outside the boundary.
//
// Inside a corner's radius box the signal is 1 - |p-center|/radius, the
// normalized distance to that corner's circle. Everywhere else it is the
// minimum of the four flat-edge margins, each normalized by its own
// edge's border width and clamped to [0, 1] independently, so a point
// near a straight edge is governed by that edge's own border width.
func (s RRect) EdgeSignal(u, v float32) float32 {
	sig, _ := s.signal(u, v)
	return sig
}

// signal computes the edge signal and the border ratio of the governing
// region in a single quadrant resolution.
func (s RRect) signal(u, v float32) (float32, float32) {
	dx, dy := s.dims()
	r := s.clampedRadii(dx, dy)
	b := s.Borders

	// Corner regions. A zero radius leaves its box empty, which is the
	// infinitely sharp corner: the flat edges below take over.
	switch {
	case r.TopLeft > 0 && u <= r.TopLeft && v <= r.TopLeft:
		return cornerSignal(u, v, r.TopLeft, r.TopLeft, r.TopLeft, math32.Max(b.Top, b.Left))
	case r.TopRight > 0 && u >= dx-r.TopRight && v <= r.TopRight:
		return cornerSignal(u, v, dx-r.TopRight, r.TopRight, r.TopRight, math32.Max(b.Top, b.Right))
	case r.BottomLeft > 0 && u <= r.BottomLeft && v >= dy-r.BottomLeft:
		return cornerSignal(u, v, r.BottomLeft, dy-r.BottomLeft, r.BottomLeft, math32.Max(b.Bottom, b.Left))
	case r.BottomRight > 0 && u >= dx-r.BottomRight && v >= dy-r.BottomRight:
		return cornerSignal(u, v, dx-r.BottomRight, dy-r.BottomRight, r.BottomRight, math32.Max(b.Bottom, b.Right))
	}

	// Flat edges: each margin is governed by its own border width.
	sig := edgeMargin(v, b.Top)
	ratio := borderRatioFlat(b.Top)

	if m := edgeMargin(u, b.Left); m < sig {
		sig, ratio = m, borderRatioFlat(b.Left)
	}
	if m := edgeMargin(dy-v, b.Bottom); m < sig {
		sig, ratio = m, borderRatioFlat(b.Bottom)
	}
	if m := edgeMargin(dx-u, b.Right); m < sig {
		sig, ratio = m, borderRatioFlat(b.Right)
	}
	return sig, ratio
}

// cornerSignal evaluates the rounding distance against the corner circle
// centered at (cu, cv) with the given radius, and the border ratio for the
// widths adjacent to that corner.
func cornerSignal(u, v, cu, cv, radius, borderWidth float32) (float32, float32) {
	dist := math32.Hypot(u-cu, v-cv)
	sig := 1 - dist/radius
	return sig, math32.Min(borderWidth/radius, maxBorderRatio)
}

// edgeMargin normalizes the distance from one straight edge by that edge's
// border width, clamped to [0, 1]. A zero-width border is a sharp edge:
// fully inside for non-negative distances, fully outside for negative.
func edgeMargin(dist, borderWidth float32) float32 {
	if borderWidth <= 0 {
		if dist < 0 {
			return 0
		}
		return 1
	}
	return clamp01(dist / borderWidth)
}

// borderRatioFlat is the border ratio of a flat-edge region. The margin is
// already normalized by the edge's own width, so any positive width spans
// the band up to the cap; a zero width means no border band at all.
func borderRatioFlat(borderWidth float32) float32 {
	if borderWidth <= 0 {
		return 0
	}
	return maxBorderRatio
}

// Shade resolves the edge signal at (u, v) into a fragment color under the
// given consumption mode. The returned bool reports discard, which only
// ModeDiscard can raise.
//
//   - ModeDiscard: fully transparent (discarded) at or outside the
//     boundary, opaque fill color inside. Hard edge.
//   - ModeBorderBlend: smoothstep into the border color across the outer
//     anti-alias band, solid border through the border band, smoothstep
//     into the fill color at the border ratio, solid fill in the interior.
//   - ModeMask: the edge signal itself, clamped at zero, on all four
//     channels. No color blending.
func (s RRect) Shade(u, v float32, fill, border RGBA, mode CoverageMode) (RGBA, bool) {
	switch mode {
	case ModeBorderBlend:
		sig, ratio := s.signal(u, v)
		blend := smoothstep(ratio-shapeAABand, ratio, sig)
		col := border.Lerp(fill, blend)
		return col.Scale(smoothstep(0, shapeAABand, sig)), false
	case ModeMask:
		m := math32.Max(s.EdgeSignal(u, v), 0)
		return NewRGBA(m, m, m, m), false
	default:
		if s.EdgeSignal(u, v) <= 0 {
			return Transparent, true
		}
		out := fill
		out.A = 1
		return out, false
	}
}
