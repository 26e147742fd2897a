package shade

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestColorConversionClamps(t *testing.T) {
	// HDR components clamp only at display conversion.
	c := NewRGBA(2.5, -0.5, 0.5, 1)
	got := c.Color().(color.NRGBA)
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(0), got.G)
	assert.Equal(t, uint8(127), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestFromColorRoundTrip(t *testing.T) {
	want := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	got := FromColor(want).Color().(color.NRGBA)
	assert.Equal(t, want, got)
}

func TestModulate(t *testing.T) {
	a := NewRGBA(0.5, 1, 0.25, 0.8)
	b := NewRGBA(1, 0.5, 1, 0.5)
	got := a.Modulate(b)
	assert.InDelta(t, 0.5, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.G, 1e-6)
	assert.InDelta(t, 0.25, got.B, 1e-6)
	assert.InDelta(t, 0.4, got.A, 1e-6)
}

func TestScaleRGBLeavesAlpha(t *testing.T) {
	got := NewRGBA(1, 1, 1, 0.5).ScaleRGB(mgl32.Vec3{0.25, 0.5, 2})
	assert.InDelta(t, 0.25, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.G, 1e-6)
	assert.InDelta(t, 2, got.B, 1e-6, "radiance scaling must not clamp")
	assert.InDelta(t, 0.5, got.A, 1e-6)
}

func TestAddRGBLeavesAlpha(t *testing.T) {
	got := NewRGBA(0.1, 0.2, 0.3, 0.4).AddRGB(0.1, 0.1, 0.1)
	assert.InDelta(t, 0.2, got.R, 1e-6)
	assert.InDelta(t, 0.4, got.A, 1e-6)
}

func TestLerp(t *testing.T) {
	a := NewRGBA(0, 0, 0, 0)
	b := NewRGBA(1, 1, 1, 1)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))

	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-6)
	assert.InDelta(t, 0.5, mid.A, 1e-6)
}

func TestPremultiplyRoundTrip(t *testing.T) {
	c := NewRGBA(0.8, 0.6, 0.4, 0.5)
	pre := c.Premultiply()
	assert.InDelta(t, 0.4, pre.R, 1e-6)

	back := pre.Unpremultiply()
	assert.InDelta(t, c.R, back.R, 1e-6)
	assert.InDelta(t, c.G, back.G, 1e-6)
	assert.InDelta(t, c.B, back.B, 1e-6)
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	got := NewRGBA(0.5, 0.5, 0.5, 0).Unpremultiply()
	assert.Equal(t, Transparent, got)
}

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), smoothstep(0.2, 0.8, 0.1))
	assert.Equal(t, float32(1), smoothstep(0.2, 0.8, 0.9))
	assert.InDelta(t, 0.5, smoothstep(0.2, 0.8, 0.5), 1e-6)

	// Degenerate interval is a step function.
	assert.Equal(t, float32(0), smoothstep(0.5, 0.5, 0.4))
	assert.Equal(t, float32(1), smoothstep(0.5, 0.5, 0.6))
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    RGBA
	}{
		{"red", 0, 1, 0.5, Red},
		{"green", 120, 1, 0.5, Green},
		{"blue", 240, 1, 0.5, Blue},
		{"gray", 17, 0, 0.5, RGB(0.5, 0.5, 0.5)},
		{"wrapped hue", 360, 1, 0.5, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			assert.InDelta(t, tt.want.R, got.R, 1e-5)
			assert.InDelta(t, tt.want.G, got.G, 1e-5)
			assert.InDelta(t, tt.want.B, got.B, 1e-5)
		})
	}
}
