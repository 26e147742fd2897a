package shade

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var fullIllum = mgl32.Vec3{1, 1, 1}

func TestShadeModulatesTexelAndTint(t *testing.T) {
	m := DefaultMaterial()
	m.DiffuseColor = NewRGBA(0.5, 1, 0.25, 1)

	got, discard := m.Shade(NewRGBA(0.8, 0.5, 1, 1), fullIllum, Transparent)
	assert.False(t, discard)
	assert.InDelta(t, 0.4, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.G, 1e-6)
	assert.InDelta(t, 0.25, got.B, 1e-6)
}

func TestShadeAppliesIllumination(t *testing.T) {
	m := DefaultMaterial()
	got, _ := m.Shade(White, mgl32.Vec3{0.5, 0.25, 2}, Transparent)
	assert.InDelta(t, 0.5, got.R, 1e-6)
	assert.InDelta(t, 0.25, got.G, 1e-6)
	assert.InDelta(t, 2.0, got.B, 1e-6, "illumination is unclamped for HDR")
}

func TestShadeEmissiveIsUnlit(t *testing.T) {
	m := DefaultMaterial()
	m.DiffuseColor = Black
	m.EmissiveColor = NewRGBA(0.25, 0.5, 0.75, 1)

	// Zero illumination, black diffuse: only the emissive term survives.
	got, _ := m.Shade(White, mgl32.Vec3{}, White)
	assert.InDelta(t, 0.25, got.R, 1e-6)
	assert.InDelta(t, 0.5, got.G, 1e-6)
	assert.InDelta(t, 0.75, got.B, 1e-6)
}

func TestShadeAlphaOpaque(t *testing.T) {
	m := DefaultMaterial()
	got, discard := m.Shade(NewRGBA(1, 1, 1, 0.1), fullIllum, Transparent)
	assert.False(t, discard)
	assert.Equal(t, float32(1), got.A)
}

func TestShadeAlphaBlend(t *testing.T) {
	m := DefaultMaterial()
	m.AlphaMode = AlphaBlend
	got, discard := m.Shade(NewRGBA(1, 1, 1, 0.3), fullIllum, Transparent)
	assert.False(t, discard)
	assert.InDelta(t, 0.3, got.A, 1e-6)
}

func TestShadeAlphaMaskBoundary(t *testing.T) {
	m := DefaultMaterial()
	m.AlphaMode = AlphaMask
	m.AlphaCutoff = 0.5

	// Exactly at the cutoff: kept, boundary is inclusive on the kept side.
	got, discard := m.Shade(NewRGBA(1, 1, 1, 0.5), fullIllum, Transparent)
	assert.False(t, discard)
	assert.Equal(t, float32(1), got.A, "mask mode forces alpha to 1 when kept")

	// One ULP below the cutoff: discarded.
	below := math32.Nextafter(0.5, 0)
	got, discard = m.Shade(NewRGBA(1, 1, 1, below), fullIllum, Transparent)
	assert.True(t, discard)
	assert.Equal(t, Transparent, got)
}

func TestShadeUnknownModeFailsSafe(t *testing.T) {
	m := DefaultMaterial()
	m.AlphaMode = AlphaMode(99)
	got, discard := m.Shade(NewRGBA(1, 1, 1, 0.1), fullIllum, Transparent)
	assert.False(t, discard, "unknown alpha modes must never discard")
	assert.Equal(t, float32(1), got.A, "unknown alpha modes behave as opaque")
}

func TestAlphaModeString(t *testing.T) {
	tests := []struct {
		mode AlphaMode
		want string
	}{
		{AlphaOpaque, "Opaque"},
		{AlphaMask, "Mask"},
		{AlphaBlend, "Blend"},
		{AlphaMode(7), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestStagedTexturesDoNotAffectColor(t *testing.T) {
	// Roughness, normal, and occlusion slots are staged for a future
	// micro-facet extension: binding them must not change the output.
	m := DefaultMaterial()
	bare := NewSurfaceProgram(m, TextureSet{})
	staged := NewSurfaceProgram(m, TextureSet{
		Roughness: SolidSampler{C: NewRGBA(0.1, 0.1, 0.1, 1)},
		Normal:    SolidSampler{C: NewRGBA(0.5, 0.5, 1, 1)},
		Occlusion: SolidSampler{C: Black},
	})

	vary := Varyings{
		TexCoord:      mgl32.Vec2{0.5, 0.5},
		WorldPosition: mgl32.Vec3{},
		WorldNormal:   mgl32.Vec3{0, 1, 0},
	}
	var inst Instance
	a, _ := bare.FragmentStage(inst, vary)
	b, _ := staged.FragmentStage(inst, vary)
	assert.Equal(t, a, b)
}
