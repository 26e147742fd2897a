package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// OmniCutoff is the sentinel cutoff marking a light as omni-directional.
// Any cutoff above 1 (outside the cosine range) disables the spotlight
// cone; producers conventionally use values well above 1.
const OmniCutoff = 100.0

// Light mirrors one entry of the per-draw light-list storage block.
//
// Position and Color are world-space point and RGB intensity. Range is the
// distance at which attenuation reaches zero. Direction and Cutoff define
// a spotlight cone: Cutoff is the cosine of the half-angle, and Exponent
// softens the cone edge (higher is sharper). Lights with Cutoff above 1
// emit in all directions and ignore Direction and Exponent.
type Light struct {
	Position  mgl32.Vec3
	Range     float32
	Color     mgl32.Vec3
	Exponent  float32
	Direction mgl32.Vec3
	Cutoff    float32
}

// NewPointLight creates an omni-directional light with linear falloff
// reaching zero at reach.
func NewPointLight(position, color mgl32.Vec3, reach float32) Light {
	return Light{
		Position: position,
		Range:    reach,
		Color:    color,
		Cutoff:   OmniCutoff,
	}
}

// NewSpotLight creates a cone light. cutoff is the cosine of the cone
// half-angle; exponent controls edge softness, with higher values giving a
// sharper edge. direction must be unit length.
func NewSpotLight(position, color, direction mgl32.Vec3, reach, exponent, cutoff float32) Light {
	return Light{
		Position:  position,
		Range:     reach,
		Color:     color,
		Exponent:  exponent,
		Direction: direction,
		Cutoff:    cutoff,
	}
}

// Omni reports whether the light emits in all directions.
func (l Light) Omni() bool {
	return l.Cutoff > 1
}

// Contribution returns the light's Lambertian radiance at a surface point
// with the given unit normal. Points at zero distance, beyond Range, or at
// or outside the spotlight cone contribute exactly zero.
func (l Light) Contribution(worldPos, normal mgl32.Vec3) mgl32.Vec3 {
	toLight := l.Position.Sub(worldPos)
	distance := toLight.Len()
	if distance == 0 || distance >= l.Range {
		return mgl32.Vec3{}
	}
	dir := toLight.Mul(1 / distance)

	attenD := clamp01(1 - distance/l.Range)

	attenS := float32(1)
	if !l.Omni() {
		spotCos := dir.Mul(-1).Dot(l.Direction)
		// The cone boundary itself is dark: contribution is zero at
		// spotCos == Cutoff even when Exponent is zero.
		if spotCos <= l.Cutoff {
			return mgl32.Vec3{}
		}
		attenS = math32.Pow(clamp01((spotCos-l.Cutoff)/(1-l.Cutoff)), l.Exponent)
	}

	lambert := math32.Max(normal.Dot(dir), 0)
	return l.Color.Mul(lambert * attenD * attenS)
}

// Illuminate accumulates the incoming radiance at a surface point: the sum
// of every active light's contribution plus the ambient term. count bounds
// the light list the way the storage-buffer count scalar does on the GPU;
// entries at index >= count are never read.
//
// The world normal is re-normalized internally; a zero-length normal
// yields the ambient term alone. The result is unclamped RGB radiance —
// clamping and gamma correction are the caller's concern, so downstream
// HDR tone mapping stays possible.
//
// viewPos is accepted for parity with the uniform contract; the Lambertian
// baseline does not use it. See [BlinnSpecular] for the optional
// view-dependent extension.
func Illuminate(viewPos mgl32.Vec4, worldPos, worldNormal mgl32.Vec3, lights []Light, count int, ambient mgl32.Vec3) mgl32.Vec3 {
	_ = viewPos

	total := ambient
	if worldNormal.Len() == 0 {
		return total
	}
	normal := worldNormal.Normalize()

	n := min(count, len(lights))
	for i := 0; i < n; i++ {
		total = total.Add(lights[i].Contribution(worldPos, normal))
	}
	return total
}

// BlinnSpecular returns the view-dependent Blinn-Phong specular radiance
// for one light at a surface point. It is an explicit opt-in extension
// (see SurfaceProgram's WithSpecular option) and is never part of the
// baseline Illuminate result.
//
// shininess is the specular exponent; strength scales the reflection.
// Surfaces facing away from the light receive no specular term.
func BlinnSpecular(l Light, viewPos mgl32.Vec4, worldPos, normal mgl32.Vec3, shininess, strength float32) mgl32.Vec3 {
	toLight := l.Position.Sub(worldPos)
	distance := toLight.Len()
	if distance == 0 || distance >= l.Range {
		return mgl32.Vec3{}
	}
	dir := toLight.Mul(1 / distance)
	if normal.Dot(dir) <= 0 {
		return mgl32.Vec3{}
	}

	attenD := clamp01(1 - distance/l.Range)
	attenS := float32(1)
	if !l.Omni() {
		spotCos := dir.Mul(-1).Dot(l.Direction)
		if spotCos <= l.Cutoff {
			return mgl32.Vec3{}
		}
		attenS = math32.Pow(clamp01((spotCos-l.Cutoff)/(1-l.Cutoff)), l.Exponent)
	}

	toView := viewPos.Vec3().Sub(worldPos)
	if toView.Len() == 0 {
		return mgl32.Vec3{}
	}
	half := dir.Add(toView.Normalize())
	if half.Len() == 0 {
		return mgl32.Vec3{}
	}
	half = half.Normalize()

	spec := math32.Pow(math32.Max(normal.Dot(half), 0), shininess)
	return l.Color.Mul(spec * strength * attenD * attenS)
}
