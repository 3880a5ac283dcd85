package correct

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/simulate"
)

// HueRotateParams configures the hue rotation correction. Angles are in
// degrees.
type HueRotateParams struct {
	// Advanced selects explicit arc parameters; when false the arc is
	// derived from the filter via the auto table.
	Advanced bool

	// Start and End bound the source hue arc. The arc runs from Start
	// forward (clockwise through increasing hue) to End, so an arc may
	// wrap through 0 (e.g. 330 to 30 covers red).
	Start, End float32

	// Shift is the rotation applied to hues inside the arc, in degrees.
	Shift float32

	// Falloff in [0,1] is the fraction of the arc's half-width over which
	// the rotation fades to zero at the arc edges. Zero applies the full
	// shift across the whole arc with a hard cut.
	Falloff float32

	// Strength scales the rotation in [0,1].
	Strength float32
}

// hueRotateAuto maps each filter to empirically chosen arc parameters for
// the non-advanced mode. Reference data; the values are conventions, not
// derived quantities. Achromatic variants have no hue to rotate and stay
// zero.
var hueRotateAuto = [simulate.FilterCount]HueRotateParams{
	simulate.FilterProtanopia:    {Start: 315, End: 45, Shift: 160, Falloff: 0.5, Strength: 1},
	simulate.FilterProtanomaly:   {Start: 315, End: 45, Shift: 80, Falloff: 0.5, Strength: 1},
	simulate.FilterDeuteranopia:  {Start: 60, End: 180, Shift: 120, Falloff: 0.5, Strength: 1},
	simulate.FilterDeuteranomaly: {Start: 60, End: 180, Shift: 60, Falloff: 0.5, Strength: 1},
	simulate.FilterTritanopia:    {Start: 180, End: 300, Shift: 160, Falloff: 0.5, Strength: 1},
	simulate.FilterTritanomaly:   {Start: 180, End: 300, Shift: 80, Falloff: 0.5, Strength: 1},
}

// AutoHueRotate returns the auto-derived parameters for a filter.
func AutoHueRotate(f simulate.Filter) HueRotateParams {
	if f >= simulate.FilterCount {
		return HueRotateParams{}
	}
	return hueRotateAuto[f]
}

// HueRotate rotates hues lying within the source arc, with smooth falloff
// at the arc edges. scale multiplies the configured strength (the
// simulation-guided weight, or 1). f supplies the auto parameters when
// p.Advanced is false.
func HueRotate(c colorspace.Color, p HueRotateParams, f simulate.Filter, scale float32) colorspace.Color {
	if !p.Advanced {
		p = AutoHueRotate(f)
	}
	if p.Shift == 0 || p.Strength*scale <= 0 {
		return c
	}

	h, s, l := colorspace.RGBToHSL(c)
	if s <= epsilon {
		return c // achromatic pixels have no meaningful hue
	}
	hdeg := h * 360

	// Arc geometry: center and half-width, allowing for wrap through 0.
	width := p.End - p.Start
	for width < 0 {
		width += 360
	}
	if width == 0 || width >= 360 {
		width = 360
	}
	half := width / 2
	center := p.Start + half
	for center >= 360 {
		center -= 360
	}

	// Circular distance from the arc center, normalized so that 1 lands
	// on the arc edge.
	d := hdeg - center
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	dn := abs32(d) / half
	if dn >= 1 {
		return c // outside the arc
	}

	// Full rotation near the center, fading out across the falloff band
	// at the edges.
	w := float32(1)
	if fall := clamp01(p.Falloff); fall > 0 {
		if edge := 1 - fall; dn > edge {
			w = 1 - smoothstep((dn-edge)/fall)
		}
	}

	rotated := hdeg + p.Shift*w*clamp01(p.Strength*scale)
	return colorspace.HSLToRGB(rotated/360, s, l).Clamp()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
