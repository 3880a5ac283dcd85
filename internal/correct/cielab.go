package correct

import (
	"math"

	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/simulate"
)

// CielabParams configures the CIELAB axis remapping correction.
type CielabParams struct {
	// Advanced selects explicit parameters; when false they are derived
	// from the filter via the auto table.
	Advanced bool

	// AToB and BToA transfer a fraction of one opponent axis into the
	// other, in [-1, 1]. For red-green deficiencies the a* axis (where
	// the discrimination is lost) is pushed into b*.
	AToB, BToA float32

	// AEnhance and BEnhance scale the axes after the transfer.
	AEnhance, BEnhance float32

	// LEnhance encodes the magnitude of the chroma change into
	// lightness, making shifted colors additionally distinguishable by
	// brightness.
	LEnhance float32

	// Strength blends between the original and remapped color in [0,1].
	Strength float32
}

// cielabAuto maps each filter to empirically chosen remap parameters for
// the non-advanced mode. Reference data, like the hue rotation table.
var cielabAuto = [simulate.FilterCount]CielabParams{
	simulate.FilterProtanopia:    {AToB: 0.7, AEnhance: 1.5, BEnhance: 1, LEnhance: 0.3, Strength: 1},
	simulate.FilterProtanomaly:   {AToB: 0.4, AEnhance: 1.25, BEnhance: 1, LEnhance: 0.15, Strength: 1},
	simulate.FilterDeuteranopia:  {AToB: 0.7, AEnhance: 1.5, BEnhance: 1, LEnhance: 0.3, Strength: 1},
	simulate.FilterDeuteranomaly: {AToB: 0.4, AEnhance: 1.25, BEnhance: 1, LEnhance: 0.15, Strength: 1},
	simulate.FilterTritanopia:    {BToA: 0.7, AEnhance: 1, BEnhance: 1.5, LEnhance: 0.3, Strength: 1},
	simulate.FilterTritanomaly:   {BToA: 0.4, AEnhance: 1, BEnhance: 1.25, LEnhance: 0.15, Strength: 1},
}

// AutoCielab returns the auto-derived parameters for a filter.
func AutoCielab(f simulate.Filter) CielabParams {
	if f >= simulate.FilterCount {
		return CielabParams{}
	}
	return cielabAuto[f]
}

// Cielab remaps the a*/b* opponent axes: transfers a configurable fraction
// of each axis into the other, scales both, and optionally encodes the
// chroma change into lightness. scale multiplies the configured strength.
func Cielab(c colorspace.Color, p CielabParams, f simulate.Filter, scale float32) colorspace.Color {
	if !p.Advanced {
		p = AutoCielab(f)
	}
	strength := clamp01(p.Strength * scale)
	if strength <= 0 {
		return c
	}

	l, a, b := colorspace.RGBToLab(c)

	a2 := a*p.AEnhance + b*p.BToA
	b2 := b*p.BEnhance + a*p.AToB

	l2 := l
	if p.LEnhance != 0 {
		chromaBefore := float32(math.Hypot(float64(a), float64(b)))
		chromaAfter := float32(math.Hypot(float64(a2), float64(b2)))
		l2 = clampRange(l+p.LEnhance*(chromaAfter-chromaBefore), 0, 100)
	}

	out := colorspace.LabToRGB(l2, a2, b2)
	return c.Lerp(out, strength)
}

func clampRange(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
