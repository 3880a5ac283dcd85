package simulate

import "github.com/gogpu/cvd/colorspace"

// Full-loss projection matrices in LMS space (Viénot, Brettel and Mollon
// 1999), paired with the Hunt-Pointer-Estevez-derived RGB↔LMS transform in
// package colorspace. Each projects the lost cone's response onto the plane
// spanned by the two remaining cone types.
var lmsProjection = map[Filter]*mat3{
	FilterProtanopia: {
		0, 1.05118294, -0.05116099,
		0, 1, 0,
		0, 0, 1,
	},
	FilterDeuteranopia: {
		1, 0, 0,
		0.9513092, 0, 0.04866992,
		0, 0, 1,
	},
	FilterTritanopia: {
		1, 0, 0,
		0, 1, 0,
		-0.86744736, 1.86727089, 0,
	},
}

// baseFilter maps an anomalous variant to its complete counterpart.
func baseFilter(f Filter) Filter {
	switch f {
	case FilterProtanomaly:
		return FilterProtanopia
	case FilterDeuteranomaly:
		return FilterDeuteranopia
	case FilterTritanomaly:
		return FilterTritanopia
	}
	return f
}

// applyLMS runs the LMS simulation model: convert to cone responses, apply
// the full-loss projection, and for anomalous variants blend halfway
// between the unmodified and fully-projected LMS vector before converting
// back.
func applyLMS(f Filter, r, g, b float32) (float32, float32, float32) {
	proj, ok := lmsProjection[baseFilter(f)]
	if !ok {
		return r, g, b
	}

	l, m, s := colorspace.LinearRGBToLMS(r, g, b)
	pl, pm, ps := proj.apply(l, m, s)

	if f.Anomalous() {
		pl = lerp(l, pl, partialBlend)
		pm = lerp(m, pm, partialBlend)
		ps = lerp(s, ps, partialBlend)
	}

	sr, sg, sb := colorspace.LMSToLinearRGB(pl, pm, ps)
	return clamp01(sr), clamp01(sg), clamp01(sb)
}
