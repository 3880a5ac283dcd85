// Package simulate implements the two color vision deficiency simulation
// models: a matrix model applying fixed 3×3 matrices to linear RGB, and an
// LMS model projecting cone responses onto a reduced surface.
//
// All functions operate on linear RGB; gamma handling is the caller's job.
// Outputs are clamped to [0, 1].
package simulate

// Filter identifies a color vision deficiency variant.
type Filter uint8

const (
	// FilterNone applies no simulation; both models are the identity.
	FilterNone Filter = iota
	// FilterProtanopia is complete loss of the long-wavelength cones.
	FilterProtanopia
	// FilterProtanomaly is partial loss of the long-wavelength cones.
	FilterProtanomaly
	// FilterDeuteranopia is complete loss of the medium-wavelength cones.
	FilterDeuteranopia
	// FilterDeuteranomaly is partial loss of the medium-wavelength cones.
	FilterDeuteranomaly
	// FilterTritanopia is complete loss of the short-wavelength cones.
	FilterTritanopia
	// FilterTritanomaly is partial loss of the short-wavelength cones.
	FilterTritanomaly
	// FilterAchromatopsia is complete absence of color perception.
	FilterAchromatopsia
	// FilterAchromatomaly is partial absence of color perception.
	FilterAchromatomaly

	// FilterCount is the number of defined filters.
	FilterCount
)

// String returns a human-readable name for the filter.
func (f Filter) String() string {
	switch f {
	case FilterNone:
		return "None"
	case FilterProtanopia:
		return "Protanopia"
	case FilterProtanomaly:
		return "Protanomaly"
	case FilterDeuteranopia:
		return "Deuteranopia"
	case FilterDeuteranomaly:
		return "Deuteranomaly"
	case FilterTritanopia:
		return "Tritanopia"
	case FilterTritanomaly:
		return "Tritanomaly"
	case FilterAchromatopsia:
		return "Achromatopsia"
	case FilterAchromatomaly:
		return "Achromatomaly"
	default:
		return "Unknown"
	}
}

// Anomalous reports whether the filter is a partial ("-omaly") variant.
func (f Filter) Anomalous() bool {
	switch f {
	case FilterProtanomaly, FilterDeuteranomaly, FilterTritanomaly, FilterAchromatomaly:
		return true
	}
	return false
}

// Grayscale reports whether the filter is one of the achromatic variants,
// which both models handle by luminance extraction.
func (f Filter) Grayscale() bool {
	return f == FilterAchromatopsia || f == FilterAchromatomaly
}

// Model selects the simulation algorithm.
type Model uint8

const (
	// ModelMatrix applies a fixed per-filter 3×3 matrix to linear RGB.
	ModelMatrix Model = iota
	// ModelLMS projects cone responses onto a dichromat surface; partial
	// variants blend halfway toward the full projection.
	ModelLMS
)

// String returns a human-readable name for the model.
func (m Model) String() string {
	if m == ModelLMS {
		return "LMS"
	}
	return "Matrix"
}

// Rec. 709 luminance weights, applied in linear RGB.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// partialBlend is the fixed blend toward the full-loss projection used for
// anomalous variants in the LMS model and for achromatomaly in both models.
// The 50% constant is a convention carried from the reference
// implementation, not a calibrated severity scale.
const partialBlend = 0.5

// Apply simulates how a viewer with the given deficiency perceives a linear
// RGB color, using the selected model. Unknown filters are treated as
// FilterNone (identity, never an error). Output is clamped to [0, 1].
func Apply(m Model, f Filter, r, g, b float32) (float32, float32, float32) {
	if f == FilterNone || f >= FilterCount {
		return r, g, b
	}
	if f.Grayscale() {
		return grayscale(f, r, g, b)
	}
	if m == ModelLMS {
		return applyLMS(f, r, g, b)
	}
	return applyMatrix(f, r, g, b)
}

// grayscale handles the achromatic variants for both models: luminance
// extraction with full or partial blend toward gray.
func grayscale(f Filter, r, g, b float32) (float32, float32, float32) {
	y := lumR*r + lumG*g + lumB*b
	if f == FilterAchromatomaly {
		return clamp01(lerp(r, y, partialBlend)),
			clamp01(lerp(g, y, partialBlend)),
			clamp01(lerp(b, y, partialBlend))
	}
	return clamp01(y), clamp01(y), clamp01(y)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
