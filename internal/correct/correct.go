// Package correct implements the CVD correction algorithms: LUT-based
// channel remapping, Daltonization, hue rotation and CIELAB axis remapping,
// plus the simulation-guided per-pixel weighting that can gate any of them.
//
// All entry points take and return sRGB-encoded colors in [0,1] and are
// total: malformed parameters degrade to a no-op, never an error. Algorithms
// that need linear light (Daltonization, the guided weight) linearize
// internally.
package correct

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/simulate"
)

// epsilon guards divisions by near-zero channel sums and maxima.
const epsilon = 1e-5

// Algorithm selects a correction algorithm.
type Algorithm uint8

const (
	// AlgorithmLUTRemap remaps each channel through its lookup table.
	AlgorithmLUTRemap Algorithm = iota
	// AlgorithmDaltonize redistributes simulated color loss into
	// perceivable channels.
	AlgorithmDaltonize
	// AlgorithmHueRotate rotates hues within a configurable source arc.
	AlgorithmHueRotate
	// AlgorithmCielab remaps the a*/b* opponent axes in CIELAB space.
	AlgorithmCielab
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLUTRemap:
		return "LUTRemap"
	case AlgorithmDaltonize:
		return "Daltonize"
	case AlgorithmHueRotate:
		return "HueRotate"
	case AlgorithmCielab:
		return "Cielab"
	default:
		return "Unknown"
	}
}

// GuidedWeight computes the simulation-guided correction weight for one
// pixel: the perceptually lost color magnitude under the given deficiency,
// scaled by sensitivity, clamped and smoothed. A return of ~0 means
// correction should be skipped for this pixel.
func GuidedWeight(c colorspace.Color, m simulate.Model, f simulate.Filter, sensitivity float32) float32 {
	lin := colorspace.SRGBToLinearColor(c)
	sr, sg, sb := simulate.Apply(m, f, lin.R, lin.G, lin.B)

	// Lost color: what the viewer cannot see, never negative.
	loss := max3(max32(lin.R-sr, 0), max32(lin.G-sg, 0), max32(lin.B-sb, 0))

	w := clamp01(loss * sensitivity)
	return smoothstep(w)
}

// smoothstep is the cubic ease curve 3w²-2w³.
func smoothstep(w float32) float32 {
	return w * w * (3 - 2*w)
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

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c float32) float32 {
	return max32(a, max32(b, c))
}
