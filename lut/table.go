// Package lut builds the per-channel replacement-color lookup tables used by
// the correction pipeline, and encodes them as texel data for upload as
// 256×1 floating-point textures.
package lut

import "github.com/gogpu/cvd/colorspace"

// Size is the number of samples in a table. Sample i corresponds to channel
// intensity i/(Size-1).
const Size = 256

// Space selects the interpolation space for building a table.
type Space uint8

const (
	// SpaceRGB interpolates the endpoints directly in sRGB.
	SpaceRGB Space = iota
	// SpaceLab interpolates in CIE L*a*b* for perceptually even ramps.
	SpaceLab
	// SpaceHSL interpolates in HSL, taking the shorter hue path.
	SpaceHSL
)

// String returns a human-readable name for the space.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceLab:
		return "Lab"
	case SpaceHSL:
		return "HSL"
	default:
		return "Unknown"
	}
}

// Table is an immutable 256-sample map from channel intensity to replacement
// color. Build once, sample from any number of goroutines.
type Table struct {
	colors [Size]colorspace.Color
}

// Build builds a table from start to end in the given interpolation space.
// colors[0] is exactly start and colors[Size-1] is exactly end.
func Build(start, end colorspace.Color, space Space) *Table {
	t := &Table{}
	switch space {
	case SpaceLab:
		l1, a1, b1 := colorspace.RGBToLab(start)
		l2, a2, b2 := colorspace.RGBToLab(end)
		for i := range Size {
			f := float32(i) / (Size - 1)
			t.colors[i] = colorspace.LabToRGB(
				l1+(l2-l1)*f,
				a1+(a2-a1)*f,
				b1+(b2-b1)*f,
			)
		}
	case SpaceHSL:
		h1, s1, ll1 := colorspace.RGBToHSL(start)
		h2, s2, ll2 := colorspace.RGBToHSL(end)
		for i := range Size {
			f := float32(i) / (Size - 1)
			t.colors[i] = colorspace.HSLToRGB(
				colorspace.LerpHue(h1, h2, f),
				s1+(s2-s1)*f,
				ll1+(ll2-ll1)*f,
			)
		}
	default: // SpaceRGB
		for i := range Size {
			f := float32(i) / (Size - 1)
			t.colors[i] = start.Lerp(end, f)
		}
	}
	// The endpoints are part of the contract regardless of rounding in the
	// intermediate space.
	t.colors[0] = start
	t.colors[Size-1] = end
	return t
}

// At returns sample i, clamping the index to the table bounds.
func (t *Table) At(i int) colorspace.Color {
	if i < 0 {
		i = 0
	}
	if i >= Size {
		i = Size - 1
	}
	return t.colors[i]
}

// Sample returns the nearest sample for an intensity v in [0, 1], matching
// the nearest-neighbor, clamp-to-edge addressing the GPU kernel uses.
func (t *Table) Sample(v float32) colorspace.Color {
	return t.At(int(v*(Size-1) + 0.5))
}
