package correct

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/simulate"
)

// errTransfer redistributes the simulated color error into channels a CVD
// viewer can still perceive: red-channel loss is shifted into green and
// blue.
var errTransfer = [9]float32{
	0, 0, 0,
	0.7, 1, 0,
	0.7, 0, 1,
}

// Daltonize corrects a color by simulating the deficiency, computing the
// lost color, redistributing it through the error-transfer matrix and
// adding it back. strength (already multiplied by any guided weight) blends
// between the original and the corrected color.
func Daltonize(c colorspace.Color, m simulate.Model, f simulate.Filter, strength float32) colorspace.Color {
	if f == simulate.FilterNone || strength <= 0 {
		return c
	}

	lin := colorspace.SRGBToLinearColor(c)
	sr, sg, sb := simulate.Apply(m, f, lin.R, lin.G, lin.B)

	// What the viewer cannot see.
	er := lin.R - sr
	eg := lin.G - sg
	eb := lin.B - sb

	// Shift the error into perceivable channels and add it back.
	corrected := colorspace.Color{
		R: lin.R + errTransfer[0]*er + errTransfer[1]*eg + errTransfer[2]*eb,
		G: lin.G + errTransfer[3]*er + errTransfer[4]*eg + errTransfer[5]*eb,
		B: lin.B + errTransfer[6]*er + errTransfer[7]*eg + errTransfer[8]*eb,
	}.Clamp()

	out := colorspace.LinearToSRGBColor(corrected).Clamp()
	return c.Lerp(out, clamp01(strength))
}
