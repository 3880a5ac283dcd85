package colorspace

import "testing"

// TestLMSRoundTrip verifies that the RGB→LMS and LMS→RGB matrices are
// inverses of each other.
func TestLMSRoundTrip(t *testing.T) {
	colors := []Color{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 1}, {0.25, 0.5, 0.75}, {0.9, 0.1, 0.4},
	}
	for _, c := range colors {
		l, m, s := LinearRGBToLMS(c.R, c.G, c.B)
		r, g, b := LMSToLinearRGB(l, m, s)
		if !colorNear(Color{r, g, b}, c, 1e-4) {
			t.Errorf("LMS round trip for %v: got (%v, %v, %v)", c, r, g, b)
		}
	}
}

// TestLMSWhite verifies that white maps to roughly equal normalized cone
// responses; the rows of the RGB→LMS matrix each sum to ~1.
func TestLMSWhite(t *testing.T) {
	l, m, s := LinearRGBToLMS(1, 1, 1)
	for _, v := range []float32{l, m, s} {
		if !floatNear(v, 1, 5e-4) {
			t.Errorf("LinearRGBToLMS(white) = (%v, %v, %v), want ~(1, 1, 1)", l, m, s)
		}
	}
}
