package colorspace

import "testing"

// TestLabRoundTrip verifies rgbToLab(labToRgb(c)) reproduces c within 1e-3
// per channel for a grid of in-gamut colors.
func TestLabRoundTrip(t *testing.T) {
	const step = 0.1
	for r := float32(0); r <= 1; r += step {
		for g := float32(0); g <= 1; g += step {
			for b := float32(0); b <= 1; b += step {
				c := Color{R: r, G: g, B: b}
				l, a, bb := RGBToLab(c)
				back := LabToRGB(l, a, bb)
				if !colorNear(back, c, 1e-3) {
					t.Fatalf("Lab round trip for %v: got %v", c, back)
				}
			}
		}
	}
}

func TestLabKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		in      Color
		wantL   float32
		wantA   float32
		wantB   float32
		withinL float32
	}{
		// Reference values computed with D65 two-degree observer.
		{"white", Color{1, 1, 1}, 100, 0, 0, 0.01},
		{"black", Color{0, 0, 0}, 0, 0, 0, 0.01},
		{"mid gray", Color{0.5, 0.5, 0.5}, 53.39, 0, 0, 0.05},
		{"red", Color{1, 0, 0}, 53.24, 80.09, 67.20, 0.05},
		{"green", Color{0, 1, 0}, 87.74, -86.18, 83.18, 0.05},
		{"blue", Color{0, 0, 1}, 32.30, 79.19, -107.86, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := RGBToLab(tt.in)
			if !floatNear(l, tt.wantL, tt.withinL) || !floatNear(a, tt.wantA, 0.1) || !floatNear(b, tt.wantB, 0.1) {
				t.Errorf("RGBToLab(%v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.in, l, a, b, tt.wantL, tt.wantA, tt.wantB)
			}
		})
	}
}

// TestLabOutOfGamutClamped verifies extreme Lab values come back as valid
// RGB, never NaN or out of range.
func TestLabOutOfGamutClamped(t *testing.T) {
	tests := []struct {
		name    string
		l, a, b float32
	}{
		{"saturated impossible green", 50, -200, 0},
		{"over-bright", 150, 0, 0},
		{"negative lightness", -20, 10, 10},
		{"extreme yellow", 97, -10, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LabToRGB(tt.l, tt.a, tt.b)
			for _, v := range []float32{c.R, c.G, c.B} {
				if v != v { // NaN
					t.Fatalf("LabToRGB(%v, %v, %v) produced NaN", tt.l, tt.a, tt.b)
				}
				if v < 0 || v > 1 {
					t.Fatalf("LabToRGB(%v, %v, %v) = %v out of range", tt.l, tt.a, tt.b, c)
				}
			}
		})
	}
}

// TestXYZMatrixInverse verifies the forward and inverse XYZ matrices are
// actually inverses of each other.
func TestXYZMatrixInverse(t *testing.T) {
	for _, c := range []Color{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.2, 0.7, 0.4}} {
		x, y, z := LinearRGBToXYZ(c.R, c.G, c.B)
		r, g, b := XYZToLinearRGB(x, y, z)
		if !colorNear(Color{r, g, b}, c, 1e-5) {
			t.Errorf("XYZ matrix round trip for %v: got (%v, %v, %v)", c, r, g, b)
		}
	}
}
