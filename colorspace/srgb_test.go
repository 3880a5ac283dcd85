package colorspace

import (
	"math"
	"testing"
)

// floatNear reports whether two floats are within tolerance.
func floatNear(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

// colorNear reports whether all components of two colors are within
// tolerance.
func colorNear(a, b Color, tol float32) bool {
	return floatNear(a.R, b.R, tol) && floatNear(a.G, b.G, tol) && floatNear(a.B, b.B, tol)
}

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGBEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*float32(math.Pow(0.0031309, 1.0/2.4)) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestRoundTripSRGBLinear verifies the transfer curve round-trips within
// 8-bit precision for all 256 byte values.
func TestRoundTripSRGBLinear(t *testing.T) {
	const maxError = 1.0 / 255.0

	for i := 0; i <= 255; i++ {
		srgb := float32(i) / 255.0
		linear := SRGBToLinear(srgb)
		roundTrip := LinearToSRGB(linear)

		if !floatNear(roundTrip, srgb, maxError) {
			t.Errorf("round-trip error for %d/255: got %v, want %v", i, roundTrip, srgb)
		}
	}
}

func TestSRGBColorConversion(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1.0}
	lin := SRGBToLinearColor(c)
	back := LinearToSRGBColor(lin)
	if !colorNear(back, c, 1e-5) {
		t.Errorf("SRGBToLinearColor/LinearToSRGBColor round trip: got %v, want %v", back, c)
	}
}
