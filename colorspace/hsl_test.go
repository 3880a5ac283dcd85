package colorspace

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBToHSLKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		in      Color
		h, s, l float32
	}{
		{"red", Color{1, 0, 0}, 0, 1, 0.5},
		{"green", Color{0, 1, 0}, 1.0 / 3.0, 1, 0.5},
		{"blue", Color{0, 0, 1}, 2.0 / 3.0, 1, 0.5},
		{"white", Color{1, 1, 1}, 0, 0, 1},
		{"black", Color{0, 0, 0}, 0, 0, 0},
		{"gray", Color{0.5, 0.5, 0.5}, 0, 0, 0.5},
		{"yellow", Color{1, 1, 0}, 1.0 / 6.0, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.in)
			if !floatNear(h, tt.h, 1e-5) || !floatNear(s, tt.s, 1e-5) || !floatNear(l, tt.l, 1e-5) {
				t.Errorf("RGBToHSL(%v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.in, h, s, l, tt.h, tt.s, tt.l)
			}
		})
	}
}

// TestHSLRoundTrip verifies rgbToHsl(hslToRgb(c)) reproduces c within 1e-3.
func TestHSLRoundTrip(t *testing.T) {
	const step = 0.1
	for r := float32(0); r <= 1; r += step {
		for g := float32(0); g <= 1; g += step {
			for b := float32(0); b <= 1; b += step {
				c := Color{R: r, G: g, B: b}
				h, s, l := RGBToHSL(c)
				back := HSLToRGB(h, s, l)
				if !colorNear(back, c, 1e-3) {
					t.Fatalf("HSL round trip for %v: got %v", c, back)
				}
			}
		}
	}
}

// TestHSLAgainstColorful cross-checks the conversion against
// go-colorful, which reports hue in degrees.
func TestHSLAgainstColorful(t *testing.T) {
	colors := []Color{
		{1, 0, 0}, {0.8, 0.3, 0.1}, {0.1, 0.9, 0.4},
		{0.2, 0.2, 0.7}, {0.95, 0.95, 0.1}, {0.33, 0.66, 0.99},
	}
	for _, c := range colors {
		h, s, l := RGBToHSL(c)
		ref := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
		rh, rs, rl := ref.Hsl()
		if !floatNear(h*360, float32(rh), 0.01) ||
			!floatNear(s, float32(rs), 1e-4) ||
			!floatNear(l, float32(rl), 1e-4) {
			t.Errorf("RGBToHSL(%v) = (%v°, %v, %v), colorful says (%v°, %v, %v)",
				c, h*360, s, l, rh, rs, rl)
		}
	}
}

func TestLerpHueShortestPath(t *testing.T) {
	tests := []struct {
		name       string
		h1, h2, t_ float32
		want       float32
	}{
		// 350° -> 10° at t=0.5 must cross 0°, never 180°.
		{"wrap forward", 350.0 / 360.0, 10.0 / 360.0, 0.5, 0},
		{"wrap backward", 10.0 / 360.0, 350.0 / 360.0, 0.5, 0},
		{"no wrap", 0.2, 0.4, 0.5, 0.3},
		{"endpoints start", 0.9, 0.1, 0, 0.9},
		{"endpoints end", 0.9, 0.1, 1, 0.1},
		{"half circle", 0, 0.5, 0.5, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LerpHue(tt.h1, tt.h2, tt.t_)
			// Hues are circular: 0 and 1 are the same angle.
			d := got - tt.want
			if d > 0.5 {
				d -= 1
			} else if d < -0.5 {
				d += 1
			}
			if !floatNear(d, 0, 1e-5) {
				t.Errorf("LerpHue(%v, %v, %v) = %v, want %v", tt.h1, tt.h2, tt.t_, got, tt.want)
			}
		})
	}
}
