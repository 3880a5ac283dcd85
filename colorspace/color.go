// Package colorspace provides the color types and color space conversions
// used by the cvd pipeline: sRGB gamma (de)linearization, RGB ↔ XYZ ↔ Lab,
// RGB ↔ HSL, and linear RGB ↔ LMS cone responses.
//
// All functions are total over [0,1] inputs: out-of-gamut intermediate values
// are clamped on the way back to RGB, never producing NaN or out-of-range
// output. Per-pixel code calls these every frame, so nothing here allocates
// or returns errors.
package colorspace

import "golang.org/x/image/colornames"

// Color is an RGB triple with float32 components in [0, 1].
// Whether the components are sRGB-encoded or linear is indicated by context.
type Color struct {
	R, G, B float32
}

// White is opaque white, the fallback for malformed color strings.
var White = Color{R: 1, G: 1, B: 1}

// Hex parses a "#RRGGBB" or "RRGGBB" hex string, or a named SVG 1.1 color
// ("red", "cornflowerblue", ...). A malformed or unknown string resolves to
// opaque white rather than an error: configuration must never interrupt
// rendering.
func Hex(s string) Color {
	if s == "" {
		return White
	}
	if s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		if c, ok := colornames.Map[s]; ok {
			return Color{
				R: float32(c.R) / 255,
				G: float32(c.G) / 255,
				B: float32(c.B) / 255,
			}
		}
		return White
	}
	var v [3]uint32
	for i := range 3 {
		n, ok := parseHexByte(s[i*2 : i*2+2])
		if !ok {
			if c, named := colornames.Map[s]; named {
				return Color{
					R: float32(c.R) / 255,
					G: float32(c.G) / 255,
					B: float32(c.B) / 255,
				}
			}
			return White
		}
		v[i] = n
	}
	return Color{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
	}
}

// parseHexByte parses a two-digit hex byte.
func parseHexByte(s string) (uint32, bool) {
	var v uint32
	for i := 0; i < 2; i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			v += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return v, true
}

// Lerp linearly interpolates between c and other by t in [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Clamp clamps all components to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// Max returns the largest component.
func (c Color) Max() float32 {
	return max3(c.R, c.G, c.B)
}

// Min returns the smallest component.
func (c Color) Min() float32 {
	return min3(c.R, c.G, c.B)
}

// clamp01 clamps a value to [0, 1].
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
