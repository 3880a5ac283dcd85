package colorspace

import "math"

// D65 reference white.
const (
	refXn = 0.95047
	refYn = 1.0
	refZn = 1.08883
)

// labEpsilon is the CIE threshold between the cube-root and linear segments
// of the Lab compression function.
const labEpsilon = 0.008856

// LinearRGBToXYZ converts linear RGB to CIE XYZ using the sRGB D65 matrix.
func LinearRGBToXYZ(r, g, b float32) (x, y, z float32) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

// XYZToLinearRGB converts CIE XYZ to linear RGB using the inverse sRGB D65
// matrix. Output is not clamped; out-of-gamut XYZ yields components outside
// [0,1].
func XYZToLinearRGB(x, y, z float32) (r, g, b float32) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return r, g, b
}

// labCompress is the CIE f function: cube root above the threshold, linear
// segment below.
func labCompress(t float32) float32 {
	if t > labEpsilon {
		return float32(math.Cbrt(float64(t)))
	}
	return 7.787*t + 16.0/116.0
}

// labUncompress inverts labCompress.
func labUncompress(t float32) float32 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (t - 16.0/116.0) / 7.787
}

// XYZToLab converts CIE XYZ to CIE L*a*b* with D65 reference white.
// L is in [0, 100]; a and b are roughly in [-128, 128].
func XYZToLab(x, y, z float32) (l, a, b float32) {
	fx := labCompress(x / refXn)
	fy := labCompress(y / refYn)
	fz := labCompress(z / refZn)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// LabToXYZ converts CIE L*a*b* to CIE XYZ with D65 reference white.
func LabToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = refXn * labUncompress(fx)
	y = refYn * labUncompress(fy)
	z = refZn * labUncompress(fz)
	return x, y, z
}

// RGBToLab converts an sRGB-encoded color to Lab.
func RGBToLab(c Color) (l, a, b float32) {
	lin := SRGBToLinearColor(c)
	x, y, z := LinearRGBToXYZ(lin.R, lin.G, lin.B)
	return XYZToLab(x, y, z)
}

// LabToRGB converts Lab to an sRGB-encoded color.
// Out-of-gamut values are clamped to [0,1] after inverse gamma.
func LabToRGB(l, a, b float32) Color {
	x, y, z := LabToXYZ(l, a, b)
	r, g, bl := XYZToLinearRGB(x, y, z)
	lin := Color{R: r, G: g, B: bl}.Clamp()
	return LinearToSRGBColor(lin).Clamp()
}
