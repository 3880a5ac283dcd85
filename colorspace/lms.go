package colorspace

// Linear RGB ↔ LMS cone response matrices, derived from the
// Hunt-Pointer-Estevez transform normalized to D65. These are used only by
// the LMS simulation model; the matrix simulation model operates on linear
// RGB directly.

// LinearRGBToLMS converts linear RGB to long/medium/short cone responses.
func LinearRGBToLMS(r, g, b float32) (l, m, s float32) {
	l = 0.31399022*r + 0.63951294*g + 0.04649755*b
	m = 0.15537241*r + 0.75789446*g + 0.08670142*b
	s = 0.01775239*r + 0.10944209*g + 0.87256922*b
	return l, m, s
}

// LMSToLinearRGB converts long/medium/short cone responses back to linear
// RGB. Output is not clamped.
func LMSToLinearRGB(l, m, s float32) (r, g, b float32) {
	r = 5.47221206*l - 4.64196010*m + 0.16963708*s
	g = -1.12524190*l + 2.29317094*m - 0.16789520*s
	b = 0.02980165*l - 0.19318073*m + 1.16364789*s
	return r, g, b
}
