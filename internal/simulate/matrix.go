package simulate

// mat3 is a row-major 3×3 matrix applied to linear RGB.
type mat3 [9]float32

// apply multiplies the matrix with an RGB column vector.
func (m *mat3) apply(r, g, b float32) (float32, float32, float32) {
	return m[0]*r + m[1]*g + m[2]*b,
		m[3]*r + m[4]*g + m[5]*b,
		m[6]*r + m[7]*g + m[8]*b
}

// identity3 is the identity matrix.
var identity3 = mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// machado holds the simulation matrices of Machado, Oliveira and Fernandes
// (2009), indexed by Filter. Complete variants use severity 1.0, anomalous
// variants severity 0.5. The matrices operate on linear RGB.
var machado = [FilterCount]mat3{
	FilterNone: identity3,
	FilterProtanopia: {
		0.152286, 1.052583, -0.204868,
		0.114503, 0.786281, 0.099216,
		-0.003882, -0.048116, 1.051998,
	},
	FilterProtanomaly: {
		0.458064, 0.679578, -0.137642,
		0.092785, 0.846313, 0.060902,
		-0.007494, -0.016807, 1.024301,
	},
	FilterDeuteranopia: {
		0.367322, 0.860646, -0.227968,
		0.280085, 0.672501, 0.047413,
		-0.011820, 0.042940, 0.968881,
	},
	FilterDeuteranomaly: {
		0.547494, 0.607765, -0.155259,
		0.181692, 0.781742, 0.036566,
		-0.010410, 0.027275, 0.983136,
	},
	FilterTritanopia: {
		1.255528, -0.076749, -0.178779,
		-0.078411, 0.930809, 0.147602,
		0.004733, 0.691367, 0.303900,
	},
	FilterTritanomaly: {
		1.017277, 0.027029, -0.044306,
		-0.006113, 0.958479, 0.047634,
		0.006379, 0.248708, 0.744913,
	},
	// Achromatic variants never reach the matrix path; they are handled by
	// luminance extraction in Apply.
	FilterAchromatopsia: identity3,
	FilterAchromatomaly: identity3,
}

// applyMatrix runs the matrix simulation model.
func applyMatrix(f Filter, r, g, b float32) (float32, float32, float32) {
	sr, sg, sb := machado[f].apply(r, g, b)
	return clamp01(sr), clamp01(sg), clamp01(sb)
}
