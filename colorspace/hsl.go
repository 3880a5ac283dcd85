package colorspace

// RGBToHSL converts an sRGB-encoded color to hue, saturation, lightness.
// Hue is in turns [0, 1): 0 = red, 1/3 = green, 2/3 = blue.
// Saturation and lightness are in [0, 1].
func RGBToHSL(c Color) (h, s, l float32) {
	maxC := c.Max()
	minC := c.Min()
	l = (maxC + minC) / 2

	delta := maxC - minC
	if delta == 0 {
		return 0, 0, l // achromatic
	}

	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}
	h /= 6
	return h, s, l
}

// HSLToRGB converts hue (turns), saturation, lightness to an sRGB-encoded
// color. Hue values outside [0, 1) are wrapped.
func HSLToRGB(h, s, l float32) Color {
	h = wrapHue(h)
	if s == 0 {
		return Color{R: l, G: l, B: l}
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: hueToChannel(p, q, h+1.0/3.0),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3.0),
	}
}

// hueToChannel computes one RGB channel from HSL helper values.
func hueToChannel(p, q, t float32) float32 {
	t = wrapHue(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// LerpHue interpolates between two hues (in turns) along the shorter
// circular path. Interpolating 350° toward 10° at t=0.5 yields 0°, never
// 180°.
func LerpHue(h1, h2, t float32) float32 {
	d := h2 - h1
	if d > 0.5 {
		h1 += 1
	} else if d < -0.5 {
		h2 += 1
	}
	return wrapHue(h1 + (h2-h1)*t)
}

// wrapHue wraps a hue in turns to [0, 1).
func wrapHue(h float32) float32 {
	for h >= 1 {
		h -= 1
	}
	for h < 0 {
		h += 1
	}
	return h
}
