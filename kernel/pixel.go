package kernel

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/correct"
	"github.com/gogpu/cvd/internal/simulate"
	"github.com/gogpu/cvd/internal/zone"
	"github.com/gogpu/cvd/lut"
)

// Pixel is the reference per-pixel transform: route the coordinate to its
// zone(s), apply each zone's configuration to the sampled color, and blend.
// The WGSL kernel must reproduce this function bit-for-behavior; tests
// compare the two paths through this one.
//
// x and y are pixel coordinates; frame extents and the pointer position
// come from the block header. c is the sampled sRGB color.
func Pixel(b *Block, luts *lut.Set, x, y float32, c colorspace.Color) colorspace.Color {
	r := zone.Route(b.Topology(), x, y, b.Width, b.Height, b.PointerX, b.PointerY)

	out := applyZone(b, r.Primary, luts, c)
	if r.Blend > 0 {
		out = out.Lerp(applyZone(b, r.Secondary, luts, c), r.Blend)
	}
	return out
}

// applyZone runs one zone's configuration over the color: mode dispatch,
// then the zone's intensity blend against the untouched input.
func applyZone(b *Block, z int, luts *lut.Set, c colorspace.Color) colorspace.Color {
	if z < 0 || z >= ZoneCount {
		return c
	}
	zp := &b.Zones[z]

	var out colorspace.Color
	switch zp.Mode {
	case ModeSimulation:
		out = simulated(c, simModel(zp.SimModel), zp.SimFilter)

	case ModeCorrection:
		out = corrected(zp, z, luts, c)
		if zp.PostSimEnabled != 0 {
			out = simulated(out, simModel(zp.PostSimModel), zp.PostSimFilter)
		}

	default: // ModeOriginal and unknown modes pass through
		return c
	}

	return c.Lerp(out, clamp01(zp.Intensity))
}

// simulated linearizes, applies the simulation model and re-encodes.
func simulated(c colorspace.Color, m simulate.Model, filterCode uint32) colorspace.Color {
	f := DecodeFilter(m, filterCode)
	lin := colorspace.SRGBToLinearColor(c)
	r, g, bl := simulate.Apply(m, f, lin.R, lin.G, lin.B)
	return colorspace.LinearToSRGBColor(colorspace.Color{R: r, G: g, B: bl}).Clamp()
}

// corrected dispatches the zone's correction algorithm, applying the
// simulation-guided weight when enabled.
func corrected(zp *ZoneParams, z int, luts *lut.Set, c colorspace.Color) colorspace.Color {
	m := simModel(zp.SimModel)
	f := DecodeFilter(m, zp.SimFilter)

	scale := float32(1)
	if zp.GuidedEnabled != 0 {
		gm := simModel(zp.GuidedModel)
		scale = correct.GuidedWeight(c, gm, DecodeFilter(gm, zp.GuidedFilter), zp.GuidedSensitivity)
	}

	switch correctionAlgorithm(zp.CorrectionAlgorithm) {
	case correct.AlgorithmDaltonize:
		return correct.Daltonize(c, m, f, zp.CorrectionStrength*scale)

	case correct.AlgorithmHueRotate:
		p := correct.HueRotateParams{
			Advanced: zp.HueAdvanced != 0,
			Start:    zp.HueStart,
			End:      zp.HueEnd,
			Shift:    zp.HueShift,
			Falloff:  zp.HueFalloff,
			Strength: zp.HueStrength,
		}
		return correct.HueRotate(c, p, f, scale)

	case correct.AlgorithmCielab:
		p := correct.CielabParams{
			Advanced: zp.LabAdvanced != 0,
			AToB:     zp.LabAToB,
			BToA:     zp.LabBToA,
			AEnhance: zp.LabAEnhance,
			BEnhance: zp.LabBEnhance,
			LEnhance: zp.LabLEnhance,
			Strength: zp.LabStrength,
		}
		return correct.Cielab(c, p, f, scale)

	default: // AlgorithmLUTRemap
		if luts == nil {
			return c
		}
		var channels [ChannelCount]correct.Channel
		for i := range channels {
			channels[i] = channelSettings(&zp.Channels[i])
		}
		return correct.LUTRemap(c, &channels, luts.ZoneTables(z), scale)
	}
}

// channelSettings converts packed channel parameters into the correction
// engine's form. Unknown mode codes fall back to the first variant.
func channelSettings(cp *ChannelParams) correct.Channel {
	blend := correct.BlendMode(cp.BlendMode)
	if cp.BlendMode > uint32(correct.BlendScreen) {
		blend = correct.BlendChannelWeighted
	}
	app := correct.ApplicationMode(cp.ApplicationMode)
	if cp.ApplicationMode > uint32(correct.ApplyThreshold) {
		app = correct.ApplyFullChannel
	}
	return correct.Channel{
		Enabled:              cp.Enabled != 0,
		Strength:             cp.Strength,
		WhiteProtection:      cp.WhiteProtection,
		DominanceThreshold:   cp.DominanceThreshold,
		Blend:                blend,
		Application:          app,
		ApplicationThreshold: cp.ApplicationThreshold,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
