package correct

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/lut"
)

// BlendMode selects how a channel's LUT color is folded into the working
// color.
type BlendMode uint8

const (
	// BlendChannelWeighted weights the LUT color by the channel value
	// before applying strength.
	BlendChannelWeighted BlendMode = iota
	// BlendDirect lerps straight toward the LUT color by strength.
	BlendDirect
	// BlendProportional scales strength by the channel's share of the
	// pixel's maximum channel.
	BlendProportional
	// BlendAdditive adds the channel-weighted difference, clamped.
	BlendAdditive
	// BlendScreen applies screen compositing with the weighted LUT color.
	BlendScreen
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendChannelWeighted:
		return "ChannelWeighted"
	case BlendDirect:
		return "Direct"
	case BlendProportional:
		return "Proportional"
	case BlendAdditive:
		return "Additive"
	case BlendScreen:
		return "Screen"
	default:
		return "Unknown"
	}
}

// ApplicationMode selects which pixels a channel's correction affects.
type ApplicationMode uint8

const (
	// ApplyFullChannel affects every pixel where the channel is non-zero.
	ApplyFullChannel ApplicationMode = iota
	// ApplyDominantOnly affects pixels where the channel is the largest.
	ApplyDominantOnly
	// ApplyThreshold affects pixels where the channel exceeds a
	// configured threshold.
	ApplyThreshold
)

// String returns a human-readable name for the application mode.
func (m ApplicationMode) String() string {
	switch m {
	case ApplyFullChannel:
		return "FullChannel"
	case ApplyDominantOnly:
		return "DominantOnly"
	case ApplyThreshold:
		return "Threshold"
	default:
		return "Unknown"
	}
}

// Channel holds the per-channel LUT remap parameters.
type Channel struct {
	// Enabled gates the whole channel; a disabled channel contributes no
	// correction regardless of the other fields.
	Enabled bool

	// Strength is the blend strength in [0,1].
	Strength float32

	// WhiteProtection suppresses correction for near-white pixels: the
	// channel is skipped when the pixel's minimum channel exceeds
	// 1-WhiteProtection.
	WhiteProtection float32

	// DominanceThreshold is the minimum share of the pixel's total
	// intensity the channel must carry. Zero disables dominance gating.
	DominanceThreshold float32

	// Blend selects how the LUT color is folded into the working color.
	Blend BlendMode

	// Application selects which pixels the channel affects.
	Application ApplicationMode

	// ApplicationThreshold is the channel-value cutoff for
	// ApplyThreshold.
	ApplicationThreshold float32
}

// LUTRemap remaps a color through the per-channel lookup tables. The
// channel value of the input pixel selects the table sample; gating and
// blending follow each channel's settings. scale multiplies every channel's
// strength (the simulation-guided weight, or 1).
func LUTRemap(c colorspace.Color, channels *[3]Channel, tables [3]*lut.Table, scale float32) colorspace.Color {
	result := c
	channelValues := [3]float32{c.R, c.G, c.B}
	sum := c.R + c.G + c.B
	maxValue := c.Max()
	minValue := c.Min()

	for i := range channels {
		ch := &channels[i]
		if !ch.Enabled || tables[i] == nil {
			continue
		}
		v := channelValues[i]

		// Near-white pixels keep their color.
		if ch.WhiteProtection > 0 && minValue > 1-ch.WhiteProtection {
			continue
		}
		// Dominance gating: the channel must carry a minimum share of
		// the total intensity.
		if ch.DominanceThreshold > 0 && v/(sum+epsilon) < ch.DominanceThreshold {
			continue
		}
		switch ch.Application {
		case ApplyDominantOnly:
			if v < maxValue {
				continue
			}
		case ApplyThreshold:
			if v <= ch.ApplicationThreshold {
				continue
			}
		default: // ApplyFullChannel
			if v <= epsilon {
				continue
			}
		}

		lutColor := tables[i].Sample(v)
		result = blendChannel(result, lutColor, v, maxValue, ch.Strength*scale, ch.Blend)
	}
	return result
}

// blendChannel folds one channel's LUT color into the working color.
func blendChannel(result, lutColor colorspace.Color, v, maxValue, strength float32, mode BlendMode) colorspace.Color {
	switch mode {
	case BlendDirect:
		return result.Lerp(lutColor, strength)

	case BlendProportional:
		if maxValue < epsilon {
			return result
		}
		return result.Lerp(lutColor, strength*v/maxValue)

	case BlendAdditive:
		return colorspace.Color{
			R: clamp01(result.R + (lutColor.R-result.R)*v*strength),
			G: clamp01(result.G + (lutColor.G-result.G)*v*strength),
			B: clamp01(result.B + (lutColor.B-result.B)*v*strength),
		}

	case BlendScreen:
		f := v * strength
		return colorspace.Color{
			R: 1 - (1-result.R)*(1-lutColor.R*f),
			G: 1 - (1-result.G)*(1-lutColor.G*f),
			B: 1 - (1-result.B)*(1-lutColor.B*f),
		}

	default: // BlendChannelWeighted
		weighted := result.Lerp(lutColor, v)
		return result.Lerp(weighted, strength)
	}
}
