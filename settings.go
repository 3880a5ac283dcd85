package cvd

import (
	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/internal/simulate"
	"github.com/gogpu/cvd/internal/zone"
	"github.com/gogpu/cvd/lut"
)

// Mode selects what a zone does to its pixels.
type Mode uint8

const (
	// ModeOriginal passes pixels through unchanged.
	ModeOriginal Mode = iota
	// ModeSimulation shows the zone as a CVD viewer would see it.
	ModeSimulation
	// ModeCorrection applies the zone's correction algorithm.
	ModeCorrection
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeOriginal:
		return "Original"
	case ModeSimulation:
		return "Simulation"
	case ModeCorrection:
		return "Correction"
	default:
		return "Unknown"
	}
}

// Model selects the simulation model.
type Model uint8

const (
	// ModelMatrix applies the Machado 2009 matrices to linear RGB.
	ModelMatrix Model = iota
	// ModelLMS projects cone responses in LMS space.
	ModelLMS
)

// String returns a human-readable name for the model.
func (m Model) String() string {
	if m == ModelLMS {
		return "LMS"
	}
	return "Matrix"
}

// Filter identifies a color vision deficiency variant. FilterNone is the
// identity under both models.
type Filter uint8

const (
	FilterNone Filter = iota
	FilterProtanopia
	FilterProtanomaly
	FilterDeuteranopia
	FilterDeuteranomaly
	FilterTritanopia
	FilterTritanomaly
	FilterAchromatopsia
	FilterAchromatomaly

	// FilterCount is the number of defined filters.
	FilterCount
)

// String returns a human-readable name for the filter.
func (f Filter) String() string {
	return simulate.Filter(f).String()
}

// Algorithm selects a correction algorithm.
type Algorithm uint8

const (
	// AlgorithmLUTRemap remaps each channel through its gradient table.
	AlgorithmLUTRemap Algorithm = iota
	// AlgorithmDaltonize redistributes simulated color loss.
	AlgorithmDaltonize
	// AlgorithmHueRotate rotates hues within a source arc.
	AlgorithmHueRotate
	// AlgorithmCielab remaps the a*/b* opponent axes.
	AlgorithmCielab
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLUTRemap:
		return "LUTRemap"
	case AlgorithmDaltonize:
		return "Daltonize"
	case AlgorithmHueRotate:
		return "HueRotate"
	case AlgorithmCielab:
		return "Cielab"
	default:
		return "Unknown"
	}
}

// BlendMode selects how a channel's LUT color is folded into the working
// color during LUT remapping.
type BlendMode uint8

const (
	BlendChannelWeighted BlendMode = iota
	BlendDirect
	BlendProportional
	BlendAdditive
	BlendScreen
)

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

// SplitMode selects the screen topology.
type SplitMode uint8

const (
	SplitFullscreen SplitMode = iota
	SplitVertical
	SplitHorizontal
	SplitQuadrants
	SplitCircle
	SplitRectangle
)

// String returns a human-readable name for the split mode.
func (m SplitMode) String() string {
	return zone.SplitMode(m).String()
}

// Topology holds the global zone routing parameters. Split positions are
// normalized; shape extents are in pixels.
type Topology struct {
	Mode                  SplitMode
	SplitX, SplitY        float32
	CircleRadius          float32
	RectWidth, RectHeight float32
	EdgeSoftness          float32
}

// ChannelSettings configures one color channel of a zone's LUT remap.
type ChannelSettings struct {
	Enabled bool

	// Strength is the blend strength in [0,1].
	Strength float32

	// StartColor and EndColor are the gradient endpoints; the channel's
	// 256-entry table interpolates between them in Space.
	StartColor, EndColor colorspace.Color

	// Space is the gradient interpolation space.
	Space lut.Space

	// WhiteProtection suppresses correction for near-white pixels.
	WhiteProtection float32

	// DominanceThreshold is the minimum share of the pixel's total
	// intensity the channel must carry. Zero disables the gate.
	DominanceThreshold float32

	Blend       BlendMode
	Application ApplicationMode

	// ApplicationThreshold is the channel-value cutoff for
	// ApplyThreshold.
	ApplicationThreshold float32
}

// HueRotationSettings configures the hue rotation correction. When Advanced
// is false the arc is derived from the zone's filter. Angles in degrees.
type HueRotationSettings struct {
	Advanced   bool
	Start, End float32
	Shift      float32
	Falloff    float32
	Strength   float32
}

// CielabSettings configures the CIELAB axis remap. When Advanced is false
// the parameters are derived from the zone's filter.
type CielabSettings struct {
	Advanced           bool
	AToB, BToA         float32
	AEnhance, BEnhance float32
	LEnhance           float32
	Strength           float32
}

// GuidedSettings scales correction strength per pixel by the simulated
// color loss instead of applying it uniformly.
type GuidedSettings struct {
	Enabled     bool
	Model       Model
	Filter      Filter
	Sensitivity float32
}

// PostSimulationSettings applies a simulation pass after correction, for
// previewing what a CVD viewer sees of the corrected output.
type PostSimulationSettings struct {
	Enabled bool
	Model   Model
	Filter  Filter
}

// ZoneSettings is one zone's full configuration.
type ZoneSettings struct {
	Mode Mode

	// Model and Filter drive simulation mode and the simulation-based
	// corrections (Daltonization, auto hue/CIELAB tables).
	Model  Model
	Filter Filter

	// Algorithm selects the correction for ModeCorrection.
	Algorithm Algorithm

	// Strength is the correction strength for Daltonization.
	Strength float32

	// Intensity is the final blend between the untouched and processed
	// pixel, in [0,1].
	Intensity float32

	Channels       [3]ChannelSettings
	HueRotation    HueRotationSettings
	Cielab         CielabSettings
	Guided         GuidedSettings
	PostSimulation PostSimulationSettings
}

// DefaultZones returns the documented initial configuration: zone 0
// previews deuteranopia, zone 1 corrects it, zones 2 and 3 pass through.
func DefaultZones() [ZoneCount]ZoneSettings {
	var zones [ZoneCount]ZoneSettings
	for i := range zones {
		z := &zones[i]
		z.Intensity = 1
		z.Strength = 1
		z.Filter = FilterDeuteranopia
		for c := range z.Channels {
			ch := &z.Channels[c]
			ch.Strength = 1
			ch.StartColor = colorspace.White
			ch.EndColor = colorspace.White
			ch.Blend = BlendDirect
		}
	}
	zones[0].Mode = ModeSimulation
	zones[1].Mode = ModeCorrection
	zones[1].Algorithm = AlgorithmDaltonize
	return zones
}

// DefaultTopology returns the initial fullscreen routing.
func DefaultTopology() Topology {
	return Topology{
		Mode:         SplitFullscreen,
		SplitX:       0.5,
		SplitY:       0.5,
		CircleRadius: 200,
		RectWidth:    400,
		RectHeight:   300,
	}
}
