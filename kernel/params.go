// Package kernel defines the packed parameter block consumed by the
// pixel-shading kernel, the reference per-pixel transform it must
// reproduce, and the embedded WGSL compute shader implementing it on the
// GPU.
//
// The binary layout of Block is a compatibility contract: the WGSL Params
// struct reads the same bytes, so field order, alignment and explicit
// padding must never change without versioning. A mismatch produces
// silently wrong colors with no error signal.
package kernel

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/cvd/internal/correct"
	"github.com/gogpu/cvd/internal/simulate"
	"github.com/gogpu/cvd/internal/zone"
)

// Layout constants. Must match the Params struct in cvd.wgsl.
const (
	// BlockSize is the total packed size in bytes.
	BlockSize = HeaderSize + ZoneCount*ZoneParamsSize

	// HeaderSize is the size of the topology header.
	HeaderSize = 48

	// ZoneParamsSize is the packed size of one zone's parameters.
	ZoneParamsSize = zoneScalarWords*4 + ChannelCount*ChannelParamsSize

	// ChannelParamsSize is the packed size of one channel's parameters.
	ChannelParamsSize = 32

	// ZoneCount and ChannelCount mirror the data model: four zones,
	// three color channels.
	ZoneCount    = 4
	ChannelCount = 3

	// zoneScalarWords is the number of 4-byte scalar fields in
	// ZoneParams ahead of the channel array.
	zoneScalarWords = 28
)

// Zone mode codes as packed into ZoneParams.Mode.
const (
	ModeOriginal uint32 = iota
	ModeSimulation
	ModeCorrection
)

// Mode codes for ZoneParams.SimModel and ZoneParams.GuidedModel.
const (
	SimModelMatrix uint32 = iota
	SimModelLMS
)

// lmsAnomalousOffset re-encodes anomalous (partial) filter variants of the
// LMS model into a distinct numeric range, so one filter slot can carry
// variants of either model unambiguously alongside the model code.
const lmsAnomalousOffset = 6

// Block is the full per-frame parameter set: the global topology header
// plus the four zones. Its packed form is exactly BlockSize bytes.
type Block struct {
	// SplitMode is the topology code (zone.SplitMode).
	SplitMode uint32

	// SplitX and SplitY are the normalized split positions.
	SplitX, SplitY float32

	// Radius, RectWidth and RectHeight are the shape extents in pixels.
	Radius, RectWidth, RectHeight float32

	// EdgeSoftness scales the soft boundary band.
	EdgeSoftness float32

	// PointerX and PointerY are the reference point in pixels.
	PointerX, PointerY float32

	// Width and Height are the frame extents in pixels.
	Width, Height float32

	Pad0 uint32

	Zones [ZoneCount]ZoneParams
}

// ZoneParams is one zone's packed configuration. Filter fields hold packed
// codes (see EncodeFilter).
type ZoneParams struct {
	Mode      uint32
	SimModel  uint32
	SimFilter uint32
	Intensity float32

	CorrectionAlgorithm uint32
	CorrectionStrength  float32

	GuidedEnabled     uint32
	GuidedModel       uint32
	GuidedFilter      uint32
	GuidedSensitivity float32

	PostSimEnabled uint32
	PostSimModel   uint32
	PostSimFilter  uint32

	HueAdvanced uint32
	HueStart    float32
	HueEnd      float32
	HueShift    float32
	HueFalloff  float32
	HueStrength float32

	LabAdvanced uint32
	LabAToB     float32
	LabBToA     float32
	LabAEnhance float32
	LabBEnhance float32
	LabLEnhance float32
	LabStrength float32

	Pad0, Pad1 uint32

	Channels [ChannelCount]ChannelParams
}

// ChannelParams is one channel's packed LUT-remap configuration.
type ChannelParams struct {
	Enabled              uint32
	Strength             float32
	WhiteProtection      float32
	DominanceThreshold   float32
	BlendMode            uint32
	ApplicationMode      uint32
	ApplicationThreshold float32
	Pad0                 uint32
}

// EncodeFilter packs a simulation filter for the given model. Anomalous
// variants of the LMS model are shifted by +6 into their own numeric range;
// everything else packs as its plain code.
func EncodeFilter(m simulate.Model, f simulate.Filter) uint32 {
	if m == simulate.ModelLMS && f.Anomalous() {
		return uint32(f) + lmsAnomalousOffset
	}
	return uint32(f)
}

// DecodeFilter is the inverse of EncodeFilter. Codes outside the valid
// range for the model decode to FilterNone, keeping unknown configuration
// inert.
func DecodeFilter(m simulate.Model, code uint32) simulate.Filter {
	if m == simulate.ModelLMS && code >= lmsAnomalousOffset+uint32(simulate.FilterProtanomaly) {
		f := simulate.Filter(code - lmsAnomalousOffset)
		if f.Anomalous() {
			return f
		}
		return simulate.FilterNone
	}
	f := simulate.Filter(code)
	if f >= simulate.FilterCount {
		return simulate.FilterNone
	}
	return f
}

// Pack serializes the block into its exact wire layout: little-endian
// 4-byte words, field order as declared. Identical blocks always produce
// byte-identical output.
func (b *Block) Pack() []byte {
	buf := make([]byte, BlockSize)
	le := binary.LittleEndian

	le.PutUint32(buf[0:], b.SplitMode)
	putF32(buf[4:], b.SplitX)
	putF32(buf[8:], b.SplitY)
	putF32(buf[12:], b.Radius)
	putF32(buf[16:], b.RectWidth)
	putF32(buf[20:], b.RectHeight)
	putF32(buf[24:], b.EdgeSoftness)
	putF32(buf[28:], b.PointerX)
	putF32(buf[32:], b.PointerY)
	putF32(buf[36:], b.Width)
	putF32(buf[40:], b.Height)
	le.PutUint32(buf[44:], b.Pad0)

	for i := range b.Zones {
		b.Zones[i].pack(buf[HeaderSize+i*ZoneParamsSize:])
	}
	return buf
}

func (z *ZoneParams) pack(buf []byte) {
	le := binary.LittleEndian

	le.PutUint32(buf[0:], z.Mode)
	le.PutUint32(buf[4:], z.SimModel)
	le.PutUint32(buf[8:], z.SimFilter)
	putF32(buf[12:], z.Intensity)
	le.PutUint32(buf[16:], z.CorrectionAlgorithm)
	putF32(buf[20:], z.CorrectionStrength)
	le.PutUint32(buf[24:], z.GuidedEnabled)
	le.PutUint32(buf[28:], z.GuidedModel)
	le.PutUint32(buf[32:], z.GuidedFilter)
	putF32(buf[36:], z.GuidedSensitivity)
	le.PutUint32(buf[40:], z.PostSimEnabled)
	le.PutUint32(buf[44:], z.PostSimModel)
	le.PutUint32(buf[48:], z.PostSimFilter)
	le.PutUint32(buf[52:], z.HueAdvanced)
	putF32(buf[56:], z.HueStart)
	putF32(buf[60:], z.HueEnd)
	putF32(buf[64:], z.HueShift)
	putF32(buf[68:], z.HueFalloff)
	putF32(buf[72:], z.HueStrength)
	le.PutUint32(buf[76:], z.LabAdvanced)
	putF32(buf[80:], z.LabAToB)
	putF32(buf[84:], z.LabBToA)
	putF32(buf[88:], z.LabAEnhance)
	putF32(buf[92:], z.LabBEnhance)
	putF32(buf[96:], z.LabLEnhance)
	putF32(buf[100:], z.LabStrength)
	le.PutUint32(buf[104:], z.Pad0)
	le.PutUint32(buf[108:], z.Pad1)

	for i := range z.Channels {
		z.Channels[i].pack(buf[zoneScalarWords*4+i*ChannelParamsSize:])
	}
}

func (c *ChannelParams) pack(buf []byte) {
	le := binary.LittleEndian

	le.PutUint32(buf[0:], c.Enabled)
	putF32(buf[4:], c.Strength)
	putF32(buf[8:], c.WhiteProtection)
	putF32(buf[12:], c.DominanceThreshold)
	le.PutUint32(buf[16:], c.BlendMode)
	le.PutUint32(buf[20:], c.ApplicationMode)
	putF32(buf[24:], c.ApplicationThreshold)
	le.PutUint32(buf[28:], c.Pad0)
}

// Unpack deserializes a packed block. It is the inverse of Pack; input
// shorter than BlockSize returns the zero block and false.
func Unpack(buf []byte) (Block, bool) {
	if len(buf) < BlockSize {
		return Block{}, false
	}
	le := binary.LittleEndian

	var b Block
	b.SplitMode = le.Uint32(buf[0:])
	b.SplitX = getF32(buf[4:])
	b.SplitY = getF32(buf[8:])
	b.Radius = getF32(buf[12:])
	b.RectWidth = getF32(buf[16:])
	b.RectHeight = getF32(buf[20:])
	b.EdgeSoftness = getF32(buf[24:])
	b.PointerX = getF32(buf[28:])
	b.PointerY = getF32(buf[32:])
	b.Width = getF32(buf[36:])
	b.Height = getF32(buf[40:])
	b.Pad0 = le.Uint32(buf[44:])

	for i := range b.Zones {
		b.Zones[i].unpack(buf[HeaderSize+i*ZoneParamsSize:])
	}
	return b, true
}

func (z *ZoneParams) unpack(buf []byte) {
	le := binary.LittleEndian

	z.Mode = le.Uint32(buf[0:])
	z.SimModel = le.Uint32(buf[4:])
	z.SimFilter = le.Uint32(buf[8:])
	z.Intensity = getF32(buf[12:])
	z.CorrectionAlgorithm = le.Uint32(buf[16:])
	z.CorrectionStrength = getF32(buf[20:])
	z.GuidedEnabled = le.Uint32(buf[24:])
	z.GuidedModel = le.Uint32(buf[28:])
	z.GuidedFilter = le.Uint32(buf[32:])
	z.GuidedSensitivity = getF32(buf[36:])
	z.PostSimEnabled = le.Uint32(buf[40:])
	z.PostSimModel = le.Uint32(buf[44:])
	z.PostSimFilter = le.Uint32(buf[48:])
	z.HueAdvanced = le.Uint32(buf[52:])
	z.HueStart = getF32(buf[56:])
	z.HueEnd = getF32(buf[60:])
	z.HueShift = getF32(buf[64:])
	z.HueFalloff = getF32(buf[68:])
	z.HueStrength = getF32(buf[72:])
	z.LabAdvanced = le.Uint32(buf[76:])
	z.LabAToB = getF32(buf[80:])
	z.LabBToA = getF32(buf[84:])
	z.LabAEnhance = getF32(buf[88:])
	z.LabBEnhance = getF32(buf[92:])
	z.LabLEnhance = getF32(buf[96:])
	z.LabStrength = getF32(buf[100:])
	z.Pad0 = le.Uint32(buf[104:])
	z.Pad1 = le.Uint32(buf[108:])

	for i := range z.Channels {
		z.Channels[i].unpack(buf[zoneScalarWords*4+i*ChannelParamsSize:])
	}
}

func (c *ChannelParams) unpack(buf []byte) {
	le := binary.LittleEndian

	c.Enabled = le.Uint32(buf[0:])
	c.Strength = getF32(buf[4:])
	c.WhiteProtection = getF32(buf[8:])
	c.DominanceThreshold = getF32(buf[12:])
	c.BlendMode = le.Uint32(buf[16:])
	c.ApplicationMode = le.Uint32(buf[20:])
	c.ApplicationThreshold = getF32(buf[24:])
	c.Pad0 = le.Uint32(buf[28:])
}

// Topology converts the header into the router's topology value.
func (b *Block) Topology() zone.Topology {
	m := zone.SplitMode(b.SplitMode)
	if m >= zone.SplitModeCount {
		m = zone.SplitFullscreen
	}
	return zone.Topology{
		Mode:         m,
		SplitX:       b.SplitX,
		SplitY:       b.SplitY,
		Radius:       b.Radius,
		RectWidth:    b.RectWidth,
		RectHeight:   b.RectHeight,
		EdgeSoftness: b.EdgeSoftness,
	}
}

// simModel converts a packed model code, defaulting unknown codes to the
// matrix model.
func simModel(code uint32) simulate.Model {
	if code == SimModelLMS {
		return simulate.ModelLMS
	}
	return simulate.ModelMatrix
}

// correctionAlgorithm converts a packed algorithm code; unknown codes fall
// back to the LUT remap, which with no enabled channels is inert.
func correctionAlgorithm(code uint32) correct.Algorithm {
	if code > uint32(correct.AlgorithmCielab) {
		return correct.AlgorithmLUTRemap
	}
	return correct.Algorithm(code)
}

func putF32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

func getF32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}
