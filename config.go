package cvd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/lut"
)

// Source is the external configuration interface: a string-keyed lookup
// that reports whether a key is present. Keys are namespaced per zone
// (zone0_mode, zone1_red_startColor, ...) plus global topology keys
// (splitMode, edgeSoftness, ...). Colors are 6-hex-digit strings
// (#RRGGBB) or SVG color names.
type Source interface {
	TryGet(key string) (string, bool)
}

// Configure applies every present key from src to the engine. Missing keys
// leave the current value untouched; malformed values degrade to inert
// defaults (colors to white, enums to their zero variant) and are logged
// at warn level, never returned as errors.
func (e *Engine) Configure(src Source) {
	p := parser{src: src}

	t := e.Topology()
	p.splitMode(&t.Mode, "splitMode")
	p.splitPos(&t.SplitX, "splitPositionX")
	p.splitPos(&t.SplitY, "splitPositionY")
	p.float(&t.CircleRadius, "circleRadius")
	p.float(&t.RectWidth, "rectWidth")
	p.float(&t.RectHeight, "rectHeight")
	p.norm(&t.EdgeSoftness, "edgeSoftness")
	e.SetTopology(t)

	for i := 0; i < ZoneCount; i++ {
		z := e.Zone(i)
		prefix := fmt.Sprintf("zone%d_", i)

		parseEnum(&p, &z.Mode, prefix+"mode", uint8(ModeCorrection))
		parseEnum(&p, &z.Model, prefix+"model", uint8(ModelLMS))
		parseEnum(&p, &z.Filter, prefix+"filterType", uint8(FilterCount-1))
		parseEnum(&p, &z.Algorithm, prefix+"algorithm", uint8(AlgorithmCielab))
		p.norm(&z.Strength, prefix+"strength")
		p.norm(&z.Intensity, prefix+"intensity")

		p.boolean(&z.Guided.Enabled, prefix+"guided_enabled")
		parseEnum(&p, &z.Guided.Model, prefix+"guided_model", uint8(ModelLMS))
		parseEnum(&p, &z.Guided.Filter, prefix+"guided_filterType", uint8(FilterCount-1))
		p.float(&z.Guided.Sensitivity, prefix+"guided_sensitivity")

		p.boolean(&z.PostSimulation.Enabled, prefix+"postSim_enabled")
		parseEnum(&p, &z.PostSimulation.Model, prefix+"postSim_model", uint8(ModelLMS))
		parseEnum(&p, &z.PostSimulation.Filter, prefix+"postSim_filterType", uint8(FilterCount-1))

		p.boolean(&z.HueRotation.Advanced, prefix+"hue_advanced")
		p.float(&z.HueRotation.Start, prefix+"hue_start")
		p.float(&z.HueRotation.End, prefix+"hue_end")
		p.float(&z.HueRotation.Shift, prefix+"hue_shift")
		p.norm(&z.HueRotation.Falloff, prefix+"hue_falloff")
		p.norm(&z.HueRotation.Strength, prefix+"hue_strength")

		p.boolean(&z.Cielab.Advanced, prefix+"lab_advanced")
		p.signed(&z.Cielab.AToB, prefix+"lab_aToB")
		p.signed(&z.Cielab.BToA, prefix+"lab_bToA")
		p.float(&z.Cielab.AEnhance, prefix+"lab_aEnhance")
		p.float(&z.Cielab.BEnhance, prefix+"lab_bEnhance")
		p.float(&z.Cielab.LEnhance, prefix+"lab_lEnhance")
		p.norm(&z.Cielab.Strength, prefix+"lab_strength")

		for c, name := range [ChannelCount]string{"red", "green", "blue"} {
			ch := &z.Channels[c]
			cp := prefix + name + "_"
			p.boolean(&ch.Enabled, cp+"enabled")
			p.norm(&ch.Strength, cp+"strength")
			p.color(&ch.StartColor, cp+"startColor")
			p.color(&ch.EndColor, cp+"endColor")
			p.space(&ch.Space, cp+"gradientSpace")
			p.norm(&ch.WhiteProtection, cp+"whiteProtection")
			p.norm(&ch.DominanceThreshold, cp+"dominanceThreshold")
			parseEnum(&p, &ch.Blend, cp+"blendMode", uint8(BlendScreen))
			parseEnum(&p, &ch.Application, cp+"applicationMode", uint8(ApplyThreshold))
			p.norm(&ch.ApplicationThreshold, cp+"applicationThreshold")
		}

		e.SetZone(i, z)
	}
}

// parser wraps a Source with typed, silently-defaulting accessors.
type parser struct {
	src Source
}

// float parses an unbounded float; malformed input keeps the previous
// value.
func (p *parser) float(dst *float32, key string) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil {
		Logger().Warn("cvd: malformed float in configuration", "key", key, "value", raw)
		return
	}
	*dst = float32(v)
}

// norm parses a float clamped to [0,1].
func (p *parser) norm(dst *float32, key string) {
	v := *dst
	p.float(&v, key)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	*dst = v
}

// splitPos parses a split position clamped to [0.1,0.9], keeping both
// split halves visible.
func (p *parser) splitPos(dst *float32, key string) {
	v := *dst
	p.float(&v, key)
	if v < 0.1 {
		v = 0.1
	}
	if v > 0.9 {
		v = 0.9
	}
	*dst = v
}

// signed parses a float clamped to [-1,1].
func (p *parser) signed(dst *float32, key string) {
	v := *dst
	p.float(&v, key)
	if v < -1 {
		v = -1
	}
	if v > 1 {
		v = 1
	}
	*dst = v
}

func (p *parser) boolean(dst *bool, key string) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		*dst = true
	case "0", "false", "off", "no":
		*dst = false
	default:
		Logger().Warn("cvd: malformed boolean in configuration", "key", key, "value", raw)
	}
}

// parseEnum parses an integer enum code; values above max are rejected,
// keeping unknown variants inert rather than misrouted.
func parseEnum[T ~uint8](p *parser, dst *T, key string, max uint8) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 || v > int(max) {
		Logger().Warn("cvd: malformed enum in configuration", "key", key, "value", raw)
		return
	}
	*dst = T(v)
}

// color parses a #RRGGBB hex string or SVG color name; malformed input
// resolves to opaque white.
func (p *parser) color(dst *colorspace.Color, key string) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	*dst = colorspace.Hex(raw)
}

func (p *parser) space(dst *lut.Space, key string) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 || v > int(lut.SpaceHSL) {
		Logger().Warn("cvd: malformed gradient space in configuration", "key", key, "value", raw)
		return
	}
	*dst = lut.Space(v)
}

func (p *parser) splitMode(dst *SplitMode, key string) {
	raw, ok := p.src.TryGet(key)
	if !ok {
		return
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 || v > int(SplitRectangle) {
		Logger().Warn("cvd: malformed split mode in configuration", "key", key, "value", raw)
		return
	}
	*dst = SplitMode(v)
}
