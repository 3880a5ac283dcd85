package cvd

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/cvd/internal/parallel"
	"github.com/gogpu/cvd/internal/simulate"
	"github.com/gogpu/cvd/kernel"
	"github.com/gogpu/cvd/lut"
)

// ZoneCount and ChannelCount mirror the kernel's data model: four zones,
// three color channels.
const (
	ZoneCount    = kernel.ZoneCount
	ChannelCount = kernel.ChannelCount
)

// Engine owns the zone configuration and produces immutable snapshots for
// the per-pixel evaluator.
//
// Configuration mutation is single-writer: Configure, SetZone and
// SetTopology serialize through an internal mutex, mark affected LUTs
// stale, and Snapshot rebuilds them on demand. Readers always observe a
// complete snapshot; tables are never mutated in place, only swapped.
type Engine struct {
	mu       sync.Mutex
	zones    [ZoneCount]ZoneSettings
	topology Topology
	stale    [ZoneCount]bool

	// luts is the last built table set, kept so an unchanged zone's
	// tables carry over into the next snapshot instead of rebuilding.
	luts *lut.Set

	snapshot atomic.Pointer[Snapshot]

	pool   *parallel.Pool
	format lut.TexelFormat
}

// Snapshot is an immutable generation of the engine's state: packed zone
// parameters plus the LUT tables they reference. Safe for concurrent use
// from any number of readers.
type Snapshot struct {
	zones    [ZoneCount]kernel.ZoneParams
	topology Topology
	luts     *lut.Set
	format   lut.TexelFormat
}

// New creates an engine with the default configuration (zone 0 simulating
// deuteranopia fullscreen, zone 1 correcting, zones 2 and 3 untouched).
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		zones:    DefaultZones(),
		topology: DefaultTopology(),
		pool:     parallel.NewPool(o.workers),
		format:   o.format,
	}
	for i := range e.stale {
		e.stale[i] = true
	}
	return e
}

// Close releases the engine's worker pool. The last published snapshot
// stays valid for readers still holding it.
func (e *Engine) Close() {
	e.pool.Close()
	e.mu.Lock()
	e.luts = nil
	e.mu.Unlock()
}

// Zone returns a copy of one zone's settings. Out-of-range indices return
// the zero value.
func (e *Engine) Zone(i int) ZoneSettings {
	if i < 0 || i >= ZoneCount {
		return ZoneSettings{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.zones[i]
}

// SetZone replaces one zone's settings. The zone's LUTs are marked stale
// only when a gradient-affecting field changed; everything else is picked
// up by the next Snapshot without a rebuild.
func (e *Engine) SetZone(i int, s ZoneSettings) {
	if i < 0 || i >= ZoneCount {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if gradientChanged(&e.zones[i], &s) {
		e.stale[i] = true
	}
	e.zones[i] = s
	e.invalidate()
}

// Topology returns the current routing topology.
func (e *Engine) Topology() Topology {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.topology
}

// SetTopology replaces the routing topology.
func (e *Engine) SetTopology(t Topology) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.topology = t
	e.invalidate()
}

// invalidate drops the published snapshot; callers hold e.mu.
func (e *Engine) invalidate() {
	e.snapshot.Store(nil)
}

// gradientChanged reports whether any field feeding the LUT tables
// differs between the two settings.
func gradientChanged(prev, next *ZoneSettings) bool {
	for c := range prev.Channels {
		a, b := &prev.Channels[c], &next.Channels[c]
		if a.StartColor != b.StartColor || a.EndColor != b.EndColor || a.Space != b.Space {
			return true
		}
	}
	return false
}

// Snapshot returns the current immutable generation, rebuilding stale LUTs
// first. The returned snapshot never changes; a later configuration change
// produces a new one.
func (e *Engine) Snapshot() *Snapshot {
	if s := e.snapshot.Load(); s != nil {
		return s
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if s := e.snapshot.Load(); s != nil {
		return s
	}

	rebuilt := 0
	s := &Snapshot{topology: e.topology, format: e.format}
	s.luts = lut.NewSet(func(zoneIdx, channel int) *lut.Table {
		if !e.stale[zoneIdx] && e.luts != nil {
			return e.luts.Table(zoneIdx, channel)
		}
		rebuilt++
		ch := &e.zones[zoneIdx].Channels[channel]
		return lut.Build(ch.StartColor, ch.EndColor, ch.Space)
	})
	e.luts = s.luts
	for i := range e.zones {
		s.zones[i] = zoneParams(&e.zones[i])
		e.stale[i] = false
	}

	e.snapshot.Store(s)
	Logger().Debug("cvd: snapshot rebuilt", "tables", rebuilt)
	return s
}

// zoneParams converts typed settings into the packed kernel form.
func zoneParams(z *ZoneSettings) kernel.ZoneParams {
	model := simulate.Model(z.Model)
	p := kernel.ZoneParams{
		Mode:      uint32(z.Mode),
		SimModel:  uint32(z.Model),
		SimFilter: kernel.EncodeFilter(model, simulate.Filter(z.Filter)),
		Intensity: z.Intensity,

		CorrectionAlgorithm: uint32(z.Algorithm),
		CorrectionStrength:  z.Strength,

		GuidedEnabled:     boolU32(z.Guided.Enabled),
		GuidedModel:       uint32(z.Guided.Model),
		GuidedFilter:      kernel.EncodeFilter(simulate.Model(z.Guided.Model), simulate.Filter(z.Guided.Filter)),
		GuidedSensitivity: z.Guided.Sensitivity,

		PostSimEnabled: boolU32(z.PostSimulation.Enabled),
		PostSimModel:   uint32(z.PostSimulation.Model),
		PostSimFilter:  kernel.EncodeFilter(simulate.Model(z.PostSimulation.Model), simulate.Filter(z.PostSimulation.Filter)),

		HueAdvanced: boolU32(z.HueRotation.Advanced),
		HueStart:    z.HueRotation.Start,
		HueEnd:      z.HueRotation.End,
		HueShift:    z.HueRotation.Shift,
		HueFalloff:  z.HueRotation.Falloff,
		HueStrength: z.HueRotation.Strength,

		LabAdvanced: boolU32(z.Cielab.Advanced),
		LabAToB:     z.Cielab.AToB,
		LabBToA:     z.Cielab.BToA,
		LabAEnhance: z.Cielab.AEnhance,
		LabBEnhance: z.Cielab.BEnhance,
		LabLEnhance: z.Cielab.LEnhance,
		LabStrength: z.Cielab.Strength,
	}
	for c := range z.Channels {
		ch := &z.Channels[c]
		p.Channels[c] = kernel.ChannelParams{
			Enabled:              boolU32(ch.Enabled),
			Strength:             ch.Strength,
			WhiteProtection:      ch.WhiteProtection,
			DominanceThreshold:   ch.DominanceThreshold,
			BlendMode:            uint32(ch.Blend),
			ApplicationMode:      uint32(ch.Application),
			ApplicationThreshold: ch.ApplicationThreshold,
		}
	}
	return p
}

// Block assembles the per-frame parameter block for the given frame
// extents and pointer position.
func (s *Snapshot) Block(width, height, pointerX, pointerY float32) kernel.Block {
	b := kernel.Block{
		SplitMode:    uint32(s.topology.Mode),
		SplitX:       s.topology.SplitX,
		SplitY:       s.topology.SplitY,
		Radius:       s.topology.CircleRadius,
		RectWidth:    s.topology.RectWidth,
		RectHeight:   s.topology.RectHeight,
		EdgeSoftness: s.topology.EdgeSoftness,
		PointerX:     pointerX,
		PointerY:     pointerY,
		Width:        width,
		Height:       height,
	}
	b.Zones = s.zones
	return b
}

// PackedBlock is Block followed by kernel packing: the exact bytes for the
// kernel's uniform buffer.
func (s *Snapshot) PackedBlock(width, height, pointerX, pointerY float32) []byte {
	b := s.Block(width, height, pointerX, pointerY)
	return b.Pack()
}

// LUTs returns the snapshot's lookup tables.
func (s *Snapshot) LUTs() *lut.Set {
	return s.luts
}

// AtlasTexels encodes all twelve tables as one texture atlas in the
// engine's texel format, row = zone*3 + channel.
func (s *Snapshot) AtlasTexels() []byte {
	return s.luts.AtlasTexels(s.format)
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
