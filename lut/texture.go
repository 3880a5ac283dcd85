package lut

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/x448/float16"
)

// Texel encoding for LUT upload. Each table becomes one 256×1 four-channel
// floating-point image; alpha is always 1. Sampling is expected to use
// nearest-neighbor filtering with clamp-to-edge addressing, so table entries
// are never smoothed together.

// TexelFormat selects the floating-point texel encoding for LUT textures.
type TexelFormat uint8

const (
	// TexelRGBA32F encodes each sample as four little-endian float32 values
	// (16 bytes per texel).
	TexelRGBA32F TexelFormat = iota
	// TexelRGBA16F encodes each sample as four IEEE 754 half floats
	// (8 bytes per texel). Half precision is ample for [0,1] colors and
	// halves upload bandwidth.
	TexelRGBA16F
)

// BytesPerTexel returns the byte size of one texel in this format.
func (f TexelFormat) BytesPerTexel() int {
	if f == TexelRGBA16F {
		return 8
	}
	return 16
}

// TextureFormat returns the matching wgpu texture format.
func (f TexelFormat) TextureFormat() gputypes.TextureFormat {
	if f == TexelRGBA16F {
		return gputypes.TextureFormatRGBA16Float
	}
	return gputypes.TextureFormatRGBA32Float
}

// TexelsRGBA32F encodes the table as 256 RGBA float32 texels (4096 bytes),
// little-endian.
func (t *Table) TexelsRGBA32F() []byte {
	buf := make([]byte, Size*16)
	le := binary.LittleEndian
	for i, c := range t.colors {
		off := i * 16
		le.PutUint32(buf[off:off+4], math.Float32bits(c.R))
		le.PutUint32(buf[off+4:off+8], math.Float32bits(c.G))
		le.PutUint32(buf[off+8:off+12], math.Float32bits(c.B))
		le.PutUint32(buf[off+12:off+16], math.Float32bits(1))
	}
	return buf
}

// TexelsRGBA16F encodes the table as 256 RGBA half-float texels (2048
// bytes), little-endian.
func (t *Table) TexelsRGBA16F() []byte {
	buf := make([]byte, Size*8)
	le := binary.LittleEndian
	one := float16.Fromfloat32(1).Bits()
	for i, c := range t.colors {
		off := i * 8
		le.PutUint16(buf[off:off+2], float16.Fromfloat32(c.R).Bits())
		le.PutUint16(buf[off+2:off+4], float16.Fromfloat32(c.G).Bits())
		le.PutUint16(buf[off+4:off+6], float16.Fromfloat32(c.B).Bits())
		le.PutUint16(buf[off+6:off+8], one)
	}
	return buf
}

// Texels encodes the table in the requested format.
func (t *Table) Texels(f TexelFormat) []byte {
	if f == TexelRGBA16F {
		return t.TexelsRGBA16F()
	}
	return t.TexelsRGBA32F()
}

// AtlasTexels encodes the whole set as one Size×12 image, one row per
// zone/channel pair (row = zone*Channels + channel). The reference WGSL
// kernel binds this atlas as a single texture; hosts that prefer 12
// individual 256×1 textures use Table.Texels instead.
func (s *Set) AtlasTexels(f TexelFormat) []byte {
	bpt := f.BytesPerTexel()
	buf := make([]byte, Size*Zones*Channels*bpt)
	for z := range Zones {
		for c := range Channels {
			row := z*Channels + c
			copy(buf[row*Size*bpt:], s.tables[z][c].Texels(f))
		}
	}
	return buf
}

// TextureDescriptor returns the descriptor for one 256×1 LUT texture.
func TextureDescriptor(f TexelFormat, label string) gputypes.TextureDescriptor {
	return gputypes.TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              Size,
			Height:             1,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        f.TextureFormat(),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// AtlasTextureDescriptor returns the descriptor for the Size×12 atlas
// texture holding all zone/channel tables.
func AtlasTextureDescriptor(f TexelFormat, label string) gputypes.TextureDescriptor {
	d := TextureDescriptor(f, label)
	d.Size.Height = Zones * Channels
	return d
}

// SamplerDescriptor returns the sampler the kernel is expected to use for
// LUT textures: nearest-neighbor with clamped addressing, so no implicit
// smoothing happens between table entries.
func SamplerDescriptor(label string) gputypes.SamplerDescriptor {
	return gputypes.SamplerDescriptor{
		Label:        label,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
	}
}
