package cvd

import (
	"image"

	"github.com/gogpu/cvd/colorspace"
)

// Pixmap is a rectangular RGBA8 pixel buffer, the CPU-side stand-in for
// the captured screen texture.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewPixmap creates a pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromImage copies an image into a new pixmap.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*p.width + x) * 4
			p.data[i+0] = uint8(r >> 8)
			p.data[i+1] = uint8(g >> 8)
			p.data[i+2] = uint8(b >> 8)
			p.data[i+3] = uint8(a >> 8)
		}
	}
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// At returns the color of a single pixel and its alpha. Out-of-range
// coordinates return opaque black.
func (p *Pixmap) At(x, y int) (colorspace.Color, uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return colorspace.Color{}, 0xFF
	}
	i := (y*p.width + x) * 4
	return colorspace.Color{
		R: float32(p.data[i+0]) / 255,
		G: float32(p.data[i+1]) / 255,
		B: float32(p.data[i+2]) / 255,
	}, p.data[i+3]
}

// Set writes the color of a single pixel, preserving nothing: alpha is
// taken from the argument. Out-of-range coordinates are ignored.
func (p *Pixmap) Set(x, y int, c colorspace.Color, alpha uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = channelByte(c.R)
	p.data[i+1] = channelByte(c.G)
	p.data[i+2] = channelByte(c.B)
	p.data[i+3] = alpha
}

// Fill sets every pixel to the given opaque color.
func (p *Pixmap) Fill(c colorspace.Color) {
	r, g, b := channelByte(c.R), channelByte(c.G), channelByte(c.B)
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = 0xFF
	}
}

// ToImage copies the pixmap into an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

func channelByte(v float32) uint8 {
	x := v*255 + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
