package cvd

import "github.com/gogpu/cvd/lut"

// Option configures an Engine during creation.
//
// Example:
//
//	// Default configuration
//	e := cvd.New()
//
//	// Two workers, half-float LUT textures
//	e := cvd.New(cvd.WithWorkers(2), cvd.WithTexelFormat(lut.TexelRGBA16F))
type Option func(*engineOptions)

type engineOptions struct {
	workers int
	format  lut.TexelFormat
}

func defaultOptions() engineOptions {
	return engineOptions{
		workers: 0, // GOMAXPROCS
		format:  lut.TexelRGBA32F,
	}
}

// WithWorkers sets the number of worker goroutines used by Process. Zero or
// negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithTexelFormat sets the texel format used when encoding LUT textures.
// The default is full 32-bit float; half floats halve the upload size at
// negligible precision cost for 8-bit screen content.
func WithTexelFormat(f lut.TexelFormat) Option {
	return func(o *engineOptions) {
		o.format = f
	}
}
