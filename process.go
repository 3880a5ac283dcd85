package cvd

import (
	"errors"

	"github.com/gogpu/cvd/kernel"
)

// ErrSizeMismatch is returned when the destination pixmap does not match
// the source dimensions.
var ErrSizeMismatch = errors.New("cvd: source and destination sizes differ")

// Process runs the full per-pixel pipeline over src and writes the result
// to dst, using the current snapshot (rebuilding stale LUTs first).
// pointerX and pointerY position the circle/rectangle topologies. Rows are
// processed in parallel on the engine's worker pool.
//
// src and dst may be the same pixmap: each pixel depends only on its own
// input value.
func (e *Engine) Process(src, dst *Pixmap, pointerX, pointerY float32) error {
	if src.Width() != dst.Width() || src.Height() != dst.Height() {
		return ErrSizeMismatch
	}

	s := e.Snapshot()
	block := s.Block(float32(src.Width()), float32(src.Height()), pointerX, pointerY)
	luts := s.LUTs()

	e.pool.Rows(src.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < src.Width(); x++ {
				c, alpha := src.At(x, y)
				out := kernel.Pixel(&block, luts, float32(x), float32(y), c)
				dst.Set(x, y, out, alpha)
			}
		}
	})
	return nil
}
