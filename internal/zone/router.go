// Package zone routes screen coordinates to zones. A zone is an
// independently configured spatial region; the router maps a pixel to one
// zone, or to two zones plus a blend weight inside a soft boundary band.
package zone

import "math"

// SplitMode selects the screen topology.
type SplitMode uint8

const (
	// SplitFullscreen routes every pixel to zone 0.
	SplitFullscreen SplitMode = iota
	// SplitVertical splits left/right at a normalized x position.
	SplitVertical
	// SplitHorizontal splits top/bottom at a normalized y position.
	SplitHorizontal
	// SplitQuadrants splits along both axes into four zones.
	SplitQuadrants
	// SplitCircle routes pixels inside a radius around the reference
	// point to zone 0 and the rest to zone 1.
	SplitCircle
	// SplitRectangle is like SplitCircle with an axis-aligned rectangle.
	SplitRectangle

	// SplitModeCount is the number of topologies.
	SplitModeCount
)

// String returns a human-readable name for the split mode.
func (m SplitMode) String() string {
	switch m {
	case SplitFullscreen:
		return "Fullscreen"
	case SplitVertical:
		return "Vertical"
	case SplitHorizontal:
		return "Horizontal"
	case SplitQuadrants:
		return "Quadrants"
	case SplitCircle:
		return "Circle"
	case SplitRectangle:
		return "Rectangle"
	default:
		return "Unknown"
	}
}

// Topology holds the global routing parameters. Split positions are
// normalized to [0,1]; shape extents are in pixels.
type Topology struct {
	Mode SplitMode

	// SplitX and SplitY are the normalized split positions for the
	// vertical/horizontal/quadrant modes.
	SplitX, SplitY float32

	// Radius is the circle radius in pixels.
	Radius float32

	// RectWidth and RectHeight are the rectangle's full extents in
	// pixels.
	RectWidth, RectHeight float32

	// EdgeSoftness in [0,1] scales the soft band width for the circle
	// and rectangle modes: the band spans EdgeSoftness times the shape
	// extent, centered on the boundary. Zero gives a hard edge.
	EdgeSoftness float32
}

// Result is a routing decision: the primary zone, and when Blend > 0 a
// secondary zone whose color is mixed in with weight Blend.
type Result struct {
	Primary   int
	Secondary int
	Blend     float32
}

// Route maps the pixel at (x, y) to its zone(s). width and height are the
// frame extents; refX and refY are the reference point (pointer position)
// for the circle and rectangle modes. An unknown mode routes to zone 0.
func Route(t Topology, x, y, width, height, refX, refY float32) Result {
	switch t.Mode {
	case SplitVertical:
		if width > 0 && x/width >= t.SplitX {
			return Result{Primary: 1}
		}
		return Result{}

	case SplitHorizontal:
		if height > 0 && y/height >= t.SplitY {
			return Result{Primary: 1}
		}
		return Result{}

	case SplitQuadrants:
		z := 0
		if width > 0 && x/width >= t.SplitX {
			z = 1
		}
		if height > 0 && y/height >= t.SplitY {
			z += 2
		}
		return Result{Primary: z}

	case SplitCircle:
		dx := x - refX
		dy := y - refY
		d := sqrt32(dx*dx + dy*dy)
		return edgeResult(d, t.Radius, t.EdgeSoftness*t.Radius)

	case SplitRectangle:
		halfW := t.RectWidth / 2
		halfH := t.RectHeight / 2
		// Per-axis signed edge distance, in units of the axis' soft
		// band; the larger of the two decides the blend.
		nx := axisEdge(abs32(x-refX), halfW, t.EdgeSoftness*halfW)
		ny := axisEdge(abs32(y-refY), halfH, t.EdgeSoftness*halfH)
		return outerBlend(max32(nx, ny))

	default: // SplitFullscreen and unknown modes
		return Result{}
	}
}

// edgeResult routes by distance d against a boundary at extent with a soft
// band of the given width centered on the boundary.
func edgeResult(d, extent, band float32) Result {
	return outerBlend(axisEdge(d, extent, band))
}

// axisEdge returns the normalized position of d within the soft band around
// extent: 0 fully inside, 1 fully outside, linear in between. A band of
// zero degenerates to a hard step at the boundary.
func axisEdge(d, extent, band float32) float32 {
	if band <= 0 {
		if d <= extent {
			return 0
		}
		return 1
	}
	return clamp01((d - (extent - band/2)) / band)
}

// outerBlend converts a normalized edge position into a routing result:
// zone 0 inside, zone 1 outside, smoothstep blend across the band.
func outerBlend(n float32) Result {
	w := smoothstep(n)
	if w <= 0 {
		return Result{}
	}
	if w >= 1 {
		return Result{Primary: 1}
	}
	return Result{Primary: 0, Secondary: 1, Blend: w}
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
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

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
