package correct

import (
	"math"
	"testing"

	"github.com/gogpu/cvd/colorspace"
	"github.com/gogpu/cvd/lut"
)

func floatNear(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

func colorNear(a, b colorspace.Color, tol float32) bool {
	return floatNear(a.R, b.R, tol) && floatNear(a.G, b.G, tol) && floatNear(a.B, b.B, tol)
}

// redToCyan builds the red-channel table from the reference scenario:
// start (1,0,0), end (0,1,1), direct RGB interpolation.
func redToCyan() [3]*lut.Table {
	return [3]*lut.Table{
		lut.Build(colorspace.Color{R: 1}, colorspace.Color{G: 1, B: 1}, lut.SpaceRGB),
		nil,
		nil,
	}
}

// TestLUTRemapRedToCyan: red channel enabled with a red-to-cyan ramp,
// strength 1, direct blend, full-channel application. Pure red must become
// pure cyan; pure green must pass through untouched because its red value
// gates the channel off.
func TestLUTRemapRedToCyan(t *testing.T) {
	channels := [3]Channel{
		{Enabled: true, Strength: 1, Blend: BlendDirect, Application: ApplyFullChannel},
	}
	tables := redToCyan()

	got := LUTRemap(colorspace.Color{R: 1}, &channels, tables, 1)
	if !colorNear(got, colorspace.Color{G: 1, B: 1}, 1e-6) {
		t.Errorf("remap(red) = %v, want cyan", got)
	}

	green := colorspace.Color{G: 1}
	if got := LUTRemap(green, &channels, tables, 1); got != green {
		t.Errorf("remap(green) = %v, want unchanged", got)
	}
}

func TestLUTRemapDisabledChannel(t *testing.T) {
	channels := [3]Channel{
		{Enabled: false, Strength: 1, Blend: BlendDirect, Application: ApplyFullChannel},
	}
	in := colorspace.Color{R: 1}
	if got := LUTRemap(in, &channels, redToCyan(), 1); got != in {
		t.Errorf("disabled channel modified the color: %v", got)
	}
}

func TestLUTRemapWhiteProtection(t *testing.T) {
	channels := [3]Channel{
		{Enabled: true, Strength: 1, WhiteProtection: 0.2, Blend: BlendDirect, Application: ApplyFullChannel},
	}
	tables := redToCyan()

	// Near-white: min channel 0.9 > 1-0.2, protected.
	nearWhite := colorspace.Color{R: 1, G: 0.95, B: 0.9}
	if got := LUTRemap(nearWhite, &channels, tables, 1); got != nearWhite {
		t.Errorf("near-white pixel was corrected: %v", got)
	}

	// Saturated red: min channel 0, not protected.
	if got := LUTRemap(colorspace.Color{R: 1}, &channels, tables, 1); got == (colorspace.Color{R: 1}) {
		t.Error("saturated red should still be corrected")
	}
}

func TestLUTRemapDominanceThreshold(t *testing.T) {
	channels := [3]Channel{
		{Enabled: true, Strength: 1, DominanceThreshold: 0.5, Blend: BlendDirect, Application: ApplyFullChannel},
	}
	tables := redToCyan()

	// Red carries 1/3 of total intensity: below the 0.5 threshold.
	balanced := colorspace.Color{R: 0.5, G: 0.5, B: 0.5}
	if got := LUTRemap(balanced, &channels, tables, 1); got != balanced {
		t.Errorf("non-dominant red was corrected: %v", got)
	}

	// Red carries all the intensity: above the threshold.
	if got := LUTRemap(colorspace.Color{R: 0.8}, &channels, tables, 1); got == (colorspace.Color{R: 0.8}) {
		t.Error("dominant red should be corrected")
	}
}

func TestLUTRemapApplicationModes(t *testing.T) {
	tables := redToCyan()

	t.Run("DominantOnly", func(t *testing.T) {
		channels := [3]Channel{
			{Enabled: true, Strength: 1, Blend: BlendDirect, Application: ApplyDominantOnly},
		}
		// Green is larger than red: the red channel must not fire.
		in := colorspace.Color{R: 0.4, G: 0.6}
		if got := LUTRemap(in, &channels, tables, 1); got != in {
			t.Errorf("red fired while not dominant: %v", got)
		}
		// Red dominant: fires.
		in = colorspace.Color{R: 0.6, G: 0.4}
		if got := LUTRemap(in, &channels, tables, 1); got == in {
			t.Error("dominant red did not fire")
		}
	})

	t.Run("Threshold", func(t *testing.T) {
		channels := [3]Channel{
			{Enabled: true, Strength: 1, Blend: BlendDirect, Application: ApplyThreshold, ApplicationThreshold: 0.5},
		}
		in := colorspace.Color{R: 0.4}
		if got := LUTRemap(in, &channels, tables, 1); got != in {
			t.Errorf("red fired below threshold: %v", got)
		}
		in = colorspace.Color{R: 0.6}
		if got := LUTRemap(in, &channels, tables, 1); got == in {
			t.Error("red did not fire above threshold")
		}
	})
}

func TestLUTRemapBlendModes(t *testing.T) {
	tables := redToCyan()
	in := colorspace.Color{R: 0.5}
	lutColor := tables[0].Sample(0.5)

	mk := func(mode BlendMode, strength float32) [3]Channel {
		return [3]Channel{
			{Enabled: true, Strength: strength, Blend: mode, Application: ApplyFullChannel},
		}
	}

	t.Run("Direct half strength", func(t *testing.T) {
		channels := mk(BlendDirect, 0.5)
		want := in.Lerp(lutColor, 0.5)
		if got := LUTRemap(in, &channels, tables, 1); !colorNear(got, want, 1e-6) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("ChannelWeighted", func(t *testing.T) {
		channels := mk(BlendChannelWeighted, 1)
		want := in.Lerp(in.Lerp(lutColor, 0.5), 1)
		if got := LUTRemap(in, &channels, tables, 1); !colorNear(got, want, 1e-6) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Proportional", func(t *testing.T) {
		channels := mk(BlendProportional, 1)
		// Red is the max channel, so the ratio is 1 and this reduces
		// to a full lerp.
		want := in.Lerp(lutColor, 1)
		if got := LUTRemap(in, &channels, tables, 1); !colorNear(got, want, 1e-6) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("Additive stays in range", func(t *testing.T) {
		channels := mk(BlendAdditive, 1)
		got := LUTRemap(colorspace.Color{R: 1}, &channels, tables, 1)
		for _, v := range []float32{got.R, got.G, got.B} {
			if v < 0 || v > 1 {
				t.Fatalf("additive blend out of range: %v", got)
			}
		}
	})

	t.Run("Screen formula", func(t *testing.T) {
		channels := mk(BlendScreen, 1)
		f := in.R // v * strength
		want := colorspace.Color{
			R: 1 - (1-in.R)*(1-lutColor.R*f),
			G: 1 - (1-in.G)*(1-lutColor.G*f),
			B: 1 - (1-in.B)*(1-lutColor.B*f),
		}
		if got := LUTRemap(in, &channels, tables, 1); !colorNear(got, want, 1e-6) {
			t.Errorf("got %v, want %v", got, want)
		}
	})
}

// TestLUTRemapScale verifies the guided-weight scale multiplies the
// effective strength.
func TestLUTRemapScale(t *testing.T) {
	channels := [3]Channel{
		{Enabled: true, Strength: 1, Blend: BlendDirect, Application: ApplyFullChannel},
	}
	tables := redToCyan()
	in := colorspace.Color{R: 1}

	half := LUTRemap(in, &channels, tables, 0.5)
	want := in.Lerp(tables[0].Sample(1), 0.5)
	if !colorNear(half, want, 1e-6) {
		t.Errorf("scale 0.5: got %v, want %v", half, want)
	}
}
