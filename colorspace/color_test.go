package colorspace

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"red", "#FF0000", Color{1, 0, 0}},
		{"green lowercase", "#00ff00", Color{0, 1, 0}},
		{"no hash", "0000FF", Color{0, 0, 1}},
		{"black", "#000000", Color{0, 0, 0}},
		{"named color", "red", Color{1, 0, 0}},
		{"named color long", "cornflowerblue", Color{100.0 / 255, 149.0 / 255, 237.0 / 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if !colorNear(got, tt.want, 1e-5) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestHexMalformed verifies malformed color strings resolve to opaque white,
// never an error or garbage.
func TestHexMalformed(t *testing.T) {
	for _, s := range []string{"", "#", "#12345", "#GGGGGG", "#1234567", "notacolor", "##FF0000"} {
		if got := Hex(s); got != White {
			t.Errorf("Hex(%q) = %v, want white", s, got)
		}
	}
}

// TestHexAgainstColorful cross-checks hex parsing against go-colorful.
func TestHexAgainstColorful(t *testing.T) {
	for _, s := range []string{"#ff8040", "#013370", "#c0ffee"} {
		got := Hex(s)
		ref, err := colorful.Hex(s)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", s, err)
		}
		if !colorNear(got, Color{float32(ref.R), float32(ref.G), float32(ref.B)}, 1e-5) {
			t.Errorf("Hex(%q) = %v, colorful says %v", s, got, ref)
		}
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{0, 0, 0}
	b := Color{1, 0.5, 0.25}
	mid := a.Lerp(b, 0.5)
	if !colorNear(mid, Color{0.5, 0.25, 0.125}, 1e-6) {
		t.Errorf("Lerp midpoint = %v", mid)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints must be exact")
	}
}

func TestColorClamp(t *testing.T) {
	c := Color{-0.5, 0.5, 1.5}.Clamp()
	if c != (Color{0, 0.5, 1}) {
		t.Errorf("Clamp = %v", c)
	}
}
