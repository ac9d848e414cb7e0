package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}},
		{"#00ff00", color.RGBA{0, 255, 0, 255}},
		{"1,1,1", color.RGBA{255, 255, 255, 255}},
		{"0, 0, 0", color.RGBA{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got := (Palette{c}).RGBA(0); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "#zzzzzz", "1,1", "2,0,0", "a,b,c"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", bad, err)
		}
	}
}

func TestDefault(t *testing.T) {
	two := Default(2).Hex()
	if two[0] != "#ffffff" || two[1] != "#000000" {
		t.Errorf("Default(2) = %v", two)
	}

	three := Default(3).Hex()
	want := []string{"#ffffff", "#008000", "#00ff00"}
	for i := range want {
		if three[i] != want[i] {
			t.Errorf("Default(3)[%d] = %s, want %s", i, three[i], want[i])
		}
	}

	if Default(0) != nil {
		t.Error("Default(0) should be nil")
	}
	if err := Default(4).Check(4); err != nil {
		t.Error(err)
	}
}

func TestCheck(t *testing.T) {
	p, err := Parse([]string{"#ffffff", "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Check(3); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}
}

func TestRGBA_ClampsIndex(t *testing.T) {
	p := Default(2)
	if p.RGBA(-1) != p.RGBA(0) || p.RGBA(9) != p.RGBA(1) {
		t.Error("out-of-range states should clamp to the palette ends")
	}
	if (Palette{}).RGBA(0) != (color.RGBA{}) {
		t.Error("empty palette should yield transparent black")
	}
}
