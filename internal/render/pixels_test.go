package render

import (
	"image/color"
	"testing"
)

func TestFrameFill(t *testing.T) {
	f := NewFrame(2, 1)
	p := Palette{Live: color.RGBA{R: 1, G: 2, B: 3, A: 255}, Dead: color.RGBA{A: 255}}
	if !f.Fill([]uint8{1, 0}, p) {
		t.Fatal("Fill should accept matching cell counts")
	}
	want := []byte{1, 2, 3, 255, 0, 0, 0, 255}
	for i, b := range want {
		if f.Pix[i] != b {
			t.Fatalf("pixel byte %d = %d, want %d", i, f.Pix[i], b)
		}
	}
}

func TestFrameFillRejectsWrongSize(t *testing.T) {
	f := NewFrame(2, 2)
	f.Pix[0] = 9
	if f.Fill([]uint8{1}, DefaultPalette()) {
		t.Fatal("Fill should reject a short cell slice")
	}
	if f.Pix[0] != 9 {
		t.Fatal("rejected Fill must leave pixels untouched")
	}
}
