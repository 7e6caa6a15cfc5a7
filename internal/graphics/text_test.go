package graphics

import (
	"image/color"
	"testing"
)

func TestRasterizeTextSize(t *testing.T) {
	img := RasterizeText([]string{"FPS: 60", "mode: orbit"}, color.White)
	if img == nil {
		t.Fatalf("no image for non-empty text")
	}
	// 7px advance per glyph, 13px lines
	wantW := 7*len("mode: orbit") + 2*TextPadding
	wantH := 13*2 + 2*TextPadding
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("size: got %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestRasterizeTextDrawsGlyphs(t *testing.T) {
	img := RasterizeText([]string{"X"}, color.White)
	bright := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0xFF {
			bright++
		}
	}
	if bright == 0 {
		t.Fatalf("no glyph pixels drawn")
	}
}

func TestRasterizeTextEmpty(t *testing.T) {
	if RasterizeText(nil, color.White) != nil {
		t.Fatalf("expected nil for no lines")
	}
	if RasterizeText([]string{""}, color.White) != nil {
		t.Fatalf("expected nil for blank line")
	}
}
