package graphics

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextPadding is the empty border around rasterized text, in pixels.
const TextPadding = 4

// RasterizeText draws lines top to bottom in the fixed 7x13 face on a translucent
// black panel sized to fit. Returns nil when there is nothing to draw.
func RasterizeText(lines []string, fg color.Color) *image.RGBA {
	face := basicfont.Face7x13
	if len(lines) == 0 {
		return nil
	}

	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}
	if width == 0 {
		return nil
	}

	lineHeight := face.Metrics().Height.Ceil()
	img := image.NewRGBA(image.Rect(0, 0, width+2*TextPadding, lineHeight*len(lines)+2*TextPadding))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(TextPadding, TextPadding+ascent+i*lineHeight)
		d.DrawString(l)
	}
	return img
}
