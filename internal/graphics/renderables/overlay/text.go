package overlay

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text layout in pixels
const (
	padding     = 6
	lineSpacing = 2
)

// Colors are stored as straight alpha, which is what the overlay blend func expects
var (
	textColor       = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
)

// RasterizeText draws lines of text onto a padded, translucent panel sized to fit.
// It returns nil when there is nothing to draw.
func RasterizeText(lines []string) *image.RGBA {
	if len(lines) == 0 {
		return nil
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil() + lineSpacing

	d := &font.Drawer{Face: face}
	width := 0
	for _, l := range lines {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	if width == 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, lineHeight*len(lines)+2*padding))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	d.Dst = img
	d.Src = image.NewUniform(textColor)
	for i, l := range lines {
		baseline := padding + i*lineHeight + metrics.Ascent.Ceil()
		d.Dot = fixed.P(padding, baseline)
		d.DrawString(l)
	}
	return img
}
