package textmode

import (
	"image"
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// Ink coverage of the glyphs emitted by the dither package, used to
// approximate a cell as a single colour. Unknown glyphs fall back to
// an even mix.
var glyphCoverage = map[rune]float64{
	' ': 0.00,
	'.': 0.10, ':': 0.20, '-': 0.30, '=': 0.40, '+': 0.50,
	'*': 0.60, '#': 0.70, '%': 0.80, '@': 0.95,
	'░': 0.25, '▒': 0.50, '▓': 0.75,
	'▘': 0.25, '▝': 0.25, '▖': 0.25, '▗': 0.25,
	'▀': 0.50, '▄': 0.50, '▌': 0.50, '▐': 0.50, '▞': 0.50, '▚': 0.50,
	'▛': 0.75, '▜': 0.75, '▙': 0.75, '▟': 0.75,
	'█': 1.00,
}

func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

// Image renders the canvas one pixel per cell, blending each cell's
// background towards its foreground by the glyph's ink coverage.
// It is intended for previews and tests, not faithful glyph
// rasterization.
func Image(c *Canvas) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			cell, _ := c.CellAt(x, y)
			t, ok := glyphCoverage[cell.Glyph]
			if !ok {
				t = 0.5
			}
			fg := AnsiPalette[cell.Attr.Fg()]
			bg := AnsiPalette[cell.Attr.Bg()]
			dst.Set(x, y, rgbMix(bg, fg, t))
		}
	}
	return dst
}
