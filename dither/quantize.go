package dither

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/textmode"
)

// modeColor is one representable colour of a colour mode: its ANSI
// attribute index and its RGB value.
type modeColor struct {
	index uint8
	c     colorful.Color
}

// cellColor is the quantized result for one sample: a foreground and
// background attribute index plus the fraction of the cell the
// foreground glyph should cover.
type cellColor struct {
	fg, bg   uint8
	coverage float64
}

func ansiColor(index uint8) colorful.Color {
	c, _ := colorful.MakeColor(textmode.AnsiPalette[index])
	return c
}

func modePalette(indices ...uint8) []modeColor {
	out := make([]modeColor, len(indices))
	for i, idx := range indices {
		out[i] = modeColor{index: idx, c: ansiColor(idx)}
	}
	return out
}

var (
	ansi8Pal  = modePalette(0, 1, 2, 3, 4, 5, 6, 7)
	ansi16Pal = modePalette(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	grayPal   = modePalette(textmode.Black, textmode.BrightBlack, textmode.White, textmode.BrightWhite)
	monoPal   = modePalette(textmode.White)
)

// modeColors returns the representable colours for the configured
// colour mode, and whether the background is selectable or pinned to
// black.
func (d *Ditherer) modeColors() (pal []modeColor, fullBackground bool) {
	switch d.colorMode {
	case Mono:
		return monoPal, false
	case Gray:
		return grayPal, false
	case Ansi8:
		return ansi8Pal, false
	case Ansi16:
		return ansi16Pal, false
	case FullGray:
		return grayPal, true
	case Full8:
		return ansi8Pal, true
	default:
		return ansi16Pal, true
	}
}

// step is the channel quantum of the configured colour mode, used to
// scale ordered and random dither offsets.
func (d *Ditherer) step() float64 {
	switch d.colorMode {
	case Ansi8, Full8:
		return 2.0 / 3.0
	default:
		return 1.0 / 3.0
	}
}

// nearest returns the two best palette entries for a colour by
// Euclidean RGB distance. Ties go to the lowest palette position.
func nearest(c colorful.Color, pal []modeColor) (best, second int, d1, d2 float64) {
	best, second = 0, 0
	d1, d2 = -1, -1
	for i, p := range pal {
		dist := c.DistanceRgb(p.c)
		switch {
		case d1 < 0 || dist < d1:
			second, d2 = best, d1
			best, d1 = i, dist
		case d2 < 0 || dist < d2:
			second, d2 = i, dist
		}
	}
	if len(pal) == 1 {
		second, d2 = best, d1
	}
	return best, second, d1, d2
}

// luminance is the Rec.601 luma of a sample.
func luminance(s rgba) float64 {
	return 0.299*s.r + 0.587*s.g + 0.114*s.b
}

// quantize reduces one tone-adjusted sample, already shifted by any
// dither offset, to a cell colour.
func (d *Ditherer) quantize(s rgba) cellColor {
	if d.colorMode == Mono {
		return cellColor{
			fg:       textmode.White,
			bg:       textmode.Black,
			coverage: clamp01(luminance(s)),
		}
	}

	pal, full := d.modeColors()
	c := colorful.Color{R: clamp01(s.r), G: clamp01(s.g), B: clamp01(s.b)}
	best, second, d1, d2 := nearest(c, pal)

	if !full {
		return cellColor{
			fg:       pal[best].index,
			bg:       textmode.Black,
			coverage: clamp01(luminance(s)),
		}
	}

	// Foreground is the nearest colour, background the runner-up;
	// the glyph covers the cell in proportion to how much nearer the
	// foreground is.
	cover := 1.0
	if d1+d2 > 0 {
		cover = d2 / (d1 + d2)
	}
	return cellColor{
		fg:       pal[best].index,
		bg:       pal[second].index,
		coverage: cover,
	}
}

// rendered is the RGB colour a quantized cell approximates: the
// foreground and background blended by coverage. Used to compute the
// residual for error diffusion.
func rendered(q cellColor) rgba {
	fg := ansiColor(q.fg)
	bg := ansiColor(q.bg)
	t := q.coverage
	return rgba{
		r: fg.R*t + bg.R*(1-t),
		g: fg.G*t + bg.G*(1-t),
		b: fg.B*t + bg.B*(1-t),
		a: 1,
	}
}

// NearestPaletteIndex returns the index of the configured indexed
// palette entry nearest to the given normalized colour, by Euclidean
// RGB distance with ties broken towards the lowest index.
func (d *Ditherer) NearestPaletteIndex(r, g, b float64) int {
	c := colorful.Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
	best, bestDist := 0, -1.0
	for i, p := range d.palette {
		dist := c.DistanceRgb(colorful.Color{R: p.r, G: p.g, B: p.b})
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
