package dither

import (
	"fmt"
	"image"
	"math/rand"

	"golang.org/x/image/draw"

	"github.com/32bitkid/textmode"
)

// CellWriter is the canvas surface the renderer writes to. Writes
// outside the canvas must be skipped by the implementation;
// *textmode.Canvas satisfies this.
type CellWriter interface {
	Width() int
	Height() int
	SetCell(x, y int, cell textmode.Cell) bool
}

// Render dithers the source bitmap onto the destination cell
// rectangle. The whole bitmap is stretched onto rect; cells falling
// outside the canvas are skipped. The source buffer is only read for
// the duration of the call.
//
// The configuration is immutable, so a Ditherer may be shared by
// concurrent Render calls.
func (d *Ditherer) Render(dst CellWriter, rect image.Rectangle, pixels []byte) error {
	if need := d.pitch * d.height; len(pixels) < need {
		return fmt.Errorf("%w: source buffer holds %d bytes, need %d", ErrInvalidConfig, len(pixels), need)
	}
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return nil
	}

	sub := 1
	if d.charset == Blocks {
		sub = 2
	}
	rw, rh := rect.Dx()*sub, rect.Dy()*sub

	samples := d.sampleRaster(pixels, rw, rh)
	quant := d.quantizeRaster(samples, rw, rh)

	for cy := 0; cy < rect.Dy(); cy++ {
		for cx := 0; cx < rect.Dx(); cx++ {
			var cell textmode.Cell
			if sub == 2 {
				cell = d.blockCell(quant, rw, cx, cy)
			} else {
				q := quant[cy*rw+cx]
				cell = textmode.Cell{
					Glyph: d.glyphFor(q.coverage),
					Attr:  textmode.NewAttr(q.fg, q.bg),
				}
			}
			dst.SetCell(rect.Min.X+cx, rect.Min.Y+cy, cell)
		}
	}
	return nil
}

// sampleRaster scales the source bitmap onto the sample grid and
// tone-adjusts every sample. Prefilter antialiasing uses a kernel
// scaler, which averages source pixels when the grid is coarser than
// the bitmap; "none" picks nearest neighbours.
func (d *Ditherer) sampleRaster(pixels []byte, rw, rh int) []rgba {
	src := &bitmap{d: d, pix: pixels}
	grid := image.NewRGBA64(image.Rect(0, 0, rw, rh))

	var scaler draw.Scaler = draw.BiLinear
	if d.antialias == AntialiasNone {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(grid, grid.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := make([]rgba, rw*rh)
	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			px := grid.RGBA64At(x, y)
			var s rgba
			s.a = float64(px.A) / 0xffff
			if px.A > 0 {
				// un-premultiply
				s.r = float64(px.R) / float64(px.A)
				s.g = float64(px.G) / float64(px.A)
				s.b = float64(px.B) / float64(px.A)
			}
			out[y*rw+x] = d.adjust(s)
		}
	}
	return out
}

func (d *Ditherer) quantizeRaster(samples []rgba, rw, rh int) []cellColor {
	out := make([]cellColor, len(samples))
	switch d.algorithm {
	case Ordered2, Ordered4, Ordered8:
		m := bayer2
		switch d.algorithm {
		case Ordered4:
			m = bayer4
		case Ordered8:
			m = bayer8
		}
		n := len(m)
		step := d.step()
		for y := 0; y < rh; y++ {
			for x := 0; x < rw; x++ {
				off := (m[y%n][x%n] - 0.5) * step
				out[y*rw+x] = d.quantize(shift(samples[y*rw+x], off))
			}
		}
	case Random:
		seed := d.seed
		if !d.seeded {
			seed = rand.Int63()
		}
		rng := rand.New(rand.NewSource(seed))
		step := d.step()
		for i, s := range samples {
			off := (rng.Float64() - 0.5) * step
			out[i] = d.quantize(shift(s, off))
		}
	case FloydSteinberg:
		d.floydSteinberg(samples, out, rw, rh)
	default:
		for i, s := range samples {
			out[i] = d.quantize(s)
		}
	}
	return out
}

func shift(s rgba, off float64) rgba {
	return rgba{r: s.r + off, g: s.g + off, b: s.b + off, a: s.a}
}

// floydSteinberg quantizes in raster order, carrying the residual of
// each pixel into its right and lower neighbours. The error rows hold
// one spare column on each side so edge diffusion needs no bounds
// checks. Rows have a strict sequential dependency.
func (d *Ditherer) floydSteinberg(samples []rgba, out []cellColor, rw, rh int) {
	cur := make([]rgba, rw+2)
	next := make([]rgba, rw+2)
	for y := 0; y < rh; y++ {
		for x := 0; x < rw; x++ {
			s := samples[y*rw+x]
			e := cur[x+1]
			s = rgba{
				r: clamp01(s.r + e.r),
				g: clamp01(s.g + e.g),
				b: clamp01(s.b + e.b),
				a: s.a,
			}
			q := d.quantize(s)
			out[y*rw+x] = q

			got := rendered(cellColor{
				fg:       q.fg,
				bg:       q.bg,
				coverage: d.snapCoverage(q.coverage),
			})
			diffuse(cur, next, x, rgba{
				r: s.r - got.r,
				g: s.g - got.g,
				b: s.b - got.b,
			})
		}
		cur, next = next, cur
		for i := range next {
			next[i] = rgba{}
		}
	}
}

// diffuse spreads a residual with the classic weights: 7/16 right,
// 3/16 lower-left, 5/16 lower, 1/16 lower-right. x is the pixel
// column; the rows are offset by one column.
func diffuse(cur, next []rgba, x int, e rgba) {
	addScaled(&cur[x+2], e, 7.0/16)
	addScaled(&next[x], e, 3.0/16)
	addScaled(&next[x+1], e, 5.0/16)
	addScaled(&next[x+2], e, 1.0/16)
}

func addScaled(dst *rgba, e rgba, w float64) {
	dst.r += e.r * w
	dst.g += e.g * w
	dst.b += e.b * w
}

// blockCell assembles one cell from its four quantized quadrant
// subsamples. The dominant quadrant colour becomes the foreground and
// selects the quarter-cell glyph.
func (d *Ditherer) blockCell(quant []cellColor, rw, cx, cy int) textmode.Cell {
	_, full := d.modeColors()

	var q [4]uint8
	for i := range q {
		sx, sy := cx*2+i%2, cy*2+i/2
		qq := quant[sy*rw+sx]
		ci := qq.fg
		if !full && qq.coverage < 0.5 {
			ci = textmode.Black
		}
		q[i] = ci
	}

	var fg, bg uint8
	if full {
		fg = mostFrequent(q[:], 16)
		bg = mostFrequent(q[:], fg)
	} else {
		fg = mostFrequent(q[:], textmode.Black)
		bg = textmode.Black
		if fg == textmode.Black {
			return textmode.Cell{Glyph: ' ', Attr: textmode.NewAttr(textmode.White, textmode.Black)}
		}
	}

	pattern := 0
	for i, ci := range q {
		if ci == fg {
			pattern |= 1 << i
		}
	}
	return textmode.Cell{
		Glyph: quadrantGlyphs[pattern],
		Attr:  textmode.NewAttr(fg, bg),
	}
}

// mostFrequent returns the most common colour index, ignoring the
// excluded one (pass a value above 15 to exclude nothing). Ties go to
// the lowest index; all-excluded input yields black.
func mostFrequent(idx []uint8, exclude uint8) uint8 {
	var counts [16]int
	for _, v := range idx {
		if v != exclude {
			counts[v]++
		}
	}
	best, bestN := textmode.Black, 0
	for v := 0; v < 16; v++ {
		if counts[v] > bestN {
			best, bestN = uint8(v), counts[v]
		}
	}
	return best
}
