package dither

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/32bitkid/bitreader"
)

// Sample unpacks the pixel at (px, py) from a raw source buffer into
// normalized RGBA, each channel in [0, 1]. Indexed depths go through
// the palette; wider depths extract channels by mask from a
// little-endian pixel word. Coordinates outside the declared bitmap
// bounds fail with ErrOutOfBounds.
func (d *Ditherer) Sample(pixels []byte, px, py int) (r, g, b, a float64, err error) {
	if px < 0 || py < 0 || px >= d.width || py >= d.height {
		return 0, 0, 0, 0, fmt.Errorf("%w: pixel (%d, %d) in %dx%d bitmap", ErrOutOfBounds, px, py, d.width, d.height)
	}
	if need := d.pitch * d.height; len(pixels) < need {
		return 0, 0, 0, 0, fmt.Errorf("%w: source buffer holds %d bytes, need %d", ErrInvalidConfig, len(pixels), need)
	}
	s, err := d.sample(pixels, px, py)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return s.r, s.g, s.b, s.a, nil
}

func (d *Ditherer) sample(pixels []byte, px, py int) (rgba, error) {
	switch {
	case d.bpp < 8:
		return d.samplePacked(pixels, px, py)
	case d.bpp == 8:
		idx := pixels[py*d.pitch+px]
		return d.palette[idx], nil
	default:
		return d.sampleMasked(pixels, px, py)
	}
}

// samplePacked reads an MSB-first palette index from a row of packed
// sub-byte pixels.
func (d *Ditherer) samplePacked(pixels []byte, px, py int) (rgba, error) {
	row := pixels[py*d.pitch : (py+1)*d.pitch]
	br := bitreader.NewReader(bytes.NewReader(row))
	for skip := px * d.bpp; skip > 0; {
		n := skip
		if n > 32 {
			n = 32
		}
		if _, err := br.Read32(uint(n)); err != nil {
			return rgba{}, fmt.Errorf("dither: short row at y=%d: %w", py, err)
		}
		skip -= n
	}
	idx, err := br.Read8(uint(d.bpp))
	if err != nil {
		return rgba{}, fmt.Errorf("dither: short row at y=%d: %w", py, err)
	}
	return d.palette[idx], nil
}

func (d *Ditherer) sampleMasked(pixels []byte, px, py int) (rgba, error) {
	n := d.bpp / 8
	off := py*d.pitch + px*n
	var word uint32
	for i := 0; i < n; i++ {
		word |= uint32(pixels[off+i]) << uint(8*i)
	}
	s := rgba{
		r: extract(word, d.rmask),
		g: extract(word, d.gmask),
		b: extract(word, d.bmask),
		a: 1,
	}
	if d.amask != 0 {
		s.a = extract(word, d.amask)
	}
	return s, nil
}

// extract pulls one channel out of a pixel word and normalizes it by
// the mask's bit width.
func extract(word, mask uint32) float64 {
	if mask == 0 {
		return 0
	}
	tz := uint(bits.TrailingZeros32(mask))
	v := (word & mask) >> tz
	max := mask >> tz
	return float64(v) / float64(max)
}

// bitmap adapts a raw source buffer as an image.Image so the sampling
// stage can hand it to a scaler. At is only called in-bounds by the
// renderer; stray coordinates read as transparent black.
type bitmap struct {
	d   *Ditherer
	pix []byte
}

func (b *bitmap) ColorModel() color.Model { return color.RGBA64Model }

func (b *bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.d.width, b.d.height)
}

func (b *bitmap) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.d.width || y >= b.d.height {
		return color.RGBA64{}
	}
	s, err := b.d.sample(b.pix, x, y)
	if err != nil {
		return color.RGBA64{}
	}
	// color.RGBA64 is alpha-premultiplied.
	return color.RGBA64{
		R: uint16(s.r * s.a * 0xffff),
		G: uint16(s.g * s.a * 0xffff),
		B: uint16(s.b * s.a * 0xffff),
		A: uint16(s.a * 0xffff),
	}
}
