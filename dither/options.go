package dither

import (
	"fmt"
	"math/bits"

	"github.com/32bitkid/textmode"
)

// rgba is one normalized sample, each channel in [0, 1].
type rgba struct {
	r, g, b, a float64
}

// Ditherer holds one validated, immutable render configuration. A
// Ditherer may be shared by concurrent Render calls; build a new one
// to change settings.
type Ditherer struct {
	bpp    int
	width  int
	height int
	pitch  int

	rmask, gmask, bmask, amask uint32

	palette [256]rgba

	brightness float64
	contrast   float64
	gamma      float64

	antialias Antialias
	colorMode ColorMode
	charset   Charset
	algorithm Algorithm

	seed   int64
	seeded bool

	// deferred palette arrays, validated in New
	palR, palG, palB, palA []uint32
}

// Option configures a Ditherer under construction.
type Option func(*Ditherer)

// WithMasks sets the channel bit masks for depths greater than 8 bits
// per pixel. A zero alpha mask makes the bitmap fully opaque.
func WithMasks(r, g, b, a uint32) Option {
	return func(d *Ditherer) {
		d.rmask, d.gmask, d.bmask, d.amask = r, g, b, a
	}
}

// WithPalette sets the palette for indexed depths (8 bits per pixel
// and below). Each array must hold 256 components in [0, 4095].
func WithPalette(r, g, b, a []uint32) Option {
	return func(d *Ditherer) {
		d.palR, d.palG, d.palB, d.palA = r, g, b, a
	}
}

// WithBrightness sets the brightness offset. 0 is neutral.
func WithBrightness(v float64) Option {
	return func(d *Ditherer) { d.brightness = v }
}

// WithContrast sets the contrast factor. 1 is neutral.
func WithContrast(v float64) Option {
	return func(d *Ditherer) { d.contrast = v }
}

// WithGamma sets the gamma correction. 1 is neutral; a negative value
// inverts colours.
func WithGamma(v float64) Option {
	return func(d *Ditherer) { d.gamma = v }
}

// WithAntialias selects the sampling method.
func WithAntialias(v Antialias) Option {
	return func(d *Ditherer) { d.antialias = v }
}

// WithColorMode selects the colour reduction mode.
func WithColorMode(v ColorMode) Option {
	return func(d *Ditherer) { d.colorMode = v }
}

// WithCharset selects the glyph set.
func WithCharset(v Charset) Option {
	return func(d *Ditherer) { d.charset = v }
}

// WithAlgorithm selects the dithering algorithm.
func WithAlgorithm(v Algorithm) Option {
	return func(d *Ditherer) { d.algorithm = v }
}

// WithSeed pins the random algorithm's source, making its output
// reproducible. Without it each render draws a fresh seed.
func WithSeed(seed int64) Option {
	return func(d *Ditherer) {
		d.seed = seed
		d.seeded = true
	}
}

var validDepths = map[int]bool{
	1: true, 2: true, 4: true, 8: true,
	16: true, 24: true, 32: true,
}

// New builds a render configuration from the source bitmap geometry
// and options. The returned Ditherer is immutable.
func New(bpp, w, h, pitch int, opts ...Option) (*Ditherer, error) {
	d := &Ditherer{
		bpp:       bpp,
		width:     w,
		height:    h,
		pitch:     pitch,
		contrast:  1,
		gamma:     1,
		antialias: Prefilter,
		colorMode: Full16,
		charset:   Ascii,
		algorithm: FloydSteinberg,
	}
	for _, opt := range opts {
		opt(d)
	}

	if !validDepths[bpp] {
		return nil, fmt.Errorf("%w: depth %d bits per pixel", ErrInvalidConfig, bpp)
	}
	if w <= 0 || h <= 0 || pitch <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d pitch %d", ErrInvalidConfig, w, h, pitch)
	}
	if pitch*8 < w*bpp {
		return nil, fmt.Errorf("%w: pitch %d too small for width %d at %d bpp", ErrInvalidConfig, pitch, w, bpp)
	}
	if err := d.validateMasks(); err != nil {
		return nil, err
	}
	if err := d.buildPalette(); err != nil {
		return nil, err
	}
	if err := d.validateModes(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Ditherer) validateMasks() error {
	if d.bpp <= 8 {
		return nil
	}
	masks := []struct {
		name string
		m    uint32
	}{
		{"red", d.rmask},
		{"green", d.gmask},
		{"blue", d.bmask},
		{"alpha", d.amask},
	}
	var used uint32
	for _, e := range masks {
		if e.m == 0 {
			if e.name == "alpha" {
				continue
			}
			return fmt.Errorf("%w: zero %s mask", ErrInvalidConfig, e.name)
		}
		run := e.m >> uint(bits.TrailingZeros32(e.m))
		if run&(run+1) != 0 {
			return fmt.Errorf("%w: %s mask %#08x is not contiguous", ErrInvalidConfig, e.name, e.m)
		}
		if used&e.m != 0 {
			return fmt.Errorf("%w: %s mask %#08x overlaps another channel", ErrInvalidConfig, e.name, e.m)
		}
		if d.bpp < 32 && e.m>>uint(d.bpp) != 0 {
			return fmt.Errorf("%w: %s mask %#08x exceeds %d bpp", ErrInvalidConfig, e.name, e.m, d.bpp)
		}
		used |= e.m
	}
	return nil
}

func (d *Ditherer) buildPalette() error {
	if d.palR == nil && d.palG == nil && d.palB == nil && d.palA == nil {
		// Default indexed palette: the 16 ANSI colours, replicated.
		for i := range d.palette {
			r, g, b, a := textmode.AnsiPalette[i%16].RGBA()
			d.palette[i] = rgba{
				r: float64(r) / 0xffff,
				g: float64(g) / 0xffff,
				b: float64(b) / 0xffff,
				a: float64(a) / 0xffff,
			}
		}
		return nil
	}
	chans := [][]uint32{d.palR, d.palG, d.palB, d.palA}
	for _, ch := range chans {
		if len(ch) != 256 {
			return fmt.Errorf("%w: palette arrays must hold 256 entries, got %d", ErrInvalidConfig, len(ch))
		}
		for _, v := range ch {
			if v > 0xfff {
				return fmt.Errorf("%w: palette component %d out of range [0, 4095]", ErrInvalidConfig, v)
			}
		}
	}
	for i := range d.palette {
		d.palette[i] = rgba{
			r: float64(d.palR[i]) / 0xfff,
			g: float64(d.palG[i]) / 0xfff,
			b: float64(d.palB[i]) / 0xfff,
			a: float64(d.palA[i]) / 0xfff,
		}
	}
	d.palR, d.palG, d.palB, d.palA = nil, nil, nil, nil
	return nil
}

func (d *Ditherer) validateModes() error {
	if d.algorithm < None || d.algorithm > FloydSteinberg {
		return fmt.Errorf("%w: algorithm %d", ErrUnsupportedMode, int(d.algorithm))
	}
	if d.colorMode < Mono || d.colorMode > Full16 {
		return fmt.Errorf("%w: colour mode %d", ErrUnsupportedMode, int(d.colorMode))
	}
	if d.charset < Ascii || d.charset > Blocks {
		return fmt.Errorf("%w: charset %d", ErrUnsupportedMode, int(d.charset))
	}
	if d.antialias < AntialiasNone || d.antialias > Prefilter {
		return fmt.Errorf("%w: antialias %d", ErrUnsupportedMode, int(d.antialias))
	}
	return nil
}
