package dither

import "math"

// adjust applies brightness and contrast, then gamma, to one sample.
// Alpha is left untouched. A gamma of zero is treated as one; a
// negative gamma inverts the result.
func (d *Ditherer) adjust(s rgba) rgba {
	return rgba{
		r: d.adjustChannel(s.r),
		g: d.adjustChannel(s.g),
		b: d.adjustChannel(s.b),
		a: s.a,
	}
}

func (d *Ditherer) adjustChannel(c float64) float64 {
	c = clamp01((c+d.brightness-0.5)*d.contrast + 0.5)

	g := d.gamma
	if g == 0 {
		g = 1
	}
	invert := g < 0
	if invert {
		g = -g
	}
	if g != 1 {
		c = math.Pow(c, 1/g)
	}
	if invert {
		c = 1 - c
	}
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
