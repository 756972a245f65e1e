package dither

// Glyph ramps ordered by ink density.
var (
	asciiRamp = []rune(" .:-=+*#%@")
	shadeRamp = []rune("░▒▓")
)

// quadrantGlyphs maps a 4-bit quadrant pattern to a quarter-cell
// block. Bit order: 0=upper-left, 1=upper-right, 2=lower-left,
// 3=lower-right; a set bit is foreground.
var quadrantGlyphs = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Ink density of each shade glyph in cell coverage terms.
var shadeDensity = [3]float64{0.25, 0.5, 0.75}

func rampBucket(coverage float64, n int) int {
	i := int(coverage * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// glyphFor buckets a coverage fraction into the configured ramp.
// Blocks cells are assembled from quadrant patterns instead and never
// reach here.
func (d *Ditherer) glyphFor(coverage float64) rune {
	ramp := asciiRamp
	if d.charset == Shades {
		ramp = shadeRamp
	}
	return ramp[rampBucket(coverage, len(ramp))]
}

// snapCoverage rounds a coverage fraction to what the configured
// glyph set can actually display. Error diffusion measures its
// residual against this, not the continuous value, since the
// difference is exactly what the glyph fails to show.
func (d *Ditherer) snapCoverage(coverage float64) float64 {
	switch d.charset {
	case Blocks:
		// each subsample renders entirely as one colour
		if _, full := d.modeColors(); full || coverage >= 0.5 {
			return 1
		}
		return 0
	case Shades:
		return shadeDensity[rampBucket(coverage, len(shadeRamp))]
	default:
		n := len(asciiRamp)
		return float64(rampBucket(coverage, n)) / float64(n-1)
	}
}
