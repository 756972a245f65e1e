// Package dither renders bitmaps onto a character-cell canvas by
// colour reduction and dithering.
//
// A Ditherer describes the source bitmap layout (depth, size, pitch,
// channel masks or palette), the tone curve (brightness, contrast,
// gamma), and the reduction modes: a colour mode choosing how many
// attribute colours are available and whether backgrounds
// participate, a character set supplying the glyph ramp, and a
// dithering algorithm (ordered Bayer matrices, per-pixel random
// thresholds, or Floyd-Steinberg error diffusion).
//
// Configurations are immutable once built, so a single Ditherer can
// serve concurrent renders:
//
//	d, err := dither.New(32, w, h, w*4,
//		dither.WithMasks(0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000),
//		dither.WithColorMode(dither.Full16),
//		dither.WithAlgorithm(dither.FloydSteinberg))
//	if err != nil {
//		...
//	}
//	err = d.Render(canvas, image.Rect(0, 0, 80, 25), pixels)
//
// Each render call runs to completion synchronously and leaves the
// canvas untouched when its up-front validation fails.
package dither
