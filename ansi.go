package textmode

import (
	"image/color"
)

// rgb444 is a 12-bit RGB word, four bits per channel. Each nibble is
// replicated across the full channel range, so 0xA becomes 0xAAAA.
type rgb444 uint16

func (c rgb444) RGBA() (r, g, b, a uint32) {
	rn := uint32(c >> 8 & 0xf)
	gn := uint32(c >> 4 & 0xf)
	bn := uint32(c & 0xf)
	r = rn<<12 | rn<<8 | rn<<4 | rn
	g = gn<<12 | gn<<8 | gn<<4 | gn
	b = bn<<12 | bn<<8 | bn<<4 | bn
	a = 0xFFFF
	return
}

// ANSI colour indices, in terminal order.
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// AnsiPalette is the fixed 16-colour attribute palette.
var AnsiPalette = color.Palette{
	Black:         rgb444(0x000),
	Red:           rgb444(0xA00),
	Green:         rgb444(0x0A0),
	Yellow:        rgb444(0xA50),
	Blue:          rgb444(0x00A),
	Magenta:       rgb444(0xA0A),
	Cyan:          rgb444(0x0AA),
	White:         rgb444(0xAAA),
	BrightBlack:   rgb444(0x555),
	BrightRed:     rgb444(0xF55),
	BrightGreen:   rgb444(0x5F5),
	BrightYellow:  rgb444(0xFF5),
	BrightBlue:    rgb444(0x55F),
	BrightMagenta: rgb444(0xF5F),
	BrightCyan:    rgb444(0x5FF),
	BrightWhite:   rgb444(0xFFF),
}
