package textmode

// Attr packs two 4-bit colour indices into one byte, the background
// in the high nibble.
type Attr uint8

func NewAttr(fg, bg uint8) Attr {
	return Attr(bg<<4 | fg&0xF)
}

func (a Attr) Fg() uint8 { return uint8(a) & 0xF }
func (a Attr) Bg() uint8 { return uint8(a) >> 4 }

// Cell is one character-sized unit of a canvas.
type Cell struct {
	Glyph rune
	Attr  Attr
}

// Blank is a space in white-on-black, the initial state of every
// canvas cell.
var Blank = Cell{Glyph: ' ', Attr: NewAttr(White, Black)}
