package dither

import "fmt"

// Algorithm selects the dithering method.
type Algorithm int

const (
	None Algorithm = iota
	Ordered2
	Ordered4
	Ordered8
	Random
	FloydSteinberg
)

// ColorMode selects how many colours are available and whether the
// background participates.
type ColorMode int

const (
	Mono ColorMode = iota
	Gray
	Ansi8
	Ansi16
	FullGray
	Full8
	Full16
)

// Charset selects the glyphs used to approximate coverage.
type Charset int

const (
	Ascii Charset = iota
	Shades
	Blocks
)

// Antialias selects how source pixels are sampled onto the cell grid.
type Antialias int

const (
	AntialiasNone Antialias = iota
	Prefilter
)

// ModeInfo describes one selectable mode for discovery.
type ModeInfo struct {
	ID          string
	Description string
}

var algorithmTab = []struct {
	v    Algorithm
	info ModeInfo
}{
	{None, ModeInfo{"none", "no dithering"}},
	{Ordered2, ModeInfo{"ordered2", "2x2 ordered dithering"}},
	{Ordered4, ModeInfo{"ordered4", "4x4 ordered dithering"}},
	{Ordered8, ModeInfo{"ordered8", "8x8 ordered dithering"}},
	{Random, ModeInfo{"random", "random dithering"}},
	{FloydSteinberg, ModeInfo{"fstein", "Floyd-Steinberg dithering"}},
}

var colorModeTab = []struct {
	v    ColorMode
	info ModeInfo
}{
	{Mono, ModeInfo{"mono", "white on black"}},
	{Gray, ModeInfo{"gray", "grayscale on black"}},
	{Ansi8, ModeInfo{"8", "8 colours on black"}},
	{Ansi16, ModeInfo{"16", "16 colours on black"}},
	{FullGray, ModeInfo{"fullgray", "full grayscale"}},
	{Full8, ModeInfo{"full8", "8 colours"}},
	{Full16, ModeInfo{"full16", "16 colours"}},
}

var charsetTab = []struct {
	v    Charset
	info ModeInfo
}{
	{Ascii, ModeInfo{"ascii", "plain ASCII"}},
	{Shades, ModeInfo{"shades", "CP437 shades"}},
	{Blocks, ModeInfo{"blocks", "Unicode quarter-cell blocks"}},
}

var antialiasTab = []struct {
	v    Antialias
	info ModeInfo
}{
	{AntialiasNone, ModeInfo{"none", "no antialiasing"}},
	{Prefilter, ModeInfo{"prefilter", "prefilter antialiasing"}},
}

func (a Algorithm) String() string {
	if a < None || a > FloydSteinberg {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmTab[a].info.ID
}

func (c ColorMode) String() string {
	if c < Mono || c > Full16 {
		return fmt.Sprintf("ColorMode(%d)", int(c))
	}
	return colorModeTab[c].info.ID
}

func (c Charset) String() string {
	if c < Ascii || c > Blocks {
		return fmt.Sprintf("Charset(%d)", int(c))
	}
	return charsetTab[c].info.ID
}

func (a Antialias) String() string {
	if a < AntialiasNone || a > Prefilter {
		return fmt.Sprintf("Antialias(%d)", int(a))
	}
	return antialiasTab[a].info.ID
}

// ParseAlgorithm resolves a stable string id. "default" selects
// Floyd-Steinberg.
func ParseAlgorithm(id string) (Algorithm, error) {
	if id == "default" {
		return FloydSteinberg, nil
	}
	for _, e := range algorithmTab {
		if e.info.ID == id {
			return e.v, nil
		}
	}
	return 0, fmt.Errorf("%w: algorithm %q", ErrUnsupportedMode, id)
}

// ParseColorMode resolves a stable string id. "default" selects
// Full16.
func ParseColorMode(id string) (ColorMode, error) {
	if id == "default" {
		return Full16, nil
	}
	for _, e := range colorModeTab {
		if e.info.ID == id {
			return e.v, nil
		}
	}
	return 0, fmt.Errorf("%w: colour mode %q", ErrUnsupportedMode, id)
}

// ParseCharset resolves a stable string id. "default" selects Ascii.
func ParseCharset(id string) (Charset, error) {
	if id == "default" {
		return Ascii, nil
	}
	for _, e := range charsetTab {
		if e.info.ID == id {
			return e.v, nil
		}
	}
	return 0, fmt.Errorf("%w: charset %q", ErrUnsupportedMode, id)
}

// ParseAntialias resolves a stable string id. "default" selects
// Prefilter.
func ParseAntialias(id string) (Antialias, error) {
	if id == "default" {
		return Prefilter, nil
	}
	for _, e := range antialiasTab {
		if e.info.ID == id {
			return e.v, nil
		}
	}
	return 0, fmt.Errorf("%w: antialias %q", ErrUnsupportedMode, id)
}

// Algorithms lists the selectable dithering algorithms in declaration
// order.
func Algorithms() []ModeInfo {
	out := make([]ModeInfo, len(algorithmTab))
	for i, e := range algorithmTab {
		out[i] = e.info
	}
	return out
}

// ColorModes lists the selectable colour modes in declaration order.
func ColorModes() []ModeInfo {
	out := make([]ModeInfo, len(colorModeTab))
	for i, e := range colorModeTab {
		out[i] = e.info
	}
	return out
}

// Charsets lists the selectable character sets in declaration order.
func Charsets() []ModeInfo {
	out := make([]ModeInfo, len(charsetTab))
	for i, e := range charsetTab {
		out[i] = e.info
	}
	return out
}

// Antialiasing lists the selectable antialiasing methods in
// declaration order.
func Antialiasing() []ModeInfo {
	out := make([]ModeInfo, len(antialiasTab))
	for i, e := range antialiasTab {
		out[i] = e.info
	}
	return out
}
