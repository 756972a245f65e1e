package dither

import (
	"errors"
	"image"
	"testing"

	"github.com/32bitkid/textmode"
)

// argb8888 packs pixels as little-endian ARGB words.
func argb8888(pixels ...[4]byte) []byte {
	out := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		r, g, b, a := p[0], p[1], p[2], p[3]
		out = append(out, b, g, r, a)
	}
	return out
}

var argbMasks = WithMasks(0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000)

func mustCanvas(t *testing.T, w, h int) *textmode.Canvas {
	t.Helper()
	c, err := textmode.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRenderAnsi8Primaries(t *testing.T) {
	d := mustNew(t, 32, 2, 2, 8,
		argbMasks,
		WithColorMode(Ansi8),
		WithAlgorithm(None),
		WithAntialias(AntialiasNone),
	)
	pix := argb8888(
		[4]byte{255, 0, 0, 255}, [4]byte{0, 255, 0, 255},
		[4]byte{0, 0, 255, 255}, [4]byte{255, 255, 255, 255},
	)

	c := mustCanvas(t, 2, 2)
	if err := d.Render(c, image.Rect(0, 0, 2, 2), pix); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		x, y  int
		fg    uint8
		glyph rune
	}{
		{0, 0, textmode.Red, ':'},
		{1, 0, textmode.Green, '+'},
		{0, 1, textmode.Blue, '.'},
		{1, 1, textmode.White, '@'},
	}
	for _, tc := range cases {
		cell, _ := c.CellAt(tc.x, tc.y)
		if cell.Attr.Fg() != tc.fg {
			t.Fatalf("(%d,%d): fg expected(%d) != actual(%d)", tc.x, tc.y, tc.fg, cell.Attr.Fg())
		}
		if cell.Attr.Bg() != textmode.Black {
			t.Fatalf("(%d,%d): bg expected black, got %d", tc.x, tc.y, cell.Attr.Bg())
		}
		if cell.Glyph != tc.glyph {
			t.Fatalf("(%d,%d): glyph expected(%q) != actual(%q)", tc.x, tc.y, tc.glyph, cell.Glyph)
		}
	}

	// white is the brightest cell of the four
	white, _ := c.CellAt(1, 1)
	if white.Glyph != '@' {
		t.Fatalf("white should map to the densest ramp glyph, got %q", white.Glyph)
	}
}

func TestRenderStretchesOnePixelEverywhere(t *testing.T) {
	d := mustNew(t, 32, 1, 1, 4,
		argbMasks,
		WithAlgorithm(None),
	)
	pix := argb8888([4]byte{200, 30, 30, 255})

	c := mustCanvas(t, 10, 10)
	if err := d.Render(c, image.Rect(0, 0, 10, 10), pix); err != nil {
		t.Fatal(err)
	}

	first, _ := c.CellAt(0, 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell, _ := c.CellAt(x, y)
			if cell != first {
				t.Fatalf("(%d,%d): expected uniform %+v, got %+v", x, y, first, cell)
			}
		}
	}
	if first == textmode.Blank {
		t.Fatal("expected the source colour to land, canvas still blank")
	}
}

func gradientARGB(w, h int) []byte {
	var px [][4]byte
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte((x*255/(w-1) + y*255/(h-1)) / 2)
			px = append(px, [4]byte{v, byte(255 - int(v)), v / 2, 255})
		}
	}
	return argb8888(px...)
}

func renderTwice(t *testing.T, opts ...Option) (*textmode.Canvas, *textmode.Canvas) {
	t.Helper()
	base := []Option{argbMasks}
	d := mustNew(t, 32, 8, 8, 32, append(base, opts...)...)
	pix := gradientARGB(8, 8)

	c1 := mustCanvas(t, 8, 8)
	c2 := mustCanvas(t, 8, 8)
	if err := d.Render(c1, image.Rect(0, 0, 8, 8), pix); err != nil {
		t.Fatal(err)
	}
	if err := d.Render(c2, image.Rect(0, 0, 8, 8), pix); err != nil {
		t.Fatal(err)
	}
	return c1, c2
}

func canvasesEqual(a, b *textmode.Canvas) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			ca, _ := a.CellAt(x, y)
			cb, _ := b.CellAt(x, y)
			if ca != cb {
				return false
			}
		}
	}
	return true
}

func TestRenderDeterministic(t *testing.T) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"none", []Option{WithAlgorithm(None)}},
		{"ordered2", []Option{WithAlgorithm(Ordered2)}},
		{"ordered4", []Option{WithAlgorithm(Ordered4)}},
		{"ordered8", []Option{WithAlgorithm(Ordered8)}},
		{"fstein", []Option{WithAlgorithm(FloydSteinberg)}},
		{"seeded random", []Option{WithAlgorithm(Random), WithSeed(42)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c1, c2 := renderTwice(t, tc.opts...)
			if !canvasesEqual(c1, c2) {
				t.Fatal("identical config and input must produce identical output")
			}
		})
	}
}

func TestRenderSkipsCellsOutsideCanvas(t *testing.T) {
	d := mustNew(t, 32, 2, 2, 8, argbMasks, WithAlgorithm(None))
	pix := argb8888(
		[4]byte{255, 255, 255, 255}, [4]byte{255, 255, 255, 255},
		[4]byte{255, 255, 255, 255}, [4]byte{255, 255, 255, 255},
	)

	c := mustCanvas(t, 2, 2)
	// destination extends past the canvas on every side
	if err := d.Render(c, image.Rect(-1, -1, 4, 4), pix); err != nil {
		t.Fatal(err)
	}
	if cell, _ := c.CellAt(0, 0); cell == textmode.Blank {
		t.Fatal("in-bounds cells should be written")
	}
}

func TestRenderEmptyRect(t *testing.T) {
	d := mustNew(t, 32, 2, 2, 8, argbMasks)
	pix := make([]byte, 16)
	c := mustCanvas(t, 2, 2)
	if err := d.Render(c, image.Rect(3, 3, 3, 3), pix); err != nil {
		t.Fatal(err)
	}
}

func TestRenderShortBufferLeavesCanvasUntouched(t *testing.T) {
	d := mustNew(t, 32, 4, 4, 16, argbMasks)
	c := mustCanvas(t, 4, 4)
	sentinel := textmode.Cell{Glyph: 'S', Attr: textmode.NewAttr(textmode.Cyan, textmode.Blue)}
	c.Fill(image.Rect(0, 0, 4, 4), sentinel)

	err := d.Render(c, image.Rect(0, 0, 4, 4), make([]byte, 10))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if cell, _ := c.CellAt(x, y); cell != sentinel {
				t.Fatalf("(%d,%d): canvas modified after failed validation", x, y)
			}
		}
	}
}

func TestRenderBlocksQuadrants(t *testing.T) {
	// White UL and LR quadrants, black UR and LL, one destination cell.
	d := mustNew(t, 32, 2, 2, 8,
		argbMasks,
		WithCharset(Blocks),
		WithAlgorithm(None),
		WithAntialias(AntialiasNone),
	)
	pix := argb8888(
		[4]byte{255, 255, 255, 255}, [4]byte{0, 0, 0, 255},
		[4]byte{0, 0, 0, 255}, [4]byte{255, 255, 255, 255},
	)

	c := mustCanvas(t, 1, 1)
	if err := d.Render(c, image.Rect(0, 0, 1, 1), pix); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(0, 0)

	// Black and bright white tie 2-2; the lower index wins the
	// foreground, so the glyph is the anti-diagonal pair in
	// black-on-white.
	if cell.Glyph != '▞' {
		t.Fatalf("glyph expected(%q) != actual(%q)", '▞', cell.Glyph)
	}
	if cell.Attr.Fg() != textmode.Black || cell.Attr.Bg() != textmode.BrightWhite {
		t.Fatalf("attr expected black on bright white, got fg=%d bg=%d", cell.Attr.Fg(), cell.Attr.Bg())
	}
}

func TestRenderBlocksUniform(t *testing.T) {
	d := mustNew(t, 32, 2, 2, 8,
		argbMasks,
		WithCharset(Blocks),
		WithAlgorithm(None),
		WithAntialias(AntialiasNone),
	)
	pix := argb8888(
		[4]byte{255, 0, 0, 255}, [4]byte{255, 0, 0, 255},
		[4]byte{255, 0, 0, 255}, [4]byte{255, 0, 0, 255},
	)

	c := mustCanvas(t, 1, 1)
	if err := d.Render(c, image.Rect(0, 0, 1, 1), pix); err != nil {
		t.Fatal(err)
	}
	cell, _ := c.CellAt(0, 0)
	if cell.Glyph != '█' {
		t.Fatalf("uniform cell should be a full block, got %q", cell.Glyph)
	}
	if cell.Attr.Fg() != textmode.Red {
		t.Fatalf("fg expected red, got %d", cell.Attr.Fg())
	}
}

func TestRenderFloydSteinbergConservesError(t *testing.T) {
	// The diffusion weights must account for the whole residual.
	cur := make([]rgba, 6)
	next := make([]rgba, 6)
	e := rgba{r: 0.32, g: -0.48, b: 0.16}
	diffuse(cur, next, 2, e)

	var sum rgba
	for i := range cur {
		sum.r += cur[i].r + next[i].r
		sum.g += cur[i].g + next[i].g
		sum.b += cur[i].b + next[i].b
	}
	if !near(sum.r, e.r) || !near(sum.g, e.g) || !near(sum.b, e.b) {
		t.Fatalf("diffused sum %+v != injected %+v", sum, e)
	}
}

func TestRenderFloydSteinbergSpreadsGray(t *testing.T) {
	// A flat mid gray between two FullGray levels must alternate
	// between them rather than collapse to one.
	d := mustNew(t, 32, 8, 8, 32,
		argbMasks,
		WithColorMode(FullGray),
		WithCharset(Shades),
		WithAlgorithm(FloydSteinberg),
	)
	var px [][4]byte
	for i := 0; i < 64; i++ {
		px = append(px, [4]byte{140, 140, 140, 255})
	}

	c := mustCanvas(t, 8, 8)
	if err := d.Render(c, image.Rect(0, 0, 8, 8), argb8888(px...)); err != nil {
		t.Fatal(err)
	}

	seen := map[textmode.Cell]bool{}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			cell, _ := c.CellAt(x, y)
			seen[cell] = true
		}
	}
	if len(seen) < 2 {
		t.Fatalf("error diffusion should vary the output, got %d distinct cells", len(seen))
	}
}

func TestRenderUnseededRandomStillRenders(t *testing.T) {
	d := mustNew(t, 32, 4, 4, 16, argbMasks, WithAlgorithm(Random))
	pix := gradientARGB(4, 4)
	c := mustCanvas(t, 4, 4)
	if err := d.Render(c, image.Rect(0, 0, 4, 4), pix); err != nil {
		t.Fatal(err)
	}
}
