// Package textmode implements a character-cell canvas and the colour
// attribute model shared by text-mode renderers.
//
// A canvas is a rectangular grid of cells. Each cell holds a single
// glyph and an attribute byte packing a foreground and a background
// colour index into the fixed 16-colour ANSI palette. The companion
// dither package renders arbitrary bitmaps onto a canvas by colour
// reduction and spatial or error-diffusion dithering.
//
// Colours follow the classic VGA text-mode model: sixteen RGB-444
// entries, the first eight at 2/3 intensity and the second eight
// offset towards white, with dark yellow rendered as brown.
package textmode
