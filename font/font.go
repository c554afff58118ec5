// Package font implements the packed font format used for text rendering on
// page-organized monochrome displays.
//
// A packed font stores one bitmap per glyph, pre-converted to the vertical
// page layout of SSD1xxx OLED controllers: each byte covers 8 vertically
// stacked pixels of one column, so drawing a glyph is a series of byte ORs
// into a [pixel.PageImage] instead of per-pixel addressing.
package font

import (
	"github.com/glowkit/oled/pixel"
)

// Glyph holds the pre-paged bitmap and metrics of a single character.
type Glyph struct {
	// Width is the glyph width in pixels, which doubles as its advance.
	Width int

	// pages holds one slice of Width bytes per 8-row page the glyph spans,
	// top page first, least significant bit on top within each byte.
	pages [][]byte
}

// Font is an immutable packed font. Use Decode, Load or FromFace to obtain one.
type Font struct {
	// Name identifies the font in a Store.
	Name string

	// Height is the pixel height shared by all glyphs.
	Height int

	// Default is the substitute character for runes outside the glyph table.
	Default rune

	glyphs map[rune]Glyph
}

// Pages returns the number of 8-row pages a glyph spans vertically.
func (f *Font) Pages() int {
	return (f.Height + 7) / 8
}

// Glyph returns the glyph for r and whether r is in the glyph table.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Advance returns the horizontal space text occupies when drawn, in pixels.
// Runes outside the glyph table count as the default character's width.
func (f *Font) Advance(text string) (w int) {
	fallback := f.glyphs[f.Default]
	for _, r := range text {
		g, ok := f.glyphs[r]
		if !ok {
			g = fallback
		}
		w += g.Width
	}
	return
}

// Draw composites text into img with the top-left corner of the first glyph
// at (x, y). Glyph bits are OR-ed over the existing image contents, and
// pixels outside the image bounds are clipped. A rune absent from the glyph
// table advances the cursor by the default character's width without drawing
// anything.
//
// y need not be page-aligned: each source byte is split across the two
// destination pages it straddles.
func (f *Font) Draw(img *pixel.PageImage, text string, x, y int) {
	var (
		pages    = img.Pages()
		width    = img.Rect.Dx()
		page     = y >> 3 // floors for negative y
		shift    = y & 7
		fallback = f.glyphs[f.Default]
	)

	for _, r := range text {
		g, ok := f.glyphs[r]
		if !ok {
			x += fallback.Width
			continue
		}

		for pi, slice := range g.pages {
			dst := page + pi
			for i, src := range slice {
				dx := x + i
				if dx < 0 || dx >= width {
					continue
				}

				lo, hi := splitByte(src, shift)
				if dst >= 0 && dst < pages {
					img.Pix[dst*img.Stride+dx] |= lo
				}
				if hi != 0 && dst+1 >= 0 && dst+1 < pages {
					img.Pix[(dst+1)*img.Stride+dx] |= hi
				}
			}
		}

		x += g.Width
	}
}

// splitByte splits one page-column byte over the two destination pages it
// covers when shifted down by shift (0..7) rows. lo is OR-ed into the page
// the byte starts in, hi into the page below. For shift 0, hi is zero.
func splitByte(src byte, shift int) (lo, hi byte) {
	return src << shift, src >> (8 - shift)
}

// pageBitmap converts a glyph bitmap from row-major scanline order (MSB
// first, rows padded to whole bytes) to the vertical page layout.
func pageBitmap(rows []byte, w, h int) [][]byte {
	var (
		rowBytes = (w + 7) / 8
		pages    = make([][]byte, (h+7)/8)
	)
	for i := range pages {
		pages[i] = make([]byte, w)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rows[y*rowBytes+x/8]&(0x80>>uint(x&7)) != 0 {
				pages[y/8][x] |= 1 << uint(y&7)
			}
		}
	}
	return pages
}

// flattenBitmap is the inverse of pageBitmap.
func flattenBitmap(pages [][]byte, w, h int) []byte {
	var (
		rowBytes = (w + 7) / 8
		rows     = make([]byte, rowBytes*h)
	)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if pages[y/8][x]&(1<<uint(y&7)) != 0 {
				rows[y*rowBytes+x/8] |= 0x80 >> uint(x&7)
			}
		}
	}
	return rows
}
