// Package oled drives monochrome, page-organized OLED display controllers
// over I²C or SPI, with text rendering backed by packed bitmap fonts.
//
// All drawing operations mutate an in-memory framebuffer only; nothing
// reaches the bus until Refresh is called. The framebuffer mirrors the
// controller's native page layout (see [pixel.PageImage]), so a refresh is a
// plain copy of buffer pages, without a transposition step.
//
// A Display is owned by a single goroutine: neither the framebuffer nor the
// font selection is synchronized.
package oled

import (
	"errors"
	"os"

	"github.com/glowkit/oled/font"
	"github.com/glowkit/oled/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrNoFontSelected = errors.New("oled: no font selected")
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels, must be a multiple of 8.
	Height int
}

// Display is a monochrome OLED display. It embeds its framebuffer, so it can
// be used directly as a [draw.Image] target.
type Display struct {
	*pixel.PageImage
	c        Conn
	fonts    font.Store
	pages    int
	colStart byte
	colEnd   byte
	halted   bool
}

func (d *Display) command(command byte, data ...byte) error {
	return d.c.Command(command, data...)
}

func (d *Display) data(data ...byte) error {
	return d.c.Data(data...)
}

// Fill sets or clears every pixel in the framebuffer.
func (d *Display) Fill(on bool) {
	d.PageImage.Fill(pixel.Mono{On: on})
}

// SetPixel sets or clears the pixel at (x, y). Coordinates outside the
// display are silently ignored, so shapes partially off screen draw their
// visible part without erroring.
func (d *Display) SetPixel(x, y int, on bool) {
	d.PageImage.Set(x, y, pixel.Mono{On: on})
}

// Pixel reports whether the framebuffer pixel at (x, y) is set.
func (d *Display) Pixel(x, y int) bool {
	return d.PageImage.At(x, y) == pixel.On
}

// Fonts returns the display's font store for direct access.
func (d *Display) Fonts() *font.Store {
	return &d.fonts
}

// LoadFont loads a packed font from a .pf file. The font is registered under
// the file base name and must be selected with SelectFont before use.
func (d *Display) LoadFont(path string) error {
	return d.fonts.LoadFile(path)
}

// LoadFonts loads multiple packed fonts, stopping at the first error.
func (d *Display) LoadFonts(paths ...string) error {
	for _, path := range paths {
		if err := d.fonts.LoadFile(path); err != nil {
			return err
		}
	}
	return nil
}

// SelectFont makes the named font active for subsequent Text calls.
func (d *Display) SelectFont(name string) error {
	return d.fonts.Select(name)
}

// Text draws text into the framebuffer with the top-left corner of the first
// glyph at (x, y), using the active font. It fails with ErrNoFontSelected
// when no font is active. Characters without a glyph advance the cursor by
// the font's default character width without drawing; there is no wrapping
// and no newline handling.
func (d *Display) Text(text string, x, y int) error {
	f := d.fonts.Active()
	if f == nil {
		return ErrNoFontSelected
	}
	f.Draw(d.PageImage, text, x, y)
	return nil
}
