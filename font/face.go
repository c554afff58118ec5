package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/glowkit/oled/pixel"
)

// FromFace rasterizes every rune in charset into a packed font. The glyph
// height is the face's ascent plus descent; glyph widths follow the ink
// bounds, falling back to the face advance for blank glyphs such as the
// space. Coverage below 50% is thresholded to off.
//
// defaultChar must be part of charset, it becomes the substitute for runes
// outside the glyph table.
func FromFace(name string, face xfont.Face, charset string, defaultChar rune) (*Font, error) {
	var (
		metrics = face.Metrics()
		ascent  = metrics.Ascent.Ceil()
		height  = ascent + metrics.Descent.Ceil()
	)

	f := &Font{
		Name:    name,
		Height:  height,
		Default: defaultChar,
		glyphs:  make(map[rune]Glyph),
	}

	for _, r := range charset {
		if _, seen := f.glyphs[r]; seen {
			continue
		}

		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			return nil, fmt.Errorf("font: face has no glyph for %q", r)
		}
		width := (bounds.Max.X - bounds.Min.X).Ceil()
		if width == 0 {
			width = advance.Ceil()
		}

		img := pixel.NewScanImage(width, height)
		drawer := xfont.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: face,
			Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: fixed.I(ascent)},
		}
		drawer.DrawString(string(r))

		f.glyphs[r] = Glyph{
			Width: width,
			pages: pageBitmap(img.Pix, width, height),
		}
	}

	if _, ok := f.glyphs[defaultChar]; !ok {
		return nil, fmt.Errorf("font: default character %q is not in the charset", defaultChar)
	}

	return f, nil
}
