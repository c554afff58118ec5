package font

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/glowkit/oled/pixel"
)

func TestFromFace(t *testing.T) {
	f, err := FromFace("basic", basicfont.Face7x13, " !?ABC", '?')
	if err != nil {
		t.Fatal(err)
	}

	if f.Height != 13 {
		t.Errorf("expected height 13, got %d", f.Height)
	}
	if f.Pages() != 2 {
		t.Errorf("expected glyphs to span 2 pages, got %d", f.Pages())
	}

	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("expected glyph for 'A'")
	}
	if g.Width <= 0 {
		t.Errorf("expected positive width for 'A', got %d", g.Width)
	}

	// Blank glyphs fall back to the face advance.
	if g, ok = f.Glyph(' '); !ok || g.Width <= 0 {
		t.Errorf("expected positive advance for the space, got %d (ok=%v)", g.Width, ok)
	}

	// The rasterized glyph must have ink somewhere.
	g, _ = f.Glyph('A')
	var ink bool
	for _, page := range g.pages {
		for _, v := range page {
			ink = ink || v != 0
		}
	}
	if !ink {
		t.Error("expected 'A' to have set pixels")
	}
}

func TestFromFaceDefaultNotInCharset(t *testing.T) {
	if _, err := FromFace("basic", basicfont.Face7x13, "ABC", '?'); err == nil {
		t.Error("expected an error for a default character outside the charset")
	}
}

// A converted font must survive the encode/decode round trip and render
// identically afterwards.
func TestFromFaceRoundTrip(t *testing.T) {
	f, err := FromFace("basic", basicfont.Face7x13, " ?Go", '?')
	if err != nil {
		t.Fatal(err)
	}

	buf, err := Encode(f)
	if err != nil {
		t.Fatal(err)
	}
	g, err := Decode("basic", bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}

	a := pixel.NewPageImage(64, 16)
	b := pixel.NewPageImage(64, 16)
	f.Draw(a, "Go?", 0, 1)
	g.Draw(b, "Go?", 0, 1)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("round-tripped font renders differently")
	}
}
