package font

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/glowkit/oled/pixel"
)

func TestDecode(t *testing.T) {
	f := testFont(t)

	if f.Name != "test" {
		t.Errorf("expected name %q, got %q", "test", f.Name)
	}
	if f.Height != 8 {
		t.Errorf("expected height 8, got %d", f.Height)
	}
	if f.Pages() != 1 {
		t.Errorf("expected 1 page, got %d", f.Pages())
	}
	if f.Default != '?' {
		t.Errorf("expected default character '?', got %q", f.Default)
	}

	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("expected glyph for 'A'")
	}
	if g.Width != 2 {
		t.Errorf("expected glyph width 2, got %d", g.Width)
	}
	if !bytes.Equal(g.pages[0], []byte{0xFF, 0xFF}) {
		t.Errorf("expected solid glyph columns, got % 02x", g.pages[0])
	}

	if _, ok = f.Glyph('Z'); ok {
		t.Error("unexpected glyph for 'Z'")
	}
}

func TestDecodeFormatErrors(t *testing.T) {
	valid := testFontBytes()

	corrupt := func(mod func([]byte) []byte) []byte {
		buf := append([]byte(nil), valid...)
		return mod(buf)
	}

	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte{'P', 'F', '?'}},
		{"bad magic", corrupt(func(b []byte) []byte { b[0] = 'Q'; return b })},
		{"truncated table", valid[:pfHeaderLen+pfEntryLen+2]},
		{"truncated payload", valid[:len(valid)-3]},
		{"trailing garbage", append(corrupt(func(b []byte) []byte { return b }), 0xAA)},
		{"offset gap", corrupt(func(b []byte) []byte {
			b[pfHeaderLen+pfEntryLen+3] = 9 // 'A' bitmap declared at 9, '?' ends at 8
			return b
		})},
		{"height mismatch", corrupt(func(b []byte) []byte {
			b[pfHeaderLen+pfEntryLen+2] = 16
			return b
		})},
		{"duplicate glyph", corrupt(func(b []byte) []byte {
			b[pfHeaderLen+pfEntryLen] = '?'
			b[pfHeaderLen+pfEntryLen+1] = 3
			return b
		})},
		{"missing default glyph", corrupt(func(b []byte) []byte {
			b[2] = '!'
			return b
		})},
	} {
		t.Run(test.name, func(it *testing.T) {
			_, err := Decode("bad", bytes.NewReader(test.data))
			if !errors.Is(err, ErrFormat) {
				it.Errorf("expected ErrFormat, got %v", err)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	f := testFont(t)

	buf, err := Encode(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, testFontBytes()) {
		t.Errorf("encoded font % 02x, expected % 02x", buf, testFontBytes())
	}

	g, err := Decode("test", bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}
	if g.Height != f.Height || g.Default != f.Default || len(g.glyphs) != len(f.glyphs) {
		t.Errorf("round trip changed font metadata: %+v != %+v", g, f)
	}
	for char, want := range f.glyphs {
		got, ok := g.glyphs[char]
		if !ok {
			t.Fatalf("round trip lost glyph %q", char)
		}
		if got.Width != want.Width {
			t.Errorf("glyph %q width %d, expected %d", char, got.Width, want.Width)
		}
		for i := range want.pages {
			if !bytes.Equal(got.pages[i], want.pages[i]) {
				t.Errorf("glyph %q page %d is % 02x, expected % 02x", char, i, got.pages[i], want.pages[i])
			}
		}
	}
}

// The smallest useful font: one glyph, height 8. Convert, load and render it,
// then compare against a pixel-exact expected buffer.
func TestMinimalFontRender(t *testing.T) {
	buf := []byte{
		'P', 'F', 'o', 1,
		'o', 2, 8, 0, 0,
		0xC0, 0xC0, 0x00, 0x00, 0x00, 0x00, 0xC0, 0xC0, // 2x2 blocks top and bottom
	}

	f, err := Decode("minimal", bytes.NewReader(buf))
	if err != nil {
		t.Fatal(err)
	}

	img := pixel.NewPageImage(8, 8)
	f.Draw(img, "o", 0, 0)

	want := []byte{0xC3, 0xC3, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("rendered buffer % 02x, expected % 02x", img.Pix, want)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono8.pf")
	if err := os.WriteFile(path, testFontBytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "mono8" {
		t.Errorf("expected font name %q, got %q", "mono8", f.Name)
	}

	if _, err = Load(filepath.Join(dir, "nope.pf")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
