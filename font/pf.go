package font

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Decode errors.
var (
	// ErrFormat is returned when a packed font resource is malformed or
	// inconsistent. It is detected at load time: a font that decodes
	// successfully cannot fail during rendering.
	ErrFormat = errors.New("font: invalid packed font")
)

// Packed font file layout:
//
//	offset  size         content
//	0       2            magic "PF"
//	2       1            default character code
//	3       1            glyph count
//	4       count*5      glyph table: char, width, height, offset lo, offset hi
//	...                  bitmap payload, row-major, MSB first, rows padded
//	                     to whole bytes, glyphs packed back to back
const (
	pfMagic0    = 'P'
	pfMagic1    = 'F'
	pfHeaderLen = 4
	pfEntryLen  = 5
	pfMaxGlyphs = 255
	pfMaxMetric = 255
	pfMaxOffset = 0xffff
)

// Decode parses a packed font resource. The whole resource is validated up
// front and every glyph is converted to the vertical page layout, so the
// returned Font renders with plain byte copies.
func Decode(name string, r io.Reader) (*Font, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(raw) < pfHeaderLen || raw[0] != pfMagic0 || raw[1] != pfMagic1 {
		return nil, fmt.Errorf("%w: bad magic", ErrFormat)
	}

	var (
		count    = int(raw[3])
		tableEnd = pfHeaderLen + count*pfEntryLen
	)
	if len(raw) < tableEnd {
		return nil, fmt.Errorf("%w: truncated glyph table", ErrFormat)
	}

	f := &Font{
		Name:    name,
		Default: rune(raw[2]),
		glyphs:  make(map[rune]Glyph, count),
	}

	var (
		payload = raw[tableEnd:]
		next    int // expected start of the next glyph's bitmap
	)
	for i := 0; i < count; i++ {
		var (
			entry  = raw[pfHeaderLen+i*pfEntryLen:]
			char   = rune(entry[0])
			width  = int(entry[1])
			height = int(entry[2])
			offset = int(binary.LittleEndian.Uint16(entry[3:5]))
			size   = (width + 7) / 8 * height
		)
		if i == 0 {
			f.Height = height
		} else if height != f.Height {
			return nil, fmt.Errorf("%w: glyph %q height %d, font height %d", ErrFormat, char, height, f.Height)
		}
		if offset != next {
			return nil, fmt.Errorf("%w: glyph %q bitmap at %d, expected %d", ErrFormat, char, offset, next)
		}
		if offset+size > len(payload) {
			return nil, fmt.Errorf("%w: glyph %q bitmap exceeds payload", ErrFormat, char)
		}
		if _, exists := f.glyphs[char]; exists {
			return nil, fmt.Errorf("%w: duplicate glyph %q", ErrFormat, char)
		}

		f.glyphs[char] = Glyph{
			Width: width,
			pages: pageBitmap(payload[offset:offset+size], width, height),
		}
		next = offset + size
	}

	if next != len(payload) {
		return nil, fmt.Errorf("%w: payload is %d bytes, glyph table declares %d", ErrFormat, len(payload), next)
	}
	if _, ok := f.glyphs[f.Default]; !ok {
		return nil, fmt.Errorf("%w: default character %q has no glyph", ErrFormat, f.Default)
	}

	return f, nil
}

// Load reads a packed font from a .pf file. The font is named after the file
// base name without extension.
func Load(path string) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(name, f)
}

// Encode serializes a font to the packed font file layout. It is the exact
// inverse of Decode and is used by the conversion tool and tests.
func Encode(f *Font) ([]byte, error) {
	if len(f.glyphs) > pfMaxGlyphs {
		return nil, fmt.Errorf("%w: %d glyphs, at most %d fit the glyph table", ErrFormat, len(f.glyphs), pfMaxGlyphs)
	}
	if f.Height > pfMaxMetric {
		return nil, fmt.Errorf("%w: height %d exceeds %d", ErrFormat, f.Height, pfMaxMetric)
	}
	if _, ok := f.glyphs[f.Default]; !ok {
		return nil, fmt.Errorf("%w: default character %q has no glyph", ErrFormat, f.Default)
	}

	chars := make([]rune, 0, len(f.glyphs))
	for char := range f.glyphs {
		if char > 0xff {
			return nil, fmt.Errorf("%w: character %q outside the 8-bit table", ErrFormat, char)
		}
		chars = append(chars, char)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	var (
		table   = make([]byte, 0, len(chars)*pfEntryLen)
		payload []byte
	)
	for _, char := range chars {
		g := f.glyphs[char]
		if g.Width > pfMaxMetric {
			return nil, fmt.Errorf("%w: glyph %q width %d exceeds %d", ErrFormat, char, g.Width, pfMaxMetric)
		}
		offset := len(payload)
		if offset > pfMaxOffset {
			return nil, fmt.Errorf("%w: bitmap payload exceeds %d bytes", ErrFormat, pfMaxOffset)
		}
		table = append(table, byte(char), byte(g.Width), byte(f.Height), byte(offset), byte(offset>>8))
		payload = append(payload, flattenBitmap(g.pages, g.Width, f.Height)...)
	}

	out := make([]byte, 0, pfHeaderLen+len(table)+len(payload))
	out = append(out, pfMagic0, pfMagic1, byte(f.Default), byte(len(chars)))
	out = append(out, table...)
	out = append(out, payload...)
	return out, nil
}
