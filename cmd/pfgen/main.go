// Command pfgen converts a TrueType font into the packed .pf format consumed
// by the display driver. Conversion is an offline step: glyphs are rasterized
// once here so the driver never touches vector outlines at runtime.
//
// Usage:
//
//	pfgen [flags] font.ttf
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"

	"github.com/glowkit/oled/font"
)

func main() {
	sizeFlag := flag.Float64("size", 12, "Glyph size in points")
	dpiFlag := flag.Float64("dpi", 72, "Rasterization DPI")
	charsFlag := flag.String("chars", printableASCII(), "Characters to include")
	defaultFlag := flag.String("default", "?", "Default character for unmapped runes")
	outFlag := flag.String("out", "", "Output file (default: <name><size>.pf)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] font.ttf\n", os.Args[0])
		os.Exit(1)
	}
	if len(*defaultFlag) != 1 {
		fatal(fmt.Errorf("the default character must be a single character, got %q", *defaultFlag))
	}
	if !strings.ContainsRune(*charsFlag, rune((*defaultFlag)[0])) {
		*charsFlag += *defaultFlag
	}

	var (
		path = flag.Arg(0)
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	)

	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		fatal(err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    *sizeFlag,
		DPI:     *dpiFlag,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()

	out := *outFlag
	if out == "" {
		out = fmt.Sprintf("%s%d.pf", name, int(*sizeFlag))
	}

	f, err := font.FromFace(name, face, *charsFlag, rune((*defaultFlag)[0]))
	if err != nil {
		fatal(err)
	}
	buf, err := font.Encode(f)
	if err != nil {
		fatal(err)
	}
	if err = os.WriteFile(out, buf, 0o644); err != nil {
		fatal(err)
	}

	fmt.Printf("%s: %d glyphs, height %d, %d bytes\n", out, len(*charsFlag), f.Height, len(buf))
}

func printableASCII() string {
	var sb strings.Builder
	for c := rune(0x20); c < 0x7F; c++ {
		sb.WriteRune(c)
	}
	return sb.String()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
