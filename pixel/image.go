package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a mutable monochrome image.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container shared by the image types
// in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride in bytes.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// ScanImage is a 1-bit per pixel monochrome image in row-major scanline order.
//
// Each byte packs 8 horizontally adjacent pixels, most significant bit first,
// and every row is padded to a whole byte. This is the layout packed font
// payloads are stored in.
type ScanImage struct {
	Buffer
}

func NewScanImage(w, h int) *ScanImage {
	stride := (w + 7) / 8 // round up to whole bytes
	return &ScanImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *ScanImage) ColorModel() color.Model {
	return MonoModel
}

func (p *ScanImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *ScanImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y*p.Stride + x/8
		bit = byte(0x80) >> uint(x&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *ScanImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y*p.Stride + x/8
		bit = byte(0x80) >> uint(x&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *ScanImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// PageImage is a 1-bit per pixel monochrome image in vertical page order, the
// native framebuffer layout of SSD1xxx OLED controllers.
//
// The image is divided in pages of 8 rows each. Byte Pix[page*Stride+x] packs
// the 8 vertically stacked pixels of column x in that page, least significant
// bit on top: bit n is row page*8+n. The buffer is allocated once at
// construction and can be written to the controller without a transposition
// step.
type PageImage struct {
	Buffer
}

func NewPageImage(w, h int) *PageImage {
	pages := (h + 7) / 8 // round up to whole pages
	return &PageImage{
		Buffer: makeBuffer(w, h, w, pages*w),
	}
}

// Pages returns the number of 8-row pages.
func (p *PageImage) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

func (p *PageImage) PixOffset(x, y int) int {
	return y/8*p.Stride + x
}

func (p *PageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *PageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *PageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
