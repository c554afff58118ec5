package draw

import (
	"image"
	"testing"

	"github.com/glowkit/oled/pixel"
)

func countSet(p *pixel.PageImage) (n int) {
	b := p.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.At(x, y) == pixel.On {
				n++
			}
		}
	}
	return
}

func TestLine(t *testing.T) {
	for _, test := range []struct {
		a, b image.Point
		want int
	}{
		{image.Pt(3, 3), image.Pt(3, 3), 1},
		{image.Pt(0, 0), image.Pt(7, 0), 8},
		{image.Pt(0, 0), image.Pt(0, 7), 8},
		{image.Pt(7, 0), image.Pt(0, 0), 8},
		{image.Pt(0, 0), image.Pt(7, 7), 8},
		{image.Pt(7, 7), image.Pt(0, 0), 8},
		{image.Pt(0, 7), image.Pt(7, 0), 8},
	} {
		img := pixel.NewPageImage(8, 8)
		Line(img, test.a, test.b, pixel.On)

		if v := countSet(img); v != test.want {
			t.Errorf("line %v-%v set %d pixels, expected %d", test.a, test.b, v, test.want)
		}
		if img.At(test.a.X, test.a.Y) != pixel.On {
			t.Errorf("line %v-%v misses its start point", test.a, test.b)
		}
		if img.At(test.b.X, test.b.Y) != pixel.On {
			t.Errorf("line %v-%v misses its end point", test.a, test.b)
		}
	}
}

func TestLineShallow(t *testing.T) {
	img := pixel.NewPageImage(16, 8)
	Line(img, image.Pt(0, 0), image.Pt(15, 3), pixel.On)

	// One pixel per column, monotonically descending.
	prev := 0
	for x := 0; x < 16; x++ {
		set := -1
		for y := 0; y < 8; y++ {
			if img.At(x, y) == pixel.On {
				if set >= 0 {
					t.Fatalf("column %d has more than one pixel", x)
				}
				set = y
			}
		}
		if set < 0 {
			t.Fatalf("column %d has no pixel", x)
		}
		if set < prev {
			t.Fatalf("column %d ascends", x)
		}
		prev = set
	}
}

func TestRectangle(t *testing.T) {
	img := pixel.NewPageImage(16, 16)
	Rectangle(img, image.Rect(2, 3, 10, 9), pixel.On)

	// Perimeter of an 8x6 rectangle.
	if v := countSet(img); v != 2*8+2*6-4 {
		t.Errorf("rectangle set %d pixels, expected %d", v, 2*8+2*6-4)
	}
	for _, p := range []image.Point{{2, 3}, {9, 3}, {2, 8}, {9, 8}} {
		if img.At(p.X, p.Y) != pixel.On {
			t.Errorf("expected corner %v to be set", p)
		}
	}
	if img.At(5, 5) == pixel.On {
		t.Error("rectangle interior must stay clear")
	}
}

func TestBox(t *testing.T) {
	img := pixel.NewPageImage(16, 16)
	Box(img, image.Rect(2, 3, 10, 9), pixel.On)

	if v := countSet(img); v != 8*6 {
		t.Errorf("box set %d pixels, expected %d", v, 8*6)
	}
}

func TestCircle(t *testing.T) {
	img := pixel.NewPageImage(32, 32)
	Circle(img, image.Pt(16, 16), 10, pixel.On)

	for _, p := range []image.Point{{16, 6}, {16, 26}, {6, 16}, {26, 16}} {
		if img.At(p.X, p.Y) != pixel.On {
			t.Errorf("expected cardinal point %v to be set", p)
		}
	}
	if img.At(16, 16) == pixel.On {
		t.Error("circle center must stay clear")
	}
}

func TestClipping(t *testing.T) {
	img := pixel.NewPageImage(8, 8)

	// Shapes reaching outside the image clip instead of erroring.
	Line(img, image.Pt(-5, -5), image.Pt(12, 12), pixel.On)
	Rectangle(img, image.Rect(-2, -2, 20, 20), pixel.On)
	Circle(img, image.Pt(0, 0), 6, pixel.On)

	if img.At(0, 0) != pixel.On {
		t.Error("expected the visible part of the diagonal to be drawn")
	}
}
