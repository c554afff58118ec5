package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points.
func Line(dst Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws a rectangle outline.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}

// Circle draws a circle outline with the midpoint algorithm.
func Circle(dst Image, center image.Point, radius int, c color.Color) {
	var (
		f    = 1 - radius
		ddFx = 1
		ddFy = -2 * radius
		x    = 0
		y    = radius
	)
	dst.Set(center.X, center.Y+radius, c)
	dst.Set(center.X, center.Y-radius, c)
	dst.Set(center.X+radius, center.Y, c)
	dst.Set(center.X-radius, center.Y, c)
	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		dst.Set(center.X+x, center.Y+y, c)
		dst.Set(center.X-x, center.Y+y, c)
		dst.Set(center.X+x, center.Y-y, c)
		dst.Set(center.X-x, center.Y-y, c)
		dst.Set(center.X+y, center.Y+x, c)
		dst.Set(center.X-y, center.Y+x, c)
		dst.Set(center.X+y, center.Y-x, c)
		dst.Set(center.X-y, center.Y-x, c)
	}
}

// bresenham draws a line with the integer Bresenham algorithm.
func bresenham(dst Image, x1, y1, x2, y2 int, c color.Color) {
	// Drawing a -> b equals drawing b -> a, sorting by x halves the cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy := x2-x1, y2-y1
	if dy < 0 {
		dy = -dy
	}

	switch {
	case x1 == x2 && y1 == y2:
		dst.Set(x1, y1, c)

	case y1 == y2:
		HorizontalLine(dst, x1, y1, dx+1, c)

	case x1 == x2:
		if y1 > y2 {
			y1 = y2
		}
		VerticalLine(dst, x1, y1, dy+1, c)

	case dx == dy: // diagonal
		ystep := 1
		if y1 > y2 {
			ystep = -1
		}
		for ; dx >= 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			y1 += ystep
		}

	case dx > dy: // wider than high
		ystep := 1
		if y1 > y2 {
			ystep = -1
		}
		e, slope := dx, 2*dx
		dy *= 2
		for ; dx >= 0; dx-- {
			dst.Set(x1, y1, c)
			x1++
			e -= dy
			if e < 0 {
				y1 += ystep
				e += slope
			}
		}

	default: // higher than wide
		ystep := 1
		if y1 > y2 {
			ystep = -1
		}
		e, slope := dy, 2*dy
		dx *= 2
		for ; dy >= 0; dy-- {
			dst.Set(x1, y1, c)
			y1 += ystep
			e -= dx
			if e < 0 {
				x1++
				e += slope
			}
		}
	}
}
