// Package draw provides shape drawing helpers for monochrome displays.
//
// All helpers draw through the destination's bounds-checked Set, so shapes
// partially outside the image are clipped, never erred.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Draw calls [image/draw.Draw] with the Src operator, copying src into the
// rectangle r of dst.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point) {
	draw.Draw(dst, r, src, sp, draw.Src)
}
