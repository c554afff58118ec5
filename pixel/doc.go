// Package pixel implements monochrome image types for page-organized pixel displays.
//
// This module provides a 1-bit color model and two bitmap layouts, compatible with
// Go's native [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel
