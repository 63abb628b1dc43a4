// Package colors provides named colors for beginners, ready to pass to
// the session's SetColor and Start.
package colors

import "image/color"

var (
	White    = color.RGBA{255, 255, 255, 255}
	Black    = color.RGBA{0, 0, 0, 255}
	Red      = color.RGBA{255, 0, 0, 255}
	Green    = color.RGBA{0, 255, 0, 255}
	Blue     = color.RGBA{0, 0, 255, 255}
	Yellow   = color.RGBA{255, 255, 0, 255}
	Cyan     = color.RGBA{0, 255, 255, 255}
	Magenta  = color.RGBA{255, 0, 255, 255}
	Gray     = color.RGBA{128, 128, 128, 255}
	DarkGray = color.RGBA{20, 26, 31, 255}
	Orange   = color.RGBA{255, 165, 0, 255}
	Purple   = color.RGBA{128, 0, 128, 255}
	Brown    = color.RGBA{139, 69, 19, 255}
	Pink     = color.RGBA{255, 192, 203, 255}
)

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
