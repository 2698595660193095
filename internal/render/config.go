package render

import "image/color"

// Canvas backgrounds used by the generation rules.
var (
	White       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = color.RGBA{}

	// Navy is the splash background, #2c3e50.
	Navy = color.RGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF}
)
