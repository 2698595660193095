package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/m-mizutani/goerr/v2"
)

var ErrUnknownFilter = errors.New("unknown resampling filter")

// NewCanvas returns a w×h RGBA canvas filled with bg.
func NewCanvas(w, h int, bg color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	return canvas
}

// PasteOver composites src onto dst with its top-left corner at at.
// Transparent and partially transparent src pixels blend with what is
// already on dst.
func PasteOver(dst draw.Image, src image.Image, at image.Point) {
	rect := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
}

// Flatten composites img over an opaque bg and returns the result.
// Every pixel of the returned image has alpha 0xFF, so the PNG encoder
// writes it without an alpha channel.
func Flatten(img image.Image, bg color.Color) *image.RGBA {
	r, g, b, _ := bg.RGBA()
	opaque := color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xFFFF}
	bounds := img.Bounds()
	out := NewCanvas(bounds.Dx(), bounds.Dy(), opaque)
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Over)
	return out
}

type keepAlpha struct{ *image.RGBA }

// Opaque always reports false so image/png picks the RGBA color type.
func (keepAlpha) Opaque() bool { return false }

// KeepAlpha wraps img so that it is encoded with an alpha channel even when
// all of its pixels happen to be opaque.
func KeepAlpha(img *image.RGBA) image.Image { return keepAlpha{img} }

// SavePNG encodes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to encode png", goerr.V("path", path))
	}
	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}
	return nil
}
