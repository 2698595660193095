// Package source loads the logo every artifact is derived from.
package source

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/m-mizutani/goerr/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("cannot decode logo")

// Logo is a decoded source image.
type Logo struct {
	Path   string
	Format string
	Image  image.Image
}

// Size returns the pixel dimensions of the decoded image, or zero after Release.
func (l *Logo) Size() image.Point {
	if l == nil || l.Image == nil {
		return image.Point{}
	}
	return l.Image.Bounds().Size()
}

// Release drops the decoded pixel buffer so it can be reclaimed.
func (l *Logo) Release() {
	if l != nil {
		l.Image = nil
	}
}

// Exists reports whether path exists. A missing file is not an error.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, goerr.Wrap(err, "failed to stat logo", goerr.V("path", path))
}

// Load reads and decodes the logo at path. The format is sniffed from the
// content, not the file extension.
func Load(path string) (*Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read logo", goerr.V("path", path))
	}
	return Decode(path, data)
}

// Decode decodes raw logo bytes. path is only used for error context.
func Decode(path string, data []byte) (*Logo, error) {
	if isSVG(data) {
		img, err := rasterizeSVG(data, svgTargetSize)
		if err != nil {
			return nil, goerr.Wrap(ErrDecode, err.Error(), goerr.V("path", path), goerr.V("format", "svg"))
		}
		return &Logo{Path: path, Format: "svg", Image: img}, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(ErrDecode, err.Error(), goerr.V("path", path), goerr.V("size", len(data)))
	}
	return &Logo{Path: path, Format: format, Image: img}, nil
}
