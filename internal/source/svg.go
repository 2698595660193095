package source

import (
	"bytes"
	"image"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgTargetSize is the longest side of a rasterized SVG logo. It is larger
// than every canvas the logo is scaled into.
const svgTargetSize = 1024

func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimLeft(head, "\xef\xbb\xbf \t\r\n")
	return bytes.HasPrefix(head, []byte("<svg")) ||
		(bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg")))
}

func rasterizeSVG(data []byte, longest int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse svg")
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	scale := float64(longest) / math.Max(w, h)
	width := int(math.Round(w * scale))
	height := int(math.Round(h * scale))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	dasher := rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, rgba, rgba.Bounds()))
	icon.Draw(dasher, 1.0)
	return rgba, nil
}
