package render

import (
	"image"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// DefaultFilter is used when no filter is configured.
const DefaultFilter = "catmullrom"

// Resampler scales an image to an exact size. Implementations must keep
// the alpha channel of src.
type Resampler interface {
	Resize(src image.Image, width, height int) image.Image
}

// Filters lists the names accepted by NewResampler.
func Filters() []string {
	return []string{"catmullrom", "bilinear", "approxbilinear", "nearest", "lanczos3", "mitchell"}
}

// NewResampler returns the resampler registered under name. An empty name
// selects DefaultFilter.
func NewResampler(name string) (Resampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DefaultFilter:
		return interpolator{xdraw.CatmullRom}, nil
	case "bilinear":
		return interpolator{xdraw.BiLinear}, nil
	case "approxbilinear":
		return interpolator{xdraw.ApproxBiLinear}, nil
	case "nearest":
		return interpolator{xdraw.NearestNeighbor}, nil
	case "lanczos3":
		return nfntResampler{resize.Lanczos3}, nil
	case "mitchell":
		return nfntResampler{resize.MitchellNetravali}, nil
	default:
		return nil, goerr.Wrap(ErrUnknownFilter, "cannot build resampler", goerr.V("filter", name))
	}
}

type interpolator struct{ xdraw.Interpolator }

func (i interpolator) Resize(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	i.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

type nfntResampler struct{ fn resize.InterpolationFunction }

func (n nfntResampler) Resize(src image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), src, n.fn)
}
