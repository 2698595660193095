// Package icongen derives the app icon, adaptive icon, splash screen and
// notification icon from a single logo.
//
// Each artifact is produced by a pure function of the logo and a resampler;
// nothing is shared between them, so they can be tested in isolation.
package icongen

import (
	"errors"
	"image"
	"image/color"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/render/layout"
)

var ErrUnknownRule = errors.New("unknown artifact rule")

// AlphaMode controls whether an artifact is written with an alpha channel.
type AlphaMode int

const (
	// AlphaAuto leaves the choice to the encoder.
	AlphaAuto AlphaMode = iota
	// AlphaKeep always writes an alpha channel.
	AlphaKeep
	// AlphaFlatten composites onto the background and drops alpha.
	AlphaFlatten
)

// Rule describes one artifact.
type Rule struct {
	Name        string
	File        string
	Description string

	Width, Height int
	// Background is nil when the resized logo itself is the canvas.
	Background color.Color
	LogoWidth  int
	LogoHeight int
	Alpha      AlphaMode
}

// Bounds is the canvas rectangle of the artifact.
func (r Rule) Bounds() image.Rectangle { return image.Rect(0, 0, r.Width, r.Height) }

// LogoRect is where the resized logo lands on the canvas.
func (r Rule) LogoRect() image.Rectangle {
	return layout.Center(r.Bounds(), r.LogoWidth, r.LogoHeight)
}

// The adaptive icon logo is smaller than the icon logo so it survives the
// launcher's safe-zone mask.
var (
	IconRule = Rule{
		Name:        "icon",
		File:        "icon.png",
		Description: "main app icon",
		Width:       1024,
		Height:      1024,
		Background:  render.White,
		LogoWidth:   800,
		LogoHeight:  800,
		Alpha:       AlphaKeep,
	}
	AdaptiveIconRule = Rule{
		Name:        "adaptive-icon",
		File:        "adaptive-icon.png",
		Description: "Android adaptive icon",
		Width:       1024,
		Height:      1024,
		Background:  render.Transparent,
		LogoWidth:   700,
		LogoHeight:  700,
		Alpha:       AlphaKeep,
	}
	SplashRule = Rule{
		Name:        "splash",
		File:        "splash.png",
		Description: "splash screen",
		Width:       1284,
		Height:      2778,
		Background:  render.Navy,
		LogoWidth:   600,
		LogoHeight:  600,
		Alpha:       AlphaFlatten,
	}
	NotificationIconRule = Rule{
		Name:        "notification-icon",
		File:        "notification-icon.png",
		Description: "notifications",
		Width:       96,
		Height:      96,
		LogoWidth:   96,
		LogoHeight:  96,
		Alpha:       AlphaAuto,
	}
)

// Rules returns the artifacts in generation order.
func Rules() []Rule {
	return []Rule{IconRule, AdaptiveIconRule, SplashRule, NotificationIconRule}
}

// Icon renders the logo at 800×800 centered on an opaque white 1024×1024 canvas.
func Icon(logo image.Image, rs render.Resampler) *image.RGBA {
	return compose(IconRule, logo, rs)
}

// AdaptiveIcon renders the logo at 700×700 centered on a transparent 1024×1024 canvas.
func AdaptiveIcon(logo image.Image, rs render.Resampler) *image.RGBA {
	return compose(AdaptiveIconRule, logo, rs)
}

// Splash renders the logo at 600×600 centered on a navy 1284×2778 canvas
// and flattens the result.
func Splash(logo image.Image, rs render.Resampler) *image.RGBA {
	return render.Flatten(compose(SplashRule, logo, rs), SplashRule.Background)
}

// NotificationIcon resizes the logo straight to 96×96, ignoring its aspect ratio.
func NotificationIcon(logo image.Image, rs render.Resampler) *image.RGBA {
	canvas := render.NewCanvas(NotificationIconRule.Width, NotificationIconRule.Height, render.Transparent)
	resized := rs.Resize(logo, NotificationIconRule.LogoWidth, NotificationIconRule.LogoHeight)
	render.PasteOver(canvas, resized, image.Point{})
	return canvas
}

func compose(rule Rule, logo image.Image, rs render.Resampler) *image.RGBA {
	canvas := render.NewCanvas(rule.Width, rule.Height, rule.Background)
	resized := rs.Resize(logo, rule.LogoWidth, rule.LogoHeight)
	render.PasteOver(canvas, resized, rule.LogoRect().Min)
	return canvas
}

// Generate renders the artifact named by rule and returns it ready to encode.
func Generate(rule Rule, logo image.Image, rs render.Resampler) (image.Image, error) {
	var img *image.RGBA
	switch rule.Name {
	case IconRule.Name:
		img = Icon(logo, rs)
	case AdaptiveIconRule.Name:
		img = AdaptiveIcon(logo, rs)
	case SplashRule.Name:
		img = Splash(logo, rs)
	case NotificationIconRule.Name:
		img = NotificationIcon(logo, rs)
	default:
		return nil, goerr.Wrap(ErrUnknownRule, "cannot generate artifact", goerr.V("rule", rule.Name))
	}

	if rule.Alpha == AlphaKeep {
		return render.KeepAlpha(img), nil
	}
	return img, nil
}
