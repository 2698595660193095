// Package preview renders a contact sheet of the generated artifacts so a
// branding update can be reviewed in one image.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/render/layout"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	SheetSize = 1600

	cellPadding = 24
	labelHeight = 56
	checkerSize = 16
	fontSize    = 28
)

var (
	sheetBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	checkerLight    = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	checkerDark     = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	labelColor      = color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
)

// Item is one artifact placed on the sheet.
type Item struct {
	Label string
	Image image.Image
}

// Logger is satisfied by app.Logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Sheet draws up to four items into a 2×2 grid. Each item is fitted into its
// cell over a checkerboard so transparent areas stay visible.
func Sheet(items []Item, logger Logger) *image.RGBA {
	sheet := render.NewCanvas(SheetSize, SheetSize, sheetBackground)
	face := loadFace(logger)

	grid := layout.Grid2x2(sheet.Bounds())
	cells := []image.Rectangle{grid.TopLeft, grid.TopRight, grid.BottomLeft, grid.BottomRight}
	for i, item := range items {
		if i >= len(cells) {
			if logger != nil {
				logger.Errorf("preview", "sheet holds %d items, dropping %q", len(cells), item.Label)
			}
			continue
		}
		drawCell(sheet, layout.Inset(cells[i], cellPadding), item, face)
	}
	return sheet
}

func drawCell(sheet *image.RGBA, cell image.Rectangle, item Item, face font.Face) {
	imageArea := image.Rect(cell.Min.X, cell.Min.Y, cell.Max.X, cell.Max.Y-labelHeight)
	if item.Image != nil {
		size := item.Image.Bounds().Size()
		target := layout.Fit(imageArea, size.X, size.Y)
		fillChecker(sheet, target)
		xdraw.CatmullRom.Scale(sheet, target, item.Image, item.Image.Bounds(), xdraw.Over, nil)
		item.Label = fmt.Sprintf("%s (%dx%d)", item.Label, size.X, size.Y)
	}
	drawLabel(sheet, image.Rect(cell.Min.X, imageArea.Max.Y, cell.Max.X, cell.Max.Y), item.Label, face)
}

func fillChecker(dst *image.RGBA, rect image.Rectangle) {
	light := &image.Uniform{C: checkerLight}
	dark := &image.Uniform{C: checkerDark}
	for y := rect.Min.Y; y < rect.Max.Y; y += checkerSize {
		for x := rect.Min.X; x < rect.Max.X; x += checkerSize {
			src := light
			if ((x-rect.Min.X)/checkerSize+(y-rect.Min.Y)/checkerSize)%2 == 1 {
				src = dark
			}
			tile := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(rect)
			draw.Draw(dst, tile, src, image.Point{}, draw.Src)
		}
	}
}

func drawLabel(dst *image.RGBA, rect image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(labelColor), Face: face}
	metrics := face.Metrics()
	width := drawer.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-width)/2
	baseline := rect.Min.Y + (rect.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}

func loadFace(logger Logger) font.Face {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		if logger != nil {
			logger.Errorf("preview", "truetype parse failed, using basicfont: %v", err)
		}
		return basicfont.Face7x13
	}
	return truetype.NewFace(tt, &truetype.Options{Size: fontSize, DPI: 72, Hinting: font.HintingFull})
}
