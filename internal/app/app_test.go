package app_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rook-computer/iconsmith/internal/app"
	"github.com/rook-computer/iconsmith/internal/config"
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/source"
)

var outputs = []string{"icon.png", "adaptive-icon.png", "splash.png", "notification-icon.png"}

// writeLogo puts a 120×80 logo with a transparent border into dir/logo.png.
func writeLogo(t *testing.T, dir string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 120, 80))
	for y := 10; y < 70; y++ {
		for x := 10; x < 110; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	gt.NoError(t, png.Encode(&buf, img)).Required()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), buf.Bytes(), 0o644)).Required()
}

func newApp(dir string, out *bytes.Buffer) *app.App {
	a := app.New(config.Config{AssetsDir: dir, Filter: render.DefaultFilter})
	a.Out = out
	return a
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	gt.NoError(t, err).Required()
	defer f.Close()
	img, err := png.Decode(f)
	gt.NoError(t, err).Required()
	return img
}

func TestRunWritesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)
	var out bytes.Buffer

	artifacts, err := newApp(dir, &out).Run()
	gt.NoError(t, err).Required()
	gt.Equal(t, len(artifacts), 4)

	sizes := map[string]image.Point{
		"icon.png":              {1024, 1024},
		"adaptive-icon.png":     {1024, 1024},
		"splash.png":            {1284, 2778},
		"notification-icon.png": {96, 96},
	}
	decoded := map[string]image.Image{}
	for _, name := range outputs {
		img := decode(t, filepath.Join(dir, name))
		gt.Equal(t, img.Bounds().Size(), sizes[name])
		decoded[name] = img
	}

	gt.Equal(t, decoded["icon.png"].ColorModel(), color.NRGBAModel)
	gt.Equal(t, decoded["adaptive-icon.png"].ColorModel(), color.NRGBAModel)
	gt.Equal(t, decoded["splash.png"].ColorModel(), color.RGBAModel)

	_, _, _, a := decoded["adaptive-icon.png"].At(0, 0).RGBA()
	gt.Equal(t, a, uint32(0))
	gt.Equal(t, color.RGBAModel.Convert(decoded["splash.png"].At(10, 10)).(color.RGBA), render.Navy)
	gt.Equal(t, color.RGBAModel.Convert(decoded["icon.png"].At(50, 50)).(color.RGBA), render.White)

	text := out.String()
	for _, name := range outputs {
		gt.True(t, strings.Contains(text, "OK - created: "+filepath.Join(dir, name)))
	}
	gt.True(t, strings.Contains(text, "Original size: 120x80 (png)"))
	gt.True(t, strings.Contains(text, "splash.png (1284x2778) - splash screen"))
	gt.True(t, strings.Contains(text, "Next step: "+app.NextStep))

	_, err = os.Stat(filepath.Join(dir, config.PreviewFile))
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)

	_, err := newApp(dir, &bytes.Buffer{}).Run()
	gt.NoError(t, err).Required()
	first := map[string][]byte{}
	for _, name := range outputs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		gt.NoError(t, err).Required()
		first[name] = data
	}

	_, err = newApp(dir, &bytes.Buffer{}).Run()
	gt.NoError(t, err).Required()
	for _, name := range outputs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		gt.NoError(t, err).Required()
		gt.True(t, bytes.Equal(first[name], data))
	}
}

func TestRunMissingLogo(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	artifacts, err := newApp(dir, &out).Run()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, app.ErrSourceMissing))
	gt.Equal(t, len(artifacts), 0)
	gt.True(t, strings.Contains(out.String(), "ERROR: "+filepath.Join(dir, "logo.png")+" not found!"))

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(entries), 0)
}

func TestRunCorruptLogoWritesNothing(t *testing.T) {
	dir := t.TempDir()
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("not a png"), 0o644)).Required()

	_, err := newApp(dir, &bytes.Buffer{}).Run()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, source.ErrDecode))

	entries, err := os.ReadDir(dir)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(entries), 1)
}

func TestRunStopsAtFirstWriteFailure(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)
	// A directory in the way makes the splash write fail.
	gt.NoError(t, os.Mkdir(filepath.Join(dir, "splash.png"), 0o755)).Required()

	artifacts, err := newApp(dir, &bytes.Buffer{}).Run()
	gt.Error(t, err)
	gt.Equal(t, len(artifacts), 2)

	for _, name := range []string{"icon.png", "adaptive-icon.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		gt.NoError(t, err)
	}
	_, err = os.Stat(filepath.Join(dir, "notification-icon.png"))
	gt.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunWithPreview(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)
	a := newApp(dir, &bytes.Buffer{})
	a.Config.Preview = true

	_, err := a.Run()
	gt.NoError(t, err).Required()

	sheet := decode(t, filepath.Join(dir, config.PreviewFile))
	gt.Equal(t, sheet.Bounds().Size(), image.Pt(1600, 1600))
}

func TestRunRejectsUnknownFilter(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)
	a := newApp(dir, &bytes.Buffer{})
	a.Config.Filter = "box"

	_, err := a.Run()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, render.ErrUnknownFilter))
}

func TestFileLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := app.NewFileLogger(&buf)
	app.SetLoggerClock(logger, func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) })

	logger.Infof("source", "decoded %s", "logo.png")
	logger.Errorf("app", "write failed: %d", 3)

	gt.Equal(t, buf.String(), "2026-10-17T09:30:00Z [INFO] source: decoded logo.png\n"+
		"2026-10-17T09:30:00Z [ERROR] app: write failed: 3\n")
}

func TestRunLogsToLogger(t *testing.T) {
	dir := t.TempDir()
	writeLogo(t, dir)
	var logBuf bytes.Buffer
	a := newApp(dir, &bytes.Buffer{})
	a.Logger = app.NewFileLogger(&logBuf)

	_, err := a.Run()
	gt.NoError(t, err).Required()
	gt.True(t, strings.Contains(logBuf.String(), "[INFO] source: decoded "))
	gt.True(t, strings.Contains(logBuf.String(), "[INFO] app: wrote "+filepath.Join(dir, "splash.png")+" (1284x2778)"))
}
