package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rook-computer/iconsmith/internal/config"
	"github.com/rook-computer/iconsmith/internal/icongen"
	"github.com/rook-computer/iconsmith/internal/preview"
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/source"
)

var ErrSourceMissing = errors.New("source logo not found")

// NextStep is printed after a successful run.
const NextStep = "eas build --platform android --profile preview"

type App struct {
	Config config.Config
	Out    io.Writer
	Logger Logger
}

func New(cfg config.Config) *App {
	return &App{Config: cfg, Out: os.Stdout, Logger: NoopLogger{}}
}

// Artifact is a file written by Run.
type Artifact struct {
	Rule icongen.Rule
	Path string
}

// Run generates every artifact in order. Nothing is written when the logo
// is missing or cannot be decoded; a failure while writing leaves earlier
// artifacts in place.
func (app *App) Run() ([]Artifact, error) {
	if app.Out == nil {
		app.Out = io.Discard
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if err := app.Config.Validate(); err != nil {
		return nil, err
	}
	rs, err := render.NewResampler(app.Config.Filter)
	if err != nil {
		return nil, err
	}

	logoPath := app.Config.LogoPath()
	app.printf("Generating app icons...\n")
	app.printf("Assets dir: %s\n", app.Config.AssetsDir)

	exists, err := source.Exists(logoPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		app.printf("ERROR: %s not found!\n", logoPath)
		app.Logger.Errorf("app", "logo missing at %s", logoPath)
		return nil, goerr.Wrap(ErrSourceMissing, "cannot generate icons", goerr.V("path", logoPath))
	}

	app.printf("\nLoading logo: %s\n", logoPath)
	logo, err := source.Load(logoPath)
	if err != nil {
		app.Logger.Errorf("source", "decode failed: %v", err)
		return nil, err
	}
	defer logo.Release()
	size := logo.Size()
	app.printf("Original size: %dx%d (%s)\n", size.X, size.Y, logo.Format)
	app.Logger.Infof("source", "decoded %s as %s %dx%d, filter=%s", logoPath, logo.Format, size.X, size.Y, app.Config.Filter)

	app.printf("\nCreating icons...\n\n")
	var (
		artifacts []Artifact
		items     []preview.Item
	)
	for _, rule := range icongen.Rules() {
		img, err := icongen.Generate(rule, logo.Image, rs)
		if err != nil {
			return artifacts, err
		}
		path := app.Config.OutputPath(rule.File)
		if err := render.SavePNG(path, img); err != nil {
			app.Logger.Errorf("app", "write %s failed: %v", path, err)
			return artifacts, err
		}
		app.printf("OK - created: %s\n", path)
		app.Logger.Infof("app", "wrote %s (%dx%d)", path, rule.Width, rule.Height)

		artifacts = append(artifacts, Artifact{Rule: rule, Path: path})
		if app.Config.Preview {
			items = append(items, preview.Item{Label: rule.File, Image: img})
		}
	}

	if app.Config.Preview {
		path := app.Config.OutputPath(config.PreviewFile)
		if err := app.writePreview(path, items); err != nil {
			return artifacts, err
		}
		app.printf("OK - created: %s\n", path)
	}

	app.printSummary(artifacts)
	return artifacts, nil
}

func (app *App) writePreview(path string, items []preview.Item) error {
	if err := render.SavePNG(path, preview.Sheet(items, app.Logger)); err != nil {
		app.Logger.Errorf("preview", "write %s failed: %v", path, err)
		return err
	}
	return nil
}

func (app *App) printSummary(artifacts []Artifact) {
	app.printf("\nOK - all icons generated successfully!\n")
	app.printf("\nFiles created:\n")
	for _, a := range artifacts {
		app.printf("   - %s (%dx%d) - %s\n", a.Rule.File, a.Rule.Width, a.Rule.Height, a.Rule.Description)
	}
	app.printf("\nNext step: %s\n", NextStep)
}

func (app *App) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(app.Out, format, args...)
}
