package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rook-computer/iconsmith/internal/app"
	"github.com/rook-computer/iconsmith/internal/config"
	"github.com/rook-computer/iconsmith/internal/render"
	"github.com/rook-computer/iconsmith/internal/system"
)

func main() {
	defaults, err := config.DefaultFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	// Flags; every one defaults to the fixed assets/logo.png behavior.
	assetsDir := flag.String("assets", defaults.AssetsDir, "directory holding logo.png and receiving the generated files; also configurable via "+config.EnvAssetsDir)
	filter := flag.String("filter", defaults.Filter, "resampling filter ("+strings.Join(render.Filters(), ", ")+"); also configurable via "+config.EnvFilter)
	previewSheet := flag.Bool("preview", defaults.Preview, "also write "+config.PreviewFile+" with all artifacts side by side; also configurable via "+config.EnvPreview)
	debug := flag.Bool("debug", false, "enable debug logging to "+config.DebugLogFile)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	cfg := config.Config{
		AssetsDir: *assetsDir,
		Filter:    *filter,
		Preview:   *previewSheet,
		Debug:     *debug,
		StdioLog:  *stdioLog,
	}

	if cfg.StdioLog != "" {
		if err := system.RedirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(config.DebugLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New(cfg)
	a.Logger = logger
	if _, err := a.Run(); err != nil {
		// The missing-logo case has already been reported on stdout.
		if !errors.Is(err, app.ErrSourceMissing) {
			fmt.Println("icon generation failed:", err)
		}
		os.Exit(1)
	}
}
