package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rook-computer/iconsmith/internal/render"
)

const (
	EnvAssetsDir = "ICONSMITH_ASSETS_DIR"
	EnvFilter    = "ICONSMITH_FILTER"
	EnvPreview   = "ICONSMITH_PREVIEW"
	EnvStdioLog  = "ICONSMITH_STDIO_LOG"

	DefaultAssetsDir = "assets"
	LogoFile         = "logo.png"
	PreviewFile      = "icon-preview.png"
	DebugLogFile     = "./iconsmith-debug.log"
)

// Config holds the settings of one generation run. The zero-argument
// invocation uses DefaultFromEnv with no environment set.
type Config struct {
	AssetsDir string
	Filter    string
	Preview   bool
	Debug     bool
	StdioLog  string
}

func DefaultFromEnv() (Config, error) {
	cfg := Config{
		AssetsDir: DefaultAssetsDir,
		Filter:    render.DefaultFilter,
	}
	if dir := os.Getenv(EnvAssetsDir); dir != "" {
		cfg.AssetsDir = dir
	}
	if filter := os.Getenv(EnvFilter); filter != "" {
		cfg.Filter = filter
	}
	if raw := os.Getenv(EnvPreview); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, goerr.Wrap(err, EnvPreview+" must be a boolean", goerr.V("value", raw))
		}
		cfg.Preview = parsed
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.AssetsDir) == "" {
		return goerr.New("assets dir must not be empty")
	}
	if _, err := render.NewResampler(c.Filter); err != nil {
		return goerr.Wrap(err, "invalid filter", goerr.V("available", strings.Join(render.Filters(), ", ")))
	}
	return nil
}

// LogoPath is the source logo inside the assets dir.
func (c Config) LogoPath() string { return filepath.Join(c.AssetsDir, LogoFile) }

// OutputPath places an artifact file next to the logo.
func (c Config) OutputPath(name string) string { return filepath.Join(c.AssetsDir, name) }
