package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rook-computer/iconsmith/internal/system"
)

func TestRedirectStdIOEmptyPath(t *testing.T) {
	stdout := os.Stdout
	gt.NoError(t, system.RedirectStdIO(""))
	gt.True(t, os.Stdout == stdout)
}

func TestRedirectStdIOUnopenablePath(t *testing.T) {
	// The target is a directory, so nothing gets redirected.
	dir := t.TempDir()
	gt.NoError(t, os.Mkdir(filepath.Join(dir, "log"), 0o755)).Required()

	gt.Error(t, system.RedirectStdIO(filepath.Join(dir, "log")))
}
