// Package system holds the few OS hooks the generator needs.
package system

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// RedirectStdIO appends everything written to stdout and stderr, including
// panic traces where the platform allows it, to the file at path. An empty
// path is a no-op.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create stdio log dir", goerr.V("path", path))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open stdio log", goerr.V("path", path))
	}
	if err := attach(f); err != nil {
		_ = f.Close()
		return goerr.Wrap(err, "failed to redirect stdio", goerr.V("path", path))
	}
	return nil
}
