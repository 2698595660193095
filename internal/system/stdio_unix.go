//go:build unix

package system

import (
	"os"

	"golang.org/x/sys/unix"
)

// attach points fds 1 and 2 at f and closes f; the duplicated descriptors
// keep the file open.
func attach(f *os.File) error {
	defer f.Close()
	if err := unix.Dup2(int(f.Fd()), int(os.Stdout.Fd())); err != nil {
		return err
	}
	return unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
}
