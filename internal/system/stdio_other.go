//go:build !unix

package system

import "os"

// Without dup2 only writes through os.Stdout and os.Stderr are captured;
// runtime panic output still goes to the original stderr.
func attach(f *os.File) error {
	os.Stdout = f
	os.Stderr = f
	return nil
}
