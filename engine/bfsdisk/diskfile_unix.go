//go:build unix

package bfsdisk

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateHint best-effort preallocates n bytes for f so the
// filesystem can lay the generation file out contiguously ahead of the
// linear-append writes that follow. Failure is silently ignored: this
// is a performance hint, not a correctness requirement, and not every
// filesystem supports fallocate.
func fallocateHint(f *os.File, n int64) {
	_ = unix.Fallocate(int(f.Fd()), 0, 0, n)
}
