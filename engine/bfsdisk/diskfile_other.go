//go:build !unix

package bfsdisk

import "os"

// fallocateHint is a no-op on platforms without a native preallocation
// syscall reachable via golang.org/x/sys/unix; the out-buffer flush
// path works identically without it, just without the contiguous-layout
// hint.
func fallocateHint(f *os.File, n int64) {}
