package bfsdisk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// GenFileName renders the GEN-DDDD name for generation g. Exported so
// engine/bfsparallel can address the same directory layout without
// duplicating the naming scheme.
func GenFileName(dir string, g int) string {
	return filepath.Join(dir, fmt.Sprintf("GEN-%04d", g))
}

func genFileName(dir string, g int) string { return GenFileName(dir, g) }

// GenWriter appends state_size-byte records to a generation file,
// flushing in out-buffer-sized chunks via a bufio.Writer.
type GenWriter struct {
	f *os.File
	w *bufio.Writer
}

// CreateGenFile creates (or truncates) the frontier file for generation
// g under dir, best-effort preallocating hintBytes of disk space via
// fallocateHint, and returns a writer that batches appends into
// bufBytes-sized flushes.
func CreateGenFile(dir string, g int, bufBytes int, hintBytes int64) (*GenWriter, error) {
	f, err := os.Create(genFileName(dir, g))
	if err != nil {
		return nil, errors.Wrap(err, "bfsdisk: create generation file")
	}
	if hintBytes > 0 {
		fallocateHint(f, hintBytes)
	}
	if bufBytes < 1 {
		bufBytes = 1 << 16
	}

	return &GenWriter{f: f, w: bufio.NewWriterSize(f, bufBytes)}, nil
}

// Append adds one encoded state to the out-buffer.
func (w *GenWriter) Append(state []byte) error {
	if _, err := w.w.Write(state); err != nil {
		return errors.Wrap(err, "bfsdisk: append to generation file")
	}

	return nil
}

// Flush writes any buffered records to disk.
func (w *GenWriter) Flush() error {
	return w.w.Flush()
}

// Close flushes and closes the underlying file.
func (w *GenWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}

	return w.f.Close()
}

// GenReader reads a generation file linearly, one state_size-byte
// record at a time, through a bufio.Reader sized to the in-buffer
// budget.
type GenReader struct {
	f         *os.File
	r         *bufio.Reader
	stateSize int
	rec       []byte
}

// OpenGenFile opens the frontier file for generation g under dir for
// linear reading. Returns the error from os.Open (use os.IsNotExist to
// detect a generation that was never created, which callers treat as
// an empty generation).
func OpenGenFile(dir string, g int, stateSize int, chunkBytes int) (*GenReader, error) {
	f, err := os.Open(genFileName(dir, g))
	if err != nil {
		return nil, err
	}
	if chunkBytes < stateSize {
		chunkBytes = 1 << 16
	}

	return &GenReader{
		f:         f,
		r:         bufio.NewReaderSize(f, chunkBytes),
		stateSize: stateSize,
		rec:       make([]byte, stateSize),
	}, nil
}

// Next returns the next encoded state, or ok=false at end of file. The
// returned slice aliases the reader's internal record buffer and is
// only valid until the next call to Next.
func (r *GenReader) Next() (state []byte, ok bool, err error) {
	_, err = io.ReadFull(r.r, r.rec)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "bfsdisk: read generation file")
	}

	return r.rec, true, nil
}

// Close closes the underlying file.
func (r *GenReader) Close() error {
	return r.f.Close()
}
