// Package fail implements the single fatal-error sink: load-time
// violations, resource exhaustion, and invariant breaches are all
// bugs-or-unrecoverable-input, never a recoverable error path. Library
// packages (codec, sokoban, npuzzle, plank, domain, and the engine/*
// packages) never call os.Exit; only a cmd/ main calls Fatal.
package fail

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
)

// Wrap annotates err with msg and a captured stack trace, the way
// xtaci/kcp-go wraps its error paths with github.com/pkg/errors before
// they reach a log call. Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	return errors.Wrap(err, msg)
}

// Fatal prints a one-line diagnostic (with a %+v stack trace if err was
// produced via Wrap) and exits the process with status 1. It is the
// only function in this module allowed to call os.Exit.
func Fatal(err error) {
	if err == nil {
		return
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	fmt.Fprintf(os.Stderr, "fatal: %+v\n", err)
	os.Exit(1)
}

// Fatalf wraps fmt.Errorf(format, args...) and calls Fatal.
func Fatalf(format string, args ...interface{}) {
	Fatal(errors.Errorf(format, args...))
}
