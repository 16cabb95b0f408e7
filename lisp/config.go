package lisp

import (
	"bufio"
	"io"
	"log/slog"
)

// Config is a function that configures a Runtime.
type Config func(rt *Runtime) error

// WithReader returns a Config that makes a runtime use r to parse source
// streams.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(rt *Runtime) error {
		rt.Reader = r
		return nil
	}
}

// WithStdin returns a Config that makes readnum read lines from r instead of
// the default, os.Stdin.
func WithStdin(r io.Reader) Config {
	return func(rt *Runtime) error {
		br, ok := r.(*bufio.Reader)
		if !ok {
			br = bufio.NewReader(r)
		}
		rt.Stdin = br
		return nil
	}
}

// WithStdout returns a Config that makes print write to w instead of the
// default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) error {
		rt.Stdout = w
		return nil
	}
}

// WithStderr returns a Config that makes runtimes write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) error {
		rt.Stderr = w
		return nil
	}
}

// WithLogger returns a Config that makes the evaluator emit diagnostic
// records to logger.  By default records are discarded.
func WithLogger(logger *slog.Logger) Config {
	return func(rt *Runtime) error {
		if logger == nil {
			logger = discardLogger()
		}
		rt.Logger = logger
		return nil
	}
}
