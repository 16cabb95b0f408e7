package lisp

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Reader parses the program contained in a source stream.  A program is a
// single expression.
type Reader interface {
	Read(name string, r io.Reader) (*LVal, error)
}

// Runtime holds the state shared by every environment of an evaluation: the
// input and output streams used by print and readnum, the reader used to
// load source code, a logger and the call stack.
type Runtime struct {
	Reader Reader
	Stdin  *bufio.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Stack  *CallStack
}

// NewRuntime returns a Runtime configured by config.
func NewRuntime(config ...Config) (*Runtime, error) {
	rt := newRuntime()
	for _, fn := range config {
		err := fn(rt)
		if err != nil {
			return nil, err
		}
	}
	return rt, nil
}

func newRuntime() *Runtime {
	return &Runtime{
		Stdin:  bufio.NewReader(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: discardLogger(),
		Stack:  &CallStack{},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewEnv returns an empty environment evaluating with rt.
func (rt *Runtime) NewEnv() *LEnv {
	return NewEnv(rt)
}

// Eval evaluates v in a new empty environment and returns the resolved
// result.
func (rt *Runtime) Eval(v *LVal) (*LVal, error) {
	rt.Stack = &CallStack{}
	result, err := rt.NewEnv().Eval(v)
	if err != nil {
		return nil, err
	}
	return result.Resolve(), nil
}

// Load reads a program from r using the runtime's Reader and evaluates it.
func (rt *Runtime) Load(name string, r io.Reader) (*LVal, error) {
	if rt.Reader == nil {
		return nil, fmt.Errorf("no reader configured for runtime")
	}
	expr, err := rt.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	rt.Logger.Debug("program parsed", "source", name)
	return rt.Eval(expr)
}

// LoadString evaluates the program contained in source.
func (rt *Runtime) LoadString(name string, source string) (*LVal, error) {
	return rt.Load(name, strings.NewReader(source))
}

// LoadFile evaluates the program stored at path.
func (rt *Runtime) LoadFile(path string) (*LVal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rt.Load(filepath.Base(path), f)
}
