// Package lisptest runs lisp programs and expression sequences as go tests.
package lisptest

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser"
)

// Runner is a test runner.
type Runner struct {
	// NewReader constructs the reader used to parse test programs.  When
	// NewReader is nil parser.NewReader is used.
	NewReader func() lisp.Reader
}

// NewRuntime returns a runtime which reads from stdin and writes to stdout.
func (r *Runner) NewRuntime(stdin string, stdout *bytes.Buffer) (*lisp.Runtime, error) {
	newReader := r.NewReader
	if newReader == nil {
		newReader = parser.NewReader
	}
	rt, err := lisp.NewRuntime(
		lisp.WithReader(newReader()),
		lisp.WithStdin(strings.NewReader(stdin)),
		lisp.WithStdout(stdout),
		lisp.WithStderr(ioutil.Discard),
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to initialize lisp runtime: %v", err)
	}
	return rt, nil
}

// RunTestFile evaluates the program at path.  If a file with the same name
// and the extension ".in" exists its contents are supplied as stdin.  The
// program's output must match the contents of the file with extension
// ".out".
func (r *Runner) RunTestFile(t *testing.T, path string) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		t.Errorf("Unable to read test file: %v", err)
		return
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	stdin, err := ioutil.ReadFile(base + ".in")
	if err != nil && !os.IsNotExist(err) {
		t.Errorf("Unable to read test input: %v", err)
		return
	}
	expect, err := ioutil.ReadFile(base + ".out")
	if err != nil {
		t.Errorf("Unable to read expected test output: %v", err)
		return
	}

	var stdout bytes.Buffer
	rt, err := r.NewRuntime(string(stdin), &stdout)
	if err != nil {
		t.Error(err.Error())
		return
	}
	_, err = rt.Load(filepath.Base(path), bytes.NewReader(source))
	if err != nil {
		t.Error(err.Error())
		var lerr *lisp.Error
		if errors.As(err, &lerr) && lerr.Stack != nil {
			var buf bytes.Buffer
			lerr.Stack.DebugPrint(&buf)
			t.Error(buf.String())
		}
		return
	}
	if stdout.String() != string(expect) {
		t.Errorf("%s: unexpected output\nexpected:\n%s\ngot:\n%s", path, expect, stdout.String())
	}
}

// RunTestFiles runs every file matching pattern as a subtest.
func (r *Runner) RunTestFiles(t *testing.T, pattern string) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("Failed to list test files: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("No test files match %s", pattern)
	}
	for _, path := range files {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			r.RunTestFile(t, path)
		})
	}
}

// TestSequence is a sequence of lisp programs which are evaluated
// sequentially by one lisp.Runtime.  Each program starts with an empty
// environment but the runtime's stdin is shared.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result, or Err(kind)
	Output string // text written to stdout
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name  string
	Stdin string
	TestSequence
}

// Err returns the Result string expected for a program failing with kind.
func Err(kind lisp.ErrorKind) string {
	return "#<" + kind.String() + ">"
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.Runtimes.
func RunTestSuite(t *testing.T, tests TestSuite) {
	var r Runner
	for i, test := range tests {
		var stdout bytes.Buffer
		rt, err := r.NewRuntime(test.Stdin, &stdout)
		if err != nil {
			t.Fatal(err)
		}
		for j, expr := range test.TestSequence {
			stdout.Reset()
			var result string
			v, err := rt.LoadString(fmt.Sprintf("test%d", j), expr.Expr)
			if err != nil {
				result = Err(lisp.KindOf(err))
			} else {
				result = v.String()
			}
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s; err %v)", i, test.Name, j, expr.Result, result, err)
			}
			if stdout.String() != expr.Output {
				t.Errorf("test %d %q: expr %d: expected output %q (got %q)", i, test.Name, j, expr.Output, stdout.String())
			}
		}
	}
}

// BenchmarkParse returns a benchmark function that parses the program at path.
func BenchmarkParse(path string, newReader func() lisp.Reader) func(*testing.B) {
	return func(b *testing.B) {
		source, err := ioutil.ReadFile(path)
		if err != nil {
			b.Fatalf("Unable to read test file: %v", err)
		}
		reader := newReader()
		b.SetBytes(int64(len(source)))
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, err := reader.Read(filepath.Base(path), bytes.NewReader(source))
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
