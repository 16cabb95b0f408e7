// Package repl implements an interactive read-eval-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser"
	"github.com/chzyer/readline"
)

// Session accumulates input lines until they form a complete program, which
// is then evaluated.  Every program is evaluated in a new empty environment.
type Session struct {
	Runtime *lisp.Runtime
	// Stack causes the call stack to be printed with runtime errors.
	Stack bool

	buf []byte
	n   int
}

// NewSession returns a Session evaluating programs with rt.
func NewSession(rt *lisp.Runtime) *Session {
	return &Session{Runtime: rt}
}

// Input adds line to the pending program.  If the pending text is an
// incomplete expression Input returns true and further lines are expected.
// Otherwise the program is evaluated, its value or error is written to the
// runtime's stdout and stderr respectively, and the pending text is cleared.
func (s *Session) Input(line []byte) (more bool) {
	if len(s.buf) != 0 {
		s.buf = append(s.buf, '\n')
	}
	s.buf = append(s.buf, line...)
	if len(strings.TrimSpace(string(s.buf))) == 0 {
		s.buf = s.buf[:0]
		return false
	}
	name := fmt.Sprintf("repl%d", s.n)
	expr, err := s.Runtime.Reader.Read(name, strings.NewReader(string(s.buf)))
	if err != nil && parser.IsIncomplete(err) {
		return true
	}
	s.buf = s.buf[:0]
	s.n++
	if err != nil {
		s.printError(err)
		return false
	}
	v, err := s.Runtime.Eval(expr)
	if err != nil {
		s.printError(err)
		return false
	}
	fmt.Fprintln(s.Runtime.Stdout, v)
	return false
}

// Reset discards any pending input.
func (s *Session) Reset() {
	s.buf = s.buf[:0]
}

// Pending returns true if an incomplete expression has been input.
func (s *Session) Pending() bool {
	return len(s.buf) != 0
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.Runtime.Stderr, err)
	var lerr *lisp.Error
	if s.Stack && errors.As(err, &lerr) && lerr.Stack != nil && lerr.Stack.Height() > 0 {
		lerr.Stack.DebugPrint(s.Runtime.Stderr)
	}
}

// RunRepl runs a simple repl
func RunRepl(prompt string, stack bool, config ...lisp.Config) error {
	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()
	contPrompt := strings.Repeat(" ", len(prompt)) // prompt had better be ascii...

	config = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStdout(rl.Stdout()),
		lisp.WithStderr(rl.Stderr()),
	}, config...)
	rt, err := lisp.NewRuntime(config...)
	if err != nil {
		return err
	}
	s := NewSession(rt)
	s.Stack = stack

	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			s.Reset()
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if s.Input(line) {
			rl.SetPrompt(contPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}
