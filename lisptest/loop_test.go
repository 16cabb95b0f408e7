package lisptest

import (
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
)

func TestWhile(t *testing.T) {
	tests := TestSuite{
		{"while", "", TestSequence{
			{"(let (x 3) (while (> x 0) (set x (+ x -1))))", "0", ""},
			{"(let (x 0) (while (> x 0) (set x (+ x -1))))", "()", ""},
			{"(let (i 0) (s 0) ((while (< i 5) ((set s (+ s i)) (set i (+ i 1)))) s))", "10", ""},
			{"(let (i 0) (while (< i 3) ((print i) (set i (+ i 1)) (quote done))))", "done", "012"},
			{"(while 0 undefined)", "()", ""},
			{"(while 1)", Err(lisp.InvalidForm), ""},
			{"(while 1 2 3)", Err(lisp.InvalidForm), ""},
			{"(let (i 0) (while (< i 3) (set i (+ i undefined))))", Err(lisp.UnboundVariable), ""},
		}},
	}
	RunTestSuite(t, tests)
}
