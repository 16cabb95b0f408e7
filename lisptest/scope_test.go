package lisptest

import (
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
)

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"let", "", TestSequence{
			{"(let (x 5) x)", "5", ""},
			{"(let (x 1) (y (+ x 1)) y)", "2", ""},
			{"(let (x 1) (y 2) (+ x y))", "3", ""},
			{"(let (s \"hi\") s)", "(104 105)", ""},
			{"x", Err(lisp.UnboundVariable), ""},
		}},
		{"shadowing", "", TestSequence{
			{"(let (x 1) (let (x 2) x))", "2", ""},
			// the outer binding is unaffected once the inner let returns.
			{"(let (x 1) ((let (x 2) x) x))", "1", ""},
			{"(let (x 1) (x 2) x)", "2", ""},
			// bindings introduced by a nested let vanish with it.
			{"(let (x 1) ((let (y 2) y) y))", Err(lisp.UnboundVariable), ""},
		}},
		{"set", "", TestSequence{
			{"(let (x 1) ((set x 9) x))", "9", ""},
			{"(let (x 1) (set x (+ x 1)))", "2", ""},
			{"(set x 1)", Err(lisp.UnboundVariable), ""},
			{"(let (x 1) (set y 2))", Err(lisp.UnboundVariable), ""},
			{"(set 1 2)", Err(lisp.InvalidForm), ""},
			{"(let (x 1) (set x))", Err(lisp.InvalidForm), ""},
		}},
		{"set through scopes", "", TestSequence{
			// a nested let shares the cells of the enclosing scope.
			{"(let (x 1) ((let (y 2) (set x 5)) x))", "5", ""},
			// set writes the innermost binding of a shadowed name.
			{"(let (x 1) ((let (x 2) (set x 7)) x))", "1", ""},
			{"(let (x 1) (let (x 2) ((set x 7) x)))", "7", ""},
		}},
		{"copy semantics", "", TestSequence{
			// binding one variable to another copies the current value.
			{"(let (x 1) (let (y x) ((set x 2) y)))", "1", ""},
			{"(let (x 1) (y 2) ((set y x) (set x 5) y))", "1", ""},
			{"(let (x 1) ((set x x) x))", "1", ""},
		}},
		{"malformed let", "", TestSequence{
			{"(let x 1)", Err(lisp.InvalidForm), ""},
			{"(let (x) x)", Err(lisp.InvalidForm), ""},
			{"(let (x 1 2) x)", Err(lisp.InvalidForm), ""},
			{"(let (1 2) 3)", Err(lisp.InvalidForm), ""},
			{"(let x)", Err(lisp.InvalidForm), ""},
			{"(let)", Err(lisp.InvalidForm), ""},
		}},
	}
	RunTestSuite(t, tests)
}
