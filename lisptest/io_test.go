package lisptest

import (
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
)

func TestPrint(t *testing.T) {
	tests := TestSuite{
		{"print", "", TestSequence{
			{`(print "Hi\n")`, "()", "Hi\n"},
			{`(print 3 " " 2.5 "\n")`, "()", "3 2.5\n"},
			{"(print (list 72 105))", "()", "Hi"},
			{`(print "tab\there \"quoted\"\r\n")`, "()", "tab\there \"quoted\"\r\n"},
			{`(print "héllo, 世界")`, "()", "héllo, 世界"},
			{`(let (s "ok") (print s))`, "()", "ok"},
			{`(print "")`, "()", ""},
			{"(print -0.125)", "()", "-0.125"},
		}},
		{"print errors", "", TestSequence{
			{"(print)", Err(lisp.InvalidForm), ""},
			{"(print (quote a))", Err(lisp.InvalidForm), ""},
			// operands are written as they are evaluated.
			{`(print "a" (quote b))`, Err(lisp.InvalidForm), "a"},
			{"(print (quote (72 a)))", Err(lisp.InvalidForm), "H"},
			{"(print undefined)", Err(lisp.UnboundVariable), ""},
		}},
	}
	RunTestSuite(t, tests)
}

func TestReadnum(t *testing.T) {
	tests := TestSuite{
		{"readnum", "42\n 3.5 \nabc\n", TestSequence{
			{"(readnum)", "42", ""},
			{"(+ (readnum) 1)", "4.5", ""},
			{"(readnum)", Err(lisp.IOError), ""},
			{"(readnum)", Err(lisp.IOError), ""},
		}},
		{"final line without newline", "7", TestSequence{
			{"(readnum)", "7", ""},
			{"(readnum)", Err(lisp.IOError), ""},
		}},
		{"operands", "1\n", TestSequence{
			{"(readnum 1)", Err(lisp.InvalidForm), ""},
			{"(readnum)", "1", ""},
		}},
	}
	RunTestSuite(t, tests)
}
