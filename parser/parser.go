// Package parser provides a lisp parser.
//
//	expr     := '(' <expr>* ')' | <number> | <string> | <symbol>
//	number   := <sign>? <digit>+ <fraction>?
//	fraction := '.' <digit>+
//	string   := '"' (<char> | '\' [nrt"])* '"'
//	symbol   := <word-start> <word>*
//	comment  := ';' <any char except newline>*
//
// A word-start rune is a letter or one of _+-*/<>=!?%&.  A word rune is a
// word-start rune or a digit.
//
// A program is exactly one expression.  String literals are rewritten into
// (list c1 c2 ...) expressions of character codes.
package parser

import (
	"errors"
	"io"
	"strings"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser/lexer"
	"github.com/TK-A369/tk-lisp-test-1/parser/rdparser"
	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

// NewReader returns a lisp.Reader that parses programs.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// Parse parses the program read from r.
func Parse(name string, r io.Reader) (*lisp.LVal, error) {
	return NewReader().Read(name, r)
}

// ParseString parses the program contained in source.
func ParseString(name string, source string) (*lisp.LVal, error) {
	return Parse(name, strings.NewReader(source))
}

// Tokenize scans r and returns the complete token sequence, terminated by an
// EOF token.  Tokenize returns a LexError if the text cannot be scanned.
func Tokenize(name string, r io.Reader) ([]*token.Token, error) {
	lex := lexer.New(token.NewScanner(name, r))
	var tokens []*token.Token
	for {
		tok := lex.NextToken()
		switch tok.Type {
		case token.ERROR, token.INVALID:
			cause := lex.Err()
			if cause == nil {
				cause = errors.New(tok.Text)
			}
			err := lisp.WrapError(lisp.LexError, cause, "")
			err.Source = tok.Source
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

// IsIncomplete returns true if err was caused by input ending in the middle of
// an expression.  More input may allow parsing to succeed.
func IsIncomplete(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}
