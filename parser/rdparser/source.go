package rdparser

import (
	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

// TokenSource produces the token stream consumed by a Parser.  After the end
// of input a TokenSource must return EOF tokens indefinitely.
type TokenSource interface {
	NextToken() *token.Token
}

// errSource is implemented by token sources that can explain ERROR tokens.
type errSource interface {
	Err() error
}

// TokenSliceSource is a TokenSource reading from a pre-scanned token
// sequence, such as one produced by parser.Tokenize.
type TokenSliceSource struct {
	tokens []*token.Token
	eof    *token.Token
}

// NewTokenSliceSource initializes and returns a new TokenSliceSource that
// yields tokens in order.  Tokens following an EOF token are never produced.
func NewTokenSliceSource(tokens []*token.Token) *TokenSliceSource {
	return &TokenSliceSource{tokens: tokens}
}

// NextToken implements TokenSource.
func (s *TokenSliceSource) NextToken() *token.Token {
	if s.eof != nil {
		return s.eof
	}
	if len(s.tokens) == 0 {
		s.eof = &token.Token{Type: token.EOF}
		return s.eof
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	if tok.Type == token.EOF {
		s.eof = tok
	}
	return tok
}
