package rdparser

import (
	"errors"
	"io"
	"strconv"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser/lexer"
	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) (*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := NewFromScanner(s)
	return p.ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	src  TokenSource
	curr *token.Token
	peek *token.Token
}

// New initializes and returns a new Parser that reads tokens from src.
func New(src TokenSource) *Parser {
	p := &Parser{
		src: src,
	}
	p.initTokens()
	return p
}

// NewFromScanner initializes and returns a new Parser that lexes tokens from
// scanner.
func NewFromScanner(scanner *token.Scanner) *Parser {
	return New(lexer.New(scanner))
}

func (p *Parser) initTokens() {
	// Setup the peek token so the parser is in the proper state when the first
	// parse function is called.
	p.ReadToken()
}

// ParseProgram parses a complete program, which must consist of exactly one
// expression.
func (p *Parser) ParseProgram() (*lisp.LVal, error) {
	p.skipComments()
	if p.PeekType() == token.EOF {
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "empty expression")
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	p.skipComments()
	switch p.PeekType() {
	case token.EOF:
		return expr, nil
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.scanError()
	default:
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "unexpected %s after top-level expression", p.PeekType())
	}
}

// ParseExpression parses the next expression in the token stream.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	p.skipComments()
	switch p.PeekType() {
	case token.NUMBER:
		return p.ParseLiteralNumber()
	case token.STRING:
		return p.ParseLiteralString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.PAREN_L:
		return p.ParseList()
	case token.EOF:
		return nil, p.wrapErrorAt(p.Peek(), lisp.ParseError, io.ErrUnexpectedEOF, "expected expression")
	case token.ERROR, token.INVALID:
		p.ReadToken()
		return nil, p.scanError()
	default:
		p.ReadToken()
		return nil, p.errorAt(p.Token(), lisp.ParseError, "unexpected %s", p.Token().Type)
	}
}

// AtEOF returns true when no expressions remain in the token stream.
func (p *Parser) AtEOF() bool {
	p.skipComments()
	return p.PeekType() == token.EOF
}

func (p *Parser) ParseLiteralNumber() (*lisp.LVal, error) {
	if !p.expect(token.NUMBER) {
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "invalid number literal: %v", p.PeekType())
	}
	text := p.Token().Text
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorAt(p.Token(), lisp.LexError, "malformed numeral: %v", text)
	}
	return p.tokenLVal(lisp.Number(x)), nil
}

// ParseLiteralString parses a string literal as the expression
// (list c1 c2 ...) where ci is the code point of the i-th character.
func (p *Parser) ParseLiteralString() (*lisp.LVal, error) {
	if !p.expect(token.STRING) {
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "invalid string literal: %v", p.PeekType())
	}
	text := p.Token().Text
	cells := make([]*lisp.LVal, 0, len(text)+1)
	cells = append(cells, p.tokenLVal(lisp.Symbol("list")))
	for _, c := range text {
		cells = append(cells, p.tokenLVal(lisp.Number(float64(c))))
	}
	return p.tokenLVal(lisp.SExpr(cells)), nil
}

func (p *Parser) ParseSymbol() (*lisp.LVal, error) {
	if !p.expect(token.SYMBOL) {
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "invalid symbol: %v", p.PeekType())
	}
	return p.tokenLVal(lisp.Symbol(p.Token().Text)), nil
}

func (p *Parser) ParseList() (*lisp.LVal, error) {
	if !p.expect(token.PAREN_L) {
		return nil, p.errorAt(p.Peek(), lisp.ParseError, "invalid list: %v", p.PeekType())
	}
	open := p.Token()
	var cells []*lisp.LVal
	for {
		p.skipComments()
		if p.PeekType() == token.EOF {
			return nil, p.wrapErrorAt(open, lisp.ParseError, io.ErrUnexpectedEOF, "list not closed by right parenthesis")
		}
		if p.expect(token.PAREN_R) {
			break
		}
		x, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		cells = append(cells, x)
	}
	expr := lisp.SExpr(cells)
	expr.Source = open.Source
	return expr, nil
}

func (p *Parser) ReadToken() *token.Token {
	p.curr = p.peek
	p.peek = p.src.NextToken()
	return p.curr
}

func (p *Parser) Token() *token.Token {
	return p.curr
}

func (p *Parser) Peek() *token.Token {
	return p.peek
}

func (p *Parser) PeekType() token.Type {
	return p.peek.Type
}

func (p *Parser) skipComments() {
	for p.expect(token.COMMENT) {
	}
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	v.Source = p.Token().Source
	return v
}

func (p *Parser) expect(typ ...token.Type) bool {
	peekType := p.peek.Type
	for _, typ := range typ {
		if typ == peekType {
			p.ReadToken()
			return true
		}
	}
	return false
}

// scanError converts the current ERROR token into a LexError.
func (p *Parser) scanError() error {
	tok := p.Token()
	var cause error
	if s, ok := p.src.(errSource); ok {
		cause = s.Err()
	}
	if cause == nil {
		cause = errors.New(tok.Text)
	}
	return p.wrapErrorAt(tok, lisp.LexError, cause, "")
}

func (p *Parser) errorAt(tok *token.Token, kind lisp.ErrorKind, format string, v ...interface{}) error {
	err := lisp.Errorf(kind, format, v...)
	err.Source = tok.Source
	return err
}

func (p *Parser) wrapErrorAt(tok *token.Token, kind lisp.ErrorKind, cause error, format string, v ...interface{}) error {
	err := lisp.WrapError(kind, cause, format, v...)
	err.Source = tok.Source
	return err
}
