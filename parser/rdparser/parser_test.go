package rdparser

import (
	"strings"
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser/lexer"
	"github.com/TK-A369/tk-lisp-test-1/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) []*token.Token {
	t.Helper()
	lex := lexer.New(token.NewScanner("test", strings.NewReader(source)))
	var toks []*token.Token
	for {
		tok := lex.NextToken()
		require.NotEqual(t, token.ERROR, tok.Type, tok.Text)
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestParserFromTokens(t *testing.T) {
	toks := scan(t, `(let (s "ab") (print s))`)
	p := New(NewTokenSliceSource(toks))
	v, err := p.ParseProgram()
	require.NoError(t, err)
	assert.Equal(t, "(let (s (list 97 98)) (print s))", v.String())
	assert.True(t, p.AtEOF())
}

func TestParseExpressionSequence(t *testing.T) {
	p := NewFromScanner(token.NewScanner("test", strings.NewReader("1 (a) ; c\n b")))
	var out []string
	for !p.AtEOF() {
		v, err := p.ParseExpression()
		require.NoError(t, err)
		out = append(out, v.String())
	}
	assert.Equal(t, []string{"1", "(a)", "b"}, out)
}

func TestTokenSliceSource(t *testing.T) {
	src := NewTokenSliceSource(nil)
	assert.Equal(t, token.EOF, src.NextToken().Type)
	assert.Equal(t, token.EOF, src.NextToken().Type)

	// a missing EOF token is supplied by the source.
	toks := scan(t, "(a)")
	p := New(NewTokenSliceSource(toks[:len(toks)-1]))
	v, err := p.ParseProgram()
	require.NoError(t, err)
	assert.Equal(t, "(a)", v.String())

	p = New(NewTokenSliceSource(toks[:2]))
	_, err = p.ParseProgram()
	assert.ErrorIs(t, err, lisp.ErrParse)
}

func TestReader(t *testing.T) {
	r := NewReader()
	v, err := r.Read("test", strings.NewReader("(+ 1 2)"))
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", v.String())
	_, err = r.Read("test", strings.NewReader("(+ 1 2"))
	assert.ErrorIs(t, err, lisp.ErrParse)
}
