package lexer

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/TK-A369/tk-lisp-test-1/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expectTok struct {
	typ  token.Type
	text string
}

func lexAll(t *testing.T, source string) ([]*token.Token, *Lexer) {
	t.Helper()
	lex := New(token.NewScanner("test", strings.NewReader(source)))
	var toks []*token.Token
	for i := 0; ; i++ {
		require.True(t, i < 1000, "lexer did not terminate")
		tok := lex.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ERROR {
			return toks, lex
		}
	}
}

func assertTokens(t *testing.T, expect []expectTok, toks []*token.Token) {
	t.Helper()
	if !assert.Len(t, toks, len(expect)) {
		return
	}
	for i := range expect {
		assert.Equal(t, expect[i].typ, toks[i].Type, "token %d", i)
		assert.Equal(t, expect[i].text, toks[i].Text, "token %d", i)
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name   string
		source string
		expect []expectTok
	}{
		{"empty", "", []expectTok{
			{token.EOF, ""},
		}},
		{"whitespace", " \t\n ", []expectTok{
			{token.EOF, ""},
		}},
		{"list", "(print \"a\\n\" -3 x1)", []expectTok{
			{token.PAREN_L, "("},
			{token.SYMBOL, "print"},
			{token.STRING, "a\n"},
			{token.NUMBER, "-3"},
			{token.SYMBOL, "x1"},
			{token.PAREN_R, ")"},
			{token.EOF, ""},
		}},
		{"numbers", "0 42 +7 -0.5 3.25", []expectTok{
			{token.NUMBER, "0"},
			{token.NUMBER, "42"},
			{token.NUMBER, "+7"},
			{token.NUMBER, "-0.5"},
			{token.NUMBER, "3.25"},
			{token.EOF, ""},
		}},
		{"operators", "+ - >= <= = < > -x lambda-captured", []expectTok{
			{token.SYMBOL, "+"},
			{token.SYMBOL, "-"},
			{token.SYMBOL, ">="},
			{token.SYMBOL, "<="},
			{token.SYMBOL, "="},
			{token.SYMBOL, "<"},
			{token.SYMBOL, ">"},
			{token.SYMBOL, "-x"},
			{token.SYMBOL, "lambda-captured"},
			{token.EOF, ""},
		}},
		{"adjacent parens", "((a)(b))", []expectTok{
			{token.PAREN_L, "("},
			{token.PAREN_L, "("},
			{token.SYMBOL, "a"},
			{token.PAREN_R, ")"},
			{token.PAREN_L, "("},
			{token.SYMBOL, "b"},
			{token.PAREN_R, ")"},
			{token.PAREN_R, ")"},
			{token.EOF, ""},
		}},
		{"comments", "; head\n(a ; tail\n) ;end", []expectTok{
			{token.COMMENT, "; head"},
			{token.PAREN_L, "("},
			{token.SYMBOL, "a"},
			{token.COMMENT, "; tail"},
			{token.PAREN_R, ")"},
			{token.COMMENT, ";end"},
			{token.EOF, ""},
		}},
		{"strings", `"" "q\"q" "\t\r" "héllo"`, []expectTok{
			{token.STRING, ""},
			{token.STRING, `q"q`},
			{token.STRING, "\t\r"},
			{token.STRING, "héllo"},
			{token.EOF, ""},
		}},
		{"unexpected character", "(a #b)", []expectTok{
			{token.PAREN_L, "("},
			{token.SYMBOL, "a"},
			{token.ERROR, "unexpected character '#'"},
		}},
		{"number followed by letters", "12abc", []expectTok{
			{token.ERROR, "malformed numeral: 12abc"},
		}},
		{"trailing dot", "1.", []expectTok{
			{token.ERROR, "malformed numeral: 1."},
		}},
		{"two dots", "(1.5.2)", []expectTok{
			{token.PAREN_L, "("},
			{token.ERROR, "malformed numeral: 1.5.2"},
		}},
		{"bad escape", `"a\qb"`, []expectTok{
			{token.ERROR, "invalid escape character 'q'"},
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			toks, _ := lexAll(t, test.source)
			assertTokens(t, test.expect, toks)
		})
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	for _, source := range []string{`"abc`, `"abc\`} {
		toks, lex := lexAll(t, source)
		require.NotEmpty(t, toks)
		assert.Equal(t, token.ERROR, toks[len(toks)-1].Type)
		assert.True(t, errors.Is(lex.Err(), io.ErrUnexpectedEOF), source)
	}
}

func TestLexerSticky(t *testing.T) {
	lex := New(token.NewScanner("test", strings.NewReader("a")))
	assert.Equal(t, token.SYMBOL, lex.NextToken().Type)
	for i := 0; i < 3; i++ {
		assert.Equal(t, token.EOF, lex.NextToken().Type)
	}
	assert.NoError(t, lex.Err())

	lex = New(token.NewScanner("test", strings.NewReader("#a")))
	for i := 0; i < 3; i++ {
		assert.Equal(t, token.ERROR, lex.NextToken().Type)
	}
	assert.Error(t, lex.Err())
}

func TestLexerLocations(t *testing.T) {
	toks, _ := lexAll(t, "(a\n  bc)")
	require.Len(t, toks, 5)
	expect := []string{"test:1:1", "test:1:2", "test:2:3", "test:2:5"}
	for i, loc := range expect {
		assert.Equal(t, loc, toks[i].Source.String(), "token %d", i)
	}
}

func TestLexerLongSymbol(t *testing.T) {
	long := strings.Repeat("abcdefgh", 4096)
	toks, _ := lexAll(t, "(x "+long+" y)")
	assertTokens(t, []expectTok{
		{token.PAREN_L, "("},
		{token.SYMBOL, "x"},
		{token.SYMBOL, long},
		{token.SYMBOL, "y"},
		{token.PAREN_R, ")"},
		{token.EOF, ""},
	}, toks)
	assert.Equal(t, "test:1:32773", toks[3].Source.String())
}
