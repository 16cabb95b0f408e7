package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

const miscWordRunes = "0123456789" + miscWordSymbols
const miscWordSymbols = "_+-*/<>=!?%&"

// Lexer converts source text into a stream of tokens.  Lexical errors are
// reported as ERROR tokens whose Text holds the error message.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	readErr error
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// NextToken scans and returns the next token.  Once EOF or ERROR is returned
// subsequent calls continue to return the same condition.
func (lex *Lexer) NextToken() *token.Token {
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readErr = lex.skipWhitespace()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	lex.readChar()
	if lex.readErr != nil {
		return lex.emitError(lex.readErr, true)
	}
	switch lex.ch {
	case '(':
		return lex.charToken(token.PAREN_L)
	case ')':
		return lex.charToken(token.PAREN_R)
	case ';':
		for lex.peekRune() != '\n' {
			err := lex.readChar()
			if err == io.EOF {
				lex.readErr = nil
				return lex.scanner.EmitToken(token.COMMENT)
			}
			if err != nil {
				return lex.emitError(err, false)
			}
		}
		return lex.scanner.EmitToken(token.COMMENT)
	case '"':
		return lex.readString()
	case '-', '+':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		if isWordStart(lex.ch) {
			return lex.readSymbol()
		}
		return lex.errorf("unexpected character %q", lex.ch)
	}
}

// Err returns the error which caused the last ERROR token, or nil.
func (lex *Lexer) Err() error {
	if lex.readErr == io.EOF {
		return nil
	}
	return lex.readErr
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	return lex.scanner.EmitTokenText(typ, text)
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		err = io.ErrUnexpectedEOF
	}
	lex.readErr = err
	return lex.emit(token.ERROR, err.Error())
}

func (lex *Lexer) errorf(format string, v ...interface{}) *token.Token {
	return lex.emitError(fmt.Errorf(format, v...), false)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	return lex.scanner.EmitToken(typ)
}

func (lex *Lexer) readString() *token.Token {
	var buf strings.Builder
	for {
		if err := lex.readChar(); err != nil {
			if err == io.EOF {
				return lex.unterminatedString()
			}
			return lex.emitError(err, false)
		}
		switch lex.ch {
		case '"':
			return lex.emit(token.STRING, buf.String())
		case '\\':
			if err := lex.readChar(); err != nil {
				if err == io.EOF {
					return lex.unterminatedString()
				}
				return lex.emitError(err, false)
			}
			switch lex.ch {
			case 'n':
				buf.WriteByte('\n')
			case 'r':
				buf.WriteByte('\r')
			case 't':
				buf.WriteByte('\t')
			case '"':
				buf.WriteByte('"')
			default:
				return lex.errorf("invalid escape character %q", lex.ch)
			}
		default:
			buf.WriteRune(lex.ch)
		}
	}
}

func (lex *Lexer) unterminatedString() *token.Token {
	return lex.emitError(fmt.Errorf("unterminated string literal: %w", io.ErrUnexpectedEOF), false)
}

func (lex *Lexer) readSymbol() *token.Token {
	for isWord(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

// readNumber scans an optionally signed decimal numeral with an optional
// fraction.  The leading rune (digit or sign) has already been read.
func (lex *Lexer) readNumber() *token.Token {
	for isDigit(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	if lex.peekRune() == '.' {
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
		if !isDigit(lex.peekRune()) {
			return lex.malformedNumber()
		}
		for isDigit(lex.peekRune()) {
			err := lex.readChar()
			if err != nil {
				return lex.emitError(err, false)
			}
		}
	}
	if c := lex.peekRune(); c == '.' || isWord(c) {
		return lex.malformedNumber()
	}
	return lex.scanner.EmitToken(token.NUMBER)
}

// malformedNumber consumes the remainder of a bad numeral so the error
// message shows the offending text.
func (lex *Lexer) malformedNumber() *token.Token {
	for c := lex.peekRune(); c == '.' || isWord(c); c = lex.peekRune() {
		if err := lex.readChar(); err != nil {
			break
		}
	}
	return lex.errorf("malformed numeral: %s", lex.scanner.Text())
}

func (lex *Lexer) skipWhitespace() error {
	for unicode.IsSpace(lex.peekRune()) {
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

// peekRune returns 0 when no further rune can be read.
func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

func isWordStart(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordSymbols, c)
}

func isWord(c rune) bool {
	return unicode.IsLetter(c) || strings.ContainsRune(miscWordRunes, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
