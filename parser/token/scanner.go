package token

import (
	"fmt"
	"io"
	"unicode/utf8"
)

const minRead = 512

// Scanner facilitates construction of tokens from a byte stream (io.Reader).
// Bytes preceding the token currently being scanned are discarded as the
// buffer is refilled so arbitrarily long inputs can be scanned.
type Scanner struct {
	file  string
	total int // stream bytes consumed through the current rune
	pos   int // stream offset of the current rune
	line  int // line of the current rune
	col   int // column of the current rune

	r       io.Reader
	readErr error

	buf    []byte
	start  int // start of the current token
	next   int // index of the rune following c
	c      Rune
	tokLoc *Location // location of the first rune in the current token
}

func newScannerBuf(file string, r io.Reader, buf []byte) *Scanner {
	return &Scanner{
		file: file,
		r:    r,
		buf:  buf[:0],
		line: 1,
	}
}

// NewScanner initializes and returns a new Scanner.
func NewScanner(file string, r io.Reader) *Scanner {
	buf := make([]byte, 0, 8<<10)
	return newScannerBuf(file, r, buf)
}

// File returns the name of the source being scanned.
func (s *Scanner) File() string {
	return s.file
}

// EmitToken returns a token containing the text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) EmitToken(typ Type) *Token {
	return s.EmitTokenText(typ, s.Text())
}

// EmitTokenText is like EmitToken but the token carries text instead of the
// raw scanned text.
func (s *Scanner) EmitTokenText(typ Type, text string) *Token {
	tok := &Token{
		Type:   typ,
		Text:   text,
		Source: s.LocStart(),
	}
	s.Ignore()
	return tok
}

// Ignore causes the scanner to skip all text scanned since the last call to
// either EmitToken or Ignore.
func (s *Scanner) Ignore() {
	s.start = s.next
	s.tokLoc = nil
}

// Text returns a string containing text scanned since the last call to either
// EmitToken or Ignore.
func (s *Scanner) Text() string {
	return string(s.buf[s.start:s.next])
}

// Rune returns the current unicode rune that is being scanned.  The rune
// returned by Rune is the last rune in a token returned by EmitToken.
func (s *Scanner) Rune() rune {
	return s.c.C
}

// Peek returns the next rune to be scanned, if there are any.  If an invalid
// utf-8 sequence or EOF prevents futher runes from being scanned Peek returns
// a false second value.  If Peek returns a false value the next call to
// s.ScanRune will return an error that reflects of the cause.
func (s *Scanner) Peek() (rune, bool) {
	err := s.checkExtend()
	if err != nil {
		return 0, false
	}
	r := decodeRune(s.buf[s.next:])
	if r.IsRuneError() {
		return utf8.RuneError, false
	}
	return r.C, true
}

// ScanRune attempts to scan a utf-8 rune from the input for inclusion in the
// current token.  At the end of input ScanRune returns io.EOF.
func (s *Scanner) ScanRune() error {
	err := s.checkExtend()
	if err != nil {
		return err
	}
	r := decodeRune(s.buf[s.next:])
	if r.IsRuneError() {
		return fmt.Errorf("invalid utf-8 sequence in source text starting with byte %q", s.buf[s.next])
	}
	s.scan(r)
	return nil
}

func (s *Scanner) scan(r Rune) {
	if s.c.C == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos = s.total
	s.total += r.N
	s.next += r.N
	s.c = r
	if s.tokLoc == nil {
		s.tokLoc = s.Loc()
	}
}

// LocStart returns a Location referencing the beginning of the current token,
// just beyond the end of the previous token.
func (s *Scanner) LocStart() *Location {
	if s.tokLoc != nil {
		loc := *s.tokLoc
		return &loc
	}
	loc := &Location{
		File: s.file,
		Pos:  s.total,
		Line: s.line,
		Col:  s.col + 1,
	}
	if s.c.C == '\n' {
		loc.Line++
		loc.Col = 1
	}
	return loc
}

// Loc returns a Location referencing the current scanner position, the last
// position of the current token.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

func (s *Scanner) checkExtend() error {
	for len(s.buf)-s.next < utf8.UTFMax && s.readErr == nil {
		s.extend()
	}
	if len(s.buf)-s.next == 0 {
		if s.readErr != nil && s.readErr != io.EOF {
			return s.readErr
		}
		return io.EOF
	}
	return nil
}

func (s *Scanner) extend() {
	if s.start > 0 {
		n := copy(s.buf[:cap(s.buf)], s.buf[s.start:])
		s.next -= s.start
		s.start = 0
		s.buf = s.buf[:n]
	}
	if cap(s.buf)-len(s.buf) < minRead {
		buf := make([]byte, len(s.buf), 2*cap(s.buf)+minRead)
		copy(buf, s.buf)
		s.buf = buf
	}
	n, err := s.r.Read(s.buf[len(s.buf):cap(s.buf)])
	s.buf = s.buf[:len(s.buf)+n]
	if err != nil {
		s.readErr = err
	}
}

func decodeRune(b []byte) Rune {
	c, n := utf8.DecodeRune(b)
	return Rune{c, n}
}

// Rune contains a rune that read by Scanner during peeking operations.
type Rune struct {
	C rune
	N int
}

// IsRuneError returns true if Rune represents an invalid utf-8 sequence read
// by utf8.DecodeRune.
func (r Rune) IsRuneError() bool {
	return r.C == utf8.RuneError && r.N == 1
}
