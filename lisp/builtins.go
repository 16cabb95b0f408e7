package lisp

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func (env *LEnv) evalAdd(s *LVal) (*LVal, error) {
	if len(s.Cells) < 3 {
		return nil, env.errorf(s, InvalidForm, "+ requires at least two operands")
	}
	var sum float64
	for i, expr := range s.Cells[1:] {
		v, err := env.evalResolved(expr)
		if err != nil {
			return nil, err
		}
		if v.Type != LNumber {
			return nil, env.errorf(expr, InvalidForm, "operand %d of + is not a number: %v", i+1, v.Type)
		}
		sum += v.Num
	}
	return Number(sum), nil
}

func (env *LEnv) evalCompare(form Form, s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 {
		return nil, env.errorf(s, InvalidForm, "%v requires exactly two operands", form)
	}
	var x [2]float64
	for i, expr := range s.Cells[1:] {
		v, err := env.evalResolved(expr)
		if err != nil {
			return nil, err
		}
		if v.Type != LNumber {
			return nil, env.errorf(expr, InvalidForm, "operand %d of %v is not a number: %v", i+1, form, v.Type)
		}
		x[i] = v.Num
	}
	var ok bool
	switch form {
	case FormGT:
		ok = x[0] > x[1]
	case FormLT:
		ok = x[0] < x[1]
	case FormGEq:
		ok = x[0] >= x[1]
	case FormLEq:
		ok = x[0] <= x[1]
	case FormEq:
		ok = x[0] == x[1]
	}
	if ok {
		return Number(1), nil
	}
	return Number(0), nil
}

// evalPrint writes each operand to the runtime's stdout.  Numbers are written
// in decimal.  Lists are treated as sequences of character codes.
func (env *LEnv) evalPrint(s *LVal) (*LVal, error) {
	if len(s.Cells) < 2 {
		return nil, env.errorf(s, InvalidForm, "print requires at least one operand")
	}
	w := env.Runtime.Stdout
	for _, expr := range s.Cells[1:] {
		v, err := env.evalResolved(expr)
		if err != nil {
			return nil, err
		}
		var buf strings.Builder
		var perr error
		switch v.Type {
		case LNumber:
			buf.WriteString(FormatNumber(v.Num))
		case LSExpr:
			for _, c := range v.Cells {
				c = c.Resolve()
				if c.Type != LNumber {
					perr = env.errorf(expr, InvalidForm, "print operand is not a list of character codes: element is a %v", c.Type)
					break
				}
				buf.WriteRune(codeRune(c.Num))
			}
		default:
			perr = env.errorf(expr, InvalidForm, "print operand is not a number or a list of character codes: %v", v.Type)
		}
		if buf.Len() > 0 {
			_, err = io.WriteString(w, buf.String())
			if err != nil {
				return nil, env.annotate(WrapError(IOError, err, "print"), s)
			}
		}
		if perr != nil {
			return nil, perr
		}
	}
	return Nil(), nil
}

// codeRune converts a character code to a rune, truncating any fraction.
// Codes which are not valid unicode code points map to utf8.RuneError.
func codeRune(x float64) rune {
	if math.IsNaN(x) || x < 0 || x > utf8.MaxRune {
		return utf8.RuneError
	}
	r := rune(x)
	if !utf8.ValidRune(r) {
		return utf8.RuneError
	}
	return r
}

// evalReadnum reads a line from the runtime's stdin and parses it as a
// number.
func (env *LEnv) evalReadnum(s *LVal) (*LVal, error) {
	if len(s.Cells) != 1 {
		return nil, env.errorf(s, InvalidForm, "readnum takes no operands")
	}
	line, err := env.Runtime.Stdin.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, env.annotate(WrapError(IOError, err, "readnum"), s)
	}
	text := strings.TrimSpace(line)
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, env.annotate(WrapError(IOError, err, "readnum: invalid number %q", text), s)
	}
	return Number(x), nil
}
