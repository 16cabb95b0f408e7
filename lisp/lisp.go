package lisp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/TK-A369/tk-lisp-test-1/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LNumber
	LSymbol
	LSExpr
	LRef
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LNumber:  "number",
	LSymbol:  "symbol",
	LSExpr:   "list",
	LRef:     "reference",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LVal is a lisp value and also the node type of a parsed expression tree.
// Values are never modified after construction; sharing an LVal between
// expression trees, cells and closures is safe.
type LVal struct {
	Type LValType

	// Num holds the value of an LNumber.
	Num float64

	// Str holds the name of an LSymbol.
	Str string

	// Cells holds the elements of an LSExpr.
	Cells []*LVal

	// Ref holds the cell an LRef points to.
	Ref *Cell

	// Source is the location of the expression in source text, when the
	// value was produced by a parser.
	Source *token.Location
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing a list of the given cells.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// List is like SExpr but takes its elements as arguments.
func List(cells ...*LVal) *LVal {
	return SExpr(cells)
}

// Nil returns an LVal representing nil, an empty list, an absent value.
func Nil() *LVal {
	return SExpr(nil)
}

// Ref returns an LVal referencing the shared cell c.
func Ref(c *Cell) *LVal {
	return &LVal{
		Type: LRef,
		Ref:  c,
	}
}

// Len returns the number of elements in a list.  Len returns 0 for values
// that are not lists.
func (v *LVal) Len() int {
	if v.Type != LSExpr {
		return 0
	}
	return len(v.Cells)
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// Resolve dereferences v until a value which is not a reference is reached.
func (v *LVal) Resolve() *LVal {
	for v.Type == LRef {
		v = v.Ref.Get()
	}
	return v
}

// IsTrue reports the truth value of v.  A number is true if it is nonzero and
// a list is true if it is not empty.  All other values, including unresolved
// references, are false.
func (v *LVal) IsTrue() bool {
	switch v.Type {
	case LNumber:
		return v.Num != 0
	case LSExpr:
		return len(v.Cells) != 0
	default:
		return false
	}
}

// IsSymbol returns true if v is the symbol named s.
func (v *LVal) IsSymbol(s string) bool {
	return v.Type == LSymbol && v.Str == s
}

// FormatNumber formats x as the shortest decimal that represents it exactly,
// without an exponent.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func (v *LVal) String() string {
	switch v.Type {
	case LNumber:
		return FormatNumber(v.Num)
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LRef:
		// References are never followed.  A closure can capture the cell it
		// is stored in.
		return "<ref>"
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
