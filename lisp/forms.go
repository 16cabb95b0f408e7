package lisp

// Form identifies a special form, selected by the symbol at the head of a
// list.
type Form uint

// Possible Form values
const (
	FormInvalid Form = iota
	FormLet
	FormSet
	FormIf
	FormWhile
	FormLambda
	FormLambdaCaptured
	FormCall
	FormQuote
	FormList
	FormPrint
	FormReadnum
	FormAdd
	FormGT
	FormLT
	FormGEq
	FormLEq
	FormEq

	numForms
)

// LambdaCapturedSymbol tags closure values.
const LambdaCapturedSymbol = "lambda-captured"

var formNames = [numForms]string{
	FormInvalid:        "INVALID",
	FormLet:            "let",
	FormSet:            "set",
	FormIf:             "if",
	FormWhile:          "while",
	FormLambda:         "lambda",
	FormLambdaCaptured: LambdaCapturedSymbol,
	FormCall:           "call",
	FormQuote:          "quote",
	FormList:           "list",
	FormPrint:          "print",
	FormReadnum:        "readnum",
	FormAdd:            "+",
	FormGT:             ">",
	FormLT:             "<",
	FormGEq:            ">=",
	FormLEq:            "<=",
	FormEq:             "=",
}

var formIndex = func() map[string]Form {
	m := make(map[string]Form, numForms)
	for f := FormInvalid + 1; f < numForms; f++ {
		m[formNames[f]] = f
	}
	return m
}()

func (f Form) String() string {
	if f >= numForms {
		return formNames[FormInvalid]
	}
	return formNames[f]
}

// LookupForm returns the Form named by name.
func LookupForm(name string) (Form, bool) {
	f, ok := formIndex[name]
	return f, ok
}
