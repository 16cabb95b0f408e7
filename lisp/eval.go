package lisp

import (
	"errors"
	"fmt"
)

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Reading a variable produces a reference to its cell rather than a
// copy of its value; callers which need a concrete value call Resolve on the
// result.
func (env *LEnv) Eval(v *LVal) (*LVal, error) {
	switch v.Type {
	case LNumber:
		return v, nil
	case LSymbol:
		c, err := env.Lookup(v.Str)
		if err != nil {
			return nil, env.annotate(err, v)
		}
		return Ref(c), nil
	case LRef:
		return v.Resolve(), nil
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return nil, env.errorf(v, InvalidForm, "cannot evaluate value of type %v", v.Type)
	}
}

// EvalSExpr evaluates the list s.  The empty list evaluates to itself.  A
// list whose head is a list is a sequence.  A list whose head is a symbol is
// a special form.
func (env *LEnv) EvalSExpr(s *LVal) (*LVal, error) {
	if s.Type != LSExpr {
		return nil, env.errorf(s, InvalidForm, "not a list: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return Nil(), nil
	}
	head := s.Cells[0]
	switch head.Type {
	case LSymbol:
	case LSExpr:
		return env.evalSequence(s)
	case LNumber:
		return nil, env.errorf(s, InvalidForm, "cannot evaluate a list whose head is a number")
	default:
		return nil, env.errorf(s, InvalidForm, "cannot evaluate a list whose head is a %v", head.Type)
	}

	form, ok := LookupForm(head.Str)
	if !ok {
		return nil, env.errorf(s, UnknownForm, "bad statement `%s`", head.Str)
	}

	stack := env.Runtime.Stack
	stack.Push(form, s.Source)
	defer stack.Pop()

	switch form {
	case FormLet:
		return env.evalLet(s)
	case FormSet:
		return env.evalSet(s)
	case FormIf:
		return env.evalIf(s)
	case FormWhile:
		return env.evalWhile(s)
	case FormLambda:
		return env.evalLambda(s)
	case FormLambdaCaptured:
		return s, nil
	case FormCall:
		return env.evalCall(s)
	case FormQuote:
		return env.evalQuote(s)
	case FormList:
		return env.evalList(s)
	case FormPrint:
		return env.evalPrint(s)
	case FormReadnum:
		return env.evalReadnum(s)
	case FormAdd:
		return env.evalAdd(s)
	case FormGT, FormLT, FormGEq, FormLEq, FormEq:
		return env.evalCompare(form, s)
	default:
		panic(fmt.Sprintf("unhandled special form: %v", form))
	}
}

// evalSequence evaluates each element of s in order and returns the value of
// the last one.
func (env *LEnv) evalSequence(s *LVal) (*LVal, error) {
	var ret *LVal
	for _, expr := range s.Cells {
		v, err := env.Eval(expr)
		if err != nil {
			return nil, err
		}
		ret = v
	}
	return ret, nil
}

// evalResolved evaluates v and resolves any reference in the result.
func (env *LEnv) evalResolved(v *LVal) (*LVal, error) {
	r, err := env.Eval(v)
	if err != nil {
		return nil, err
	}
	return r.Resolve(), nil
}

func (env *LEnv) evalLet(s *LVal) (*LVal, error) {
	if len(s.Cells) < 3 {
		return nil, env.errorf(s, InvalidForm, "let requires at least one (name value) binding and a body")
	}
	local := env.Copy()
	for _, def := range s.Cells[1 : len(s.Cells)-1] {
		if def.Type != LSExpr || len(def.Cells) != 2 || def.Cells[0].Type != LSymbol {
			return nil, env.errorf(def, InvalidForm, "let binding is not a list of a variable name and a value: %v", def)
		}
		v, err := local.evalResolved(def.Cells[1])
		if err != nil {
			return nil, err
		}
		local.bind(def.Cells[0].Str, NewCell(v))
	}
	return local.Eval(s.Cells[len(s.Cells)-1])
}

func (env *LEnv) evalSet(s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 {
		return nil, env.errorf(s, InvalidForm, "set requires a variable name and a value")
	}
	name := s.Cells[1]
	if name.Type != LSymbol {
		return nil, env.errorf(s, InvalidForm, "set target is not a symbol: %v", name.Type)
	}
	v, err := env.evalResolved(s.Cells[2])
	if err != nil {
		return nil, err
	}
	err = env.Assign(name.Str, v)
	if err != nil {
		return nil, env.annotate(err, name)
	}
	return v, nil
}

func (env *LEnv) evalIf(s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 && len(s.Cells) != 4 {
		return nil, env.errorf(s, InvalidForm, "if requires a condition, a then branch and an optional else branch")
	}
	cond, err := env.evalResolved(s.Cells[1])
	if err != nil {
		return nil, err
	}
	if cond.IsTrue() {
		return env.Eval(s.Cells[2])
	}
	if len(s.Cells) == 4 {
		return env.Eval(s.Cells[3])
	}
	return Nil(), nil
}

func (env *LEnv) evalWhile(s *LVal) (*LVal, error) {
	if len(s.Cells) != 3 {
		return nil, env.errorf(s, InvalidForm, "while requires a condition and a body")
	}
	result := Nil()
	for {
		cond, err := env.evalResolved(s.Cells[1])
		if err != nil {
			return nil, err
		}
		if !cond.IsTrue() {
			return result, nil
		}
		result, err = env.Eval(s.Cells[2])
		if err != nil {
			return nil, err
		}
	}
}

func (env *LEnv) evalQuote(s *LVal) (*LVal, error) {
	if len(s.Cells) != 2 {
		return nil, env.errorf(s, InvalidForm, "quote requires exactly one operand")
	}
	return s.Cells[1], nil
}

func (env *LEnv) evalList(s *LVal) (*LVal, error) {
	cells := make([]*LVal, 0, len(s.Cells)-1)
	for _, expr := range s.Cells[1:] {
		v, err := env.evalResolved(expr)
		if err != nil {
			return nil, err
		}
		cells = append(cells, v)
	}
	return SExpr(cells), nil
}

func (env *LEnv) errorf(expr *LVal, kind ErrorKind, format string, v ...interface{}) error {
	return env.annotate(Errorf(kind, format, v...), expr)
}

// annotate attaches the location of expr and the current call stack to err
// unless err already carries them.
func (env *LEnv) annotate(err error, expr *LVal) error {
	var lerr *Error
	if !errors.As(err, &lerr) {
		return err
	}
	stack := env.Runtime.Stack
	if lerr.Source == nil {
		lerr.Source = expr.Source
	}
	if lerr.Source == nil {
		if top := stack.Top(); top != nil {
			lerr.Source = top.Source
		}
	}
	if lerr.Stack == nil {
		lerr.Stack = stack.Copy()
	}
	return err
}
