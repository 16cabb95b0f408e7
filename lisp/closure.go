package lisp

// A closure value is the list
//
//	(lambda-captured ((name1 <ref>) (name2 <ref>) ...) params body)
//
// where each <ref> is a reference to the cell the name was bound to when the
// lambda was evaluated.  The cells themselves are captured, not their values,
// so assignments made inside or outside the closure are visible to both.

// Closure returns a closure value capturing the given bindings.
func Closure(captures []Binding, params *LVal, body *LVal) *LVal {
	pairs := make([]*LVal, len(captures))
	for i, b := range captures {
		pairs[i] = List(Symbol(b.Name), Ref(b.Cell))
	}
	return List(Symbol(LambdaCapturedSymbol), SExpr(pairs), params, body)
}

// ClosureParts unpacks a closure value into its captured bindings, parameter
// list and body.  ClosureParts returns false if v is not a well-formed
// closure.
func ClosureParts(v *LVal) (captures []Binding, params *LVal, body *LVal, ok bool) {
	if v.Type != LSExpr || len(v.Cells) != 4 || !v.Cells[0].IsSymbol(LambdaCapturedSymbol) {
		return nil, nil, nil, false
	}
	pairs := v.Cells[1]
	if pairs.Type != LSExpr {
		return nil, nil, nil, false
	}
	captures = make([]Binding, 0, len(pairs.Cells))
	for _, pair := range pairs.Cells {
		if pair.Type != LSExpr || len(pair.Cells) != 2 {
			return nil, nil, nil, false
		}
		name, ref := pair.Cells[0], pair.Cells[1]
		if name.Type != LSymbol || ref.Type != LRef {
			return nil, nil, nil, false
		}
		captures = append(captures, Binding{Name: name.Str, Cell: ref.Ref})
	}
	return captures, v.Cells[2], v.Cells[3], true
}

// IsClosure returns true if v is a well-formed closure value.
func IsClosure(v *LVal) bool {
	_, _, _, ok := ClosureParts(v)
	return ok
}

func (env *LEnv) evalLambda(s *LVal) (*LVal, error) {
	if len(s.Cells) != 4 {
		return nil, env.errorf(s, InvalidForm, "lambda requires a capture list, a parameter list and a body")
	}
	names := s.Cells[1]
	if names.Type != LSExpr {
		return nil, env.errorf(s, InvalidForm, "lambda capture list is not a list: %v", names.Type)
	}
	captures := make([]Binding, 0, len(names.Cells))
	for _, name := range names.Cells {
		if name.Type != LSymbol {
			return nil, env.errorf(name, InvalidForm, "lambda capture is not a symbol: %v", name)
		}
		c, err := env.Lookup(name.Str)
		if err != nil {
			return nil, env.annotate(err, name)
		}
		captures = append(captures, Binding{Name: name.Str, Cell: c})
	}
	env.Runtime.Logger.Debug("closure created",
		"source", s.Source,
		"captures", len(captures))
	return Closure(captures, s.Cells[2], s.Cells[3]), nil
}

// evalCall evaluates the body of a closure in an environment containing only
// the closure's captured bindings.  Parameters are not bound; operands
// following the callee are ignored and never evaluated.
func (env *LEnv) evalCall(s *LVal) (*LVal, error) {
	if len(s.Cells) < 2 {
		return nil, env.errorf(s, InvalidForm, "call requires a callee")
	}
	callee, err := env.evalResolved(s.Cells[1])
	if err != nil {
		return nil, err
	}
	captures, _, body, ok := ClosureParts(callee)
	if !ok {
		return nil, env.errorf(s, InvalidForm, "call target is not a closure: %v", callee)
	}
	logger := env.Runtime.Logger
	if n := len(s.Cells) - 2; n > 0 {
		logger.Debug("call arguments ignored",
			"source", s.Source,
			"count", n)
	}
	logger.Debug("closure called",
		"source", s.Source,
		"captures", len(captures))
	return env.Fork(captures).Eval(body)
}
