package lisp

// Binding associates a variable name with a shared cell.
type Binding struct {
	Name string
	Cell *Cell
}

// LEnv is a lisp environment: an ordered sequence of bindings searched from
// the most recently added binding backwards.  Several bindings may share a
// name; the last one shadows the others.
//
// Environments never link to a parent.  Forms which introduce scope (let and
// closure calls) construct a new LEnv holding a copy of the bindings they
// inherit, so bindings added to the new environment are invisible to the
// environment it was derived from.  Cells are shared between copies.
type LEnv struct {
	Bindings []Binding
	Runtime  *Runtime
}

// NewEnv returns an empty environment evaluating with rt.  If rt is nil a
// runtime using the process standard streams is created.
func NewEnv(rt *Runtime) *LEnv {
	if rt == nil {
		rt = newRuntime()
	}
	return &LEnv{Runtime: rt}
}

// Len returns the number of bindings in env.
func (env *LEnv) Len() int {
	return len(env.Bindings)
}

// Copy returns a new LEnv with a copy of env.Bindings.  The cells themselves
// are shared.
func (env *LEnv) Copy() *LEnv {
	return env.fork(env.Bindings, 1)
}

// Fork returns a new environment sharing env's runtime but containing only
// the given bindings.
func (env *LEnv) Fork(bindings []Binding) *LEnv {
	return env.fork(bindings, 0)
}

func (env *LEnv) fork(bindings []Binding, extra int) *LEnv {
	cp := make([]Binding, len(bindings), len(bindings)+extra)
	copy(cp, bindings)
	return &LEnv{
		Bindings: cp,
		Runtime:  env.Runtime,
	}
}

// Lookup returns the cell bound to name.  Lookup returns an UnboundVariable
// error if no binding exists.
func (env *LEnv) Lookup(name string) (*Cell, error) {
	i := env.index(name)
	if i < 0 {
		return nil, Errorf(UnboundVariable, "variable %s not defined", name)
	}
	return env.Bindings[i].Cell, nil
}

// Define returns a copy of env extended with a binding of name to a new cell
// holding v.  References are resolved before v is stored.
func (env *LEnv) Define(name string, v *LVal) *LEnv {
	cp := env.Copy()
	cp.bind(name, NewCell(v.Resolve()))
	return cp
}

// Assign overwrites the contents of the cell bound to name.  Every binding
// and closure sharing the cell observes the new value.  Assign never creates a
// binding and returns an UnboundVariable error if name is not bound.
func (env *LEnv) Assign(name string, v *LVal) error {
	c, err := env.Lookup(name)
	if err != nil {
		return err
	}
	c.Set(v.Resolve())
	return nil
}

// bind appends a binding to env in place.  Only environments which have not
// been observed by any other scope may be extended this way.
func (env *LEnv) bind(name string, c *Cell) {
	env.Bindings = append(env.Bindings, Binding{Name: name, Cell: c})
}

func (env *LEnv) index(name string) int {
	for i := len(env.Bindings) - 1; i >= 0; i-- {
		if env.Bindings[i].Name == name {
			return i
		}
	}
	return -1
}
