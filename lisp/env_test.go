package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertNumEqual(t *testing.T, expect float64, v *LVal) {
	t.Helper()
	v = v.Resolve()
	if assert.Equal(t, LNumber, v.Type) {
		assert.Equal(t, expect, v.Num)
	}
}

func TestEnvLookup(t *testing.T) {
	env := NewEnv(nil)
	assert.Equal(t, 0, env.Len())
	_, err := env.Lookup("a")
	assert.ErrorIs(t, err, ErrUnboundVariable)

	env = env.Define("a", Number(1))
	env = env.Define("b", Number(2))
	assert.Equal(t, 2, env.Len())
	c, err := env.Lookup("a")
	require.NoError(t, err)
	AssertNumEqual(t, 1, c.Get())
}

func TestEnvShadow(t *testing.T) {
	root := NewEnv(nil).Define("a", Number(1))
	child := root.Define("a", Number(2))
	assert.Equal(t, 1, root.Len())
	assert.Equal(t, 2, child.Len())

	c, err := child.Lookup("a")
	require.NoError(t, err)
	AssertNumEqual(t, 2, c.Get())
	c, err = root.Lookup("a")
	require.NoError(t, err)
	AssertNumEqual(t, 1, c.Get())
}

func TestEnvDefineIsolated(t *testing.T) {
	root := NewEnv(nil).Define("a", Number(1))
	// Extending two environments derived from root must not let either
	// observe the other's bindings.
	x := root.Define("x", Number(10))
	y := root.Define("y", Number(20))
	_, err := x.Lookup("y")
	assert.ErrorIs(t, err, ErrUnboundVariable)
	_, err = y.Lookup("x")
	assert.ErrorIs(t, err, ErrUnboundVariable)
	_, err = root.Lookup("x")
	assert.ErrorIs(t, err, ErrUnboundVariable)
}

func TestEnvAssignShared(t *testing.T) {
	root := NewEnv(nil).Define("a", Number(1))
	child := root.Define("b", Number(2))
	require.NoError(t, child.Assign("a", Number(5)))
	c, err := root.Lookup("a")
	require.NoError(t, err)
	AssertNumEqual(t, 5, c.Get())

	err = child.Assign("z", Number(1))
	assert.ErrorIs(t, err, ErrUnboundVariable)
	assert.Equal(t, 2, child.Len())
}

func TestEnvStoresResolvedValues(t *testing.T) {
	env := NewEnv(nil).Define("a", Number(1))
	a, err := env.Lookup("a")
	require.NoError(t, err)
	env = env.Define("b", Ref(a))
	b, err := env.Lookup("b")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, LNumber, b.Get().Type)

	a.Set(Number(7))
	AssertNumEqual(t, 1, b.Get())

	require.NoError(t, env.Assign("b", Ref(a)))
	assert.Equal(t, LNumber, b.Get().Type)
	AssertNumEqual(t, 7, b.Get())
}

func TestEnvFork(t *testing.T) {
	env := NewEnv(nil).Define("a", Number(1)).Define("b", Number(2))
	a, err := env.Lookup("a")
	require.NoError(t, err)
	forked := env.Fork([]Binding{{Name: "a", Cell: a}})
	assert.Equal(t, 1, forked.Len())
	assert.Same(t, env.Runtime, forked.Runtime)
	_, err = forked.Lookup("b")
	assert.ErrorIs(t, err, ErrUnboundVariable)

	c, err := forked.Lookup("a")
	require.NoError(t, err)
	assert.Same(t, a, c)
}
