package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_root(t *testing.T) {
	env := NewEnv(nil)
	env.Define("monkey", Int(1))
	env.Define("turkey", Int(2))
	v, ok := env.Lookup("monkey")
	if assert.True(t, ok) {
		assert.Equal(t, 1, v.Int)
	}
	v, ok = env.Lookup("turkey")
	if assert.True(t, ok) {
		assert.Equal(t, 2, v.Int)
	}
	_, ok = env.Lookup("donkey")
	assert.False(t, ok)

	env.Define("monkey", Int(3))
	v, _ = env.Lookup("monkey")
	assert.Equal(t, 3, v.Int)
	assert.Equal(t, env, env.Root())
}

func TestEnv_child(t *testing.T) {
	root := NewEnv(nil)
	root.Define("a", Int(1))
	root.Define("b", Int(2))
	env := NewEnv(root)
	assert.Equal(t, root.Runtime, env.Runtime)
	assert.Equal(t, root, env.Root())

	env.Define("b", Int(3))
	v, ok := env.Lookup("a")
	if assert.True(t, ok) {
		assert.Equal(t, 1, v.Int)
	}
	v, _ = env.Lookup("b")
	assert.Equal(t, 3, v.Int)
	v, _ = root.Lookup("b")
	assert.Equal(t, 2, v.Int, "define must not modify the parent frame")
}

func TestEnv_reset(t *testing.T) {
	root := NewEnv(nil)
	root.Define("x", Int(1))
	mid := NewEnv(root)
	mid.Define("y", Int(2))
	leaf := NewEnv(mid)

	v := leaf.Reset("x", Int(10))
	assert.Equal(t, 10, v.Int)
	v, _ = root.Lookup("x")
	assert.Equal(t, 10, v.Int)
	_, ok := leaf.Scope["x"]
	assert.False(t, ok, "reset must not create a local binding")

	leaf.Reset("y", Int(20))
	v, _ = mid.Lookup("y")
	assert.Equal(t, 20, v.Int)

	lerr := leaf.Reset("z", Int(1))
	assert.Equal(t, LError, lerr.Type)
	_, ok = leaf.Lookup("z")
	assert.False(t, ok)
}

func TestEnv_get(t *testing.T) {
	env := NewEnv(nil)
	env.Define("x", Int(1))
	assert.Equal(t, 1, env.Get(Symbol("x")).Int)
	lerr := env.Get(Symbol("nope"))
	if assert.Equal(t, LError, lerr.Type) {
		assert.Equal(t, "Undefined symbol nope", lerr.Str)
	}
	assert.Equal(t, LError, env.Get(Int(1)).Type)
}

func TestInitializeUserEnv(t *testing.T) {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env)
	require.NoError(t, GoError(lerr))
	for _, def := range DefaultBuiltins() {
		v, ok := env.Lookup(def.Name())
		if assert.True(t, ok, def.Name()) {
			assert.Equal(t, LFun, v.Type)
			assert.Equal(t, def.Name(), v.Str)
		}
	}
	v, ok := env.Lookup(TrueSymbol)
	if assert.True(t, ok) {
		assert.True(t, v.Bool)
	}
	assert.Nil(t, env.Parent)
	assert.Panics(t, func() { env.AddBuiltins() })
}

func TestInitializeUserEnv_configError(t *testing.T) {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithMaximumStackHeight(-1))
	assert.Equal(t, LError, lerr.Type)
}

func TestEnv_sharedClosureScope(t *testing.T) {
	root := NewEnv(nil)
	require.NoError(t, GoError(InitializeUserEnv(root)))
	scope := NewEnv(root)
	scope.Define("n", Int(0))

	// (lambda () (set! n (+ n 1)))
	incr := Lambda(scope, Nil(), SExpr([]*LVal{
		Symbol("set!"), Symbol("n"),
		SExpr([]*LVal{Symbol("+"), Symbol("n"), Int(1)}),
	}))
	// (lambda () n)
	get := Lambda(scope, Nil(), Symbol("n"))

	root.Call(incr, Nil())
	root.Call(incr, Nil())
	v := root.Call(get, Nil())
	assert.Equal(t, 2, v.Int)
	_, ok := root.Lookup("n")
	assert.False(t, ok)
}
