package lisp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	testerr := errors.New("test error message")
	lerr := Error(testerr)
	msg := GoError(lerr).Error()
	assert.Equal(t, testerr.Error(), msg)

	lerr = Errorf("test error %s", "message")
	msg = GoError(lerr).Error()
	assert.Equal(t, "test error message", msg)

	assert.NoError(t, GoError(Int(1)))
	assert.NoError(t, GoError(nil))
}

func TestRuntimeErrors(t *testing.T) {
	var stderr bytes.Buffer
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithStderr(&stderr))
	require.NoError(t, GoError(lerr))

	// (car 1)
	lerr = env.Eval(SExpr([]*LVal{Symbol("car"), Int(1)}))
	require.Equal(t, LError, lerr.Type)
	if assert.NotNil(t, lerr.Stack) && assert.Equal(t, 1, lerr.Stack.Height()) {
		assert.Equal(t, "car", lerr.Stack.Top().Name)
	}
	assert.Equal(t, 0, env.Runtime.Stack.Height())
	assert.Empty(t, stderr.String())
}

func TestRuntimeErrors_trace(t *testing.T) {
	var stderr bytes.Buffer
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithStderr(&stderr), WithTrace(true))
	require.NoError(t, GoError(lerr))

	// ((lambda (x) (car x)) 1)
	fun := SExpr([]*LVal{
		Symbol("lambda"),
		SExpr([]*LVal{Symbol("x")}),
		SExpr([]*LVal{Symbol("car"), Symbol("x")}),
	})
	lerr = env.Eval(SExpr([]*LVal{fun, Int(1)}))
	require.Equal(t, LError, lerr.Type)
	expect := `Error: Built-in function 'car' requires a non-empty list argument. It was called with 1
Stack Trace [2 frames -- entrypoint last]:
  height 1: car
  height 0: lambda
`
	assert.Equal(t, expect, stderr.String())
}

func TestMaximumStackHeight(t *testing.T) {
	env := NewEnv(nil)
	lerr := InitializeUserEnv(env, WithMaximumStackHeight(3))
	require.NoError(t, GoError(lerr))

	// (define loop (lambda () (loop)))
	env.Eval(SExpr([]*LVal{
		Symbol("define"), Symbol("loop"),
		SExpr([]*LVal{Symbol("lambda"), Nil(), SExpr([]*LVal{Symbol("loop")})}),
	}))
	lerr = env.Eval(SExpr([]*LVal{Symbol("loop")}))
	if assert.Equal(t, LError, lerr.Type) {
		assert.Equal(t, "maximum stack height exceeded: 3", lerr.Str)
	}
	assert.Equal(t, 0, env.Runtime.Stack.Height())
}
