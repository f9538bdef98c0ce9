/*
Package lisptest runs sequences of lisp expressions against fresh root
environments and compares the printed results.
*/
package lisptest

import (
	"fmt"
	"testing"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser"
	"github.com/stretchr/testify/assert"
)

// TestSequence is a sequence of lisp expressions which are evaluated sequentially
// by a lisp.LEnv.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewEnv returns a root environment initialized with the default builtins and
// a parser.  Any additional config is applied after the defaults.
func NewEnv(config ...lisp.Config) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config = append([]lisp.Config{lisp.WithReader(parser.NewReader())}, config...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return nil, fmt.Errorf("failed to initialize lisp environment: %v", lerr)
	}
	return env, nil
}

// EvalString parses the first expression in text and evaluates it in env.
func EvalString(env *lisp.LEnv, text string) (*lisp.LVal, error) {
	expr, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	v, _ := lisp.Evaluate(expr, env)
	return v, nil
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.LEnvs.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			env, err := NewEnv()
			if err != nil {
				t.Fatal(err)
			}
			for j, expr := range test.TestSequence {
				v, err := EvalString(env, expr.Expr)
				if err != nil {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
					continue
				}
				assert.Equal(t, expr.Result, v.String(), "test %d %q: expr %d: %s", i, test.Name, j, expr.Expr)
			}
		})
	}
}
