package repl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/bmatsuo/minischeme/lisp/lisptest"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineResult struct {
	line string
	err  error
}

type testLines struct {
	input   []lineResult
	prompts []string
}

func (r *testLines) Readline() (string, error) {
	if len(r.input) == 0 {
		return "", io.EOF
	}
	next := r.input[0]
	r.input = r.input[1:]
	return next.line, next.err
}

func (r *testLines) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func lines(text ...string) *testLines {
	r := &testLines{}
	for _, line := range text {
		r.input = append(r.input, lineResult{line: line})
	}
	return r
}

func TestRun(t *testing.T) {
	env, err := lisptest.NewEnv()
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	input := lines(
		"(define x 10)",
		"",
		"(+ x 1)",
		"(set! x 5) ignored",
		"x",
		"(car (quote ()))",
		")",
	)
	err = Run(env, input, "> ", &stdout, &stderr)
	require.NoError(t, err)
	expect := `x
11
5
5
Error: Built-in function 'car' requires a non-empty list argument. It was called with ()
`
	assert.Equal(t, expect, stdout.String())
	assert.Contains(t, stderr.String(), "unbalanced parentheses")
}

func TestRun_continuation(t *testing.T) {
	env, err := lisptest.NewEnv()
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	input := lines(
		"(define sq",
		"  (lambda (x)",
		"    (* x x)))",
		"(sq 7)",
	)
	err = Run(env, input, "> ", &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "sq\n49\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.Equal(t, []string{"  ", "> ", "  ", "> "}, input.prompts)
}

func TestRun_interrupt(t *testing.T) {
	env, err := lisptest.NewEnv()
	require.NoError(t, err)
	var stdout, stderr bytes.Buffer
	input := &testLines{input: []lineResult{
		{line: "(+ 1"},
		{err: readline.ErrInterrupt},
		{line: "(+ 2 3)"},
	}}
	err = Run(env, input, "> ", &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "5\n", stdout.String())
}

func TestRun_readError(t *testing.T) {
	env, err := lisptest.NewEnv()
	require.NoError(t, err)
	failure := errors.New("terminal gone")
	input := &testLines{input: []lineResult{{err: failure}}}
	err = Run(env, input, "> ", io.Discard, io.Discard)
	assert.Equal(t, failure, err)
}
