package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	runExpression, runPrint = false, false
	maxStackHeight, traceErrors = 10000, false
	var outbuf, errbuf bytes.Buffer
	rootCmd.SetOut(&outbuf)
	rootCmd.SetErr(&errbuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outbuf.String(), errbuf.String(), err
}

func TestRun_expression(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "-e", "-p",
		"(define sq (lambda (x) (* x x)))",
		"(sq 4) (sq 1.5)")
	require.NoError(t, err)
	assert.Equal(t, "sq\n16\n2.25\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_noPrint(t *testing.T) {
	stdout, _, err := execute(t, "run", "-e", "(+ 1 2)")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fact.scm")
	src := `(define fact
  (lambda (n)
    (if (<= n 1) 1 (* n (fact (- n 1))))))
(fact 10)
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	stdout, _, err := execute(t, "run", "-p", path)
	require.NoError(t, err)
	assert.Equal(t, "fact\n3628800\n", stdout)
}

func TestRun_missingFile(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.scm"))
	assert.Error(t, err)
}

func TestRun_syntaxError(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "-e", "-p", "(+ 1 2) (+ 1")
	assert.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unexpected end of input")
}

func TestRun_evaluationError(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "-e", "-p", "(+ 1 2) (car 1) (+ 3 4)")
	assert.Equal(t, errEvaluation, err)
	assert.Equal(t, "3\n", stdout)
	assert.Contains(t, stderr, "Error: Built-in function 'car' requires a non-empty list argument.")
}

func TestRun_maxStack(t *testing.T) {
	_, stderr, err := execute(t, "run", "--max-stack", "50", "-e",
		"(define loop (lambda (n) (+ 1 (loop n))))",
		"(loop 0)")
	assert.Error(t, err)
	assert.Contains(t, stderr, "maximum stack height exceeded: 50")
}

func TestRun_trace(t *testing.T) {
	_, stderr, err := execute(t, "run", "--trace", "-e", "(car 1)")
	assert.Error(t, err)
	assert.Contains(t, stderr, "Stack Trace [1 frames -- entrypoint last]:")
	assert.Contains(t, stderr, "height 0: car")
}
