package lisp

import (
	"fmt"
	"io"
	"os"
)

// Runtime is the state shared by every LEnv in a chain descending from one
// root environment.
type Runtime struct {
	Stack  *CallStack
	Stderr io.Writer
	Reader Reader

	// Trace causes errors created through LEnv.Errorf to be reported on
	// Stderr along with the call stack that produced them.
	Trace bool
}

// StandardRuntime returns a new Runtime with an empty call stack which writes
// diagnostics to os.Stderr.
func StandardRuntime() *Runtime {
	return &Runtime{
		Stack:  &CallStack{},
		Stderr: os.Stderr,
	}
}

func (r *Runtime) debugError(lerr *LVal) {
	if r.Stderr == nil {
		return
	}
	fmt.Fprintln(r.Stderr, lerr)
	lerr.Stack.DebugPrint(r.Stderr)
}
