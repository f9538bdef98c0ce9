package lisp

// ErrorVal implements the error interface so that errors can be first class lisp
// objects.  The error message is stored in the Str field while contextual
// information (e.g. call stack) is stored in the Stack field.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	return e.Str
}

// GoError returns an error that represents lerr.  If lerr is not LError then
// nil is returned.
func GoError(lerr *LVal) error {
	if lerr == nil || lerr.Type != LError {
		return nil
	}
	return (*ErrorVal)(lerr)
}

// Errorf returns an LError value with a formatted error message.
//
// Unlike the exported function, the Errorf method returns an LVal with a copy
// of env.Runtime.Stack.  When the runtime has tracing enabled the stack is
// written to env.Runtime.Stderr.
func (env *LEnv) Errorf(format string, v ...interface{}) *LVal {
	lerr := Errorf(format, v...)
	lerr.Stack = env.Runtime.Stack.Copy()
	if env.Runtime.Trace {
		env.Runtime.debugError(lerr)
	}
	return lerr
}
