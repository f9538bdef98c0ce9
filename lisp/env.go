package lisp

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment.  Each LEnv holds the bindings of one lexical
// frame and a reference to its enclosing frame.  Frames are shared by
// reference between closures and child frames, never copied.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.  A child environment
// shares the Runtime of its parent.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = StandardRuntime()
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: runtime,
	}
}

// InitializeUserEnv installs the default builtins and boolean constants into
// env and applies each config in order.  The first error returned by a config
// is returned.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	env.Define(TrueSymbol, Bool(true))
	env.Define(FalseSymbol, Bool(false))
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

// Root returns the global (outermost) environment of env's chain.
func (env *LEnv) Root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Define binds name to v in the local scope of env, replacing any existing
// local binding.  The parent chain is never modified.
func (env *LEnv) Define(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.Scope[name] = v
}

// Lookup returns the value bound to name in the nearest frame of env's chain
// that binds it.
func (env *LEnv) Lookup(name string) (*LVal, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.Scope[name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Reset updates the binding of name in the nearest frame of env's chain that
// binds it and returns v.  If no frame binds name an LError is returned and
// no frame is modified.
func (env *LEnv) Reset(name string, v *LVal) *LVal {
	if v == nil {
		panic("nil value")
	}
	for frame := env; frame != nil; frame = frame.Parent {
		if _, ok := frame.Scope[name]; ok {
			frame.Scope[name] = v
			return v
		}
	}
	return env.Errorf("Undefined variable %s", name)
}

// Get takes an LSymbol k and returns the LVal it is bound to in env.  An
// LError is returned if k is not bound.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return env.Errorf("key is not a symbol: %v", k.Type)
	}
	v, ok := env.Lookup(k.Str)
	if !ok {
		return env.Errorf("Undefined symbol %s", k.Str)
	}
	return v
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, exists := env.Scope[f.Name()]; exists {
			panic("symbol already defined: " + f.Name())
		}
		env.Define(f.Name(), Fun(f.Name(), f.Eval))
	}
}

// LoadString parses exprs with the runtime Reader and evaluates each
// expression in env.  The value of the last expression is returned, or the
// first error encountered.
func (env *LEnv) LoadString(name, exprs string) *LVal {
	return env.Load(name, strings.NewReader(exprs))
}

// Load reads LVals from r and evaluates them as if in a begin expression.
func (env *LEnv) Load(name string, r io.Reader) *LVal {
	if env.Runtime.Reader == nil {
		return env.Errorf("no reader for environment runtime")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return Error(err)
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return ret
		}
	}
	return ret
}

// Evaluate evaluates expr in env and returns the result along with env, so
// that definitions persist across successive top-level evaluations.
func Evaluate(expr *LVal, env *LEnv) (*LVal, *LEnv) {
	return env.Eval(expr), env
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Eval does not modify v.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LBool, LInt, LFloat, LFun, LLambda, LError:
		return v
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		if len(v.Cells) == 0 {
			return v
		}
		return env.EvalSExpr(v)
	default:
		panic(fmt.Sprintf("invalid value type: %v", v.Type))
	}
}

// EvalSExpr evaluates s, a non-empty list, as either a special operator or a
// procedure application.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return env.Errorf("not an s-expression")
	}
	if len(s.Cells) == 0 {
		return s
	}
	head := s.Cells[0]
	if head.Type == LSymbol {
		if op := specialOp(head.Str); op != nil {
			return op(env, SExpr(s.Cells[1:]))
		}
	}

	cells := make([]*LVal, len(s.Cells))
	for i := range s.Cells {
		cells[i] = env.Eval(s.Cells[i])
	}
	f := cells[0]
	if !f.IsCallable() {
		return env.Errorf("%v is not a procedure", f)
	}
	args := SExpr(cells[1:])
	for _, arg := range args.Cells {
		if arg.Type == LError {
			return arg
		}
	}
	name := LambdaSymbol
	if head.Type == LSymbol {
		name = head.Str
	}
	return env.call(name, f, args)
}

// Call invokes the procedure or closure fun with the list args.  The
// arguments are not evaluated.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	name := LambdaSymbol
	if fun.Type == LFun {
		name = fun.Str
	}
	return env.call(name, fun, args)
}

func (env *LEnv) call(name string, fun *LVal, args *LVal) *LVal {
	stack := env.Runtime.Stack
	if !stack.Push(name) {
		return env.Errorf("maximum stack height exceeded: %d", stack.MaxHeight)
	}
	defer stack.Pop()

	switch fun.Type {
	case LFun:
		return fun.Builtin(env, args)
	case LLambda:
		return env.callLambda(fun, args)
	default:
		return env.Errorf("%v is not a procedure", fun)
	}
}

// callLambda evaluates the body of fun in a new frame whose parent is the
// frame fun captured, not env.
func (env *LEnv) callLambda(fun *LVal, args *LVal) *LVal {
	nformals := fun.Formals.Len()
	if nformals != args.Len() {
		return env.Errorf("procedure expects %d argument%s (got %d)",
			nformals, plural(nformals), args.Len())
	}
	callenv := NewEnv(fun.Env)
	for i, sym := range fun.Formals.Cells {
		if sym.Type != LSymbol {
			return env.Errorf("Syntax error: lambda parameter is not a symbol: %v", sym)
		}
		callenv.Define(sym.Str, args.Cells[i])
	}
	return callenv.Eval(fun.Body)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
