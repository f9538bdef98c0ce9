package lisp

// specialOp returns the handler for the special operator name, or nil if name
// does not name a special operator.  Handlers receive their operands
// unevaluated.
func specialOp(name string) LBuiltin {
	switch name {
	case QuoteSymbol:
		return opQuote
	case BeginSymbol:
		return opBegin
	case IfSymbol:
		return opIf
	case DefineSymbol:
		return opDefine
	case SetSymbol:
		return opSet
	case LambdaSymbol:
		return opLambda
	default:
		return nil
	}
}

// IsSpecialOp returns true if name is the symbol of a special operator.
func IsSpecialOp(name string) bool {
	return specialOp(name) != nil
}

// (quote expr)
func opQuote(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return env.Errorf("Syntax error: quote must take a single argument")
	}
	return args.Cells[0]
}

// (begin expr ...)
func opBegin(env *LEnv, args *LVal) *LVal {
	if args.Len() == 0 {
		return env.Errorf("Syntax error: begin must take at least one argument")
	}
	last := args.Len() - 1
	for _, c := range args.Cells[:last] {
		env.Eval(c)
	}
	return env.Eval(args.Cells[last])
}

// (if test-form then-form else-form)
func opIf(env *LEnv, args *LVal) *LVal {
	if args.Len() != 3 {
		return env.Errorf("Syntax error: if must take three arguments")
	}
	r := env.Eval(args.Cells[0])
	if r.Type == LError {
		return r
	}
	if r.IsTrue() {
		return env.Eval(args.Cells[1])
	}
	return env.Eval(args.Cells[2])
}

// (define symbol expr)
func opDefine(env *LEnv, args *LVal) *LVal {
	sym, lerr := bindingForm(env, DefineSymbol, args)
	if lerr != nil {
		return lerr
	}
	val := env.Eval(args.Cells[1])
	if val.Type == LError {
		return val
	}
	env.Define(sym.Str, val)
	return sym
}

// (set! symbol expr)
func opSet(env *LEnv, args *LVal) *LVal {
	sym, lerr := bindingForm(env, SetSymbol, args)
	if lerr != nil {
		return lerr
	}
	if _, ok := env.Lookup(sym.Str); !ok {
		return env.Errorf("Syntax error: set! cannot create a variable: %s", sym.Str)
	}
	val := env.Eval(args.Cells[1])
	if val.Type == LError {
		return val
	}
	return env.Reset(sym.Str, val)
}

func bindingForm(env *LEnv, form string, args *LVal) (*LVal, *LVal) {
	if args.Len() != 2 {
		return nil, env.Errorf("Syntax error: %s must take two arguments", form)
	}
	sym := args.Cells[0]
	if sym.Type != LSymbol {
		return nil, env.Errorf("Syntax error: %s takes a symbol as its first argument", form)
	}
	return sym, nil
}

// (lambda (param ...) body)
//
// Parameters are checked to be symbols when the closure is called.
func opLambda(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return env.Errorf("Syntax error: lambda must take a parameter list and one body expression")
	}
	formals := args.Cells[0]
	if formals.Type != LSExpr {
		return env.Errorf("Syntax error: lambda takes a list of parameters as its first argument")
	}
	return Lambda(env, formals, args.Cells[1])
}
