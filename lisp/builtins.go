package lisp

import "fmt"

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(env *LEnv, args *LVal) *LVal
}

// VarArgs is the maximum arity of a builtin that accepts any number of
// arguments.
const VarArgs = -1

type langBuiltin struct {
	name    string
	minArgs int
	maxArgs int
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

// Eval returns the first error in args, or an error if the number of args is
// not acceptable, before invoking the builtin implementation.
func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	for _, arg := range args.Cells {
		if arg.Type == LError {
			return arg
		}
	}
	if lerr := fun.checkArity(env, args); lerr != nil {
		return lerr
	}
	return fun.fun(env, args)
}

func (fun *langBuiltin) checkArity(env *LEnv, args *LVal) *LVal {
	n := args.Len()
	if n >= fun.minArgs && (fun.maxArgs == VarArgs || n <= fun.maxArgs) {
		return nil
	}
	var expect string
	switch {
	case fun.maxArgs == VarArgs:
		expect = fmt.Sprintf("at least %d argument%s.", fun.minArgs, plural(fun.minArgs))
	case fun.minArgs == fun.maxArgs:
		expect = fmt.Sprintf("only %d argument%s.", fun.minArgs, plural(fun.minArgs))
	default:
		expect = fmt.Sprintf("between %d and %d arguments.", fun.minArgs, fun.maxArgs)
	}
	return env.Errorf("Built-in function '%s' takes %s It was called with %d '%v'.",
		fun.name, expect, n, args)
}

var langBuiltins = []*langBuiltin{
	{"+", 0, VarArgs, builtinAdd},
	{"-", 0, VarArgs, builtinSub},
	{"*", 0, VarArgs, builtinMul},
	{"/", 0, VarArgs, builtinDiv},
	{"<", 2, VarArgs, builtinLT},
	{"<=", 2, VarArgs, builtinLEq},
	{">", 2, VarArgs, builtinGT},
	{">=", 2, VarArgs, builtinGEq},
	{"=", 2, VarArgs, builtinEqNum},
	{"not", 1, 1, builtinNot},
	{"car", 1, 1, builtinCAR},
	{"cdr", 1, 1, builtinCDR},
	{"cons", 2, 2, builtinCons},
	{"append", 2, 2, builtinAppend},
	{"list", 0, VarArgs, builtinList},
	{"length", 1, 1, builtinLength},
	{"equal?", 2, 2, builtinEqual},
	{"eq?", 2, 2, builtinEqual},
	{"eqv?", 2, 2, builtinEqual},
	{"symbol?", 1, 1, builtinSymbolP},
	{"list?", 1, 1, builtinListP},
	{"null?", 1, 1, builtinNullP},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return foldNumeric(env, args, Int(0), addNum)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return foldNumeric(env, args, Int(0), subNum)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return foldNumeric(env, args, Int(1), mulNum)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return foldNumeric(env, args, Int(1), divNum)
}

type numericOp func(env *LEnv, a, b *LVal) *LVal

// foldNumeric left-folds op over args.  With fewer than two arguments the
// fold starts from identity, so (- 5) is -5 and (/ 2.0) is 0.5.
func foldNumeric(env *LEnv, args *LVal, identity *LVal, op numericOp) *LVal {
	if lerr := checkNumeric(env, args); lerr != nil {
		return lerr
	}
	acc, rest := identity, args.Cells
	if len(rest) > 1 {
		acc, rest = rest[0], rest[1:]
	}
	for _, c := range rest {
		acc = op(env, acc, c)
		if acc.Type == LError {
			return acc
		}
	}
	return acc
}

func checkNumeric(env *LEnv, args *LVal) *LVal {
	for _, c := range args.Cells {
		if !c.IsNumeric() {
			return env.Errorf("%v was given where a number was expected", c)
		}
	}
	return nil
}

func bothInt(a, b *LVal) bool {
	return a.Type == LInt && b.Type == LInt
}

func toFloat(x *LVal) float64 {
	if x.Type == LInt {
		return float64(x.Int)
	}
	return x.Float
}

func addNum(env *LEnv, a, b *LVal) *LVal {
	if bothInt(a, b) {
		return Int(a.Int + b.Int)
	}
	return Float(toFloat(a) + toFloat(b))
}

func subNum(env *LEnv, a, b *LVal) *LVal {
	if bothInt(a, b) {
		return Int(a.Int - b.Int)
	}
	return Float(toFloat(a) - toFloat(b))
}

func mulNum(env *LEnv, a, b *LVal) *LVal {
	if bothInt(a, b) {
		return Int(a.Int * b.Int)
	}
	return Float(toFloat(a) * toFloat(b))
}

func divNum(env *LEnv, a, b *LVal) *LVal {
	if bothInt(a, b) {
		if b.Int == 0 {
			return env.Errorf("division by zero")
		}
		return Int(a.Int / b.Int)
	}
	return Float(toFloat(a) / toFloat(b))
}

func builtinLT(env *LEnv, args *LVal) *LVal {
	return compareNumeric(env, args,
		func(a, b int) bool { return a < b },
		func(a, b float64) bool { return a < b })
}

func builtinLEq(env *LEnv, args *LVal) *LVal {
	return compareNumeric(env, args,
		func(a, b int) bool { return a <= b },
		func(a, b float64) bool { return a <= b })
}

func builtinGT(env *LEnv, args *LVal) *LVal {
	return compareNumeric(env, args,
		func(a, b int) bool { return a > b },
		func(a, b float64) bool { return a > b })
}

func builtinGEq(env *LEnv, args *LVal) *LVal {
	return compareNumeric(env, args,
		func(a, b int) bool { return a >= b },
		func(a, b float64) bool { return a >= b })
}

func builtinEqNum(env *LEnv, args *LVal) *LVal {
	return compareNumeric(env, args,
		func(a, b int) bool { return a == b },
		func(a, b float64) bool { return a == b })
}

// compareNumeric returns true if every consecutive pair of args satisfies the
// comparison.  Pairs of integers are compared as integers and any other pair
// is compared as floats.
func compareNumeric(env *LEnv, args *LVal, icmp func(a, b int) bool, fcmp func(a, b float64) bool) *LVal {
	if lerr := checkNumeric(env, args); lerr != nil {
		return lerr
	}
	ok := true
	for i := 1; i < len(args.Cells); i++ {
		a, b := args.Cells[i-1], args.Cells[i]
		if bothInt(a, b) {
			ok = ok && icmp(a.Int, b.Int)
		} else {
			ok = ok && fcmp(toFloat(a), toFloat(b))
		}
	}
	return Bool(ok)
}

func builtinNot(env *LEnv, args *LVal) *LVal {
	return Bool(!args.Cells[0].IsTrue())
}

func builtinCAR(env *LEnv, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr || lis.Len() == 0 {
		return env.Errorf("Built-in function 'car' requires a non-empty list argument. It was called with %v", lis)
	}
	return lis.Cells[0]
}

func builtinCDR(env *LEnv, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr || lis.Len() == 0 {
		return env.Errorf("Built-in function 'cdr' requires a non-empty list argument. It was called with %v", lis)
	}
	return SExpr(copyCells(lis.Cells[1:]))
}

func builtinCons(env *LEnv, args *LVal) *LVal {
	head, tail := args.Cells[0], args.Cells[1]
	if tail.Type != LSExpr {
		return SExpr([]*LVal{head, tail})
	}
	cells := make([]*LVal, 0, tail.Len()+1)
	cells = append(cells, head)
	cells = append(cells, tail.Cells...)
	return SExpr(cells)
}

func builtinAppend(env *LEnv, args *LVal) *LVal {
	lis, other := args.Cells[0], args.Cells[1]
	if lis.Type != LSExpr {
		return env.Errorf("Built-in function 'append' requires a list as the first argument. It was called with %v", args)
	}
	cells := copyCells(lis.Cells)
	if other.Type == LSExpr {
		cells = append(cells, other.Cells...)
	} else {
		cells = append(cells, other)
	}
	return SExpr(cells)
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return SExpr(copyCells(args.Cells))
}

func builtinLength(env *LEnv, args *LVal) *LVal {
	lis := args.Cells[0]
	if lis.Type != LSExpr {
		return env.Errorf("Built-in function 'length' requires a list argument. It was called with %v", lis)
	}
	return Int(lis.Len())
}

func builtinEqual(env *LEnv, args *LVal) *LVal {
	return Bool(args.Cells[0].Equal(args.Cells[1]))
}

func builtinSymbolP(env *LEnv, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LSymbol)
}

func builtinListP(env *LEnv, args *LVal) *LVal {
	return Bool(args.Cells[0].Type == LSExpr)
}

func builtinNullP(env *LEnv, args *LVal) *LVal {
	return Bool(args.Cells[0].IsNil())
}

// copyCells returns a new slice so that results never alias the backing
// array of an argument list.
func copyCells(cells []*LVal) []*LVal {
	cp := make([]*LVal, len(cells))
	copy(cp, cells)
	return cp
}
