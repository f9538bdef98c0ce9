package lisp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LBool
	LInt
	LFloat
	LSymbol
	LSExpr
	LFun
	LLambda
	LError
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "bool",
	LInt:     "int",
	LFloat:   "float",
	LSymbol:  "symbol",
	LSExpr:   "list",
	LFun:     "procedure",
	LLambda:  "closure",
	LError:   "error",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a function that performs executes a lisp function.
type LBuiltin func(env *LEnv, args *LVal) *LVal

// LVal is a lisp value.  Exactly one group of fields is meaningful for a
// given Type.
type LVal struct {
	Type LValType

	Bool  bool
	Int   int
	Float float64

	// Str is the name of an LSymbol, the message of an LError, or the name
	// of a builtin LFun.
	Str string

	// Cells holds the elements of an LSExpr.
	Cells []*LVal

	// Builtin is the native implementation of an LFun.
	Builtin LBuiltin

	// Variables needed for closure (LLambda) values.  Env is shared, never
	// copied, so that closures created in the same scope observe each
	// other's mutations.
	Env     *LEnv
	Formals *LVal
	Body    *LVal

	// Stack is the call stack at the time an LError was created, when
	// known.
	Stack *CallStack
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Int returns an LVal representing the integer x.
func Int(x int) *LVal {
	return &LVal{
		Type: LInt,
		Int:  x,
	}
}

// Float returns an LVal representing the floating point number x.
func Float(x float64) *LVal {
	return &LVal{
		Type:  LFloat,
		Float: x,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// SExpr returns an LVal representing a list of cells.  A list is both the
// only compound data type and the representation of unevaluated code.
func SExpr(cells []*LVal) *LVal {
	return &LVal{
		Type:  LSExpr,
		Cells: cells,
	}
}

// Nil returns an LVal representing nil, the empty list.
func Nil() *LVal {
	return SExpr(nil)
}

// Fun returns an LVal representing a builtin procedure with the given name.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Lambda returns an anonymous function that has formals as arguments and the
// given body, which may reference symbols specified in the list of formals.
// The returned closure captures env by reference.
func Lambda(env *LEnv, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LLambda,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Str:  err.Error(),
	}
}

// Errorf returns an LVal representing with a formatted error message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  fmt.Sprintf(format, v...),
	}
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	return len(v.Cells)
}

// IsNil returns true if v is the empty list.
func (v *LVal) IsNil() bool {
	return v.Type == LSExpr && len(v.Cells) == 0
}

// IsNumeric returns true if v is an integer or a float.
func (v *LVal) IsNumeric() bool {
	return v.Type == LInt || v.Type == LFloat
}

// IsCallable returns true if v may appear at the head of a procedure
// application.
func (v *LVal) IsCallable() bool {
	return v.Type == LFun || v.Type == LLambda
}

// IsTrue reports the truthiness of v.  Only false and numeric zero are false.
func (v *LVal) IsTrue() bool {
	switch v.Type {
	case LBool:
		return v.Bool
	case LInt:
		return v.Int != 0
	case LFloat:
		return v.Float != 0
	default:
		return true
	}
}

// Equal compares v and other structurally.  Procedures and closures are only
// equal to themselves and errors are never equal to anything.
func (v *LVal) Equal(other *LVal) bool {
	if v.Type == LError || other.Type == LError {
		return false
	}
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case LBool:
		return v.Bool == other.Bool
	case LInt:
		return v.Int == other.Int
	case LFloat:
		return v.Float == other.Float
	case LSymbol:
		return v.Str == other.Str
	case LSExpr:
		if len(v.Cells) != len(other.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(other.Cells[i]) {
				return false
			}
		}
		return true
	case LFun, LLambda:
		return v == other
	default:
		panic(fmt.Sprintf("invalid value type: %v", v.Type))
	}
}

// Stringify returns the canonical printed form of v.
func Stringify(v *LVal) string {
	return v.String()
}

func (v *LVal) String() string {
	switch v.Type {
	case LBool:
		if v.Bool {
			return TrueSymbol
		}
		return FalseSymbol
	case LInt:
		return strconv.Itoa(v.Int)
	case LFloat:
		return formatFloat(v.Float)
	case LSymbol:
		return v.Str
	case LSExpr:
		return exprString(v, "(", ")")
	case LFun:
		return "<builtin " + v.Str + ">"
	case LLambda:
		return "<lambda>"
	case LError:
		return "Error: " + v.Str
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// Whole numbers keep a single decimal digit so they read back as floats.
func formatFloat(x float64) string {
	if x == math.Trunc(x) && !math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
