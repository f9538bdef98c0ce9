package lisp

// Symbols naming the special operators.  A list whose head is one of these
// literal symbols is never treated as a procedure application.
const (
	QuoteSymbol  = "quote"
	BeginSymbol  = "begin"
	IfSymbol     = "if"
	DefineSymbol = "define"
	SetSymbol    = "set!"
	LambdaSymbol = "lambda"
)

// TrueSymbol and FalseSymbol are the printed forms of boolean values.  They
// are also bound to the corresponding values in a root environment.
const (
	TrueSymbol  = "#t"
	FalseSymbol = "#f"
)
