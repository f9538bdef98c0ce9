package rdparser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser/lexer"
)

// Errors wrapped by SyntaxError.
var (
	// ErrUnexpectedEOF is returned when the tokens run out before an
	// expression is complete.  Interactive callers may read more input and
	// try again.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrUnbalanced is returned when a closing parenthesis appears where an
	// expression is expected.
	ErrUnbalanced = errors.New("unbalanced parentheses")
)

// SyntaxError describes a failure to read an expression.
type SyntaxError struct {
	Pos   int    // index of the offending token
	Token string // the offending token, empty at the end of input
	Err   error
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("syntax error at token %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("syntax error at token %d %q: %v", e.Pos, e.Token, e.Err)
}

// Unwrap returns the underlying error so that errors.Is can match it.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Read parses one expression from tokens starting at index pos.  Read returns
// the expression and the index of the first token following it.
func Read(tokens []string, pos int) (*lisp.LVal, int, error) {
	if pos >= len(tokens) {
		return nil, pos, &SyntaxError{Pos: pos, Err: ErrUnexpectedEOF}
	}
	tok := tokens[pos]
	switch tok {
	case lexer.ParenL:
		return readList(tokens, pos+1)
	case lexer.ParenR:
		return nil, pos, &SyntaxError{Pos: pos, Token: tok, Err: ErrUnbalanced}
	default:
		return Atom(tok), pos + 1, nil
	}
}

// readList reads expressions until it consumes the closing parenthesis of a
// list whose opening parenthesis precedes pos.
func readList(tokens []string, pos int) (*lisp.LVal, int, error) {
	cells := []*lisp.LVal{}
	for {
		if pos >= len(tokens) {
			return nil, pos, &SyntaxError{Pos: pos, Err: ErrUnexpectedEOF}
		}
		if tokens[pos] == lexer.ParenR {
			return lisp.SExpr(cells), pos + 1, nil
		}
		var (
			expr *lisp.LVal
			err  error
		)
		expr, pos, err = Read(tokens, pos)
		if err != nil {
			return nil, pos, err
		}
		cells = append(cells, expr)
	}
}

// Atom classifies a token which is not a parenthesis.  Integers are preferred
// over floats and anything that is not a number is a symbol.  The tokens "+"
// and "-" are always symbols.
func Atom(tok string) *lisp.LVal {
	if tok == "+" || tok == "-" {
		return lisp.Symbol(tok)
	}
	if x, err := strconv.ParseInt(tok, 10, strconv.IntSize); err == nil {
		return lisp.Int(int(x))
	}
	if isDecimal(tok) {
		if x, err := strconv.ParseFloat(tok, 64); err == nil {
			return lisp.Float(x)
		}
	}
	return lisp.Symbol(tok)
}

// isDecimal excludes the textual forms accepted by strconv.ParseFloat that
// are better read as symbols (inf, nan, hexadecimal mantissas, underscores).
func isDecimal(tok string) bool {
	digits := false
	for _, c := range tok {
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return digits
}

// Parser is a lisp parser which reads expressions from a sequence of tokens.
type Parser struct {
	tokens []string
	pos    int
}

// New initializes and returns a new Parser that reads from tokens.
func New(tokens []string) *Parser {
	return &Parser{tokens: tokens}
}

// Pos returns the index of the next unread token.
func (p *Parser) Pos() int {
	return p.pos
}

// Done returns true when every token has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.tokens)
}

// ParseExpression reads the next expression.  When an error is returned the
// parser does not advance.
func (p *Parser) ParseExpression() (*lisp.LVal, error) {
	expr, pos, err := Read(p.tokens, p.pos)
	if err != nil {
		return nil, err
	}
	p.pos = pos
	return expr, nil
}

// ParseProgram reads expressions until all tokens have been consumed.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.Done() {
		expr, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}
