/*
Package parser reads lisp expressions from source text.

	expr   := '(' <expr>* ')' | <atom>
	atom   := <int> | <float> | <symbol>
	int    := /[+-]?[0-9]+/
	float  := decimal floating point literal, e.g. 1.5, -0.25, 2e10
	symbol := /[^\s()]+/

The symbols + and - are never numbers.
*/
package parser

import (
	"io"
	"io/ioutil"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser/lexer"
	"github.com/bmatsuo/minischeme/parser/rdparser"
)

// Parse reads the first expression in text.  Tokens following the first
// expression are ignored.
func Parse(text string) (*lisp.LVal, error) {
	return rdparser.New(lexer.Tokenize(text)).ParseExpression()
}

// ParseAll reads every expression in text.
func ParseAll(text string) ([]*lisp.LVal, error) {
	return rdparser.New(lexer.Tokenize(text)).ParseProgram()
}

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseAll(string(b))
}
