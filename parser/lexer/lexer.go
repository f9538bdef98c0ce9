/*
Package lexer splits lisp source text into tokens.

Parentheses are always tokens of their own and every other token is a maximal
run of non-space characters.  There is no escaping, so a parenthesis can never
be part of an atom.
*/
package lexer

import "strings"

// Parenthesis tokens.
const (
	ParenL = "("
	ParenR = ")"
)

var padder = strings.NewReplacer(ParenL, " "+ParenL+" ", ParenR, " "+ParenR+" ")

// Tokenize returns the tokens of text in order.  Empty text produces no
// tokens.
func Tokenize(text string) []string {
	return strings.Fields(padParens(text))
}

func padParens(text string) string {
	return padder.Replace(text)
}
