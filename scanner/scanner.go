/*
Package scanner turns input text into the terminal tokens a parser expects.

Two tokenizers are provided: (1) a field tokenizer, splitting input at white
space, and (2) an alphabet lexer backed by lexmachine, which recognizes the
terminals of a parse table without the need for white space in between.

    lexer, err := scanner.NewAlphabetLexer(M.Terminals())
    …
    scan, err := lexer.Scanner("id+id")
    tokens, err := scanner.Lexemes(scan)   // => [id + id]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpp.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("llpp.scanner")
}

// EOF is the token type signalling the end of input.
const EOF llpp.TokType = -1

// Unknown is the token type of tokens not classified by a tokenizer.
const Unknown llpp.TokType = -2

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() llpp.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Lexemes reads all tokens from a tokenizer and returns their lexemes. If the
// tokenizer reported any errors, the first one is returned, together with the
// lexemes recognized anyway. Lexemes replaces the tokenizer's error handler.
func Lexemes(t Tokenizer) ([]string, error) {
	var first error
	errcnt := 0
	t.SetErrorHandler(func(e error) {
		logError(e)
		if first == nil {
			first = e
		}
		errcnt++
	})
	var lexemes []string
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		lexemes = append(lexemes, token.Lexeme())
	}
	if first != nil {
		return lexemes, fmt.Errorf("%d scanner error(s), first: %w", errcnt, first)
	}
	return lexemes, nil
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the tokenizers
// of this package.
type DefaultToken struct {
	kind   llpp.TokType
	lexeme string
	Val    interface{}
	span   llpp.Span
}

var _ llpp.Token = DefaultToken{}

// MakeDefaultToken creates a token from its components.
func MakeDefaultToken(typ llpp.TokType, lexeme string, span llpp.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() llpp.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() llpp.Span {
	return t.span
}

// --- Field tokenizer -------------------------------------------------------

// FieldTokenizer splits its input at white space. Every field is a token.
// If it knows the terminals of a parse table, it classifies tokens by their
// column index and reports fields which are not a terminal as errors.
type FieldTokenizer struct {
	input string
	pos   int
	types map[string]llpp.TokType
	Error func(error)
}

var _ Tokenizer = (*FieldTokenizer)(nil)

// Fields creates a tokenizer for an input string. terminals may be nil, in
// which case all tokens are of type Unknown.
func Fields(input string, terminals []llpp.Symbol) *FieldTokenizer {
	ft := &FieldTokenizer{
		input: input,
		Error: logError,
	}
	if len(terminals) > 0 {
		ft.types = tokenTypes(terminals)
	}
	return ft
}

// SetErrorHandler sets an error handler for the scanner.
func (ft *FieldTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		ft.Error = logError
		return
	}
	ft.Error = h
}

// NextToken is part of the Tokenizer interface.
func (ft *FieldTokenizer) NextToken() llpp.Token {
	start := ft.pos
	for start < len(ft.input) && isSpace(ft.input[start]) {
		start++
	}
	if start == len(ft.input) {
		ft.pos = start
		tracer().Debugf("field tokenizer reached end of input")
		return MakeDefaultToken(EOF, "", llpp.Span{uint64(start), uint64(start)})
	}
	end := start
	for end < len(ft.input) && !isSpace(ft.input[end]) {
		end++
	}
	ft.pos = end
	lexeme := ft.input[start:end]
	typ := Unknown
	if ft.types != nil {
		t, ok := ft.types[llpp.T(lexeme).Name()]
		if !ok {
			ft.Error(fmt.Errorf("%q at position %d is not a terminal", lexeme, start))
		} else {
			typ = t
		}
	}
	return MakeDefaultToken(typ, lexeme, llpp.Span{uint64(start), uint64(end)})
}

func isSpace(b byte) bool {
	return strings.IndexByte(" \t\r\n\v\f", b) >= 0
}

// tokenTypes maps terminal names to their index, skipping the end marker.
func tokenTypes(terminals []llpp.Symbol) map[string]llpp.TokType {
	types := make(map[string]llpp.TokType, len(terminals))
	for i, a := range terminals {
		if a == llpp.EOF {
			continue
		}
		types[a.Name()] = llpp.TokType(i)
	}
	return types
}
