package scanner

import (
	"errors"
	"strings"

	"github.com/npillmayer/llpp"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// AlphabetLexer is a lexmachine adapter recognizing the terminals of a parse
// table. Create one with NewAlphabetLexer.
type AlphabetLexer struct {
	Lexer     *lexmachine.Lexer
	terminals []llpp.Symbol
}

// NewAlphabetLexer compiles a DFA for a list of terminals, usually the
// terminal alphabet of a parse table. Each terminal is recognized literally;
// the token type of a token is the index of its terminal in the list. White
// space between tokens is skipped. The end marker is not part of the
// alphabet.
//
// NewAlphabetLexer will return an error if compiling the DFA failed.
func NewAlphabetLexer(terminals []llpp.Symbol) (*AlphabetLexer, error) {
	adapter := &AlphabetLexer{
		Lexer:     lexmachine.NewLexer(),
		terminals: terminals,
	}
	cnt := 0
	for i, a := range terminals {
		if a == llpp.EOF || a.Name() == "" {
			continue
		}
		adapter.Lexer.Add([]byte(literalPattern(a.Name())), MakeToken(a.Name(), i))
		cnt++
	}
	if cnt == 0 {
		return nil, errors.New("alphabet lexer needs at least one terminal")
	}
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Terminals returns the alphabet of the lexer.
func (al *AlphabetLexer) Terminals() []llpp.Symbol {
	return al.terminals
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (al *AlphabetLexer) Scanner(input string) (*LMScanner, error) {
	s, err := al.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface. Unrecognized input is
// reported to the error handler and skipped. Any other error is reported and
// ends the input.
func (lms *LMScanner) NextToken() llpp.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", llpp.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			pos := uint64(lms.scanner.TC)
			return MakeDefaultToken(EOF, "", llpp.Span{pos, pos})
		}
		lms.scanner.TC = ui.FailTC
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return MakeDefaultToken(EOF, "", llpp.Span{pos, pos})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return MakeDefaultToken(
		llpp.TokType(token.Type),
		string(token.Lexeme),
		llpp.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// literalPattern escapes ASCII punctuation of a literal for use as a
// lexmachine pattern.
func literalPattern(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < 0x80 && !isAlnum(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}
