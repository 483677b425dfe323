package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var exprTerminals = []llpp.Symbol{
	llpp.T("id"), llpp.T("+"), llpp.T("*"), llpp.T("("), llpp.T(")"), llpp.EOF,
}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.scanner")
	defer teardown()
	//
	lexemes, err := Lexemes(Fields("  id +\tid  ", nil))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(lexemes, "|") != "id|+|id" {
		t.Errorf("unexpected lexemes %v", lexemes)
	}
	scan := Fields("id + x", exprTerminals)
	var types []llpp.TokType
	scan.SetErrorHandler(func(error) {})
	for token := scan.NextToken(); token.TokType() != EOF; token = scan.NextToken() {
		types = append(types, token.TokType())
		if token.Lexeme() == "+" && token.Span() != (llpp.Span{3, 4}) {
			t.Errorf("expected '+' to span (3…4), is %v", token.Span())
		}
	}
	if len(types) != 3 || types[0] != 0 || types[1] != 1 || types[2] != Unknown {
		t.Errorf("unexpected token types %v", types)
	}
	if _, err = Lexemes(Fields("id + x", exprTerminals)); err == nil {
		t.Errorf("expected error for non-terminal x")
	}
}

func TestAlphabetLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.scanner")
	defer teardown()
	//
	lexer, err := NewAlphabetLexer(exprTerminals)
	if err != nil {
		t.Fatal(err)
	}
	for i, test := range []struct {
		input   string
		lexemes string
	}{
		{"id", "id"},
		{"id+id", "id + id"},
		{"id * (id+ id)", "id * ( id + id )"},
		{"", ""},
	} {
		scan, err := lexer.Scanner(test.input)
		if err != nil {
			t.Fatal(err)
		}
		lexemes, err := Lexemes(scan)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
		}
		if strings.Join(lexemes, " ") != test.lexemes {
			t.Errorf("test %d: expected %q, have %v", i, test.lexemes, lexemes)
		}
	}
}

func TestAlphabetLexerTokenTypes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.scanner")
	defer teardown()
	//
	lexer, err := NewAlphabetLexer(exprTerminals)
	if err != nil {
		t.Fatal(err)
	}
	scan, _ := lexer.Scanner("(id)")
	expected := []llpp.TokType{3, 0, 4}
	for i, typ := range expected {
		token := scan.NextToken()
		if token.TokType() != typ {
			t.Errorf("token %d: expected type %d, is %d (%q)", i, typ, token.TokType(), token.Lexeme())
		}
	}
	if token := scan.NextToken(); token.TokType() != EOF {
		t.Errorf("expected end of input, have %q", token.Lexeme())
	}
}

func TestAlphabetLexerError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.scanner")
	defer teardown()
	//
	lexer, err := NewAlphabetLexer(exprTerminals)
	if err != nil {
		t.Fatal(err)
	}
	scan, _ := lexer.Scanner("id # id")
	lexemes, err := Lexemes(scan)
	if err == nil {
		t.Errorf("expected scanner error for '#'")
	}
	if len(lexemes) == 0 || lexemes[0] != "id" {
		t.Errorf("expected lexemes before the error to be kept, have %v", lexemes)
	}
	if _, err = NewAlphabetLexer([]llpp.Symbol{llpp.EOF}); err == nil {
		t.Errorf("expected error for empty alphabet")
	}
}

func TestLMScannerStopsOnActionError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.scanner")
	defer teardown()
	//
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`x`), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
		return nil, errors.New("action failed")
	})
	lexer.Add([]byte(`( |\t)+`), Skip)
	if err := lexer.Compile(); err != nil {
		t.Fatal(err)
	}
	s, err := lexer.Scanner([]byte("x x x"))
	if err != nil {
		t.Fatal(err)
	}
	scan := &LMScanner{scanner: s}
	errcnt := 0
	scan.SetErrorHandler(func(error) { errcnt++ })
	if token := scan.NextToken(); token.TokType() != EOF {
		t.Errorf("expected end of input after action error, have %q", token.Lexeme())
	}
	if errcnt != 1 {
		t.Errorf("expected 1 error to be reported, have %d", errcnt)
	}
}
