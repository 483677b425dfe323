package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Expression grammar used throughout the tests:
//
//     1: E  -> T E'
//     2: E' -> + T E'
//     3: E' -> e
//     4: T  -> id
//
var exprRows = [][]string{
	{"1", "E", "T E'"},
	{"2", "E'", "+ T E'"},
	{"3", "E'", "e"},
	{"4", "T", "id"},
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	g, err := Load(exprRows)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Errorf("expected grammar to have 4 rules, has %d", g.Size())
	}
	S, err := g.StartSymbol()
	if err != nil {
		t.Fatal(err)
	}
	if S != llpp.N("E") {
		t.Errorf("expected start symbol to be non-terminal E, is %v/%v", S, S.Kind())
	}
	r, _ := g.Rule(2)
	rhs := r.RHS()
	if len(rhs) != 3 {
		t.Fatalf("expected |RHS(#2)| = 3, is %d", len(rhs))
	}
	if rhs[0] != llpp.T("+") || rhs[1] != llpp.N("T") || rhs[2] != llpp.N("E'") {
		t.Errorf("symbols of rule #2 classified wrong: %v", rhs)
	}
	if r.String() != "E' -> + T E'" {
		t.Errorf("unexpected rule string %q", r.String())
	}
}

func TestEpsilonRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	g, err := Load(exprRows)
	if err != nil {
		t.Fatal(err)
	}
	r, _ := g.Rule(3)
	if !r.IsEpsilon() || len(r.RHS()) != 0 {
		t.Errorf("expected rule #3 to have an empty RHS, has %v", r.RHS())
	}
	if r.String() != "E' -> e" {
		t.Errorf("unexpected rule string %q", r.String())
	}
}

func TestCustomEpsilonMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	rows := [][]string{
		{"1", "A", "a A"},
		{"2", "A", "ε"},
		{"3", "B", "e"}, // 'e' is an ordinary terminal now
	}
	g, err := Load(rows, EpsilonMarker("ε"))
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := g.Rule(2)
	r3, _ := g.Rule(3)
	if !r2.IsEpsilon() {
		t.Errorf("expected rule #2 to be an epsilon rule")
	}
	if r3.IsEpsilon() || r3.RHS()[0] != llpp.T("e") {
		t.Errorf("expected rule #3 to derive terminal e, is %v", r3)
	}
}

func TestPositionalRuleIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	rows := [][]string{
		{"10", "S", "a B"},
		{"7", "B", "b"},
		{"x", "B", "e"},
	}
	g, err := Load(rows)
	if err != nil {
		t.Fatal(err)
	}
	for k := 1; k <= 3; k++ {
		r, err := g.Rule(k)
		if err != nil {
			t.Fatal(err)
		}
		if r.Serial != k || r.Label != rows[k-1][0] {
			t.Errorf("rule #%d has serial %d and label %q", k, r.Serial, r.Label)
		}
	}
	r, _ := g.Rule(2)
	if r.RHS()[0] != llpp.T("b") {
		t.Errorf("expected Rule(2) to be the rule loaded at position 2, is %v", r)
	}
}

func TestUnknownRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	g, _ := Load(exprRows)
	for _, n := range []int{-1, 0, 5, 99} {
		if _, err := g.Rule(n); !errors.Is(err, ErrUnknownRule) {
			t.Errorf("expected ErrUnknownRule for Rule(%d), got %v", n, err)
		}
	}
}

func TestMalformedRow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	inputs := [][][]string{
		{{"1", "S", "a"}, {"2", "S"}},
		{{"1", "S", "a", "b"}},
		{{"1", "", "a"}},
		{{"1", "S", ""}},
		{{"1", "S", "a e b"}},
		{{"1", "$", "a"}},
		{{"1", "S", "a $"}},
		{{"1", "S", "$"}},
	}
	for i, rows := range inputs {
		g, err := Load(rows)
		if !errors.Is(err, ErrMalformedRow) {
			t.Errorf("#%d: expected ErrMalformedRow, got %v", i, err)
		}
		if g != nil {
			t.Errorf("#%d: expected no grammar on load error", i)
		}
	}
	_, err := Load(inputs[0])
	var lerr *LoadError
	if !errors.As(err, &lerr) || lerr.Row != 2 {
		t.Errorf("expected a load error for row 2, got %v", err)
	}
}

func TestSkipMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	rows := [][]string{
		{"1", "S", "a B"},
		{"2", "B"},
		{"3", "B", "b"},
	}
	g, err := Load(rows, SkipMalformed(true))
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Errorf("expected 2 rules, have %d", g.Size())
	}
	r, _ := g.Rule(2)
	if r.Label != "3" {
		t.Errorf("expected rule #2 to be labeled 3, is %q", r.Label)
	}
}

func TestEmptyGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	if _, err := Load(nil); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected ErrEmptyGrammar, got %v", err)
	}
	g := newGrammar("empty", "e")
	if _, err := g.StartSymbol(); !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected ErrEmptyGrammar for start symbol, got %v", err)
	}
}

func TestReadProductions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	input := "1,E,T E'\n2,E',+ T E'\n3,E',e\n\n4,T,id\n"
	g, err := ReadProductions(strings.NewReader(input), Named("expr"))
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "expr" || g.Size() != 4 {
		t.Errorf("expected grammar 'expr' with 4 rules, have %q with %d", g.Name, g.Size())
	}
	nts := g.NonTerminals()
	if len(nts) != 3 || nts[0] != llpp.N("E") || nts[1] != llpp.N("E'") || nts[2] != llpp.N("T") {
		t.Errorf("unexpected non-terminals %v", nts)
	}
	ts := g.Terminals()
	if len(ts) != 2 || ts[0] != llpp.T("+") || ts[1] != llpp.T("id") {
		t.Errorf("unexpected terminals %v", ts)
	}
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	r3 := b.LHS("E'").Epsilon()
	b.LHS("T").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if r3.Serial != 3 || !r3.IsEpsilon() {
		t.Errorf("expected rule #3 to be an epsilon rule, is #%d %v", r3.Serial, r3)
	}
	loaded, _ := Load(exprRows)
	if g.String() != loaded.String() {
		t.Errorf("built grammar differs from loaded grammar:\n%s\n%s", g, loaded)
	}
	b = NewGrammarBuilder("G2")
	b.LHS("S").N("A").End()
	if _, err := b.Grammar(); err == nil {
		t.Errorf("expected error for undefined non-terminal A")
	}
	b = NewGrammarBuilder("G3")
	b.LHS("S").T("a").T("$").End()
	if _, err := b.Grammar(); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected end marker within a rule to be rejected, got %v", err)
	}
}

func TestConfiguredDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.ll")
	defer teardown()
	gconf.Initialize(testconfig.Conf{
		"tracing.adapter": "test",
		"llpp.epsilon":    "ε",
		"llpp.lenient":    true,
	})
	defer gconf.Initialize(testconfig.Conf{"tracing.adapter": "test"})
	//
	rows := [][]string{
		{"1", "S", "a S"},
		{"2", "S"},
		{"3", "S", "ε"},
	}
	g, err := Load(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 || g.Epsilon() != "ε" {
		t.Fatalf("expected 2 rules with epsilon marker ε, have %d with %q", g.Size(), g.Epsilon())
	}
	if r, _ := g.Rule(2); !r.IsEpsilon() {
		t.Errorf("expected rule #2 to be an epsilon rule, is %v", r)
	}
	if _, err = Load(rows, SkipMalformed(false)); !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected option to override configuration, got %v", err)
	}
}
