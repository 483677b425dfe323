package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprProductions = `1,E,T E'
2,E',+ T E'
3,E',e
4,T,id
`

const exprParseTable = `NT,id,+,$
E,1,,
E',,2,3
T,4,,
`

func writeFixtures(t *testing.T) (string, string) {
	dir := t.TempDir()
	gpath := filepath.Join(dir, "expr.prod")
	tpath := filepath.Join(dir, "expr.ptbl")
	if err := os.WriteFile(gpath, []byte(exprProductions), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tpath, []byte(exprParseTable), 0644); err != nil {
		t.Fatal(err)
	}
	return gpath, tpath
}

func TestOutputFilename(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.cli")
	defer teardown()
	//
	for i, test := range []struct {
		out, grammar, expected string
	}{
		{"result", "expr.prod", "result_expr.prsd"},
		{"result.prsd", "/tmp/grammars/expr.prod", "result_expr.prsd"},
		{"out/run", "expr.v2.prod", "out/run_expr.prsd"},
	} {
		if name := outputFilename(test.out, test.grammar); name != test.expected {
			t.Errorf("test %d: expected %q, have %q", i, test.expected, name)
		}
	}
}

func TestSession(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.cli")
	defer teardown()
	//
	gpath, tpath := writeFixtures(t)
	*rootFlags.grammar, *rootFlags.table = gpath, tpath
	defer func() { *rootFlags.grammar, *rootFlags.table = "", "" }()
	s, err := openSession()
	if err != nil {
		t.Fatal(err)
	}
	if s.parser.Grammar().Name != "expr" {
		t.Errorf("expected grammar to be named after its file, is %q", s.parser.Grammar().Name)
	}
	tokens, err := s.tokenize("id+ id", true)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(tokens, " ") != "id + id" {
		t.Errorf("unexpected tokens %v", tokens)
	}
	outcome, err := s.parse("id + id", false)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Accepted {
		t.Errorf("expected input to be accepted")
	}
	filename := outputFilename(filepath.Join(t.TempDir(), "trace"), gpath)
	if err = saveTrace(outcome, filename); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 10 || lines[0] != "Stack,Input Buffer,Action" {
		t.Errorf("unexpected trace file content:\n%s", data)
	}
}

func TestSessionLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llpp.cli")
	defer teardown()
	//
	gpath, _ := writeFixtures(t)
	bad := filepath.Join(t.TempDir(), "bad.ptbl")
	if err := os.WriteFile(bad, []byte("NT,id,$\nE,99,\n"), 0644); err != nil {
		t.Fatal(err)
	}
	*rootFlags.grammar, *rootFlags.table = gpath, bad
	defer func() { *rootFlags.grammar, *rootFlags.table = "", "" }()
	if _, err := openSession(); err == nil {
		t.Errorf("expected error for table referencing rule 99")
	}
	*rootFlags.table = ""
	if _, err := openSession(); err == nil {
		t.Errorf("expected error for missing table")
	}
}
