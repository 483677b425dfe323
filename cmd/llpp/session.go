package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/llpp/grammar"
	"github.com/npillmayer/llpp/ll"
	"github.com/npillmayer/llpp/scanner"
	"github.com/npillmayer/llpp/table"
)

// session holds a loaded grammar and parse table, ready for parsing.
type session struct {
	grammarPath string
	parser      *ll.Parser
	lexer       *scanner.AlphabetLexer // nil until first needed
}

// openSession loads the grammar and parse table named on the command line.
func openSession() (*session, error) {
	if *rootFlags.grammar == "" || *rootFlags.table == "" {
		return nil, errors.New("please provide a grammar (-g) and a parse table (-t)")
	}
	g, err := loadGrammar(*rootFlags.grammar)
	if err != nil {
		return nil, err
	}
	M, err := loadTable(*rootFlags.table)
	if err != nil {
		return nil, err
	}
	p, err := ll.NewParser(g, M)
	if err != nil {
		return nil, fmt.Errorf("grammar %s and table %s do not fit: %w",
			*rootFlags.grammar, *rootFlags.table, err)
	}
	return &session{
		grammarPath: *rootFlags.grammar,
		parser:      p,
	}, nil
}

func loadGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open production rules %s: %w", path, err)
	}
	defer f.Close()
	g, err := grammar.ReadProductions(f, grammar.Named(baseName(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded %d rules from %s", g.Size(), path)
	return g, nil
}

func loadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open parse table %s: %w", path, err)
	}
	defer f.Close()
	M, err := table.ReadParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return M, nil
}

// tokenize splits an input line into tokens. With lex set, terminals of the
// parse table are recognized even if they are not separated by white space.
func (s *session) tokenize(input string, lex bool) ([]string, error) {
	if !lex {
		return scanner.Lexemes(scanner.Fields(input, nil))
	}
	if s.lexer == nil {
		lexer, err := scanner.NewAlphabetLexer(s.parser.Table().Terminals())
		if err != nil {
			return nil, err
		}
		s.lexer = lexer
	}
	scan, err := s.lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return scanner.Lexemes(scan)
}

// outputFilename names the trace file for a parse: <out>_<production-file>.prsd
func outputFilename(out string, grammarPath string) string {
	out = strings.TrimSuffix(out, ".prsd")
	return fmt.Sprintf("%s_%s.prsd", out, baseName(grammarPath))
}

// baseName strips directories and all extensions from a path.
func baseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	return base
}
