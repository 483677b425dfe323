package grammar

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/schuko/gconf"
)

// LoadError reports a defect in a row of grammar input.
type LoadError struct {
	Row   int // 1-based row number, 0 if not related to a row
	Cause error
}

func (e *LoadError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("grammar: %v", e.Cause)
	}
	return fmt.Sprintf("grammar: row %d: %v", e.Row, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// --- Load options ----------------------------------------------------------

// Option configures loading of a grammar.
type Option func(*loader)

type loader struct {
	name          string
	epsilon       string
	skipMalformed bool
}

// Named sets the name of the grammar.
func Named(name string) Option {
	return func(l *loader) {
		l.name = name
	}
}

// EpsilonMarker sets the literal which denotes an empty right hand side.
// Default is "e", or the value of configuration key "llpp.epsilon". The end
// marker "$" cannot serve as the epsilon marker.
func EpsilonMarker(lit string) Option {
	return func(l *loader) {
		if lit = strings.TrimSpace(lit); lit != "" && lit != llpp.EndMarkerName {
			l.epsilon = lit
		}
	}
}

// SkipMalformed lets the loader drop rows with a wrong field count instead of
// failing. Rules following a skipped row will be numbered one less than their
// row position, which will break parse tables written for the unskipped rows.
// Default is false, or the value of configuration key "llpp.lenient".
func SkipMalformed(b bool) Option {
	return func(l *loader) {
		l.skipMalformed = b
	}
}

func newLoader(opts []Option) *loader {
	l := &loader{
		name:          "G",
		epsilon:       llpp.DefaultEpsilonName,
		skipMalformed: gconf.GetBool("llpp.lenient"),
	}
	if gconf.IsSet("llpp.epsilon") {
		EpsilonMarker(gconf.GetString("llpp.epsilon"))(l)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// --- Loading ---------------------------------------------------------------

type rawRule struct {
	label string
	lhs   string
	rhs   []string
}

// Load creates a grammar from rows of (rule number, LHS, RHS). Rules are
// numbered by position; the rule number given in the first field is kept as
// a label only.
//
// A row with a field count other than 3 results in an error wrapping
// ErrMalformedRow, unless option SkipMalformed is set. No grammar is returned
// in case of an error.
func Load(rows [][]string, opts ...Option) (*Grammar, error) {
	l := newLoader(opts)
	raw := make([]rawRule, 0, len(rows))
	lhsNames := make(map[string]bool)
	for i, row := range rows {
		r, err := l.parseRow(row)
		if err != nil {
			if l.skipMalformed && errors.Is(err, ErrMalformedRow) {
				tracer().Infof("skipping invalid grammar row %d: %v", i+1, row)
				continue
			}
			return nil, &LoadError{Row: i + 1, Cause: err}
		}
		raw = append(raw, r)
		lhsNames[r.lhs] = true
	}
	if len(raw) == 0 {
		return nil, &LoadError{Cause: fmt.Errorf("%w: no rules", ErrEmptyGrammar)}
	}
	g := newGrammar(l.name, l.epsilon)
	for _, r := range raw {
		rhs := make([]llpp.Symbol, len(r.rhs))
		for j, name := range r.rhs {
			if lhsNames[name] {
				rhs[j] = llpp.N(name)
			} else {
				rhs[j] = llpp.T(name)
			}
		}
		rule := g.addRule(r.label, llpp.N(r.lhs), rhs)
		if n, err := strconv.Atoi(r.label); err == nil && n != rule.Serial {
			tracer().Infof("rule %q is labeled #%s, but will be referenced as #%d", rule, r.label, rule.Serial)
		}
	}
	tracer().Infof("loaded grammar %s with %d rules", g.Name, g.Size())
	g.Dump()
	return g, nil
}

func (l *loader) parseRow(row []string) (rawRule, error) {
	if len(row) != 3 {
		return rawRule{}, fmt.Errorf("%w: expected 3 fields, have %d", ErrMalformedRow, len(row))
	}
	r := rawRule{
		label: strings.TrimSpace(row[0]),
		lhs:   strings.TrimSpace(row[1]),
	}
	if r.lhs == "" || len(strings.Fields(r.lhs)) != 1 {
		return rawRule{}, fmt.Errorf("%w: invalid left hand side %q", ErrMalformedRow, row[1])
	}
	if r.lhs == llpp.EndMarkerName || r.lhs == l.epsilon {
		return rawRule{}, fmt.Errorf("%w: reserved symbol %q as left hand side", ErrMalformedRow, r.lhs)
	}
	rhs := strings.Fields(row[2])
	switch {
	case len(rhs) == 0:
		return rawRule{}, fmt.Errorf("%w: empty right hand side, use %q for epsilon", ErrMalformedRow, l.epsilon)
	case len(rhs) == 1 && rhs[0] == l.epsilon:
		r.rhs = nil
	default:
		for _, name := range rhs {
			if name == l.epsilon {
				return rawRule{}, fmt.Errorf("%w: epsilon marker %q within right hand side %q",
					ErrMalformedRow, l.epsilon, row[2])
			}
			if name == llpp.EndMarkerName {
				return rawRule{}, fmt.Errorf("%w: reserved symbol %q within right hand side %q",
					ErrMalformedRow, name, row[2])
			}
		}
		r.rhs = rhs
	}
	return r, nil
}

// ReadProductions reads comma-separated rows of (rule number, LHS, RHS) and
// loads them as a grammar (see Load).
func ReadProductions(r io.Reader, opts ...Option) (*Grammar, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, &LoadError{Cause: err}
	}
	return Load(rows, opts...)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is checked by the loader
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read production rows: %w", err)
	}
	return rows, nil
}
