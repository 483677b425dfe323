package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/llpp"
)

// Errors returned by grammar operations.
var (
	ErrMalformedRow = errors.New("malformed grammar row")
	ErrUnknownRule  = errors.New("unknown rule")
	ErrEmptyGrammar = errors.New("empty grammar")
)

// --- Rules -----------------------------------------------------------------

// Rule is a production rule
//
//    LHS  ->  X1 … Xn
//
// Rules are immutable once they are part of a grammar.
type Rule struct {
	Serial  int         // 1-based position within the grammar
	Label   string      // rule number as given by the source row
	LHS     llpp.Symbol // a non-terminal
	rhs     []llpp.Symbol
	epsilon string // spelling of the empty right hand side
}

// RHS returns the right hand side of a rule. An epsilon production returns an
// empty slice. Clients must not modify the slice.
func (r *Rule) RHS() []llpp.Symbol {
	return r.rhs
}

// IsEpsilon is true for a rule with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

// String returns a rule in the form "E -> T E'". An empty right hand side is
// represented by the epsilon marker.
func (r *Rule) String() string {
	if r.IsEpsilon() {
		eps := r.epsilon
		if eps == "" {
			eps = llpp.DefaultEpsilonName
		}
		return fmt.Sprintf("%s -> %s", r.LHS, eps)
	}
	return fmt.Sprintf("%s -> %s", r.LHS, llpp.Join(r.rhs))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an ordered list of production rules. Rule numbers are 1-based
// positions in this list.
//
// A grammar is read-only after it has been loaded or built and may be shared
// between goroutines.
type Grammar struct {
	Name         string
	rules        []*Rule
	nonterminals *treeset.Set
	terminals    *treeset.Set
	epsilon      string
}

func newGrammar(name string, epsilon string) *Grammar {
	return &Grammar{
		Name:         name,
		rules:        make([]*Rule, 0, 16),
		nonterminals: treeset.NewWith(symbolComparator),
		terminals:    treeset.NewWith(symbolComparator),
		epsilon:      epsilon,
	}
}

// addRule appends a rule, numbering it positionally.
func (g *Grammar) addRule(label string, lhs llpp.Symbol, rhs []llpp.Symbol) *Rule {
	r := &Rule{
		Serial:  len(g.rules) + 1,
		Label:   label,
		LHS:     lhs,
		rhs:     rhs,
		epsilon: g.epsilon,
	}
	g.rules = append(g.rules, r)
	g.nonterminals.Add(lhs)
	for _, sym := range rhs {
		if sym.IsTerminal() {
			g.terminals.Add(sym)
		}
	}
	return r
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number n, with n counting from 1.
func (g *Grammar) Rule(n int) (*Rule, error) {
	if n < 1 || n > len(g.rules) {
		return nil, fmt.Errorf("%w: #%d (grammar %q has %d rules)", ErrUnknownRule, n, g.Name, len(g.rules))
	}
	return g.rules[n-1], nil
}

// StartSymbol returns the left hand side of rule #1.
func (g *Grammar) StartSymbol() (llpp.Symbol, error) {
	if len(g.rules) == 0 {
		return llpp.Symbol{}, fmt.Errorf("%w: grammar %q has no start symbol", ErrEmptyGrammar, g.Name)
	}
	return g.rules[0].LHS, nil
}

// EachRule calls f for every rule, in rule number order.
func (g *Grammar) EachRule(f func(r *Rule)) {
	for _, r := range g.rules {
		f(r)
	}
}

// Epsilon returns the spelling of empty right hand sides for this grammar.
func (g *Grammar) Epsilon() string {
	return g.epsilon
}

// IsNonTerminal is true if sym is the left hand side of at least one rule.
func (g *Grammar) IsNonTerminal(sym llpp.Symbol) bool {
	return g.nonterminals.Contains(sym)
}

// NonTerminals returns all left hand side symbols, sorted by name.
func (g *Grammar) NonTerminals() []llpp.Symbol {
	return symbols(g.nonterminals)
}

// Terminals returns all terminals occuring on right hand sides, sorted by name.
func (g *Grammar) Terminals() []llpp.Symbol {
	return symbols(g.terminals)
}

// Dump is a debugging helper, tracing all rules.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("------------------------------------------")
}

func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.rules {
		b.WriteString(fmt.Sprintf("%d: %s\n", r.Serial, r))
	}
	return b.String()
}

// --- Helpers ----------------------------------------------------------

// We need this for the symbol sets. It sorts symbols by name, then by kind.
func symbolComparator(a, b interface{}) int {
	s1 := a.(llpp.Symbol)
	s2 := b.(llpp.Symbol)
	if c := utils.StringComparator(s1.Name(), s2.Name()); c != 0 {
		return c
	}
	return utils.IntComparator(int(s1.Kind()), int(s2.Kind()))
}

func symbols(set *treeset.Set) []llpp.Symbol {
	syms := make([]llpp.Symbol, 0, set.Size())
	for _, x := range set.Values() {
		syms = append(syms, x.(llpp.Symbol))
	}
	return syms
}
