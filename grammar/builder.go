package grammar

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/llpp"
)

// GrammarBuilder is a builder type for grammars. Rules are numbered in the
// order they are ended. Symbols are typed explicitly by the client.
type GrammarBuilder struct {
	g *Grammar
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar
// to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		g: newGrammar(gname, llpp.DefaultEpsilonName),
	}
}

// RuleBuilder is a builder type for a single rule. Create it with
// GrammarBuilder.LHS(…) and finish it with End() or Epsilon().
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs llpp.Symbol
	rhs []llpp.Symbol
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{
		gb:  gb,
		lhs: llpp.N(name),
	}
}

// N appends a non-terminal to the right hand side of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, llpp.N(name))
	return rb
}

// T appends a terminal to the right hand side of a rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, llpp.T(name))
	return rb
}

// End ends a rule and adds it to the grammar.
func (rb *RuleBuilder) End() *Rule {
	g := rb.gb.g
	label := strconv.Itoa(g.Size() + 1)
	return g.addRule(label, rb.lhs, rb.rhs)
}

// Epsilon ends a rule with an empty right hand side. Symbols appended before
// are dropped.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far. It is an error to build an empty
// grammar, a grammar where a symbol declared as a non-terminal never occurs
// on a left hand side, or a grammar using the end marker within a rule.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := gb.g
	if g.Size() == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ErrEmptyGrammar, g.Name)
	}
	for _, r := range g.rules {
		for _, sym := range r.rhs {
			if sym == llpp.EOF {
				return nil, fmt.Errorf("%w: rule %q uses the end marker", ErrMalformedRow, r)
			}
			if sym.IsNonTerminal() && !g.IsNonTerminal(sym) {
				return nil, fmt.Errorf("grammar %q: non-terminal %s has no rule", g.Name, sym)
			}
		}
	}
	g.Dump()
	return g, nil
}
