package table

import (
	"fmt"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/llpp/grammar"
)

// Validate checks a parse table against the grammar it has been written for.
// It is an error for a cell to reference a rule number outside of 1…g.Size();
// the error wraps grammar.ErrUnknownRule.
//
// Validate returns the left hand side non-terminals of g which have no row in
// the table. This is not an error: a parse will be rejected as soon as such a
// non-terminal shows up on top of the stack.
func (t *Table) Validate(g *grammar.Grammar) ([]llpp.Symbol, error) {
	var err error
	t.EachCell(func(A, a llpp.Symbol, rule int) {
		if err != nil {
			return
		}
		if _, e := g.Rule(rule); e != nil {
			err = fmt.Errorf("parse table cell (%s, %s): %w", A, a, e)
		}
	})
	if err != nil {
		return nil, err
	}
	var missing []llpp.Symbol
	for _, A := range g.NonTerminals() {
		if !t.HasRow(A) {
			tracer().Infof("parse table has no row for non-terminal %s", A)
			missing = append(missing, A)
		}
	}
	return missing, nil
}
