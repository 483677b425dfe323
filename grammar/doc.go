/*
Package grammar holds the production rules of a context-free grammar, as
needed by a table-driven LL(1) parser.

Rules are numbered by their position: the first rule loaded is rule #1, the
second rule #2, and so on. Parse tables refer to rules by these numbers, so
the order of loading is significant. The start symbol of a grammar is the
left hand side of rule #1.

Loading Rules

Rules are usually read from rows of text, each consisting of three fields:
the rule number as given, the left hand side non-terminal and the right hand
side, a whitespace separated list of symbols. A right hand side consisting
of the epsilon marker only ("e" by default) denotes an empty production.

    1,E,T E'
    2,E',+ T E'
    3,E',e
    4,T,id

Clients call ReadProductions for comma-separated input like the above, or
Load for rows already split into fields. After all rows are read, every
symbol which appears on the left hand side of a rule is a non-terminal, all
others are terminals.

Building a Grammar

Grammars may be built programmatically, too, using a grammar builder:

    b := grammar.NewGrammarBuilder("G")
    b.LHS("E").N("T").N("E'").End()           // E  ->  T E'
    b.LHS("E'").T("+").N("T").N("E'").End()   // E' ->  + T E'
    b.LHS("E'").Epsilon()                     // E' ->
    b.LHS("T").T("id").End()                  // T  ->  id
    g, err := b.Grammar()

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpp.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llpp.ll")
}
