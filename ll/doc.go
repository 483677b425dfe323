/*
Package ll implements a table-driven LL(1) predictive parser.

A parser is created from a grammar and a parse table, both of which are
supplied by the client. No FIRST- or FOLLOW-sets are computed, and the table
is not checked for conflicts: the parser trusts the table. It simulates the
canonical push-down automaton, starting with a stack of

    $ S

where S is the start symbol of the grammar, and an input of the tokens to
parse, followed by the end marker $. On every step the parser looks at the top
of the stack X and the current input token a:

    X == a     pop X and advance the input ("Match")
    X in N     replace X by the right hand side of rule M[X,a] ("Output")
    otherwise  reject

Every step is recorded in a trace, together with snapshots of the stack and
the remaining input as they were before the step. The input is accepted if
the stack and the input are exhausted at the same time.

    g, _ := grammar.ReadProductions(prodFile)
    M, _ := table.ReadParseTable(tableFile)
    p, err := ll.NewParser(g, M)
    …
    outcome, err := p.Run([]string{"id", "+", "id"})
    fmt.Println(outcome.Verdict())   // => valid

A parser holds no state between calls to Run and may be used by concurrent
goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpp.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llpp.ll")
}
