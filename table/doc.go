/*
Package table holds LL(1) parse tables.

A parse table maps pairs of (non-terminal, terminal) to the number of the
production rule to expand the non-terminal with, when the terminal is the
current lookahead. Tables are not computed here, but loaded from text: a
header row lists the terminal alphabet (the first column is reserved for the
non-terminal labels), followed by one row per non-terminal:

    ,id,+,$
    E,1,,
    E',,2,3
    T,4,,

An empty cell denotes "no applicable rule". Clients call ReadParseTable for
comma-separated input like the above, or Load for rows already split into
fields.

Looking up a cell tells apart three different ways of failing to find a
rule: the non-terminal has no row, the terminal is not part of the alphabet,
or the cell is blank. Parsers will usually treat all of them as a syntax
error, but the distinction is useful for diagnostics.

The table's cells are stored in a sparse matrix (see sub-package sparse).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpp.ll'.
func tracer() tracing.Trace {
	return tracing.Select("llpp.ll")
}
