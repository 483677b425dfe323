/*
Command llpp runs a table-driven LL(1) predictive parser over token input.

It loads a grammar from a file of productions (.prod) and a parse table
(.ptbl), both in comma-separated format, and prints a step-by-step trace of
the parse:

    llpp parse -g expr.prod -t expr.ptbl id + id
    llpp parse -g expr.prod -t expr.ptbl --lex -o result "id+id"
    llpp show -g expr.prod -t expr.ptbl --html expr.html
    llpp repl -g expr.prod -t expr.ptbl

With option -o the trace is saved to <out>_<production-file-name>.prsd.

Configuration is read from an llpp.nt file in NestedText format, if one is
found at the standard configuration locations. Keys are

    llpp:
      maxsteps: 10000
      epsilon: e
      lenient: false
    tracelevel:
      root: Error

Command line flags override configured values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'llpp.cli'.
func tracer() tracing.Trace {
	return tracing.Select("llpp.cli")
}
