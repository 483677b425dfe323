/*
Package llpp is a toolbox for table-driven LL(1) predictive parsing.

Clients bring a grammar (an ordered list of production rules) and a
pre-computed LL(1) parse table; llpp simulates the push-down automaton over
a token sequence and hands back a full derivation trace together with an
accept/reject verdict. Package structure is as follows:

■ grammar: Package grammar holds production rules, loaded from rows of text
(e.g. a comma-separated ".prod" file) or built programmatically.

■ table: Package table holds the non-terminal × terminal parse table, loaded
from a header row and one row per non-terminal (e.g. a ".ptbl" file).

■ ll: Package ll implements the predictive parser and its trace format.

■ scanner: Package scanner provides tokenizers which turn input text into
terminal symbols.

The base package contains the symbol type which is used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package llpp
