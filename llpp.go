package llpp

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// --- Grammar symbols -------------------------------------------------------

// SymKind tells terminals and non-terminals apart. The end marker and the
// epsilon marker have kinds of their own, so that comparisons never have to
// rely on magic strings.
type SymKind int8

// Kinds of grammar symbols.
const (
	Terminal SymKind = iota
	NonTerminal
	EndMarker
	EpsilonMarker
)

func (k SymKind) String() string {
	switch k {
	case Terminal:
		return "T"
	case NonTerminal:
		return "N"
	case EndMarker:
		return "$"
	case EpsilonMarker:
		return "ε"
	}
	return "?"
}

// Symbol is a grammar symbol. Symbols are small values and may be compared
// with ==. Two symbols are equal if both their names and their kinds are equal,
// thus a terminal "E" will never be mistaken for a non-terminal "E".
type Symbol struct {
	name string
	kind SymKind
}

// EndMarkerName is the spelling of the end-of-input marker in grammar and
// table files.
const EndMarkerName = "$"

// DefaultEpsilonName is the spelling of the empty right hand side of a rule.
const DefaultEpsilonName = "e"

// EOF is the synthetic terminal at the bottom of the parse stack and at the
// end of the input.
var EOF = Symbol{name: EndMarkerName, kind: EndMarker}

// Epsilon denotes an empty right hand side. It never appears on a parse stack.
var Epsilon = Symbol{name: DefaultEpsilonName, kind: EpsilonMarker}

// T creates a terminal symbol. The name is normalized to Unicode NFC, making
// symbols read from different sources comparable. T("$") returns EOF.
func T(name string) Symbol {
	name = norm.NFC.String(name)
	if name == EndMarkerName {
		return EOF
	}
	return Symbol{name: name, kind: Terminal}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{name: norm.NFC.String(name), kind: NonTerminal}
}

// Name returns the symbol's name, as it appears in grammar files.
func (sym Symbol) Name() string {
	return sym.name
}

// Kind returns the symbol's kind.
func (sym Symbol) Kind() SymKind {
	return sym.kind
}

// IsTerminal is true for terminals and for the end marker.
func (sym Symbol) IsTerminal() bool {
	return sym.kind == Terminal || sym.kind == EndMarker
}

// IsNonTerminal is a predicate.
func (sym Symbol) IsNonTerminal() bool {
	return sym.kind == NonTerminal
}

// IsNull is true for the zero value of Symbol.
func (sym Symbol) IsNull() bool {
	return sym == Symbol{}
}

func (sym Symbol) String() string {
	return sym.name
}

// Join concatenates the names of symbols, separated by a single space.
func Join(syms []Symbol) string {
	var b strings.Builder
	for i, sym := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.name)
	}
	return b.String()
}

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. It is up to scanners to define
// values; for tokens derived from a parse table's alphabet it is the column
// index of the terminal.
type TokType int

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
