package ll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/llpp/grammar"
	"github.com/npillmayer/llpp/table"
	"github.com/npillmayer/schuko/gconf"
)

// Errors returned by Run.
var (
	ErrEmptyInput    = errors.New("no input tokens")
	ErrReservedToken = errors.New("reserved symbol in input")
	ErrStepLimit     = errors.New("step limit exceeded")
)

// --- Actions ---------------------------------------------------------------

// ActionKind is the kind of transition the parser performed in a step.
type ActionKind int8

// Parser actions. NoApplicableRule and UnexpectedSymbol reject the input and
// always end a trace.
const (
	Match            ActionKind = iota // top of stack matches current input token
	Output                             // non-terminal expanded by a rule
	NoApplicableRule                   // blank or absent table cell
	UnexpectedSymbol                   // top of stack can neither match nor expand
)

func (k ActionKind) String() string {
	switch k {
	case Match:
		return "Match"
	case Output:
		return "Output"
	case NoApplicableRule:
		return "NoApplicableRule"
	case UnexpectedSymbol:
		return "UnexpectedSymbol"
	}
	return "?"
}

// Action describes a single transition of the parser.
type Action struct {
	Kind      ActionKind
	Symbol    llpp.Symbol   // top of stack before the transition
	Lookahead llpp.Symbol   // current input token before the transition
	Rule      *grammar.Rule // expanding rule, for Output only
	Cell      table.Cell    // status of the table lookup, for NoApplicableRule
}

// IsError is true for actions rejecting the input.
func (a Action) IsError() bool {
	return a.Kind == NoApplicableRule || a.Kind == UnexpectedSymbol
}

func (a Action) String() string {
	switch a.Kind {
	case Match:
		return "Match " + a.Symbol.Name()
	case Output:
		return "Output " + a.Rule.String()
	case NoApplicableRule:
		return fmt.Sprintf("Error: no applicable rule for M[%s, %s]", a.Symbol, a.Lookahead)
	case UnexpectedSymbol:
		return fmt.Sprintf("Error: unexpected symbol %s, lookahead %s", a.Symbol, a.Lookahead)
	}
	return "?"
}

// Step is a single record of a parse trace. Stack and Input are snapshots
// taken before the transition. Stack lists the bottom first, Input includes
// the end marker.
type Step struct {
	Stack  []llpp.Symbol
	Input  []llpp.Symbol
	Action Action
}

// --- Parser ----------------------------------------------------------------

// Parser is an LL(1) predictive parser for a grammar and its parse table.
// Create one with NewParser.
type Parser struct {
	g        *grammar.Grammar
	t        *table.Table
	start    llpp.Symbol
	maxSteps int
}

// Option configures a parser.
type Option func(p *Parser)

// MaxSteps limits the number of steps of a single run. A value of 0 means
// no limit. Default is the value of configuration key "llpp.maxsteps".
func MaxSteps(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.maxSteps = n
		}
	}
}

// NewParser creates a parser for a grammar and a parse table. It fails if the
// grammar is empty or if the table references rules which are not part of the
// grammar (wrapping grammar.ErrUnknownRule). Non-terminals without a table
// row are traced, but are not an error.
func NewParser(g *grammar.Grammar, t *table.Table, opts ...Option) (*Parser, error) {
	if g == nil || t == nil {
		return nil, errors.New("parser needs a grammar and a parse table")
	}
	S, err := g.StartSymbol()
	if err != nil {
		return nil, err
	}
	missing, err := t.Validate(g)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		tracer().Infof("inputs will be rejected at non-terminals %s", llpp.Join(missing))
	}
	p := &Parser{
		g:        g,
		t:        t,
		start:    S,
		maxSteps: gconf.GetInt("llpp.maxsteps"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxSteps < 0 {
		p.maxSteps = 0
	}
	return p, nil
}

// Grammar returns the grammar of the parser.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.g
}

// Table returns the parse table of the parser.
func (p *Parser) Table() *table.Table {
	return p.t
}

// Run parses a sequence of terminal tokens. It returns the trace of the
// parse together with a verdict. A rejected input is not an error; the last
// step of the trace tells why the input has been rejected.
//
// Errors are returned for an empty token list (ErrEmptyInput), for tokens
// spelling the end marker (ErrReservedToken), for tables referencing unknown
// rules, and for exceeding the step limit (ErrStepLimit). In the latter case
// the partial trace is returned as well.
func (p *Parser) Run(tokens []string) (*Outcome, error) {
	outcome := &Outcome{}
	if len(tokens) == 0 {
		return outcome, ErrEmptyInput
	}
	input := make([]llpp.Symbol, 0, len(tokens)+1)
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == llpp.EndMarkerName {
			return outcome, fmt.Errorf("%w: token #%d is %q", ErrReservedToken, i+1, tok)
		}
		input = append(input, llpp.T(tok))
	}
	input = append(input, llpp.EOF)
	tracer().Debugf("parsing input %s", llpp.Join(input))
	//
	stack := borrowStack()
	defer releaseStack(stack)
	stack.push(llpp.EOF)
	stack.push(p.start)
	pos := 0
	for !stack.empty() {
		if p.maxSteps > 0 && len(outcome.Steps) >= p.maxSteps {
			tracer().Errorf("parse aborted after %d steps", len(outcome.Steps))
			return outcome, fmt.Errorf("%w: %d steps", ErrStepLimit, p.maxSteps)
		}
		step := Step{
			Stack: stack.snapshot(),
			Input: append([]llpp.Symbol(nil), input[pos:]...),
		}
		X, a := stack.top(), input[pos]
		action, err := p.transition(stack, X, a)
		if err != nil {
			return outcome, err
		}
		if action.Kind == Match {
			pos++
		}
		step.Action = action
		outcome.Steps = append(outcome.Steps, step)
		tracer().Debugf("%-20s | %20s | %s", llpp.Join(step.Stack), llpp.Join(step.Input), action)
		if action.IsError() {
			tracer().Infof("input rejected: %s", action)
			return outcome, nil
		}
		if pos == len(input) && !stack.empty() {
			break // input exhausted, but symbols left on the stack
		}
	}
	outcome.Accepted = stack.empty() && pos == len(input)
	tracer().Infof("input accepted = %v after %d steps", outcome.Accepted, len(outcome.Steps))
	return outcome, nil
}

// transition performs a single step for top of stack X and current input
// token a.
func (p *Parser) transition(stack *symStack, X, a llpp.Symbol) (Action, error) {
	action := Action{Symbol: X, Lookahead: a}
	if X == a {
		stack.pop()
		action.Kind = Match
		return action, nil
	}
	if !X.IsNonTerminal() || !p.t.HasRow(X) {
		action.Kind = UnexpectedSymbol
		if X.IsNonTerminal() {
			action.Cell = table.NoRow
		}
		return action, nil
	}
	n, cell := p.t.Lookup(X, a)
	if cell != table.Found {
		action.Kind = NoApplicableRule
		action.Cell = cell
		return action, nil
	}
	rule, err := p.g.Rule(n)
	if err != nil {
		return action, fmt.Errorf("expanding %s with lookahead %s: %w", X, a, err)
	}
	stack.pop()
	stack.pushReversed(rule.RHS())
	action.Kind = Output
	action.Rule = rule
	action.Cell = cell
	return action, nil
}
