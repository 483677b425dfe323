package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/llpp/grammar"
	"github.com/npillmayer/llpp/ll"
	"github.com/npillmayer/llpp/table"
	"github.com/pterm/pterm"
)

func printTrace(outcome *ll.Outcome) {
	data := [][]string{{"#", "Stack", "Input Buffer", "Action"}}
	for i, row := range outcome.Rows() {
		data = append(data, append([]string{strconv.Itoa(i + 1)}, row...))
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot render trace: %v", err)
	}
}

func printVerdict(outcome *ll.Outcome, filename string) {
	msg := "PARSING: Invalid"
	if outcome.Accepted {
		msg = "PARSING: Valid"
	}
	if filename != "" {
		msg = fmt.Sprintf("%s. Please see %s", msg, filename)
	}
	if outcome.Accepted {
		pterm.Info.Println(msg)
	} else {
		pterm.Error.Println(msg)
	}
}

func printGrammar(g *grammar.Grammar) {
	data := [][]string{{"#", "Label", "Production"}}
	g.EachRule(func(r *grammar.Rule) {
		data = append(data, []string{strconv.Itoa(r.Serial), r.Label, r.String()})
	})
	pterm.DefaultSection.Println("Productions of " + g.Name)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf("cannot render grammar: %v", err)
	}
}

func printTable(M *table.Table) {
	pterm.DefaultSection.Println("Parse table")
	if err := pterm.DefaultTable.WithHasHeader().WithData(M.Rows()).Render(); err != nil {
		tracer().Errorf("cannot render parse table: %v", err)
	}
}
