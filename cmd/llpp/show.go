package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	html *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the production rules and the parse table",
		Example: `  llpp show -g expr.prod -t expr.ptbl --html expr.html`,
		Args:    cobra.NoArgs,
		RunE:    runShow,
	}
	showFlags.html = cmd.Flags().String("html", "", "export the parse table to an HTML file")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	g, M := s.parser.Grammar(), s.parser.Table()
	printGrammar(g)
	printTable(M)
	if *showFlags.html == "" {
		return nil
	}
	f, err := os.Create(*showFlags.html)
	if err != nil {
		return fmt.Errorf("cannot export parse table: %w", err)
	}
	ruleText := func(n int) string {
		if r, err := g.Rule(n); err == nil {
			return r.String()
		}
		return "?"
	}
	if err = M.AsHTML(f, g.Name, ruleText); err != nil {
		f.Close()
		return fmt.Errorf("cannot export parse table: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	pterm.Info.Println("parse table exported to " + *showFlags.html)
	return nil
}
