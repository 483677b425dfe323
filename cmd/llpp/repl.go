package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replFlags = struct {
	lex *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "repl",
		Short:   "Parse token lines interactively",
		Example: `  llpp repl -g expr.prod -t expr.ptbl`,
		Args:    cobra.NoArgs,
		RunE:    runREPL,
	}
	replFlags.lex = cmd.Flags().Bool("lex", false, "recognize terminals without separating white space")
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	repl, err := readline.New("llpp> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to llpp")
	pterm.Info.Println(`Enter tokens to parse, ":lex" to toggle the lexer; quit with <ctrl>D`)
	lex := *replFlags.lex
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if line == ":lex" {
			lex = !lex
			pterm.Info.Println(fmt.Sprintf("lexer is %s", onOff(lex)))
			continue
		}
		outcome, err := s.parse(line, lex)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		printVerdict(outcome, "")
	}
	println("Good bye!")
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
