package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/llpp/ll"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	output *string
	lex    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "parse tokens...",
		Short: "Parse a sequence of tokens and print the trace",
		Example: `  llpp parse -g expr.prod -t expr.ptbl id + id
  llpp parse -g expr.prod -t expr.ptbl --lex -o result "id+id"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}
	parseFlags.output = cmd.Flags().StringP("output", "o", "", "save the trace to <output>_<grammar>.prsd")
	parseFlags.lex = cmd.Flags().Bool("lex", false, "recognize terminals without separating white space")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	outcome, err := s.parse(strings.Join(args, " "), *parseFlags.lex)
	if err != nil {
		return err
	}
	if *parseFlags.output == "" {
		printVerdict(outcome, "")
		return nil
	}
	filename := outputFilename(*parseFlags.output, s.grammarPath)
	if err = saveTrace(outcome, filename); err != nil {
		return err
	}
	printVerdict(outcome, filename)
	return nil
}

// parse tokenizes and parses an input line and prints the trace.
func (s *session) parse(input string, lex bool) (*ll.Outcome, error) {
	tokens, err := s.tokenize(input, lex)
	if err != nil {
		return nil, err
	}
	outcome, err := s.parser.Run(tokens)
	if err != nil {
		if errors.Is(err, ll.ErrStepLimit) {
			printTrace(outcome)
		}
		return nil, err
	}
	printTrace(outcome)
	return outcome, nil
}

func saveTrace(outcome *ll.Outcome, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot save parse trace: %w", err)
	}
	if err = outcome.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("cannot save parse trace to %s: %w", filename, err)
	}
	return f.Close()
}
