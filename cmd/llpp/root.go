package main

import (
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llpp",
	Short: "Run an LL(1) predictive parser, given a grammar and a parse table",
	Long: `llpp simulates a table-driven LL(1) parser:
- Loads production rules and a precomputed parse table.
- Parses sequences of terminal tokens and prints a trace of every step.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

// Execute runs the command given on the command line.
func Execute() error {
	return rootCmd.Execute()
}

var rootFlags = struct {
	grammar *string
	table   *string
	trace   *string
	epsilon *string
	lenient *bool
	steps   *int
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	rootFlags.grammar = pf.StringP("grammar", "g", "", "production rules file (.prod)")
	rootFlags.table = pf.StringP("table", "t", "", "parse table file (.ptbl)")
	rootFlags.trace = pf.String("trace", "", "trace level [Debug|Info|Error]")
	rootFlags.epsilon = pf.String("epsilon", "", "literal denoting an empty right hand side")
	rootFlags.lenient = pf.Bool("lenient", false, "skip malformed production rows")
	rootFlags.steps = pf.Int("max-steps", 0, "maximum number of steps per parse, 0 for no limit")
}

// tracerKeys are the tracers used by llpp and its packages.
var tracerKeys = []string{"llpp.ll", "llpp.scanner", "llpp.cli"}

// initConfig sets up the application configuration, reading an llpp.nt file
// (if any) and overriding it with values from the command line. Then tracing
// is set up to log through Go's log package.
func initConfig(cmd *cobra.Command, args []string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "llpp", []string{".nt"})
	gconf.Initialize(conf)
	pf := cmd.Flags()
	if pf.Changed("epsilon") {
		conf.Set("llpp.epsilon", *rootFlags.epsilon)
	}
	if pf.Changed("lenient") {
		conf.Set("llpp.lenient", *rootFlags.lenient)
	}
	if pf.Changed("max-steps") {
		conf.Set("llpp.maxsteps", *rootFlags.steps)
	}
	if *rootFlags.trace != "" {
		conf.Set("tracelevel.root", *rootFlags.trace)
		for _, key := range tracerKeys {
			conf.Set("tracelevel."+key, *rootFlags.trace)
		}
	} else if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", "Error")
	}
	for _, key := range tracerKeys { // unconfigured tracers follow the root tracer
		if conf.GetString("tracelevel."+key) == "" {
			conf.Set("tracelevel."+key, conf.GetString("tracelevel.root"))
		}
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("configuration initialized, max steps = %d", gconf.GetInt("llpp.maxsteps"))
	return nil
}
