package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser"
	"github.com/spf13/cobra"
)

var (
	maxStackHeight int
	traceErrors    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minischeme",
	Short: "A minimal scheme interpreter",
	Long: `A minimal scheme interpreter with integers, floats, symbols, lists,
lexically scoped closures and a small set of built-in procedures.

Use the run command to evaluate files or expressions and the repl command for
an interactive session.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// envConfig returns the lisp.Config selected by the persistent flags.
// Diagnostics are written to stderr.
func envConfig(stderr io.Writer) []lisp.Config {
	return []lisp.Config{
		lisp.WithStderr(stderr),
		lisp.WithMaximumStackHeight(maxStackHeight),
		lisp.WithTrace(traceErrors),
	}
}

func newEnv(stderr io.Writer) (*lisp.LEnv, error) {
	env := lisp.NewEnv(nil)
	config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, envConfig(stderr)...)
	lerr := lisp.InitializeUserEnv(env, config...)
	if lerr.Type == lisp.LError {
		return nil, fmt.Errorf("failed to initialize environment: %v", lisp.GoError(lerr))
	}
	return env, nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxStackHeight, "max-stack", 10000,
		"Maximum call stack height (0 disables the limit)")
	rootCmd.PersistentFlags().BoolVar(&traceErrors, "trace", false,
		"Print errors and their call stacks to stderr as they occur")
}
