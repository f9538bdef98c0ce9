package cmd

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/bmatsuo/minischeme/lisp"
	"github.com/bmatsuo/minischeme/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

var errEvaluation = errors.New("evaluation failed")

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE|EXPR ...",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or a file.

Sources are evaluated in order in a single environment.  Evaluation stops at
the first syntax error or the first expression that evaluates to an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := runReadSources(args)
		if err != nil {
			return err
		}
		env, err := newEnv(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		for _, src := range sources {
			exprs, err := parser.ParseAll(src)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}
			for _, expr := range exprs {
				var v *lisp.LVal
				v, env = lisp.Evaluate(expr, env)
				if v.Type == lisp.LError {
					fmt.Fprintln(cmd.ErrOrStderr(), v)
					return errEvaluation
				}
				if runPrint {
					fmt.Fprintln(cmd.OutOrStdout(), lisp.Stringify(v))
				}
			}
		}
		return nil
	},
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
