package cmd

import (
	"github.com/bmatsuo/minischeme/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive read-eval-print loop.

Definitions persist for the whole session.  An expression may span several
lines.  Press Ctrl-C to discard pending input and Ctrl-D to exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.RunRepl(replPrompt, replHistory, envConfig(cmd.ErrOrStderr())...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ",
		"Prompt shown before each expression")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File used to persist input history")
}
