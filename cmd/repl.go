package cmd

import (
	"fmt"
	"os"

	"github.com/TK-A369/tk-lisp-test-1/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run an interactive lisp session",
	Long: `Run an interactive lisp session.

Each complete expression entered is evaluated in an empty environment and its
value is printed.  Expressions may span several lines.  Ctrl-C discards the
pending input and Ctrl-D exits.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		config, err := runtimeConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = repl.RunRepl("> ", printStack, config...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
