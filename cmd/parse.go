package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/TK-A369/tk-lisp-test-1/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseTokens     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [FILE|-]...",
	Short: "Parse lisp code without evaluating it",
	Long: `Parse lisp code and print the resulting expression.  String literals
are shown in their (list ...) form.  With --tokens the token stream is printed
instead.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := readSources(args, parseExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		failed := false
		for _, src := range sources {
			if parseTokens {
				toks, err := parser.Tokenize(src.name, bytes.NewReader(src.text))
				for _, tok := range toks {
					fmt.Println(tok)
				}
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					failed = true
				}
				continue
			}
			v, err := parser.Parse(src.name, bytes.NewReader(src.text))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed = true
				continue
			}
			fmt.Println(v)
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	parseCmd.Flags().BoolVarP(&parseTokens, "tokens", "t", false,
		"Print the token stream instead of the parsed expression")
}
