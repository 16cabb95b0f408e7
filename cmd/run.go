package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [FILE|-]...",
	Short: "Run lisp code",
	Long: `Run lisp code provided supplied via the command line or a file.

Each argument is a separate program evaluated in an empty environment.  The
argument "-" reads a program from stdin.  The whole of stdin is consumed
before evaluation starts, so readnum fails with an io-error in programs given
this way.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := readSources(args, runExpression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config, err := runtimeConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		rt, err := lisp.NewRuntime(config...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for _, src := range sources {
			v, err := rt.Load(src.name, bytes.NewReader(src.text))
			if err != nil {
				printError(err)
				os.Exit(1)
			}
			if runPrint {
				fmt.Fprintln(rt.Stdout, v)
			}
		}
	},
}

type source struct {
	name string
	text []byte
}

// readSources returns the programs named by args.  When expr is true the
// arguments are the programs themselves.
func readSources(args []string, expr bool) ([]source, error) {
	sources := make([]source, len(args))
	for i, arg := range args {
		if expr {
			sources[i] = source{fmt.Sprintf("expr%d", i), []byte(arg)}
			continue
		}
		var b []byte
		var err error
		if arg == "-" {
			b, err = io.ReadAll(os.Stdin)
			arg = "stdin"
		} else {
			b, err = os.ReadFile(arg)
			arg = filepath.Base(arg)
		}
		if err != nil {
			return nil, err
		}
		sources[i] = source{arg, b}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
