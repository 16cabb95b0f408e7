package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/TK-A369/tk-lisp-test-1/lisp"
	"github.com/TK-A369/tk-lisp-test-1/parser"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	printStack bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tk-lisp",
	Short: "A minimal lisp interpreter",
	Long: `A minimal lisp interpreter.

Programs are a single expression.  Variables are bound with let, closures
capture variables explicitly with (lambda (captures...) (params...) body) and
are invoked with call.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Write diagnostic logs at the given level (debug, info, warn, error) to stderr")
	rootCmd.PersistentFlags().BoolVar(&printStack, "stack", false,
		"Print the call stack when evaluation fails")
}

func newLogger() (*slog.Logger, error) {
	if logLevel == "" {
		return nil, nil
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h), nil
}

// runtimeConfig returns the configuration shared by commands that evaluate
// lisp programs.
func runtimeConfig() ([]lisp.Config, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	return []lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithLogger(logger),
	}, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, err)
	var lerr *lisp.Error
	if printStack && errors.As(err, &lerr) && lerr.Stack != nil && lerr.Stack.Height() > 0 {
		lerr.Stack.DebugPrint(os.Stderr)
	}
}
