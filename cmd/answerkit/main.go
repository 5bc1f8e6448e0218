// Package main provides the answerkit CLI for normalizing model answers
// from files or stdin.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "answerkit: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Each call returns an independent tree
// with its own configuration, so tests can run commands in isolation.
func newRootCmd() *cobra.Command {
	a := newApp()

	rootCmd := &cobra.Command{
		Use:           "answerkit",
		Short:         "Normalize language-model answers into text, code blocks and snippets",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./.answerkit.yaml or $HOME/.answerkit.yaml)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (env: ANSWERKIT_LOG_LEVEL)")
	flags.String("log-format", "", "log format: compact or json (env: ANSWERKIT_LOG_FORMAT)")
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newSegmentCmd(a))
	rootCmd.AddCommand(newExtractCmd(a))
	return rootCmd
}
