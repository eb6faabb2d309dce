// Command valexa is the headless companion of the desktop app. It exposes
// the settings schema and the resolve pipeline over stdin/stdout so other
// tooling can drive a validation run without the GUI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "valexa",
		Short:        "Method validation profiles without the GUI",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(newParamsCommand())
	root.AddCommand(newProfileCommand())
	root.AddCommand(newTestCommand())
	return root
}

func newParamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the settings schema as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeParams(cmd.OutOrStdout())
		},
	}
}

func newProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <json>",
		Short: "Resolve a single profile configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveOne(cmd.OutOrStdout(), []byte(args[0]))
		},
	}
}

func newTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Resolve profile configurations streamed on stdin, one JSON per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStream(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
