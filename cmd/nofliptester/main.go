// Package main provides the entry point for the nofliptester CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamil-cwintal/no-flip-tester/cmd/nofliptester/commands"
	"github.com/kamil-cwintal/no-flip-tester/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nofliptester",
		Short: "Dynamic graph edge-orientation research workbench",
		Long: `nofliptester compares the AMC solver against the Kowalik and
Brodal-Fagerberg baselines over generated bounded-arboricity operation
sequences.

Commands:
  run       Execute trials and report out-degree/flip statistics
  render    Render a generated instance's final graph as DOT or SVG`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "nofliptester %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
