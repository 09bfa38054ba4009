// Package main provides the entry point for the git-line-totals CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/git-line-totals/cmd/git-line-totals/commands"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "git-line-totals",
		Short: "Aggregate line totals over a git repository's object store",
		Long: `git-line-totals walks a repository's git objects and aggregates
file, line, blank and byte counts grouped by extension, MIME type or
language.

Commands:
  tree    Absolute counts over the blobs of one tree
  hist    Net line deltas across the whole commit history`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(commands.NewTreeCommand())
	rootCmd.AddCommand(commands.NewHistCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
