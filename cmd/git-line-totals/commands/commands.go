// Package commands implements the git-line-totals subcommands.
package commands

import (
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/config"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/observability"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// targetDir returns the positional working directory argument, defaulting to
// the current directory.
func targetDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}

	return "."
}

// newLogger builds the run logger from config, forced to debug when the
// persistent --verbose flag is set.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level

	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		level = "debug"
	}

	return observability.NewLogger(level, cfg.Logging.Format)
}

// writeReport renders the finished table: the table format prints directly
// to out, every other format is written to its report file inside dir with
// a confirmation naming the path.
func writeReport(out io.Writer, dir string, format report.Format, table *tally.Table) error {
	if format == report.FormatTable {
		report.RenderTable(out, table)

		return nil
	}

	path, err := report.Save(dir, format, table)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "Report written to %s\n", path)

	return nil
}
