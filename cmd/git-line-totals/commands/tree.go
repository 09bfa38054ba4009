package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/config"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/count"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/gitlib"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
)

// TreeCommand holds the flag state of the tree command.
type TreeCommand struct {
	rev        string
	groupBy    string
	format     string
	configPath string
}

// NewTreeCommand creates and configures the tree command.
func NewTreeCommand() *cobra.Command {
	tc := &TreeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "tree [directory]",
		Short: "Count files, lines, blanks and bytes over one tree",
		Long: `Count the unique blobs reachable from one tree (a branch, tag or
commit; default the current HEAD), grouped by extension, MIME type or
language. Blobs referenced at several paths are counted once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: tc.run,
	}

	cobraCmd.Flags().StringVar(&tc.rev, "rev", "", "tree to traverse (default: current HEAD)")
	cobraCmd.Flags().StringVar(&tc.groupBy, "groupby", "",
		"grouping key: extension, mime-type, language or detected-language (default: language)")
	cobraCmd.Flags().StringVarP(&tc.format, "format", "f", "",
		"output format: table, csv, json or yaml (default: table)")
	cobraCmd.Flags().StringVar(&tc.configPath, "config", "", "config file path")

	return cobraCmd
}

func (tc *TreeCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(tc.configPath)
	if err != nil {
		return err
	}

	applyFlag(&cfg.GroupBy, tc.groupBy)
	applyFlag(&cfg.Format, tc.format)
	applyFlag(&cfg.Rev, tc.rev)

	mode, err := classify.ParseMode(cfg.GroupBy)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	classifier, err := classify.NewClassifier(mode)
	if err != nil {
		return err
	}

	dir := targetDir(args)
	log := newLogger(cmd, cfg)

	repo, err := gitlib.OpenRepository(dir)
	if err != nil {
		return err
	}
	defer repo.Free()

	table, err := count.NewTreeCounter(repo, classifier, log).Count(cfg.Rev)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), dir, format, table)
}

// applyFlag overrides a config value with a flag value when the flag was set.
func applyFlag(target *string, flagValue string) {
	if flagValue != "" {
		*target = flagValue
	}
}
