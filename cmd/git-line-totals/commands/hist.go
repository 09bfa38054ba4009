package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/config"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/count"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/gitlib"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
)

// HistCommand holds the flag state of the hist command.
type HistCommand struct {
	groupBy    string
	format     string
	configPath string
}

// NewHistCommand creates and configures the hist command.
func NewHistCommand() *cobra.Command {
	hc := &HistCommand{}

	cobraCmd := &cobra.Command{
		Use:   "hist [directory]",
		Short: "Accumulate net line deltas across the commit history",
		Long: `Walk every commit reachable from HEAD and accumulate each file's
insertions minus deletions per group. Merge commits are diffed against
their first parent; files with a zero net delta are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: hc.run,
	}

	cobraCmd.Flags().StringVar(&hc.groupBy, "groupby", "",
		"grouping key: extension, mime-type, language or detected-language (default: extension)")
	cobraCmd.Flags().StringVarP(&hc.format, "format", "f", "",
		"output format: table, csv, json or yaml (default: table)")
	cobraCmd.Flags().StringVar(&hc.configPath, "config", "", "config file path")

	return cobraCmd
}

func (hc *HistCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(hc.configPath)
	if err != nil {
		return err
	}

	applyFlag(&cfg.Format, hc.format)

	mode, err := classify.ParseMode(hc.resolveGroupBy(cfg))
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

	table, err := count.NewHistoryCounter(repo, classifier, log).Count()
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), dir, format, table)
}

// resolveGroupBy layers the grouping key: the flag wins, then an explicitly
// configured groupby (config file or environment), then the extension
// default of history mode.
func (hc *HistCommand) resolveGroupBy(cfg *config.Config) string {
	if hc.groupBy != "" {
		return hc.groupBy
	}

	if cfg.GroupBySet {
		return cfg.GroupBy
	}

	return string(classify.ModeExtension)
}
