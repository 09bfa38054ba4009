package count

import (
	"log/slog"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/gitlib"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// HistoryCounter accumulates signed net line deltas per group across every
// commit reachable from HEAD.
type HistoryCounter struct {
	repo       *gitlib.Repository
	classifier *classify.Classifier
	log        *slog.Logger
}

// NewHistoryCounter creates a history counter over an open repository.
func NewHistoryCounter(repo *gitlib.Repository, classifier *classify.Classifier, log *slog.Logger) *HistoryCounter {
	return &HistoryCounter{repo: repo, classifier: classifier, log: log}
}

// Count walks the commit history newest first. Each commit is diffed against
// its first parent (against the empty tree for root commits) and every
// changed file contributes insertions minus deletions to its group and to
// the total. Zero deltas are skipped.
func (hc *HistoryCounter) Count() (*tally.Table, error) {
	iter, err := hc.repo.Log()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	table := tally.NewHistoryTable()
	commits := 0

	forErr := iter.ForEach(func(commit *gitlib.Commit) error {
		consumeErr := hc.consume(commit, table)
		if consumeErr != nil {
			return consumeErr
		}

		commits++
		if commits%progressEvery == 0 {
			hc.log.Debug("history traversal progress", "commits", commits)
		}

		return nil
	})
	if forErr != nil {
		return nil, forErr
	}

	hc.log.Debug("history traversal done", "commits", commits, "groups", table.Len())

	return table, nil
}

func (hc *HistoryCounter) consume(commit *gitlib.Commit, table *tally.Table) error {
	var parentTree *gitlib.Tree

	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return err
		}

		parentTree, err = parent.Tree()
		parent.Free()

		if err != nil {
			return err
		}

		defer parentTree.Free()
	}

	newTree, err := commit.Tree()
	if err != nil {
		return err
	}
	defer newTree.Free()

	diff, err := hc.repo.DiffTreeToTree(parentTree, newTree)
	if err != nil {
		return err
	}
	defer diff.Free()

	stats, err := diff.FileStats()
	if err != nil {
		return err
	}

	for _, stat := range stats {
		net := int64(stat.Insertions - stat.Deletions)
		table.AddNet(hc.classifier.Key(stat.Path), net)
	}

	return nil
}
