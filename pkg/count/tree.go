// Package count drives the two traversals: absolute counts over the unique
// blobs of one tree, and net line deltas across the commit history. Both are
// single-threaded single passes that fold into a tally.Table and abort on
// the first error.
package count

import (
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/gitlib"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// progressEvery is the traversal progress logging interval.
const progressEvery = 1000

// DefaultRev is the revision counted when none is given.
const DefaultRev = "HEAD"

// TreeCounter counts files, lines, blanks and bytes over the blobs of one
// tree, grouped by the classifier's key.
type TreeCounter struct {
	repo       *gitlib.Repository
	classifier *classify.Classifier
	log        *slog.Logger
}

// NewTreeCounter creates a tree counter over an open repository.
func NewTreeCounter(repo *gitlib.Repository, classifier *classify.Classifier, log *slog.Logger) *TreeCounter {
	return &TreeCounter{repo: repo, classifier: classifier, log: log}
}

// Count resolves rev to a tree and folds every unique blob reachable from it
// into a fresh counter table. A blob referenced at several paths is counted
// once, at its first path in walk order.
func (tc *TreeCounter) Count(rev string) (*tally.Table, error) {
	if rev == "" {
		rev = DefaultRev
	}

	tree, err := tc.repo.RevparseTree(rev)
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	table := tally.NewTreeTable()
	seen := make(map[gitlib.Hash]struct{})

	walkErr := tree.WalkBlobs(func(path string, hash gitlib.Hash) error {
		if _, dup := seen[hash]; dup {
			return nil
		}

		seen[hash] = struct{}{}

		blob, lookupErr := tc.repo.LookupBlob(hash)
		if lookupErr != nil {
			return fmt.Errorf("read %s: %w", path, lookupErr)
		}

		lines, blanks := countLines(blob.Contents())
		table.AddBlob(tc.classifier.Key(path), blob.Size(), lines, blanks)
		blob.Free()

		if len(seen)%progressEvery == 0 {
			tc.log.Debug("tree traversal progress", "blobs", len(seen))
		}

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	tc.log.Debug("tree traversal done",
		"rev", rev, "blobs", len(seen), "groups", table.Len())

	return table, nil
}
