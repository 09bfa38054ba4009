package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// FileStat holds the line change counts of one file within a diff.
type FileStat struct {
	Path       string
	Insertions int
	Deletions  int
}

// Diff wraps a libgit2 diff.
type Diff struct {
	diff *git2go.Diff
}

// NumDeltas returns the number of changed files in the diff.
func (d *Diff) NumDeltas() (int, error) {
	numDeltas, err := d.diff.NumDeltas()
	if err != nil {
		return 0, fmt.Errorf("get num deltas: %w", err)
	}

	return numDeltas, nil
}

// FileStats returns per-file insertion and deletion counts, one entry per
// delta in diff order. The path is taken from the new side of the delta,
// falling back to the old side for deletions.
func (d *Diff) FileStats() ([]FileStat, error) {
	numDeltas, err := d.NumDeltas()
	if err != nil {
		return nil, err
	}

	stats := make([]FileStat, 0, numDeltas)

	err = d.diff.ForEach(func(delta git2go.DiffDelta, _ float64) (git2go.DiffForEachHunkCallback, error) {
		filePath := delta.NewFile.Path
		if filePath == "" {
			filePath = delta.OldFile.Path
		}

		stats = append(stats, FileStat{Path: filePath})
		idx := len(stats) - 1

		return func(_ git2go.DiffHunk) (git2go.DiffForEachLineCallback, error) {
			return func(line git2go.DiffLine) error {
				switch line.Origin {
				case git2go.DiffLineAddition:
					stats[idx].Insertions++
				case git2go.DiffLineDeletion:
					stats[idx].Deletions++
				case git2go.DiffLineContext,
					git2go.DiffLineContextEOFNL,
					git2go.DiffLineAddEOFNL,
					git2go.DiffLineDelEOFNL,
					git2go.DiffLineFileHdr,
					git2go.DiffLineHunkHdr,
					git2go.DiffLineBinary:
				}

				return nil
			}, nil
		}, nil
	}, git2go.DiffDetailLines)
	if err != nil {
		return nil, fmt.Errorf("diff foreach: %w", err)
	}

	return stats, nil
}

// Free releases the diff resources.
func (d *Diff) Free() {
	if d.diff != nil {
		_ = d.diff.Free()
		d.diff = nil
	}
}
