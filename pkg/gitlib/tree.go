package gitlib

import (
	"fmt"
	"path"

	git2go "github.com/libgit2/git2go/v34"
)

// Tree wraps a libgit2 tree.
type Tree struct {
	tree *git2go.Tree
	repo *Repository
}

// Hash returns the tree hash.
func (t *Tree) Hash() Hash {
	return HashFromOid(t.tree.Id())
}

// EntryCount returns the number of entries in the tree.
func (t *Tree) EntryCount() uint64 {
	return t.tree.EntryCount()
}

// Free releases the tree resources.
func (t *Tree) Free() {
	if t.tree != nil {
		t.tree.Free()
		t.tree = nil
	}
}

// WalkBlobs visits every blob reachable from the tree, depth-first, calling
// the callback with the slash-separated path from the tree root. Sub-trees
// are descended into; non-blob, non-tree entries (submodules) are skipped.
// The walk stops at the first callback error.
func (t *Tree) WalkBlobs(cb func(path string, hash Hash) error) error {
	return walkBlobs(t.repo, t, "", cb)
}

func walkBlobs(repo *Repository, tree *Tree, prefix string, cb func(string, Hash) error) error {
	count := tree.EntryCount()

	for i := range count {
		native := tree.tree.EntryByIndex(i)
		if native == nil {
			continue
		}

		entryPath := path.Join(prefix, native.Name)

		switch native.Type {
		case git2go.ObjectBlob:
			cbErr := cb(entryPath, HashFromOid(native.Id))
			if cbErr != nil {
				return cbErr
			}
		case git2go.ObjectTree:
			sub, err := repo.LookupTree(HashFromOid(native.Id))
			if err != nil {
				return fmt.Errorf("descend into %s: %w", entryPath, err)
			}

			walkErr := walkBlobs(repo, sub, entryPath, cb)
			sub.Free()

			if walkErr != nil {
				return walkErr
			}
		default:
			// Submodule commits and anything else are not countable content.
		}
	}

	return nil
}
