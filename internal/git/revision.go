package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// AheadBehind counts the commits reachable from local but not from other
// (ahead), and the reverse (behind).
func (r *Repository) AheadBehind(local, other plumbing.Hash) (int, int, error) {
	localSet, err := r.ancestors(local)
	if err != nil {
		return 0, 0, err
	}
	otherSet, err := r.ancestors(other)
	if err != nil {
		return 0, 0, err
	}

	var ahead, behind int
	for h := range localSet {
		if !otherSet[h] {
			ahead++
		}
	}
	for h := range otherSet {
		if !localSet[h] {
			behind++
		}
	}
	return ahead, behind, nil
}

// ancestors returns every commit reachable from tip, tip included.
func (r *Repository) ancestors(tip plumbing.Hash) (map[plumbing.Hash]bool, error) {
	seen := make(map[plumbing.Hash]bool)
	stack := []plumbing.Hash{tip}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[h] {
			continue
		}
		seen[h] = true

		commit, err := r.repo.CommitObject(h)
		if err != nil {
			return nil, fmt.Errorf("failed to walk history at %s: %w", h, err)
		}
		stack = append(stack, commit.ParentHashes...)
	}
	return seen, nil
}

// WalkTip walks ancestors of tip in depth-first preorder, calling fn with
// each commit's hash and summary, stopping after limit commits.
func (r *Repository) WalkTip(tip plumbing.Hash, limit int, fn func(plumbing.Hash, string) error) error {
	commit, err := r.repo.CommitObject(tip)
	if err != nil {
		return fmt.Errorf("failed to resolve commit %s: %w", tip, err)
	}

	n := 0
	iter := object.NewCommitPreorderIter(commit, nil, nil)
	defer iter.Close()
	return iter.ForEach(func(c *object.Commit) error {
		if err := fn(c.Hash, summaryLine(c.Message)); err != nil {
			return err
		}
		n++
		if n >= limit {
			return storer.ErrStop
		}
		return nil
	})
}
