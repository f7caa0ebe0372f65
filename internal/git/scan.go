package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jlebon/git-bstatus/internal/models"
)

// Scan walks the local branches and computes each one's status. If any
// patterns are given, only branches whose name contains at least one of
// them are kept. A branch with a configured upstream is compared against
// the upstream tip; everything else is compared against the default
// branch, which is resolved lazily and at most once. The merged/unmerged
// totals cover every branch that survived name filtering.
func (r *Repository) Scan(patterns []string) (*models.BranchSet, error) {
	head, err := r.Head()
	if err != nil {
		return nil, err
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}

	var (
		baseline    plumbing.Hash
		baselineSet bool
	)
	resolveBaseline := func() (plumbing.Hash, error) {
		if !baselineSet {
			h, err := r.defaultBaseline()
			if err != nil {
				return plumbing.ZeroHash, err
			}
			baseline, baselineSet = h, true
		}
		return baseline, nil
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate branches: %w", err)
	}
	defer iter.Close()

	var set models.BranchSet
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		if len(patterns) > 0 && !matchesAny(name, patterns) {
			return nil
		}

		commit, err := r.repo.CommitObject(ref.Hash())
		if err != nil {
			return fmt.Errorf("failed to resolve tip of %s: %w", name, err)
		}

		timestamp := commit.Committer.When.Unix()
		if timestamp < 0 {
			return fmt.Errorf("commit %s on %s has a negative timestamp", commit.Hash, name)
		}

		upstream, cmp, ok := r.upstreamTip(cfg, name)
		if !ok {
			cmp, err = resolveBaseline()
			if err != nil {
				return err
			}
		}

		ahead, _, err := r.AheadBehind(ref.Hash(), cmp)
		if err != nil {
			return err
		}

		if ahead == 0 {
			set.NumMerged++
		} else {
			set.NumUnmerged++
		}

		r.log.Debug().Str("branch", name).Int("ahead", ahead).
			Str("upstream", upstream).Msg("scanned branch")

		set.Branches = append(set.Branches, models.Branch{
			Name:      name,
			Active:    !head.Detached && head.Branch == name,
			Timestamp: timestamp,
			Summary:   summaryLine(commit.Message),
			Ahead:     ahead,
			Tip:       ref.Hash(),
			Upstream:  upstream,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &set, nil
}

// upstreamTip looks up the configured upstream of a branch and resolves
// its tip. A missing or unresolvable upstream reports ok=false; the
// caller falls back to the default branch, like git does for a gone
// upstream.
func (r *Repository) upstreamTip(cfg *config.Config, name string) (string, plumbing.Hash, bool) {
	b, ok := cfg.Branches[name]
	if !ok || b.Remote == "" || b.Merge == "" {
		return "", plumbing.ZeroHash, false
	}

	var refName plumbing.ReferenceName
	var short string
	if b.Remote == "." {
		// upstream is another local branch
		refName = b.Merge
		short = b.Merge.Short()
	} else {
		refName = plumbing.NewRemoteReferenceName(b.Remote, b.Merge.Short())
		short = b.Remote + "/" + b.Merge.Short()
	}

	ref, err := r.repo.Reference(refName, true)
	if err != nil {
		r.log.Debug().Str("branch", name).Str("upstream", short).
			Msg("configured upstream does not resolve, using default branch")
		return "", plumbing.ZeroHash, false
	}
	return short, ref.Hash(), true
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
