package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

const remoteRefPrefix = "refs/remotes/"

// defaultBaseline returns the tip of the default branch, the commit
// branches without an upstream are compared against. Each configured
// remote may carry a symbolic HEAD reference naming its default branch;
// candidates are sorted by reference name so the choice never depends on
// storage iteration order, and origin wins over any other remote. The
// chosen remote branch is then mapped to the local branch of the same
// name. If that yields nothing, a local master or main is used instead.
func (r *Repository) defaultBaseline() (plumbing.Hash, error) {
	refs, err := r.repo.References()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to enumerate references: %w", err)
	}

	var candidates []*plumbing.Reference
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().String()
		if ref.Type() == plumbing.SymbolicReference &&
			strings.HasPrefix(name, remoteRefPrefix) &&
			strings.HasSuffix(name, "/HEAD") {
			candidates = append(candidates, ref)
		}
		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to enumerate references: %w", err)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Name() < candidates[j].Name()
	})

	// Prefer origin; otherwise the last remote with a HEAD wins (normally
	// only one remote, the one used to clone, has it).
	var headRef *plumbing.Reference
	for _, ref := range candidates {
		headRef = ref
		if strings.HasPrefix(ref.Name().String(), remoteRefPrefix+"origin/") {
			break
		}
	}

	if headRef != nil {
		resolved, err := r.repo.Reference(headRef.Name(), true)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to resolve %s: %w", headRef.Name(), err)
		}

		remoteAndBranch := strings.TrimPrefix(resolved.Name().String(), remoteRefPrefix)
		parts := strings.SplitN(remoteAndBranch, "/", 2)
		if len(parts) != 2 {
			return plumbing.ZeroHash, fmt.Errorf("%w: %s", ErrMalformedReference, resolved.Name())
		}
		branch := parts[1]

		if ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true); err == nil {
			r.log.Debug().Str("branch", branch).Str("remote_head", headRef.Name().String()).
				Msg("resolved default branch from remote HEAD")
			return ref.Hash(), nil
		}
	}

	for _, branch := range []string{"master", "main"} {
		if ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true); err == nil {
			r.log.Debug().Str("branch", branch).Msg("resolved default branch by name")
			return ref.Hash(), nil
		}
	}

	return plumbing.ZeroHash, ErrNoDefaultBranch
}
