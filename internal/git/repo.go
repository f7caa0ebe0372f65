package git

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"
)

var (
	// ErrRepositoryNotFound means no repository exists at or above the
	// target path.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrNoDefaultBranch means every default-branch heuristic came up
	// empty: no usable remote HEAD, no local master or main.
	ErrNoDefaultBranch = errors.New("couldn't find default branch")

	// ErrMalformedReference means a remote-tracking reference name did
	// not split into remote and branch segments.
	ErrMalformedReference = errors.New("malformed remote-tracking reference")
)

// Repository is a read-only view over a local git repository.
type Repository struct {
	repo *gogit.Repository
	log  zerolog.Logger
}

// Open discovers and opens the repository at path, walking up parent
// directories the way git itself does. An empty path means the current
// working directory.
func Open(path string, log zerolog.Logger) (*Repository, error) {
	if path == "" {
		path = "."
	}
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w at %s", ErrRepositoryNotFound, path)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return &Repository{repo: repo, log: log}, nil
}

// Head describes the checked-out state of the repository.
type Head struct {
	Detached bool
	Branch   string        // short branch name, empty when detached
	Tip      plumbing.Hash // commit HEAD points at, only set when detached
}

// Head resolves the checked-out reference.
func (r *Repository) Head() (Head, error) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return Head{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return Head{Branch: ref.Target().Short()}, nil
	}
	resolved, err := r.repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("failed to resolve detached HEAD: %w", err)
	}
	return Head{Detached: true, Tip: resolved.Hash()}, nil
}

// summaryLine returns the first line of a commit message.
func summaryLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}
