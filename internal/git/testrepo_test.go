package git

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// testRepo builds in-memory repositories with scripted commit graphs.
type testRepo struct {
	t    *testing.T
	repo *gogit.Repository
	r    *Repository
	when time.Time
	n    int
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	repo, err := gogit.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)
	return &testRepo{
		t:    t,
		repo: repo,
		r:    &Repository{repo: repo, log: zerolog.Nop()},
		when: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// commit adds a file and commits it on the current branch. Each commit is
// a minute later than the previous one.
func (tr *testRepo) commit(msg string) plumbing.Hash {
	tr.t.Helper()
	tr.when = tr.when.Add(time.Minute)
	return tr.commitAt(msg, tr.when)
}

func (tr *testRepo) commitAt(msg string, when time.Time) plumbing.Hash {
	tr.t.Helper()
	wt, err := tr.repo.Worktree()
	require.NoError(tr.t, err)

	tr.n++
	name := fmt.Sprintf("file%d.txt", tr.n)
	require.NoError(tr.t, util.WriteFile(wt.Filesystem, name, []byte(msg), 0o644))
	_, err = wt.Add(name)
	require.NoError(tr.t, err)

	hash, err := wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: when},
	})
	require.NoError(tr.t, err)
	return hash
}

func (tr *testRepo) checkoutNew(name string) {
	tr.t.Helper()
	wt, err := tr.repo.Worktree()
	require.NoError(tr.t, err)
	require.NoError(tr.t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	}))
}

func (tr *testRepo) checkout(name string) {
	tr.t.Helper()
	wt, err := tr.repo.Worktree()
	require.NoError(tr.t, err)
	require.NoError(tr.t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
	}))
}

func (tr *testRepo) checkoutDetached(hash plumbing.Hash) {
	tr.t.Helper()
	wt, err := tr.repo.Worktree()
	require.NoError(tr.t, err)
	require.NoError(tr.t, wt.Checkout(&gogit.CheckoutOptions{Hash: hash}))
}

func (tr *testRepo) setRef(name string, hash plumbing.Hash) {
	tr.t.Helper()
	ref := plumbing.NewHashReference(plumbing.ReferenceName(name), hash)
	require.NoError(tr.t, tr.repo.Storer.SetReference(ref))
}

func (tr *testRepo) setSymbolicRef(name, target string) {
	tr.t.Helper()
	ref := plumbing.NewSymbolicReference(plumbing.ReferenceName(name), plumbing.ReferenceName(target))
	require.NoError(tr.t, tr.repo.Storer.SetReference(ref))
}

func (tr *testRepo) removeRef(name string) {
	tr.t.Helper()
	require.NoError(tr.t, tr.repo.Storer.RemoveReference(plumbing.ReferenceName(name)))
}
