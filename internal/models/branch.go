package models

import "github.com/go-git/go-git/v5/plumbing"

// Branch holds the computed status of one local branch.
type Branch struct {
	Name      string
	Active    bool
	Timestamp int64 // committer time of the tip, seconds since epoch
	Summary   string
	Ahead     int
	Tip       plumbing.Hash
	Upstream  string // e.g. "origin/main", empty if none configured
}

// Merged reports whether the branch has no commits of its own relative
// to its comparison baseline.
func (b Branch) Merged() bool {
	return b.Ahead == 0
}

// BranchSet is the result of one scan: the branches that survived name
// filtering, plus merged/unmerged totals over that whole set. The totals
// are fixed at scan time and are not affected by later ranking.
type BranchSet struct {
	Branches    []Branch
	NumMerged   int
	NumUnmerged int
}

// Total returns the number of branches scanned before any ranking.
func (s *BranchSet) Total() int {
	return s.NumMerged + s.NumUnmerged
}

// Filter selects which branches to list.
type Filter int

const (
	FilterRecent Filter = iota
	FilterAll
	FilterMerged
	FilterUnmerged
)

// OutputMode selects how the listing is rendered.
type OutputMode int

const (
	ModeHuman OutputMode = iota
	ModeListing
	ModeListingCommits
	ModeNameOnly
)
