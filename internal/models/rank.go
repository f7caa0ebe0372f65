package models

import (
	"slices"
	"sort"
)

// RecentWindow is how many branches the Recent filter keeps.
// TODO: make this a flag.
const RecentWindow = 5

// Rank returns the branches to render, in display order. The pipeline is
// fixed: filter by merge status, stable-sort by tip time (most recent
// first), truncate to RecentWindow for the Recent filter, then reverse if
// asked. Truncation happens before reversal so Recent always keeps the
// newest branches regardless of display order. The receiver's branches
// and counters are left untouched.
func (s *BranchSet) Rank(filter Filter, reverse bool) []Branch {
	out := make([]Branch, 0, len(s.Branches))
	for _, b := range s.Branches {
		if filter == FilterMerged && !b.Merged() {
			continue
		}
		if filter == FilterUnmerged && b.Merged() {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})

	if filter == FilterRecent && len(out) > RecentWindow {
		out = out[:RecentWindow]
	}

	if reverse {
		slices.Reverse(out)
	}

	return out
}
