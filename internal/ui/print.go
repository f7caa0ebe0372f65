package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jlebon/git-bstatus/internal/git"
	"github.com/jlebon/git-bstatus/internal/models"
)

var greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green"))

// CommitWalker walks a branch tip's ancestry for the verbose listing.
type CommitWalker interface {
	WalkTip(tip plumbing.Hash, limit int, fn func(plumbing.Hash, string) error) error
}

// Printer renders ranked branches to a writer.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Names prints branch names only, one per line.
func (p *Printer) Names(branches []models.Branch) {
	for _, b := range branches {
		fmt.Fprintln(p.out, b.Name)
	}
}

// Listing prints one aligned row per branch.
func (p *Printer) Listing(branches []models.Branch) error {
	return p.printBranches(branches, nil, false)
}

// ListingCommits prints one row per branch followed by the commits that
// make up its ahead count.
func (p *Printer) ListingCommits(branches []models.Branch, walker CommitWalker) error {
	return p.printBranches(branches, walker, false)
}

// Human prints the default report: the checked-out state, the recently
// active branches, and a totals trailer when there is more than just the
// default branch to talk about.
func (p *Printer) Human(head git.Head, set *models.BranchSet, ranked []models.Branch) error {
	if head.Detached {
		fmt.Fprintf(p.out, "HEAD detached at %.8s\n", head.Tip.String())
	} else {
		fmt.Fprintf(p.out, "On branch %s\n", head.Branch)
	}

	fmt.Fprint(p.out, "Recently active branches:\n"+
		"  (use \"git bstatus -a\" to list all branches)\n"+
		"  (use \"git bstatus -v\" to list commits)\n\n")

	rows := ranked
	if len(rows) > models.RecentWindow {
		rows = rows[:models.RecentWindow]
	}
	if err := p.printBranches(rows, nil, true); err != nil {
		return err
	}

	// not worth printing if there's only the default branch
	if set.NumUnmerged > 0 || set.NumMerged > 1 {
		fmt.Fprintf(p.out, "\nThere are %d local branches (%d merged, %d unmerged).\n"+
			"  (use \"git bstatus -m\" or \"git bstatus -u\" to list them)\n",
			set.Total(), set.NumMerged, set.NumUnmerged)
	}

	return nil
}

// printBranches renders the shared table. Widths are recomputed from the
// rows actually printed, and padding is applied before styling so escape
// sequences never skew alignment. A non-nil walker switches the summary
// column for per-commit detail lines.
func (p *Printer) printBranches(branches []models.Branch, walker CommitWalker, tab bool) error {
	if len(branches) == 0 {
		return nil
	}

	ages := make([]string, len(branches))
	for i, b := range branches {
		ages[i] = RelativeTime(b.Timestamp)
	}
	w := columnWidths(branches, ages)

	starWidth := 1
	if tab {
		starWidth = 4
	}

	for i, b := range branches {
		marker := " "
		if b.Active {
			marker = "*"
		}
		star := fmt.Sprintf("%*s", starWidth, marker)

		name := fmt.Sprintf("%-*s", w.name, b.Name)
		if b.Active {
			name = greenStyle.Render(name)
		}

		ahead := greenStyle.Render(fmt.Sprintf("%+*d", w.ahead, b.Ahead))

		fmt.Fprintf(p.out, "%s %s  %*s %s", star, name, w.age, ages[i], ahead)

		if b.Upstream != "" {
			fmt.Fprintf(p.out, " %s", greenStyle.Render("("+b.Upstream+")"))
		}

		if walker == nil {
			fmt.Fprintf(p.out, " %s\n", b.Summary)
			continue
		}

		fmt.Fprintln(p.out)
		err := walker.WalkTip(b.Tip, b.Ahead+1, func(h plumbing.Hash, summary string) error {
			fmt.Fprintf(p.out, "    %.8s %s\n", h.String(), summary)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
