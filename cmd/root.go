package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jlebon/git-bstatus/internal/git"
	"github.com/jlebon/git-bstatus/internal/logging"
	"github.com/jlebon/git-bstatus/internal/models"
	"github.com/jlebon/git-bstatus/internal/ui"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)

var (
	repoPath string
	verbose  bool
	all      bool
	merged   bool
	unmerged bool
	reverse  bool
	nameOnly bool
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "git-bstatus [flags] [BRANCH]...",
	Short: "Summarize the status of local branches",
	Long: `git-bstatus lists local branches with their age, whether they are
merged into their upstream (or the default branch), and how many commits
they are ahead. Positional arguments filter branches by name substring.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := selectFilter(all, merged, unmerged)
		mode := selectMode(verbose, nameOnly, filter, len(args))
		return run(args, filter, mode)
	},
}

func init() {
	rootCmd.Flags().StringVar(&repoPath, "repo", "", "Git repo to target")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List added commits")
	rootCmd.Flags().BoolVarP(&all, "all", "a", false, "List all branches")
	rootCmd.Flags().BoolVarP(&merged, "merged", "m", false, "List only merged branches")
	rootCmd.Flags().BoolVarP(&unmerged, "unmerged", "u", false, "List only unmerged branches")
	rootCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Reverse listing order")
	rootCmd.Flags().BoolVarP(&nameOnly, "name-only", "n", false, "Print branch names only")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Print debug tracing to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("error:"), err)
		os.Exit(1)
	}
}

// selectFilter maps the flag combination to a branch filter. Asking for
// both merged and unmerged is the same as asking for everything.
func selectFilter(all, merged, unmerged bool) models.Filter {
	switch {
	case all || (merged && unmerged):
		return models.FilterAll
	case merged:
		return models.FilterMerged
	case unmerged:
		return models.FilterUnmerged
	default:
		return models.FilterRecent
	}
}

// selectMode picks the output mode: explicit mode flags win, and any
// filtering implies the plain listing; the narrative report is only for
// a bare invocation.
func selectMode(verbose, nameOnly bool, filter models.Filter, numPatterns int) models.OutputMode {
	switch {
	case verbose:
		return models.ModeListingCommits
	case nameOnly:
		return models.ModeNameOnly
	case filter != models.FilterRecent || numPatterns > 0:
		return models.ModeListing
	default:
		return models.ModeHuman
	}
}

func run(patterns []string, filter models.Filter, mode models.OutputMode) error {
	logger := logging.New(debug)

	repo, err := git.Open(repoPath, logger)
	if err != nil {
		return err
	}

	set, err := repo.Scan(patterns)
	if err != nil {
		return err
	}

	ranked := set.Rank(filter, reverse)

	printer := ui.NewPrinter(os.Stdout)
	switch mode {
	case models.ModeNameOnly:
		printer.Names(ranked)
		return nil
	case models.ModeListing:
		return printer.Listing(ranked)
	case models.ModeListingCommits:
		return printer.ListingCommits(ranked, repo)
	default:
		head, err := repo.Head()
		if err != nil {
			return err
		}
		return printer.Human(head, set, ranked)
	}
}
