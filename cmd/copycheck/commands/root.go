// Copyright 2026-2026 Hewlett Packard Enterprise Development LP

package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/hpe/copycheck/cmd/copycheck/internal/clierr"
	"github.com/hpe/copycheck/internal/audit"
	"github.com/hpe/copycheck/internal/config"
	"github.com/hpe/copycheck/internal/ignore"
)

// NewRootCmd constructs the copycheck root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COPYCHECK_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	var (
		checkOnly bool
		dryRun    bool
		verbose   bool
		year      int
	)

	cmd := &cobra.Command{
		Use:   "copycheck [path]",
		Short: "Audit and fix HPE copyright headers in source trees",
		Long: `Copycheck scans a directory tree for source files, checks each for a
Copyright <start>-<end> Hewlett Packard Enterprise Development LP header in
the comment style of its file type, and adds missing headers or updates
outdated year ranges. Patterns in .gitignore and .copyrightignore at the
scan root exclude files from the scan.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runAudit(cmd, root, checkOnly, dryRun, verbose, year)
		},
	}

	cmd.Flags().BoolVarP(&checkOnly, "check-only", "c", false, "report issues without modifying files; exit 1 if any are found")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would change without modifying files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print files whose header is already current")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year to treat as current")
	cmd.MarkFlagsMutuallyExclusive("check-only", "dry-run")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of copycheck",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "copycheck version %s\n", version)
		},
	})

	return cmd
}

func runAudit(cmd *cobra.Command, root string, checkOnly, dryRun, verbose bool, year int) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return clierr.Wrap(1, "resolving path", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return clierr.Newf(1, "path does not exist: %s", root)
	}
	if !info.IsDir() {
		return clierr.Newf(1, "path is not a directory: %s", root)
	}

	cfg, err := config.Load(absRoot)
	if err != nil {
		return clierr.Wrap(1, "loading config", err)
	}
	styles, err := cfg.Styles()
	if err != nil {
		return clierr.Wrap(1, "loading config", err)
	}
	rules, err := ignore.Load(absRoot, cfg.Ignore)
	if err != nil {
		return clierr.Wrap(1, "loading ignore rules", err)
	}

	out := cmd.OutOrStdout()
	fix := !checkOnly && !dryRun

	if !checkOnly {
		fmt.Fprintf(out, "Scanning: %s (year %d)\n", absRoot, year)
		if dryRun {
			fmt.Fprintln(out, "Mode: DRY RUN (no changes will be made)")
		}
		fmt.Fprintln(out)
	}

	auditor := &audit.Auditor{Root: absRoot, Year: year, Styles: styles, Rules: rules}
	rep, err := auditor.Run(fix)
	if err != nil {
		return clierr.Wrap(1, "scanning "+root, err)
	}

	for _, w := range rep.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	switch {
	case dryRun:
		// Dry runs print everything, for visibility.
		printFindings(out, rep.Findings)
	case verbose:
		printFindings(out, rep.Findings)
	default:
		printFindings(out, rep.Flagged())
	}

	if !checkOnly {
		printSummary(out, rep)
	}

	if checkOnly {
		if flagged := len(rep.Flagged()); flagged > 0 {
			return clierr.Newf(1, "%d file(s) need copyright header fixes", flagged)
		}
		return nil
	}
	if fix && rep.Failed() {
		failed := rep.Count(audit.StatusUnreadable) + rep.Count(audit.StatusWriteFailed)
		return clierr.Newf(1, "%d file(s) could not be processed", failed)
	}
	return nil
}

var statusIcons = map[audit.Status]string{
	audit.StatusOK:          "✓",
	audit.StatusMissing:     "+",
	audit.StatusOutdated:    "~",
	audit.StatusMalformed:   "?",
	audit.StatusUnreadable:  "!",
	audit.StatusWriteFailed: "!",
}

func printFindings(out io.Writer, findings []audit.Finding) {
	for _, f := range findings {
		fmt.Fprintf(out, "  %s %s: %s\n", statusIcons[f.Status], f.Path, f.Detail)
	}
}

func printSummary(out io.Writer, rep *audit.Report) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Summary:")
	fmt.Fprintf(out, "  ✓ OK:           %d\n", rep.Count(audit.StatusOK))
	fmt.Fprintf(out, "  + Missing:      %d\n", rep.Count(audit.StatusMissing))
	fmt.Fprintf(out, "  ~ Outdated:     %d\n", rep.Count(audit.StatusOutdated))
	fmt.Fprintf(out, "  ? Malformed:    %d\n", rep.Count(audit.StatusMalformed))
	fmt.Fprintf(out, "  ! Unreadable:   %d\n", rep.Count(audit.StatusUnreadable))
	fmt.Fprintf(out, "  ! Write failed: %d\n", rep.Count(audit.StatusWriteFailed))
}
