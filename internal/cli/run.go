package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/installer"
	"github.com/agentos-dev/agentos/internal/planner"
	"github.com/agentos-dev/agentos/internal/profile"
	"github.com/agentos-dev/agentos/internal/ui"
	"github.com/agentos-dev/agentos/pkg/version"
)

// runInputs bundles everything an install or update run needs once flags
// and the environment have been resolved.
type runInputs struct {
	rt     *runtime
	index  *profile.Index
	cfg    *config.Effective
	mode   installer.Mode
	policy installer.OverwritePolicy
	dryRun bool

	verbose   bool
	assumeYes bool
	headless  *ui.HeadlessManager
}

// executePlan plans the artifact set and reconciles it against the
// project. Under --dry-run the plan is reported first and applied only
// after explicit confirmation; declining is a success.
func executePlan(cmd *cobra.Command, in runInputs) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	artifacts, err := planner.New(in.index, in.cfg).Plan()
	if err != nil {
		return err
	}
	if len(artifacts) == 0 {
		_, _ = fmt.Fprintln(out, "Nothing to install: the profile contributed no artifacts for this configuration.")
		return nil
	}

	if in.dryRun {
		preview, err := installer.New(in.rt.projectRoot, in.policy, in.mode, true).Reconcile(ctx, artifacts)
		if err != nil {
			return err
		}
		printReport(out, preview, in.cfg, in.verbose)

		confirmer := ui.NewConfirmer(in.headless, in.assumeYes)
		proceed, err := confirmer.Confirm(
			"Apply these changes?",
			fmt.Sprintf("%d file(s) would be written to %s", preview.Created+preview.Overwritten, in.rt.projectRoot),
		)
		if err != nil {
			return err
		}
		if !proceed {
			_, _ = fmt.Fprintln(out, "\nDry run left the project untouched.")
			return nil
		}
	}

	rec := installer.New(in.rt.projectRoot, in.policy, in.mode, false)

	theme := ui.DefaultTheme()
	bar := ui.NewProgress(theme, in.headless).Start("Installing artifacts", len(artifacts))
	rec.SetObserver(func(d installer.Decision) {
		bar.SetTitle(d.Artifact.Dest)
		bar.Increment(1)
	})

	report, err := rec.Reconcile(ctx, artifacts)
	bar.Done()
	if err != nil {
		return err
	}

	if err := config.SaveRecord(in.rt.projectRoot, &config.Record{
		Version: version.GetVersion(),
		Profile: in.index.Name(),
		Flags:   in.cfg.Map(),
	}); err != nil {
		return err
	}

	printReport(out, report, in.cfg, in.verbose)
	return nil
}

// printReport renders the run summary: per-action counts, configuration
// notes, and an explicit notice for every skipped destination so the
// operator knows where a newer version was available.
func printReport(out io.Writer, report *installer.Report, cfg *config.Effective, verbose bool) {
	title := "Agent OS scaffold synchronized"
	if report.DryRun {
		title = "Dry run: planned changes"
	}

	pairs := []kvPair{
		{"Created", countWithBreakdown(report.Created, report.CountByCategory(installer.ActionCreate))},
		{"Overwritten", countWithBreakdown(report.Overwritten, report.CountByCategory(installer.ActionOverwrite))},
		{"Skipped", fmt.Sprintf("%d", len(report.Skipped))},
	}

	var details []string
	details = append(details, renderKeyValueLines(pairs))

	for _, note := range cfg.Notes() {
		details = append(details, symWarning()+" "+cliWarn.Render(note))
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(title, details...))

	if verbose {
		for _, d := range report.Decisions {
			_, _ = fmt.Fprintf(out, "  %s %s (%s)\n", actionSymbol(d.Action), d.Artifact.Dest, d.Artifact.Category)
		}
	}

	for _, dest := range report.Skipped {
		_, _ = fmt.Fprintf(out, "%s skipped %s: newer version available, not overwritten (use an --overwrite flag to replace)\n",
			symSkip(), dest)
	}
}

// countWithBreakdown renders "7 (5 standards, 2 command)" style counts. The
// per-category breakdown is sorted by name for stable output.
func countWithBreakdown(total int, byCategory map[string]int) string {
	if total == 0 || len(byCategory) == 0 {
		return fmt.Sprintf("%d", total)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%d %s", byCategory[name], name))
	}
	return fmt.Sprintf("%d (%s)", total, strings.Join(parts, ", "))
}

func actionSymbol(a installer.Action) string {
	switch a {
	case installer.ActionCreate, installer.ActionOverwrite:
		return symSuccess()
	default:
		return symSkip()
	}
}
