package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentos-dev/agentos/internal/planner"
)

// Mode selects the reconciliation behavior for installed files.
type Mode int

const (
	// ModeFresh is a first-time install: existing files are never
	// overwritten, whatever the policy says.
	ModeFresh Mode = iota

	// ModeUpdate is a repeat run: installed files are overwritten only
	// when the overwrite policy covers their category.
	ModeUpdate
)

// Action is the reconciliation decision for one artifact.
type Action int

const (
	// ActionCreate writes a file that is absent from the project.
	ActionCreate Action = iota
	// ActionOverwrite replaces an installed file under an authorizing policy.
	ActionOverwrite
	// ActionSkip leaves an installed file untouched.
	ActionSkip
)

// String returns a short name for the action.
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionOverwrite:
		return "overwrite"
	default:
		return "skip"
	}
}

// Decision records the action taken (or planned, under dry-run) for one
// artifact.
type Decision struct {
	Artifact planner.Artifact
	Action   Action
}

// Report summarizes one reconciliation run. Skipped destinations are listed
// individually so the operator is told every place a newer version was
// available but not applied.
type Report struct {
	Decisions   []Decision
	Created     int
	Overwritten int
	Skipped     []string
	DryRun      bool
}

// CountByCategory tallies decisions with the given action per category name.
func (r *Report) CountByCategory(action Action) map[string]int {
	counts := map[string]int{}
	for _, d := range r.Decisions {
		if d.Action == action {
			counts[d.Artifact.Category.String()]++
		}
	}
	return counts
}

// Reconciler applies planned artifacts to a project root.
type Reconciler struct {
	root     string
	policy   OverwritePolicy
	mode     Mode
	dryRun   bool
	observer func(Decision)
}

// SetObserver registers a callback invoked after each per-artifact
// decision, for progress reporting.
func (r *Reconciler) SetObserver(fn func(Decision)) {
	r.observer = fn
}

// New creates a Reconciler for the given project root.
func New(projectRoot string, policy OverwritePolicy, mode Mode, dryRun bool) *Reconciler {
	return &Reconciler{
		root:   filepath.Clean(projectRoot),
		policy: policy,
		mode:   mode,
		dryRun: dryRun,
	}
}

// Reconcile decides and applies the action for every artifact in order.
// Under dry-run every decision is computed and reported but nothing is
// written. Writes are not transactional: an error aborts the remaining
// plan but leaves already-applied artifacts in place, and re-running is
// the recovery path.
func (r *Reconciler) Reconcile(ctx context.Context, artifacts []planner.Artifact) (*Report, error) {
	report := &Report{DryRun: r.dryRun}

	for _, a := range artifacts {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		action, err := r.decide(a)
		if err != nil {
			return report, err
		}

		if !r.dryRun && action != ActionSkip {
			if err := r.write(a); err != nil {
				return report, err
			}
		}

		decision := Decision{Artifact: a, Action: action}
		report.Decisions = append(report.Decisions, decision)
		if r.observer != nil {
			r.observer(decision)
		}
		switch action {
		case ActionCreate:
			report.Created++
		case ActionOverwrite:
			report.Overwritten++
		case ActionSkip:
			report.Skipped = append(report.Skipped, a.Dest)
		}
	}
	return report, nil
}

// decide maps (existing state, policy, mode) to an action for one artifact.
func (r *Reconciler) decide(a planner.Artifact) (Action, error) {
	dest := filepath.Join(r.root, filepath.FromSlash(a.Dest))
	if err := validateDestPath(r.root, a.Dest); err != nil {
		return ActionSkip, err
	}

	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return ActionCreate, nil
	}

	if r.mode == ModeUpdate && r.policy.Allows(a.Category) {
		return ActionOverwrite, nil
	}
	return ActionSkip, nil
}

// write creates parent directories and writes the artifact content.
func (r *Reconciler) write(a planner.Artifact) error {
	dest := filepath.Join(r.root, filepath.FromSlash(a.Dest))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("installer: mkdir for %q: %w", a.Dest, err)
	}
	if err := os.WriteFile(dest, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("installer: write %q: %w", a.Dest, err)
	}
	return nil
}

// validateDestPath ensures a destination path does not escape the project
// root.
func validateDestPath(projectRoot, rel string) error {
	cleaned := filepath.Clean(filepath.FromSlash(rel))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("installer: absolute destination %q", rel)
	}
	if strings.HasPrefix(cleaned, "..") || strings.Contains(cleaned, string(filepath.Separator)+"..") {
		return fmt.Errorf("installer: destination %q escapes project root", rel)
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("installer: resolve project root: %w", err)
	}
	absDest := filepath.Join(absRoot, cleaned)
	if absDest != absRoot && !strings.HasPrefix(absDest, absRoot+string(filepath.Separator)) {
		return fmt.Errorf("installer: destination %q escapes project root", rel)
	}
	return nil
}
