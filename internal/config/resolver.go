package config

import (
	"fmt"
	"log/slog"
	"maps"
)

// Effective is the fully resolved configuration: every recognized flag has a
// concrete boolean. It is immutable after Resolve returns.
type Effective struct {
	values map[string]bool
	notes  []string
}

// Resolve merges configuration layers into an Effective config. Layers are
// applied in precedence order from lowest to highest (base, then project,
// then CLI); each layer overrides only the flags it explicitly sets. Flags no
// layer sets resolve to false.
//
// Resolve is total: it never fails. Dependency downgrades are recorded as
// warning notes, not errors.
func Resolve(layers ...Layer) *Effective {
	values := make(map[string]bool, len(flagNames))
	for _, name := range flagNames {
		values[name] = false
	}

	for _, layer := range layers {
		for _, name := range flagNames {
			switch layer[name] {
			case True:
				values[name] = true
			case False:
				values[name] = false
			case Unset:
				// keep lower-precedence value
			}
		}
	}

	eff := &Effective{values: values}
	eff.applyDependencyRules()
	return eff
}

// applyDependencyRules downgrades flags whose prerequisites are disabled.
// Standards can only be installed as Claude Code skills when Claude Code
// commands are installed at all.
func (e *Effective) applyDependencyRules() {
	if e.values[FlagStandardsAsSkills] && !e.values[FlagClaudeCodeCommands] {
		e.values[FlagStandardsAsSkills] = false
		note := fmt.Sprintf("%s requires %s; disabling it",
			FlagStandardsAsSkills, FlagClaudeCodeCommands)
		e.notes = append(e.notes, note)
		slog.Warn("config flag downgraded",
			"flag", FlagStandardsAsSkills,
			"requires", FlagClaudeCodeCommands)
	}
}

// Enabled reports whether the named flag resolved to true. Unrecognized
// names report false.
func (e *Effective) Enabled(name string) bool {
	return e.values[name]
}

// Map returns a copy of the resolved flag values.
func (e *Effective) Map() map[string]bool {
	result := make(map[string]bool, len(e.values))
	maps.Copy(result, e.values)
	return result
}

// Notes returns warning-level side notes recorded during resolution, such as
// dependency downgrades. They are surfaced in the run summary.
func (e *Effective) Notes() []string {
	result := make([]string, len(e.notes))
	copy(result, e.notes)
	return result
}
