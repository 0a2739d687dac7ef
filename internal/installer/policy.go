// Package installer applies a planned artifact set to the target project
// tree, deciding per artifact whether to create, overwrite or skip based on
// prior installation state and the operator's overwrite policy. It never
// silently clobbers user customizations.
package installer

import (
	"github.com/agentos-dev/agentos/internal/profile"
)

// OverwritePolicy is the set of categories the operator has authorized to
// be replaced during an update. It is supplied once per invocation and
// never mutated mid-run.
type OverwritePolicy struct {
	All       bool
	Standards bool
	Commands  bool
	Agents    bool
}

// Allows reports whether the policy authorizes overwriting an installed
// artifact of the given category. Expertise and routing templates have no
// category-scoped flag; only --overwrite-all covers them.
func (p OverwritePolicy) Allows(cat profile.Category) bool {
	if p.All {
		return true
	}
	switch cat {
	case profile.CategoryStandards:
		return p.Standards
	case profile.CategoryCommandSingle, profile.CategoryCommandMulti, profile.CategoryCommandShared:
		return p.Commands
	case profile.CategoryAgent:
		return p.Agents
	default:
		return false
	}
}
