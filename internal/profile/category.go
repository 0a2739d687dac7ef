package profile

import (
	"path"
	"regexp"
	"strings"

	"github.com/agentos-dev/agentos/internal/defs"
)

// Category classifies a template file by its profile-relative path. The set
// is closed: classification happens once during indexing and downstream
// components switch over these values instead of re-matching path strings.
type Category int

const (
	// CategoryUnknown marks files outside every recognized subtree. They
	// are indexed but never planned.
	CategoryUnknown Category = iota

	// CategoryStandards is a standards file under standards/.
	CategoryStandards

	// CategoryWorkflow is a workflow fragment under workflows/. Workflow
	// fragments are only ever inlined, never installed.
	CategoryWorkflow

	// CategoryCommandSingle is a single-agent command file under
	// commands/<name>/single-agent/.
	CategoryCommandSingle

	// CategoryCommandMulti is a multi-agent command file under
	// commands/<name>/multi-agent/.
	CategoryCommandMulti

	// CategoryCommandShared is a command file directly under
	// commands/<name>/, exempt from the single/multi split.
	CategoryCommandShared

	// CategoryAgent is an agent definition under agents/, excluding the
	// agents/templates/ subtree.
	CategoryAgent

	// CategoryAgentTemplate is a file under agents/templates/. These are
	// inlined by agent definitions and never installed standalone.
	CategoryAgentTemplate

	// CategoryExpertise is an expertise template under expertise/.
	CategoryExpertise

	// CategoryRouting is a routing template under routing/.
	CategoryRouting
)

// String returns a short human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryStandards:
		return "standards"
	case CategoryWorkflow:
		return "workflow"
	case CategoryCommandSingle:
		return "command/single-agent"
	case CategoryCommandMulti:
		return "command/multi-agent"
	case CategoryCommandShared:
		return "command"
	case CategoryAgent:
		return "agent"
	case CategoryAgentTemplate:
		return "agent-template"
	case CategoryExpertise:
		return "expertise"
	case CategoryRouting:
		return "routing"
	default:
		return "unknown"
	}
}

// numberedStepPattern matches sub-step files named with a leading integer
// and hyphen, e.g. "1-plan.md". Such files exist only to be inlined by
// their parent command.
var numberedStepPattern = regexp.MustCompile(`^\d+-`)

// IsNumberedStep reports whether the base name of the given path is a
// numbered sub-step file.
func IsNumberedStep(rel string) bool {
	return numberedStepPattern.MatchString(path.Base(rel))
}

// Classify derives the category of a profile-relative path. Classification
// is purely structural: file content is never inspected.
func Classify(rel string) Category {
	rel = path.Clean(rel)
	parts := strings.Split(rel, "/")

	switch parts[0] {
	case defs.StandardsSubtree:
		return CategoryStandards
	case defs.WorkflowsSubtree:
		return CategoryWorkflow
	case defs.ExpertiseSubtree:
		return CategoryExpertise
	case defs.RoutingSubtree:
		return CategoryRouting
	case defs.AgentsSubtree:
		if len(parts) > 2 && parts[1] == "templates" {
			return CategoryAgentTemplate
		}
		if len(parts) > 1 {
			return CategoryAgent
		}
	case defs.CommandsSubtree:
		// commands/<name>/single-agent/... or commands/<name>/multi-agent/...
		if len(parts) >= 4 {
			switch parts[2] {
			case "single-agent":
				return CategoryCommandSingle
			case "multi-agent":
				return CategoryCommandMulti
			}
		}
		// commands/<name>/<file> sits outside the single/multi split.
		if len(parts) == 3 {
			return CategoryCommandShared
		}
	}
	return CategoryUnknown
}
