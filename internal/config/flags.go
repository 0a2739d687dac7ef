package config

import (
	"fmt"
	"slices"
	"strings"
)

// Recognized feature flag names. The set is closed: resolution, planning and
// template conditionals all switch over these names and nothing else.
const (
	FlagClaudeCodeCommands     = "claude_code_commands"
	FlagUseClaudeCodeSubagents = "use_claude_code_subagents"
	FlagAgentOSCommands        = "agent_os_commands"
	FlagStandardsAsSkills      = "standards_as_claude_code_skills"
	FlagSessionManagement      = "session_management"
	FlagExpertiseTracking      = "expertise_tracking"
	FlagProgressTracking       = "progress_tracking"
	FlagSmartRouting           = "smart_routing"
	FlagSelfImprovement        = "self_improvement"
)

// flagNames lists every recognized flag, in declaration order.
var flagNames = []string{
	FlagClaudeCodeCommands,
	FlagUseClaudeCodeSubagents,
	FlagAgentOSCommands,
	FlagStandardsAsSkills,
	FlagSessionManagement,
	FlagExpertiseTracking,
	FlagProgressTracking,
	FlagSmartRouting,
	FlagSelfImprovement,
}

// FlagNames returns all recognized flag names.
func FlagNames() []string {
	result := make([]string, len(flagNames))
	copy(result, flagNames)
	return result
}

// IsKnownFlag checks if the given name is a recognized flag.
func IsKnownFlag(name string) bool {
	return slices.Contains(flagNames, name)
}

// TriState is the value of a flag within a single configuration layer:
// explicitly true, explicitly false, or not set by that layer.
type TriState int

const (
	// Unset means the layer does not mention the flag.
	Unset TriState = iota
	// False means the layer explicitly disables the flag.
	False
	// True means the layer explicitly enables the flag.
	True
)

// Layer holds the flag values contributed by one configuration source
// (base file, project record, or CLI). Missing keys are Unset.
type Layer map[string]TriState

// Set records an explicit boolean for the named flag.
func (l Layer) Set(name string, value bool) {
	if value {
		l[name] = True
	} else {
		l[name] = False
	}
}

// ParseBool parses a boolean flag literal. Only the tokens "true" and
// "false" are accepted, case-insensitively; anything else is a
// ValidationError naming the offending flag and value.
func ParseBool(flag, literal string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(literal)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &ValidationError{
			Flag:    flag,
			Value:   literal,
			Message: fmt.Sprintf("must be %q or %q (case-insensitive)", "true", "false"),
			Wrapped: ErrInvalidBoolLiteral,
		}
	}
}
