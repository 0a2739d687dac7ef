package defs

// Common file and directory names used across the project.
const (
	// AgentOSDir is the root of the portable install tree inside a project.
	AgentOSDir = "agent-os"

	// ProjectConfigYML is the persisted project configuration record,
	// written under AgentOSDir after a successful install or update.
	ProjectConfigYML = "config.yml"

	// BaseConfigYML is the base configuration file name in the Agent OS home.
	BaseConfigYML = "config.yml"

	// ProfilesDir is the directory under the Agent OS home holding profiles.
	ProfilesDir = "profiles"

	// DefaultProfile is the profile every lookup falls back to.
	DefaultProfile = "default"

	// BackupDirPrefix prefixes the timestamped backup directories created
	// before a re-install.
	BackupDirPrefix = "agent-os-backup-"
)

// Destination roots inside the target project tree.
const (
	// StandardsDest receives compiled standards files.
	StandardsDest = "agent-os/standards"

	// PortableCommandsDest receives portable command files.
	PortableCommandsDest = "agent-os/commands"

	// ExpertiseDest receives expertise templates.
	ExpertiseDest = "agent-os/expertise"

	// RoutingDest receives routing templates.
	RoutingDest = "agent-os/routing"

	// ClaudeCommandsDest receives Claude Code command files.
	ClaudeCommandsDest = ".claude/commands/agent-os"

	// ClaudeAgentsDest receives Claude Code agent definitions.
	ClaudeAgentsDest = ".claude/agents/agent-os"

	// ClaudeSkillsDest receives standards installed as Claude Code skills.
	ClaudeSkillsDest = ".claude/skills/agent-os"
)

// Profile subtree names. A profile may leave any of these empty.
const (
	AgentsSubtree    = "agents"
	CommandsSubtree  = "commands"
	StandardsSubtree = "standards"
	WorkflowsSubtree = "workflows"
	ExpertiseSubtree = "expertise"
	RoutingSubtree   = "routing"
)
