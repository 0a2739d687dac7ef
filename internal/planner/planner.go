// Package planner walks a profile's file set and computes the destination
// path and desired content for every installable artifact. Planning is
// read-only: disk effects belong to the installer.
package planner

import (
	"fmt"
	"path"
	"strings"

	"github.com/agentos-dev/agentos/internal/compiler"
	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/defs"
	"github.com/agentos-dev/agentos/internal/profile"
)

// Artifact is one compiled file destined for the target project tree.
type Artifact struct {
	// Source is the profile-relative path the artifact was derived from.
	Source string
	// Category is the source file's category.
	Category profile.Category
	// Dest is the slash-separated destination path relative to the
	// project root.
	Dest string
	// Content is the final compiled text.
	Content string
}

// Planner computes the artifact set for one profile and effective config.
type Planner struct {
	index *profile.Index
	cfg   *config.Effective
	comp  *compiler.Compiler
}

// New creates a Planner.
func New(index *profile.Index, cfg *config.Effective) *Planner {
	return &Planner{
		index: index,
		cfg:   cfg,
		comp:  compiler.New(index, cfg),
	}
}

// Plan produces the full artifact sequence in a deterministic order:
// standards, shared commands, multi-agent commands, single-agent commands,
// agents, expertise, routing. Disabled feature categories produce zero
// artifacts rather than artifacts discarded later. The first artifact
// planned for a destination wins; later collisions are dropped.
func (p *Planner) Plan() ([]Artifact, error) {
	var artifacts []Artifact
	seen := map[string]bool{}

	add := func(a Artifact) {
		if seen[a.Dest] {
			return
		}
		seen[a.Dest] = true
		artifacts = append(artifacts, a)
	}

	steps := []func(func(Artifact)) error{
		p.planStandards,
		p.planSharedCommands,
		p.planMultiAgentCommands,
		p.planSingleAgentCommands,
		p.planAgents,
		p.planExpertise,
		p.planRouting,
	}
	for _, step := range steps {
		if err := step(add); err != nil {
			return nil, err
		}
	}
	return artifacts, nil
}

// claudeNative reports whether the Claude Code install target is active.
func (p *Planner) claudeNative() bool {
	return p.cfg.Enabled(config.FlagClaudeCodeCommands)
}

// portable reports whether the portable install target is active.
func (p *Planner) portable() bool {
	return p.cfg.Enabled(config.FlagAgentOSCommands)
}

// planStandards maps standards files 1:1 into the project standards tree,
// and additionally into the Claude skills tree when standards are installed
// as skills.
func (p *Planner) planStandards(add func(Artifact)) error {
	files, err := p.index.ListFiles(profile.CategoryStandards)
	if err != nil {
		return err
	}

	asSkills := p.cfg.Enabled(config.FlagStandardsAsSkills)
	for _, f := range files {
		content, err := p.comp.Compile(f.Path, compiler.ModeEmbed)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		rel := strings.TrimPrefix(f.Path, defs.StandardsSubtree+"/")
		add(Artifact{
			Source:   f.Path,
			Category: f.Category,
			Dest:     path.Join(defs.StandardsDest, rel),
			Content:  content,
		})
		if asSkills {
			add(Artifact{
				Source:   f.Path,
				Category: f.Category,
				Dest:     path.Join(defs.ClaudeSkillsDest, rel),
				Content:  content,
			})
		}
	}
	return nil
}

// planSharedCommands handles command files that sit outside the
// single/multi split. They are planned for every active install target and
// compiled without phase embedding.
func (p *Planner) planSharedCommands(add func(Artifact)) error {
	files, err := p.index.ListFiles(profile.CategoryCommandShared)
	if err != nil {
		return err
	}

	for _, f := range files {
		content, err := p.comp.Compile(f.Path, compiler.ModeReference)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		name := commandName(f.Path)
		if p.claudeNative() {
			add(Artifact{
				Source:   f.Path,
				Category: f.Category,
				Dest:     path.Join(defs.ClaudeCommandsDest, name+".md"),
				Content:  content,
			})
		}
		if p.portable() {
			add(Artifact{
				Source:   f.Path,
				Category: f.Category,
				Dest:     path.Join(defs.PortableCommandsDest, name, path.Base(f.Path)),
				Content:  content,
			})
		}
	}
	return nil
}

// planMultiAgentCommands compiles multi-agent command files into flat
// Claude commands. They apply only when Claude commands and subagents are
// both active.
func (p *Planner) planMultiAgentCommands(add func(Artifact)) error {
	if !p.claudeNative() || !p.cfg.Enabled(config.FlagUseClaudeCodeSubagents) {
		return nil
	}

	files, err := p.index.ListFiles(profile.CategoryCommandMulti)
	if err != nil {
		return err
	}
	for _, f := range files {
		content, err := p.comp.Compile(f.Path, compiler.ModeEmbed)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		add(Artifact{
			Source:   f.Path,
			Category: f.Category,
			Dest:     path.Join(defs.ClaudeCommandsDest, commandName(f.Path)+".md"),
			Content:  content,
		})
	}
	return nil
}

// planSingleAgentCommands compiles single-agent command files. The Claude
// target flattens each command to one file and excludes numbered sub-steps,
// which exist only to be inlined by their parent. The portable target keeps
// the command directory layout.
func (p *Planner) planSingleAgentCommands(add func(Artifact)) error {
	claudeTarget := p.claudeNative() && !p.cfg.Enabled(config.FlagUseClaudeCodeSubagents)
	if !claudeTarget && !p.portable() {
		return nil
	}

	files, err := p.index.ListFiles(profile.CategoryCommandSingle)
	if err != nil {
		return err
	}
	for _, f := range files {
		content, err := p.comp.Compile(f.Path, compiler.ModeEmbed)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		if claudeTarget && !profile.IsNumberedStep(f.Path) {
			add(Artifact{
				Source:   f.Path,
				Category: f.Category,
				Dest:     path.Join(defs.ClaudeCommandsDest, commandName(f.Path)+".md"),
				Content:  content,
			})
		}
		if p.portable() {
			add(Artifact{
				Source:   f.Path,
				Category: f.Category,
				Dest:     path.Join(defs.PortableCommandsDest, commandName(f.Path), path.Base(f.Path)),
				Content:  content,
			})
		}
	}
	return nil
}

// planAgents flattens agent definitions into the Claude agents tree,
// compiled with embedding enabled. Agent sub-templates are excluded by
// their category. Agents only apply when subagents are in use.
func (p *Planner) planAgents(add func(Artifact)) error {
	if !p.cfg.Enabled(config.FlagUseClaudeCodeSubagents) {
		return nil
	}

	files, err := p.index.ListFiles(profile.CategoryAgent)
	if err != nil {
		return err
	}
	for _, f := range files {
		if !strings.HasSuffix(f.Path, ".md") {
			continue
		}
		content, err := p.comp.Compile(f.Path, compiler.ModeEmbed)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		add(Artifact{
			Source:   f.Path,
			Category: f.Category,
			Dest:     path.Join(defs.ClaudeAgentsDest, path.Base(f.Path)),
			Content:  content,
		})
	}
	return nil
}

// planExpertise maps expertise templates into the project when expertise
// tracking is enabled.
func (p *Planner) planExpertise(add func(Artifact)) error {
	if !p.cfg.Enabled(config.FlagExpertiseTracking) {
		return nil
	}
	return p.planSubtree(profile.CategoryExpertise, defs.ExpertiseSubtree, defs.ExpertiseDest, add)
}

// planRouting maps routing templates into the project when smart routing is
// enabled.
func (p *Planner) planRouting(add func(Artifact)) error {
	if !p.cfg.Enabled(config.FlagSmartRouting) {
		return nil
	}
	return p.planSubtree(profile.CategoryRouting, defs.RoutingSubtree, defs.RoutingDest, add)
}

// planSubtree maps every file of a category 1:1 under destRoot.
func (p *Planner) planSubtree(cat profile.Category, subtree, destRoot string, add func(Artifact)) error {
	files, err := p.index.ListFiles(cat)
	if err != nil {
		return err
	}
	for _, f := range files {
		content, err := p.comp.Compile(f.Path, compiler.ModeEmbed)
		if err != nil {
			return fmt.Errorf("plan %s: %w", f.Path, err)
		}
		add(Artifact{
			Source:   f.Path,
			Category: f.Category,
			Dest:     path.Join(destRoot, strings.TrimPrefix(f.Path, subtree+"/")),
			Content:  content,
		})
	}
	return nil
}

// commandName extracts <name> from commands/<name>/... paths.
func commandName(rel string) string {
	parts := strings.Split(rel, "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return strings.TrimSuffix(path.Base(rel), path.Ext(rel))
}
