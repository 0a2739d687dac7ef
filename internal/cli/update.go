package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/defs"
	"github.com/agentos-dev/agentos/internal/installer"
	"github.com/agentos-dev/agentos/internal/profile"
	"github.com/agentos-dev/agentos/internal/ui"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Sync installed Agent OS scaffolding with the profile",
	Long: `Update re-compiles the profile templates and reconciles them against the
installed project tree. Files you have customized are skipped (with a
notice) unless a matching --overwrite flag authorizes replacing them.

--re-install moves the installed trees into a timestamped backup and
performs a clean install from scratch. It asks for confirmation first.

Examples:
  agentos update
  agentos update --overwrite-standards
  agentos update --re-install --yes`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	registerCommonFlags(updateCmd)
	registerOverwriteFlags(updateCmd)
	updateCmd.Flags().Bool("re-install", false, "Back up the installed trees and install from a clean state")
}

// runUpdate reconciles the project against the profile in update mode, or
// performs a destructive re-install when requested.
func runUpdate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	rt, err := newRuntime()
	if err != nil {
		return err
	}

	record, installed, err := config.LoadRecord(rt.projectRoot)
	if err != nil {
		return err
	}
	reinstall := getBoolFlag(cmd, "re-install")
	if !installed && !reinstall {
		return fmt.Errorf("no Agent OS installation found (%s missing); run \"agentos install\"",
			config.RecordPath("."))
	}

	// Layering: base, then the project's persisted record, then CLI.
	base, err := config.LoadBase(rt.baseConfigPath())
	if err != nil {
		return err
	}
	layers := []config.Layer{base}
	if installed {
		layers = append(layers, record.Layer())
	}
	cli, err := cliLayer(cmd)
	if err != nil {
		return err
	}
	layers = append(layers, cli)

	profileName := getStringFlag(cmd, "profile")
	if profileName == "" && installed {
		profileName = record.Profile
	}
	if profileName == "" {
		profileName = defs.DefaultProfile
	}
	index, err := profile.NewIndex(rt.profiles, profileName)
	if err != nil {
		return err
	}

	headless := ui.NewHeadlessManager()
	assumeYes := getBoolFlag(cmd, "yes")
	mode := installer.ModeUpdate

	if reinstall {
		confirmer := ui.NewConfirmer(headless, assumeYes)
		proceed, err := confirmer.Confirm(
			"Re-install Agent OS?",
			"The installed agent-os, .claude/commands/agent-os, .claude/agents/agent-os and .claude/skills/agent-os trees will be moved into a backup directory, then reinstalled from scratch.",
		)
		if err != nil {
			return err
		}
		if !proceed {
			_, _ = fmt.Fprintln(out, "Re-install cancelled.")
			return nil
		}

		if !getBoolFlag(cmd, "dry-run") {
			backupDir, err := installer.BackupInstalledTrees(rt.projectRoot)
			if err != nil {
				return err
			}
			if backupDir != "" {
				_, _ = fmt.Fprintf(out, "Previous installation backed up to %s\n", backupDir)
			}
		}
		mode = installer.ModeFresh
	}

	return executePlan(cmd, runInputs{
		rt:        rt,
		index:     index,
		cfg:       config.Resolve(layers...),
		mode:      mode,
		policy:    overwritePolicy(cmd),
		dryRun:    getBoolFlag(cmd, "dry-run"),
		verbose:   getBoolFlag(cmd, "verbose"),
		assumeYes: assumeYes,
		headless:  headless,
	})
}
