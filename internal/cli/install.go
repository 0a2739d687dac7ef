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

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install Agent OS scaffolding into the current project",
	Long: `Install compiles the selected profile's templates against the effective
configuration and writes the resulting artifacts into the project.

A fresh install never overwrites existing files. Once a project carries an
agent-os/config.yml record, use "agentos update" instead.

Examples:
  agentos install
  agentos install --profile rails --claude-code-commands true
  agentos install --dry-run`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	registerCommonFlags(installCmd)
}

// runInstall performs a fresh installation.
func runInstall(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	if _, exists, err := config.LoadRecord(rt.projectRoot); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("project already has an Agent OS installation (%s exists); run \"agentos update\"",
			config.RecordPath("."))
	}

	base, err := config.LoadBase(rt.baseConfigPath())
	if err != nil {
		return err
	}
	cli, err := cliLayer(cmd)
	if err != nil {
		return err
	}

	profileName := getStringFlag(cmd, "profile")
	if profileName == "" {
		profileName = defs.DefaultProfile
	}
	index, err := profile.NewIndex(rt.profiles, profileName)
	if err != nil {
		return err
	}

	return executePlan(cmd, runInputs{
		rt:        rt,
		index:     index,
		cfg:       config.Resolve(base, cli),
		mode:      installer.ModeFresh,
		dryRun:    getBoolFlag(cmd, "dry-run"),
		verbose:   getBoolFlag(cmd, "verbose"),
		assumeYes: getBoolFlag(cmd, "yes"),
		headless:  ui.NewHeadlessManager(),
	})
}
