// Package cli wires the agentos command tree. Commands are thin: they read
// flags and the environment once, construct an explicit runtime
// configuration, and hand off to the core packages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "agentos",
	Short: "Agent OS: install and update agent scaffolding in a project",
	Long: `Agent OS compiles profile templates (commands, agents, standards)
and installs them into a project, keeping the scaffold in sync across
repeated runs without destroying user edits.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are rendered here so every
// command shares one error format.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, cliError.Render("Error:"), err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("agentos %s\n", version.GetVersion()))
}
