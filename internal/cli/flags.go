package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/installer"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// featureFlagName converts a config flag name to its CLI spelling.
func featureFlagName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// registerFeatureFlags adds one string-valued flag per recognized feature
// flag. Values are parsed strictly as boolean literals so a typo like
// --smart-routing=yes fails with a validation error instead of being
// coerced.
func registerFeatureFlags(cmd *cobra.Command) {
	for _, name := range config.FlagNames() {
		cmd.Flags().String(featureFlagName(name), "", "Feature toggle: true or false")
	}
}

// registerCommonFlags adds the flags shared by install and update.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("profile", "", "Profile to install from (default: last used, then \"default\")")
	cmd.Flags().Bool("dry-run", false, "Report planned actions without writing files")
	cmd.Flags().Bool("verbose", false, "List every planned artifact")
	cmd.Flags().Bool("yes", false, "Auto-confirm all prompts (CI mode)")
	registerFeatureFlags(cmd)
}

// cliLayer builds the highest-precedence configuration layer from feature
// flags the operator explicitly set on the command line.
func cliLayer(cmd *cobra.Command) (config.Layer, error) {
	layer := config.Layer{}
	for _, name := range config.FlagNames() {
		flag := featureFlagName(name)
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, err := config.ParseBool(name, getStringFlag(cmd, flag))
		if err != nil {
			return nil, err
		}
		layer.Set(name, value)
	}
	return layer, nil
}

// registerOverwriteFlags adds the update-only overwrite policy flags.
func registerOverwriteFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("overwrite-all", false, "Overwrite every installed artifact")
	cmd.Flags().Bool("overwrite-standards", false, "Overwrite installed standards files")
	cmd.Flags().Bool("overwrite-commands", false, "Overwrite installed command files")
	cmd.Flags().Bool("overwrite-agents", false, "Overwrite installed agent files")
}

// overwritePolicy builds the OverwritePolicy from flags.
func overwritePolicy(cmd *cobra.Command) installer.OverwritePolicy {
	return installer.OverwritePolicy{
		All:       getBoolFlag(cmd, "overwrite-all"),
		Standards: getBoolFlag(cmd, "overwrite-standards"),
		Commands:  getBoolFlag(cmd, "overwrite-commands"),
		Agents:    getBoolFlag(cmd, "overwrite-agents"),
	}
}
