package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/internal/compiler"
	"github.com/agentos-dev/agentos/internal/config"
	"github.com/agentos-dev/agentos/internal/defs"
	"github.com/agentos-dev/agentos/internal/profile"
	"github.com/agentos-dev/agentos/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <profile-relative-path>",
	Short: "Compile one template and render it to the terminal",
	Long: `Preview compiles a single profile file with the effective configuration
and renders the result as markdown, without writing anything to disk.

Examples:
  agentos preview commands/plan-product/multi-agent/plan-product.md
  agentos preview standards/global/conventions.md --raw
  agentos preview workflows/planning/phase-1.md --profile rails`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("profile", "", "Profile to resolve the file in")
	previewCmd.Flags().Bool("raw", false, "Print compiled text without markdown rendering")
	previewCmd.Flags().Bool("no-embed", false, "Leave include references unresolved")
	registerFeatureFlags(previewCmd)
}

// runPreview compiles and renders one template.
func runPreview(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}

	base, err := config.LoadBase(rt.baseConfigPath())
	if err != nil {
		return err
	}
	record, installed, err := config.LoadRecord(rt.projectRoot)
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

	mode := compiler.ModeEmbed
	if getBoolFlag(cmd, "no-embed") {
		mode = compiler.ModeReference
	}

	compiled, err := compiler.New(index, config.Resolve(layers...)).Compile(args[0], mode)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if getBoolFlag(cmd, "raw") || ui.NewHeadlessManager().IsHeadless() {
		_, _ = fmt.Fprint(out, compiled)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	rendered, err := renderer.Render(compiled)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
