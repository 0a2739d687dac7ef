package cli

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/agentos-dev/agentos/internal/config"
)

func newFlagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	registerCommonFlags(cmd)
	registerOverwriteFlags(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	return cmd
}

func TestFeatureFlagName(t *testing.T) {
	if got := featureFlagName(config.FlagClaudeCodeCommands); got != "claude-code-commands" {
		t.Errorf("featureFlagName = %q", got)
	}
	if got := featureFlagName(config.FlagSmartRouting); got != "smart-routing" {
		t.Errorf("featureFlagName = %q", got)
	}
}

func TestCLILayer(t *testing.T) {
	t.Run("only_changed_flags_enter_the_layer", func(t *testing.T) {
		cmd := newFlagCommand(t, "--smart-routing=true", "--session-management=false")

		layer, err := cliLayer(cmd)
		if err != nil {
			t.Fatalf("cliLayer error: %v", err)
		}
		if len(layer) != 2 {
			t.Errorf("layer has %d entries, want 2", len(layer))
		}
		if layer[config.FlagSmartRouting] != config.True {
			t.Error("smart_routing not set true")
		}
		if layer[config.FlagSessionManagement] != config.False {
			t.Error("session_management not set false")
		}
		if _, ok := layer[config.FlagClaudeCodeCommands]; ok {
			t.Error("untouched flag leaked into the CLI layer")
		}
	})

	t.Run("no_flags_yields_empty_layer", func(t *testing.T) {
		cmd := newFlagCommand(t)

		layer, err := cliLayer(cmd)
		if err != nil {
			t.Fatalf("cliLayer error: %v", err)
		}
		if len(layer) != 0 {
			t.Errorf("layer = %v, want empty", layer)
		}
	})

	t.Run("non_boolean_literal_rejected", func(t *testing.T) {
		cmd := newFlagCommand(t, "--smart-routing=yes")

		_, err := cliLayer(cmd)
		if !errors.Is(err, config.ErrInvalidBoolLiteral) {
			t.Fatalf("error = %v, want ErrInvalidBoolLiteral", err)
		}
	})
}

func TestOverwritePolicyFromFlags(t *testing.T) {
	cmd := newFlagCommand(t, "--overwrite-standards", "--overwrite-agents")

	policy := overwritePolicy(cmd)
	if policy.All || !policy.Standards || policy.Commands || !policy.Agents {
		t.Errorf("policy = %+v", policy)
	}
}
