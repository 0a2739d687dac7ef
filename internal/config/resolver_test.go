package config

import (
	"errors"
	"testing"
)

func TestResolvePrecedence(t *testing.T) {
	t.Run("unset_flags_fall_back_to_false", func(t *testing.T) {
		eff := Resolve()
		for _, name := range FlagNames() {
			if eff.Enabled(name) {
				t.Errorf("flag %q = true, want false with no layers", name)
			}
		}
	})

	t.Run("later_layers_override_earlier", func(t *testing.T) {
		base := Layer{}
		base.Set(FlagSessionManagement, true)
		base.Set(FlagSmartRouting, true)

		project := Layer{}
		project.Set(FlagSmartRouting, false)

		cli := Layer{}
		cli.Set(FlagProgressTracking, true)

		eff := Resolve(base, project, cli)

		if !eff.Enabled(FlagSessionManagement) {
			t.Error("base-layer flag lost during merge")
		}
		if eff.Enabled(FlagSmartRouting) {
			t.Error("project layer should override base to false")
		}
		if !eff.Enabled(FlagProgressTracking) {
			t.Error("cli layer flag not applied")
		}
	})

	t.Run("unset_does_not_override", func(t *testing.T) {
		base := Layer{}
		base.Set(FlagAgentOSCommands, true)

		// The CLI layer mentions nothing; base value must survive.
		eff := Resolve(base, Layer{})
		if !eff.Enabled(FlagAgentOSCommands) {
			t.Error("unset layer erased lower-precedence value")
		}
	})
}

func TestResolveDependencyDowngrade(t *testing.T) {
	t.Run("skills_without_commands_downgrades", func(t *testing.T) {
		layer := Layer{}
		layer.Set(FlagStandardsAsSkills, true)
		layer.Set(FlagClaudeCodeCommands, false)

		eff := Resolve(layer)

		if eff.Enabled(FlagStandardsAsSkills) {
			t.Error("standards_as_claude_code_skills should downgrade to false")
		}
		if len(eff.Notes()) != 1 {
			t.Fatalf("Notes() = %d entries, want 1 downgrade note", len(eff.Notes()))
		}
	})

	t.Run("skills_with_commands_kept", func(t *testing.T) {
		layer := Layer{}
		layer.Set(FlagStandardsAsSkills, true)
		layer.Set(FlagClaudeCodeCommands, true)

		eff := Resolve(layer)

		if !eff.Enabled(FlagStandardsAsSkills) {
			t.Error("flag downgraded although its dependency is enabled")
		}
		if len(eff.Notes()) != 0 {
			t.Errorf("unexpected notes: %v", eff.Notes())
		}
	})
}

func TestResolveIsDeterministic(t *testing.T) {
	layer := Layer{}
	layer.Set(FlagClaudeCodeCommands, true)
	layer.Set(FlagUseClaudeCodeSubagents, true)

	a := Resolve(layer).Map()
	b := Resolve(layer).Map()

	if len(a) != len(b) {
		t.Fatalf("map sizes differ: %d vs %d", len(a), len(b))
	}
	for name, val := range a {
		if b[name] != val {
			t.Errorf("flag %q differs across identical resolutions", name)
		}
	}
}

func TestParseBool(t *testing.T) {
	cases := []struct {
		literal string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"TRUE", true, false},
		{"False", false, false},
		{" false ", false, false},
		{"yes", false, true},
		{"1", false, true},
		{"", false, true},
	}

	for _, tc := range cases {
		t.Run("literal_"+tc.literal, func(t *testing.T) {
			got, err := ParseBool(FlagSmartRouting, tc.literal)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseBool(%q) succeeded, want error", tc.literal)
				}
				if !errors.Is(err, ErrInvalidBoolLiteral) {
					t.Errorf("error = %v, want ErrInvalidBoolLiteral", err)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if verr.Flag != FlagSmartRouting {
					t.Errorf("ValidationError.Flag = %q, want %q", verr.Flag, FlagSmartRouting)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc.literal, err)
			}
			if got != tc.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tc.literal, got, tc.want)
			}
		})
	}
}
