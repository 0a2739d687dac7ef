package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/agentos-dev/agentos/internal/defs"
)

// Record is the persisted project configuration written after a successful
// install or update. Its presence marks the project as installed; its flags
// feed back into resolution on later runs so the operator does not have to
// re-specify every choice.
type Record struct {
	Version string          `yaml:"version"`
	Profile string          `yaml:"profile"`
	Flags   map[string]bool `yaml:"flags"`
}

// RecordPath returns the path of the project record under the given root.
func RecordPath(projectRoot string) string {
	return filepath.Join(projectRoot, defs.AgentOSDir, defs.ProjectConfigYML)
}

// LoadRecord reads the project record. The second return value reports
// whether a record exists; a missing record is not an error.
func LoadRecord(projectRoot string) (*Record, bool, error) {
	data, err := readConfigFile(RecordPath(projectRoot))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("config: parse project record: %w", err)
	}
	return &rec, true, nil
}

// SaveRecord writes the project record, creating the agent-os directory if
// needed. The flags map is written as stable YAML so repeated runs with
// identical inputs produce identical files.
func SaveRecord(projectRoot string, rec *Record) error {
	path := RecordPath(projectRoot)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create record directory: %w", err)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("config: marshal project record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write project record: %w", err)
	}
	return nil
}

// Layer converts the record's stored flags into a configuration layer.
func (r *Record) Layer() Layer {
	layer := Layer{}
	for name, value := range r.Flags {
		if !IsKnownFlag(name) {
			continue
		}
		layer.Set(name, value)
	}
	return layer
}
