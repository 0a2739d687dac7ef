package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxConfigSize is the maximum allowed size for a config YAML file.
const maxConfigSize = 1 * 1024 * 1024 // 1MB

// LoadBase reads the base configuration file: a flat YAML mapping of flag
// name to boolean literal. A missing file is not an error and yields an
// empty layer; every flag stays unset.
func LoadBase(path string) (Layer, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if data == nil {
		slog.Warn("base config not found, using built-in defaults", "path", path)
		return Layer{}, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse base config %q: %w", path, err)
	}
	return layerFromRaw(raw)
}

// layerFromRaw converts a decoded YAML mapping into a Layer. Boolean values
// pass through; string values must be boolean literals. Unknown flag names
// are skipped with a warning so older configs survive flag removals.
func layerFromRaw(raw map[string]any) (Layer, error) {
	layer := Layer{}
	for name, value := range raw {
		if !IsKnownFlag(name) {
			slog.Warn("ignoring unrecognized config flag", "flag", name)
			continue
		}
		switch v := value.(type) {
		case bool:
			layer.Set(name, v)
		case string:
			parsed, err := ParseBool(name, v)
			if err != nil {
				return nil, err
			}
			layer.Set(name, parsed)
		default:
			return nil, &ValidationError{
				Flag:    name,
				Value:   value,
				Message: "must be a boolean literal",
				Wrapped: ErrInvalidBoolLiteral,
			}
		}
	}
	return layer, nil
}

// readConfigFile reads a config file with a size cap. It returns (nil, nil)
// when the file does not exist.
func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(filepath.Clean(path))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: stat %q: %w", path, err)
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config: %q exceeds maximum size of %d bytes", path, maxConfigSize)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return data, nil
}
