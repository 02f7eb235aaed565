/*
Package overrides persists the friendly-name override map an operator
edits to rename states in rendered diagrams.

The file format is a flat id → name mapping, JSON or YAML by extension.
Template seeds a new file with every discovered state id mapped to
itself, so the operator authors names against real ids.
*/
package overrides

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/studiomap/pkg/domain"
)

// Template returns the id-keyed seed map for a graph's states.
func Template(g *domain.Graph) map[string]string {
	out := make(map[string]string, g.Len())
	for _, s := range g.States() {
		out[s.ID] = s.ID
	}
	return out
}

// Load reads an override map from path. An empty path is a valid identity
// input and yields an empty map.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read override file: %w", err)
	}

	m := map[string]string{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse override file %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse override file %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported override file extension %q (use .json, .yaml or .yml)", ext)
	}
	return m, nil
}

// Save writes an override map to path, format chosen by extension.
func Save(path string, m map[string]string) error {
	var data []byte
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(m, "", "    ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(m)
	default:
		return fmt.Errorf("unsupported override file extension %q (use .json, .yaml or .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("encode override file: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write override file: %w", err)
	}
	return nil
}
