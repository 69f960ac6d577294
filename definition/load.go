package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes and validates a YAML definition.
func ParseYAML(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("definition: decode yaml: %w", err)
	}
	return checked(&d)
}

// ParseJSON decodes and validates a JSON definition.
func ParseJSON(data []byte) (*Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("definition: decode json: %w", err)
	}
	return checked(&d)
}

// Load reads a definition file, choosing the format by extension: .yaml,
// .yml, .json or .hcl.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("definition: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	case ".hcl":
		return ParseHCL(data, path)
	}
	return nil, fmt.Errorf("definition: unsupported file type %q", filepath.Ext(path))
}

func checked(d *Definition) (*Definition, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	return d, nil
}
