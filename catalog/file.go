package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petasbytes/dehydrate/tooldef"
)

type fileTool struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	InputSchema map[string]any `yaml:"input_schema"`
}

// LoadFile reads a YAML corpus: a list of tools with name, description,
// and an optional input_schema mapping. File-loaded tools have no local
// handler; they are meant for indexing and sizing, not execution.
func LoadFile(path string) ([]tooldef.Tool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []fileTool
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	tools := make([]tooldef.Tool, 0, len(raw))
	for i, ft := range raw {
		if ft.Name == "" {
			return nil, fmt.Errorf("catalog: %s: tool %d has no name", path, i)
		}
		tools = append(tools, tooldef.Tool{
			Name:        ft.Name,
			Description: ft.Description,
			InputSchema: ft.InputSchema,
		})
	}
	return tools, nil
}
