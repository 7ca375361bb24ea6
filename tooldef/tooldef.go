package tooldef

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Tool is a single tool definition. Name is the identity used throughout
// the index and the discovered set; InputSchema is a JSON-Schema-like tree
// kept generic so it can be tokenized and reshaped per provider.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Schema returns the input schema, or an empty tree when absent, so
// callers never need a nil check before walking it.
func (t Tool) Schema() map[string]any {
	if t.InputSchema == nil {
		return map[string]any{}
	}
	return t.InputSchema
}

// UnmarshalJSON accepts both schema key conventions: inputSchema (MCP
// camelCase) and input_schema (Anthropic snake_case). When both are
// present, inputSchema wins.
func (t *Tool) UnmarshalJSON(data []byte) error {
	t.Name = gjson.GetBytes(data, "name").String()
	t.Description = gjson.GetBytes(data, "description").String()
	t.InputSchema = nil

	schema := gjson.GetBytes(data, "inputSchema")
	if !schema.Exists() {
		schema = gjson.GetBytes(data, "input_schema")
	}
	if schema.IsObject() {
		if m, ok := schema.Value().(map[string]any); ok {
			t.InputSchema = m
		}
	}
	return nil
}

// MarshalJSON emits the Anthropic snake_case convention.
func (t Tool) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string         `json:"name"`
		Description string         `json:"description,omitempty"`
		InputSchema map[string]any `json:"input_schema,omitempty"`
	}{t.Name, t.Description, t.InputSchema})
}
