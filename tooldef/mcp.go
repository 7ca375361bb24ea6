package tooldef

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FromMCP converts MCP SDK tool definitions into Tools. The input schema is
// round-tripped through JSON into the generic tree used by the index.
func FromMCP(tools []*mcp.Tool) ([]Tool, error) {
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		var schema map[string]any
		if t.InputSchema != nil {
			b, err := json.Marshal(t.InputSchema)
			if err != nil {
				return nil, fmt.Errorf("marshal schema for %q: %w", t.Name, err)
			}
			if err := json.Unmarshal(b, &schema); err != nil {
				return nil, fmt.Errorf("decode schema for %q: %w", t.Name, err)
			}
		}
		out = append(out, Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: schema,
		})
	}
	return out, nil
}
