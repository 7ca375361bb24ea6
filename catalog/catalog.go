package catalog

import (
	"encoding/json"

	"github.com/petasbytes/dehydrate/tooldef"
)

// Tool pairs a wire definition with a local handler.
type Tool struct {
	Def     tooldef.Tool
	Handler func(input json.RawMessage) (string, error)
}

// Registry returns the built-in demo tools.
func Registry() []Tool {
	return []Tool{
		GetWeather,
		GetTime,
		SendEmail,
		CreateCalendarEvent,
		SearchContacts,
		ListFiles,
	}
}

// Defs extracts the wire definitions, preserving order.
func Defs(tools []Tool) []tooldef.Tool {
	defs := make([]tooldef.Tool, 0, len(tools))
	for _, tool := range tools {
		defs = append(defs, tool.Def)
	}
	return defs
}

// Find returns the tool with the given name, if present.
func Find(tools []Tool, name string) (Tool, bool) {
	for _, tool := range tools {
		if tool.Def.Name == name {
			return tool, true
		}
	}
	return Tool{}, false
}
