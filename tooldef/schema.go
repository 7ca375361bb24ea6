package tooldef

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema derives a JSON Schema tree from a Go struct type.
// Field descriptions come from jsonschema_description tags; fields without
// omitempty are marked required.
func GenerateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	// Round-trip through JSON to get the plain tree every other component
	// (tokenizer, adapters) operates on.
	b, err := json.Marshal(schema)
	if err != nil {
		panic("tooldef: reflect schema: " + err.Error())
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic("tooldef: decode schema: " + err.Error())
	}
	delete(m, "$schema")
	delete(m, "$id")
	return m
}
