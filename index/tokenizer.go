package index

import (
	"regexp"
	"strings"

	"github.com/petasbytes/dehydrate/tooldef"
)

var (
	identifierSeparators = regexp.MustCompile(`[_\-]+`)
	camelBoundary        = regexp.MustCompile(`([a-z])([A-Z])`)
	nonAlphanumeric      = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// tokenizeTool extracts searchable tokens from a tool definition: the name
// (identifier split), the description (free text), and the input schema
// (property names, property descriptions, string enum values, recursing
// into nested objects and object-typed array items). Duplicates are kept;
// term frequency matters for ranking.
func tokenizeTool(tool tooldef.Tool) []string {
	tokens := splitIdentifier(tool.Name)
	tokens = append(tokens, tokenizeText(tool.Description)...)
	return walkSchema(tool.Schema(), tokens)
}

// tokenizeQuery tokenizes a free-text search query.
func tokenizeQuery(query string) []string {
	return tokenizeText(query)
}

// splitIdentifier splits a snake_case or camelCase identifier into
// lowercase tokens, so get_weather_forecast and getWeatherForecast
// produce the same terms.
func splitIdentifier(name string) []string {
	var tokens []string
	for _, part := range identifierSeparators.Split(name, -1) {
		sub := camelBoundary.ReplaceAllString(part, "$1 $2")
		for _, word := range strings.Fields(sub) {
			tokens = append(tokens, strings.ToLower(word))
		}
	}
	return tokens
}

// tokenizeText lowercases and splits on runs of non-alphanumeric
// characters; no stopword removal, no stemming.
func tokenizeText(text string) []string {
	var tokens []string
	for _, word := range nonAlphanumeric.Split(strings.ToLower(text), -1) {
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func walkSchema(schema map[string]any, tokens []string) []string {
	properties, _ := schema["properties"].(map[string]any)
	for propName, raw := range properties {
		tokens = append(tokens, splitIdentifier(propName)...)
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if desc, ok := prop["description"].(string); ok {
			tokens = append(tokens, tokenizeText(desc)...)
		}
		if enum, ok := prop["enum"].([]any); ok {
			for _, value := range enum {
				// Non-string enum values carry no searchable text.
				if s, ok := value.(string); ok {
					tokens = append(tokens, tokenizeText(s)...)
				}
			}
		}
		if prop["type"] == "object" {
			tokens = walkSchema(prop, tokens)
		}
		if items, ok := prop["items"].(map[string]any); ok && items["type"] == "object" {
			tokens = walkSchema(items, tokens)
		}
	}
	return tokens
}
