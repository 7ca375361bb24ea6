package intercept

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tidwall/gjson"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/tooldef"
)

// Anthropic adapts the Messages API wire shape: tool calls are typed
// blocks inside a single ordered content list.
type Anthropic struct{}

func (Anthropic) BuildTools(req anthropic.MessageNewParams, idx *index.Index, alwaysAvailable []tooldef.Tool, discovered *Discovered) anthropic.MessageNewParams {
	defs := outboundTools(idx, alwaysAvailable, discovered)
	tools := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, def := range defs {
		schema := def.Schema()
		var properties any
		if props, ok := schema["properties"]; ok {
			properties = props
		}
		tools = append(tools, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        def.Name,
			Description: anthropic.String(def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: properties,
				Required:   requiredFields(schema),
			},
		}})
	}
	req.Tools = tools
	return req
}

// requiredFields extracts the schema's required-property list, which the
// generic tree carries either as []string (hand-built schemas) or []any
// (JSON-decoded ones).
func requiredFields(schema map[string]any) []string {
	switch vals := schema["required"].(type) {
	case []string:
		return vals
	case []any:
		var out []string
		for _, v := range vals {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func (Anthropic) Call(ctx context.Context, client *anthropic.Client, req anthropic.MessageNewParams) (*anthropic.Message, error) {
	return client.Messages.New(ctx, req)
}

func (Anthropic) HasSearchCall(resp *anthropic.Message) bool {
	for _, block := range resp.Content {
		if use, ok := block.AsAny().(anthropic.ToolUseBlock); ok && use.Name == tooldef.SearchToolName {
			return true
		}
	}
	return false
}

func (Anthropic) HasNonSearchToolCall(resp *anthropic.Message) bool {
	for _, block := range resp.Content {
		if use, ok := block.AsAny().(anthropic.ToolUseBlock); ok && use.Name != tooldef.SearchToolName {
			return true
		}
	}
	return false
}

func (Anthropic) ProcessSearchCalls(resp *anthropic.Message, idx *index.Index, discovered *Discovered) []anthropic.ContentBlockParamUnion {
	var results []anthropic.ContentBlockParamUnion
	for _, block := range resp.Content {
		use, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok || use.Name != tooldef.SearchToolName {
			continue
		}
		query := gjson.Get(use.JSON.Input.Raw(), "query").String()
		content := runSearch(query, idx, discovered)
		results = append(results, anthropic.NewToolResultBlock(use.ID, content, false))
	}
	return results
}

func (Anthropic) AppendSearchRound(req anthropic.MessageNewParams, resp *anthropic.Message, results []anthropic.ContentBlockParamUnion) anthropic.MessageNewParams {
	// ToParam reconstructs the assistant turn verbatim, including thinking
	// and redacted_thinking blocks.
	messages := append([]anthropic.MessageParam(nil), req.Messages...)
	messages = append(messages, resp.ToParam(), anthropic.NewUserMessage(results...))
	req.Messages = messages
	return req
}
