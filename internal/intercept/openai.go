package intercept

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/tooldef"
)

// OpenAI adapts the chat-completions wire shape: an optional text body
// plus a separate list of structured tool calls, with JSON-encoded string
// arguments.
type OpenAI struct{}

func (OpenAI) BuildTools(req openai.ChatCompletionRequest, idx *index.Index, alwaysAvailable []tooldef.Tool, discovered *Discovered) openai.ChatCompletionRequest {
	defs := outboundTools(idx, alwaysAvailable, discovered)
	tools := make([]openai.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Schema(),
			},
		})
	}
	req.Tools = tools
	return req
}

func (OpenAI) Call(ctx context.Context, client *openai.Client, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return client.CreateChatCompletion(ctx, req)
}

func (OpenAI) HasSearchCall(resp openai.ChatCompletionResponse) bool {
	for _, call := range responseToolCalls(resp) {
		if call.Function.Name == tooldef.SearchToolName {
			return true
		}
	}
	return false
}

func (OpenAI) HasNonSearchToolCall(resp openai.ChatCompletionResponse) bool {
	for _, call := range responseToolCalls(resp) {
		if call.Function.Name != tooldef.SearchToolName {
			return true
		}
	}
	return false
}

func (OpenAI) ProcessSearchCalls(resp openai.ChatCompletionResponse, idx *index.Index, discovered *Discovered) []openai.ChatCompletionMessage {
	var results []openai.ChatCompletionMessage
	for _, call := range responseToolCalls(resp) {
		if call.Function.Name != tooldef.SearchToolName {
			continue
		}
		query := gjson.Get(call.Function.Arguments, "query").String()
		content := runSearch(query, idx, discovered)
		results = append(results, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    content,
			ToolCallID: call.ID,
		})
	}
	return results
}

func (OpenAI) AppendSearchRound(req openai.ChatCompletionRequest, resp openai.ChatCompletionResponse, results []openai.ChatCompletionMessage) openai.ChatCompletionRequest {
	assistant := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant}
	if len(resp.Choices) > 0 {
		assistant.Content = resp.Choices[0].Message.Content
		assistant.ToolCalls = resp.Choices[0].Message.ToolCalls
	}
	messages := append([]openai.ChatCompletionMessage(nil), req.Messages...)
	messages = append(messages, assistant)
	messages = append(messages, results...)
	req.Messages = messages
	return req
}

func responseToolCalls(resp openai.ChatCompletionResponse) []openai.ToolCall {
	if len(resp.Choices) == 0 {
		return nil
	}
	return resp.Choices[0].Message.ToolCalls
}
