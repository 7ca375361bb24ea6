package dehydrate

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/petasbytes/dehydrate/internal/intercept"
	"github.com/petasbytes/dehydrate/tooldef"
)

// OpenAIClient wraps a go-openai client with tool search. Method names
// mirror the inner client so call sites swap over without changes; any
// Tools set on the request are replaced by the managed tool list.
type OpenAIClient struct {
	*core
	inner *openai.Client
}

// NewOpenAIClient wraps inner over the given tool corpus.
func NewOpenAIClient(inner *openai.Client, tools []tooldef.Tool, opts Options) (*OpenAIClient, error) {
	c, err := newCore(tools, opts)
	if err != nil {
		return nil, err
	}
	return &OpenAIClient{core: c, inner: inner}, nil
}

// Inner returns the wrapped SDK client for calls that should bypass
// interception.
func (c *OpenAIClient) Inner() *openai.Client {
	return c.inner
}

// CreateChatCompletion sends req through the search-interception loop and
// returns the first response that is not a search-only round. Requests
// with Stream set are rejected.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if req.Stream {
		return openai.ChatCompletionResponse{}, ErrStreamingUnsupported
	}
	return intercept.Send[*openai.Client, openai.ChatCompletionRequest, openai.ChatCompletionResponse, openai.ChatCompletionMessage](
		ctx, c.inner, intercept.OpenAI{},
		c.index, c.always, c.discovered, c.maxRounds, req,
	)
}

// CreateChatCompletionStream always fails: interception needs complete
// responses.
func (c *OpenAIClient) CreateChatCompletionStream(ctx context.Context, req openai.ChatCompletionRequest) (*openai.ChatCompletionStream, error) {
	return nil, ErrStreamingUnsupported
}
