package dehydrate

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/dehydrate/internal/intercept"
	"github.com/petasbytes/dehydrate/tooldef"
)

// Client wraps an Anthropic SDK client with tool search. Callers use
// Messages.New exactly as they would on the inner client; any Tools set
// on the request are replaced by the managed tool list.
type Client struct {
	*core
	inner *anthropic.Client

	// Messages mirrors the inner client's service surface.
	Messages MessagesService
}

// NewClient wraps inner over the given tool corpus.
func NewClient(inner *anthropic.Client, tools []tooldef.Tool, opts Options) (*Client, error) {
	c, err := newCore(tools, opts)
	if err != nil {
		return nil, err
	}
	client := &Client{core: c, inner: inner}
	client.Messages = MessagesService{client: client}
	return client, nil
}

// Inner returns the wrapped SDK client for calls that should bypass
// interception.
func (c *Client) Inner() *anthropic.Client {
	return c.inner
}

// MessagesService intercepts Messages API calls.
type MessagesService struct {
	client *Client
}

// New sends params through the search-interception loop and returns the
// first response that is not a search-only round.
func (s MessagesService) New(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	c := s.client
	return intercept.Send[*anthropic.Client, anthropic.MessageNewParams, *anthropic.Message, anthropic.ContentBlockParamUnion](
		ctx, c.inner, intercept.Anthropic{},
		c.index, c.always, c.discovered, c.maxRounds, params,
	)
}

// NewStreaming always fails: interception needs complete responses.
func (s MessagesService) NewStreaming(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return nil, ErrStreamingUnsupported
}
