package dehydrate

import (
	"errors"
	"fmt"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/internal/intercept"
	"github.com/petasbytes/dehydrate/tooldef"
)

// ErrStreamingUnsupported is returned for any streaming entry point. The
// interception loop needs complete responses to classify and replay.
var ErrStreamingUnsupported = errors.New("dehydrate: streaming is not supported")

// DefaultMaxSearchRounds is the default bound on consecutive search-only
// rounds within one send.
const DefaultMaxSearchRounds = intercept.DefaultMaxSearchRounds

// Options configures a wrapped client. The zero value selects defaults.
type Options struct {
	// TopK is the number of results returned per search. Values <= 0
	// select index.DefaultTopK.
	TopK int

	// AlwaysAvailable names tools sent with every request and excluded
	// from the search index. Every name must refer to a provided tool.
	AlwaysAvailable []string

	// MaxSearchRounds bounds consecutive search-only rounds per send.
	// Zero selects DefaultMaxSearchRounds; negative values are rejected.
	MaxSearchRounds int
}

// core holds the provider-independent state shared by both wrappers.
type core struct {
	index      *index.Index
	always     []tooldef.Tool
	discovered *intercept.Discovered
	maxRounds  int
}

func newCore(tools []tooldef.Tool, opts Options) (*core, error) {
	if len(tools) == 0 {
		return nil, errors.New("dehydrate: no tools provided")
	}
	if opts.MaxSearchRounds < 0 {
		return nil, errors.New("dehydrate: MaxSearchRounds must not be negative")
	}
	for _, tool := range tools {
		if tool.Name == tooldef.SearchToolName {
			return nil, fmt.Errorf("dehydrate: tool name %q is reserved", tooldef.SearchToolName)
		}
	}

	searchable, always, err := splitTools(tools, opts.AlwaysAvailable)
	if err != nil {
		return nil, err
	}
	if len(searchable) == 0 {
		return nil, errors.New("dehydrate: no searchable tools provided (all tools are always available)")
	}

	idx, err := index.New(searchable, opts.TopK)
	if err != nil {
		return nil, err
	}

	return &core{
		index:      idx,
		always:     always,
		discovered: intercept.NewDiscovered(),
		maxRounds:  opts.MaxSearchRounds,
	}, nil
}

// splitTools partitions the corpus into searchable and always-available
// tools, preserving the caller's order in both halves.
func splitTools(tools []tooldef.Tool, alwaysNames []string) (searchable, always []tooldef.Tool, err error) {
	wanted := make(map[string]bool, len(alwaysNames))
	for _, name := range alwaysNames {
		wanted[name] = true
	}

	for _, tool := range tools {
		if wanted[tool.Name] {
			always = append(always, tool)
			delete(wanted, tool.Name)
		} else {
			searchable = append(searchable, tool)
		}
	}

	for name := range wanted {
		return nil, nil, fmt.Errorf("dehydrate: always-available tool %q not found", name)
	}
	return searchable, always, nil
}

// Discovered returns the names of tools surfaced via search so far,
// sorted ascending.
func (c *core) Discovered() []string {
	return c.discovered.Names()
}

// ResetDiscoveries clears the discovered set, typically between
// conversations sharing one wrapped client.
func (c *core) ResetDiscoveries() {
	c.discovered.Reset()
}

// RestoreDiscoveries re-adds previously discovered tool names, e.g. when
// resuming a persisted conversation. Names not in the index are ignored.
func (c *core) RestoreDiscoveries(names ...string) {
	for _, name := range names {
		if _, ok := c.index.Tool(name); ok {
			c.discovered.Add(name)
		}
	}
}

// Index exposes the relevance index, mainly for inspection and sizing.
func (c *core) Index() *index.Index {
	return c.index
}
