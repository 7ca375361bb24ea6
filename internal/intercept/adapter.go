package intercept

import (
	"context"
	"fmt"
	"strings"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/tooldef"
)

// Adapter normalizes one provider's tool-calling wire shape. The type
// parameters pin a provider's client, request, response, and tool-result
// entry types; no component outside the adapter inspects wire shapes.
type Adapter[Client, Request, Response, Result any] interface {
	// BuildTools returns the request with the outbound tool list
	// installed: the search descriptor first, then always-available
	// tools, then discovered tools sorted by name.
	BuildTools(req Request, idx *index.Index, alwaysAvailable []tooldef.Tool, discovered *Discovered) Request

	// Call performs one provider call. Errors pass through untouched.
	Call(ctx context.Context, client Client, req Request) (Response, error)

	// HasSearchCall reports whether the response invokes the search tool.
	HasSearchCall(resp Response) bool

	// HasNonSearchToolCall reports whether the response invokes any tool
	// other than the search tool.
	HasNonSearchToolCall(resp Response) bool

	// ProcessSearchCalls runs the index search for every search
	// invocation in the response, grows the discovered set in place, and
	// returns one result entry per invocation, tagged with that
	// invocation's id.
	ProcessSearchCalls(resp Response, idx *index.Index, discovered *Discovered) []Result

	// AppendSearchRound extends the request transcript with one assistant
	// turn reconstructed verbatim from the response and one turn carrying
	// the search results.
	AppendSearchRound(req Request, resp Response, results []Result) Request
}

// outboundTools assembles the definitions every adapter converts to its
// wire shape. The order is an observable contract: descriptor,
// always-available, then discovered ascending by name.
func outboundTools(idx *index.Index, alwaysAvailable []tooldef.Tool, discovered *Discovered) []tooldef.Tool {
	defs := make([]tooldef.Tool, 0, 1+len(alwaysAvailable)+discovered.Len())
	defs = append(defs, tooldef.SearchTool)
	defs = append(defs, alwaysAvailable...)
	defs = append(defs, idx.Tools(discovered.Names())...)
	return defs
}

// runSearch executes one search query against the index, grows the
// discovered set, and returns the model-readable result text.
func runSearch(query string, idx *index.Index, discovered *Discovered) string {
	names := idx.Search(query)
	discovered.Add(names...)
	return formatSearchResult(idx.Tools(names))
}

func formatSearchResult(matched []tooldef.Tool) string {
	if len(matched) == 0 {
		return "No matching tools found. Try a different search query."
	}
	var sb strings.Builder
	sb.WriteString("Found the following tools:\n\n")
	for _, tool := range matched {
		fmt.Fprintf(&sb, "- **%s**: %s\n", tool.Name, tool.Description)
	}
	sb.WriteString("\nThese tools are now available for you to use.")
	return sb.String()
}
