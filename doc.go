// Package dehydrate wraps provider SDK clients so that large tool
// corpora are discovered on demand instead of sent with every request.
//
// A wrapped client keeps the full corpus in a local relevance index and
// exposes only a single search tool to the model, plus any tools marked
// always-available. When the model calls the search tool, matching tools
// are added to the conversation's discovered set and offered on the next
// round; the loop is invisible to the caller, who sees one request and
// one final response.
//
// Wrappers exist for the Anthropic Messages API and for OpenAI-style
// chat completions. Streaming is not supported.
package dehydrate
