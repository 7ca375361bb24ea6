package index

import (
	"fmt"
	"sort"

	"github.com/petasbytes/dehydrate/tooldef"
)

// DefaultTopK is the result cap applied when no explicit value is given.
const DefaultTopK = 5

// Index is a relevance index over tool definitions. Construction fixes the
// corpus; all methods are read-only afterwards.
type Index struct {
	names  []string
	byName map[string]tooldef.Tool
	ranker *bm25l
	topK   int
}

// New builds an index over the given tools, in input order. topK <= 0
// selects DefaultTopK. Fails when tools is empty, a tool has no name, or
// two tools share a name.
func New(tools []tooldef.Tool, topK int) (*Index, error) {
	if len(tools) == 0 {
		return nil, fmt.Errorf("index: tools must not be empty")
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	idx := &Index{
		byName: make(map[string]tooldef.Tool, len(tools)),
		topK:   topK,
	}
	corpus := make([][]string, 0, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			return nil, fmt.Errorf("index: tool with empty name")
		}
		if _, dup := idx.byName[tool.Name]; dup {
			return nil, fmt.Errorf("index: duplicate tool name %q", tool.Name)
		}
		idx.byName[tool.Name] = tool
		idx.names = append(idx.names, tool.Name)
		corpus = append(corpus, tokenizeTool(tool))
	}
	idx.ranker = newBM25L(corpus)
	return idx, nil
}

// Search returns up to topK tool names ranked by relevance to the query.
// Only names with a strictly positive score are returned; exact score ties
// keep corpus insertion order. An empty query returns nil rather than
// matching everything.
func (idx *Index) Search(query string) []string {
	tokens := tokenizeQuery(query)
	if len(tokens) == 0 {
		return nil
	}

	scores := idx.ranker.scores(tokens)
	type hit struct {
		position int
		score    float64
	}
	var hits []hit
	for i, score := range scores {
		if score > 0 {
			hits = append(hits, hit{position: i, score: score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})
	if len(hits) > idx.topK {
		hits = hits[:idx.topK]
	}

	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = idx.names[h.position]
	}
	return names
}

// Tools returns definitions for the given names in request order. Unknown
// names are silently skipped; callers may pass stale or externally sourced
// names.
func (idx *Index) Tools(names []string) []tooldef.Tool {
	out := make([]tooldef.Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := idx.byName[name]; ok {
			out = append(out, tool)
		}
	}
	return out
}

// Tool returns a single definition by name.
func (idx *Index) Tool(name string) (tooldef.Tool, bool) {
	tool, ok := idx.byName[name]
	return tool, ok
}

// Names returns all indexed tool names in corpus order.
func (idx *Index) Names() []string {
	return append([]string(nil), idx.names...)
}
