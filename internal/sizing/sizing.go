// Package sizing estimates the request-size cost of tool definitions.
//
// The estimator is deterministic and local: roughly four runes per token
// plus a fixed per-tool overhead for wire framing. It exists to report
// how much a dehydrated request saves over shipping the full corpus, not
// to reproduce any provider's tokenizer.
package sizing

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/petasbytes/dehydrate/tooldef"
)

// Fixed estimator constants; changing these requires updating the guard test.
const (
	runesPerToken = 4
	toolOverhead  = 8
)

// Estimate summarizes the token cost of a corpus against the cost of the
// search descriptor that replaces it on the wire.
type Estimate struct {
	Tools        int // tools in the corpus
	CorpusTokens int // estimated cost of sending every definition
	SearchTokens int // estimated cost of the search descriptor alone
}

// Savings reports the fraction of corpus tokens avoided per request
// before any discovery, in [0, 1).
func (e Estimate) Savings() float64 {
	if e.CorpusTokens == 0 {
		return 0
	}
	saved := e.CorpusTokens - e.SearchTokens
	if saved < 0 {
		return 0
	}
	return float64(saved) / float64(e.CorpusTokens)
}

// EstimateTools measures the given corpus.
func EstimateTools(tools []tooldef.Tool) Estimate {
	e := Estimate{
		Tools:        len(tools),
		SearchTokens: CountTool(tooldef.SearchTool),
	}
	for _, tool := range tools {
		e.CorpusTokens += CountTool(tool)
	}
	return e
}

// CountTool estimates the token cost of one tool definition as it would
// appear on the wire.
func CountTool(tool tooldef.Tool) int {
	b, err := json.Marshal(tool)
	if err != nil {
		// Marshal of Tool only fails on unserializable schema values;
		// fall back to the text fields.
		b = []byte(tool.Name + tool.Description)
	}
	runes := utf8.RuneCount(b)
	return (runes+runesPerToken-1)/runesPerToken + toolOverhead
}
