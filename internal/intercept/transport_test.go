package intercept

import (
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/tooldef"
)

// fakeTransport serves canned JSON bodies in order and captures every
// request body so tests can assert on the outbound wire shape.
type fakeTransport struct {
	mu        sync.Mutex
	responses []string
	requests  [][]byte
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body.Close()

	f.mu.Lock()
	f.requests = append(f.requests, body)
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	f.mu.Unlock()

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(resp)),
		Request:    req,
	}, nil
}

func (f *fakeTransport) requestBodies() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, len(f.requests))
	copy(out, f.requests)
	return out
}

func newTestIndex(t *testing.T) *index.Index {
	t.Helper()
	tools := []tooldef.Tool{
		{
			Name:        "get_weather",
			Description: "Get the current weather forecast for a city",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"city": map[string]any{"type": "string"},
				},
				"required": []any{"city"},
			},
		},
		{
			Name:        "send_email",
			Description: "Send an email message to a recipient",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"to":   map[string]any{"type": "string"},
					"body": map[string]any{"type": "string"},
				},
			},
		},
		{
			Name:        "list_files",
			Description: "List files in a directory",
		},
	}
	idx, err := index.New(tools, index.DefaultTopK)
	if err != nil {
		t.Fatalf("index.New: %v", err)
	}
	return idx
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}
