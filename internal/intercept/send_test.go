package intercept

import (
	"context"
	"errors"
	"testing"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/tooldef"
)

var errProviderDown = errors.New("provider unavailable")

type fakeReq struct {
	toolNames  []string
	transcript []string
}

type fakeResp struct {
	search bool
	tool   bool
	label  string
}

type fakeResult struct {
	text string
}

// scriptedAdapter replays a fixed sequence of responses and records what
// the loop asked of it.
type scriptedAdapter struct {
	script   []fakeResp
	errAt    int // 1-based call number to fail on; 0 means never
	discover []string

	calls      int
	appends    int
	builtTools [][]string
}

func (a *scriptedAdapter) BuildTools(req fakeReq, idx *index.Index, alwaysAvailable []tooldef.Tool, discovered *Discovered) fakeReq {
	names := make([]string, 0, 1+len(alwaysAvailable)+discovered.Len())
	names = append(names, tooldef.SearchToolName)
	for _, def := range alwaysAvailable {
		names = append(names, def.Name)
	}
	names = append(names, discovered.Names()...)
	req.toolNames = names
	a.builtTools = append(a.builtTools, names)
	return req
}

func (a *scriptedAdapter) Call(ctx context.Context, client struct{}, req fakeReq) (fakeResp, error) {
	a.calls++
	if a.errAt == a.calls {
		return fakeResp{}, errProviderDown
	}
	return a.script[a.calls-1], nil
}

func (a *scriptedAdapter) HasSearchCall(resp fakeResp) bool {
	return resp.search
}

func (a *scriptedAdapter) HasNonSearchToolCall(resp fakeResp) bool {
	return resp.tool
}

func (a *scriptedAdapter) ProcessSearchCalls(resp fakeResp, idx *index.Index, discovered *Discovered) []fakeResult {
	discovered.Add(a.discover...)
	return []fakeResult{{text: "result"}}
}

func (a *scriptedAdapter) AppendSearchRound(req fakeReq, resp fakeResp, results []fakeResult) fakeReq {
	a.appends++
	req.transcript = append(req.transcript, "assistant:"+resp.label)
	for _, r := range results {
		req.transcript = append(req.transcript, "tool:"+r.text)
	}
	return req
}

func runScripted(t *testing.T, adapter *scriptedAdapter, maxRounds int) (fakeResp, error) {
	t.Helper()
	return Send[struct{}, fakeReq, fakeResp, fakeResult](
		context.Background(), struct{}{}, adapter,
		newTestIndex(t), nil, NewDiscovered(), maxRounds, fakeReq{},
	)
}

func TestSend_NoSearchReturnsImmediately(t *testing.T) {
	adapter := &scriptedAdapter{script: []fakeResp{{label: "final"}}}

	resp, err := runScripted(t, adapter, 3)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.label != "final" {
		t.Fatalf("want final response, got %q", resp.label)
	}
	if adapter.calls != 1 {
		t.Fatalf("want 1 provider call, got %d", adapter.calls)
	}
	if adapter.appends != 0 {
		t.Fatalf("terminal round must not extend the transcript, got %d appends", adapter.appends)
	}
}

func TestSend_MixedRoundReturnsResponseAsIs(t *testing.T) {
	adapter := &scriptedAdapter{
		script:   []fakeResp{{search: true, tool: true, label: "mixed"}},
		discover: []string{"send_email"},
	}
	discovered := NewDiscovered()

	resp, err := Send[struct{}, fakeReq, fakeResp, fakeResult](
		context.Background(), struct{}{}, adapter,
		newTestIndex(t), nil, discovered, 3, fakeReq{},
	)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.label != "mixed" {
		t.Fatalf("want mixed response back, got %q", resp.label)
	}
	if adapter.calls != 1 {
		t.Fatalf("want 1 provider call, got %d", adapter.calls)
	}
	// The search side effect still lands even though its result is dropped.
	if !containsName(discovered.Names(), "send_email") {
		t.Fatalf("discovered should contain send_email, got %v", discovered.Names())
	}
	if adapter.appends != 0 {
		t.Fatalf("mixed round must not extend the transcript, got %d appends", adapter.appends)
	}
}

func TestSend_SearchRoundThenTerminal(t *testing.T) {
	adapter := &scriptedAdapter{
		script: []fakeResp{
			{search: true, label: "searching"},
			{label: "answer"},
		},
		discover: []string{"get_weather"},
	}

	resp, err := runScripted(t, adapter, 3)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.label != "answer" {
		t.Fatalf("want terminal response, got %q", resp.label)
	}
	if adapter.calls != 2 {
		t.Fatalf("want 2 provider calls, got %d", adapter.calls)
	}
	if adapter.appends != 1 {
		t.Fatalf("want 1 transcript extension, got %d", adapter.appends)
	}
	// Round two sees the tool discovered in round one.
	if len(adapter.builtTools) != 2 || !containsName(adapter.builtTools[1], "get_weather") {
		t.Fatalf("round 2 tool list should include get_weather, got %v", adapter.builtTools)
	}
	if containsName(adapter.builtTools[0], "get_weather") {
		t.Fatalf("round 1 tool list should not include get_weather, got %v", adapter.builtTools[0])
	}
}

func TestSend_BudgetExhaustedReturnsLastResponse(t *testing.T) {
	adapter := &scriptedAdapter{
		script: []fakeResp{
			{search: true, label: "s1"},
			{search: true, label: "s2"},
			{search: true, label: "s3"},
		},
	}

	resp, err := runScripted(t, adapter, 3)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if resp.label != "s3" {
		t.Fatalf("want last search response, got %q", resp.label)
	}
	if adapter.calls != 3 {
		t.Fatalf("want exactly 3 provider calls, got %d", adapter.calls)
	}
}

func TestSend_MaxRoundsDefaulted(t *testing.T) {
	adapter := &scriptedAdapter{
		script: []fakeResp{
			{search: true, label: "s1"},
			{search: true, label: "s2"},
			{search: true, label: "s3"},
			{search: true, label: "s4"},
		},
	}

	if _, err := runScripted(t, adapter, 0); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if adapter.calls != DefaultMaxSearchRounds {
		t.Fatalf("want %d provider calls, got %d", DefaultMaxSearchRounds, adapter.calls)
	}
}

func TestSend_ProviderErrorPropagates(t *testing.T) {
	adapter := &scriptedAdapter{
		script: []fakeResp{{search: true, label: "s1"}, {}},
		errAt:  2,
	}

	_, err := runScripted(t, adapter, 3)
	if !errors.Is(err, errProviderDown) {
		t.Fatalf("want provider error untouched, got %v", err)
	}
}

func TestFormatSearchResult_Empty(t *testing.T) {
	got := formatSearchResult(nil)
	want := "No matching tools found. Try a different search query."
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatSearchResult_Matches(t *testing.T) {
	got := formatSearchResult([]tooldef.Tool{
		{Name: "get_weather", Description: "Get the current weather forecast for a city"},
		{Name: "send_email", Description: "Send an email message to a recipient"},
	})
	want := "Found the following tools:\n\n" +
		"- **get_weather**: Get the current weather forecast for a city\n" +
		"- **send_email**: Send an email message to a recipient\n" +
		"\nThese tools are now available for you to use."
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestDiscovered_AddNamesReset(t *testing.T) {
	d := NewDiscovered()
	d.Add("send_email", "get_weather", "send_email")

	names := d.Names()
	if len(names) != 2 || names[0] != "get_weather" || names[1] != "send_email" {
		t.Fatalf("want sorted unique names, got %v", names)
	}
	if d.Len() != 2 {
		t.Fatalf("want Len 2, got %d", d.Len())
	}

	d.Reset()
	if d.Len() != 0 || len(d.Names()) != 0 {
		t.Fatalf("Reset should empty the set, got %v", d.Names())
	}
}
