package intercept

import (
	"context"
	"fmt"
	"time"

	"github.com/petasbytes/dehydrate/index"
	"github.com/petasbytes/dehydrate/internal/telemetry"
	"github.com/petasbytes/dehydrate/tooldef"
)

// DefaultMaxSearchRounds bounds how many consecutive search-only rounds a
// single send may consume before handing the last response back
// unresolved.
const DefaultMaxSearchRounds = 3

// Send drives the interception loop for one request. One provider call per
// round, strictly sequential; the provider call is the only blocking point
// and the only place errors can originate. maxRounds < 1 selects the
// default.
func Send[Client, Request, Response, Result any](
	ctx context.Context,
	client Client,
	adapter Adapter[Client, Request, Response, Result],
	idx *index.Index,
	alwaysAvailable []tooldef.Tool,
	discovered *Discovered,
	maxRounds int,
	req Request,
) (Response, error) {
	if maxRounds < 1 {
		maxRounds = DefaultMaxSearchRounds
	}

	sendID, ok := telemetry.SendIDFromContext(ctx)
	if !ok {
		sendID = fmt.Sprintf("send-%d", time.Now().UnixNano())
		ctx = telemetry.WithSendID(ctx, sendID)
	}

	var resp Response
	for round := 1; round <= maxRounds; round++ {
		built := adapter.BuildTools(req, idx, alwaysAvailable, discovered)

		var err error
		resp, err = adapter.Call(ctx, client, built)
		if err != nil {
			var zero Response
			return zero, err
		}

		searching := adapter.HasSearchCall(resp)
		mixed := searching && adapter.HasNonSearchToolCall(resp)
		telemetry.Emit("search_round", map[string]any{
			"send_id":    sendID,
			"round":      round,
			"search":     searching,
			"mixed":      mixed,
			"discovered": discovered.Len(),
		})

		if !searching {
			emitDone(sendID, round, "complete", discovered)
			return resp, nil
		}
		if mixed {
			// The response also carries a concrete tool call the caller
			// must execute, so it goes back as-is. The search still grows
			// the discovered set; its result text is dropped.
			adapter.ProcessSearchCalls(resp, idx, discovered)
			emitDone(sendID, round, "mixed_tool_call", discovered)
			return resp, nil
		}

		results := adapter.ProcessSearchCalls(resp, idx, discovered)
		telemetry.Emit("tools_discovered", map[string]any{
			"send_id":    sendID,
			"round":      round,
			"discovered": discovered.Len(),
		})
		req = adapter.AppendSearchRound(built, resp, results)
	}

	// Budget exhausted on search-only rounds; the caller receives the last
	// response unresolved.
	emitDone(sendID, maxRounds, "budget_exhausted", discovered)
	return resp, nil
}

func emitDone(sendID string, rounds int, reason string, discovered *Discovered) {
	telemetry.Emit("send_done", map[string]any{
		"send_id":    sendID,
		"rounds":     rounds,
		"reason":     reason,
		"discovered": discovered.Len(),
	})
}
