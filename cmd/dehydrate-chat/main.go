package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/charmbracelet/log"

	"github.com/petasbytes/dehydrate"
	"github.com/petasbytes/dehydrate/catalog"
	"github.com/petasbytes/dehydrate/internal/provider"
	"github.com/petasbytes/dehydrate/internal/sizing"
	"github.com/petasbytes/dehydrate/memory"
	"github.com/petasbytes/dehydrate/tooldef"
)

func main() {
	sessionPath := flag.String("session", "session.json", "path to the persisted session")
	corpusPath := flag.String("corpus", "", "optional YAML file of extra searchable tools")
	rounds := flag.Int("rounds", dehydrate.DefaultMaxSearchRounds, "max search rounds per send")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		logger.Fatal("missing ANTHROPIC_API_KEY; export it before running")
	}

	local := catalog.Registry()
	defs := catalog.Defs(local)
	if *corpusPath != "" {
		extra, err := catalog.LoadFile(*corpusPath)
		if err != nil {
			logger.Fatal("load corpus", "err", err)
		}
		defs = append(defs, extra...)
	}

	est := sizing.EstimateTools(defs)
	logger.Info("corpus ready",
		"tools", est.Tools,
		"corpus_tokens", est.CorpusTokens,
		"per_request_savings", fmt.Sprintf("%.0f%%", est.Savings()*100))

	client, err := dehydrate.NewClient(provider.NewAnthropicClient(), defs, dehydrate.Options{
		MaxSearchRounds: *rounds,
	})
	if err != nil {
		logger.Fatal("wrap client", "err", err)
	}

	// Resume prior session if one exists.
	sess, err := memory.LoadSession(*sessionPath)
	if err != nil {
		logger.Warn("failed to load session", "err", err)
	}
	client.RestoreDiscoveries(sess.Discovered...)

	conv := make([]anthropic.MessageParam, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		if m.Role == "user" {
			conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))
		} else {
			conv = append(conv, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Text)))
		}
	}

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Chat with Claude (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("\u001b[94mYou\u001b[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case user, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		conv = append(conv, anthropic.NewUserMessage(anthropic.NewTextBlock(user)))

		// Track assistant visible text to persist after the turn
		var lastAssistantText string
		for {
			msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
				Model:     provider.DefaultModel,
				MaxTokens: 1024,
				Messages:  conv,
			})
			if err != nil {
				logger.Error("send failed", "err", err)
				break
			}
			conv = append(conv, msg.ToParam())

			for _, b := range msg.Content {
				if tb, ok := b.AsAny().(anthropic.TextBlock); ok && tb.Text != "" {
					fmt.Printf("\u001b[93mClaude\u001b[0m: %s\n", tb.Text)
					if lastAssistantText == "" {
						lastAssistantText = tb.Text
					} else {
						lastAssistantText += "\n" + tb.Text
					}
				}
			}

			results := executeTools(msg, local, logger)
			if len(results) == 0 {
				break // done with assistant turn
			}
			conv = append(conv, anthropic.NewUserMessage(results...))
		}

		// Persist minimal text-only transcript plus discovered tool names.
		sess.Messages = append(sess.Messages, memory.Message{Role: "user", Text: user})
		if strings.TrimSpace(lastAssistantText) != "" {
			sess.Messages = append(sess.Messages, memory.Message{Role: "assistant", Text: lastAssistantText})
		}
		sess.Discovered = client.Discovered()
		if err := memory.SaveSession(*sessionPath, sess); err != nil {
			logger.Warn("failed to save session", "err", err)
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("stdin read error", "err", err)
	}
}

// executeTools runs every tool call in msg against the local registry and
// returns the matching tool_result blocks, empty when msg has none.
func executeTools(msg *anthropic.Message, local []catalog.Tool, logger *log.Logger) []anthropic.ContentBlockParamUnion {
	var results []anthropic.ContentBlockParamUnion
	for _, block := range msg.Content {
		use, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok {
			continue
		}
		// A search call can surface here alongside a concrete tool call;
		// the wrapper already processed it, but the API still expects a
		// result block for it.
		if use.Name == tooldef.SearchToolName {
			results = append(results, anthropic.NewToolResultBlock(use.ID,
				"Search complete; any matching tools are now available.", false))
			continue
		}
		tool, found := catalog.Find(local, use.Name)
		if !found {
			results = append(results, anthropic.NewToolResultBlock(use.ID,
				fmt.Sprintf("tool %q is not runnable locally", use.Name), true))
			continue
		}
		logger.Info("tool call", "name", use.Name)
		out, err := tool.Handler(json.RawMessage(use.JSON.Input.Raw()))
		if err != nil {
			results = append(results, anthropic.NewToolResultBlock(use.ID, err.Error(), true))
			continue
		}
		results = append(results, anthropic.NewToolResultBlock(use.ID, out, false))
	}
	return results
}
