package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// recordingSink captures appended events in memory.
type recordingSink struct {
	events []RequestEvent
}

func (s *recordingSink) AppendLLMRequest(_ context.Context, data RequestEvent) error {
	s.events = append(s.events, data)
	return nil
}

func TestLogging_RecordsEvent(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	sink := &recordingSink{}
	p := WithLogging(mock, sink, nil)

	ctx := WithPurpose(context.Background(), "difficulty-analysis")
	if _, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	e := sink.events[0]
	if e.Purpose != "difficulty-analysis" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if !e.Success {
		t.Error("event should be marked successful")
	}
	if e.InputTokens != 10 || e.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "hello") {
		t.Error("request body should capture the prompt")
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider() // empty queue
	sink := &recordingSink{}
	p := WithLogging(mock, sink, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	e := sink.events[0]
	if e.Success {
		t.Error("event should be marked failed")
	}
	if e.ErrorMessage == "" {
		t.Error("error message should be captured")
	}
}

func TestLogging_NilSink(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("nil sink should not fail requests: %v", err)
	}
}
