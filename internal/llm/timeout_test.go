package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// stallingProvider blocks until the context is done, like a backend that
// accepts the request and never answers.
type stallingProvider struct {
	calls atomic.Int32
}

func (s *stallingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	s.calls.Add(1)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (s *stallingProvider) ModelID() string { return "stalling" }

func TestWithTimeout_BoundsStalledCall(t *testing.T) {
	stall := &stallingProvider{}
	p := WithTimeout(stall, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("call took %v, deadline did not bound it", elapsed)
	}
}

func TestWithTimeout_DeadlineStopsRetries(t *testing.T) {
	stall := &stallingProvider{}
	p := WithTimeout(WithRetry(stall, fastRetryConfig(5)), 20*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if got := stall.calls.Load(); got != 1 {
		t.Errorf("expected 1 call (deadline errors are not retried), got %d", got)
	}
}

func TestWithTimeout_FastCallUnaffected(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithTimeout(mock, 5*time.Second)

	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
}

func TestWithTimeout_NonPositiveDisables(t *testing.T) {
	mock := NewMockProvider()
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Error("zero duration should return the provider unchanged")
	}
	if p := WithTimeout(mock, -time.Second); p != Provider(mock) {
		t.Error("negative duration should return the provider unchanged")
	}
}

func TestWithTimeout_CallerDeadlineStillHonored(t *testing.T) {
	stall := &stallingProvider{}
	p := WithTimeout(stall, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{MaxTokens: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected caller deadline to win, got %v", err)
	}
}
