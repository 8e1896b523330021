package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/llm"
)

func validBatchJSON(n int) json.RawMessage {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{
			"question": "Scenario %d: which service model fits?",
			"options": ["IaaS", "PaaS", "SaaS", "On-premises"],
			"correct": 1,
			"explanation": "PaaS removes OS management from the customer.",
			"domain": "Cloud Concepts"
		}`, i+1))
	}
	return json.RawMessage(fmt.Sprintf(`{"questions":[%s]}`, strings.Join(items, ",")))
}

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON(5)})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.UsedFallback {
		t.Fatal("expected generated batch, not fallback")
	}
	if len(batch.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(batch.Questions))
	}
	for i, q := range batch.Questions {
		if q.ID != i+1 {
			t.Errorf("question %d: expected sequential ID %d, got %d", i, i+1, q.ID)
		}
		if q.CertificationID != "AZ-900" {
			t.Errorf("question %d: expected AZ-900, got %q", i, q.CertificationID)
		}
		if q.Domain != "Cloud Concepts" {
			t.Errorf("question %d: expected Cloud Concepts, got %q", i, q.Domain)
		}
		if q.GeneratedAt.IsZero() {
			t.Errorf("question %d: missing GeneratedAt", i)
		}
	}
}

func TestGenerate_UnknownCertificationBeforeLLMCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON(5)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "XX-000", "Cloud Concepts", 5)
	if !errors.Is(err, catalog.ErrUnknownCertification) {
		t.Fatalf("expected ErrUnknownCertification, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no LLM call may be attempted for an unknown certification, got %d", mock.CallCount())
	}
}

func TestGenerate_UnknownDomain(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "AZ-900", "Time Travel", 5)
	if !errors.Is(err, catalog.ErrUnknownDomain) {
		t.Fatalf("expected ErrUnknownDomain, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("no LLM call may be attempted for an unknown domain, got %d", mock.CallCount())
	}
}

func TestGenerate_InvalidCount(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	for _, count := range []int{0, -3} {
		_, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", count)
		if !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count %d: expected ErrInvalidCount, got %v", count, err)
		}
	}
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 5)
	if err != nil {
		t.Fatalf("provider failure must not surface as an error: %v", err)
	}
	if !batch.UsedFallback {
		t.Fatal("expected fallback batch")
	}
	if len(batch.Questions) == 0 {
		t.Fatal("fallback batch must not be empty")
	}
	if batch.FallbackReason == "" {
		t.Error("expected a fallback reason")
	}
}

// stalledProvider blocks until the context is done, simulating a backend
// that accepts the request and never answers.
type stalledProvider struct{}

func (stalledProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledProvider) ModelID() string { return "stalled" }

func TestGenerate_StalledProviderTimesOutFallsBack(t *testing.T) {
	p := llm.WithTimeout(stalledProvider{}, 10*time.Millisecond)
	gen := New(p, DefaultConfig())

	start := time.Now()
	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 5)
	if err != nil {
		t.Fatalf("timeout must not surface as an error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("generation took %v, the deadline did not bound it", elapsed)
	}
	if !batch.UsedFallback {
		t.Fatal("expected fallback batch after timeout")
	}
	if len(batch.Questions) == 0 {
		t.Fatal("fallback batch must not be empty")
	}
}

func TestGenerate_GarbageJSONFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": [{`)})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !batch.UsedFallback || len(batch.Questions) == 0 {
		t.Fatal("garbage JSON must produce a non-empty fallback batch")
	}
}

func TestGenerate_StructuralRejectionFallsBack(t *testing.T) {
	// Three options instead of four.
	bad := json.RawMessage(`{"questions":[{
		"question": "Broken?",
		"options": ["A", "B", "C"],
		"correct": 1,
		"explanation": "x",
		"domain": "Cloud Concepts"
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !batch.UsedFallback {
		t.Fatal("structurally invalid batch must fall back")
	}
}

func TestGenerate_CodeFencedResponseAccepted(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(validBatchJSON(2)) + "\n```")
	mock := llm.NewMockProvider(llm.MockResponse{Content: fenced})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batch.UsedFallback {
		t.Fatal("code-fenced but valid JSON should not fall back")
	}
	if len(batch.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(batch.Questions))
	}
}

func TestGenerate_OverDeliveryTrimmed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON(7)})
	gen := New(mock, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Questions) != 4 {
		t.Errorf("expected trim to 4 questions, got %d", len(batch.Questions))
	}
}

func TestGenerate_NilProviderServesFallback(t *testing.T) {
	gen := New(nil, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "SC-900", "Microsoft Entra Capabilities", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !batch.UsedFallback || len(batch.Questions) == 0 {
		t.Fatal("nil provider must serve a non-empty fallback batch")
	}
}

func TestFallback_ShortBankPartialFulfillment(t *testing.T) {
	gen := New(nil, DefaultConfig())

	batch, err := gen.Generate(context.Background(), "AI-900", "Generative AI Workloads", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !batch.UsedFallback {
		t.Fatal("expected fallback")
	}
	if len(batch.Questions) != len(fallbackBanks["AI-900"]) {
		t.Errorf("expected full bank of %d questions, got %d",
			len(fallbackBanks["AI-900"]), len(batch.Questions))
	}
}

func TestFallback_StampsRequestDomain(t *testing.T) {
	gen := New(nil, DefaultConfig())

	batch, _ := gen.Generate(context.Background(), "DP-900", "Core Data Concepts", 2)
	for i, q := range batch.Questions {
		if q.Domain != "Core Data Concepts" {
			t.Errorf("question %d: expected request domain stamped, got %q", i, q.Domain)
		}
		if q.ID != i+1 {
			t.Errorf("question %d: expected sequential ID, got %d", i, q.ID)
		}
	}
}

func TestGenerate_PromptCarriesCurriculumAndContract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON(1)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("request must carry the shared batch schema")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"AZ-900", "Cloud Concepts", "25-30%", "questions"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if req.Temperature != DefaultConfig().Temperature {
		t.Errorf("expected low temperature %v, got %v", DefaultConfig().Temperature, req.Temperature)
	}
}
