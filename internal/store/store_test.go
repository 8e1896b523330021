package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.EventRepo() == nil {
		t.Fatal("expected non-nil event repo")
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	second, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if second != first+1 {
		t.Errorf("expected consecutive sequence numbers, got %d then %d", first, second)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "mock",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 400,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.client.LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 event, got %d", n)
	}
}

func TestAppendQuizEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		Kind:            "generated",
		CertificationID: "AZ-900",
		Domain:          "Cloud Concepts",
		QuestionCount:   5,
		UsedFallback:    false,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	err = repo.AppendQuizEvent(ctx, QuizEventData{
		Kind:            "scored",
		CertificationID: "AZ-900",
		Domain:          "Cloud Concepts",
		QuestionCount:   5,
		Score:           4,
		Percentage:      80,
	})
	if err != nil {
		t.Fatalf("append scored: %v", err)
	}

	n, err := s.client.QuizEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
}

func TestQueryEvents_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "chat", "style-analysis"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Model:   "mock",
			Purpose: purpose,
			Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Purpose != "style-analysis" {
		t.Errorf("expected newest first, got %q", records[0].Purpose)
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			records[0].Sequence, records[1].Sequence)
	}
}

func TestQueryQuizEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizEvent(ctx, QuizEventData{
		Kind:            "generated",
		CertificationID: "DP-900",
		Domain:          "Core Data Concepts",
		QuestionCount:   3,
		UsedFallback:    true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryQuizEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].UsedFallback || records[0].CertificationID != "DP-900" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}
