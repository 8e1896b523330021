package scoring

import (
	"context"
	"testing"

	"github.com/realnamesareboring/certifai/internal/quizgen"
)

func TestNewSession_EmptyRejected(t *testing.T) {
	if _, err := NewSession("AZ-900", "Cloud Concepts", nil); err == nil {
		t.Fatal("expected error for empty question set")
	}
}

func TestSession_AnswerValidation(t *testing.T) {
	s, err := NewSession("AZ-900", "Cloud Concepts", questions(2, "Cloud Concepts"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Answer(-1, 0); err == nil {
		t.Error("negative index must be rejected")
	}
	if err := s.Answer(2, 0); err == nil {
		t.Error("out-of-range index must be rejected")
	}
	if err := s.Answer(0, 4); err == nil {
		t.Error("choice above 3 must be rejected")
	}
	if err := s.Answer(0, -1); err == nil {
		t.Error("negative choice must be rejected")
	}
	if s.Completed() {
		t.Error("rejected answers must not complete the session")
	}
}

func TestSession_ReAnswerBeforeCompletion(t *testing.T) {
	qs := questions(2, "Cloud Concepts")
	s, _ := NewSession("AZ-900", "Cloud Concepts", qs)

	if err := s.Answer(0, (qs[0].Correct+1)%4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Change of mind before the last slot fills.
	if err := s.Answer(0, qs[0].Correct); err != nil {
		t.Fatalf("re-answer must be allowed before completion: %v", err)
	}
	if err := s.Answer(1, qs[1].Correct); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, _, err := s.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Correct != 2 {
		t.Errorf("re-answer should count the latest choice, got %d correct", m.Correct)
	}
}

func TestSession_CompletesExactlyOnce(t *testing.T) {
	qs := questions(2, "Cloud Concepts")
	s, _ := NewSession("AZ-900", "Cloud Concepts", qs)

	if _, _, err := s.Result(); err == nil {
		t.Fatal("result must not be available before completion")
	}

	s.Answer(0, qs[0].Correct)
	s.Answer(1, qs[1].Correct)

	if !s.Completed() {
		t.Fatal("session should complete when the last slot fills")
	}
	if err := s.Answer(0, 2); err != ErrSessionCompleted {
		t.Errorf("expected ErrSessionCompleted, got %v", err)
	}

	m, _, err := s.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Correct != 2 || m.Percentage != 100 {
		t.Errorf("completed result must be frozen: %+v", m)
	}
}

func TestSession_QuizRoundTrip(t *testing.T) {
	gen := quizgen.New(nil, quizgen.DefaultConfig())
	batch, err := gen.Generate(context.Background(), "AZ-900", "Cloud Concepts", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := NewSession("AZ-900", "Cloud Concepts", batch.Questions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID == "" {
		t.Error("session must carry an id")
	}

	for i, q := range batch.Questions {
		if err := s.Answer(i, q.Correct); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
	}

	m, analysis, err := s.Result()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Correct != len(batch.Questions) {
		t.Errorf("expected all correct, got %d/%d", m.Correct, m.Total)
	}
	if m.Percentage != 100 || m.Tier != TierExcellent {
		t.Errorf("expected 100%% Excellent, got %d%% %s", m.Percentage, m.Tier)
	}

	rec := Recommend(analysis, m)
	if len(rec.FocusAreas) != 0 {
		t.Errorf("all-correct run should have no focus areas, got %v", rec.FocusAreas)
	}
	if len(rec.Suggestions) != 1 {
		t.Errorf("all-correct run should only carry the generic suggestion, got %v", rec.Suggestions)
	}
}
