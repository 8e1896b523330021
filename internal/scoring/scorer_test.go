package scoring

import (
	"errors"
	"testing"

	"github.com/realnamesareboring/certifai/internal/quizgen"
)

func intp(v int) *int { return &v }

func questions(n int, domain string) []quizgen.Question {
	out := make([]quizgen.Question, n)
	for i := range out {
		out[i] = quizgen.Question{
			ID:          i + 1,
			Text:        "q",
			Options:     []string{"A", "B", "C", "D"},
			Correct:     i % 4,
			Explanation: "e",
			Domain:      domain,
		}
	}
	return out
}

func TestScore_ThreeOfFour(t *testing.T) {
	qs := questions(4, "Cloud Concepts")
	answers := []*int{intp(0), intp(1), intp(2), intp(0)} // last one wrong (correct is 3)

	m, analysis, err := Score(qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Correct != 3 {
		t.Errorf("expected 3 correct, got %d", m.Correct)
	}
	if m.Percentage != 75 {
		t.Errorf("expected 75%%, got %d%%", m.Percentage)
	}
	if m.Tier != TierGood {
		t.Errorf("expected Good, got %s", m.Tier)
	}
	if len(analysis) != 4 {
		t.Fatalf("expected 4 analysis entries, got %d", len(analysis))
	}
	if analysis[3].Correct || !analysis[3].Answered {
		t.Error("last question should be answered and incorrect")
	}
}

func TestScore_UnansweredCounted(t *testing.T) {
	qs := questions(3, "Core Data Concepts")
	answers := []*int{intp(0), nil, nil}

	m, analysis, err := Score(qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Correct != 1 || m.Unanswered != 2 || m.Incorrect != 0 {
		t.Errorf("unexpected metrics: %+v", m)
	}
	if m.Percentage != 33 {
		t.Errorf("expected round(100/3)=33, got %d", m.Percentage)
	}
	if analysis[1].Answered {
		t.Error("nil answer must be reported unanswered")
	}
	if analysis[1].Chosen != -1 {
		t.Errorf("unanswered Chosen should be -1, got %d", analysis[1].Chosen)
	}
}

func TestScore_EmptySession(t *testing.T) {
	_, _, err := Score(nil, nil)
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	_, _, err := Score(questions(3, "d"), []*int{intp(0)})
	if !errors.Is(err, ErrAnswerMismatch) {
		t.Fatalf("expected ErrAnswerMismatch, got %v", err)
	}
}

func TestClassifyPerformance_Boundaries(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{100, TierExcellent},
		{90, TierExcellent},
		{89, TierVeryGood},
		{80, TierVeryGood},
		{79, TierGood},
		{70, TierGood},
		{69, TierFair},
		{60, TierFair},
		{59, TierNeedsImprovement},
		{0, TierNeedsImprovement},
	}
	for _, tt := range tests {
		if got := ClassifyPerformance(tt.pct); got != tt.want {
			t.Errorf("ClassifyPerformance(%d) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestRecommend_PerfectScore(t *testing.T) {
	qs := questions(5, "Cloud Concepts")
	answers := make([]*int, 5)
	for i := range answers {
		answers[i] = intp(qs[i].Correct)
	}

	m, analysis, err := Score(qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := Recommend(analysis, m)

	if len(rec.FocusAreas) != 0 {
		t.Errorf("perfect score should have no focus areas, got %v", rec.FocusAreas)
	}
	if len(rec.Suggestions) != 1 {
		t.Fatalf("perfect score should only carry the generic suggestion, got %v", rec.Suggestions)
	}
}

func TestRecommend_FocusAreasOrderedAndCapped(t *testing.T) {
	var qs []quizgen.Question
	for i, d := range []string{"D1", "D2", "D1", "D3", "D4", "D2"} {
		qs = append(qs, quizgen.Question{
			ID: i + 1, Options: []string{"A", "B", "C", "D"},
			Correct: 0, Domain: d,
		})
	}
	// All answered wrong.
	answers := make([]*int, len(qs))
	for i := range answers {
		answers[i] = intp(1)
	}

	m, analysis, _ := Score(qs, answers)
	rec := Recommend(analysis, m)

	want := []string{"D1", "D2", "D3"}
	if len(rec.FocusAreas) != 3 {
		t.Fatalf("focus areas capped at 3, got %v", rec.FocusAreas)
	}
	for i := range want {
		if rec.FocusAreas[i] != want[i] {
			t.Errorf("focusAreas[%d] = %q, want %q (first-appearance order)", i, rec.FocusAreas[i], want[i])
		}
	}
}

func TestRecommend_ConditionalSuggestions(t *testing.T) {
	qs := questions(8, "Cloud Concepts")
	// 2 correct, 5 wrong, 1 unanswered → 25%, >3 missed, has unanswered.
	answers := []*int{
		intp(qs[0].Correct), intp(qs[1].Correct),
		intp((qs[2].Correct + 1) % 4), intp((qs[3].Correct + 1) % 4),
		intp((qs[4].Correct + 1) % 4), intp((qs[5].Correct + 1) % 4),
		intp((qs[6].Correct + 1) % 4),
		nil,
	}

	m, analysis, err := Score(qs, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := Recommend(analysis, m)

	if len(rec.Suggestions) != 4 {
		t.Fatalf("expected all 4 suggestions, got %d: %v", len(rec.Suggestions), rec.Suggestions)
	}
	last := rec.Suggestions[len(rec.Suggestions)-1]
	if last != "Keep practicing with official Microsoft Learn material for your certification." {
		t.Errorf("generic suggestion must be last, got %q", last)
	}
}

func TestRecommend_UnansweredDoesNotCreateFocusArea(t *testing.T) {
	qs := questions(2, "OnlyDomain")
	answers := []*int{intp(qs[0].Correct), nil}

	m, analysis, _ := Score(qs, answers)
	rec := Recommend(analysis, m)

	if len(rec.FocusAreas) != 0 {
		t.Errorf("unanswered questions are not incorrect answers; got focus areas %v", rec.FocusAreas)
	}
}
