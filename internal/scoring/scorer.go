// Package scoring computes deterministic results for completed quiz
// sessions: correctness, percentage, performance tier, and study
// recommendations. It does not care whether the questions came from the
// LLM path or the fallback bank.
package scoring

import (
	"errors"
	"math"

	"github.com/realnamesareboring/certifai/internal/quizgen"
)

// ErrEmptySession is returned when there are no questions to score.
// Callers must guarantee non-empty question sets reach the scorer.
var ErrEmptySession = errors.New("cannot score an empty question set")

// ErrAnswerMismatch is returned when answers and questions differ in length.
var ErrAnswerMismatch = errors.New("answers length must match questions length")

// Tier is the performance classification for a percentage score.
type Tier string

const (
	TierExcellent        Tier = "Excellent"
	TierVeryGood         Tier = "Very Good"
	TierGood             Tier = "Good"
	TierFair             Tier = "Fair"
	TierNeedsImprovement Tier = "Needs Improvement"
)

// Metrics summarizes a scored session.
type Metrics struct {
	Total      int  `json:"total"`
	Correct    int  `json:"correct"`
	Incorrect  int  `json:"incorrect"`
	Unanswered int  `json:"unanswered"`
	Percentage int  `json:"percentage"`
	Tier       Tier `json:"tier"`
}

// QuestionAnalysis is the per-question breakdown.
type QuestionAnalysis struct {
	ID       int    `json:"id"`
	Domain   string `json:"domain"`
	Answered bool   `json:"answered"`
	Correct  bool   `json:"correct"`
	Chosen   int    `json:"chosen"`
	Expected int    `json:"expected"`
}

// Recommendation is the study guidance derived from a scored session.
type Recommendation struct {
	// FocusAreas lists domains with incorrect answers, in order of first
	// appearance, capped at 3.
	FocusAreas []string `json:"focusAreas"`

	// Suggestions are conditional study tips; the generic practice
	// suggestion is always present and always last.
	Suggestions []string `json:"suggestions"`
}

// Score computes metrics and a per-question analysis. answers uses nil for
// unanswered slots and must be the same length as questions.
func Score(questions []quizgen.Question, answers []*int) (Metrics, []QuestionAnalysis, error) {
	if len(questions) == 0 {
		return Metrics{}, nil, ErrEmptySession
	}
	if len(answers) != len(questions) {
		return Metrics{}, nil, ErrAnswerMismatch
	}

	m := Metrics{Total: len(questions)}
	analysis := make([]QuestionAnalysis, len(questions))

	for i, q := range questions {
		a := QuestionAnalysis{
			ID:       q.ID,
			Domain:   q.Domain,
			Chosen:   -1,
			Expected: q.Correct,
		}
		switch {
		case answers[i] == nil:
			m.Unanswered++
		case *answers[i] == q.Correct:
			a.Answered = true
			a.Correct = true
			a.Chosen = *answers[i]
			m.Correct++
		default:
			a.Answered = true
			a.Chosen = *answers[i]
			m.Incorrect++
		}
		analysis[i] = a
	}

	m.Percentage = int(math.Round(100 * float64(m.Correct) / float64(m.Total)))
	m.Tier = ClassifyPerformance(m.Percentage)

	return m, analysis, nil
}

// ClassifyPerformance buckets a percentage into a tier. Boundaries are
// inclusive on the lower bound: exactly 90 is Excellent, exactly 80 is
// Very Good.
func ClassifyPerformance(percentage int) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 80:
		return TierVeryGood
	case percentage >= 70:
		return TierGood
	case percentage >= 60:
		return TierFair
	default:
		return TierNeedsImprovement
	}
}

// Recommend builds study guidance from a scored session.
func Recommend(analysis []QuestionAnalysis, metrics Metrics) Recommendation {
	rec := Recommendation{FocusAreas: []string{}}

	seen := make(map[string]bool)
	for _, a := range analysis {
		if a.Answered && !a.Correct && !seen[a.Domain] && len(rec.FocusAreas) < 3 {
			seen[a.Domain] = true
			rec.FocusAreas = append(rec.FocusAreas, a.Domain)
		}
	}

	if metrics.Percentage < 70 {
		rec.Suggestions = append(rec.Suggestions,
			"Review the fundamentals of each domain before attempting more practice questions.")
	}
	if metrics.Incorrect > 3 {
		rec.Suggestions = append(rec.Suggestions,
			"Focus on scenario-style questions: read the situation carefully before looking at the options.")
	}
	if metrics.Unanswered > 0 {
		rec.Suggestions = append(rec.Suggestions,
			"Work on time management so every question gets an answer; unanswered questions score zero.")
	}
	rec.Suggestions = append(rec.Suggestions,
		"Keep practicing with official Microsoft Learn material for your certification.")

	return rec
}
