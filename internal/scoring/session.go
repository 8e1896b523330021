package scoring

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/realnamesareboring/certifai/internal/quizgen"
)

// ErrSessionCompleted is returned when answering a session that has
// already been finalized.
var ErrSessionCompleted = errors.New("session already completed")

// Session tracks one quiz attempt. Answers fill one slot at a time;
// Completed flips exactly once, when the last unanswered slot is filled,
// and the result is frozen at that moment.
type Session struct {
	ID              string
	CertificationID string
	Domain          string
	Questions       []quizgen.Question

	answers   []*int
	completed bool
	metrics   Metrics
	analysis  []QuestionAnalysis
}

// NewSession starts a session over a generated batch.
func NewSession(certID, domain string, questions []quizgen.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		ID:              uuid.NewString(),
		CertificationID: certID,
		Domain:          domain,
		Questions:       questions,
		answers:         make([]*int, len(questions)),
	}, nil
}

// Answer records the choice for question index i. Re-answering an already
// answered slot is allowed until the session completes.
func (s *Session) Answer(i, choice int) error {
	if s.completed {
		return ErrSessionCompleted
	}
	if i < 0 || i >= len(s.Questions) {
		return fmt.Errorf("question index %d out of range", i)
	}
	if choice < 0 || choice > 3 {
		return fmt.Errorf("choice %d out of range [0,3]", choice)
	}

	c := choice
	s.answers[i] = &c

	if s.allAnswered() {
		s.finalize()
	}
	return nil
}

// Completed reports whether the session has been scored and frozen.
func (s *Session) Completed() bool {
	return s.completed
}

// Result returns the frozen metrics and analysis. Valid only after the
// session completes.
func (s *Session) Result() (Metrics, []QuestionAnalysis, error) {
	if !s.completed {
		return Metrics{}, nil, errors.New("session not yet completed")
	}
	return s.metrics, s.analysis, nil
}

// Answers returns a copy of the answer slots, nil meaning unanswered.
func (s *Session) Answers() []*int {
	out := make([]*int, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Session) allAnswered() bool {
	for _, a := range s.answers {
		if a == nil {
			return false
		}
	}
	return true
}

func (s *Session) finalize() {
	// Inputs are guarded by Answer, so scoring cannot fail here.
	m, analysis, err := Score(s.Questions, s.answers)
	if err != nil {
		return
	}
	s.metrics = m
	s.analysis = analysis
	s.completed = true
}
