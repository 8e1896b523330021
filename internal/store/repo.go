package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QuizEventData captures one quiz lifecycle milestone.
type QuizEventData struct {
	// Kind is "generated" or "scored".
	Kind            string
	CertificationID string
	Domain          string
	QuestionCount   int
	UsedFallback    bool
	Score           int
	Percentage      int
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// QuizEventRecord is a stored quiz lifecycle event.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to audit events. A nil
// EventRepo is valid everywhere one is accepted; callers must tolerate it.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizEvent records a quiz generation or scoring milestone.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// QueryQuizEvents returns quiz lifecycle events, newest first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)
}
