package quizgen

import (
	"errors"
	"time"
)

// ErrInvalidCount is returned before any LLM call when the requested
// question count is not positive.
var ErrInvalidCount = errors.New("question count must be positive")

// Question is one scenario-based multiple-choice question, ready to serve.
// Immutable after creation.
type Question struct {
	// ID is the 1-based position within its batch.
	ID int `json:"id"`

	// Text is the question prompt.
	Text string `json:"question"`

	// Options holds exactly 4 answer choices.
	Options []string `json:"options"`

	// Correct is the index of the right option, in [0,3].
	Correct int `json:"correct"`

	// Explanation is shown after answering.
	Explanation string `json:"explanation"`

	// Domain is the curriculum domain label.
	Domain string `json:"domain"`

	// CertificationID is the exam code the question targets.
	CertificationID string `json:"certificationId"`

	// GeneratedAt is when the batch was produced.
	GeneratedAt time.Time `json:"generatedAt"`
}

// Batch is the result of one generation request. The question list is never
// empty for a known certification and domain: generation failures are
// served from the static bank instead.
type Batch struct {
	Questions []Question

	// UsedFallback reports that the static bank served this batch.
	UsedFallback bool

	// FallbackReason describes why generation fell back, empty otherwise.
	FallbackReason string
}
