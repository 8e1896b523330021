package analysis

import "errors"

// ErrSampleTooShort is returned when a style sample is under the minimum
// length. This is a client error, not a fallback trigger.
var ErrSampleTooShort = errors.New("text sample too short for style analysis")

// MinSampleLength is the minimum style sample length, counted in runes so
// multibyte scripts are measured the same way as ASCII.
const MinSampleLength = 15

// StyleProfile is the inferred communication-preference vector. It is an
// immutable value object: produced once during onboarding, then consumed
// as-is by the chat prompt composer.
type StyleProfile struct {
	// Tone is one of "casual", "formal", "mixed".
	Tone string `json:"tone"`

	// Complexity is one of "simple", "detailed", "technical".
	Complexity string `json:"complexity"`

	// ExplanationStyle is one of "examples", "step-by-step", "analogies",
	// "direct".
	ExplanationStyle string `json:"explanationStyle"`

	// LearningPreference is one of "visual", "conversational", "structured".
	LearningPreference string `json:"learningPreference"`
}

// NeutralStyle is the default profile served when inference fails.
func NeutralStyle() StyleProfile {
	return StyleProfile{
		Tone:               "mixed",
		Complexity:         "simple",
		ExplanationStyle:   "examples",
		LearningPreference: "conversational",
	}
}

// StyleResult is the outcome of style analysis.
type StyleResult struct {
	Style StyleProfile `json:"style"`

	// Confidence is one of "high", "medium", "low".
	Confidence string `json:"confidence"`

	Reasoning string `json:"reasoning"`

	// Fallback reports that the neutral defaults were served instead of an
	// inferred profile.
	Fallback bool `json:"fallback"`
}

// ContextResult is the outcome of conversation-context analysis.
type ContextResult struct {
	// SuggestedCertification is a certification code from the catalog.
	SuggestedCertification string `json:"suggestedCertification"`

	// Confidence is one of "high", "medium", "low".
	Confidence string `json:"confidence"`

	Reasoning string `json:"reasoning"`

	// Topics are the certification topics detected in the conversation.
	Topics []string `json:"topics"`

	// Fallback reports that the keyword classifier answered instead of the
	// model.
	Fallback bool `json:"fallback"`
}
