package quizgen

// Config controls the generation request sent to the LLM.
type Config struct {
	// MaxTokens bounds the response. Batches are large, so this is well
	// above the chat default.
	MaxTokens int

	// Temperature stays low: exam questions need factual consistency,
	// not creativity.
	Temperature float64

	// MaxQuestions caps a single request.
	MaxQuestions int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    4096,
		Temperature:  0.2,
		MaxQuestions: 10,
	}
}
