package analysis

// Config tunes the analysis LLM calls.
type Config struct {
	// MaxTokens bounds each analysis response.
	MaxTokens int

	// Temperature for analysis calls. Classification wants consistency,
	// not creativity.
	Temperature float64
}

// DefaultConfig returns the standard analysis configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}
