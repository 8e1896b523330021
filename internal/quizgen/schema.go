package quizgen

import "github.com/realnamesareboring/certifai/internal/llm"

// BatchSchema is the single JSON contract for quiz generation. The prompt
// renders it, the provider forwards it as native structured output, and the
// response is validated against it, so the three cannot drift.
var BatchSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of scenario-based multiple-choice certification exam questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, one object each",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "Scenario-based question text, self-contained",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"minItems":    4,
							"maxItems":    4,
							"description": "Exactly 4 answer options, exactly one correct",
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right and the others are not",
						},
						"domain": map[string]any{
							"type":        "string",
							"description": "The curriculum domain this question examines",
						},
					},
					"required":             []any{"question", "options", "correct", "explanation", "domain"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
