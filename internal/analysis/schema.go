package analysis

import (
	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/llm"
)

// StyleSchema defines the JSON schema for communication-style inference.
// Every field is enum-closed so a response outside the allowed vocabulary
// fails validation instead of leaking into prompts.
var StyleSchema = &llm.Schema{
	Name:        "style-profile",
	Description: "Inferred communication style profile for a learner's writing sample",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"style": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"tone": map[string]any{
						"type": "string",
						"enum": []any{"casual", "formal", "mixed"},
					},
					"complexity": map[string]any{
						"type": "string",
						"enum": []any{"simple", "detailed", "technical"},
					},
					"explanationStyle": map[string]any{
						"type": "string",
						"enum": []any{"examples", "step-by-step", "analogies", "direct"},
					},
					"learningPreference": map[string]any{
						"type": "string",
						"enum": []any{"visual", "conversational", "structured"},
					},
				},
				"required": []any{
					"tone", "complexity", "explanationStyle", "learningPreference",
				},
				"additionalProperties": false,
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "1-2 sentence justification for the inferred profile",
			},
		},
		"required":             []any{"style", "confidence", "reasoning"},
		"additionalProperties": false,
	},
}

// ContextSchema defines the JSON schema for conversation-context
// classification. The certification enum is built from the catalog so the
// model can only answer with a supported exam code.
var ContextSchema = &llm.Schema{
	Name:        "conversation-context",
	Description: "Suggested certification focus inferred from a study conversation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestedCertification": map[string]any{
				"type": "string",
				"enum": certificationEnum(),
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "1-2 sentence justification for the suggestion",
			},
			"topics": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Certification topics mentioned in the conversation",
			},
		},
		"required": []any{
			"suggestedCertification", "confidence", "reasoning", "topics",
		},
		"additionalProperties": false,
	},
}

func certificationEnum() []any {
	ids := catalog.IDs()
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}
