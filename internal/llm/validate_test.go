package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "validate-test",
	Description: "Test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer":"B","score":2}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must accept anything, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"B"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"B","score":5}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_ExtraField(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"answer":"B","score":1,"extra":true}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
