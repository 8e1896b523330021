package quizgen

import (
	"encoding/json"
	"testing"
)

func goodQuestion() questionOutput {
	return questionOutput{
		Question:    "A company needs zone-redundant storage. Which option fits?",
		Options:     []string{"LRS", "ZRS", "A single disk", "A USB drive"},
		Correct:     1,
		Explanation: "ZRS replicates across availability zones.",
		Domain:      "Azure Architecture and Services",
	}
}

func TestValidateQuestion_Valid(t *testing.T) {
	if err := validateQuestion(goodQuestion()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuestion_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*questionOutput)
	}{
		{"empty question", func(q *questionOutput) { q.Question = "" }},
		{"three options", func(q *questionOutput) { q.Options = q.Options[:3] }},
		{"five options", func(q *questionOutput) { q.Options = append(q.Options, "extra") }},
		{"empty option", func(q *questionOutput) { q.Options[2] = "" }},
		{"correct too large", func(q *questionOutput) { q.Correct = 5 }},
		{"correct negative", func(q *questionOutput) { q.Correct = -1 }},
		{"missing explanation", func(q *questionOutput) { q.Explanation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := goodQuestion()
			tt.mutate(&q)
			if err := validateQuestion(q); err == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestValidateBatch_EmptyRejected(t *testing.T) {
	if err := validateBatch(batchOutput{}); err == nil {
		t.Error("empty batch must be rejected")
	}
}

func TestValidateBatch_OneBadQuestionRejectsWholeBatch(t *testing.T) {
	bad := goodQuestion()
	bad.Explanation = ""
	out := batchOutput{Questions: []questionOutput{goodQuestion(), bad, goodQuestion()}}
	if err := validateBatch(out); err == nil {
		t.Error("a single invalid question must reject the whole batch")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  \n```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(stripCodeFence(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
