package analysis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/realnamesareboring/certifai/internal/llm"
)

const sample = "I learn best when someone walks me through a concrete example first."

func validStyleJSON() json.RawMessage {
	return json.RawMessage(`{
		"style": {
			"tone": "casual",
			"complexity": "simple",
			"explanationStyle": "examples",
			"learningPreference": "conversational"
		},
		"confidence": "high",
		"reasoning": "The sample explicitly asks for concrete examples."
	}`)
}

func TestAnalyzeStyle_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStyleJSON()})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.AnalyzeStyle(context.Background(), sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Fallback {
		t.Fatal("expected inferred profile, not fallback")
	}
	if result.Style.Tone != "casual" || result.Style.ExplanationStyle != "examples" {
		t.Errorf("unexpected profile: %+v", result.Style)
	}
	if result.Confidence != "high" {
		t.Errorf("expected high confidence, got %q", result.Confidence)
	}

	req := mock.Calls[0]
	if req.Schema != StyleSchema {
		t.Error("request must carry the shared style schema")
	}
}

func TestAnalyzeStyle_SampleTooShort(t *testing.T) {
	tests := []struct {
		name   string
		sample string
	}{
		{"ascii under minimum", "too short"},
		{"fourteen ascii chars", "fourteen chars"},
		// 6 runes but 18 bytes; length is counted in runes, not bytes.
		{"short multibyte sample", "クラウド入門"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: validStyleJSON()})
			svc := NewService(mock, DefaultConfig())

			_, err := svc.AnalyzeStyle(context.Background(), tt.sample)
			if err != ErrSampleTooShort {
				t.Fatalf("expected ErrSampleTooShort, got %v", err)
			}
			if mock.CallCount() != 0 {
				t.Errorf("short samples must not reach the model, got %d calls", mock.CallCount())
			}
		})
	}
}

func TestAnalyzeStyle_MultibyteSampleAtMinimum(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validStyleJSON()})
	svc := NewService(mock, DefaultConfig())

	// 15 runes of Japanese, well over 15 bytes either way.
	_, err := svc.AnalyzeStyle(context.Background(), "クラウドの勉強を始めたばかりです")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 model call, got %d", mock.CallCount())
	}
}

func TestAnalyzeStyle_ProviderErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.AnalyzeStyle(context.Background(), sample)
	if err != nil {
		t.Fatalf("provider failure must not surface as an error: %v", err)
	}
	if !result.Fallback {
		t.Fatal("expected fallback flag")
	}
	if result.Style != NeutralStyle() {
		t.Errorf("expected neutral defaults, got %+v", result.Style)
	}
	if result.Confidence != "low" {
		t.Errorf("fallback confidence should be low, got %q", result.Confidence)
	}
}

func TestAnalyzeStyle_EnumViolationFallsBack(t *testing.T) {
	bad := json.RawMessage(`{
		"style": {
			"tone": "sarcastic",
			"complexity": "simple",
			"explanationStyle": "examples",
			"learningPreference": "conversational"
		},
		"confidence": "high",
		"reasoning": "x"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.AnalyzeStyle(context.Background(), sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Fallback || result.Style != NeutralStyle() {
		t.Error("out-of-vocabulary tone must serve neutral defaults")
	}
}

func TestAnalyzeStyle_NilProviderFallsBack(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	result, err := svc.AnalyzeStyle(context.Background(), sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Fallback {
		t.Fatal("nil provider must serve the neutral fallback")
	}
}

func TestAnalyzeContext_HappyPath(t *testing.T) {
	good := json.RawMessage(`{
		"suggestedCertification": "SC-900",
		"confidence": "high",
		"reasoning": "Conversation centers on identity and Zero Trust.",
		"topics": ["Zero Trust", "conditional access"]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: good})
	svc := NewService(mock, DefaultConfig())

	result := svc.AnalyzeContext(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "How does conditional access fit into Zero Trust?"},
	})
	if result.Fallback {
		t.Fatal("expected model answer, not fallback")
	}
	if result.SuggestedCertification != "SC-900" {
		t.Errorf("expected SC-900, got %q", result.SuggestedCertification)
	}

	req := mock.Calls[0]
	if req.Schema != ContextSchema {
		t.Error("request must carry the shared context schema")
	}
}

func TestAnalyzeContext_UnknownCertificationFallsBack(t *testing.T) {
	bad := json.RawMessage(`{
		"suggestedCertification": "AWS-SAA",
		"confidence": "high",
		"reasoning": "x",
		"topics": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	svc := NewService(mock, DefaultConfig())

	result := svc.AnalyzeContext(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "Tell me about IaaS and PaaS with scalability and elasticity."},
	})
	if !result.Fallback {
		t.Fatal("a certification outside the catalog must trigger the keyword fallback")
	}
	if result.SuggestedCertification != "AZ-900" {
		t.Errorf("keyword classifier should pick AZ-900, got %q", result.SuggestedCertification)
	}
}

func TestAnalyzeContext_NilProviderUsesKeywordClassifier(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	result := svc.AnalyzeContext(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "We enforce multifactor authentication and conditional access."},
		{Role: llm.RoleAssistant, Content: "Microsoft Sentinel can correlate those sign-in alerts."},
		{Role: llm.RoleUser, Content: "And Zero Trust ties it together."},
	})
	if !result.Fallback {
		t.Fatal("expected keyword fallback")
	}
	if result.SuggestedCertification != "SC-900" {
		t.Errorf("expected SC-900 from keyword hits, got %q", result.SuggestedCertification)
	}
	if result.Confidence != "high" {
		t.Errorf("four or more hits should be high confidence, got %q", result.Confidence)
	}
	if len(result.Topics) == 0 {
		t.Error("expected matched topics to be reported")
	}
}

func TestClassifyByKeywords_EmptyConversation(t *testing.T) {
	result := classifyByKeywords(nil)

	if result.SuggestedCertification != "AZ-900" {
		t.Errorf("empty conversation should resolve to the first catalog entry, got %q",
			result.SuggestedCertification)
	}
	if result.Confidence != "low" {
		t.Errorf("expected low confidence, got %q", result.Confidence)
	}
	if len(result.Topics) != 0 {
		t.Errorf("expected no topics, got %v", result.Topics)
	}
	if !result.Fallback {
		t.Error("classifier output must carry the fallback flag")
	}
}

func TestClassifyByKeywords_Deterministic(t *testing.T) {
	msgs := []llm.Message{
		{Role: llm.RoleUser, Content: "Is Cosmos DB a document database or a key-value store?"},
	}
	first := classifyByKeywords(msgs)
	second := classifyByKeywords(msgs)

	if first.SuggestedCertification != "DP-900" {
		t.Errorf("expected DP-900, got %q", first.SuggestedCertification)
	}
	if first.SuggestedCertification != second.SuggestedCertification ||
		first.Confidence != second.Confidence {
		t.Error("classifier must be deterministic for identical input")
	}
}
