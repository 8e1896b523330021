package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/gate"
	"github.com/realnamesareboring/certifai/internal/llm"
)

func userMsg(content string) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: content}}
}

func TestChat_InDomainMessageAnswered(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("An availability zone is an isolated datacenter location."),
	})
	svc := NewService(mock, gate.NewTracker(), DefaultConfig())

	result, err := svc.Chat(context.Background(), Input{
		ConversationID: "c1",
		Messages:       userMsg("What is an Azure availability zone?"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Refused {
		t.Fatal("in-domain message must not be refused")
	}
	if result.Message == "" {
		t.Fatal("expected a tutor reply")
	}
	req := mock.Calls[0]
	if req.Schema != nil {
		t.Error("chat requests are free-form; no schema expected")
	}
}

func TestChat_OffTopicRefusedWithoutModelCall(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, gate.NewTracker(), DefaultConfig())

	result, err := svc.Chat(context.Background(), Input{
		ConversationID: "c1",
		Messages:       userMsg("What's the weather like today?"),
	})
	if err != nil {
		t.Fatalf("refusal must not be an error: %v", err)
	}
	if !result.Refused {
		t.Fatal("off-topic message must be refused")
	}
	if result.Message != RefusalMessage {
		t.Errorf("refusal must be the fixed string, got %q", result.Message)
	}
	if mock.CallCount() != 0 {
		t.Errorf("refused messages must not reach the model, got %d calls", mock.CallCount())
	}
}

func TestChat_FollowUpAllowedAfterAnchor(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("reply one")},
		llm.MockResponse{Content: json.RawMessage("reply two")},
	)
	svc := NewService(mock, gate.NewTracker(), DefaultConfig())

	if _, err := svc.Chat(context.Background(), Input{
		ConversationID: "c1",
		Messages:       userMsg("Explain IaaS versus PaaS."),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Vague follow-up carries no keyword but the conversation is anchored.
	result, err := svc.Chat(context.Background(), Input{
		ConversationID: "c1",
		Messages:       userMsg("Can you explain that more simply?"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Refused {
		t.Fatal("anchored conversation must accept follow-ups")
	}
}

func TestChat_NoUserMessage(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), gate.NewTracker(), DefaultConfig())

	_, err := svc.Chat(context.Background(), Input{ConversationID: "c1"})
	if !errors.Is(err, ErrNoMessages) {
		t.Fatalf("expected ErrNoMessages, got %v", err)
	}
}

func TestChat_NilProviderSurfacesNotConfigured(t *testing.T) {
	svc := NewService(nil, gate.NewTracker(), DefaultConfig())

	_, err := svc.Chat(context.Background(), Input{
		ConversationID: "c1",
		Messages:       userMsg("Tell me about Azure Functions."),
	})
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestChat_StyleAdaptsSystemPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	svc := NewService(mock, gate.NewTracker(), DefaultConfig())

	style := &analysis.StyleProfile{
		Tone:               "formal",
		Complexity:         "technical",
		ExplanationStyle:   "step-by-step",
		LearningPreference: "structured",
	}
	if _, err := svc.Chat(context.Background(), Input{
		ConversationID:  "c1",
		CertificationID: "AZ-900",
		Messages:        userMsg("Walk me through Azure Monitor."),
		Style:           style,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system := mock.Calls[0].System
	for _, want := range []string{"AZ-900", "numbered steps", "professional"} {
		if !strings.Contains(system, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestBuildChatSystemPrompt_NilStyle(t *testing.T) {
	prompt := buildChatSystemPrompt("", nil)
	if strings.Contains(prompt, "Adapt your replies") {
		t.Error("nil style must not add adaptation instructions")
	}
	if prompt != tutorBasePrompt {
		t.Errorf("unexpected base prompt: %q", prompt)
	}
}
