package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/chat"
	"github.com/realnamesareboring/certifai/internal/config"
	"github.com/realnamesareboring/certifai/internal/gate"
	"github.com/realnamesareboring/certifai/internal/llm"
	"github.com/realnamesareboring/certifai/internal/quizgen"
)

func newTestServer(provider llm.Provider) *Server {
	return NewServer(
		config.ServerConfig{Host: "127.0.0.1", Port: 0},
		config.CORSConfig{AllowedOrigins: []string{"*"}},
		quizgen.New(provider, quizgen.DefaultConfig()),
		chat.NewService(provider, gate.NewTracker(), chat.DefaultConfig()),
		analysis.NewService(provider, analysis.DefaultConfig()),
		nil,
	)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return resp.Data
}

func validBatchJSON(n int) json.RawMessage {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{
			"question": "Scenario %d: which service model fits?",
			"options": ["IaaS", "PaaS", "SaaS", "On-premises"],
			"correct": 1,
			"explanation": "PaaS removes OS management from the customer.",
			"domain": "Cloud Concepts"
		}`, i+1))
	}
	return json.RawMessage(fmt.Sprintf(`{"questions":[%s]}`, strings.Join(items, ",")))
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["status"] != "healthy" {
		t.Errorf("unexpected health payload: %v", data)
	}
}

func TestHandleGenerateQuiz_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON(3)})
	srv := newTestServer(mock)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/generate", map[string]any{
		"certificationId": "AZ-900",
		"domain":          "Cloud Concepts",
		"questionCount":   3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	questions := data["questions"].([]any)
	if len(questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(questions))
	}
	meta := data["metadata"].(map[string]any)
	if meta["fallback"] != false {
		t.Errorf("expected fallback=false, got %v", meta["fallback"])
	}
	if meta["returned"] != float64(3) {
		t.Errorf("expected returned=3, got %v", meta["returned"])
	}
}

func TestHandleGenerateQuiz_UnknownCertification(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/generate", map[string]any{
		"certificationId": "XX-000",
		"domain":          "Cloud Concepts",
		"questionCount":   3,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleGenerateQuiz_MissingFields(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/generate", map[string]any{
		"domain": "Cloud Concepts",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing certificationId, got %d", rec.Code)
	}
}

func TestHandleGenerateQuiz_ProviderFailureServesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	srv := newTestServer(mock)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/generate", map[string]any{
		"certificationId": "AZ-900",
		"domain":          "Cloud Concepts",
		"questionCount":   3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("fallback path must answer 200, got %d", rec.Code)
	}

	data := decodeData(t, rec)
	meta := data["metadata"].(map[string]any)
	if meta["fallback"] != true {
		t.Error("expected fallback metadata flag")
	}
	if len(data["questions"].([]any)) == 0 {
		t.Error("fallback batch must not be empty")
	}
}

func TestHandleScoreQuiz(t *testing.T) {
	srv := newTestServer(nil)

	questions := []map[string]any{}
	answers := []any{}
	for i := 0; i < 4; i++ {
		questions = append(questions, map[string]any{
			"id":          i + 1,
			"question":    "q",
			"options":     []string{"A", "B", "C", "D"},
			"correct":     0,
			"explanation": "e",
			"domain":      "Cloud Concepts",
		})
		answers = append(answers, 0)
	}
	answers[3] = 2 // one wrong

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/score", map[string]any{
		"certificationId": "AZ-900",
		"domain":          "Cloud Concepts",
		"questions":       questions,
		"answers":         answers,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	metrics := data["metrics"].(map[string]any)
	if metrics["percentage"] != float64(75) {
		t.Errorf("expected 75%%, got %v", metrics["percentage"])
	}
	if metrics["tier"] != "Good" {
		t.Errorf("expected Good, got %v", metrics["tier"])
	}
	rec2 := data["recommendation"].(map[string]any)
	if rec2["focusAreas"].([]any)[0] != "Cloud Concepts" {
		t.Errorf("expected Cloud Concepts focus area, got %v", rec2["focusAreas"])
	}
}

func TestHandleScoreQuiz_Empty(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/quiz/score", map[string]any{
		"questions": []any{},
		"answers":   []any{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleChat_RefusalIs200(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chat", map[string]any{
		"conversationId": "c1",
		"messages": []map[string]string{
			{"role": "user", "content": "What's the weather like today?"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refusal must be 200, got %d", rec.Code)
	}

	data := decodeData(t, rec)
	if data["refused"] != true {
		t.Error("expected refused flag")
	}
	if data["message"] != chat.RefusalMessage {
		t.Errorf("expected fixed refusal string, got %v", data["message"])
	}
}

func TestHandleChat_NoProviderIs503(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chat", map[string]any{
		"conversationId": "c1",
		"messages": []map[string]string{
			{"role": "user", "content": "Explain Azure availability zones."},
		},
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a provider, got %d", rec.Code)
	}
}

func TestHandleChat_Answered(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Zones are isolated datacenter locations within a region."),
	})
	srv := newTestServer(mock)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/chat", map[string]any{
		"conversationId": "c1",
		"messages": []map[string]string{
			{"role": "user", "content": "Explain Azure availability zones."},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := decodeData(t, rec)
	if data["message"] == "" {
		t.Error("expected a tutor reply")
	}
	if data["refused"] == true {
		t.Error("in-domain message must not be refused")
	}
}

func TestHandleStyleAnalysis_TooShort(t *testing.T) {
	srv := newTestServer(llm.NewMockProvider())

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/analysis/style", map[string]any{
		"textSample": "hi",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for short sample, got %d", rec.Code)
	}
}

func TestHandleStyleAnalysis_FallbackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	srv := newTestServer(mock)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/analysis/style", map[string]any{
		"textSample": "I prefer short answers with concrete examples.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("fallback path must answer 200, got %d", rec.Code)
	}

	data := decodeData(t, rec)
	if data["fallback"] != true {
		t.Error("expected fallback flag")
	}
	style := data["style"].(map[string]any)
	if style["tone"] != "mixed" {
		t.Errorf("expected neutral tone, got %v", style["tone"])
	}
}

func TestHandleContextAnalysis_KeywordFallback(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/analysis/context", map[string]any{
		"messages": []map[string]string{
			{"role": "user", "content": "Is Cosmos DB a document database or a key-value store?"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := decodeData(t, rec)
	if data["suggestedCertification"] != "DP-900" {
		t.Errorf("expected DP-900, got %v", data["suggestedCertification"])
	}
	if data["fallback"] != true {
		t.Error("expected fallback flag")
	}
}

func TestHandleListCertifications(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/certifications", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := decodeData(t, rec)
	if data["total"] != float64(4) {
		t.Errorf("expected 4 certifications, got %v", data["total"])
	}
}

func TestHandleGetCertification(t *testing.T) {
	srv := newTestServer(nil)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/certifications/az-900", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup must be case-insensitive, got %d", rec.Code)
	}
	data := decodeData(t, rec)
	if data["id"] != "AZ-900" {
		t.Errorf("expected AZ-900, got %v", data["id"])
	}

	rec = doJSON(t, srv, http.MethodGet, "/api/v1/certifications/XX-000", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown certification, got %d", rec.Code)
	}
}
