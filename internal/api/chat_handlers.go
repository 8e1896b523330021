package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/chat"
	"github.com/realnamesareboring/certifai/internal/llm"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func toLLMMessages(msgs []chatMessage) []llm.Message {
	out := make([]llm.Message, len(msgs))
	for i, m := range msgs {
		out[i] = llm.Message{Role: llm.Role(m.Role), Content: m.Content}
	}
	return out
}

type chatRequest struct {
	Messages        []chatMessage          `json:"messages"`
	ConversationID  string                 `json:"conversationId"`
	CertificationID string                 `json:"certificationId"`
	StyleProfile    *analysis.StyleProfile `json:"styleProfile"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.chat.Chat(r.Context(), chat.Input{
		ConversationID:  req.ConversationID,
		Messages:        toLLMMessages(req.Messages),
		CertificationID: req.CertificationID,
		Style:           req.StyleProfile,
	})
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNoMessages):
			respondError(w, http.StatusBadRequest, "validation_error", "messages must contain a user message")
		case errors.Is(err, llm.ErrNotConfigured):
			respondError(w, http.StatusServiceUnavailable, "llm_unavailable", "no LLM provider credential is configured")
		default:
			slog.Error("chat failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "tutor is temporarily unavailable")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type styleAnalysisRequest struct {
	TextSample string `json:"textSample"`
}

func (s *Server) handleStyleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req styleAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result, err := s.analysis.AnalyzeStyle(r.Context(), req.TextSample)
	if err != nil {
		if errors.Is(err, analysis.ErrSampleTooShort) {
			respondError(w, http.StatusBadRequest, "validation_error",
				"textSample must be at least 15 characters")
			return
		}
		slog.Error("style analysis failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to analyze style")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type contextAnalysisRequest struct {
	Messages []chatMessage `json:"messages"`
}

func (s *Server) handleContextAnalysis(w http.ResponseWriter, r *http.Request) {
	var req contextAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	result := s.analysis.AnalyzeContext(r.Context(), toLLMMessages(req.Messages))
	respondJSON(w, http.StatusOK, result)
}
