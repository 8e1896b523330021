package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/quizgen"
	"github.com/realnamesareboring/certifai/internal/scoring"
	"github.com/realnamesareboring/certifai/internal/store"
)

type generateQuizRequest struct {
	CertificationID string `json:"certificationId"`
	Domain          string `json:"domain"`
	QuestionCount   int    `json:"questionCount"`
}

type quizMetadata struct {
	CertificationID string `json:"certificationId"`
	Domain          string `json:"domain"`
	Requested       int    `json:"requested"`
	Returned        int    `json:"returned"`
	Fallback        bool   `json:"fallback"`
	Error           string `json:"error,omitempty"`
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.CertificationID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "certificationId is required")
		return
	}
	if req.Domain == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "domain is required")
		return
	}

	batch, err := s.generator.Generate(r.Context(), req.CertificationID, req.Domain, req.QuestionCount)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownCertification):
			respondError(w, http.StatusBadRequest, "unknown_certification", err.Error())
		case errors.Is(err, catalog.ErrUnknownDomain):
			respondError(w, http.StatusBadRequest, "unknown_domain", err.Error())
		case errors.Is(err, quizgen.ErrInvalidCount):
			respondError(w, http.StatusBadRequest, "validation_error", "questionCount must be positive")
		default:
			slog.Error("quiz generation failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to generate quiz")
		}
		return
	}

	s.recordQuizEvent(r, store.QuizEventData{
		Kind:            "generated",
		CertificationID: req.CertificationID,
		Domain:          req.Domain,
		QuestionCount:   len(batch.Questions),
		UsedFallback:    batch.UsedFallback,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions": batch.Questions,
		"metadata": quizMetadata{
			CertificationID: req.CertificationID,
			Domain:          req.Domain,
			Requested:       req.QuestionCount,
			Returned:        len(batch.Questions),
			Fallback:        batch.UsedFallback,
			Error:           batch.FallbackReason,
		},
	})
}

type scoreQuizRequest struct {
	CertificationID string             `json:"certificationId"`
	Domain          string             `json:"domain"`
	Questions       []quizgen.Question `json:"questions"`
	Answers         []*int             `json:"answers"`
}

func (s *Server) handleScoreQuiz(w http.ResponseWriter, r *http.Request) {
	var req scoreQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	metrics, analysis, err := scoring.Score(req.Questions, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrEmptySession):
			respondError(w, http.StatusBadRequest, "validation_error", "questions must not be empty")
		case errors.Is(err, scoring.ErrAnswerMismatch):
			respondError(w, http.StatusBadRequest, "validation_error", "answers length must match questions length")
		default:
			slog.Error("quiz scoring failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal_error", "failed to score quiz")
		}
		return
	}

	recommendation := scoring.Recommend(analysis, metrics)

	s.recordQuizEvent(r, store.QuizEventData{
		Kind:            "scored",
		CertificationID: req.CertificationID,
		Domain:          req.Domain,
		QuestionCount:   metrics.Total,
		Score:           metrics.Correct,
		Percentage:      metrics.Percentage,
	})

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"metrics":        metrics,
		"analysis":       analysis,
		"recommendation": recommendation,
	})
}

// recordQuizEvent appends an audit event; the response never waits on or
// fails because of the audit store.
func (s *Server) recordQuizEvent(r *http.Request, data store.QuizEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendQuizEvent(r.Context(), data); err != nil {
		slog.Warn("failed to record quiz event", "kind", data.Kind, "error", err)
	}
}
