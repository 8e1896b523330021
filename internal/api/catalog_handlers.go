package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/realnamesareboring/certifai/internal/catalog"
)

func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	certs := catalog.All()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"certifications": certs,
		"total":          len(certs),
	})
}

func (s *Server) handleGetCertification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cert, err := catalog.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "not_found", "certification not found")
		return
	}

	respondJSON(w, http.StatusOK, cert)
}
