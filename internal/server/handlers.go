package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gramseva/matadar/internal/models"
	"github.com/gramseva/matadar/internal/store"
	"github.com/gramseva/matadar/internal/translit"
	"go.uber.org/zap"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var form models.SearchForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("last_name", form.LastName),
		zap.String("voter_id", form.VoterID),
	)
	response, err := s.engine.PerformSearch(r.Context(), &form)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGetVoter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.storage.GetVoter(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "voter not found")
			return
		}
		s.logger.Error("voter fetch failed", zap.String("voter_id", id), zap.Error(err))
		s.respondError(w, http.StatusBadGateway, "store unreachable")
		return
	}
	s.respondJSON(w, http.StatusOK, models.NewSearchResult(rec))
}

func (s *Server) handleTransliterate(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"input":      text,
		"output":     s.engine.Transliterate(text),
		"devanagari": translit.ContainsDevanagari(text),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"dictionary_entries": s.engine.DictionarySize(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
