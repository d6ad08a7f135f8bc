package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarev/askfolio/internal/storage"
)

// AdminDeps holds dependencies for the admin handler.
type AdminDeps struct {
	Store *storage.Store
	Token string
}

// NewAdminHandler builds the bearer-authed telemetry router.
func NewAdminHandler(deps AdminDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(BearerAuth(deps.Token))

	r.Get("/transcripts", handleListTranscripts(deps))
	r.Get("/transcripts/{id}", handleGetTranscript(deps))
	r.Delete("/transcripts/{id}", handleDeleteTranscript(deps))
	r.Post("/transcripts/{id}/feedback", handleFeedback(deps))
	r.Get("/stats", handleStats(deps))

	return r
}

func handleListTranscripts(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseIntParam(r, "limit", 20, 100)
		offset := parseIntParam(r, "offset", 0, 0)

		transcripts, err := deps.Store.ListTranscripts(limit, offset)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to list transcripts: %v", err)
			return
		}

		if transcripts == nil {
			transcripts = []storage.Transcript{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transcripts)
	}
}

func handleGetTranscript(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		tr, err := deps.Store.GetTranscript(id)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found", "transcript not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to get transcript: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tr)
	}
}

func handleDeleteTranscript(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := deps.Store.DeleteTranscript(id)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found", "transcript not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to delete transcript: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
	}
}

// FeedbackRequest is the owner's rating of a recorded exchange.
type FeedbackRequest struct {
	Score int    `json:"score"` // 1 (bad answer) to 5 (good answer)
	Notes string `json:"notes"`
}

func handleFeedback(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if req.Score < 1 || req.Score > 5 {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "score must be between 1 and 5")
			return
		}

		err := deps.Store.UpdateFeedback(id, req.Score, req.Notes)
		if errors.Is(err, storage.ErrNotFound) {
			httpError(w, http.StatusNotFound, "not_found", "transcript not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to save feedback: %v", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}
}

func handleStats(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.Store.IntentStats()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to compute stats: %v", err)
			return
		}

		if stats == nil {
			stats = []storage.IntentCount{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

func parseIntParam(r *http.Request, key string, defaultVal, maxVal int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	if maxVal > 0 && v > maxVal {
		return maxVal
	}
	return v
}
