// Package api exposes the agent over HTTP (chi) and MCP. The public
// surface serves the portfolio site UI; the admin surface, gated by a
// bearer token, serves the owner's telemetry.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/knowledge"
	"github.com/mkarev/askfolio/internal/resume"
	"github.com/mkarev/askfolio/internal/storage"
	"github.com/mkarev/askfolio/internal/transcript"
)

const maxChatBodySize = 64 << 10 // 64KB

// PublicDeps holds dependencies for the public handler.
type PublicDeps struct {
	Agent     *agent.Agent
	Knowledge *knowledge.Repository
	Store     *storage.Store // optional; if nil, transcripts are not recorded
	Resume    *resume.Resume // optional; if nil, /resume returns 404
}

// NewPublicHandler builds the unauthenticated router: chat, the
// read-only knowledge endpoints, and health.
func NewPublicHandler(deps PublicDeps) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", handleHealth)
	r.Post("/api/chat", handleChat(deps))
	r.Get("/api/profile", handleProfile(deps))
	r.Get("/api/projects", handleProjects(deps))
	r.Get("/api/projects/{id}", handleProject(deps))
	r.Get("/api/skills", handleSkills(deps))
	r.Get("/api/resume", handleResume(deps))

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleChat(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxChatBodySize)
		defer r.Body.Close()

		var req agent.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "message is required")
			return
		}

		resp := deps.Agent.ProcessMessage(req)

		if deps.Store != nil {
			if err := enqueueTranscript(deps.Store, req, resp); err != nil {
				// Telemetry never fails the chat.
				slog.Warn("failed to enqueue transcript", "error", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func enqueueTranscript(store *storage.Store, req agent.Request, resp agent.Response) error {
	actionsJSON := "[]"
	if len(resp.Actions) > 0 {
		b, err := json.Marshal(resp.Actions)
		if err != nil {
			return fmt.Errorf("marshaling actions: %w", err)
		}
		actionsJSON = string(b)
	}

	tr := storage.Transcript{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Message:    req.Message,
		Intent:     resp.Intent,
		Confidence: resp.Confidence,
		Reply:      resp.Reply,
		Actions:    actionsJSON,
	}
	payload, err := json.Marshal(tr)
	if err != nil {
		return fmt.Errorf("marshaling transcript payload: %w", err)
	}

	job := storage.Job{
		ID:          uuid.New().String(),
		Type:        transcript.JobType,
		PayloadJSON: string(payload),
	}
	return store.EnqueueJob(job)
}

func handleProfile(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deps.Knowledge.Profile())
	}
}

func handleProjects(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deps.Knowledge.Projects())
	}
}

func handleProject(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		project, ok := deps.Knowledge.FindProject(id)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found", "project not found")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(project)
	}
}

func handleSkills(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills := deps.Knowledge.Skills()
		if category := r.URL.Query().Get("category"); category != "" {
			skills = deps.Knowledge.SkillsByCategory(category)
		}
		if skills == nil {
			skills = []knowledge.Skill{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(skills)
	}
}

func handleResume(deps PublicDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Resume == nil || deps.Resume.Path() == "" {
			httpError(w, http.StatusNotFound, "not_found", "no resume configured")
			return
		}

		text, err := deps.Resume.Text()
		if errors.Is(err, os.ErrNotExist) {
			httpError(w, http.StatusNotFound, "not_found", "resume file not found")
			return
		}
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "failed to extract resume text: %v", err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, text)
	}
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	msg := fmt.Sprintf(format, args...)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"message": msg,
			"type":    errType,
		},
	})
}
