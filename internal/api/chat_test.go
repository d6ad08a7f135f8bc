package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mkarev/askfolio/internal/agent"
	"github.com/mkarev/askfolio/internal/knowledge"
	"github.com/mkarev/askfolio/internal/storage"
	"github.com/mkarev/askfolio/internal/transcript"
)

func newTestPublicDeps(t *testing.T) PublicDeps {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("knowledge.Default: %v", err)
	}
	store, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return PublicDeps{
		Agent:     agent.New(kb),
		Knowledge: kb,
		Store:     store,
	}
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := NewPublicHandler(newTestPublicDeps(t))

	rec := doRequest(t, h, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestChat_Greeting(t *testing.T) {
	deps := newTestPublicDeps(t)
	h := NewPublicHandler(deps)

	rec := doRequest(t, h, "POST", "/api/chat", `{"message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp agent.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if resp.Intent != "greeting" {
		t.Errorf("intent = %q, want greeting", resp.Intent)
	}
	if resp.Reply == "" {
		t.Error("empty reply")
	}
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	h := NewPublicHandler(newTestPublicDeps(t))

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		rec := doRequest(t, h, "POST", "/api/chat", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestChat_InvalidJSON(t *testing.T) {
	h := NewPublicHandler(newTestPublicDeps(t))

	rec := doRequest(t, h, "POST", "/api/chat", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestChat_EnqueuesTranscriptJob(t *testing.T) {
	deps := newTestPublicDeps(t)
	h := NewPublicHandler(deps)

	rec := doRequest(t, h, "POST", "/api/chat", `{"message":"What is InvoTrek?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	// Drain the queue the way the worker does and verify the payload.
	w := transcript.NewWorker(deps.Store, time.Millisecond)
	processed, err := w.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if !processed {
		t.Fatal("expected a queued transcript job")
	}

	transcripts, err := deps.Store.ListTranscripts(10, 0)
	if err != nil {
		t.Fatalf("ListTranscripts: %v", err)
	}
	if len(transcripts) != 1 {
		t.Fatalf("expected 1 transcript, got %d", len(transcripts))
	}
	tr := transcripts[0]
	if tr.Message != "What is InvoTrek?" || tr.Intent != "specific_project" {
		t.Errorf("transcript = %+v", tr)
	}
	if !strings.Contains(tr.Actions, "show_project") {
		t.Errorf("actions JSON should carry the show_project action: %s", tr.Actions)
	}
}

func TestChat_NilStoreStillAnswers(t *testing.T) {
	deps := newTestPublicDeps(t)
	deps.Store = nil
	h := NewPublicHandler(deps)

	rec := doRequest(t, h, "POST", "/api/chat", `{"message":"hello"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 without a store", rec.Code)
	}
}

func TestKnowledgeEndpoints(t *testing.T) {
	h := NewPublicHandler(newTestPublicDeps(t))

	t.Run("profile", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/profile", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var p knowledge.Profile
		if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
			t.Fatalf("parsing profile: %v", err)
		}
		if p.Name == "" {
			t.Error("empty profile name")
		}
	})

	t.Run("projects", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/projects", "")
		var projects []knowledge.Project
		if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil {
			t.Fatalf("parsing projects: %v", err)
		}
		if len(projects) == 0 {
			t.Error("no projects returned")
		}
	})

	t.Run("project by id", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/projects/invotrek", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var p knowledge.Project
		if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
			t.Fatalf("parsing project: %v", err)
		}
		if p.ID != "invotrek" {
			t.Errorf("id = %q, want invotrek", p.ID)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/projects/nope", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("skills with category filter", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/skills?category=backend", "")
		var skills []knowledge.Skill
		if err := json.Unmarshal(rec.Body.Bytes(), &skills); err != nil {
			t.Fatalf("parsing skills: %v", err)
		}
		for _, s := range skills {
			if s.Category != "backend" {
				t.Errorf("skill %s leaked into backend filter", s.Name)
			}
		}
	})

	t.Run("skills bogus category returns empty array", func(t *testing.T) {
		rec := doRequest(t, h, "GET", "/api/skills?category=nope", "")
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("body = %s, want []", body)
		}
	})
}

func TestResume_NotConfigured(t *testing.T) {
	h := NewPublicHandler(newTestPublicDeps(t))

	rec := doRequest(t, h, "GET", "/api/resume", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 without a resume", rec.Code)
	}
}
