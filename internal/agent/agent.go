// Package agent composes the classification, extraction, follow-up
// resolution, and reply generation stages into a single synchronous
// request/response cycle, decoupled from any transport. Every stage is
// a pure in-memory computation, so ProcessMessage is safe to call from
// any number of goroutines and always returns an answer, "I don't
// know" included.
package agent

import (
	"log/slog"

	"github.com/mkarev/askfolio/internal/intent"
	"github.com/mkarev/askfolio/internal/knowledge"
	"github.com/mkarev/askfolio/internal/reply"
)

// Context carries optional UI state supplied by the caller.
type Context struct {
	CurrentSection string   `json:"currentSection,omitempty"`
	ViewedProjects []string `json:"viewedProjects,omitempty"`
}

// Request is one inbound chat turn. History is caller-owned, ordered
// oldest to newest; the agent reads it but never mutates it.
type Request struct {
	Message string        `json:"message"`
	History []intent.Turn `json:"history,omitempty"`
	Context *Context      `json:"context,omitempty"`
}

// Response is the composed output of one turn, including the resolved
// intent and confidence for caller-side telemetry.
type Response struct {
	Reply       string         `json:"response"`
	Actions     []reply.Action `json:"actions,omitempty"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Intent      string         `json:"intent"`
	Confidence  int            `json:"confidence"`
}

// Agent is the assembled engine. Construct once and reuse.
type Agent struct {
	classifier *intent.Classifier
	generator  *reply.Generator
}

// New builds an Agent over the given knowledge base.
func New(kb *knowledge.Repository) *Agent {
	return &Agent{
		classifier: intent.NewClassifier(),
		generator:  reply.NewGenerator(kb),
	}
}

// NewWithParts wires an Agent from pre-built components, for tests that
// need a deterministic generator or a custom pattern table.
func NewWithParts(classifier *intent.Classifier, generator *reply.Generator) *Agent {
	return &Agent{classifier: classifier, generator: generator}
}

// ProcessMessage runs one full cycle: classify (entities included),
// resolve against history, generate, then merge context-derived
// actions.
func (a *Agent) ProcessMessage(req Request) Response {
	res := a.classifier.Recognize(req.Message)
	res = a.classifier.EnhanceWithHistory(res, req.History)

	generated := a.generator.Generate(res, req.Message)

	actions := a.contextualActions(generated.Actions, req.Context)

	slog.Debug("message processed",
		"intent", res.Intent,
		"confidence", res.Confidence,
		"actions", len(actions),
	)

	return Response{
		Reply:       generated.Text,
		Actions:     actions,
		Suggestions: generated.Suggestions,
		Intent:      res.Intent,
		Confidence:  res.Confidence,
	}
}

// contextualActions merges actions derived from the caller-supplied UI
// context into the generated set. It currently adds nothing: the hook
// exists so future context rules (e.g. suppressing a "view projects"
// action the visitor has already taken) have a single place to live.
func (a *Agent) contextualActions(actions []reply.Action, _ *Context) []reply.Action {
	return actions
}
