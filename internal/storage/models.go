package storage

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Transcript is one recorded chat exchange: the visitor's message and
// what the agent answered. Stored for the owner's telemetry only; the
// agent never reads transcripts back.
type Transcript struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Message       string    `json:"message"`
	Intent        string    `json:"intent"`
	Confidence    int       `json:"confidence"`
	Reply         string    `json:"reply"`
	Actions       string    `json:"actions"` // JSON array stored as text
	FeedbackScore int       `json:"feedback_score"`
	FeedbackNotes string    `json:"feedback_notes"`
}

// Job is one queue entry for background work (currently only
// transcript_log).
type Job struct {
	ID          string
	Type        string
	PayloadJSON string
	Status      string // "pending", "running", "completed", "failed"
	Attempts    int
	MaxAttempts int
	RunAfter    time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastError   string
}

// IntentCount is one row of the intent frequency report.
type IntentCount struct {
	Intent string `json:"intent"`
	Count  int    `json:"count"`
}
