// Package transcript persists chat exchanges in the background so the
// chat handler never blocks on disk. The handler enqueues a
// transcript_log job; the worker drains the queue and writes the row,
// with the queue's retry/backoff covering transient failures.
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkarev/askfolio/internal/storage"
)

// JobType is the queue type this worker consumes.
const JobType = "transcript_log"

// JobStore abstracts the storage operations the worker needs.
// Implemented by storage.Store.
type JobStore interface {
	ClaimNextJob(types []string) (*storage.Job, error)
	CompleteJob(id string) error
	FailJob(id string, errMsg string) error
	SaveTranscript(tr storage.Transcript) error
}

// Worker processes transcript_log jobs from the SQLite job queue.
type Worker struct {
	store  JobStore
	poll   time.Duration
	logger *slog.Logger
}

// NewWorker creates a Worker. If pollInterval is <= 0, it defaults to
// 500ms.
func NewWorker(store JobStore, pollInterval time.Duration) *Worker {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}
	return &Worker{
		store:  store,
		poll:   pollInterval,
		logger: slog.Default(),
	}
}

// Run polls for jobs until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		done, err := w.RunOnce(ctx)
		if err != nil {
			w.logger.Error("worker iteration failed", "error", err)
		}
		if done {
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.poll):
		}
	}
}

// RunOnce claims and processes a single transcript_log job. Returns
// true if a job was processed (regardless of success/failure).
func (w *Worker) RunOnce(_ context.Context) (bool, error) {
	job, err := w.store.ClaimNextJob([]string{JobType})
	if err != nil {
		return false, fmt.Errorf("claiming job: %w", err)
	}
	if job == nil {
		return false, nil
	}

	if err := w.processJob(job); err != nil {
		w.logger.Warn("job failed", "job_id", job.ID, "error", err)
		if failErr := w.store.FailJob(job.ID, err.Error()); failErr != nil {
			w.logger.Error("failed to mark job as failed", "job_id", job.ID, "error", failErr)
		}
		return true, nil
	}

	if err := w.store.CompleteJob(job.ID); err != nil {
		return true, fmt.Errorf("completing job %s: %w", job.ID, err)
	}
	return true, nil
}

func (w *Worker) processJob(job *storage.Job) error {
	var tr storage.Transcript
	if err := json.Unmarshal([]byte(job.PayloadJSON), &tr); err != nil {
		return fmt.Errorf("parsing payload: %w", err)
	}
	if tr.ID == "" {
		return fmt.Errorf("payload missing transcript id")
	}
	if err := w.store.SaveTranscript(tr); err != nil {
		return fmt.Errorf("saving transcript %s: %w", tr.ID, err)
	}
	return nil
}
