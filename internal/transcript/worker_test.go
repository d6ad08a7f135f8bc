package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mkarev/askfolio/internal/storage"
)

// fakeStore records calls; method behavior is overridable per test.
type fakeStore struct {
	jobs      []*storage.Job
	saved     []storage.Transcript
	completed []string
	failed    []string
	saveErr   error
}

func (f *fakeStore) ClaimNextJob(types []string) (*storage.Job, error) {
	if len(f.jobs) == 0 {
		return nil, nil
	}
	j := f.jobs[0]
	f.jobs = f.jobs[1:]
	return j, nil
}

func (f *fakeStore) CompleteJob(id string) error {
	f.completed = append(f.completed, id)
	return nil
}

func (f *fakeStore) FailJob(id string, errMsg string) error {
	f.failed = append(f.failed, id)
	return nil
}

func (f *fakeStore) SaveTranscript(tr storage.Transcript) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, tr)
	return nil
}

func transcriptJob(t *testing.T, id string) *storage.Job {
	t.Helper()
	payload, err := json.Marshal(storage.Transcript{
		ID:         id,
		CreatedAt:  time.Now().UTC(),
		Message:    "hi",
		Intent:     "greeting",
		Confidence: 60,
		Reply:      "Hey!",
	})
	if err != nil {
		t.Fatalf("marshaling payload: %v", err)
	}
	return &storage.Job{ID: "job-" + id, Type: JobType, PayloadJSON: string(payload)}
}

func TestRunOnce_ProcessesJob(t *testing.T) {
	store := &fakeStore{}
	store.jobs = append(store.jobs, transcriptJob(t, "tr-1"))
	w := NewWorker(store, time.Millisecond)

	processed, err := w.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if !processed {
		t.Fatal("expected a job to be processed")
	}
	if len(store.saved) != 1 || store.saved[0].ID != "tr-1" {
		t.Errorf("saved transcripts = %+v", store.saved)
	}
	if len(store.completed) != 1 || store.completed[0] != "job-tr-1" {
		t.Errorf("completed jobs = %v", store.completed)
	}
}

func TestRunOnce_EmptyQueue(t *testing.T) {
	w := NewWorker(&fakeStore{}, time.Millisecond)

	processed, err := w.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if processed {
		t.Error("expected no job to be processed")
	}
}

func TestRunOnce_SaveFailureFailsJob(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("disk full")}
	store.jobs = append(store.jobs, transcriptJob(t, "tr-2"))
	w := NewWorker(store, time.Millisecond)

	processed, err := w.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if !processed {
		t.Error("a claimed job counts as processed even on failure")
	}
	if len(store.failed) != 1 || store.failed[0] != "job-tr-2" {
		t.Errorf("failed jobs = %v", store.failed)
	}
	if len(store.completed) != 0 {
		t.Errorf("job should not complete on save failure: %v", store.completed)
	}
}

func TestRunOnce_BadPayloadFailsJob(t *testing.T) {
	store := &fakeStore{}
	store.jobs = append(store.jobs, &storage.Job{ID: "job-bad", Type: JobType, PayloadJSON: "{not json"})
	w := NewWorker(store, time.Millisecond)

	if _, err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if len(store.failed) != 1 {
		t.Errorf("failed jobs = %v", store.failed)
	}
}

func TestRunOnce_EmptyTranscriptIDRejected(t *testing.T) {
	store := &fakeStore{}
	store.jobs = append(store.jobs, &storage.Job{ID: "job-noid", Type: JobType, PayloadJSON: "{}"})
	w := NewWorker(store, time.Millisecond)

	if _, err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if len(store.failed) != 1 || store.failed[0] != "job-noid" {
		t.Errorf("failed jobs = %v", store.failed)
	}
	if len(store.saved) != 0 {
		t.Errorf("nothing should be saved: %+v", store.saved)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	w := NewWorker(&fakeStore{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
