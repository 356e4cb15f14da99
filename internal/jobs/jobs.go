package jobs

import "context"

type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Terminal reports whether the job has settled and will make no further
// progress.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Job is a point-in-time view of an asynchronous transcription job. The
// remote service owns all mutation; clients only read status.
type Job struct {
	Name   string
	Status Status
	// TranscriptURI points at the result document once the job completes.
	TranscriptURI string
}

// Service submits and inspects asynchronous transcription jobs.
type Service interface {
	Start(ctx context.Context, name, mediaURI, mediaFormat, languageCode string) error
	Status(ctx context.Context, name string) (Job, error)
}
