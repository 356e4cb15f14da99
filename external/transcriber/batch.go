package transcriber

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/foxseedlab/kikitorin/internal/fetch"
	"github.com/foxseedlab/kikitorin/internal/jobs"
	"github.com/foxseedlab/kikitorin/internal/storage"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
)

const (
	batchMediaFormat  = "mp3"
	batchObjectSuffix = ".mp3"
	batchPollInterval = time.Second
	batchPollBudget   = 60 * time.Second
)

// BatchProvider stages a clip in object storage, runs an asynchronous
// transcription job against it and polls until the job settles. Once the
// clip has been uploaded it is deleted again on every exit path.
type BatchProvider struct {
	store    storage.ObjectStore
	jobs     jobs.Service
	fetcher  fetch.Fetcher
	language string

	pollInterval time.Duration
	pollBudget   time.Duration
}

func NewBatchProvider(store storage.ObjectStore, svc jobs.Service, fetcher fetch.Fetcher, language string) *BatchProvider {
	return &BatchProvider{
		store:        store,
		jobs:         svc,
		fetcher:      fetcher,
		language:     language,
		pollInterval: batchPollInterval,
		pollBudget:   batchPollBudget,
	}
}

func (p *BatchProvider) Transcribe(ctx context.Context, audio []byte) (string, bool, error) {
	if len(audio) == 0 {
		return "", false, fmt.Errorf("%w: empty audio payload", transcriber.ErrProtocol)
	}

	key := randomToken() + batchObjectSuffix
	slog.Debug("staging clip for batch transcription", "key", key, "bytes", len(audio))
	if err := p.store.Put(ctx, key, audio); err != nil {
		return "", false, fmt.Errorf("stage clip: %w", err)
	}
	defer func() {
		// The staged clip must go away even when the attempt failed or the
		// caller's context is already done.
		if err := p.store.Delete(context.WithoutCancel(ctx), key); err != nil {
			slog.Error("failed to delete staged clip", "key", key, "error", err)
		}
	}()

	jobName := randomToken()
	if err := p.jobs.Start(ctx, jobName, p.store.ObjectURL(key), batchMediaFormat, p.language); err != nil {
		return "", false, fmt.Errorf("start job: %w", err)
	}
	slog.Debug("batch job submitted", "job", jobName)

	job, err := p.awaitJob(ctx, jobName)
	if err != nil {
		return "", false, err
	}
	if job.Status != jobs.StatusCompleted || job.TranscriptURI == "" {
		slog.Info("batch job produced no transcript", "job", jobName, "status", job.Status)
		return "", false, nil
	}

	text, err := p.fetchTranscript(ctx, job.TranscriptURI)
	if err != nil {
		return "", false, err
	}
	return transcriber.Normalize(text), true, nil
}

// awaitJob checks job status immediately and then once per poll interval
// until the job settles or the poll budget is exhausted.
func (p *BatchProvider) awaitJob(ctx context.Context, name string) (jobs.Job, error) {
	deadline := time.Now().Add(p.pollBudget)
	for {
		job, err := p.jobs.Status(ctx, name)
		if err != nil {
			return jobs.Job{}, fmt.Errorf("job status: %w", err)
		}
		if job.Status.Terminal() {
			return job, nil
		}
		if time.Now().After(deadline) {
			return jobs.Job{}, fmt.Errorf("job %s still %s after %s: %w", name, job.Status, p.pollBudget, transcriber.ErrTimeout)
		}
		select {
		case <-time.After(p.pollInterval):
		case <-ctx.Done():
			return jobs.Job{}, ctx.Err()
		}
	}
}

// transcriptDocument is the result JSON the job service publishes.
type transcriptDocument struct {
	Results struct {
		Transcripts []struct {
			Transcript string `json:"transcript"`
		} `json:"transcripts"`
	} `json:"results"`
}

func (p *BatchProvider) fetchTranscript(ctx context.Context, uri string) (string, error) {
	body, err := p.fetcher.Fetch(ctx, uri)
	if err != nil {
		return "", fmt.Errorf("fetch result document: %w", err)
	}
	var doc transcriptDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parse result document: %w: %w", transcriber.ErrProtocol, err)
	}
	if len(doc.Results.Transcripts) == 0 {
		return "", fmt.Errorf("%w: result document has no transcripts", transcriber.ErrProtocol)
	}
	return doc.Results.Transcripts[0].Transcript, nil
}

// randomToken returns a fresh 128-bit hex token. Every attempt allocates its
// own tokens so concurrent attempts never collide.
func randomToken() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

var _ transcriber.Provider = (*BatchProvider)(nil)
