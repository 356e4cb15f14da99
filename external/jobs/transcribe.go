package jobs

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awstranscribe "github.com/aws/aws-sdk-go-v2/service/transcribe"
	transcribetypes "github.com/aws/aws-sdk-go-v2/service/transcribe/types"
	"github.com/aws/smithy-go"

	"github.com/foxseedlab/kikitorin/internal/jobs"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
)

type TranscribeConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// TranscribeService runs asynchronous jobs on the AWS Transcribe API.
type TranscribeService struct {
	client *awstranscribe.Client
}

func NewTranscribeService(ctx context.Context, cfg TranscribeConfig) (jobs.Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &TranscribeService{client: awstranscribe.NewFromConfig(awsCfg)}, nil
}

func (s *TranscribeService) Start(ctx context.Context, name, mediaURI, mediaFormat, languageCode string) error {
	_, err := s.client.StartTranscriptionJob(ctx, &awstranscribe.StartTranscriptionJobInput{
		TranscriptionJobName: aws.String(name),
		Media:                &transcribetypes.Media{MediaFileUri: aws.String(mediaURI)},
		MediaFormat:          transcribetypes.MediaFormat(mediaFormat),
		LanguageCode:         transcribetypes.LanguageCode(languageCode),
	})
	if err != nil {
		return classify("start transcription job", err)
	}
	return nil
}

func (s *TranscribeService) Status(ctx context.Context, name string) (jobs.Job, error) {
	out, err := s.client.GetTranscriptionJob(ctx, &awstranscribe.GetTranscriptionJobInput{
		TranscriptionJobName: aws.String(name),
	})
	if err != nil {
		return jobs.Job{}, classify("get transcription job", err)
	}
	tj := out.TranscriptionJob
	if tj == nil {
		return jobs.Job{}, fmt.Errorf("get transcription job: %w: empty response", transcriber.ErrProtocol)
	}
	job := jobs.Job{Name: name, Status: mapStatus(tj.TranscriptionJobStatus)}
	if tj.Transcript != nil && tj.Transcript.TranscriptFileUri != nil {
		job.TranscriptURI = *tj.Transcript.TranscriptFileUri
	}
	return job, nil
}

func mapStatus(s transcribetypes.TranscriptionJobStatus) jobs.Status {
	switch s {
	case transcribetypes.TranscriptionJobStatusCompleted:
		return jobs.StatusCompleted
	case transcribetypes.TranscriptionJobStatusFailed:
		return jobs.StatusFailed
	default:
		// QUEUED and IN_PROGRESS both mean the job has not settled yet.
		return jobs.StatusRunning
	}
}

// Credential rejections the API reports as error codes.
var authErrorCodes = map[string]bool{
	"UnrecognizedClientException":  true,
	"AccessDeniedException":        true,
	"InvalidSignatureException":    true,
	"IncompleteSignatureException": true,
	"NotAuthorizedException":       true,
}

func classify(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && authErrorCodes[apiErr.ErrorCode()] {
		return fmt.Errorf("%s: %w: %w", op, transcriber.ErrAuth, err)
	}
	return fmt.Errorf("%s: %w: %w", op, transcriber.ErrTransport, err)
}

var _ jobs.Service = (*TranscribeService)(nil)
