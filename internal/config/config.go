package config

import (
	"fmt"
)

// Provider selection values.
const (
	ProviderBatch     = "batch"
	ProviderStreaming = "streaming"
)

type Config struct {
	Env                string
	Provider           string
	TranscribeLanguage string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	AWSS3Bucket        string
	AzureSpeechKey     string
	AzureSpeechHost    string
	TranscodeWorkers   int
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	switch c.Provider {
	case ProviderBatch:
		for _, req := range c.batchFieldChecks() {
			if req.value == "" {
				return fmt.Errorf("%s is required when PROVIDER=%s", req.name, ProviderBatch)
			}
		}
	case ProviderStreaming:
		for _, req := range c.streamingFieldChecks() {
			if req.value == "" {
				return fmt.Errorf("%s is required when PROVIDER=%s", req.name, ProviderStreaming)
			}
		}
	default:
		return fmt.Errorf("PROVIDER must be %q or %q, got %q", ProviderBatch, ProviderStreaming, c.Provider)
	}
	if c.TranscodeWorkers <= 0 {
		return fmt.Errorf("TRANSCODE_WORKERS must be positive, got %d", c.TranscodeWorkers)
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "PROVIDER", value: c.Provider},
		{name: "TRANSCRIBE_LANGUAGE", value: c.TranscribeLanguage},
	}
}

func (c *Config) batchFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "AWS_ACCESS_KEY_ID", value: c.AWSAccessKeyID},
		{name: "AWS_SECRET_ACCESS_KEY", value: c.AWSSecretAccessKey},
		{name: "AWS_REGION", value: c.AWSRegion},
		{name: "AWS_S3_BUCKET", value: c.AWSS3Bucket},
	}
}

func (c *Config) streamingFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "AZURE_SPEECH_KEY", value: c.AzureSpeechKey},
		{name: "AZURE_SPEECH_HOST", value: c.AzureSpeechHost},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
