package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/kikitorin/internal/config"
)

type envConfig struct {
	Env                string `env:"ENV" envDefault:"production"`
	Provider           string `env:"PROVIDER" envDefault:"batch"`
	TranscribeLanguage string `env:"TRANSCRIBE_LANGUAGE" envDefault:"en-US"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	AWSRegion          string `env:"AWS_REGION"`
	AWSS3Bucket        string `env:"AWS_S3_BUCKET"`
	AzureSpeechKey     string `env:"AZURE_SPEECH_KEY"`
	AzureSpeechHost    string `env:"AZURE_SPEECH_HOST" envDefault:"speech.platform.bing.com"`
	TranscodeWorkers   int    `env:"TRANSCODE_WORKERS" envDefault:"2"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                raw.Env,
		Provider:           raw.Provider,
		TranscribeLanguage: raw.TranscribeLanguage,
		AWSAccessKeyID:     raw.AWSAccessKeyID,
		AWSSecretAccessKey: raw.AWSSecretAccessKey,
		AWSRegion:          raw.AWSRegion,
		AWSS3Bucket:        raw.AWSS3Bucket,
		AzureSpeechKey:     raw.AzureSpeechKey,
		AzureSpeechHost:    raw.AzureSpeechHost,
		TranscodeWorkers:   raw.TranscodeWorkers,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
