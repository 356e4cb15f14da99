package transcriber

import (
	"fmt"

	"github.com/foxseedlab/kikitorin/internal/audio"
	"github.com/foxseedlab/kikitorin/internal/config"
	"github.com/foxseedlab/kikitorin/internal/fetch"
	"github.com/foxseedlab/kikitorin/internal/jobs"
	"github.com/foxseedlab/kikitorin/internal/storage"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (transcriber.Provider, error) {
		c := do.MustInvoke[*config.Config](i)
		switch c.Provider {
		case config.ProviderBatch:
			store := do.MustInvoke[storage.ObjectStore](i)
			svc := do.MustInvoke[jobs.Service](i)
			fetcher := do.MustInvoke[fetch.Fetcher](i)
			return NewBatchProvider(store, svc, fetcher, c.TranscribeLanguage), nil
		case config.ProviderStreaming:
			tc := do.MustInvoke[audio.Transcoder](i)
			return NewStreamingProvider(tc, StreamingConfig{
				SubscriptionKey: c.AzureSpeechKey,
				Host:            c.AzureSpeechHost,
				Language:        c.TranscribeLanguage,
			}), nil
		default:
			return nil, fmt.Errorf("unknown provider %q", c.Provider)
		}
	})
}
