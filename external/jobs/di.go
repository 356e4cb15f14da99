package jobs

import (
	"context"

	"github.com/foxseedlab/kikitorin/internal/config"
	"github.com/foxseedlab/kikitorin/internal/jobs"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (jobs.Service, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewTranscribeService(context.Background(), TranscribeConfig{
			AccessKeyID:     c.AWSAccessKeyID,
			SecretAccessKey: c.AWSSecretAccessKey,
			Region:          c.AWSRegion,
		})
	})
}
