package storage

import (
	"context"

	"github.com/foxseedlab/kikitorin/internal/config"
	"github.com/foxseedlab/kikitorin/internal/storage"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (storage.ObjectStore, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewS3Store(context.Background(), S3Config{
			AccessKeyID:     c.AWSAccessKeyID,
			SecretAccessKey: c.AWSSecretAccessKey,
			Region:          c.AWSRegion,
			Bucket:          c.AWSS3Bucket,
		})
	})
}
