package fetch

import (
	"github.com/foxseedlab/kikitorin/internal/fetch"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (fetch.Fetcher, error) {
		return NewHTTPFetcher(), nil
	})
}
