package audio

import (
	"github.com/foxseedlab/kikitorin/internal/audio"
	"github.com/foxseedlab/kikitorin/internal/config"
	"github.com/foxseedlab/kikitorin/internal/workpool"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*workpool.Pool, error) {
		c := do.MustInvoke[*config.Config](i)
		return workpool.New(c.TranscodeWorkers), nil
	})
	do.Provide(injector, func(i do.Injector) (audio.Transcoder, error) {
		pool := do.MustInvoke[*workpool.Pool](i)
		return NewMP3Transcoder(pool), nil
	})
}
