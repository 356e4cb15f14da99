package fetch

import "context"

// Fetcher retrieves the contents of a URL. The batch provider uses it to
// download result documents published by the transcription service.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
