package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/foxseedlab/kikitorin/internal/fetch"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
)

type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher() fetch.Fetcher {
	return &HTTPFetcher{client: &http.Client{}}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w: %w", transcriber.ErrTransport, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if !isHTTPSuccessStatus(resp.StatusCode) {
		return nil, fmt.Errorf("fetch: %w: status %d", transcriber.ErrTransport, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w: %w", transcriber.ErrTransport, err)
	}
	return body, nil
}

func isHTTPSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
