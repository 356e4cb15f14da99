package workpool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
)

func TestDo_BoundsConcurrency(t *testing.T) {
	pool := New(2)

	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			_, err := Do(context.Background(), pool, func() (struct{}, error) {
				n := inFlight.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				<-release
				inFlight.Add(-1)
				return struct{}{}, nil
			})
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}

	close(release)
	wg.Wait()
	if got := peak.Load(); got > 2 {
		t.Fatalf("expected at most 2 jobs in flight, saw %d", got)
	}
}

func TestDo_ReturnsResult(t *testing.T) {
	pool := New(1)
	got, err := Do(context.Background(), pool, func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 42 {
		t.Fatalf("unexpected result: %d", got)
	}
}

func TestDo_ContextCanceledWhileWaiting(t *testing.T) {
	pool := New(1)
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = Do(context.Background(), pool, func() (struct{}, error) {
			close(started)
			<-release
			return struct{}{}, nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Do(ctx, pool, func() (struct{}, error) { return struct{}{}, nil }); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	close(release)
	<-done
}
