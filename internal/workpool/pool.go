// Package workpool bounds the number of CPU-heavy jobs running at once so
// audio transcoding cannot starve the network-bound transcription attempts
// sharing the process.
package workpool

import "context"

// Pool is a bounded slot pool. The zero value is not usable; construct with
// New.
type Pool struct {
	slots chan struct{}
}

func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Do runs fn once a slot is free and returns its result. ctx is honored only
// while waiting for a slot; a job that has started runs to completion.
func Do[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	var zero T
	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	defer func() { <-p.slots }()
	return fn()
}
