package storage

import "context"

// ObjectStore is the remote bucket audio clips are staged in while a batch
// transcription job runs against them.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	// ObjectURL returns the public URI under which the transcription service
	// can fetch the object.
	ObjectURL(key string) string
}
