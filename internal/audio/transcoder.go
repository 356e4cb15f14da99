package audio

import "context"

// Transcoder converts a compressed audio clip into the 16-bit PCM mono WAV
// container the streaming recognition endpoint accepts.
type Transcoder interface {
	ToWAV(ctx context.Context, clip []byte) ([]byte, error)
}
