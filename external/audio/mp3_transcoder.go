package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/foxseedlab/kikitorin/internal/audio"
	"github.com/foxseedlab/kikitorin/internal/workpool"
)

// MP3Transcoder converts MP3 clips into 16-bit PCM mono WAV. Decoding is CPU
// bound, so each conversion runs on the shared worker pool instead of the
// caller's goroutine.
type MP3Transcoder struct {
	pool *workpool.Pool
}

func NewMP3Transcoder(pool *workpool.Pool) audio.Transcoder {
	return &MP3Transcoder{pool: pool}
}

func (t *MP3Transcoder) ToWAV(ctx context.Context, clip []byte) ([]byte, error) {
	return workpool.Do(ctx, t.pool, func() ([]byte, error) {
		return decodeToWAV(clip)
	})
}

func decodeToWAV(clip []byte) ([]byte, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(clip))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decode mp3 stream: %w", err)
	}
	return audio.EncodeWAV(downmixToMono(pcm), dec.SampleRate())
}

// go-mp3 always emits 16-bit little-endian stereo; average the channels into
// mono for the speech endpoint.
func downmixToMono(pcm []byte) []int16 {
	frames := len(pcm) / 4
	samples := make([]int16, frames)
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		samples[i] = int16((int32(l) + int32(r)) / 2)
	}
	return samples
}
