package transcriber

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/foxseedlab/kikitorin/internal/audio"
	"github.com/foxseedlab/kikitorin/internal/transcriber"
	"github.com/foxseedlab/kikitorin/internal/wire"
)

const (
	streamChunkSize        = 8 * 1024
	streamReceiveBudget    = 15 * time.Second
	streamHandshakeTimeout = 10 * time.Second
	streamPath             = "/speech/recognition/dictation/cognitiveservices/v1"
)

type StreamingConfig struct {
	SubscriptionKey string
	Host            string
	Language        string
}

// StreamingProvider transcodes a clip to WAV and plays it into a streaming
// recognition session, returning the first successful hypothesis. The
// session is never reused across attempts.
type StreamingProvider struct {
	transcoder audio.Transcoder
	key        string
	host       string
	language   string

	scheme        string
	receiveBudget time.Duration
}

func NewStreamingProvider(tc audio.Transcoder, cfg StreamingConfig) *StreamingProvider {
	return &StreamingProvider{
		transcoder:    tc,
		key:           cfg.SubscriptionKey,
		host:          cfg.Host,
		language:      cfg.Language,
		scheme:        "wss",
		receiveBudget: streamReceiveBudget,
	}
}

func (p *StreamingProvider) Transcribe(ctx context.Context, clip []byte) (string, bool, error) {
	if len(clip) == 0 {
		return "", false, fmt.Errorf("%w: empty audio payload", transcriber.ErrProtocol)
	}

	wav, err := p.transcoder.ToWAV(ctx, clip)
	if err != nil {
		return "", false, fmt.Errorf("transcode clip: %w", err)
	}

	connectionID := randomToken()
	dialer := websocket.Dialer{HandshakeTimeout: streamHandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, p.sessionURL(connectionID), nil)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return "", false, fmt.Errorf("open session: %w: status %d", transcriber.ErrAuth, resp.StatusCode)
		}
		return "", false, fmt.Errorf("open session: %w: %w", transcriber.ErrTransport, err)
	}
	defer func() {
		_ = conn.Close()
	}()
	slog.Debug("streaming session opened", "connection_id", connectionID, "wav_bytes", len(wav))

	if err := p.sendClip(conn, wav); err != nil {
		return "", false, err
	}
	return p.awaitRecognition(conn)
}

func (p *StreamingProvider) sessionURL(connectionID string) string {
	q := url.Values{}
	q.Set("language", p.language)
	q.Set("Ocp-Apim-Subscription-Key", p.key)
	q.Set("X-ConnectionId", connectionID)
	q.Set("format", "detailed")
	return fmt.Sprintf("%s://%s%s?%s", p.scheme, p.host, streamPath, q.Encode())
}

// sendClip frames the WAV into fixed-size chunks, all tagged with one fresh
// request id.
func (p *StreamingProvider) sendClip(conn *websocket.Conn, wav []byte) error {
	requestID := randomToken()
	for chunk := range slices.Chunk(wav, streamChunkSize) {
		frame := wire.EncodeAudioFrame(requestID, time.Now(), chunk)
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			return fmt.Errorf("send audio frame: %w: %w", transcriber.ErrTransport, err)
		}
	}
	return nil
}

// awaitRecognition consumes frames until a terminal recognition event or the
// receive budget elapses.
func (p *StreamingProvider) awaitRecognition(conn *websocket.Conn) (string, bool, error) {
	deadline := time.Now().Add(p.receiveBudget)
	_ = conn.SetReadDeadline(deadline)
	for {
		_, frame, err := conn.ReadMessage()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return "", false, fmt.Errorf("no terminal frame within %s: %w", p.receiveBudget, transcriber.ErrTimeout)
			}
			return "", false, fmt.Errorf("read frame: %w: %w", transcriber.ErrTransport, err)
		}
		resp, err := wire.DecodeTextFrame(frame)
		if err != nil {
			return "", false, fmt.Errorf("%w: %w", transcriber.ErrProtocol, err)
		}
		switch resp.RecognitionStatus {
		case wire.StatusSuccess:
			if len(resp.NBest) == 0 {
				return "", false, fmt.Errorf("%w: success frame carries no candidates", transcriber.ErrProtocol)
			}
			return transcriber.Normalize(resp.NBest[0].Display), true, nil
		case wire.StatusEndOfDictation:
			// End of the session without a successful recognition.
			return "", false, nil
		}
	}
}

var _ transcriber.Provider = (*StreamingProvider)(nil)
