// Package wire implements the framed message format of the streaming speech
// endpoint. Outbound audio frames are binary: a 2-byte big-endian length of
// the header text, the header text itself, then the raw payload. Inbound
// frames are text: a header block, an empty line, then a JSON body.
package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"
)

const (
	headerPath        = "audio"
	headerContentType = "audio/x-wav"

	// lenPrefixSize is the size of the big-endian header-length prefix.
	lenPrefixSize = 2
)

// Recognition statuses reported by the endpoint. Any other status means the
// session is still in progress.
const (
	StatusSuccess        = "Success"
	StatusEndOfDictation = "EndOfDictation"
)

// SpeechResponse is the JSON body of an inbound text frame.
type SpeechResponse struct {
	RecognitionStatus string      `json:"RecognitionStatus"`
	NBest             []Candidate `json:"NBest"`
}

// Candidate is one ranked recognition hypothesis.
type Candidate struct {
	Display string `json:"Display"`
}

// EncodeAudioFrame builds one outbound audio message. All frames of one
// attempt must carry the same request id.
func EncodeAudioFrame(requestID string, timestamp time.Time, payload []byte) []byte {
	header := fmt.Sprintf(
		"X-RequestId: %s\r\nX-Timestamp: %sZ\r\nPath: %s\r\nContent-Type: %s\r\n\r\n",
		requestID,
		timestamp.UTC().Format("2006-01-02T15:04:05.000000"),
		headerPath,
		headerContentType,
	)
	frame := make([]byte, 0, lenPrefixSize+len(header)+len(payload))
	frame = binary.BigEndian.AppendUint16(frame, uint16(len(header)))
	frame = append(frame, header...)
	frame = append(frame, payload...)
	return frame
}

// DecodeAudioFrame splits an audio frame back into its header text and
// payload.
func DecodeAudioFrame(frame []byte) (header string, payload []byte, err error) {
	if len(frame) < lenPrefixSize {
		return "", nil, fmt.Errorf("audio frame too short: %d bytes", len(frame))
	}
	n := int(binary.BigEndian.Uint16(frame))
	if len(frame) < lenPrefixSize+n {
		return "", nil, fmt.Errorf("audio frame header truncated: declared %d bytes, %d available", n, len(frame)-lenPrefixSize)
	}
	return string(frame[lenPrefixSize : lenPrefixSize+n]), frame[lenPrefixSize+n:], nil
}

var headerBodySep = []byte("\r\n\r\n")

// DecodeTextFrame locates the empty line separating the header block from
// the body of an inbound frame and parses the body as JSON.
func DecodeTextFrame(frame []byte) (*SpeechResponse, error) {
	var body []byte
	switch i := bytes.Index(frame, headerBodySep); {
	case bytes.HasPrefix(frame, []byte("\r\n")):
		// Frame with no header lines at all.
		body = frame[2:]
	case i >= 0:
		body = frame[i+len(headerBodySep):]
	default:
		return nil, fmt.Errorf("text frame has no header/body separator")
	}
	var resp SpeechResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse text frame body: %w", err)
	}
	return &resp, nil
}
