package wire

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"time"
)

func TestAudioFrame_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 3, 9, 12, 30, 45, 123456000, time.UTC)
	payload := bytes.Repeat([]byte{0xab, 0xcd}, 4096)

	frame := EncodeAudioFrame("f00dfeedf00dfeedf00dfeedf00dfeed", ts, payload)

	header, gotPayload, err := DecodeAudioFrame(frame)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	declared := int(binary.BigEndian.Uint16(frame))
	if declared != len(header) {
		t.Fatalf("declared header length %d, actual %d", declared, len(header))
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Fatal("payload altered by framing")
	}
	if !strings.Contains(header, "X-RequestId: f00dfeedf00dfeedf00dfeedf00dfeed\r\n") {
		t.Fatalf("header missing request id: %q", header)
	}
	if !strings.Contains(header, "X-Timestamp: 2024-03-09T12:30:45.123456Z\r\n") {
		t.Fatalf("header missing timestamp: %q", header)
	}
	if !strings.Contains(header, "Path: audio\r\n") {
		t.Fatalf("header missing path: %q", header)
	}
	if !strings.Contains(header, "Content-Type: audio/x-wav\r\n") {
		t.Fatalf("header missing content type: %q", header)
	}
	if !strings.HasSuffix(header, "\r\n\r\n") {
		t.Fatalf("header not terminated by empty line: %q", header)
	}
}

func TestDecodeAudioFrame_Truncated(t *testing.T) {
	if _, _, err := DecodeAudioFrame([]byte{0x01}); err == nil {
		t.Fatal("expected error for frame shorter than length prefix")
	}
	// Declares a 100-byte header but carries none.
	if _, _, err := DecodeAudioFrame([]byte{0x00, 0x64}); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestDecodeTextFrame_Success(t *testing.T) {
	frame := []byte("X-RequestId: abc\r\nPath: speech.phrase\r\n\r\n" +
		`{"RecognitionStatus":"Success","NBest":[{"Display":"Seven."},{"Display":"Heaven."}]}`)

	resp, err := DecodeTextFrame(frame)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.RecognitionStatus != StatusSuccess {
		t.Fatalf("unexpected status: %q", resp.RecognitionStatus)
	}
	if len(resp.NBest) != 2 || resp.NBest[0].Display != "Seven." {
		t.Fatalf("unexpected candidates: %+v", resp.NBest)
	}
}

func TestDecodeTextFrame_EndOfDictation(t *testing.T) {
	frame := []byte("Path: speech.endDetected\r\n\r\n{\"RecognitionStatus\":\"EndOfDictation\"}")
	resp, err := DecodeTextFrame(frame)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.RecognitionStatus != StatusEndOfDictation {
		t.Fatalf("unexpected status: %q", resp.RecognitionStatus)
	}
}

func TestDecodeTextFrame_NoHeaderLines(t *testing.T) {
	resp, err := DecodeTextFrame([]byte("\r\n{\"RecognitionStatus\":\"Success\"}"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.RecognitionStatus != StatusSuccess {
		t.Fatalf("unexpected status: %q", resp.RecognitionStatus)
	}
}

func TestDecodeTextFrame_MissingSeparator(t *testing.T) {
	if _, err := DecodeTextFrame([]byte(`{"RecognitionStatus":"Success"}`)); err == nil {
		t.Fatal("expected error when separator is absent")
	}
}

func TestDecodeTextFrame_InvalidJSON(t *testing.T) {
	if _, err := DecodeTextFrame([]byte("Path: x\r\n\r\nnot-json")); err == nil {
		t.Fatal("expected error for invalid body")
	}
}
