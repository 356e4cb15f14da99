package transcriber

import (
	"context"
	"strings"
)

// Provider converts one audio clip into text. ok reports whether a transcript
// was obtained; ok=false with a nil error means the service finished without
// recognizing any speech, which is a normal outcome and distinct from the
// attempt itself failing.
type Provider interface {
	Transcribe(ctx context.Context, audio []byte) (text string, ok bool, err error)
}

// Normalize lower-cases a transcript and strips one trailing punctuation
// character when present. The recognition endpoints append a closing period
// to their display text.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) == 0 {
		return text
	}
	switch text[len(text)-1] {
	case '.', '?', '!':
		text = text[:len(text)-1]
	}
	return text
}
