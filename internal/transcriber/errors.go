package transcriber

import "errors"

// Providers wrap these sentinels with fmt.Errorf("...: %w", ...) so callers
// can classify failures with errors.Is. No provider retries internally; retry
// policy belongs to the caller.
var (
	// ErrTransport indicates a network or connection-level failure.
	ErrTransport = errors.New("transcriber: transport failure")
	// ErrAuth indicates the remote service rejected the configured credentials.
	ErrAuth = errors.New("transcriber: credentials rejected")
	// ErrTimeout indicates the bounded wait elapsed without a terminal result.
	ErrTimeout = errors.New("transcriber: timed out waiting for result")
	// ErrProtocol indicates data that does not parse into the expected schema.
	ErrProtocol = errors.New("transcriber: malformed data")
)
