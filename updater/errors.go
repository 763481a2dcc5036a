package updater

import (
	"errors"
	"fmt"

	"github.com/moffa90/go-bfu/protocol"
)

// ErrResponseTimeout marks a device response that never arrived. Inside the
// per-frame attempt budget it consumes one attempt; everywhere else it fails
// the surrounding stage.
var ErrResponseTimeout = errors.New("response timeout")

// ConfigError indicates an invalid session configuration value.
// Returned by New before any I/O happens.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// HandshakeError indicates the device refused or ignored the session
// opening. No frame has been sent when this is returned.
type HandshakeError struct {
	// Stage is the handshake step that failed: "hello" or "begin"
	Stage string

	// Response is the device's answer, meaningful when Cause is nil
	Response protocol.Response

	// Cause is the underlying failure (timeout, read error), if any
	Cause error
}

func (e *HandshakeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("handshake %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("handshake %s rejected: device answered %s", e.Stage, e.Response)
}

func (e *HandshakeError) Unwrap() error { return e.Cause }

// AbortReason distinguishes why a frame ultimately failed.
type AbortReason int

const (
	// AbortExhausted means every delivery attempt was spent without an ack
	AbortExhausted AbortReason = iota

	// AbortRejected means the device answered with an abort response
	AbortRejected
)

// AbortError indicates the transfer stopped at a frame that could not be
// delivered. Frames after it were never sent.
type AbortError struct {
	// Frame is the zero-based index of the failed frame
	Frame int

	// Total is the number of frames in the transfer
	Total int

	// Attempts is the number of attempts spent on the failed frame
	Attempts int

	// Reason tells rejection apart from exhaustion
	Reason AbortReason
}

func (e *AbortError) Error() string {
	if e.Reason == AbortRejected {
		return fmt.Sprintf("transfer aborted: device rejected frame %d/%d", e.Frame+1, e.Total)
	}
	return fmt.Sprintf("transfer aborted: frame %d/%d unacknowledged after %d attempts",
		e.Frame+1, e.Total, e.Attempts)
}

// TeardownError indicates the device did not confirm the end of the
// transfer. Every frame was delivered and acknowledged; only the final
// confirmation is missing.
type TeardownError struct {
	// Response is the device's answer, meaningful when Cause is nil
	Response protocol.Response

	// Cause is the underlying failure (timeout, read error), if any
	Cause error
}

func (e *TeardownError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("teardown: %v", e.Cause)
	}
	return fmt.Sprintf("teardown rejected: device answered %s", e.Response)
}

func (e *TeardownError) Unwrap() error { return e.Cause }

// TransportError wraps a fatal link failure. Timeouts inside the retry
// budget never surface as TransportError; by the time one of these is
// returned the link itself has broken.
type TransportError struct {
	// Op is the operation that failed
	Op string

	// Cause is the underlying I/O error
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }
