package protocol

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the frame builder.
var (
	// ErrEmptyImage is returned when asked to frame a zero-length image.
	// An empty transfer would handshake and tear down without moving any
	// data; callers must treat it as invalid input, not trivial success.
	ErrEmptyImage = errors.New("empty firmware image")

	// ErrChunkSize is returned for a chunk size outside 1..MaxPayload.
	ErrChunkSize = errors.New("invalid chunk size")
)

// ChecksumError reports a frame whose payload does not match its stored
// CRC-32. Receivers use it to decide between requesting a retry and
// accepting the frame.
type ChecksumError struct {
	// Want is the checksum carried in the frame header
	Want uint32

	// Got is the checksum recomputed over the received payload
	Got uint32
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("frame checksum mismatch: got 0x%08X, want 0x%08X", e.Got, e.Want)
}
