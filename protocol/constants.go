package protocol

// Identifier is the operation announcement string sent at the start of every
// session. The receiver uses it to route the connection to its firmware
// update handler before any framing starts.
const Identifier = "firmware_update"

// Marker is a single-byte control code sent by the host.
//
// Markers and Responses reuse the same byte values with different meanings
// per direction; the distinct types keep the two from being compared or
// mixed by accident.
type Marker byte

// Host control markers.
const (
	// MarkerBegin announces the start of the frame stream
	MarkerBegin Marker = 0xAA

	// MarkerError tells the device the host is abandoning the transfer
	MarkerError Marker = 0xEE

	// MarkerEnd announces that every frame has been sent
	MarkerEnd Marker = 0xFF
)

// Response is a single-byte reply sent by the device.
type Response byte

// Device responses.
const (
	// RespAck acknowledges the preceding frame or marker
	RespAck Response = 0xFF

	// RespAbort rejects the transfer; the device will not accept more frames
	RespAbort Response = 0xAA

	// RespRetry asks the host to resend the preceding frame
	RespRetry Response = 0xEE
)

// Frame layout constants.
const (
	// FrameOverhead is the fixed per-frame wire overhead in bytes:
	// LEN(2) + CRC32(4)
	FrameOverhead = 6

	// MaxPayload is the largest payload a single frame can carry,
	// bounded by the 16-bit length field
	MaxPayload = 0xFFFF
)
