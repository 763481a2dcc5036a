// Package protocol implements the wire format of the firmware transfer
// protocol: frame construction, the frame codec, and the control byte
// vocabulary exchanged between host and device.
//
// # Wire Format
//
// A session moves the firmware image as an ordered sequence of checksummed
// frames:
//
//	Frame: [LEN(2)][CRC32(4)][PAYLOAD(LEN)]
//
// Where:
//   - LEN = 16-bit payload length (little-endian), always >= 1
//   - CRC32 = 32-bit CRC (IEEE polynomial, little-endian) of the payload
//   - PAYLOAD = raw firmware bytes
//
// The host frames the image with BuildFrames:
//
//	frames, err := protocol.BuildFrames(image, chunkSize)
//
// and sends each frame's Encode() output. The device answers every frame and
// control marker with a single Response byte.
//
// # Control Bytes
//
// Host markers and device responses are one byte each. The same byte values
// carry different meanings per direction, so the package gives each
// direction its own type:
//
//	Marker (host):    MarkerBegin 0xAA, MarkerError 0xEE, MarkerEnd 0xFF
//	Response (device): RespAck 0xFF, RespAbort 0xAA, RespRetry 0xEE
//
// Classify maps a response to the action the retry protocol takes:
//
//	switch resp.Classify() {
//	case protocol.VerdictAck:   // accepted
//	case protocol.VerdictAbort: // stop the transfer
//	case protocol.VerdictRetry: // resend the frame
//	}
//
// Unrecognized response bytes classify as retry.
//
// # Sessions
//
// This package is deliberately transport-free. The session layer
// (package updater) owns ordering, acknowledgment, and retries; device
// implementations can use DecodeFrame to consume the stream.
package protocol
