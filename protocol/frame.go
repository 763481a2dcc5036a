package protocol

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/lunixbochs/struc"
)

// Frame is a single checksummed unit of firmware data.
//
// Wire layout (little-endian):
//
//	[LEN(2)][CRC32(4)][PAYLOAD(LEN)]
//
// LEN counts payload bytes only. CRC32 uses the IEEE polynomial (the same
// algorithm zlib exposes as crc32) computed over the payload alone, so the
// device can validate the payload without reconstructing the header.
//
// Frames are immutable once built: a retry resends the identical bytes.
type Frame struct {
	Length   uint16 `struc:"uint16,little,sizeof=Payload"`
	Checksum uint32 `struc:"uint32,little"`
	Payload  []byte
}

// Checksum computes the CRC-32 (IEEE) of a payload.
func Checksum(payload []byte) uint32 {
	return crc32.ChecksumIEEE(payload)
}

// NewFrame builds a frame around one payload chunk, computing its checksum.
// The payload is aliased, not copied; callers must not mutate it afterwards.
func NewFrame(payload []byte) Frame {
	return Frame{
		Length:   uint16(len(payload)),
		Checksum: Checksum(payload),
		Payload:  payload,
	}
}

// BuildFrames splits an image into the ordered frame sequence that transfers
// it. Every frame carries exactly chunkSize payload bytes except the last,
// which carries the remainder (1..chunkSize bytes). The concatenation of all
// payloads equals data: no gaps, no overlaps, no reordering.
//
// Returns ErrChunkSize for a chunk size outside 1..MaxPayload and
// ErrEmptyImage when data is empty. No I/O happens here; callers can rely on
// both errors surfacing before anything touches the wire.
func BuildFrames(data []byte, chunkSize int) ([]Frame, error) {
	if chunkSize <= 0 || chunkSize > MaxPayload {
		return nil, fmt.Errorf("chunk size %d: %w", chunkSize, ErrChunkSize)
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	frames := make([]Frame, 0, (len(data)+chunkSize-1)/chunkSize)
	for start := 0; start < len(data); start += chunkSize {
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}
		frames = append(frames, NewFrame(data[start:end]))
	}

	return frames, nil
}

// Len returns the frame's encoded size: FrameOverhead plus the payload.
func (f Frame) Len() int {
	return FrameOverhead + len(f.Payload)
}

// Encode renders the frame's wire bytes.
func (f Frame) Encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(f.Len())
	if err := struc.Pack(&buf, &f); err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeFrame reads one frame from r and validates it. A stored checksum
// that does not match the recomputed payload checksum yields a
// *ChecksumError; receivers typically answer it with a retry request.
func DecodeFrame(r io.Reader) (Frame, error) {
	var f Frame
	if err := struc.Unpack(r, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}

	if f.Length == 0 {
		return Frame{}, fmt.Errorf("decode frame: empty payload")
	}

	if got := Checksum(f.Payload); got != f.Checksum {
		return Frame{}, &ChecksumError{Want: f.Checksum, Got: got}
	}

	return f, nil
}
