package protocol

import "fmt"

// Verdict is the retry-protocol classification of a device response.
type Verdict int

// Classification outcomes.
const (
	// VerdictAck means the frame was accepted; move to the next one
	VerdictAck Verdict = iota

	// VerdictAbort means the device rejected the transfer; stop immediately
	VerdictAbort

	// VerdictRetry means the frame should be resent
	VerdictRetry
)

// Classify maps a response byte to its retry-protocol outcome.
// Any byte other than RespAck and RespAbort requests a retry: an unknown
// response means the device and host disagree about the last frame, and
// resending is the only safe recovery inside the attempt budget.
func (r Response) Classify() Verdict {
	switch r {
	case RespAck:
		return VerdictAck
	case RespAbort:
		return VerdictAbort
	default:
		return VerdictRetry
	}
}

// String returns a human-readable name for a response byte.
func (r Response) String() string {
	switch r {
	case RespAck:
		return "ack"
	case RespAbort:
		return "abort"
	case RespRetry:
		return "retry"
	default:
		return fmt.Sprintf("unknown response 0x%02X", byte(r))
	}
}
