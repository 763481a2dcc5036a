package updater

import "time"

// Stats summarizes a completed transfer.
type Stats struct {
	// TotalBytes is the number of payload bytes acknowledged by the
	// device. Equals the image size when the transfer succeeds.
	TotalBytes uint64

	// Frames is the number of frames acknowledged
	Frames int

	// Elapsed is the wall-clock duration of the frame transfer, from the
	// first frame write to the last acknowledgement. Handshake and
	// teardown are excluded, so Rate reflects payload throughput.
	Elapsed time.Duration
}

// Rate returns the average payload throughput in bytes per second.
func (s *Stats) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalBytes) / s.Elapsed.Seconds()
}
