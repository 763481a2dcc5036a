package updater

import "time"

// Progress contains information about the transfer progress.
// Passed to ProgressCallback after every frame outcome.
type Progress struct {
	// Frames is the number of frames resolved so far, acknowledged or
	// not (1-based: the first callback reports 1)
	Frames int

	// TotalFrames is the total number of frames in the transfer
	TotalFrames int

	// BytesSent is the number of payload bytes acknowledged so far
	BytesSent uint64

	// Elapsed is the time elapsed since the frame transfer began
	Elapsed time.Duration
}

// Percentage returns the completion percentage (0.0 to 100.0).
func (p Progress) Percentage() float64 {
	if p.TotalFrames == 0 {
		return 0
	}
	return float64(p.Frames) / float64(p.TotalFrames) * 100
}

// ProgressCallback is called after each frame resolves to report progress.
// The failing frame of an aborted transfer is reported too, so a callback
// always sees the final frame count.
// Implementations should return quickly to avoid stalling the transfer.
//
// Example:
//
//	upd, err := updater.New(conn,
//	    updater.WithProgressCallback(func(p updater.Progress) {
//	        fmt.Printf("%.1f%% - Frame %d/%d\n", p.Percentage(), p.Frames, p.TotalFrames)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// updater. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	upd, err := updater.New(conn, updater.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
