package updater

import (
	"fmt"
	"time"

	"github.com/moffa90/go-bfu/protocol"
)

// Default session parameters.
const (
	// DefaultAttempts is the per-frame delivery budget
	DefaultAttempts = 3

	// DefaultChunkSize is the default payload size per frame:
	// 512-byte packets minus the 6 bytes of framing
	DefaultChunkSize = 506

	// DefaultResponseTimeout bounds each wait for a device response
	DefaultResponseTimeout = time.Second
)

// Config holds the session configuration.
type Config struct {
	// ProgressCallback is called after every frame outcome (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Attempts is the delivery budget per frame
	Attempts int

	// ChunkSize is the payload size per frame
	ChunkSize int

	// ResponseTimeout bounds each wait for a device response
	ResponseTimeout time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Attempts:        DefaultAttempts,
		ChunkSize:       DefaultChunkSize,
		ResponseTimeout: DefaultResponseTimeout,
	}
}

// validate rejects impossible session parameters. Options record whatever
// they are given; bad values fail here, at construction, never silently
// mid-transfer.
func (c Config) validate() error {
	if c.Attempts < 1 {
		return &ConfigError{Field: "attempts", Value: c.Attempts, Reason: "must be at least 1"}
	}
	if c.ChunkSize < 1 || c.ChunkSize > protocol.MaxPayload {
		return &ConfigError{Field: "chunk size", Value: c.ChunkSize, Reason: fmt.Sprintf("must be 1..%d", protocol.MaxPayload)}
	}
	if c.ResponseTimeout <= 0 {
		return &ConfigError{Field: "response timeout", Value: c.ResponseTimeout, Reason: "must be positive"}
	}
	return nil
}

// Option is a functional option for configuring the Updater.
type Option func(*Config)

// WithProgressCallback sets a callback function to track transfer progress.
//
// Example:
//
//	upd, err := updater.New(conn,
//	    updater.WithProgressCallback(func(p updater.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage())
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the updater operations.
//
// Example:
//
//	upd, err := updater.New(conn, updater.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithAttempts sets the delivery budget per frame. A frame that is not
// acknowledged within this many attempts aborts the transfer.
//
// Example:
//
//	upd, err := updater.New(conn, updater.WithAttempts(5))
func WithAttempts(attempts int) Option {
	return func(c *Config) {
		c.Attempts = attempts
	}
}

// WithChunkSize sets the payload size per frame.
// Default is 506 bytes (512-byte packets minus 6 bytes of framing).
//
// Example:
//
//	upd, err := updater.New(conn, updater.WithChunkSize(250))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		c.ChunkSize = size
	}
}

// WithResponseTimeout bounds each wait for a device response. A response
// that does not arrive in time consumes one delivery attempt.
//
// Example:
//
//	upd, err := updater.New(conn, updater.WithResponseTimeout(3*time.Second))
func WithResponseTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.ResponseTimeout = timeout
	}
}
