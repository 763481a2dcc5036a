package rfcomm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var errUnsupported = errors.New("bluetooth is not supported on this platform")

// DialError indicates that an RFCOMM link could not be established.
type DialError struct {
	// Addr is the device the connection was aimed at
	Addr Addr

	// Channel is the RFCOMM channel
	Channel uint8

	// Cause is the underlying failure
	Cause error
}

func (e *DialError) Error() string {
	return fmt.Sprintf("rfcomm connect %s channel %d: %v", e.Addr, e.Channel, e.Cause)
}

// Unwrap returns the underlying failure.
func (e *DialError) Unwrap() error {
	return e.Cause
}

// Conn is a stream connection to an RFCOMM channel on a remote device.
//
// The socket stays in non-blocking mode and is registered with the runtime
// poller, so SetReadDeadline behaves the way it does on a net.Conn: a read
// that outlives the deadline fails with an error matching
// os.ErrDeadlineExceeded.
type Conn struct {
	f       *os.File
	addr    Addr
	channel uint8
}

// Read reads from the link.
func (c *Conn) Read(p []byte) (int, error) {
	return c.f.Read(p)
}

// Write writes to the link.
func (c *Conn) Write(p []byte) (int, error) {
	return c.f.Write(p)
}

// SetReadDeadline sets the deadline for future Read calls. A zero value
// means reads will not time out.
func (c *Conn) SetReadDeadline(t time.Time) error {
	return c.f.SetReadDeadline(t)
}

// Close closes the connection.
func (c *Conn) Close() error {
	return c.f.Close()
}

// RemoteAddr returns the address of the remote device.
func (c *Conn) RemoteAddr() Addr {
	return c.addr
}

// Channel returns the RFCOMM channel the connection is bound to.
func (c *Conn) Channel() uint8 {
	return c.channel
}
