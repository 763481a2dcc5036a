//go:build !linux

package rfcomm

import "time"

// Dial is only available on Linux, where the kernel exposes RFCOMM
// sockets.
func Dial(addr Addr, channel uint8, timeout time.Duration) (*Conn, error) {
	return nil, &DialError{Addr: addr, Channel: channel, Cause: errUnsupported}
}

// Discover is only available on Linux.
func Discover(adapter int, duration time.Duration) ([]Device, error) {
	return nil, errUnsupported
}
