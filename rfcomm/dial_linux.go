package rfcomm

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Dial connects to an RFCOMM channel on the given device.
//
// The connect is performed on a non-blocking socket so the timeout can be
// enforced; a non-positive timeout waits for the link indefinitely. The
// returned connection keeps the socket non-blocking, which is what lets
// read deadlines work through the runtime poller.
func Dial(addr Addr, channel uint8, timeout time.Duration) (*Conn, error) {
	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM|unix.SOCK_CLOEXEC|unix.SOCK_NONBLOCK, unix.BTPROTO_RFCOMM)
	if err != nil {
		return nil, &DialError{Addr: addr, Channel: channel, Cause: err}
	}

	sa := &unix.SockaddrRFCOMM{Addr: addr.raw(), Channel: channel}
	err = unix.Connect(fd, sa)
	if err == unix.EINPROGRESS || err == unix.EINTR {
		if err = pollWait(fd, unix.POLLOUT, timeout); err == nil {
			var soerr int
			soerr, err = unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_ERROR)
			if err == nil && soerr != 0 {
				err = unix.Errno(soerr)
			}
		}
	}
	if err != nil {
		_ = unix.Close(fd)
		return nil, &DialError{Addr: addr, Channel: channel, Cause: err}
	}

	return &Conn{
		f:       os.NewFile(uintptr(fd), addr.String()),
		addr:    addr,
		channel: channel,
	}, nil
}

// pollWait blocks until fd is ready for the given events. A non-positive
// timeout waits indefinitely.
func pollWait(fd int, events int16, timeout time.Duration) error {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		ms := -1
		if !deadline.IsZero() {
			left := time.Until(deadline)
			if left <= 0 {
				return unix.ETIMEDOUT
			}
			if ms = int(left / time.Millisecond); ms == 0 {
				ms = 1
			}
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: events}}
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return unix.ETIMEDOUT
		}
		return nil
	}
}
