package updater

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/moffa90/go-bfu/firmware"
	"github.com/moffa90/go-bfu/protocol"
)

// Transport is the byte-stream link a session runs over. net.Conn satisfies
// it; tests substitute scripted implementations.
//
// The updater never closes the transport: whoever opened the link owns its
// lifetime and is expected to release it on every exit path.
type Transport interface {
	io.ReadWriter

	// SetReadDeadline bounds the next Read, with net.Conn semantics.
	SetReadDeadline(t time.Time) error
}

// Updater runs firmware transfer sessions against a single device.
// It drives the complete sequence: handshake, acknowledged frame delivery
// with bounded retries, and teardown.
type Updater struct {
	transport Transport
	config    Config
}

// New creates a new Updater with the given transport and options.
// The assembled configuration is validated once, here; an invalid value is
// returned as a *ConfigError before any I/O happens.
//
// Example:
//
//	conn, _ := rfcomm.Dial(addr, 1, 10*time.Second)
//	defer conn.Close()
//	upd, err := updater.New(conn,
//	    updater.WithProgressCallback(progressFunc),
//	    updater.WithAttempts(5),
//	)
func New(transport Transport, opts ...Option) (*Updater, error) {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Updater{
		transport: transport,
		config:    cfg,
	}, nil
}

// Upload performs the complete transfer sequence:
//  1. Split the image into checksummed frames
//  2. Handshake: announce the operation and wait for the device's go-ahead
//  3. Deliver every frame in order, each acknowledged within the attempt
//     budget
//  4. Teardown: announce the end and wait for the final confirmation
//
// The first frame that cannot be delivered aborts the whole transfer: the
// device is told via an error marker and an *AbortError is returned. The
// operation can be cancelled between frames via context.
//
// Example:
//
//	img, _ := firmware.Load("app.bin")
//	stats, err := upd.Upload(context.Background(), img)
func (u *Updater) Upload(ctx context.Context, img *firmware.Image) (*Stats, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	frames, err := protocol.BuildFrames(img.Data, u.config.ChunkSize)
	if err != nil {
		return nil, fmt.Errorf("build frames: %w", err)
	}

	if err := u.handshake(); err != nil {
		return nil, err
	}

	u.logDebug("handshake complete",
		"image", img.Name,
		"frames", len(frames),
		"chunk_size", u.config.ChunkSize,
	)

	// The clock runs over the transfer phase only; handshake and teardown
	// round-trips stay outside the metric.
	start := time.Now()
	stats := &Stats{}

	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		err := u.sendFrame(i, len(frames), frame)
		if err == nil {
			stats.TotalBytes += uint64(len(frame.Payload))
			stats.Frames++
		}

		// The failed frame is reported too: a callback always sees the
		// frame the transfer stopped at.
		u.reportProgress(Progress{
			Frames:      i + 1,
			TotalFrames: len(frames),
			BytesSent:   stats.TotalBytes,
			Elapsed:     time.Since(start),
		})

		if err != nil {
			var aerr *AbortError
			if errors.As(err, &aerr) {
				u.logError("transfer aborted",
					"frame", aerr.Frame,
					"attempts", aerr.Attempts,
				)
				// Tell the device the transfer is over. The link may
				// already be unusable, so the marker is best effort.
				_ = u.writeMarker(protocol.MarkerError)
			}
			return nil, err
		}
	}

	stats.Elapsed = time.Since(start)

	if err := u.teardown(); err != nil {
		return nil, err
	}

	u.logInfo("transfer complete",
		"frames", stats.Frames,
		"bytes", stats.TotalBytes,
		"elapsed", stats.Elapsed.String(),
	)

	return stats, nil
}

// handshake announces the operation and waits for the device's go-ahead.
//
// The device answers the identifier with one opaque byte. Its value carries
// no meaning; not hearing it within the timeout does, and fails the "hello"
// stage. The begin marker must then be acknowledged explicitly.
func (u *Updater) handshake() error {
	if _, err := u.transport.Write([]byte(protocol.Identifier)); err != nil {
		return &TransportError{Op: "write identifier", Cause: err}
	}

	if _, err := u.readResponse(); err != nil {
		if errors.Is(err, ErrResponseTimeout) {
			return &HandshakeError{Stage: "hello", Cause: err}
		}
		return err
	}

	if err := u.writeMarker(protocol.MarkerBegin); err != nil {
		return err
	}

	resp, err := u.readResponse()
	if err != nil {
		if errors.Is(err, ErrResponseTimeout) {
			return &HandshakeError{Stage: "begin", Cause: err}
		}
		return err
	}
	if resp.Classify() != protocol.VerdictAck {
		return &HandshakeError{Stage: "begin", Response: resp}
	}

	return nil
}

// sendFrame delivers one frame under the attempt budget. Returns nil once
// the device acks, an *AbortError when the frame ultimately fails, or a
// *TransportError when the link itself breaks.
//
// Every attempt resends the identical wire bytes.
func (u *Updater) sendFrame(index, total int, frame protocol.Frame) error {
	wire, err := frame.Encode()
	if err != nil {
		return fmt.Errorf("frame %d: %w", index, err)
	}

	for attempt := 1; attempt <= u.config.Attempts; attempt++ {
		if _, err := u.transport.Write(wire); err != nil {
			return &TransportError{Op: fmt.Sprintf("write frame %d", index), Cause: err}
		}

		resp, err := u.readResponse()
		if err != nil {
			if errors.Is(err, ErrResponseTimeout) {
				u.logDebug("response timeout", "frame", index, "attempt", attempt)
				continue
			}
			return err
		}

		switch resp.Classify() {
		case protocol.VerdictAck:
			return nil
		case protocol.VerdictAbort:
			return &AbortError{Frame: index, Total: total, Attempts: attempt, Reason: AbortRejected}
		default:
			u.logDebug("retry requested",
				"frame", index,
				"attempt", attempt,
				"response", resp.String(),
			)
		}
	}

	return &AbortError{Frame: index, Total: total, Attempts: u.config.Attempts, Reason: AbortExhausted}
}

// teardown announces the end of the transfer and waits for the final
// confirmation.
func (u *Updater) teardown() error {
	if err := u.writeMarker(protocol.MarkerEnd); err != nil {
		return err
	}

	resp, err := u.readResponse()
	if err != nil {
		if errors.Is(err, ErrResponseTimeout) {
			return &TeardownError{Cause: err}
		}
		return err
	}
	if resp.Classify() != protocol.VerdictAck {
		return &TeardownError{Response: resp}
	}

	return nil
}

// writeMarker sends a single control byte.
func (u *Updater) writeMarker(m protocol.Marker) error {
	if _, err := u.transport.Write([]byte{byte(m)}); err != nil {
		return &TransportError{Op: fmt.Sprintf("write marker 0x%02X", byte(m)), Cause: err}
	}
	return nil
}

// readResponse reads the single byte the device answers every frame and
// marker with, bounded by the configured response timeout. A missing
// response is ErrResponseTimeout; any other read failure is a
// *TransportError.
func (u *Updater) readResponse() (protocol.Response, error) {
	if err := u.transport.SetReadDeadline(time.Now().Add(u.config.ResponseTimeout)); err != nil {
		return 0, &TransportError{Op: "set read deadline", Cause: err}
	}

	var buf [1]byte
	if _, err := io.ReadFull(u.transport, buf[:]); err != nil {
		if isTimeout(err) {
			return 0, ErrResponseTimeout
		}
		return 0, &TransportError{Op: "read response", Cause: err}
	}

	return protocol.Response(buf[0]), nil
}

// isTimeout reports whether a read failed because its deadline passed.
func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// reportProgress calls the progress callback if configured.
func (u *Updater) reportProgress(progress Progress) {
	if u.config.ProgressCallback != nil {
		u.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (u *Updater) logDebug(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (u *Updater) logInfo(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (u *Updater) logError(msg string, keysAndValues ...interface{}) {
	if u.config.Logger != nil {
		u.config.Logger.Error(msg, keysAndValues...)
	}
}
