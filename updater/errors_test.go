package updater

import (
	"errors"
	"strings"
	"testing"

	"github.com/moffa90/go-bfu/protocol"
)

func TestConfigError(t *testing.T) {
	err := &ConfigError{
		Field:  "attempts",
		Value:  0,
		Reason: "must be at least 1",
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "attempts") {
		t.Errorf("error message should contain field name, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "must be at least 1") {
		t.Errorf("error message should contain reason, got: %s", errMsg)
	}
}

func TestHandshakeError(t *testing.T) {
	tests := []struct {
		name    string
		err     *HandshakeError
		wantMsg string
	}{
		{
			name: "rejected with response",
			err: &HandshakeError{
				Stage:    "begin",
				Response: protocol.RespAbort,
			},
			wantMsg: "device answered abort",
		},
		{
			name: "failed with cause",
			err: &HandshakeError{
				Stage: "hello",
				Cause: ErrResponseTimeout,
			},
			wantMsg: "response timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()

			if !strings.Contains(errMsg, tt.err.Stage) {
				t.Errorf("error message should contain stage, got: %s", errMsg)
			}

			if !strings.Contains(errMsg, tt.wantMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.wantMsg, errMsg)
			}
		})
	}
}

func TestHandshakeErrorUnwrap(t *testing.T) {
	err := &HandshakeError{Stage: "hello", Cause: ErrResponseTimeout}

	if !errors.Is(err, ErrResponseTimeout) {
		t.Error("expected errors.Is to find ErrResponseTimeout")
	}
}

func TestAbortError(t *testing.T) {
	tests := []struct {
		name    string
		err     *AbortError
		wantMsg string
	}{
		{
			name: "rejected by device",
			err: &AbortError{
				Frame:    0,
				Total:    3,
				Attempts: 1,
				Reason:   AbortRejected,
			},
			wantMsg: "device rejected frame 1/3",
		},
		{
			name: "attempts exhausted",
			err: &AbortError{
				Frame:    4,
				Total:    10,
				Attempts: 3,
				Reason:   AbortExhausted,
			},
			wantMsg: "frame 5/10 unacknowledged after 3 attempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()

			if !strings.Contains(errMsg, "transfer aborted") {
				t.Errorf("error message should contain 'transfer aborted', got: %s", errMsg)
			}

			if !strings.Contains(errMsg, tt.wantMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.wantMsg, errMsg)
			}
		})
	}
}

func TestTeardownError(t *testing.T) {
	tests := []struct {
		name    string
		err     *TeardownError
		wantMsg string
	}{
		{
			name:    "rejected with response",
			err:     &TeardownError{Response: protocol.RespRetry},
			wantMsg: "device answered retry",
		},
		{
			name:    "failed with cause",
			err:     &TeardownError{Cause: ErrResponseTimeout},
			wantMsg: "response timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			if !strings.Contains(errMsg, tt.wantMsg) {
				t.Errorf("error message should contain %q, got: %s", tt.wantMsg, errMsg)
			}
		})
	}
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := &TransportError{Op: "write frame 3", Cause: cause}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "write frame 3") {
		t.Errorf("error message should contain operation, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "connection reset by peer") {
		t.Errorf("error message should contain cause, got: %s", errMsg)
	}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestErrorTypes(t *testing.T) {
	// Test that all error types implement error interface
	var _ error = &ConfigError{}
	var _ error = &HandshakeError{}
	var _ error = &AbortError{}
	var _ error = &TeardownError{}
	var _ error = &TransportError{}
}
