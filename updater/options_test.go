package updater

import (
	"errors"
	"testing"
	"time"

	"github.com/moffa90/go-bfu/protocol"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name      string
		options   []Option
		wantField string
	}{
		{
			name:      "zero attempts",
			options:   []Option{WithAttempts(0)},
			wantField: "attempts",
		},
		{
			name:      "negative attempts",
			options:   []Option{WithAttempts(-3)},
			wantField: "attempts",
		},
		{
			name:      "zero chunk size",
			options:   []Option{WithChunkSize(0)},
			wantField: "chunk size",
		},
		{
			name:      "negative chunk size",
			options:   []Option{WithChunkSize(-1)},
			wantField: "chunk size",
		},
		{
			name:      "chunk size over length field",
			options:   []Option{WithChunkSize(protocol.MaxPayload + 1)},
			wantField: "chunk size",
		},
		{
			name:      "zero response timeout",
			options:   []Option{WithResponseTimeout(0)},
			wantField: "response timeout",
		},
		{
			name:      "negative response timeout",
			options:   []Option{WithResponseTimeout(-time.Second)},
			wantField: "response timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newMockTransport(), tt.options...)

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.wantField)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	upd, err := New(newMockTransport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if upd.config.Attempts != DefaultAttempts {
		t.Errorf("Attempts = %d, want %d", upd.config.Attempts, DefaultAttempts)
	}
	if upd.config.ChunkSize != DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", upd.config.ChunkSize, DefaultChunkSize)
	}
	if upd.config.ResponseTimeout != DefaultResponseTimeout {
		t.Errorf("ResponseTimeout = %v, want %v", upd.config.ResponseTimeout, DefaultResponseTimeout)
	}
}

func TestOptionsApply(t *testing.T) {
	upd, err := New(newMockTransport(),
		WithAttempts(7),
		WithChunkSize(128),
		WithResponseTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if upd.config.Attempts != 7 {
		t.Errorf("Attempts = %d, want 7", upd.config.Attempts)
	}
	if upd.config.ChunkSize != 128 {
		t.Errorf("ChunkSize = %d, want 128", upd.config.ChunkSize)
	}
	if upd.config.ResponseTimeout != 5*time.Second {
		t.Errorf("ResponseTimeout = %v, want %v", upd.config.ResponseTimeout, 5*time.Second)
	}
}

func TestDefaultChunkSizeLeavesFrameOverhead(t *testing.T) {
	// Default packets are 512 bytes on the wire: payload plus framing.
	if DefaultChunkSize+protocol.FrameOverhead != 512 {
		t.Errorf("DefaultChunkSize + overhead = %d, want 512",
			DefaultChunkSize+protocol.FrameOverhead)
	}
}
