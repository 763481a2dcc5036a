package firmware

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	data := []byte{0xE9, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	path := writeTestFile(t, "app.bin", data)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.Name != "app.bin" {
		t.Errorf("Name = %q, want %q", img.Name, "app.bin")
	}
	if img.Path != path {
		t.Errorf("Path = %q, want %q", img.Path, path)
	}
	if !bytes.Equal(img.Data, data) {
		t.Errorf("Data = %v, want %v", img.Data, data)
	}
	if img.Size() != len(data) {
		t.Errorf("Size() = %d, want %d", img.Size(), len(data))
	}
}

func TestLoadEmptyFile(t *testing.T) {
	// Emptiness is not Load's concern; the transfer layer rejects it.
	path := writeTestFile(t, "empty.bin", nil)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Size() != 0 {
		t.Errorf("Size() = %d, want 0", img.Size())
	}
}

func TestLoadRejections(t *testing.T) {
	tests := []struct {
		name       string
		path       func(t *testing.T) string
		wantReason string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nowhere.bin")
			},
			wantReason: "no such file",
		},
		{
			name: "directory",
			path: func(t *testing.T) string {
				dir := filepath.Join(t.TempDir(), "tree.bin")
				if err := os.Mkdir(dir, 0o755); err != nil {
					t.Fatalf("mkdir: %v", err)
				}
				return dir
			},
			wantReason: "not a regular file",
		},
		{
			name: "wrong media type",
			path: func(t *testing.T) string {
				return writeTestFile(t, "paper.pdf", []byte("not firmware"))
			},
			wantReason: "is not application/octet-stream",
		},
		{
			name: "no extension",
			path: func(t *testing.T) string {
				return writeTestFile(t, "firmware", []byte{0x01})
			},
			wantReason: "unrecognized extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))

			var ferr *FileError
			if !errors.As(err, &ferr) {
				t.Fatalf("error = %v, want *FileError", err)
			}
			if !strings.Contains(ferr.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", ferr.Reason, tt.wantReason)
			}
		})
	}
}

func TestReadImage(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	img, err := ReadImage(bytes.NewReader(data), "stream.bin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.Name != "stream.bin" {
		t.Errorf("Name = %q, want %q", img.Name, "stream.bin")
	}
	if img.Path != "" {
		t.Errorf("Path = %q, want empty", img.Path)
	}
	if !bytes.Equal(img.Data, data) {
		t.Errorf("Data = %v, want %v", img.Data, data)
	}
}

func TestImageSHA256(t *testing.T) {
	img := &Image{Data: []byte("abc")}

	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := img.SHA256(); got != want {
		t.Errorf("SHA256() = %s, want %s", got, want)
	}
}

func TestFileError(t *testing.T) {
	err := &FileError{Path: "/tmp/app.bin", Reason: "no such file"}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "/tmp/app.bin") {
		t.Errorf("error message should contain path, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "no such file") {
		t.Errorf("error message should contain reason, got: %s", errMsg)
	}
}
