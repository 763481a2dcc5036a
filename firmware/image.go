package firmware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

// BinaryMIMEType is the media type an update source must resolve to.
const BinaryMIMEType = "application/octet-stream"

// The runtime's built-in extension table lacks the common firmware
// extensions, and system tables are not guaranteed to carry them either.
func init() {
	_ = mime.AddExtensionType(".bin", BinaryMIMEType)
	_ = mime.AddExtensionType(".img", BinaryMIMEType)
}

// Image is a firmware image ready for transfer.
type Image struct {
	// Name is the base name of the source file
	Name string

	// Path is the full source path, empty when read from a stream
	Path string

	// Data is the raw firmware binary
	Data []byte
}

// Size returns the image size in bytes.
func (img *Image) Size() int {
	return len(img.Data)
}

// SHA256 returns the hex-encoded SHA-256 digest of the image.
func (img *Image) SHA256() string {
	sum := sha256.Sum256(img.Data)
	return hex.EncodeToString(sum[:])
}

// FileError reports a firmware file that cannot be used as an update source.
type FileError struct {
	// Path is the rejected file path
	Path string

	// Reason explains the rejection
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("firmware file %s: %s", e.Path, e.Reason)
}

// Load reads a firmware image from the given file path.
//
// The path must name an existing regular file whose extension resolves to
// application/octet-stream; anything else is rejected with a *FileError
// before the file is opened. Load does not reject an empty file: the
// transfer layer does, before any byte reaches the wire.
//
// Example:
//
//	img, err := firmware.Load("app.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d bytes, sha256 %s\n", img.Name, img.Size(), img.SHA256())
func Load(path string) (*Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileError{Path: path, Reason: "no such file"}
		}
		return nil, fmt.Errorf("stat firmware file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, &FileError{Path: path, Reason: "not a regular file"}
	}

	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != BinaryMIMEType {
		reason := "unrecognized extension"
		if mt != "" {
			reason = fmt.Sprintf("type %s is not %s", mt, BinaryMIMEType)
		}
		return nil, &FileError{Path: path, Reason: reason}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := ReadImage(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	img.Path = path

	return img, nil
}

// ReadImage reads a firmware image from any io.Reader.
// This is useful for testing and reading from non-file sources; none of the
// file checks Load performs apply here.
//
// Example:
//
//	img, err := firmware.ReadImage(bytes.NewReader(blob), "app.bin")
func ReadImage(r io.Reader, name string) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read firmware image: %w", err)
	}

	return &Image{Name: name, Data: data}, nil
}
