// Package firmware provides loading and validation of firmware images.
//
// # Update Sources
//
// An update source is a plain binary file, typically the .bin an embedded
// toolchain produces. Load performs the checks an update tool needs before
// committing to a transfer:
//   - the path names an existing regular file
//   - the extension resolves to application/octet-stream (a text file or
//     an archive handed over by mistake is rejected up front)
//
// The image content itself is opaque: no structure is assumed and no
// integrity metadata is expected inside the file.
//
// # Usage
//
// Load an image from disk:
//
//	img, err := firmware.Load("app.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Image: %s\n", img.Name)
//	fmt.Printf("Size: %d bytes\n", img.Size())
//	fmt.Printf("SHA-256: %s\n", img.SHA256())
//
// Read from an io.Reader (no file checks):
//
//	img, err := firmware.ReadImage(bytes.NewReader(blob), "app.bin")
//
// # Error Handling
//
// Rejections carry a *FileError naming the path and the reason: missing
// file, not a regular file, or an extension that does not resolve to a
// binary media type.
package firmware
