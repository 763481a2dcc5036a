// Package updater drives firmware transfer sessions over a lossy
// byte-stream link.
//
// # Overview
//
// This package orchestrates the complete transfer sequence:
//   - Splitting the image into checksummed frames
//   - Handshaking with the device before any data moves
//   - Delivering every frame in order, each acknowledged within a bounded
//     attempt budget
//   - Tearing the session down with an explicit end-of-transfer
//     confirmation
//
// A transfer either moves the whole image or fails with a typed error;
// there is no partial success.
//
// # Basic Usage
//
//	conn, err := rfcomm.Dial(addr, 1, 10*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
//	img, err := firmware.Load("app.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	upd, err := updater.New(conn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := upd.Upload(context.Background(), img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("sent %d bytes in %s\n", stats.TotalBytes, stats.Elapsed)
//
// # Progress Tracking
//
// Track the transfer with a callback, invoked once per frame outcome:
//
//	upd, err := updater.New(conn,
//	    updater.WithProgressCallback(func(p updater.Progress) {
//	        fmt.Printf("%.1f%% - Frame %d/%d\n", p.Percentage(), p.Frames, p.TotalFrames)
//	    }),
//	)
//
// # Configuration Options
//
// Customize behavior with functional options:
//
//	upd, err := updater.New(conn,
//	    updater.WithAttempts(5),
//	    updater.WithChunkSize(250),
//	    updater.WithResponseTimeout(3*time.Second),
//	    updater.WithLogger(myLogger),
//	)
//
// Invalid values are rejected by New with a *ConfigError; nothing is
// silently defaulted after construction.
//
// # Error Handling
//
// The package provides structured error types:
//   - ConfigError: invalid session parameter, raised before any I/O
//   - HandshakeError: device refused or ignored the session opening
//   - AbortError: a frame could not be delivered; carries the frame index
//   - TeardownError: device did not confirm the end of the transfer
//   - TransportError: the link itself failed mid-session
//
// All of them are fatal to the session; retries happen only inside the
// per-frame attempt budget.
//
// # Transport Independence
//
// The updater does NOT open or close connections. Callers provide a
// Transport (any net.Conn works) and own its lifetime:
//
//	conn, err := rfcomm.Dial(addr, channel, timeout)
//	if err != nil { ... }
//	defer conn.Close()
//
//	upd, err := updater.New(conn)
//
// This keeps the session logic independent of Bluetooth, TCP, serial, or
// in-memory test links.
package updater
