package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/exp/slices"

	"github.com/moffa90/go-bfu/firmware"
	"github.com/moffa90/go-bfu/protocol"
	"github.com/moffa90/go-bfu/rfcomm"
	"github.com/moffa90/go-bfu/updater"
)

const (
	// dialTimeout bounds how long we wait for the RFCOMM link to come up.
	dialTimeout = 10 * time.Second

	// discoverDuration is the inquiry length used when resolving a device
	// by name.
	discoverDuration = 10 * time.Second

	// RFCOMM channels run 1..30.
	maxChannel = 30

	// maxPacketSize is the largest on-air packet the target's receive
	// buffer is expected to hold, header included.
	maxPacketSize = 512
)

// countFlag counts repeated occurrences of a boolean flag, so -v -v works
// the way counting flags do elsewhere.
type countFlag int

func (c *countFlag) String() string { return strconv.Itoa(int(*c)) }

func (c *countFlag) Set(string) error { *c++; return nil }

func (c *countFlag) IsBoolFlag() bool { return true }

type uploadCmd struct {
	attempts int
	packSize int
	channel  int
	timeout  time.Duration
	target   string
	name     string
	verbose  countFlag
}

// Name returns the name "upload".
func (*uploadCmd) Name() string { return "upload" }

// Synopsis returns a description of the subcommand.
func (*uploadCmd) Synopsis() string { return "Upload a firmware image to a device" }

// Usage returns a string describing usage.
func (*uploadCmd) Usage() string {
	return "upload [-a attempts] [-p packsize] [-c channel] [-w timeout] (-t addr | -n name) [-v] PATH:\n" +
		"\tUpload the firmware image at PATH to the target device.\n"
}

// SetFlags sets the flags on the upload subcommand.
func (cmd *uploadCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.attempts, "a", updater.DefaultAttempts, "number of attempts to send each frame")
	f.IntVar(&cmd.packSize, "p", updater.DefaultChunkSize+protocol.FrameOverhead, "packet size in bytes, header included")
	f.IntVar(&cmd.channel, "c", 1, "RFCOMM channel")
	f.DurationVar(&cmd.timeout, "w", updater.DefaultResponseTimeout, "how long to wait for each device response")
	f.StringVar(&cmd.target, "t", "", "target device address (AA:BB:CC:DD:EE:FF)")
	f.StringVar(&cmd.name, "n", "", "target device name substring")
	f.Var(&cmd.verbose, "v", "increase verbosity (repeatable)")
}

// Execute runs the upload.
func (cmd *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "upload: exactly one firmware path is required")
		return subcommands.ExitUsageError
	}
	if cmd.packSize <= protocol.FrameOverhead || cmd.packSize > maxPacketSize {
		fmt.Fprintf(os.Stderr, "upload: packet size must be in %d..%d\n", protocol.FrameOverhead+1, maxPacketSize)
		return subcommands.ExitUsageError
	}
	if cmd.attempts < 1 {
		fmt.Fprintln(os.Stderr, "upload: attempts must be positive")
		return subcommands.ExitUsageError
	}
	if cmd.channel < 1 || cmd.channel > maxChannel {
		fmt.Fprintf(os.Stderr, "upload: channel must be in 1..%d\n", maxChannel)
		return subcommands.ExitUsageError
	}
	if cmd.target == "" && cmd.name == "" {
		fmt.Fprintln(os.Stderr, "upload: a target address (-t) or name (-n) must be given")
		return subcommands.ExitUsageError
	}

	configureLogging(int(cmd.verbose))
	con := newConsole()
	log := sessionLogger{}

	addr, status := cmd.resolveTarget(con)
	if status != subcommands.ExitSuccess {
		return status
	}

	con.step("Loading firmware image")
	img, err := firmware.Load(f.Arg(0))
	if err != nil {
		con.fail()
		con.err(err.Error())
		return subcommands.ExitFailure
	}
	con.ok()
	log.Debug("firmware loaded", "path", img.Path, "size", img.Size(), "sha256", img.SHA256())

	con.step("Trying connect to target device")
	conn, err := rfcomm.Dial(addr, uint8(cmd.channel), dialTimeout)
	if err != nil {
		con.fail()
		con.err(err.Error())
		return subcommands.ExitFailure
	}
	con.ok()
	defer conn.Close()

	u, err := updater.New(conn,
		updater.WithAttempts(cmd.attempts),
		updater.WithChunkSize(cmd.packSize-protocol.FrameOverhead),
		updater.WithResponseTimeout(cmd.timeout),
		updater.WithLogger(log),
		updater.WithProgressCallback(con.renderProgress),
	)
	if err != nil {
		con.err(err.Error())
		return subcommands.ExitFailure
	}

	stats, err := u.Upload(ctx, img)
	if err != nil {
		con.err(describeError(err))
		return subcommands.ExitFailure
	}

	con.info(fmt.Sprintf("Full size: %d bytes", stats.TotalBytes))
	con.info(fmt.Sprintf("Loading time: %5.2f s", stats.Elapsed.Seconds()))
	con.info(fmt.Sprintf("Average speed: %5.2f KB/s", stats.Rate()/1024))
	return subcommands.ExitSuccess
}

// resolveTarget turns the -t / -n flags into a device address. An explicit
// address wins over a name search.
func (cmd *uploadCmd) resolveTarget(con *console) (rfcomm.Addr, subcommands.ExitStatus) {
	if cmd.target != "" {
		addr, err := rfcomm.ParseAddr(cmd.target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "upload: %v\n", err)
			return rfcomm.Addr{}, subcommands.ExitUsageError
		}
		return addr, subcommands.ExitSuccess
	}

	con.step("Finding device with name")
	devices, err := rfcomm.Discover(0, discoverDuration)
	if err != nil {
		con.fail()
		con.err(fmt.Sprintf("discovery failed: %v", err))
		return rfcomm.Addr{}, subcommands.ExitFailure
	}
	i := slices.IndexFunc(devices, func(d rfcomm.Device) bool {
		return d.Name != "" && strings.Contains(d.Name, cmd.name)
	})
	if i < 0 {
		con.fail()
		con.err("device not found")
		return rfcomm.Addr{}, subcommands.ExitFailure
	}
	con.ok()
	con.info(fmt.Sprintf("Device address: %s", devices[i].Addr))
	return devices[i].Addr, subcommands.ExitSuccess
}

// describeError maps the transfer error taxonomy onto operator-facing
// messages.
func describeError(err error) string {
	var (
		handshake *updater.HandshakeError
		abort     *updater.AbortError
		teardown  *updater.TeardownError
		transport *updater.TransportError
	)
	switch {
	case errors.Is(err, protocol.ErrEmptyImage):
		return fmt.Sprintf("nothing to send: %v", err)
	case errors.As(err, &handshake):
		return fmt.Sprintf("transfer did not begin: %v", err)
	case errors.As(err, &abort):
		return fmt.Sprintf("transfer failed: %v", err)
	case errors.As(err, &teardown):
		return fmt.Sprintf("transfer did not end cleanly: %v", err)
	case errors.As(err, &transport):
		return fmt.Sprintf("link failed: %v", err)
	}
	return err.Error()
}
