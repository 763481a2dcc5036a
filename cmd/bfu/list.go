package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"golang.org/x/exp/slices"

	"github.com/moffa90/go-bfu/rfcomm"
)

type listCmd struct {
	adapter  int
	duration time.Duration
}

// Name returns the name "list".
func (*listCmd) Name() string { return "list" }

// Synopsis returns a description of the subcommand.
func (*listCmd) Synopsis() string { return "List nearby Bluetooth devices" }

// Usage returns a string describing usage.
func (*listCmd) Usage() string {
	return "list [-i adapter] [-d duration]:\n\tRun a Bluetooth inquiry and list the devices that answer.\n"
}

// SetFlags sets the flags on the list subcommand.
func (cmd *listCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&cmd.adapter, "i", 0, "HCI adapter index")
	f.DurationVar(&cmd.duration, "d", 10*time.Second, "inquiry duration")
}

// Execute runs the inquiry and prints one line per device.
func (cmd *listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	con := newConsole()

	con.step("Script is looking for devices")
	devices, err := rfcomm.Discover(cmd.adapter, cmd.duration)
	if err != nil {
		con.fail()
		con.err(fmt.Sprintf("discovery failed: %v", err))
		return subcommands.ExitFailure
	}
	con.ok()

	slices.SortFunc(devices, func(a, b rfcomm.Device) int {
		return bytes.Compare(a.Addr[:], b.Addr[:])
	})

	con.info(fmt.Sprintf("Found %d devices", len(devices)))
	unnamed := 0
	for i, dev := range devices {
		name := dev.Name
		if name == "" {
			name = "<unknown>"
			unnamed++
		}
		con.info(fmt.Sprintf("Device %d => %s \t %s", i, dev.Addr, name))
	}
	if unnamed > 0 {
		con.warn(fmt.Sprintf("name lookup failed for %d device(s)", unnamed))
	}
	return subcommands.ExitSuccess
}
