package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// version is the release version reported by the version subcommand.
const version = "0.1"

type versionCmd struct{}

// Name returns the name "version".
func (*versionCmd) Name() string { return "version" }

// Synopsis returns a description of the subcommand.
func (*versionCmd) Synopsis() string { return "Print the bfu version" }

// Usage returns a string describing usage.
func (*versionCmd) Usage() string { return "version:\n\tPrint the bfu version.\n" }

// SetFlags registers no flags; the subcommand takes none.
func (*versionCmd) SetFlags(*flag.FlagSet) {}

// Execute prints the version.
func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("bfu %s\n", version)
	return subcommands.ExitSuccess
}
