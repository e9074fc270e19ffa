package commands

import (
	"context"
	"flag"
	"fmt"
)

// VERSION is set at build time with -ldflags "-X .../commands.VERSION=vX.Y.Z".
var VERSION = "v0.1.0"

var VersionCmd = Version{}

type Version struct {
}

func (c *Version) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("version", flag.ExitOnError)
}

func (c *Version) Execute(context.Context, *Options) error {
	fmt.Printf("%s\n", VERSION)

	return nil
}

func (c *Version) Name() string {
	return "version"
}

func (c *Version) Description() string {
	return "Displays the current version"
}

func (c *Version) Usage() string {
	return ""
}

func (c *Version) Help() {
	fmt.Printf("Displays the %s version in the format v<major>.<minor>.<patch> e.g. v0.1.0\n", APP)
	fmt.Println()
}
