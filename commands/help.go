package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

// Help lists the available commands or, given a command name, prints that
// command's detailed help.
type Help struct {
	cli   []Command
	flags *flag.FlagSet
}

func NewHelp(cli []Command) *Help {
	return &Help{
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the command help"
}

func (h *Help) Usage() string {
	return "[command]"
}

func (h *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help [command]\n", APP)
	fmt.Println()
	fmt.Println("  Displays the list of commands or the detailed help for a command")
	fmt.Println()
}

func (h *Help) FlagSet() *flag.FlagSet {
	h.flags = flag.NewFlagSet("help", flag.ExitOnError)

	return h.flags
}

func (h *Help) Execute(ctx context.Context, options *Options) error {
	if h.flags != nil && h.flags.NArg() > 0 {
		name := strings.TrimSpace(h.flags.Arg(0))

		if name == h.Name() {
			h.Help()
			return nil
		}

		for _, c := range h.cli {
			if c.Name() == name {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("Invalid command: '%v'", name)
	}

	h.usage()

	return nil
}

func (h *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--root <dir>] [--env <file>] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	fmt.Printf("    %-10s %s\n", h.Name(), h.Description())
	for _, c := range h.cli {
		fmt.Printf("    %-10s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	flag.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-8s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Printf("  Run '%s help <command>' for the command options\n", APP)
	fmt.Println()
}

// Parse finds the command named by the first argument and parses its flags
// from the remaining arguments. No arguments returns a nil command.
func Parse(cli []Command, help *Help, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	name := args[0]
	commands := append([]Command{help}, cli...)

	for _, c := range commands {
		if c.Name() == name {
			flagset := c.FlagSet()
			if err := flagset.Parse(args[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("Invalid command: '%v'", name)
}
