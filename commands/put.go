package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/i18n-sheets/i18n-sheets/sheet"
)

var PutCmd = Put{
	file: "",
}

type Put struct {
	file string
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("put", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file (relative to the project root)")

	return flagset
}

func (cmd *Put) Execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	p, err := setup(options)
	if err != nil {
		return err
	}

	f, err := p.fs.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	table, err := sheet.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("Invalid TSV file (%v)", err)
	}

	client, ws, err := connect(ctx, p.conf, options)
	if err != nil {
		return err
	}

	if err := client.ClearAndReplace(ctx, ws, table.Header, table.Rows); err != nil {
		return err
	}

	infof("Uploaded TSV file %v (%v rows) to worksheet '%v'", cmd.file, len(table.Rows), ws.Title)

	return nil
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Replaces the translations worksheet with the contents of a TSV file"
}

func (cmd *Put) Usage() string {
	return "--file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--root <dir>] put --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Clears the translations worksheet and writes the header and rows from a TSV file, e.g.")
	fmt.Println("  to restore a backup made with 'get' or 'upload --backup'")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --debug put --file \"translations.tsv\"\n", APP)
	fmt.Println()
}
