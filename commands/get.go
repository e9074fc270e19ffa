package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/i18n-sheets/i18n-sheets/sheet"
)

var GetCmd = Get{
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the translations worksheet and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--root <dir>] get --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the translations worksheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --debug get --file \"translations.tsv\"\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name (relative to the project root). Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	p, err := setup(options)
	if err != nil {
		return err
	}

	client, ws, err := connect(ctx, p.conf, options)
	if err != nil {
		return err
	}

	table, err := client.FetchRows(ctx, ws)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cmd.file)
	if err := p.fs.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := afero.TempFile(p.fs, dir, ".worksheet-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		p.fs.Remove(tmp.Name())
	}()

	if err := sheet.WriteTSV(tmp, table); err != nil {
		return fmt.Errorf("Error creating TSV file (%v)", err)
	}

	tmp.Close()

	if err := p.fs.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved worksheet '%v' (%v rows) to file %v", ws.Title, len(table.Rows), cmd.file)

	return nil
}
