package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/i18n-sheets/i18n-sheets/locales"
	"github.com/i18n-sheets/i18n-sheets/pipeline"
	"github.com/i18n-sheets/i18n-sheets/sheet"
)

var DownloadCmd = Download{
	workdir:    DEFAULT_WORKDIR,
	ifModified: false,
}

type Download struct {
	workdir    string
	ifModified bool
}

func (cmd *Download) Name() string {
	return "download"
}

func (cmd *Download) Description() string {
	return "Downloads the translations worksheet to the locales JSON files"
}

func (cmd *Download) Usage() string {
	return "[--if-modified] [--workdir <dir>]"
}

func (cmd *Download) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--root <dir>] download [--if-modified] [--workdir <dir>]\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the locales directory with one <language>/<namespace>.json file per language")
	fmt.Println("  column in the translations worksheet. Rows without a key are skipped.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s download\n", APP)
	fmt.Printf("    %s --root ./web --debug download --if-modified\n", APP)
	fmt.Println()
}

func (cmd *Download) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("download", flag.ExitOnError)

	flagset.BoolVar(&cmd.ifModified, "if-modified", cmd.ifModified, "Only downloads the worksheet if the spreadsheet has been modified since the last download")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory (relative to the project root) for working files e.g. revisions")

	return flagset
}

func (cmd *Download) Execute(ctx context.Context, options *Options) error {
	p, err := setup(options)
	if err != nil {
		return err
	}

	client, ws, err := connect(ctx, p.conf, options)
	if err != nil {
		return err
	}

	// ... revision check
	var revision *sheet.Revision
	var file = filepath.Join(cmd.workdir, p.conf.SpreadsheetID+".revision")

	if cmd.ifModified {
		if revision, err = client.Revision(ctx); err != nil {
			return err
		}

		previous, err := sheet.LoadRevision(p.fs, file)
		if err != nil {
			return err
		}

		debugf("spreadsheet revision - current:%v  previous:%v", revision, previous)

		if previous != "" && previous == revision.ID {
			infof("Spreadsheet not modified since revision %v, nothing to do", previous)
			return nil
		}
	}

	// ... download
	d := pipeline.Download{
		Source:    client,
		Worksheet: ws,
		Store:     locales.NewStore(p.fs, p.conf.LocalesDir, p.conf.Namespace),
		Languages: p.conf.Languages,
	}

	pack, err := d.Run(ctx)
	if err != nil {
		return err
	}

	infof("Downloaded %v languages from worksheet '%v' to %v", len(pack.Languages), ws.Title, filepath.Join(p.root, p.conf.LocalesDir))

	if revision != nil {
		if err := sheet.SaveRevision(p.fs, file, revision); err != nil {
			warnf("Unable to record spreadsheet revision (%v)", err)
		}
	}

	return nil
}
