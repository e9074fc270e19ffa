package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/i18n-sheets/i18n-sheets/locales"
	"github.com/i18n-sheets/i18n-sheets/pipeline"
	"github.com/i18n-sheets/i18n-sheets/scanner"
)

var UploadCmd = Upload{
	dryrun: false,
	backup: "",
}

type Upload struct {
	dryrun bool
	backup string
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Replaces the translations worksheet with the locales keys, flagged with whether the source code still uses them"
}

func (cmd *Upload) Usage() string {
	return "[--dryrun] [--backup <file>]"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--root <dir>] upload [--dryrun] [--backup <file>]\n", APP)
	fmt.Println()
	fmt.Println("  Scans the source directories for translation keys, merges them with the keys in the base")
	fmt.Println("  language file and replaces the translations worksheet with the result. Existing keys are")
	fmt.Println("  flagged 'O' (used) or 'X' (unused), new keys are appended without translations.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s upload --dryrun\n", APP)
	fmt.Printf("    %s --debug upload --backup .i18n-sheets/backup.tsv\n", APP)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("upload", flag.ExitOnError)

	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Reconciles the keys without updating the worksheet")
	flagset.StringVar(&cmd.backup, "backup", cmd.backup, "Saves the current worksheet to a TSV file (relative to the project root) before replacing it")

	return flagset
}

func (cmd *Upload) Execute(ctx context.Context, options *Options) error {
	p, err := setup(options)
	if err != nil {
		return err
	}

	s, err := scanner.New(p.conf.Functions, p.conf.Exclude)
	if err != nil {
		return err
	}

	client, ws, err := connect(ctx, p.conf, options)
	if err != nil {
		return err
	}

	u := pipeline.Upload{
		Sink:         client,
		Worksheet:    ws,
		Store:        locales.NewStore(p.fs, p.conf.LocalesDir, p.conf.Namespace),
		Scanner:      s,
		FS:           p.fs,
		Sources:      p.conf.Sources,
		BaseLanguage: p.conf.BaseLanguage,
		DryRun:       cmd.dryrun,
		Backup:       cmd.backup,
	}

	result := u.Run(ctx)
	if !result.OK() {
		warnf("%v", result)
		return fmt.Errorf("Upload failed at '%v' stage (%w)", result.Stage, result.Reason)
	}

	switch {
	case result.Written:
		infof("Uploaded %v keys to worksheet '%v' (%v)", result.Existing+result.New, ws.Title, result)

	default:
		infof("Dry run: %v", result)
	}

	return nil
}
