package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/i18n-sheets/i18n-sheets/locales"
	"github.com/i18n-sheets/i18n-sheets/scanner"
	"github.com/i18n-sheets/i18n-sheets/sheet"
)

// RowSink is the write side of the spreadsheet client. FetchRows is only used
// to back up the worksheet before it is replaced.
type RowSink interface {
	RowSource
	ClearAndReplace(ctx context.Context, ws *sheet.Worksheet, header []string, rows []sheet.Row) error
}

type Upload struct {
	Sink         RowSink
	Worksheet    *sheet.Worksheet
	Store        *locales.Store
	Scanner      *scanner.Scanner
	FS           afero.Fs
	Sources      []string
	BaseLanguage string
	DryRun       bool
	Backup       string
}

// Run reconciles the keys in the base language file with the keys used in the
// source tree and replaces the worksheet with the result. Run never returns an
// error: failures are reported in the Result along with the stage that failed.
func (u *Upload) Run(ctx context.Context) (result Result) {
	stage := StageLanguages

	defer func() {
		if r := recover(); r != nil {
			result = result.fail(stage, fmt.Errorf("%v", r))
		}
	}()

	if u.Sink == nil || u.Store == nil || u.Scanner == nil || u.FS == nil {
		return result.fail(stage, fmt.Errorf("Upload pipeline not initialised"))
	}

	// ... languages
	languages, err := u.Store.Languages()
	if err != nil {
		return result.fail(stage, err)
	}

	result.Languages = languages

	if !slices.Contains(languages, u.BaseLanguage) {
		return result.fail(stage, fmt.Errorf("Base language '%v' not found in %v", u.BaseLanguage, u.Store.Root()))
	}

	// ... load
	stage = StageLoad
	messages, err := u.Store.LoadAll(languages)
	if err != nil {
		return result.fail(stage, err)
	}

	oldKeys := messages[u.BaseLanguage].Keys()
	slices.Sort(oldKeys)

	// ... scan
	stage = StageScan
	found, err := u.Scanner.Scan(u.FS, u.Sources...)
	if err != nil {
		return result.fail(stage, err)
	}

	codeKeys := lo.Uniq(found)
	slices.Sort(codeKeys)

	rows := Reconcile(oldKeys, codeKeys, messages, languages)
	header := append([]string{ISUSED, KEY}, languages...)

	result.Existing = len(oldKeys)
	result.New = len(rows) - len(oldKeys)
	for _, row := range rows[:len(oldKeys)] {
		if row[ISUSED] == USED {
			result.Used++
		} else {
			result.Unused++
		}
	}

	slog.Info("reconciled translation keys",
		slog.Any("languages", languages),
		slog.Int("existing", result.Existing),
		slog.Int("used", result.Used),
		slog.Int("unused", result.Unused),
		slog.Int("new", result.New))

	if u.Worksheet == nil {
		return result.fail(StageWrite, sheet.ErrNoWorksheet)
	}

	// ... backup
	if u.Backup != "" {
		stage = StageBackup
		if err := u.backup(ctx); err != nil {
			return result.fail(stage, err)
		}
	}

	// ... write
	stage = StageWrite
	if u.DryRun {
		slog.Info("dry run, worksheet not updated", slog.String("worksheet", u.Worksheet.Title), slog.Int("rows", len(rows)))
		return result
	}

	if err := u.Sink.ClearAndReplace(ctx, u.Worksheet, header, rows); err != nil {
		return result.fail(stage, err)
	}

	result.Written = true

	return result
}

func (u *Upload) backup(ctx context.Context) error {
	table, err := u.Sink.FetchRows(ctx, u.Worksheet)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(u.Backup); dir != "" {
		if err := u.FS.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := u.FS.Create(u.Backup)
	if err != nil {
		return err
	}

	defer f.Close()

	if err := sheet.WriteTSV(f, table); err != nil {
		return fmt.Errorf("Error writing backup %v (%w)", u.Backup, err)
	}

	slog.Info("backed up worksheet", slog.String("file", u.Backup), slog.Int("rows", len(table.Rows)))

	return nil
}

// Reconcile builds the worksheet rows: one row per existing key (sorted) with
// its value in every language, flagged as used if the key was found in the
// source, followed by one row per new source key with no values.
func Reconcile(oldKeys, codeKeys []string, messages map[string]*locales.Messages, languages []string) []sheet.Row {
	used := lo.SliceToMap(codeKeys, func(k string) (string, bool) { return k, true })
	existing := lo.SliceToMap(oldKeys, func(k string) (string, bool) { return k, true })

	rows := []sheet.Row{}

	for _, key := range oldKeys {
		row := sheet.Row{
			ISUSED: UNUSED,
			KEY:    key,
		}

		if used[key] {
			row[ISUSED] = USED
		}

		for _, lang := range languages {
			value := ""
			if m, ok := messages[lang]; ok && m != nil {
				value, _ = m.Get(key)
			}

			row[lang] = value
		}

		rows = append(rows, row)
	}

	for _, key := range codeKeys {
		if !existing[key] {
			rows = append(rows, sheet.Row{
				ISUSED: USED,
				KEY:    key,
			})
		}
	}

	return rows
}
