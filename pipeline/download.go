// Package pipeline implements the two sync directions between the translation
// worksheet and the locales tree: download (worksheet to JSON files) and upload
// (locales plus source scan to worksheet).
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/i18n-sheets/i18n-sheets/locales"
	"github.com/i18n-sheets/i18n-sheets/sheet"
)

// RowSource is the read side of the spreadsheet client.
type RowSource interface {
	FetchRows(ctx context.Context, ws *sheet.Worksheet) (*sheet.Table, error)
}

type Download struct {
	Source    RowSource
	Worksheet *sheet.Worksheet
	Store     *locales.Store
	Languages []string
}

// Run fetches the worksheet, builds the language pack and replaces the locales
// tree with it. Any error is returned to the caller, including write errors
// that may leave the locales tree incomplete.
func (d *Download) Run(ctx context.Context) (*locales.Pack, error) {
	if d.Source == nil || d.Store == nil {
		return nil, fmt.Errorf("Download pipeline not initialised")
	}

	if d.Worksheet == nil {
		return nil, sheet.ErrNoWorksheet
	}

	table, err := d.Source.FetchRows(ctx, d.Worksheet)
	if err != nil {
		return nil, err
	}

	languages, err := ResolveLanguages(table, d.Languages)
	if err != nil {
		return nil, err
	}

	pack, err := BuildPack(table, languages)
	if err != nil {
		return nil, err
	}

	if err := d.Store.Write(pack); err != nil {
		return nil, err
	}

	slog.Info("downloaded translations",
		slog.String("worksheet", d.Worksheet.Title),
		slog.Any("languages", pack.Languages),
		slog.Int("rows", len(table.Rows)))

	return pack, nil
}

// BuildPack converts the worksheet rows into a language pack. Rows with a blank
// key are skipped and a missing cell is stored as an empty string. A repeated
// key overwrites the earlier value but keeps its position.
func BuildPack(table *sheet.Table, languages Languages) (*locales.Pack, error) {
	if table == nil {
		return nil, fmt.Errorf("Empty sheet")
	}

	if !table.Has(KEY) {
		return nil, fmt.Errorf("Worksheet has no '%v' column", KEY)
	}

	pack := locales.NewPack(languages)
	skipped := 0

	for _, row := range table.Rows {
		key := strings.TrimSpace(row[KEY])
		if key == "" {
			skipped++
			continue
		}

		for _, lang := range languages {
			pack.Set(lang, key, strings.TrimSpace(row[lang]))
		}
	}

	if skipped > 0 {
		slog.Debug("skipped rows without a key", slog.Int("rows", skipped))
	}

	return pack, nil
}
