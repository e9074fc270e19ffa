package pipeline

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"

	"github.com/i18n-sheets/i18n-sheets/sheet"
)

const (
	KEY    = "key"
	ISUSED = "isUsed"

	USED   = "O"
	UNUSED = "X"
)

// Languages is the ordered list of language codes a pipeline works with. It is
// resolved once, at the start of a run.
type Languages []string

// LanguagesFromHeader treats every worksheet column other than 'key', 'isUsed'
// and blank columns as a language.
func LanguagesFromHeader(header []string) Languages {
	return lo.Filter(header, func(h string, _ int) bool {
		return h != "" && h != KEY && h != ISUSED
	})
}

// ResolveLanguages returns the configured languages if any, otherwise the
// languages in the worksheet header. Configured languages must all be worksheet
// columns. Every language code is used as a directory name under the locales
// root so codes that are not a single path element are rejected.
func ResolveLanguages(table *sheet.Table, configured []string) (Languages, error) {
	if len(configured) == 0 {
		languages := LanguagesFromHeader(table.Header)
		if err := validate(languages); err != nil {
			return nil, err
		}

		check(languages)

		return languages, nil
	}

	for _, lang := range configured {
		if lang == KEY || lang == ISUSED {
			return nil, fmt.Errorf("Reserved column '%v' is not a language", lang)
		}

		if !table.Has(lang) {
			return nil, fmt.Errorf("Worksheet has no column for language '%v'", lang)
		}
	}

	languages := Languages(lo.Uniq(configured))
	if err := validate(languages); err != nil {
		return nil, err
	}

	check(languages)

	return languages, nil
}

func validate(languages Languages) error {
	for _, lang := range languages {
		if lang == "." || lang == ".." || strings.ContainsAny(lang, `/\`) {
			return fmt.Errorf("Invalid language code '%v'", lang)
		}
	}

	return nil
}

// check warns about codes that are not well-formed BCP 47 tags. They are still
// used as-is since the directory names are whatever the application expects.
func check(languages Languages) {
	for _, lang := range languages {
		if _, err := language.Parse(lang); err != nil {
			slog.Warn("language code is not a valid BCP 47 tag", slog.String("language", lang), slog.Any("error", err))
		}
	}
}
