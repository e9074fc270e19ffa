// Package scanner extracts translation keys from application source files.
//
// A key is the string literal passed as the first argument to one of the
// configured translation functions, e.g. t('common.title') or i18n.t("hello").
// Calls with a non-literal first argument (a variable, a template literal with
// placeholders, a concatenation) are ignored since their keys cannot be known
// statically.
package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

type Scanner struct {
	functions []string
	call      *regexp.Regexp
	excludes  []glob.Glob
}

// New compiles a scanner for the translation function names and the exclude
// patterns. Exclude patterns are matched against slash separated paths, e.g.
// '**/node_modules/**' or 'src/**/*.spec.js'.
func New(functions []string, excludes []string) (*Scanner, error) {
	if len(functions) == 0 {
		return nil, fmt.Errorf("At least one translation function is required")
	}

	names := []string{}
	for _, f := range functions {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, fmt.Errorf("Invalid translation function name '%v'", f)
		}

		names = append(names, regexp.QuoteMeta(f))
	}

	literal := `"(?:[^"\\\n]|\\.)*"` + `|'(?:[^'\\\n]|\\.)*'` + "|`(?:[^`\\\\]|\\\\.)*`"
	pattern := `(?s)(?:^|\W)(?:` + strings.Join(names, "|") + `)\(\s*(` + literal + `)`

	call, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	globs := []glob.Glob{}
	for _, p := range excludes {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("Invalid exclude pattern '%v' (%w)", p, err)
		}

		globs = append(globs, g)
	}

	return &Scanner{
		functions: append([]string{}, functions...),
		call:      call,
		excludes:  globs,
	}, nil
}

// Keys returns the keys of every translation call in the content, in source
// order. Repeated keys are returned once per call.
func (s *Scanner) Keys(content string) []string {
	keys := []string{}

	for _, match := range s.call.FindAllStringSubmatchIndex(content, -1) {
		literal := content[match[2]:match[3]]
		quote := literal[0]
		body := literal[1 : len(literal)-1]

		if quote == '`' && strings.Contains(body, "${") {
			continue
		}

		// ... only a lone literal argument, not 'a' + b
		if rest := strings.TrimLeft(content[match[3]:], " \t\r\n"); rest == "" || (rest[0] != ',' && rest[0] != ')') {
			continue
		}

		if key := unescape(body); key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// Scan walks each directory (every file, whatever the extension) and returns
// the keys found in traversal order. A missing directory is an error.
func (s *Scanner) Scan(fsys afero.Fs, dirs ...string) ([]string, error) {
	keys := []string{}

	for _, dir := range dirs {
		files := 0
		err := afero.Walk(fsys, dir, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if s.excluded(path) {
				if info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if info.IsDir() {
				return nil
			}

			content, err := afero.ReadFile(fsys, path)
			if err != nil {
				return err
			}

			files++
			keys = append(keys, s.Keys(string(content))...)

			return nil
		})

		if err != nil {
			return nil, fmt.Errorf("Error scanning %v (%w)", dir, err)
		}

		slog.Debug("scanned source directory", slog.String("directory", dir), slog.Int("files", files))
	}

	return keys, nil
}

func (s *Scanner) excluded(path string) bool {
	p := filepath.ToSlash(path)
	for _, g := range s.excludes {
		if g.Match(p) {
			return true
		}
	}

	return false
}
