package locales

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Store reads and writes the <root>/<language>/<namespace>.json layout used by
// the web application's i18n loader.
type Store struct {
	fs        afero.Fs
	root      string
	namespace string
}

func NewStore(fs afero.Fs, root, namespace string) *Store {
	return &Store{
		fs:        fs,
		root:      filepath.Clean(root),
		namespace: namespace,
	}
}

func (s *Store) Root() string {
	return s.root
}

// Path returns the JSON file path for a language.
func (s *Store) Path(language string) string {
	return filepath.Join(s.root, language, s.namespace+".json")
}

// Languages lists the language sub-directories of the locales root, sorted by
// name. Plain files in the root are ignored.
func (s *Store) Languages() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("Unable to read locales directory %v (%w)", s.root, err)
	}

	languages := []string{}
	for _, e := range entries {
		if e.IsDir() {
			languages = append(languages, e.Name())
		}
	}

	sort.Strings(languages)

	return languages, nil
}

// Load reads the messages for a single language.
func (s *Store) Load(language string) (*Messages, error) {
	path := s.Path(language)

	bytes, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}

	messages := NewMessages()
	if err := messages.UnmarshalJSON(bytes); err != nil {
		return nil, fmt.Errorf("Invalid JSON file %v (%w)", path, err)
	}

	return messages, nil
}

// LoadAll reads the messages for every listed language.
func (s *Store) LoadAll(languages []string) (map[string]*Messages, error) {
	all := map[string]*Messages{}
	for _, lang := range languages {
		messages, err := s.Load(lang)
		if err != nil {
			return nil, err
		}

		all[lang] = messages
	}

	return all, nil
}

// Recreate discards everything under the locales root and creates an empty
// root directory.
func (s *Store) Recreate() error {
	if exists, err := afero.DirExists(s.fs, s.root); err != nil {
		return err
	} else if exists {
		if err := s.fs.RemoveAll(s.root); err != nil {
			return fmt.Errorf("Unable to remove %v (%w)", s.root, err)
		}
	}

	return s.fs.MkdirAll(s.root, 0755)
}

// Write replaces the locales root with one JSON file per language in the pack.
func (s *Store) Write(pack *Pack) error {
	if err := s.Recreate(); err != nil {
		return err
	}

	for _, lang := range pack.Languages {
		dir := filepath.Join(s.root, lang)
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}

		messages, ok := pack.Messages[lang]
		if !ok {
			messages = NewMessages()
		}

		bytes, err := messages.MarshalJSON()
		if err != nil {
			return err
		}

		path := s.Path(lang)
		if err := afero.WriteFile(s.fs, path, bytes, 0644); err != nil {
			return fmt.Errorf("Error writing %v (%w)", path, err)
		}

		slog.Debug("wrote language file", slog.String("language", lang), slog.String("file", path), slog.Int("keys", messages.Len()))
	}

	return nil
}
