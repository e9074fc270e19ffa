package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// PREFIX is prepended to every environment variable name.
const PREFIX = "I18N_"

// DEFAULT_ENV is the dotenv file loaded from the project root if it exists.
const DEFAULT_ENV = ".env.local"

var ErrMissing = errors.New("Missing configuration value")

// Config holds the settings shared by the download and upload commands. Values
// are read from the process environment, optionally seeded from a dotenv file.
type Config struct {
	SpreadsheetID string `env:"SPREADSHEET_ID"`
	SheetID       string `env:"SHEET_ID"`
	ClientEmail   string `env:"GOOGLE_CLIENT_EMAIL"`
	PrivateKey    string `env:"GOOGLE_SERVICE_PRIVATE_KEY"`

	LocalesDir   string   `env:"LOCALES_DIR" envDefault:"public/locales"`
	Namespace    string   `env:"NAMESPACE" envDefault:"common"`
	BaseLanguage string   `env:"BASE_LANGUAGE" envDefault:"en"`
	Languages    []string `env:"LANGUAGES" envSeparator:","`
	Sources      []string `env:"SOURCES" envDefault:"pages,src" envSeparator:","`
	Functions    []string `env:"FUNCTIONS" envDefault:"t" envSeparator:","`
	Exclude      []string `env:"EXCLUDE" envSeparator:","`
}

// Load reads the dotenv file (if any) and then the environment. A missing dotenv
// file is not an error: the values may just as well come from the shell or CI.
func Load(file string) (*Config, error) {
	if file != "" {
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Load(file); err != nil {
				return nil, fmt.Errorf("Error loading %v (%w)", file, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := Config{}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: PREFIX}); err != nil {
		return nil, err
	}

	cfg.PrivateKey = unescape(cfg.PrivateKey)
	cfg.Languages = trim(cfg.Languages)
	cfg.Sources = trim(cfg.Sources)
	cfg.Functions = trim(cfg.Functions)
	cfg.Exclude = trim(cfg.Exclude)

	return &cfg, nil
}

// Validate checks that the four values required to reach the spreadsheet are
// present. All missing values are reported in a single error.
func (c *Config) Validate() error {
	var errs *multierror.Error

	required := []struct {
		name  string
		value string
	}{
		{"SPREADSHEET_ID", c.SpreadsheetID},
		{"SHEET_ID", c.SheetID},
		{"GOOGLE_CLIENT_EMAIL", c.ClientEmail},
		{"GOOGLE_SERVICE_PRIVATE_KEY", c.PrivateKey},
	}

	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			errs = multierror.Append(errs, fmt.Errorf("%w: %v%v", ErrMissing, PREFIX, v.name))
		}
	}

	if strings.TrimSpace(c.LocalesDir) == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %vLOCALES_DIR", ErrMissing, PREFIX))
	}

	if strings.TrimSpace(c.Namespace) == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: %vNAMESPACE", ErrMissing, PREFIX))
	}

	return errs.ErrorOrNil()
}

// Private keys pasted into a .env file usually carry literal '\n' sequences.
func unescape(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func trim(list []string) []string {
	trimmed := []string{}
	for _, v := range list {
		if s := strings.TrimSpace(v); s != "" {
			trimmed = append(trimmed, s)
		}
	}

	return trimmed
}
