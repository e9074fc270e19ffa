package commands

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"google.golang.org/api/option"

	"github.com/i18n-sheets/i18n-sheets/config"
	"github.com/i18n-sheets/i18n-sheets/sheet"
)

const APP = "i18n-sheets"

const DEFAULT_WORKDIR = ".i18n-sheets"

// Options are the global command line options, shared by every command.
type Options struct {
	Debug bool
	Root  string
	Env   string

	google []option.ClientOption
}

// Command is the shape of every i18n-sheets sub-command.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

// project is the resolved project root: the configuration plus a file system
// rooted at the project directory. All relative paths (locales, sources,
// work files) are resolved against it.
type project struct {
	root string
	conf *config.Config
	fs   afero.Fs
}

func setup(options *Options) (*project, error) {
	root := options.Root
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("Invalid project root '%v' (%w)", options.Root, err)
	}

	if exists, err := afero.DirExists(afero.NewOsFs(), root); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf("Project root '%v' does not exist", root)
	}

	file := options.Env
	if file != "" && !filepath.IsAbs(file) {
		file = filepath.Join(root, file)
	}

	conf, err := config.Load(file)
	if err != nil {
		return nil, fmt.Errorf("Error loading configuration (%w)", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	debugf("project root:%v  spreadsheet:%v  sheet:%v  locales:%v", root, conf.SpreadsheetID, conf.SheetID, conf.LocalesDir)

	return &project{
		root: root,
		conf: conf,
		fs:   afero.NewBasePathFs(afero.NewOsFs(), root),
	}, nil
}

func connect(ctx context.Context, conf *config.Config, options *Options) (*sheet.Client, *sheet.Worksheet, error) {
	client, err := sheet.NewClient(conf.SpreadsheetID, conf.SheetID, conf.ClientEmail, conf.PrivateKey, options.google...)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Connect(ctx); err != nil {
		return nil, nil, fmt.Errorf("Google Sheets authentication/authorization error (%w)", err)
	}

	ws := client.Worksheet()
	if ws == nil {
		return nil, nil, fmt.Errorf("Unable to identify worksheet '%v' in spreadsheet %v", conf.SheetID, conf.SpreadsheetID)
	}

	debugf("worksheet - ID:%v  title:%v", ws.ID, ws.Title)

	return client, ws, nil
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flag.VisitAll(func(f *flag.Flag) {
		count++
	})

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count > 0 {
		fmt.Println()
		fmt.Println("  Options:")
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
		})
	}
}

func debugf(format string, args ...any) {
	slog.Debug(fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...))
}
