package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/i18n-sheets/i18n-sheets/commands"
	"github.com/i18n-sheets/i18n-sheets/config"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.DownloadCmd,
	&commands.UploadCmd,
	&commands.GetCmd,
	&commands.PutCmd,
}

var options = commands.Options{
	Debug: false,
	Root:  ".",
	Env:   config.DEFAULT_ENV,
}

var help = commands.NewHelp(cli)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&options.Root, "root", options.Root, "Project root directory")
	flag.StringVar(&options.Env, "env", options.Env, "dotenv file (relative to the project root)")
	flag.Parse()

	logger(options.Debug)

	cmd, err := commands.Parse(cli, help, flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cmd == nil {
		help.Execute(ctx, &options)
		os.Exit(1)
	}

	if err = cmd.Execute(ctx, &options); err != nil {
		slog.Error(fmt.Sprintf("%v", err))
		os.Exit(1)
	}
}

func logger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	slog.SetDefault(slog.New(handler))
}
