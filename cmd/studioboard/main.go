package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/studioboard/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opts app.Options

	flagSet := pflag.NewFlagSet("studioboard", pflag.ContinueOnError)
	flagSet.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/studioboard/config.toml)")
	flagSet.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/studioboard/prefs.toml)")
	flagSet.StringVar(&opts.DataFile, "data", "", "read client records from this YAML or JSON file instead of the API")
	flagSet.StringVar(&opts.StartRoute, "route", "", "initial route, e.g. / or /sales-analytics")
	flagSet.IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (default from config, 5s)")
	flagSet.StringVar(&opts.LogOutput, "log-output", "", "write log records to this file instead of the configured log_file")
	flagSet.BoolVar(&opts.Debug, "debug", false, "log at debug level")
	showVersion := flagSet.Bool("version", false, "print version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "studioboard: %v\n", err)
		return 2
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return 0
	}
	if *showVersion {
		fmt.Printf("studioboard %s\n", version)
		return 0
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		fmt.Fprintf(os.Stderr, "studioboard: unexpected argument: %s\n", rest[0])
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "studioboard: %v\n", err)
		return 1
	}
	return 0
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `studioboard: terminal dashboard for studio sales and client analytics.

Records come from the analytics API (api_bind in config.toml) or, with
--data, from a local YAML or JSON file.

Usage:
  studioboard [flags]

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
