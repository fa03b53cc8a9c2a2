package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gamecatalog/admin/internal/catalog"
	"gamecatalog/admin/internal/config"
	"gamecatalog/admin/internal/console"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("catalog-console", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	config.RegisterConsoleFlags(fs)
	verbose := fs.BoolP("verbose", "v", false, "log every API request")
	noProgress := fs.Bool("no-progress", false, "hide the import progress bar")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.LoadConsoleConfig(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client := catalog.New(cfg.APIURL,
		catalog.WithTimeout(cfg.Timeout),
		catalog.WithLogger(logger),
	)
	app := console.New(client, cfg,
		console.WithLogger(logger),
		console.WithProgress(!*noProgress),
	)

	// Calls are not cancelled once issued.
	if err := app.Run(context.Background(), fs.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", console.Describe(err))
		if errors.Is(err, console.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
