package main

import (
	"fmt"
	"log/slog"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// configureLogging sends diagnostics to stderr so they never mix with
// the interactive prompt on stdout.
func configureLogging() {
	level := slog.LevelWarn
	if os.Getenv("SATCHEL_DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

func main() {
	configureLogging()

	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
