package main

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/satchel/internal/config"
	"github.com/hpungsan/satchel/internal/console"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/notebookio"
	"github.com/hpungsan/satchel/internal/session"
	"github.com/hpungsan/satchel/internal/store"
)

// newCLIApp creates the CLI application. The default action is the
// interactive assistant; subcommands cover one-shot snapshot chores.
func newCLIApp() *cli.App {
	app := &cli.App{
		Name:    "satchel",
		Usage:   "Personal assistant for contacts and notes",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "Snapshot database path"},
		},
		Action: runAssistant,
		Commands: []*cli.Command{
			revisionCmd(),
			exportCmd(),
			importCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// openStore resolves the snapshot path and opens the database. The
// --file flag wins over config, which wins over the default location
// under ~/.satchel.
func openStore(c *cli.Context) (*sql.DB, *config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, ".satchel")

	cfg, err := config.Load(baseDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	path := c.String("file")
	if path == "" {
		path = cfg.SnapshotPath
	}
	if path == "" {
		path = config.DefaultSnapshotPath(baseDir)
	}

	db, err := store.Init(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	return db, cfg, nil
}

// runAssistant loads the snapshot, drives the interactive session, and
// saves the books back on exit.
func runAssistant(c *cli.Context) error {
	db, cfg, err := openStore(c)
	if err != nil {
		return outputError(err)
	}
	defer db.Close()

	contacts, notes, err := store.Load(db)
	if err != nil {
		return outputError(err)
	}
	slog.Debug("snapshot loaded",
		"contacts", len(contacts.Records()), "notes", notes.Len())

	cons := console.NewStdio(os.Stdin, os.Stdout)
	sess := session.New(contacts, notes, cons, session.Options{
		BirthdayWindow:   cfg.BirthdayWindowDays,
		SuggestThreshold: cfg.SuggestThreshold,
	})
	sess.Run()

	revision, err := store.Save(db, contacts, notes)
	if err != nil {
		slog.Error("snapshot save failed", "error", err)
		return outputError(err)
	}
	slog.Debug("snapshot saved", "revision", revision)
	cons.Println("Good bye!")
	return nil
}

// revisionCmd prints the latest snapshot revision id.
func revisionCmd() *cli.Command {
	return &cli.Command{
		Name:  "revision",
		Usage: "Print the latest snapshot revision id",
		Action: func(c *cli.Context) error {
			db, _, err := openStore(c)
			if err != nil {
				return outputError(err)
			}
			defer db.Close()

			revision, err := store.LatestRevision(db)
			if err != nil {
				return outputError(err)
			}
			if revision == "" {
				return outputError(errors.NewNotFound("snapshot", "latest"))
			}
			fmt.Println(revision)
			return nil
		},
	}
}

// exportCmd writes all notes to a markdown file without entering the
// interactive session.
func exportCmd() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Write all notes to a markdown file",
		ArgsUsage: "[path]",
		Action: func(c *cli.Context) error {
			db, _, err := openStore(c)
			if err != nil {
				return outputError(err)
			}
			defer db.Close()

			_, notes, err := store.Load(db)
			if err != nil {
				return outputError(err)
			}

			path := c.Args().First()
			if path == "" {
				path = "satchel-notes.md"
			}
			result, err := notebookio.Export(notes, path)
			if err != nil {
				return outputError(err)
			}
			fmt.Printf("Exported %d notes to %s\n", result.Notes, result.Path)
			return nil
		},
	}
}

// importCmd merges notes from a markdown file into the snapshot.
func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Read notes from a markdown file into the snapshot",
		ArgsUsage: "<path>",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return outputError(errors.NewMissingArgument("import <path>"))
			}

			db, _, err := openStore(c)
			if err != nil {
				return outputError(err)
			}
			defer db.Close()

			contacts, notes, err := store.Load(db)
			if err != nil {
				return outputError(err)
			}
			result, err := notebookio.Import(notes, path, time.Now())
			if err != nil {
				return outputError(err)
			}
			if _, err := store.Save(db, contacts, notes); err != nil {
				return outputError(err)
			}
			fmt.Printf("Imported %d notes (%d skipped)\n", result.Imported, result.Skipped)
			return nil
		},
	}
}

// outputError formats error for CLI.
func outputError(err error) error {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", appErr.Code, appErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
