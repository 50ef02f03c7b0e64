// Command syllacard is an interactive vocabulary drill: it presents words
// with one syllable masked and repeats them until every card in the session
// is answered correctly. Interrupted sessions are saved and resumed.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"syllacard/internal/cli"
	"syllacard/internal/config"
	"syllacard/internal/platform/jsonfile"
	"syllacard/internal/platform/logger"
	"syllacard/internal/service/importer"
	"syllacard/internal/syllable"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "syllacard:", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Log)
	if err != nil {
		return err
	}

	decks, err := jsonfile.NewDeckStore(cfg.Decks.Dir, log)
	if err != nil {
		return err
	}

	// Saved sessions live next to the deck files.
	sessions, err := jsonfile.NewSessionStore(cfg.Decks.Dir, log)
	if err != nil {
		return err
	}

	imp := importer.New(decks, syllable.Split, log)

	menu := cli.New(cfg, decks, sessions, imp, log, os.Stdin, os.Stdout)
	return menu.Run()
}
