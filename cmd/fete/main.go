package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/fete/internal/cli"
	"github.com/alexanderramin/fete/internal/db"
	"github.com/alexanderramin/fete/internal/intelligence"
	"github.com/alexanderramin/fete/internal/llm"
	"github.com/alexanderramin/fete/internal/repository"
	"github.com/alexanderramin/fete/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.fete/fete.db
	dbPath := os.Getenv("FETE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fete", "fete.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire the completion client. A missing API key only surfaces when a
	// generation command actually runs, so event CRUD works without one.
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOpenAIClient(llmCfg, observer)
	planner := intelligence.NewPlannerService(llmClient)

	store := repository.NewSQLiteEventStore(database)

	app := &cli.App{
		Events:  service.NewEventService(store, planner),
		Planner: planner,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
