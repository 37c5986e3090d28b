package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/handymgr/jobtrack/internal/api/domain"
	"github.com/handymgr/jobtrack/internal/api/storage"
	"github.com/handymgr/jobtrack/internal/export"
	"github.com/handymgr/jobtrack/shared/logger"
	"github.com/handymgr/jobtrack/shared/sqlite"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	dbPath := flag.String("db", "handymanager.db", "Path to the SQLite database file")
	outPath := flag.String("out", "", "Output CSV file (defaults to stdout)")
	date := flag.String("date", time.Now().Format(domain.DateLayout), "Day to export (YYYY-MM-DD)")
	flag.Parse()

	appLogger := logger.NewDefault()

	dbClient, err := sqlite.NewClient(&sqlite.Config{Path: *dbPath}, appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbClient.Close()

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	store := storage.NewStorage(dbClient)
	count, err := export.WriteDay(context.Background(), store, out, *date)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d jobs for %s\n", count, *date)
	return nil
}
