// Command import loads a JSON-lines corpus export into the SQLite document store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"quran-explorer/internal/config"
	"quran-explorer/internal/importer"
	"quran-explorer/internal/storage"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		dataDir   string
		dbPath    string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the corpus export into the database",
		Long: `Import wipes the suras, verses and words tables and reloads them from
<data-dir>/suras/documents.jsonl, <data-dir>/verses/documents.jsonl and
<data-dir>/wordIndex/documents.jsonl. When the word index file is missing,
words are derived from verse segments.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("batch-size") {
				cfg.ImportBatchSize = batchSize
			}
			return run(cmd.Context(), cfg, cmd)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory holding the export (overrides DATA_DIR)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DB_PATH)")
	cmd.Flags().IntVar(&batchSize, "batch-size", importer.DefaultBatchSize, "Documents per insert batch (overrides IMPORT_BATCH_SIZE)")

	return cmd
}

func run(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	if err := storage.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	verseRepo := storage.NewVerseRepo(db)
	pipeline := importer.NewPipeline(
		storage.NewSuraRepo(db),
		verseRepo,
		storage.NewWordRepo(db),
		verseRepo,
		cfg.ImportBatchSize,
	)

	stats, err := pipeline.Run(ctx, importer.DefaultPaths(cfg.DataDir))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}
