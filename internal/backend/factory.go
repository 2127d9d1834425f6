package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Chemi-prog/family-budget-app-v2/internal/config"
	gsheet "github.com/Chemi-prog/family-budget-app-v2/internal/sheets/google"
	"github.com/Chemi-prog/family-budget-app-v2/internal/sheets/memory"
	"github.com/Chemi-prog/family-budget-app-v2/internal/storage"
)

// Factory creates backends from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Create builds the table for the configured backend type.
func (f *Factory) Create(ctx context.Context, cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case Sheets:
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend",
			"spreadsheet_id", cfg.GoogleSpreadsheetID)
		return &Result{Table: cli}, nil

	case SQLite:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Table: repo, Cleanup: repo.Close}, nil

	default:
		store := memory.NewFromFile(cfg.SeedFile)
		f.logger.Info("Initialized memory backend",
			"seed_file", cfg.SeedFile,
			"seeded_rows", store.Len())
		return &Result{Table: store}, nil
	}
}
