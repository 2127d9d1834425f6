// Package storage provides a SQLite-backed Table for running the dashboard
// without Google credentials. Rows are stored as text cells so the loader's
// coercion rules apply identically to every backend.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chemi-prog/family-budget-app-v2/internal/sheets"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ sheets.Table = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll implements sheets.RowReader; insertion order is preserved by id.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]sheets.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT member, amount, category, payment_mode, date, deadline FROM records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	out := []sheets.Row{}
	for rows.Next() {
		var member, amount, category, paymentMode, date, deadline string
		if err := rows.Scan(&member, &amount, &category, &paymentMode, &date, &deadline); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, sheets.Row{
			"Member":       member,
			"Amount":       amount,
			"Category":     category,
			"Payment_Mode": paymentMode,
			"Date":         date,
			"Deadline":     deadline,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Clear implements sheets.RowClearer.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

// WriteAll implements sheets.RowWriter with the same replace-everything
// semantics as the sheet adapter, inside one transaction.
func (r *SQLiteRepository) WriteAll(ctx context.Context, rows []sheets.Row) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (member, amount, category, payment_mode, date, deadline) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			row["Member"], row["Amount"], row["Category"],
			row["Payment_Mode"], row["Date"], row["Deadline"])
		if err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit records: %w", err)
	}
	return nil
}
