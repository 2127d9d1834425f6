// Package store implements the session-local record store: it loads and
// coerces rows from the remote sheet, caches them for a short TTL, and
// flushes the full record set back on every append.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Chemi-prog/family-budget-app-v2/internal/core"
	"github.com/Chemi-prog/family-budget-app-v2/internal/sheets"
)

// DefaultTTL is how long a loaded record set is served without a remote read.
const DefaultTTL = 60 * time.Second

// Store owns the in-memory copy of all records for the current session.
// The remote sheet is the durable copy, fully overwritten on each flush.
type Store struct {
	table sheets.Table
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	records  []core.Record
	dropped  int
	loadedAt time.Time
	fresh    bool
}

func New(table sheets.Table, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		table: table,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Load returns the current record set plus the count of source rows dropped
// during coercion. Results are cached for the store's TTL. On a remote read
// failure the error is returned together with an empty set; the session
// keeps running.
func (s *Store) Load(ctx context.Context) ([]core.Record, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		return []core.Record{}, 0, err
	}
	return s.copyRecordsLocked(), s.dropped, nil
}

// refreshLocked re-reads the remote sheet when the cached copy is stale.
func (s *Store) refreshLocked(ctx context.Context) error {
	if s.fresh && s.now().Sub(s.loadedAt) < s.ttl {
		return nil
	}

	rows, err := s.table.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	records := make([]core.Record, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec, ok := decodeRow(row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if dropped > 0 {
		slog.WarnContext(ctx, "Dropped malformed sheet rows",
			"dropped", dropped,
			"kept", len(records))
	}

	s.records = records
	s.dropped = dropped
	s.loadedAt = s.now()
	s.fresh = true
	return nil
}

// Append validates and normalizes the record, adds it to the end of the
// in-memory sequence, and flushes the entire sequence to the remote sheet
// (clear-then-write-all). It returns the record as stored. A flush failure
// is returned to the caller, but the in-memory append stays in place.
func (s *Store) Append(ctx context.Context, rec core.Record) (core.Record, error) {
	rec.Category = core.NormalizeCategory(rec.Category)
	if err := rec.Validate(); err != nil {
		return core.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Refresh best-effort so the flush covers everything this session can
	// see. An unreachable remote degrades to overwriting with the local set.
	if err := s.refreshLocked(ctx); err != nil {
		slog.WarnContext(ctx, "Refresh before append failed, flushing local records only", "error", err)
	}

	s.records = append(s.records, rec)

	if err := s.flushLocked(ctx); err != nil {
		return rec, fmt.Errorf("persist records: %w", err)
	}

	// Drop the cached copy so the next load reflects the write.
	s.fresh = false

	slog.InfoContext(ctx, "Expense recorded",
		"member", rec.Member,
		"category", rec.Category,
		"amount_cents", rec.Amount.Cents,
		"date", rec.Date.String(),
		"total_records", len(s.records))
	return rec, nil
}

// flushLocked overwrites the whole remote sheet with the in-memory sequence.
func (s *Store) flushLocked(ctx context.Context) error {
	rows := make([]sheets.Row, len(s.records))
	for i, rec := range s.records {
		rows[i] = encodeRow(rec)
	}
	if err := s.table.Clear(ctx); err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}
	if err := s.table.WriteAll(ctx, rows); err != nil {
		return fmt.Errorf("write sheet: %w", err)
	}
	return nil
}

// Invalidate discards the cached record set; the next Load reads the remote.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fresh = false
}

func (s *Store) copyRecordsLocked() []core.Record {
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}

// decodeRow coerces one sheet row into a record. Rows whose Amount cannot be
// parsed or whose Date is missing after lenient parsing are rejected; a
// missing Deadline is fine.
func decodeRow(row sheets.Row) (core.Record, bool) {
	cents, err := core.ParseDecimalToCents(row["Amount"])
	if err != nil {
		return core.Record{}, false
	}
	date := core.ParseDate(row["Date"])
	if date.IsEmpty() {
		return core.Record{}, false
	}
	return core.Record{
		Member:      row["Member"],
		Amount:      core.Money{Cents: cents},
		Category:    row["Category"],
		PaymentMode: core.PaymentMode(row["Payment_Mode"]),
		Date:        date,
		Deadline:    core.ParseDate(row["Deadline"]),
	}, true
}

// encodeRow renders a record the way it is persisted: dates in the fixed
// format, an absent Deadline as the empty string.
func encodeRow(rec core.Record) sheets.Row {
	return sheets.Row{
		"Member":       rec.Member,
		"Amount":       rec.Amount.DecimalString(),
		"Category":     rec.Category,
		"Payment_Mode": string(rec.PaymentMode),
		"Date":         rec.Date.String(),
		"Deadline":     rec.Deadline.String(),
	}
}
