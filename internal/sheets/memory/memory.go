// Package memory provides an in-memory Table used in tests and as the
// credential-free development backend.
package memory

import (
	"context"
	"encoding/csv"
	"os"
	"sync"

	"github.com/Chemi-prog/family-budget-app-v2/internal/sheets"
)

type Store struct {
	mu   sync.Mutex
	rows []sheets.Row
}

var _ sheets.Table = (*Store)(nil)

func New(rows ...sheets.Row) *Store {
	s := &Store{}
	s.rows = append(s.rows, rows...)
	return s
}

// NewFromFile seeds the store from a CSV file with a header row. A missing
// or malformed file yields an empty store.
func NewFromFile(path string) *Store {
	f, err := os.Open(path)
	if err != nil {
		return New()
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil || len(records) < 2 {
		return New()
	}
	header := records[0]
	s := New()
	for _, cells := range records[1:] {
		row := sheets.Row{}
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		s.rows = append(s.rows, row)
	}
	return s
}

func (s *Store) ReadAll(_ context.Context) ([]sheets.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sheets.Row, len(s.rows))
	for i, row := range s.rows {
		cp := sheets.Row{}
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, nil
}

func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	return nil
}

func (s *Store) WriteAll(_ context.Context, rows []sheets.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make([]sheets.Row, len(rows))
	for i, row := range rows {
		cp := sheets.Row{}
		for k, v := range row {
			cp[k] = v
		}
		s.rows[i] = cp
	}
	return nil
}

// Len returns the number of stored rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}
