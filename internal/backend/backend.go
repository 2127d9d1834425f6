// Package backend selects and constructs the data backend behind the
// record store: Google Sheets in production, SQLite or memory for
// development and tests.
package backend

import "github.com/Chemi-prog/family-budget-app-v2/internal/sheets"

// Type identifies a data backend.
type Type string

const (
	Sheets Type = "sheets"
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case Sheets, SQLite, Memory:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result holds the constructed table and its optional cleanup.
type Result struct {
	Table   sheets.Table
	Cleanup CleanupFunc
}
