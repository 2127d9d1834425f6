// Package sheets defines the outbound ports for the remote tabular store.
package sheets

import "context"

// Row is one sheet row as a named-field mapping (column name -> cell value).
type Row map[string]string

// Columns is the canonical column order of the budget sheet.
var Columns = []string{"Member", "Amount", "Category", "Payment_Mode", "Date", "Deadline"}

// Ports for outbound adapters.
type (
	RowReader interface {
		// ReadAll returns every data row of the sheet in source order.
		// An empty sheet yields an empty slice, not an error.
		ReadAll(ctx context.Context) ([]Row, error)
	}

	RowClearer interface {
		// Clear removes all content from the sheet, header included.
		Clear(ctx context.Context) error
	}

	RowWriter interface {
		// WriteAll writes the header and the given rows, replacing any
		// prior content from the top of the sheet.
		WriteAll(ctx context.Context, rows []Row) error
	}

	// Table is the full read-all/clear/write-all surface of one sheet.
	Table interface {
		RowReader
		RowClearer
		RowWriter
	}
)
