package google

import (
	"reflect"
	"testing"

	ports "github.com/Chemi-prog/family-budget-app-v2/internal/sheets"
)

func TestRowsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"Member", "Amount", "Category", "Payment_Mode", "Date", "Deadline"},
		{"Husnain", "12.50", "Grocery", "Cash", "2024-01-15", ""},
		{"", "", "", "", "", ""}, // blank row, must be skipped
		{"Father", "300", "Fuel", "Credit Card", "2024-01-20", "2024-02-01"},
		{"Mother", "45.00"}, // short row, missing cells read as ""
	}

	rows := rowsFromValues(values)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0]["Member"] != "Husnain" || rows[0]["Amount"] != "12.50" || rows[0]["Deadline"] != "" {
		t.Fatalf("first row mismatch: %v", rows[0])
	}
	if rows[1]["Payment_Mode"] != "Credit Card" || rows[1]["Deadline"] != "2024-02-01" {
		t.Fatalf("second row mismatch: %v", rows[1])
	}
	if rows[2]["Category"] != "" || rows[2]["Amount"] != "45.00" {
		t.Fatalf("short row mismatch: %v", rows[2])
	}
}

func TestRowsFromValuesEmpty(t *testing.T) {
	if rows := rowsFromValues(nil); len(rows) != 0 {
		t.Fatalf("nil values produced %d rows", len(rows))
	}
	// Header only, no data.
	rows := rowsFromValues([][]interface{}{{"Member", "Amount"}})
	if len(rows) != 0 {
		t.Fatalf("header-only values produced %d rows", len(rows))
	}
}

func TestRowsFromValuesTrimsCells(t *testing.T) {
	values := [][]interface{}{
		{" Member ", "Amount"},
		{"  Husnain ", " 12.50"},
	}
	rows := rowsFromValues(values)
	if len(rows) != 1 || rows[0]["Member"] != "Husnain" || rows[0]["Amount"] != "12.50" {
		t.Fatalf("cells not trimmed: %v", rows)
	}
}

func TestValuesFromRows(t *testing.T) {
	rows := []ports.Row{
		{"Member": "Husnain", "Amount": "12.50", "Category": "Grocery", "Payment_Mode": "Cash", "Date": "2024-01-15", "Deadline": ""},
	}
	values := valuesFromRows(rows)
	if len(values) != 2 {
		t.Fatalf("expected header plus 1 row, got %d", len(values))
	}
	wantHeader := []interface{}{"Member", "Amount", "Category", "Payment_Mode", "Date", "Deadline"}
	if !reflect.DeepEqual(values[0], wantHeader) {
		t.Fatalf("header = %v, want %v", values[0], wantHeader)
	}
	want := []interface{}{"Husnain", "12.50", "Grocery", "Cash", "2024-01-15", ""}
	if !reflect.DeepEqual(values[1], want) {
		t.Fatalf("row = %v, want %v", values[1], want)
	}
}

func TestValuesRowsRoundTrip(t *testing.T) {
	rows := []ports.Row{
		{"Member": "Husnain", "Amount": "12.50", "Category": "Grocery", "Payment_Mode": "Cash", "Date": "2024-01-15", "Deadline": ""},
		{"Member": "Father", "Amount": "300.00", "Category": "Fuel", "Payment_Mode": "Online", "Date": "2024-01-20", "Deadline": "2024-02-01"},
	}
	back := rowsFromValues(valuesFromRows(rows))
	if !reflect.DeepEqual(back, rows) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", back, rows)
	}
}
