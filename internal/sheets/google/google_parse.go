package google

import (
	"fmt"
	"strings"

	ports "github.com/Chemi-prog/family-budget-app-v2/internal/sheets"
)

// rowsFromValues converts a values matrix (as returned by the Sheets API)
// into named-field rows, using the first row as the header. Blank rows are
// skipped; cells beyond the header width are ignored.
func rowsFromValues(values [][]interface{}) []ports.Row {
	if len(values) == 0 {
		return []ports.Row{}
	}
	header := toStrings(values[0])
	out := make([]ports.Row, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		cols := toStrings(values[i])
		if allBlank(cols) {
			continue
		}
		row := ports.Row{}
		for j, name := range header {
			if name == "" {
				continue
			}
			row[name] = safeGet(cols, j)
		}
		out = append(out, row)
	}
	return out
}

// valuesFromRows renders the canonical header plus one cell row per record
// row, in Columns order.
func valuesFromRows(rows []ports.Row) [][]interface{} {
	out := make([][]interface{}, 0, len(rows)+1)
	header := make([]interface{}, len(ports.Columns))
	for i, name := range ports.Columns {
		header[i] = name
	}
	out = append(out, header)
	for _, row := range rows {
		cells := make([]interface{}, len(ports.Columns))
		for i, name := range ports.Columns {
			cells[i] = row[name]
		}
		out = append(out, cells)
	}
	return out
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}

func allBlank(cols []string) bool {
	for _, c := range cols {
		if c != "" {
			return false
		}
	}
	return true
}
