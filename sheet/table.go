package sheet

import (
	"fmt"
	"strings"
)

// Row maps a column name to a cell value. Columns that are absent from a row
// are treated as blank.
type Row map[string]string

// Table is a worksheet as a header row plus data rows keyed by header name.
type Table struct {
	Header []string
	Rows   []Row
}

// MakeTable converts the raw values returned by the Sheets API into a Table.
// The first row is the header: cells are trimmed, blank header cells are kept
// (so column positions line up) but never used as keys, and a repeated column
// name is an error.
func MakeTable(values [][]any) (*Table, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Empty sheet")
	}

	// ... header
	header := []string{}
	index := map[string]int{}
	for i, v := range values[0] {
		h := clean(v)
		if h != "" {
			if _, ok := index[h]; ok {
				return nil, fmt.Errorf("Duplicate column name '%s'", h)
			}

			index[h] = i
		}

		header = append(header, h)
	}

	// ... records
	rows := []Row{}
	for _, record := range values[1:] {
		row := Row{}
		for h, ix := range index {
			if ix < len(record) {
				row[h] = fmt.Sprintf("%v", record[ix])
			}
		}

		rows = append(rows, row)
	}

	return &Table{
		Header: header,
		Rows:   rows,
	}, nil
}

// Values is the inverse of MakeTable: the header followed by one row of cells
// per record, in header order. Absent cells are written as blanks.
func (t *Table) Values() [][]any {
	values := [][]any{}

	h := make([]any, len(t.Header))
	for i, v := range t.Header {
		h[i] = v
	}

	values = append(values, h)
	values = append(values, cells(t.Header, t.Rows)...)

	return values
}

// Has returns true if the header includes the named column.
func (t *Table) Has(column string) bool {
	for _, h := range t.Header {
		if h != "" && h == column {
			return true
		}
	}

	return false
}

func cells(header []string, rows []Row) [][]any {
	values := [][]any{}
	for _, row := range rows {
		record := make([]any, len(header))
		for i, h := range header {
			record[i] = ""
			if v, ok := row[h]; ok && h != "" {
				record[i] = v
			}
		}

		values = append(values, record)
	}

	return values
}

func clean(v any) string {
	if v == nil {
		return ""
	}

	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

func normalise(v string) string {
	return strings.ToLower(strings.ReplaceAll(v, " ", ""))
}
