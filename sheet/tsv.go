package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteTSV writes the table as tab separated values, header first.
func WriteTSV(f io.Writer, table *Table) error {
	if table == nil || len(table.Header) == 0 {
		return fmt.Errorf("Missing/invalid header row")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, record := range table.Values() {
		row := make([]string, len(record))
		for i, v := range record {
			row[i] = fmt.Sprintf("%v", v)
		}

		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// ReadTSV reads a file written by WriteTSV (or exported from the worksheet by
// hand) back into a table.
func ReadTSV(f io.Reader) (*Table, error) {
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	values := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, v := range record {
			row[j] = v
		}

		values[i] = row
	}

	return MakeTable(values)
}
