package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/sheets/v4"
)

func getSpreadsheet(ctx context.Context, google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch spreadsheet (%w)", err)
	}

	return spreadsheet, nil
}

// getSheet finds a worksheet by its numeric sheet ID ('gid' in the sheet URL)
// or, failing that, by title.
func getSheet(spreadsheet *sheets.Spreadsheet, id string) (*sheets.Sheet, error) {
	if gid, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil {
		for _, sheet := range spreadsheet.Sheets {
			if sheet.Properties != nil && sheet.Properties.SheetId == gid {
				return sheet, nil
			}
		}
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == normalise(id) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("Unable to identify worksheet for '%s'", id)
}

func clear(ctx context.Context, google *sheets.Service, spreadsheetId string, ranges []string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// appendDimension adds 'length' empty ROWS or COLUMNS to the end of a worksheet.
func appendDimension(ctx context.Context, google *sheets.Service, spreadsheetId string, sheetId int64, dimension string, length int64) error {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				AppendDimension: &sheets.AppendDimensionRequest{
					SheetId:   sheetId,
					Dimension: dimension,
					Length:    length,
				},
			},
		},
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// area returns an A1 range for a worksheet title, quoting the title so that
// names with spaces or punctuation are unambiguous.
func area(title string, cells ...string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if len(cells) > 0 {
		return quoted + "!" + strings.Join(cells, ":")
	}

	return quoted
}
