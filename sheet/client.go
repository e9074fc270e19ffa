package sheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets"
	DRIVE  = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

var (
	ErrNotConfigured = errors.New("Spreadsheet client not configured")
	ErrNotConnected  = errors.New("Spreadsheet client not connected")
	ErrNoWorksheet   = errors.New("Worksheet not available")
)

// Worksheet identifies a single tab in the spreadsheet.
type Worksheet struct {
	ID      int64
	Title   string
	Rows    int64
	Columns int64
}

// Client owns the spreadsheet identity and service account credentials and
// provides row level access to one worksheet. A Client is created once per run
// and must be connected before any row operation.
type Client struct {
	spreadsheetID string
	sheetID       string
	email         string
	key           string
	options       []option.ClientOption

	google      *sheets.Service
	gdrive      *drive.Service
	spreadsheet *sheets.Spreadsheet
	connected   bool
}

// NewClient validates and records the spreadsheet configuration. Additional
// client options are appended to the defaults when connecting.
func NewClient(spreadsheetID, sheetID, email, key string, options ...option.ClientOption) (*Client, error) {
	missing := []string{}

	if strings.TrimSpace(spreadsheetID) == "" {
		missing = append(missing, "spreadsheet ID")
	}

	if strings.TrimSpace(sheetID) == "" {
		missing = append(missing, "sheet ID")
	}

	if strings.TrimSpace(email) == "" {
		missing = append(missing, "service account email")
	}

	if strings.TrimSpace(key) == "" {
		missing = append(missing, "service account private key")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w (missing %v)", ErrNotConfigured, strings.Join(missing, ", "))
	}

	return &Client{
		spreadsheetID: strings.TrimSpace(spreadsheetID),
		sheetID:       strings.TrimSpace(sheetID),
		email:         strings.TrimSpace(email),
		key:           key,
		options:       options,
	}, nil
}

// Connect authenticates with the service account and loads the spreadsheet
// metadata (the list of worksheets).
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNotConfigured
	}

	conf := &jwt.Config{
		Email:      c.email,
		PrivateKey: []byte(c.key),
		Scopes:     []string{SHEETS, DRIVE},
		TokenURL:   google.JWTTokenURL,
	}

	options := append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}, c.options...)

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return fmt.Errorf("Unable to create new Google Sheets client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, options...)
	if err != nil {
		return fmt.Errorf("Unable to create new Google Drive client (%w)", err)
	}

	spreadsheet, err := getSpreadsheet(ctx, service, c.spreadsheetID)
	if err != nil {
		return err
	}

	c.google = service
	c.gdrive = gdrive
	c.spreadsheet = spreadsheet
	c.connected = true

	slog.Debug("connected", slog.String("spreadsheet", c.spreadsheetID), slog.Int("worksheets", len(spreadsheet.Sheets)))

	return nil
}

// Worksheet returns the configured worksheet, or nil if the client is not
// connected or the spreadsheet has no such worksheet.
func (c *Client) Worksheet() *Worksheet {
	if c == nil || !c.connected {
		return nil
	}

	sheet, err := getSheet(c.spreadsheet, c.sheetID)
	if err != nil {
		slog.Warn("worksheet not found", slog.String("sheet", c.sheetID), slog.Any("error", err))
		return nil
	}

	ws := Worksheet{
		ID:    sheet.Properties.SheetId,
		Title: sheet.Properties.Title,
	}

	if grid := sheet.Properties.GridProperties; grid != nil {
		ws.Rows = grid.RowCount
		ws.Columns = grid.ColumnCount
	}

	return &ws
}

// FetchRows retrieves the entire worksheet.
func (c *Client) FetchRows(ctx context.Context, ws *Worksheet) (*Table, error) {
	if err := c.ready(ws); err != nil {
		return nil, err
	}

	response, err := c.google.Spreadsheets.Values.Get(c.spreadsheet.SpreadsheetId, area(ws.Title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("Unable to retrieve data from sheet (%w)", err)
	}

	return MakeTable(response.Values)
}

// ClearAndReplace clears the worksheet and then writes the header and rows in a
// single update from A1. The grid is only ever widened or lengthened to fit, so
// repeated replacements do not grow the worksheet. The steps are not
// transactional: if a step fails the worksheet is left as the previous steps
// made it.
func (c *Client) ClearAndReplace(ctx context.Context, ws *Worksheet, header []string, rows []Row) error {
	if err := c.ready(ws); err != nil {
		return err
	}

	id := c.spreadsheet.SpreadsheetId

	// ... clear
	slog.Info("clearing worksheet", slog.String("worksheet", ws.Title))
	if err := clear(ctx, c.google, id, []string{area(ws.Title)}); err != nil {
		return fmt.Errorf("Error clearing worksheet (%w)", err)
	}

	// ... resize
	if n := int64(len(header)); ws.Columns > 0 && n > ws.Columns {
		if err := appendDimension(ctx, c.google, id, ws.ID, "COLUMNS", n-ws.Columns); err != nil {
			return fmt.Errorf("Error adding columns to worksheet (%w)", err)
		}

		ws.Columns = n
	}

	if n := int64(len(rows) + 1); ws.Rows > 0 && n > ws.Rows {
		if err := appendDimension(ctx, c.google, id, ws.ID, "ROWS", n-ws.Rows); err != nil {
			return fmt.Errorf("Error adding rows to worksheet (%w)", err)
		}

		ws.Rows = n
	}

	// ... write
	table := Table{
		Header: header,
		Rows:   rows,
	}

	var values = sheets.ValueRange{
		Values: table.Values(),
	}

	slog.Info("writing rows", slog.String("worksheet", ws.Title), slog.Int("rows", len(rows)))
	if _, err := c.google.Spreadsheets.Values.Update(id, area(ws.Title, "A1"), &values).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("Error writing worksheet (%w)", err)
	}

	return nil
}

func (c *Client) ready(ws *Worksheet) error {
	if c == nil || !c.connected {
		return ErrNotConnected
	}

	if ws == nil {
		return ErrNoWorksheet
	}

	return nil
}
