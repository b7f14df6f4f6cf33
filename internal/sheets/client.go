// Package sheets reads header-keyed rows from a Google Sheets spreadsheet,
// the system's only data source.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Row maps first-row header strings to cell strings. Cells missing from a
// short row read as "".
type Row map[string]string

type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// NewClient builds a read-only Sheets client. Credentials come from explicit
// service-account JSON when provided, otherwise application default
// credentials.
func NewClient(ctx context.Context, spreadsheetID, credentialsJSON string) (*Client, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	opts := []option.ClientOption{
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	}
	if strings.TrimSpace(credentialsJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange fetches a range and zips each data row against the header row.
// An empty sheet yields an empty slice, never an error.
func (c *Client) ReadRange(ctx context.Context, rangeSpec string) ([]Row, error) {
	res, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %q: %w", rangeSpec, err)
	}
	if len(res.Values) == 0 {
		return []Row{}, nil
	}

	header := make([]string, 0, len(res.Values[0]))
	for _, cell := range res.Values[0] {
		header = append(header, strings.TrimSpace(fmt.Sprint(cell)))
	}

	rows := make([]Row, 0, len(res.Values)-1)
	for _, raw := range res.Values[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(raw) {
				row[key] = fmt.Sprint(raw[i])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
