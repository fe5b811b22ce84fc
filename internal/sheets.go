package internal

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheet is the minimal surface of the tabular store the pipeline needs:
// a full read and single-cell writes.
type Sheet interface {
	// Rows returns every row of the worksheet in order. Row 1 of the
	// sheet is index 0 of the result.
	Rows(ctx context.Context) ([][]string, error)
	// UpdateCell writes value into a cell given in A1 notation,
	// e.g. "C7".
	UpdateCell(ctx context.Context, cell, value string) error
}

// GoogleSheet implements Sheet against the Google Sheets v4 API using
// service-account credentials.
type GoogleSheet struct {
	svc           *sheets.Service
	spreadsheetID string
	worksheet     string
}

var _ Sheet = (*GoogleSheet)(nil)

// NewGoogleSheet authenticates with the given service-account JSON and
// binds to one worksheet of one spreadsheet.
func NewGoogleSheet(ctx context.Context, credentialsJSON []byte, spreadsheetID, worksheet string) (*GoogleSheet, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &GoogleSheet{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}, nil
}

// Rows fetches the whole worksheet in one call. Cells arrive as
// interface values from the API and are flattened to strings.
func (g *GoogleSheet) Rows(ctx context.Context) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.worksheet).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %s: %w", g.worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// UpdateCell writes a single cell as a raw (unparsed) value.
func (g *GoogleSheet) UpdateCell(ctx context.Context, cell, value string) error {
	rng := fmt.Sprintf("%s!%s", g.worksheet, cell)
	body := &sheets.ValueRange{Values: [][]interface{}{{value}}}

	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("updating %s: %w", rng, err)
	}
	return nil
}
