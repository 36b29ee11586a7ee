package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"phicoffee/internal/usecase/interfaces"
)

var ErrMissingSheetsConfig = errors.New("missing Google Sheets configuration")

// Client talks to the Google Sheets values API for one spreadsheet. It is the
// concrete IRowStore: append-only writes and full-range reads, one network
// call each, no retry.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

var _ interfaces.IRowStore = (*Client)(nil)

// NewClientFromEnv builds the client from environment variables:
//   - GOOGLE_SHEET_ID
//   - GOOGLE_SERVICE_ACCOUNT_EMAIL
//   - GOOGLE_PRIVATE_KEY (literal \n sequences are unescaped)
func NewClientFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := os.Getenv("GOOGLE_SHEET_ID")
	email := os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")
	privateKey := strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")
	if spreadsheetID == "" || email == "" || privateKey == "" {
		return nil, ErrMissingSheetsConfig
	}

	conf := &jwt.Config{
		Email:      email,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (c *Client) AppendRow(ctx context.Context, rangeA1 string, row []string) error {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, rangeA1, &sheets.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func (c *Client) GetRows(ctx context.Context, rangeA1 string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, rangeA1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
