// Package sheets reads the subject index from a Google Sheets range.
// Columns: subject code | name | drive link | year | branch.
package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/collegepyq/pyq-bot/internal/boterr"
	"github.com/collegepyq/pyq-bot/internal/model"
)

const readonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *zap.Logger
}

// NewClient authenticates with service-account JSON credentials. The
// client is read-only and applies no retries of its own.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, readRange string, logger *zap.Logger) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(readonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}, nil
}

// FetchAll reads the configured range and returns the parsed subject
// records. Malformed rows are skipped with a warning; an unreachable
// spreadsheet or a bad range is a boterr.ErrFetch.
func (c *Client) FetchAll(ctx context.Context) ([]model.Subject, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: get range %s: %v", boterr.ErrFetch, c.readRange, err)
	}

	subjects := make([]model.Subject, 0, len(resp.Values))
	for i, row := range resp.Values {
		subject, err := parseRow(row)
		if err != nil {
			c.logger.Warn("Skipping malformed sheet row",
				zap.Int("row", i+2), // range starts at A2
				zap.Error(err))
			continue
		}
		subjects = append(subjects, subject)
	}

	return subjects, nil
}
