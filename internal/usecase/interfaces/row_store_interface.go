package interfaces

import "context"

// IRowStore abstracts the spreadsheet values API: append-only row writes and
// full-range reads over A1 ranges. Both calls are single network operations
// with no retry; contention, if any, lives at the external service.
type IRowStore interface {
	AppendRow(ctx context.Context, rangeA1 string, row []string) error
	GetRows(ctx context.Context, rangeA1 string) ([][]string, error)
}
