package repositories

import "context"

// Record is one flat result row keyed by column name. Values are whatever the
// driver produced and must be coerced before use.
type Record map[string]any

// RowQuerier runs a read-only query and returns all rows in order. Queries use
// "?" placeholders; implementations rebind them for their driver.
type RowQuerier interface {
	QueryRecords(ctx context.Context, query string, args ...any) ([]Record, error)
}
