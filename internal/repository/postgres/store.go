package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cmsselect/internal/domain"
	"cmsselect/internal/domain/repositories"
)

// Store runs dialect neutral queries against PostgreSQL.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewStore wraps an existing pool.
func NewStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

// Open connects to databaseURL.
func Open(ctx context.Context, databaseURL string, logger *slog.Logger) (*Store, error) {
	pool, err := CreateConnectionPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return NewStore(pool, logger), nil
}

// QueryRecords implements repositories.RowQuerier.
func (s *Store) QueryRecords(ctx context.Context, query string, args ...any) ([]repositories.Record, error) {
	rows, err := GetExecutor(ctx, s.pool).Query(ctx, Rebind(query), args...)
	if err != nil {
		return nil, s.wrap(err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	var records []repositories.Record
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rec := make(repositories.Record, len(fields))
		for i, f := range fields {
			rec[f.Name] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap(err)
	}
	return records, nil
}

// ExecStatement implements repositories.StatementExecer.
func (s *Store) ExecStatement(ctx context.Context, stmt string, args ...any) (int64, error) {
	tag, err := GetExecutor(ctx, s.pool).Exec(ctx, Rebind(stmt), args...)
	if err != nil {
		return 0, s.wrap(err)
	}
	return tag.RowsAffected(), nil
}

// ExecTx executes fn within a transaction.
func (s *Store) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Safe even if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Warn("rollback failed", "error", err)
		}
	}()

	if err := fn(SetTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Driver implements repositories.Store.
func (s *Store) Driver() string { return "postgres" }

// Close releases the pool.
func (s *Store) Close() { s.pool.Close() }

func (s *Store) wrap(err error) error {
	if IsPgUndefinedTableError(err) {
		return &domain.ConfigurationError{Component: "postgres store", Message: "table missing, run the seed command", Err: err}
	}
	return fmt.Errorf("postgres query: %w", err)
}
