// Package sqlite runs the CMS row queries against an SQLite database. It backs
// local development and the repository tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"cmsselect/internal/domain"
	"cmsselect/internal/domain/repositories"
)

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type txContextKey struct{}

// Store wraps a database/sql handle opened with the modernc driver.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the database at dsn. ":memory:" gives a private in-memory
// database; the pool is then pinned to one connection so every query sees it.
func Open(dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", dsn, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) executor(ctx context.Context) executor {
	if tx, ok := ctx.Value(txContextKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

// QueryRecords implements repositories.RowQuerier.
func (s *Store) QueryRecords(ctx context.Context, query string, args ...any) ([]repositories.Record, error) {
	rows, err := s.executor(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var records []repositories.Record
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec := make(repositories.Record, len(columns))
		for i, col := range columns {
			rec[col] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(err)
	}
	return records, nil
}

// ExecStatement implements repositories.StatementExecer.
func (s *Store) ExecStatement(ctx context.Context, stmt string, args ...any) (int64, error) {
	res, err := s.executor(ctx).ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, wrap(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// ExecTx executes fn within a transaction.
func (s *Store) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Warn("rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Driver implements repositories.Store.
func (s *Store) Driver() string { return "sqlite" }

// Close closes the database.
func (s *Store) Close() {
	if err := s.db.Close(); err != nil {
		s.logger.Warn("close sqlite", "error", err)
	}
}

func wrap(err error) error {
	if strings.Contains(err.Error(), "no such table") {
		return &domain.ConfigurationError{Component: "sqlite store", Message: "table missing, run the seed command", Err: err}
	}
	return fmt.Errorf("sqlite query: %w", err)
}
