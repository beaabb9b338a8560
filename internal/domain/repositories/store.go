package repositories

import "context"

// StatementExecer runs statements that do not return rows (DDL, seed inserts).
type StatementExecer interface {
	ExecStatement(ctx context.Context, stmt string, args ...any) (int64, error)
}

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions
type TransactionManager interface {
	// ExecTx executes fn within a transaction carried by the context passed to
	// fn. Queries issued with that context participate in the transaction.
	ExecTx(ctx context.Context, fn TxFn) error
}

// Store is a database handle of either supported driver.
type Store interface {
	RowQuerier
	StatementExecer
	TransactionManager
	// Driver names the backing driver ("postgres" or "sqlite").
	Driver() string
	Close()
}
