package sqlite

import (
	"context"
	"database/sql"
)

// Querier abstrae *sql.DB y *sql.Tx: los repositorios funcionan igual
// sueltos o dentro de una transacción del TxRunner.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ Querier = (*sql.DB)(nil)
var _ Querier = (*sql.Tx)(nil)
