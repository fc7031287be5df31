package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tu-usuario/stock-ledger/internal/application/circulation"
	"github.com/tu-usuario/stock-ledger/internal/application/inventory"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and circulation.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ circulation.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción SQLite.
type TxRunner struct {
	db *sql.DB
}

// NewTxRunner construye el runner con la conexión del Store.
func NewTxRunner(db *sql.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.StockTransactionRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	itemRepo := NewItemRepository(tx)
	txRepo := NewStockTransactionRepository(tx)

	if err := fn(itemRepo, txRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCirculation inicia una transacción con los repos de circulación (libro, miembro, préstamo).
func (r *TxRunner) RunCirculation(ctx context.Context, fn func(
	bookRepo repository.BookRepository,
	memberRepo repository.MemberRepository,
	borrowRepo repository.BorrowRecordRepository,
) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	bookRepo := NewBookRepository(tx)
	memberRepo := NewMemberRepository(tx)
	borrowRepo := NewBorrowRecordRepository(tx)

	if err := fn(bookRepo, memberRepo, borrowRepo); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
