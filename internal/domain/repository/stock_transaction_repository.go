package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// TransactionWithItem transacción con el nombre del artículo (join para reportes).
type TransactionWithItem struct {
	entity.StockTransaction
	ItemName string
}

// StockTransactionRepository define el puerto de persistencia para transacciones de stock.
// Las transacciones son inmutables: no hay Update ni Delete.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id string) (*entity.StockTransaction, error)
	// ListBetween lista transacciones en [start, end]; itemID vacío = todas.
	ListBetween(ctx context.Context, start, end time.Time, itemID string, limit, offset int) ([]*TransactionWithItem, error)
	ListRecent(ctx context.Context, n int) ([]*TransactionWithItem, error)
	// CountByItem cuenta las transacciones que referencian un artículo
	// (precondición de borrado: cero referencias).
	CountByItem(ctx context.Context, itemID string) (int64, error)
}
