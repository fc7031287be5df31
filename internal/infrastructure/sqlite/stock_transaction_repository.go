package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del puerto StockTransactionRepository sobre SQLite.
// Solo inserta y consulta: el historial es inmutable.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar db o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

const txColumns = `id, item_id, type, quantity, unit_price, total_amount, reference, notes, created_at`

// Create persiste una transacción de stock.
func (r *StockTransactionRepo) Create(ctx context.Context, tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (` + txColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.ExecContext(ctx, query,
		tx.ID, tx.ItemID, tx.Type, tx.Quantity,
		tx.UnitPrice.String(), tx.TotalAmount.String(),
		tx.Reference, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID. Devuelve (nil, nil) si no existe.
func (r *StockTransactionRepo) GetByID(ctx context.Context, id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + txColumns + ` FROM stock_transactions WHERE id = ?`
	var tx entity.StockTransaction
	var unitPrice, totalAmount string
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&tx.ID, &tx.ItemID, &tx.Type, &tx.Quantity,
		&unitPrice, &totalAmount, &tx.Reference, &tx.Notes, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	if tx.UnitPrice, err = scanDecimal(unitPrice); err != nil {
		return nil, err
	}
	if tx.TotalAmount, err = scanDecimal(totalAmount); err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListBetween lista transacciones en [start, end] con el nombre del artículo,
// más recientes primero. itemID vacío = todas.
func (r *StockTransactionRepo) ListBetween(ctx context.Context, start, end time.Time, itemID string, limit, offset int) ([]*repository.TransactionWithItem, error) {
	query := `
		SELECT t.id, t.item_id, t.type, t.quantity, t.unit_price, t.total_amount,
		       t.reference, t.notes, t.created_at, i.name
		FROM stock_transactions t
		JOIN items i ON i.id = t.item_id
		WHERE t.created_at >= ? AND t.created_at <= ?`
	args := []any{start, end}
	if itemID != "" {
		query += ` AND t.item_id = ?`
		args = append(args, itemID)
	}
	query += ` ORDER BY t.created_at DESC`
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactionsWithItem(rows)
}

// ListRecent devuelve las n transacciones más recientes con el nombre del artículo.
func (r *StockTransactionRepo) ListRecent(ctx context.Context, n int) ([]*repository.TransactionWithItem, error) {
	query := `
		SELECT t.id, t.item_id, t.type, t.quantity, t.unit_price, t.total_amount,
		       t.reference, t.notes, t.created_at, i.name
		FROM stock_transactions t
		JOIN items i ON i.id = t.item_id
		ORDER BY t.created_at DESC
		LIMIT ?`
	rows, err := r.q.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("list recent stock transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactionsWithItem(rows)
}

// CountByItem cuenta las transacciones que referencian un artículo.
func (r *StockTransactionRepo) CountByItem(ctx context.Context, itemID string) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_transactions WHERE item_id = ?`, itemID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count stock transactions: %w", err)
	}
	return n, nil
}

func scanTransactionsWithItem(rows *sql.Rows) ([]*repository.TransactionWithItem, error) {
	var out []*repository.TransactionWithItem
	for rows.Next() {
		var row repository.TransactionWithItem
		var unitPrice, totalAmount string
		if err := rows.Scan(
			&row.ID, &row.ItemID, &row.Type, &row.Quantity,
			&unitPrice, &totalAmount, &row.Reference, &row.Notes,
			&row.CreatedAt, &row.ItemName,
		); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		var err error
		if row.UnitPrice, err = scanDecimal(unitPrice); err != nil {
			return nil, err
		}
		if row.TotalAmount, err = scanDecimal(totalAmount); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
