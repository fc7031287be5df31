package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura sobre SQLite.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar db o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// LowStockItems devuelve artículos con quantity <= min_stock, cantidad ascendente.
func (r *ReportRepo) LowStockItems(ctx context.Context) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE quantity <= min_stock ORDER BY quantity`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// DashboardStats calcula los agregados del tablero en una pasada por tabla.
// El valor total del inventario se suma en Go: los precios viven como TEXT.
func (r *ReportRepo) DashboardStats(ctx context.Context) (*repository.DashboardStats, error) {
	stats := &repository.DashboardStats{TotalValue: decimal.Zero}

	rows, err := r.q.QueryContext(ctx, `SELECT quantity, unit_price FROM items`)
	if err != nil {
		return nil, fmt.Errorf("dashboard items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var qty int64
		var unitPrice string
		if err := rows.Scan(&qty, &unitPrice); err != nil {
			return nil, fmt.Errorf("scan dashboard item: %w", err)
		}
		price, err := scanDecimal(unitPrice)
		if err != nil {
			return nil, err
		}
		stats.TotalItems++
		stats.TotalValue = stats.TotalValue.Add(price.Mul(decimal.NewFromInt(qty)))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE quantity <= min_stock`,
	).Scan(&stats.LowStockCount); err != nil {
		return nil, fmt.Errorf("dashboard low stock count: %w", err)
	}
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM borrow_records WHERE status = 'open'`,
	).Scan(&stats.OpenLoans); err != nil {
		return nil, fmt.Errorf("dashboard open loans: %w", err)
	}
	if err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM borrow_records WHERE status = 'open' AND due_date < ?`,
		time.Now(),
	).Scan(&stats.OverdueLoans); err != nil {
		return nil, fmt.Errorf("dashboard overdue loans: %w", err)
	}
	return stats, nil
}
