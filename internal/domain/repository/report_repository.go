package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// DashboardStats agregados de solo lectura para el tablero.
type DashboardStats struct {
	TotalItems    int64
	TotalValue    decimal.Decimal // sum(quantity * unit_price)
	LowStockCount int64
	OpenLoans     int64
	OverdueLoans  int64
}

// ReportRepository define el puerto de consultas agregadas (solo lectura).
type ReportRepository interface {
	// LowStockItems devuelve artículos con quantity <= min_stock, ordenados
	// por cantidad ascendente.
	LowStockItems(ctx context.Context) ([]*entity.Item, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
