package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados de solo lectura para el tablero.
type DashboardResponse struct {
	TotalItems         int64                 `json:"total_items"`
	TotalValue         decimal.Decimal       `json:"total_value"`
	LowStockCount      int64                 `json:"low_stock_count"`
	OpenLoans          int64                 `json:"open_loans"`
	OverdueLoans       int64                 `json:"overdue_loans"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// LowStockResponse listado de artículos bajo el umbral de stock.
type LowStockResponse struct {
	Total int            `json:"total"`
	Items []ItemResponse `json:"items"`
}
