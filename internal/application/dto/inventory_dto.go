package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTransactionRequest body para POST /api/inventory/transactions.
type RegisterTransactionRequest struct {
	ItemID    string           `json:"item_id" validate:"required"`
	Type      string           `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"` // por defecto el precio del artículo
	Reference string           `json:"reference,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// TransactionResponse representación de una transacción en respuestas.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	ItemName    string          `json:"item_name,omitempty"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Reference   string          `json:"reference,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TransactionListResponse listado de transacciones en un rango de fechas.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}
