package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items.
// InitialQuantity > 0 genera una transacción IN "Stock inicial".
type CreateItemRequest struct {
	Name            string          `json:"name" validate:"required"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	MinStock        int64           `json:"min_stock" validate:"omitempty,min=0"`
	InitialQuantity int64           `json:"initial_quantity" validate:"omitempty,min=0"`
}

// UpdateItemRequest body para PUT /api/items/:id.
// Quantity no es editable: es estado derivado de las transacciones.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
	MinStock    *int64           `json:"min_stock,omitempty" validate:"omitempty,min=0"`
}

// ItemResponse representación de un artículo en respuestas.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MinStock    int64           `json:"min_stock"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de artículos.
type ItemListResponse struct {
	Items  []ItemResponse `json:"items"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
