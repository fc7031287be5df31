package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario.
// Quantity es estado derivado: solo cambia aplicando transacciones (nunca por edición directa).
type Item struct {
	ID          string
	Name        string
	Description string
	Category    string
	Quantity    int64
	UnitPrice   decimal.Decimal
	MinStock    int64 // umbral de stock bajo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelowMinStock indica si el artículo está en la lista de stock bajo.
func (i *Item) BelowMinStock() bool {
	return i.Quantity <= i.MinStock
}

// TotalValue devuelve el valor del stock actual (quantity * unit_price).
func (i *Item) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(i.Quantity).Mul(i.UnitPrice)
}
