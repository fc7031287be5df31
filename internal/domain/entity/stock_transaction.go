package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// StockTransaction representa un movimiento de inventario (entrada o salida).
// Inmutable una vez creada: el historial nunca se edita ni se borra.
type StockTransaction struct {
	ID          string
	ItemID      string
	Type        string // IN, OUT
	Quantity    int64  // siempre positivo; el signo lo da Type
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal // Quantity * UnitPrice
	Reference   string          // factura, orden, nota de ajuste, etc.
	Notes       string
	CreatedAt   time.Time
}
