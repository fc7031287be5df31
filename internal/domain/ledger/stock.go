package ledger

import (
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// ApplyStock calcula la nueva cantidad de un artículo al aplicar una transacción
// (servicio de dominio, sin efectos).
// NuevaCantidad = CantidadActual + qty (IN) | CantidadActual - qty (OUT).
// Rechaza cantidades no positivas y salidas que dejarían stock negativo.
func ApplyStock(current int64, txType string, qty int64) (int64, error) {
	if qty <= 0 {
		return current, domain.ErrInvalidInput
	}
	switch txType {
	case entity.TransactionTypeIN:
		return current + qty, nil
	case entity.TransactionTypeOUT:
		next := current - qty
		if next < 0 {
			return current, domain.ErrInsufficientStock
		}
		return next, nil
	default:
		return current, domain.ErrInvalidInput
	}
}
