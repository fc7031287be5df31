package inventory

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza la escritura atómica (artículo, transacción) del motor.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txRepo repository.StockTransactionRepository,
	) error) error
}
