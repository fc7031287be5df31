package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// ItemFilter filtro para listados de artículos.
type ItemFilter struct {
	Query  string // busca en nombre y categoría
	Limit  int
	Offset int
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Los métodos Get devuelven (nil, nil) si no existe.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// UpdateQuantity fija la cantidad derivada. Solo el motor de movimientos
	// debe llamarlo, dentro de una transacción.
	UpdateQuantity(ctx context.Context, id string, quantity int64, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
