package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// BookFilter filtro para listados de libros.
type BookFilter struct {
	Query  string // busca en título, autor e ISBN
	Status string // vacío = todos
	Limit  int
	Offset int
}

// BookRepository define el puerto de persistencia para Book.
type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*entity.Book, error)
	List(ctx context.Context, filter BookFilter) ([]*entity.Book, error)
	Update(ctx context.Context, book *entity.Book) error
	// UpdateStatus fija el estado derivado. Solo el motor de circulación
	// (o una transición administrativa) debe llamarlo.
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	// CountByCategory cuenta libros que referencian una categoría por nombre.
	CountByCategory(ctx context.Context, category string) (int64, error)
}
