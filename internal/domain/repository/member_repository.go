package repository

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// MemberFilter filtro para listados de miembros.
type MemberFilter struct {
	Query  string // busca en nombre y email
	Status string // vacío = todos
	Limit  int
	Offset int
}

// MemberRepository define el puerto de persistencia para Member.
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	GetByID(ctx context.Context, id string) (*entity.Member, error)
	GetByEmail(ctx context.Context, email string) (*entity.Member, error)
	List(ctx context.Context, filter MemberFilter) ([]*entity.Member, error)
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id string) error
}
