package circulation

import (
	"context"

	"github.com/tu-usuario/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza la escritura atómica (libro, préstamo) de la circulación.
type TxRunner interface {
	RunCirculation(ctx context.Context, fn func(
		bookRepo repository.BookRepository,
		memberRepo repository.MemberRepository,
		borrowRepo repository.BorrowRecordRepository,
	) error) error
}
