package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// OverdueLoan resultado del reporte de préstamos vencidos (join con libro y miembro).
// Los días de retraso y la multa acumulada los calcula la capa de aplicación.
type OverdueLoan struct {
	RecordID   string
	BookID     string
	BookTitle  string
	MemberID   string
	MemberName string
	BorrowDate time.Time
	DueDate    time.Time
}

// BorrowRecordRepository define el puerto de persistencia para préstamos.
// Los registros son inmutables salvo el cierre en la devolución (Close).
type BorrowRecordRepository interface {
	Create(ctx context.Context, record *entity.BorrowRecord) error
	GetByID(ctx context.Context, id string) (*entity.BorrowRecord, error)
	// GetOpenByBook devuelve el préstamo vigente de un libro, o (nil, nil).
	GetOpenByBook(ctx context.Context, bookID string) (*entity.BorrowRecord, error)
	CountOpenByMember(ctx context.Context, memberID string) (int, error)
	// Close fija return_date, late_fee y status=returned (única mutación permitida).
	Close(ctx context.Context, id string, returnDate time.Time, lateFee decimal.Decimal) error
	ListOpen(ctx context.Context, limit, offset int) ([]*entity.BorrowRecord, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]*OverdueLoan, error)
	// CountByBook / CountByMember cuentan referencias para la precondición de borrado.
	CountByBook(ctx context.Context, bookID string) (int64, error)
	CountByMember(ctx context.Context, memberID string) (int64, error)
}
