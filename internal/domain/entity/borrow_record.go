package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro de préstamo.
const (
	BorrowStatusOpen     = "open"
	BorrowStatusReturned = "returned"
)

// BorrowRecord representa un préstamo de libro. Inmutable una vez creado,
// con una única mutación permitida: el cierre en la devolución
// (ReturnDate, LateFee y Status).
type BorrowRecord struct {
	ID         string
	BookID     string
	MemberID   string
	BorrowDate time.Time
	DueDate    time.Time
	ReturnDate *time.Time
	LateFee    decimal.Decimal // se fija en la devolución; 0 si no hubo retraso
	Status     string          // open, returned
	Notes      string
	CreatedAt  time.Time
}

// Open indica si el préstamo sigue vigente.
func (r *BorrowRecord) Open() bool {
	return r.Status == BorrowStatusOpen
}

// Overdue indica si el préstamo vigente ya venció respecto a now.
func (r *BorrowRecord) Overdue(now time.Time) bool {
	return r.Open() && r.DueDate.Before(now)
}
