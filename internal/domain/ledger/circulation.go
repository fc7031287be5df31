package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// Transiciones legales de la máquina de estados de circulación.
// available→borrowed (préstamo), borrowed→available (devolución),
// available→reserved/maintenance y reserved/maintenance→available (admin).
// Cualquier otra transición es ErrIllegalTransition.
var transitions = map[string][]string{
	entity.BookStatusAvailable:   {entity.BookStatusBorrowed, entity.BookStatusReserved, entity.BookStatusMaintenance},
	entity.BookStatusBorrowed:    {entity.BookStatusAvailable},
	entity.BookStatusReserved:    {entity.BookStatusAvailable},
	entity.BookStatusMaintenance: {entity.BookStatusAvailable},
}

// CanTransition indica si el cambio de estado from→to es legal.
func CanTransition(from, to string) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Transition valida un cambio de estado y devuelve el nuevo estado.
func Transition(from, to string) (string, error) {
	if !entity.ValidBookStatus(to) {
		return from, domain.ErrInvalidInput
	}
	if !CanTransition(from, to) {
		return from, domain.ErrIllegalTransition
	}
	return to, nil
}

// ValidateIssue verifica las precondiciones de un préstamo: libro disponible,
// miembro activo y por debajo del tope de préstamos concurrentes.
func ValidateIssue(book *entity.Book, member *entity.Member, openLoans int, maxLoans int) error {
	if !member.Active() {
		return domain.ErrInvalidMovement
	}
	if openLoans >= maxLoans {
		return domain.ErrInvalidMovement
	}
	if book.Status != entity.BookStatusAvailable {
		return domain.ErrIllegalTransition
	}
	return nil
}

// DueDate calcula el vencimiento de un préstamo: fecha de préstamo + loanDays.
func DueDate(borrowDate time.Time, loanDays int) time.Time {
	return borrowDate.AddDate(0, 0, loanDays)
}

// LateFee calcula la multa por devolución tardía:
// max(0, días completos de retraso) * dailyFine. Las fracciones de día no cuentan.
func LateFee(dueDate, returnDate time.Time, dailyFine decimal.Decimal) decimal.Decimal {
	if !returnDate.After(dueDate) {
		return decimal.Zero
	}
	daysLate := int64(returnDate.Sub(dueDate).Hours() / 24)
	if daysLate <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(daysLate).Mul(dailyFine)
}
